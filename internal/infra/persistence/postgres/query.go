package postgres

import (
	"strings"

	"cakehaven/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s anywhere, with wildcards in s escaped.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(s)) + "%"
}

// searchAny adds "(col1 ILIKE ? OR col2 ILIKE ? ...)" when term is not blank.
func searchAny(db *gorm.DB, term string, columns ...string) *gorm.DB {
	if strings.TrimSpace(term) == "" || len(columns) == 0 {
		return db
	}

	pattern := containsPattern(term)
	conds := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, column := range columns {
		conds[i] = column + " ILIKE ?"
		args[i] = pattern
	}

	return db.Where("("+strings.Join(conds, " OR ")+")", args...)
}

// page applies ORDER BY, LIMIT and OFFSET. Sort keys outside columns fall back
// to the default column; the primary key breaks ties so pages are stable.
func page(db *gorm.DB, params repository.ListParams, columns map[string]string, fallback string) *gorm.DB {
	column, ok := columns[params.SortBy]
	if !ok {
		column = fallback
	}

	// Qualify the tie-breaker the same way as the fallback for joined queries.
	idColumn := "id"
	if table, _, qualified := strings.Cut(fallback, "."); qualified {
		idColumn = table + ".id"
	}

	db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: params.Desc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: idColumn}, Desc: params.Desc})

	if params.Limit > 0 {
		db = db.Limit(params.Limit).Offset(params.Offset())
	}

	return db
}

// normalizeEmail is how emails are compared and stored.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
