// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"cakehaven/internal/domain/entity"
	"cakehaven/internal/domain/repository"
)

// ListQuery is the paging, search and sorting input shared by listing operations.
// Page and Limit are already clamped by the delivery layer.
type ListQuery struct {
	Page   int
	Limit  int
	Search string
	Sort   string
	Desc   bool
}

// Params converts the query into repository list parameters.
func (q ListQuery) Params() repository.ListParams {
	return repository.ListParams{
		Page:   q.Page,
		Limit:  q.Limit,
		Search: q.Search,
		SortBy: q.Sort,
		Desc:   q.Desc,
	}
}

// NewPage wraps a listing result.
func NewPage[T any](items []T, total int64, query ListQuery) *entity.Page[T] {
	if items == nil {
		items = []T{}
	}

	return &entity.Page[T]{
		Items: items,
		Total: total,
		Page:  max(query.Page, 1),
		Limit: query.Limit,
	}
}
