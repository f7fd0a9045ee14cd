// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

// ListParams carries pagination, search and sorting for listing queries.
// SortBy is a logical field name; each repository maps it onto a whitelisted column.
type ListParams struct {
	Page   int
	Limit  int
	Search string
	SortBy string
	Desc   bool
}

// Offset returns the number of rows to skip for the requested page.
func (p ListParams) Offset() int {
	if p.Page <= 1 {
		return 0
	}

	return (p.Page - 1) * p.Limit
}
