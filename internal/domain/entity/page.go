package entity

// Page is a bounded slice of a listing plus the total count.
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

// TotalPages rounds the total up to full pages.
func (p Page[T]) TotalPages() int {
	if p.Limit <= 0 {
		return 0
	}

	return int((p.Total + int64(p.Limit) - 1) / int64(p.Limit))
}
