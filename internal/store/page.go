package store

// PageRequest is an opaque pagination token: it is bound at the HTTP
// boundary and applied verbatim to the database query, never inspected
// by the services in between.
type PageRequest struct {
	Page int
	Size int
	Sort string
}

const (
	defaultSize = 10
	defaultSort = "id asc"
)

func (p PageRequest) page() int {
	if p.Page < 0 {
		return 0
	}
	return p.Page
}

func (p PageRequest) limit() int {
	if p.Size <= 0 {
		return defaultSize
	}
	return p.Size
}

func (p PageRequest) offset() int {
	return p.page() * p.limit()
}

func (p PageRequest) order() string {
	if p.Sort == "" {
		return defaultSort
	}
	return p.Sort
}

// Page is one page of query results plus the total row count for the
// unpaged query.
type Page[T any] struct {
	Items      []T   `json:"items"`
	TotalItems int64 `json:"totalItems"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
}
