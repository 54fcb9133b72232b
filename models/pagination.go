package models

// PaginatedUsers is the legacy list shape the users dashboard consumes:
// total count plus absolute previous/next links, nil at the edges.
type PaginatedUsers struct {
	Total    int64   `json:"total"`
	Previous *string `json:"previous"`
	Next     *string `json:"next"`
	Items    []User  `json:"items"`
}

// PageMeta echoes the effective pagination window back to the caller.
type PageMeta struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
}

// PageLinks carries the previous/next navigation pair. Previous is nil on the
// first page; Next is nil once page*pageSize covers the total.
type PageLinks struct {
	Previous *string `json:"previous"`
	Next     *string `json:"next"`
}

// Paginated is the meta+links list shape used by sermons and the other
// content resources.
type Paginated[T any] struct {
	Meta  PageMeta  `json:"meta"`
	Links PageLinks `json:"links"`
	Items []T       `json:"items"`
}
