package domain

// Pagination bounds applied by ListOptions.Clamp.
const (
	MinPageSize = 1
	MaxPageSize = 100
)

// ListOptions controls pagination and equality filtering for list queries.
// Filters with nil or empty values are skipped. A zero PageSize means the
// caller did not ask for pagination and queries return the full filtered set.
type ListOptions struct {
	Page     int
	PageSize int
	Filters  map[string]any
}

// Paginated reports whether the caller requested a bounded page. Unpaginated
// requests return every matching row.
func (o ListOptions) Paginated() bool {
	return o.PageSize > 0
}

// Clamp normalizes page to >=1 and pageSize into [MinPageSize, MaxPageSize].
// Only meaningful on paginated options.
func (o ListOptions) Clamp() ListOptions {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.PageSize < MinPageSize {
		o.PageSize = MinPageSize
	}
	if o.PageSize > MaxPageSize {
		o.PageSize = MaxPageSize
	}
	return o
}

// Offset returns the row offset for the clamped options.
func (o ListOptions) Offset() int {
	return (o.Page - 1) * o.PageSize
}

// Page is one page of results plus the total count of rows matching the
// filter predicate (not just the rows on this page).
type Page[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
}
