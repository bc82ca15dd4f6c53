package forum

const (
	DefaultPageSize = 5
	MaxPageSize     = 100
)

// Page is one window of an ordered listing plus the metadata a caller needs
// to render navigation.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Number     int   `json:"page"`
	TotalPages int   `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
	PageSize   int   `json:"page_size"`
}

// ResolvePage clamps a 1-based page request against the total row count and
// returns the resolved page number, the page count, and the row offset for a
// LIMIT/OFFSET query. Requests below 1 clamp to the first page, requests past
// the end clamp to the last; an empty listing resolves to one empty page
// numbered 1 of 1.
func ResolvePage(requested, size int, total int64) (page, totalPages, offset int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	totalPages = int((total + int64(size) - 1) / int64(size))
	if totalPages < 1 {
		totalPages = 1
	}
	page = requested
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	return page, totalPages, (page - 1) * size
}

// NormalizePageSize applies the default and the upper bound to a client
// supplied page size.
func NormalizePageSize(size int) int {
	if size <= 0 {
		return DefaultPageSize
	}
	if size > MaxPageSize {
		return MaxPageSize
	}
	return size
}
