package repository

import "errors"

// Store-level sentinels shared by every repository implementation. Services
// branch on these; any other error is a data-access failure and propagates.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// ListFilter carries the common listing parameters: a case-insensitive
// substring search (OR-combined over a per-store field set) and 1-based
// pagination.
type ListFilter struct {
	Search string
	Page   int
	Limit  int
}

// Normalize clamps page/limit to usable values.
func (f ListFilter) Normalize() ListFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}
	return f
}

// Offset returns the row offset for the current page.
func (f ListFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// TotalPages returns ceil(total/limit) for the filter's page size.
func (f ListFilter) TotalPages(total int64) int64 {
	if f.Limit < 1 {
		return 0
	}
	return (total + int64(f.Limit) - 1) / int64(f.Limit)
}
