package domain

import "math"

// PageRequest is a validated page/limit pair.
type PageRequest struct {
	Page  int
	Limit int
}

// Offset returns the number of rows to skip. It saturates at math.MaxInt
// instead of overflowing, so a huge page yields an empty page.
func (p PageRequest) Offset() int {
	if p.Page < 1 || p.Limit < 1 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// Pagination describes where a page sits within a result set.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// NewPagination builds the descriptor for a page of a result set with total rows.
func NewPagination(req PageRequest, total int) Pagination {
	return newPagination(req, total, TotalPages(total, req.Limit))
}

// TotalPages is ceil(total/limit), or 0 when either is non-positive.
func TotalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// CombinePagination merges descriptors of sections that were paginated
// independently with the same request. Total is the sum of section totals.
// TotalPages is the largest section page count, so HasNext holds exactly when
// the next page returns rows in at least one section.
func CombinePagination(req PageRequest, sections ...Pagination) Pagination {
	total, pages := 0, 0
	for _, s := range sections {
		total += s.Total
		if s.TotalPages > pages {
			pages = s.TotalPages
		}
	}
	return newPagination(req, total, pages)
}

func newPagination(req PageRequest, total, totalPages int) Pagination {
	return Pagination{
		Page:       req.Page,
		Limit:      req.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    req.Page < totalPages,
		HasPrev:    req.Page > 1,
	}
}

// Page is one page of items plus its descriptor.
type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// NewPage wraps items, replacing nil with an empty slice so it renders as [].
func NewPage[T any](items []T, req PageRequest, total int) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Data: items, Pagination: NewPagination(req, total)}
}
