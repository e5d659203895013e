// Package paging computes the page window shown under a paginated table.
package paging

import "math"

// MaxLinks is the number of numbered page links shown at once.
const MaxLinks = 5

// Window describes one page of a table of Total rows.
//
// Page may point past the last page; such a page is simply empty and HasNext
// is false.
type Window struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasPrev    bool  `json:"has_prev"`
	HasNext    bool  `json:"has_next"`
	Visible    bool  `json:"visible"`
	Links      []int `json:"links"`
}

// NewWindow normalises page and pageSize and derives the rest. A page below
// 1 becomes 1 and a pageSize below 1 becomes defaultSize. Page is capped so
// that Offset cannot overflow.
func NewWindow(page, pageSize, defaultSize int, total int64) Window {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultSize
	}
	if pageSize < 1 {
		pageSize = 1
	}
	if page > math.MaxInt/pageSize {
		page = math.MaxInt / pageSize
	}
	if total < 0 {
		total = 0
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	w := Window{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
		Visible:    totalPages > 1,
	}
	w.Links = links(page, totalPages)
	return w
}

// Offset is the number of rows before the first row of the page.
func (w Window) Offset() int {
	return (w.Page - 1) * w.PageSize
}

// Prev returns the previous page number, never below 1.
func (w Window) Prev() int {
	if w.HasPrev {
		return w.Page - 1
	}
	return w.Page
}

// Next returns the next page number, never above TotalPages.
func (w Window) Next() int {
	if w.HasNext {
		return w.Page + 1
	}
	return w.Page
}

// links returns up to MaxLinks consecutive page numbers around page, clamped
// to [1, totalPages].
func links(page, totalPages int) []int {
	if totalPages < 1 {
		return []int{}
	}
	if page > totalPages {
		page = totalPages
	}

	start := page - MaxLinks/2
	if start < 1 {
		start = 1
	}
	end := start + MaxLinks - 1
	if end > totalPages {
		end = totalPages
		start = max(1, end-MaxLinks+1)
	}

	out := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		out = append(out, p)
	}
	return out
}
