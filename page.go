package pagectl

import "github.com/samber/lo"

// Page is a page descriptor: one slice of a larger result set plus the
// totals needed to navigate it. It is produced by the transport layer and
// mirrors the JSON returned by the listing endpoints.
//
// IMPORTANT:
// TotalPages is expected to equal TotalPagesFor(TotalElements, PageSize).
// Nothing in this package enforces it.
type Page[T any] struct {
	// Content elements of the current page.
	Content []T `json:"content"`
	// CurPage zero-based index of the current page.
	CurPage int `json:"curPage"`
	// PageSize maximum number of elements on a page.
	PageSize int `json:"pageSize"`
	// TotalElements number of elements in the whole result set.
	TotalElements int `json:"totalElements"`
	// TotalPages number of pages in the whole result set.
	TotalPages int `json:"totalPages"`
}

// Patch returns a StatePatch carrying all four counters of the page.
//
// Usage:
//
//	page, err := rest.FetchPage[Activity](ctx, client, "/activities", 0, 10)
//	...
//	ctrl.UpdateState(page.Patch())
func (p Page[T]) Patch() StatePatch {
	return StatePatch{
		CurPage:       lo.ToPtr(p.CurPage),
		PageSize:      lo.ToPtr(p.PageSize),
		TotalElements: lo.ToPtr(p.TotalElements),
		TotalPages:    lo.ToPtr(p.TotalPages),
	}
}

// State is the pagination state owned by a Controller.
type State struct {
	CurPage       int `json:"curPage"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
}

// HasPrevious returns true if there is a page before the current one.
func (s State) HasPrevious() bool {
	return s.CurPage > 0
}

// HasNext returns true if there is a page after the current one.
func (s State) HasNext() bool {
	return s.CurPage < s.TotalPages-1
}

// StatePatch is a partial State. Nil fields are left untouched by
// Controller.UpdateState. Decoding JSON into a StatePatch ignores any field
// other than the four counters, so a full page descriptor can be decoded
// into it directly.
type StatePatch struct {
	CurPage       *int `json:"curPage,omitempty"`
	PageSize      *int `json:"pageSize,omitempty"`
	TotalElements *int `json:"totalElements,omitempty"`
	TotalPages    *int `json:"totalPages,omitempty"`
}

// apply shallow-overwrites every present field of the patch onto s.
func (p StatePatch) apply(s State) State {
	if p.CurPage != nil {
		s.CurPage = *p.CurPage
	}
	if p.PageSize != nil {
		s.PageSize = *p.PageSize
	}
	if p.TotalElements != nil {
		s.TotalElements = *p.TotalElements
	}
	if p.TotalPages != nil {
		s.TotalPages = *p.TotalPages
	}

	return s
}

// TotalPagesFor returns ceil(totalElements / pageSize), or 0 when either
// argument is not positive.
func TotalPagesFor(totalElements, pageSize int) int {
	if totalElements <= 0 || pageSize <= 0 {
		return 0
	}

	return (totalElements + pageSize - 1) / pageSize
}
