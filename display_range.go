package pagectl

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const (
	// CompressThreshold is the largest number of pages rendered in full.
	// Above it the display range is compressed around the current page.
	CompressThreshold = 7
	// WindowDelta is the number of pages shown on each side of the current
	// page once compression applies.
	WindowDelta = 2

	// EllipsisMarker is how an ellipsis item is rendered in text and JSON.
	EllipsisMarker = "..."
)

// RangeItem is an element of a DisplayRange: either a page index or an
// ellipsis marker standing for a run of hidden pages.
type RangeItem struct {
	page     int
	ellipsis bool
}

// Ellipsis is the marker item placed where pages are hidden.
var Ellipsis = RangeItem{ellipsis: true}

// PageItem returns a RangeItem pointing at the page with the given index.
func PageItem(page int) RangeItem {
	return RangeItem{page: page}
}

// IsEllipsis returns true for the ellipsis marker.
func (r RangeItem) IsEllipsis() bool {
	return r.ellipsis
}

// Page returns the page index of the item. The second value is false for
// the ellipsis marker.
func (r RangeItem) Page() (int, bool) {
	return r.page, !r.ellipsis
}

// String - implements fmt.Stringer.
func (r RangeItem) String() string {
	if r.ellipsis {
		return EllipsisMarker
	}

	return strconv.Itoa(r.page)
}

// MarshalJSON encodes page indices as numbers and the ellipsis as "...".
func (r RangeItem) MarshalJSON() ([]byte, error) {
	if r.ellipsis {
		return json.Marshal(EllipsisMarker)
	}

	return json.Marshal(r.page)
}

// UnmarshalJSON accepts a number or the "..." string.
func (r *RangeItem) UnmarshalJSON(data []byte) error {
	var marker string
	if err := json.Unmarshal(data, &marker); err == nil {
		if marker != EllipsisMarker {
			return fmt.Errorf("unexpected range marker '%s'", marker)
		}
		*r = Ellipsis

		return nil
	}

	var page int
	if err := json.Unmarshal(data, &page); err != nil {
		return fmt.Errorf("failed to unmarshal range item: %w", err)
	}
	*r = PageItem(page)

	return nil
}

// DisplayRange is the ordered sequence of page buttons and ellipsis markers
// shown by a pagination control.
type DisplayRange []RangeItem

// Pages returns the page indices of the range, skipping ellipsis markers.
func (d DisplayRange) Pages() []int {
	return lo.FilterMap(d, func(item RangeItem, _ int) (int, bool) {
		return item.Page()
	})
}

// HasEllipsis returns true if at least one page is hidden.
func (d DisplayRange) HasEllipsis() bool {
	return lo.ContainsBy(d, RangeItem.IsEllipsis)
}

// String - implements fmt.Stringer.
//
// Example: "[0 ... 8 9 10 11 12 ... 19]".
func (d DisplayRange) String() string {
	items := lo.Map(d, func(item RangeItem, _ int) string {
		return item.String()
	})

	return "[" + strings.Join(items, " ") + "]"
}

// ComputeDisplayRange derives the display range for the given state.
//
// Up to CompressThreshold pages every page is listed. Beyond that the range
// is built from:
//  1. page 0;
//  2. an ellipsis if CurPage > WindowDelta+1;
//  3. pages max(1, CurPage-WindowDelta) .. min(TotalPages-2, CurPage+WindowDelta);
//  4. an ellipsis if the window ends before TotalPages-2;
//  5. page TotalPages-1.
//
// The first and last pages are always present regardless of the window.
// A state with no pages (or a malformed negative page count) yields an empty
// range.
//
// Example: TotalPages=20, CurPage=10 gives [0 ... 8 9 10 11 12 ... 19].
func ComputeDisplayRange(state State) DisplayRange {
	totalPages := state.TotalPages
	if totalPages <= 0 {
		return DisplayRange{}
	}

	if totalPages <= CompressThreshold {
		return lo.Map(lo.Range(totalPages), func(page int, _ int) RangeItem {
			return PageItem(page)
		})
	}

	ret := make(DisplayRange, 0, 2*WindowDelta+5)
	ret = append(ret, PageItem(0))

	if state.CurPage > WindowDelta+1 {
		ret = append(ret, Ellipsis)
	}

	start := max(1, state.CurPage-WindowDelta)
	end := min(totalPages-2, state.CurPage+WindowDelta)
	for page := start; page <= end; page++ {
		ret = append(ret, PageItem(page))
	}

	if end < totalPages-2 {
		ret = append(ret, Ellipsis)
	}

	return append(ret, PageItem(totalPages-1))
}
