package pagectl

import (
	"encoding/json"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

// items builds a DisplayRange from ints and EllipsisMarker strings.
func items(values ...any) DisplayRange {
	ret := make(DisplayRange, 0, len(values))
	for _, v := range values {
		switch vt := v.(type) {
		case int:
			ret = append(ret, PageItem(vt))
		case string:
			ret = append(ret, Ellipsis)
		}
	}

	return ret
}

func Test_ComputeDisplayRange(t *testing.T) {
	tests := []struct {
		name       string
		totalPages int
		curPage    int
		want       DisplayRange
	}{
		{"no pages", 0, 0, items()},
		{"single page", 1, 0, items(0)},
		{"below threshold", 5, 2, items(0, 1, 2, 3, 4)},
		{"at threshold", 7, 6, items(0, 1, 2, 3, 4, 5, 6)},
		{"middle of many", 20, 10, items(0, "...", 8, 9, 10, 11, 12, "...", 19)},
		{"first of many", 20, 0, items(0, 1, 2, "...", 19)},
		{"second of many", 20, 1, items(0, 1, 2, 3, "...", 19)},
		{"window touches first page", 20, 3, items(0, 1, 2, 3, 4, 5, "...", 19)},
		{"leading ellipsis hides one page", 20, 4, items(0, "...", 2, 3, 4, 5, 6, "...", 19)},
		{"last of many", 20, 19, items(0, "...", 17, 18, 19)},
		{"window touches last page", 20, 16, items(0, "...", 14, 15, 16, 17, 18, 19)},
		{"just above threshold", 8, 3, items(0, 1, 2, 3, 4, 5, "...", 7)},
		{"just above threshold, near end", 8, 5, items(0, "...", 3, 4, 5, 6, 7)},
		{"negative total pages", -4, 0, items()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeDisplayRange(State{CurPage: tt.curPage, PageSize: 10, TotalPages: tt.totalPages})
			require.Equal(t, tt.want, got, "got %s", got)
		})
	}
}

func Test_ComputeDisplayRange_FullBelowThreshold(t *testing.T) {
	for totalPages := 0; totalPages <= CompressThreshold; totalPages++ {
		for curPage := 0; curPage < max(totalPages, 1); curPage++ {
			got := ComputeDisplayRange(State{CurPage: curPage, TotalPages: totalPages})

			require.False(t, got.HasEllipsis(), "total=%d cur=%d", totalPages, curPage)
			require.Equal(t, lo.Range(totalPages), got.Pages(), "total=%d cur=%d", totalPages, curPage)
		}
	}
}

func Test_ComputeDisplayRange_Bounds(t *testing.T) {
	for totalPages := 1; totalPages <= 40; totalPages++ {
		for curPage := 0; curPage < totalPages; curPage++ {
			got := ComputeDisplayRange(State{CurPage: curPage, TotalPages: totalPages})
			pages := got.Pages()

			require.NotEmpty(t, got)
			require.Equal(t, PageItem(0), got[0], "total=%d cur=%d", totalPages, curPage)
			require.Equal(t, PageItem(totalPages-1), got[len(got)-1], "total=%d cur=%d", totalPages, curPage)
			require.Contains(t, pages, curPage, "total=%d cur=%d", totalPages, curPage)

			for i := 1; i < len(pages); i++ {
				require.Less(t, pages[i-1], pages[i], "total=%d cur=%d range=%s", totalPages, curPage, got)
			}

			// Ellipsis markers never sit next to each other or at the edges.
			for i, item := range got {
				if !item.IsEllipsis() {
					continue
				}
				require.NotZero(t, i)
				require.Less(t, i, len(got)-1)
				require.False(t, got[i+1].IsEllipsis())
			}
		}
	}
}

func Test_DisplayRange_String(t *testing.T) {
	got := ComputeDisplayRange(State{CurPage: 10, TotalPages: 20})
	require.Equal(t, "[0 ... 8 9 10 11 12 ... 19]", got.String())
	require.Equal(t, "[]", DisplayRange{}.String())
}

func Test_DisplayRange_JSON(t *testing.T) {
	got := ComputeDisplayRange(State{CurPage: 10, TotalPages: 20})

	data, err := json.Marshal(got)
	require.NoError(t, err)
	require.JSONEq(t, `[0,"...",8,9,10,11,12,"...",19]`, string(data))

	var decoded DisplayRange
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, got, decoded)
}

func Test_RangeItem_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    RangeItem
		wantErr bool
	}{
		{"page", `4`, PageItem(4), false},
		{"ellipsis", `"..."`, Ellipsis, false},
		{"unknown marker", `"--"`, RangeItem{}, true},
		{"object", `{}`, RangeItem{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got RangeItem
			err := json.Unmarshal([]byte(tt.in), &got)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func Test_RangeItem_Page(t *testing.T) {
	page, ok := PageItem(3).Page()
	require.True(t, ok)
	require.Equal(t, 3, page)

	_, ok = Ellipsis.Page()
	require.False(t, ok)
	require.True(t, Ellipsis.IsEllipsis())
	require.False(t, PageItem(0).IsEllipsis())
}
