package window

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anime_checklist/catalog"
)

func records(n int) []catalog.Record {
	out := make([]catalog.Record, n)
	for i := range out {
		out[i] = catalog.Record{ID: i, Title: fmt.Sprintf("item %d", i)}
	}
	return out
}

func rowIndexes(w Window) []int {
	var out []int
	for _, r := range w.Rows {
		out = append(out, r.Index)
	}
	return out
}

func TestCompute_FiveItemsAllRows(t *testing.T) {
	g := Geometry{ItemsPerRow: 1, RowHeight: 80, Mode: ModeList}
	w := Compute(records(5), g, 0, 200, 4, nil, nil)

	assert.Equal(t, 5, w.TotalRows)
	assert.Equal(t, 400, w.TotalHeight)
	assert.Equal(t, 0, w.StartRow)
	assert.Equal(t, 4, w.EndRow)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, rowIndexes(w))
	for i, r := range w.Rows {
		assert.Equal(t, i*80, r.Top)
	}
}

func TestCompute_Empty(t *testing.T) {
	g := Geometry{ItemsPerRow: 2, RowHeight: 10}
	w := Compute(nil, g, 0, 100, 4, nil, nil)

	assert.True(t, w.Empty())
	assert.Equal(t, 0, w.TotalRows)
	assert.Equal(t, 0, w.TotalHeight)
	assert.Equal(t, -1, w.EndRow)
}

func TestCompute_MiddleOfLongList(t *testing.T) {
	g := Geometry{ItemsPerRow: 3, RowHeight: 10}
	w := Compute(records(300), g, 500, 40, 2, nil, nil)

	assert.Equal(t, 100, w.TotalRows)
	assert.Equal(t, 1000, w.TotalHeight)
	assert.Equal(t, 48, w.StartRow)
	assert.Equal(t, 56, w.EndRow)
	require.Len(t, w.Rows, 9)
	assert.Equal(t, 144, w.Rows[0].Items[0].Record.ID)
}

func TestCompute_LastRowPartial(t *testing.T) {
	g := Geometry{ItemsPerRow: 4, RowHeight: 10}
	w := Compute(records(10), g, 0, 100, 0, nil, nil)

	require.Len(t, w.Rows, 3)
	assert.Len(t, w.Rows[2].Items, 2)
	assert.Equal(t, 9, w.Rows[2].Items[1].Record.ID)
}

// Every row intersecting the viewport is emitted and no emitted row is out of
// range, for a spread of scroll offsets and geometries.
func TestCompute_CoversViewport(t *testing.T) {
	for _, perRow := range []int{1, 2, 5} {
		for _, n := range []int{1, 7, 53} {
			for scroll := -20; scroll <= 400; scroll += 13 {
				g := Geometry{ItemsPerRow: perRow, RowHeight: 9}
				w := Compute(records(n), g, scroll, 30, 1, nil, nil)

				emitted := map[int]bool{}
				for _, r := range w.Rows {
					assert.GreaterOrEqual(t, r.Index, 0)
					assert.Less(t, r.Index, w.TotalRows)
					emitted[r.Index] = true
				}
				for row := 0; row < w.TotalRows; row++ {
					top, bottom := row*9, row*9+9
					if bottom > scroll && top < scroll+30 {
						assert.True(t, emitted[row], "perRow=%d n=%d scroll=%d row=%d", perRow, n, scroll, row)
					}
				}
			}
		}
	}
}

func TestCompute_Idempotent(t *testing.T) {
	g := Geometry{ItemsPerRow: 2, RowHeight: 5}
	in := records(20)
	watched := catalog.NewIDSet(3)

	a := Compute(in, g, 12, 20, 2, watched, nil)
	b := Compute(in, g, 12, 20, 2, watched, nil)
	assert.Equal(t, a, b)
}

func TestCompute_ResolvesFlags(t *testing.T) {
	g := Geometry{ItemsPerRow: 1, RowHeight: 1}
	w := Compute(records(3), g, 0, 3, 0, catalog.NewIDSet(1), catalog.NewIDSet(1, 2))

	require.Len(t, w.Rows, 3)
	assert.False(t, w.Rows[0].Items[0].Watched)
	assert.True(t, w.Rows[1].Items[0].Watched)
	assert.True(t, w.Rows[1].Items[0].Favorite)
	assert.True(t, w.Rows[2].Items[0].Favorite)
}

func TestCompute_ScrolledPastEnd(t *testing.T) {
	g := Geometry{ItemsPerRow: 1, RowHeight: 10}
	w := Compute(records(3), g, 500, 20, 1, nil, nil)

	assert.True(t, w.Empty())
	assert.Equal(t, 30, w.TotalHeight)
}
