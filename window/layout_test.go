package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var pxConfig = Config{
	GridMinColWidth: 200,
	GridItemHeight:  320,
	ListRowHeight:   80,
	NarrowThreshold: 400,
}

func TestComputeLayout(t *testing.T) {
	tests := []struct {
		name    string
		mode    Mode
		width   int
		perRow  int
		rowH    int
		outMode Mode
	}{
		{"grid two columns", ModeGrid, 500, 2, 320, ModeGrid},
		{"grid narrow forced to two", ModeGrid, 350, 2, 320, ModeGrid},
		{"grid wide", ModeGrid, 1000, 5, 320, ModeGrid},
		{"grid zero width", ModeGrid, 0, 2, 320, ModeGrid},
		{"list ignores width", ModeList, 1000, 1, 80, ModeList},
		{"unknown mode is list", Mode("tiles"), 1000, 1, 80, ModeList},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := ComputeLayout(tt.mode, tt.width, pxConfig)
			assert.Equal(t, tt.perRow, g.ItemsPerRow)
			assert.Equal(t, tt.rowH, g.RowHeight)
			assert.Equal(t, tt.outMode, g.Mode)
		})
	}
}

func TestComputeLayout_MonotonicInWidth(t *testing.T) {
	prev := 0
	for w := 0; w <= 3000; w += 7 {
		g := ComputeLayout(ModeGrid, w, pxConfig)
		assert.GreaterOrEqual(t, g.ItemsPerRow, 2)
		assert.GreaterOrEqual(t, g.ItemsPerRow, prev, "width %d", w)
		prev = g.ItemsPerRow
	}
}

func TestComputeLayout_ZeroConfig(t *testing.T) {
	g := ComputeLayout(ModeGrid, 500, Config{})
	assert.Equal(t, 2, g.ItemsPerRow)
	assert.Equal(t, 1, g.RowHeight)
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeGrid, ParseMode("grid"))
	assert.Equal(t, ModeList, ParseMode("list"))
	assert.Equal(t, ModeList, ParseMode(""))
}

func TestGeometry_Scroll(t *testing.T) {
	g := Geometry{ItemsPerRow: 3, RowHeight: 10, Mode: ModeGrid}

	assert.Equal(t, 0, g.TotalRows(0))
	assert.Equal(t, 4, g.TotalRows(10))
	assert.Equal(t, 40, g.TotalHeight(10))
	assert.Equal(t, 2, g.RowOf(7))

	assert.Equal(t, 15, g.MaxScroll(10, 25))
	assert.Equal(t, 0, g.MaxScroll(10, 100))
	assert.Equal(t, 0, g.ClampScroll(-5, 10, 25))
	assert.Equal(t, 15, g.ClampScroll(99, 10, 25))
	assert.Equal(t, 12, g.ClampScroll(12, 10, 25))

	assert.Equal(t, 10, g.ScrollToReveal(25, 1, 20), "row above moves the top")
	assert.Equal(t, 20, g.ScrollToReveal(0, 3, 20), "row below aligns the bottom")
	assert.Equal(t, 5, g.ScrollToReveal(5, 1, 20), "visible row keeps the offset")
}
