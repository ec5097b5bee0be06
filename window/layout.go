// Package window holds the geometry and windowing math for the catalog list.
// Nothing here knows about terminals: widths, heights and offsets are in
// whatever unit the caller renders with.
package window

// Mode is the display mode of the list.
type Mode string

const (
	ModeList Mode = "list"
	ModeGrid Mode = "grid"
)

// ParseMode maps a persisted value to a Mode, defaulting to list.
func ParseMode(s string) Mode {
	if Mode(s) == ModeGrid {
		return ModeGrid
	}
	return ModeList
}

// Config carries the fixed sizes the layout is derived from.
type Config struct {
	GridMinColWidth int
	GridItemHeight  int
	ListRowHeight   int
	// Below this container width the grid is forced to two columns.
	NarrowThreshold int
}

// Geometry is the derived layout for one (mode, width) pair.
type Geometry struct {
	ItemsPerRow int
	RowHeight   int
	Mode        Mode
}

// ComputeLayout derives items-per-row and row height. It is a pure function of
// its inputs and must be called again after every resize and mode switch.
func ComputeLayout(mode Mode, containerWidth int, cfg Config) Geometry {
	if mode != ModeGrid {
		return Geometry{
			ItemsPerRow: 1,
			RowHeight:   max(1, cfg.ListRowHeight),
			Mode:        ModeList,
		}
	}

	cols := 0
	if cfg.GridMinColWidth > 0 && containerWidth > 0 {
		cols = containerWidth / cfg.GridMinColWidth
	}
	perRow := max(2, cols)
	if containerWidth < cfg.NarrowThreshold {
		perRow = 2
	}
	return Geometry{
		ItemsPerRow: perRow,
		RowHeight:   max(1, cfg.GridItemHeight),
		Mode:        ModeGrid,
	}
}

// normalized guards the division steps against a zero geometry.
func (g Geometry) normalized() Geometry {
	g.ItemsPerRow = max(1, g.ItemsPerRow)
	g.RowHeight = max(1, g.RowHeight)
	return g
}

// TotalRows is ceil(n / items-per-row).
func (g Geometry) TotalRows(n int) int {
	g = g.normalized()
	if n <= 0 {
		return 0
	}
	return (n + g.ItemsPerRow - 1) / g.ItemsPerRow
}

// TotalHeight is the unwindowed content height for n items.
func (g Geometry) TotalHeight(n int) int {
	return g.TotalRows(n) * g.normalized().RowHeight
}

// RowOf returns the row holding item index i.
func (g Geometry) RowOf(i int) int {
	if i < 0 {
		return 0
	}
	return i / g.normalized().ItemsPerRow
}

// MaxScroll is the largest offset that still shows a full viewport.
func (g Geometry) MaxScroll(n, viewportHeight int) int {
	return max(0, g.TotalHeight(n)-max(0, viewportHeight))
}

// ClampScroll keeps offset inside [0, MaxScroll].
func (g Geometry) ClampScroll(offset, n, viewportHeight int) int {
	return min(max(0, offset), g.MaxScroll(n, viewportHeight))
}

// ScrollToReveal returns the smallest change to offset that makes row fully
// visible in the viewport.
func (g Geometry) ScrollToReveal(offset, row, viewportHeight int) int {
	g = g.normalized()
	top := row * g.RowHeight
	bottom := top + g.RowHeight
	switch {
	case top < offset:
		return top
	case bottom > offset+viewportHeight:
		return max(0, bottom-viewportHeight)
	}
	return offset
}
