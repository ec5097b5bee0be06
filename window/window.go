package window

import "anime_checklist/catalog"

// Item is one record as it should be painted, with its state flags resolved
// at render time.
type Item struct {
	Record   catalog.Record
	Watched  bool
	Favorite bool
}

// Row is a materialized row positioned at Top within the full content height.
type Row struct {
	Index int
	Top   int
	Items []Item
}

// Window is the slice of rows to materialize plus the full content size the
// scroll range must reflect.
type Window struct {
	TotalRows   int
	TotalHeight int
	StartRow    int // first materialized row
	EndRow      int // last materialized row, inclusive; -1 when nothing is emitted
	Rows        []Row
}

// Empty reports whether no row is materialized.
func (w Window) Empty() bool { return len(w.Rows) == 0 }

// Compute returns the rows covering [scrollOffset, scrollOffset+viewportHeight)
// plus bufferRows above and below, clamped to valid rows. scrollOffset is used
// as given; callers reset or clamp it when the content shrinks.
//
// Watched and favorite flags are looked up in the sets on every call, so a
// toggle shows up without rebuilding the filtered collection.
func Compute(filtered []catalog.Record, g Geometry, scrollOffset, viewportHeight, bufferRows int, watched, favorite catalog.IDSet) Window {
	g = g.normalized()
	viewportHeight = max(0, viewportHeight)
	bufferRows = max(0, bufferRows)

	n := len(filtered)
	totalRows := g.TotalRows(n)
	w := Window{
		TotalRows:   totalRows,
		TotalHeight: totalRows * g.RowHeight,
		EndRow:      -1,
	}
	if totalRows == 0 {
		return w
	}

	startRow := floorDiv(scrollOffset, g.RowHeight)
	endRow := min(totalRows-1, floorDiv(scrollOffset+viewportHeight, g.RowHeight)+bufferRows)
	renderStart := max(0, startRow-bufferRows)

	w.StartRow = renderStart
	if endRow < renderStart {
		return w
	}
	w.EndRow = endRow

	w.Rows = make([]Row, 0, endRow-renderStart+1)
	for r := renderStart; r <= endRow; r++ {
		from := r * g.ItemsPerRow
		to := min(from+g.ItemsPerRow, n)
		items := make([]Item, 0, to-from)
		for _, rec := range filtered[from:to] {
			items = append(items, Item{
				Record:   rec,
				Watched:  watched.Has(rec.ID),
				Favorite: favorite.Has(rec.ID),
			})
		}
		w.Rows = append(w.Rows, Row{Index: r, Top: r * g.RowHeight, Items: items})
	}
	return w
}

// floorDiv rounds toward negative infinity so negative offsets land on the
// row above rather than row zero.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
