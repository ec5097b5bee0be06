package session

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anime_checklist/catalog"
	"anime_checklist/utils"
	"anime_checklist/window"
)

var testLayout = window.Config{
	GridMinColWidth: 30,
	GridItemHeight:  7,
	ListRowHeight:   2,
	NarrowThreshold: 60,
}

func newCatalog(t *testing.T, n int) *catalog.Catalog {
	t.Helper()
	recs := make([]catalog.Record, n)
	for i := range recs {
		tags := []string{"Action"}
		if i%2 == 1 {
			tags = []string{"Drama"}
		}
		recs[i] = catalog.Record{ID: i, Title: fmt.Sprintf("Title %02d", i), Year: 2010 + i%10, Tags: tags}
	}
	cat, err := catalog.New(recs)
	require.NoError(t, err)
	return cat
}

type recordingPersister struct{ saved []Snapshot }

func (p *recordingPersister) Save(s Snapshot) { p.saved = append(p.saved, s) }

func newSession(t *testing.T, n int, p Persister) *Session {
	t.Helper()
	return New(newCatalog(t, n), State{Width: 80, ViewportHeight: 10}, Options{
		Layout:     testLayout,
		BufferRows: 4,
		Persister:  p,
		Logger:     utils.DiscardLogger(),
	})
}

func windowIDs(w window.Window) []int {
	var out []int
	for _, r := range w.Rows {
		for _, it := range r.Items {
			out = append(out, it.Record.ID)
		}
	}
	return out
}

func TestNew_ComputesEverything(t *testing.T) {
	s := newSession(t, 50, nil)

	assert.Len(t, s.Filtered(), 50)
	assert.Equal(t, window.Geometry{ItemsPerRow: 1, RowHeight: 2, Mode: window.ModeList}, s.Geometry())
	assert.Equal(t, 100, s.Window().TotalHeight)
	assert.Equal(t, 0, s.Window().StartRow)
	assert.Equal(t, 9, s.Window().EndRow)
	assert.Equal(t, ThemeDark, s.State().Theme)
}

func TestToggle_WithoutDependentFilterKeepsCollection(t *testing.T) {
	p := &recordingPersister{}
	s := newSession(t, 20, p)
	s.Dispatch(ScrollTo{Offset: 6})
	before := s.Filtered()

	eff := s.Dispatch(ToggleWatched{ID: 4, On: true})

	assert.False(t, eff.Has(RecomputeFilter))
	assert.True(t, eff.Has(RecomputeWindow))
	assert.Equal(t, before, s.Filtered())
	assert.Equal(t, 6, s.State().Scroll)

	var found bool
	for _, r := range s.Window().Rows {
		for _, it := range r.Items {
			if it.Record.ID == 4 {
				found = true
				assert.True(t, it.Watched)
			}
		}
	}
	assert.True(t, found)
	require.Len(t, p.saved, 1)
	assert.Equal(t, []int{4}, p.saved[0].Watched)
}

func TestToggle_WithDependentFilterRefilters(t *testing.T) {
	s := newSession(t, 20, nil)
	s.Dispatch(SetWatchedFilter{Filter: catalog.WatchedOnly})
	assert.Empty(t, s.Filtered())

	s.Dispatch(ToggleWatched{ID: 7, On: true})
	require.Len(t, s.Filtered(), 1)
	assert.Equal(t, 7, s.Filtered()[0].ID)

	s.Dispatch(ToggleWatched{ID: 7, On: false})
	assert.Empty(t, s.Filtered())
	assert.True(t, s.Window().Empty())
}

func TestToggle_UnknownIDIsIgnored(t *testing.T) {
	p := &recordingPersister{}
	s := newSession(t, 5, p)

	eff := s.Dispatch(ToggleFavorite{ID: 99, On: true})
	assert.Equal(t, Effects(0), eff)
	assert.False(t, s.IsFavorite(99))
	assert.Empty(t, p.saved)

	_, err := s.Record(99)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestFilterChange_ResetsScroll(t *testing.T) {
	s := newSession(t, 50, nil)
	s.Dispatch(ScrollTo{Offset: 40})
	assert.Equal(t, 40, s.State().Scroll)

	s.Dispatch(SetTag{Tag: "Drama"})
	assert.Equal(t, 0, s.State().Scroll)
	assert.Len(t, s.Filtered(), 25)
	assert.Equal(t, []int{1, 3, 5, 7, 9, 11, 13, 15, 17, 19}, windowIDs(s.Window()))
}

func TestResize_ClampsScroll(t *testing.T) {
	s := newSession(t, 50, nil)
	s.Dispatch(ScrollTo{Offset: 90})
	assert.Equal(t, 90, s.State().Scroll)

	s.Dispatch(Resize{Width: 80, Height: 40})
	assert.Equal(t, 60, s.State().Scroll)
	assert.Equal(t, s.MaxScroll(), s.State().Scroll)
}

func TestScroll_ClampedToRange(t *testing.T) {
	s := newSession(t, 10, nil)
	s.Dispatch(ScrollBy{Delta: -5})
	assert.Equal(t, 0, s.State().Scroll)
	s.Dispatch(ScrollBy{Delta: 500})
	assert.Equal(t, 10, s.State().Scroll)
}

func TestSetMode_RecomputesLayout(t *testing.T) {
	p := &recordingPersister{}
	s := newSession(t, 50, p)
	s.Dispatch(ScrollTo{Offset: 20})

	s.Dispatch(SetMode{Mode: window.ModeGrid})
	assert.Equal(t, 2, s.Geometry().ItemsPerRow)
	assert.Equal(t, 7, s.Geometry().RowHeight)
	assert.Equal(t, 0, s.State().Scroll)
	require.Len(t, p.saved, 1)
	assert.Equal(t, window.ModeGrid, p.saved[0].Mode)

	s.Dispatch(Resize{Width: 100, Height: 10})
	assert.Equal(t, 3, s.Geometry().ItemsPerRow)
}

func TestStatsAndSelected(t *testing.T) {
	s := newSession(t, 10, nil)
	s.Dispatch(ToggleWatched{ID: 8, On: true})
	s.Dispatch(ToggleWatched{ID: 2, On: true})
	s.Dispatch(ToggleFavorite{ID: 5, On: true})
	s.Dispatch(SetSearch{Query: "title 0"})

	assert.Equal(t, Stats{Total: 10, Filtered: 10, Watched: 2, Favorite: 1}, s.Stats())
	assert.Equal(t, []int{2, 8}, ids(s.Selected(catalog.TargetWatched)))
	assert.Equal(t, []int{5}, ids(s.Selected(catalog.TargetFavorite)))

	s.Dispatch(ClearWatched{})
	assert.Equal(t, 0, s.Stats().Watched)
}

func TestNew_NormalizesInitialState(t *testing.T) {
	s := New(newCatalog(t, 3), State{Mode: "bogus", Theme: "neon"}, Options{Logger: utils.DiscardLogger()})
	assert.Equal(t, window.ModeList, s.State().Mode)
	assert.Equal(t, ThemeDark, s.State().Theme)
	assert.NotNil(t, s.State().Watched)
}

func ids(recs []catalog.Record) []int {
	out := make([]int, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.ID)
	}
	return out
}
