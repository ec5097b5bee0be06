// Package session owns the browser state and keeps the filtered collection,
// the layout and the visible window in step with it.
//
// Every change goes through Reduce, which returns the next state and the
// Effects it implies; the Session then runs those effects in a fixed order:
// filter, reset scroll, layout, clamp scroll, window, persist. The package has
// no UI dependency and is driven the same way from tests and from the TUI.
package session

import (
	"errors"
	"log/slog"

	"anime_checklist/catalog"
	"anime_checklist/window"
)

// Snapshot is what gets persisted after a state mutation.
type Snapshot struct {
	Watched  []int
	Favorite []int
	Theme    Theme
	Mode     window.Mode
}

// Persister stores snapshots. Save is fire-and-forget: failures are the
// persister's to report.
type Persister interface {
	Save(Snapshot)
}

// PersisterFunc adapts a function to Persister.
type PersisterFunc func(Snapshot)

func (f PersisterFunc) Save(s Snapshot) { f(s) }

// Options configures a Session.
type Options struct {
	Layout     window.Config
	BufferRows int
	Persister  Persister
	Logger     *slog.Logger
}

// Stats backs the status line.
type Stats struct {
	Total    int
	Filtered int
	Watched  int
	Favorite int
}

type Session struct {
	cat      *catalog.Catalog
	opts     Options
	log      *slog.Logger
	state    State
	filtered []catalog.Record
	geometry window.Geometry
	win      window.Window
}

// New builds a session over cat starting from initial and computes every
// derived value once.
func New(cat *catalog.Catalog, initial State, opts Options) *Session {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	if initial.Watched == nil {
		initial.Watched = catalog.IDSet{}
	}
	if initial.Favorite == nil {
		initial.Favorite = catalog.IDSet{}
	}
	initial.Mode = window.ParseMode(string(initial.Mode))
	initial.Theme = ParseTheme(string(initial.Theme))

	s := &Session{cat: cat, opts: opts, log: log, state: initial}
	s.run(RecomputeFilter | ResetScroll | RecomputeLayout | RecomputeWindow)
	return s
}

// Dispatch reduces ev into the state and runs the resulting effects.
func (s *Session) Dispatch(ev Event) Effects {
	switch ev := ev.(type) {
	case ToggleWatched:
		if !s.known(ev.ID) {
			return 0
		}
	case ToggleFavorite:
		if !s.known(ev.ID) {
			return 0
		}
	}

	next, eff := Reduce(s.state, ev)
	s.state = next
	s.run(eff)
	if eff != 0 {
		s.log.Debug("session event", slog.String("effects", eff.String()))
	}
	return eff
}

func (s *Session) run(eff Effects) {
	if eff.Has(RecomputeFilter) {
		s.filtered = catalog.Apply(s.cat, s.state.Criteria, s.state.Watched, s.state.Favorite)
	}
	if eff.Has(ResetScroll) {
		s.state.Scroll = 0
	}
	if eff.Has(RecomputeLayout) {
		s.geometry = window.ComputeLayout(s.state.Mode, s.state.Width, s.opts.Layout)
	}
	if eff.Has(ClampScroll) {
		s.state.Scroll = s.geometry.ClampScroll(s.state.Scroll, len(s.filtered), s.state.ViewportHeight)
	}
	if eff.Has(RecomputeWindow) {
		s.win = window.Compute(s.filtered, s.geometry, s.state.Scroll, s.state.ViewportHeight,
			s.opts.BufferRows, s.state.Watched, s.state.Favorite)
	}
	if eff.Has(Persist) && s.opts.Persister != nil {
		s.opts.Persister.Save(s.Snapshot())
	}
}

// known reports whether id exists, logging a LookupError when it does not.
func (s *Session) known(id int) bool {
	_, err := s.Record(id)
	return err == nil
}

// Record looks id up in the catalog. A miss is logged and returned, never
// fatal.
func (s *Session) Record(id int) (catalog.Record, error) {
	rec, err := s.cat.Lookup(id)
	if err != nil {
		var le *catalog.LookupError
		if errors.As(err, &le) {
			s.log.Warn("stale record reference skipped", slog.Int("id", le.ID))
		}
		return catalog.Record{}, err
	}
	return rec, nil
}

func (s *Session) State() State               { return s.state }
func (s *Session) Catalog() *catalog.Catalog  { return s.cat }
func (s *Session) Filtered() []catalog.Record { return s.filtered }
func (s *Session) Geometry() window.Geometry  { return s.geometry }
func (s *Session) Window() window.Window      { return s.win }
func (s *Session) IsWatched(id int) bool      { return s.state.Watched.Has(id) }
func (s *Session) IsFavorite(id int) bool     { return s.state.Favorite.Has(id) }
func (s *Session) Criteria() catalog.Criteria { return s.state.Criteria }

// MaxScroll is the furthest the current content can scroll.
func (s *Session) MaxScroll() int {
	return s.geometry.MaxScroll(len(s.filtered), s.state.ViewportHeight)
}

func (s *Session) Stats() Stats {
	return Stats{
		Total:    s.cat.Len(),
		Filtered: len(s.filtered),
		Watched:  s.state.Watched.Len(),
		Favorite: s.state.Favorite.Len(),
	}
}

// Selected returns a snapshot of the records in the target set, in catalog
// order. Exports run on it without further synchronization.
func (s *Session) Selected(target catalog.Target) []catalog.Record {
	return catalog.Selected(s.cat, target, s.state.Watched, s.state.Favorite)
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Watched:  s.state.Watched.Sorted(),
		Favorite: s.state.Favorite.Sorted(),
		Theme:    s.state.Theme,
		Mode:     s.state.Mode,
	}
}
