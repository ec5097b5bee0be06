package session

import (
	"strings"

	"anime_checklist/catalog"
	"anime_checklist/window"
)

// Theme names the two color schemes.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeGreen Theme = "green"
)

func ParseTheme(s string) Theme {
	if Theme(s) == ThemeGreen {
		return ThemeGreen
	}
	return ThemeDark
}

// State is the whole mutable session. Reduce never modifies a State in place;
// the id sets are copied on write.
type State struct {
	Criteria       catalog.Criteria
	Mode           window.Mode
	Theme          Theme
	Width          int
	ViewportHeight int
	Scroll         int
	Watched        catalog.IDSet
	Favorite       catalog.IDSet
}

// Effects says what has to be recomputed after a transition, in the order
// the runner applies them.
type Effects uint8

const (
	RecomputeFilter Effects = 1 << iota
	ResetScroll
	RecomputeLayout
	ClampScroll
	RecomputeWindow
	Persist
)

func (e Effects) Has(f Effects) bool { return e&f != 0 }

func (e Effects) String() string {
	if e == 0 {
		return "none"
	}
	var parts []string
	for _, f := range []struct {
		flag Effects
		name string
	}{
		{RecomputeFilter, "filter"},
		{ResetScroll, "reset_scroll"},
		{RecomputeLayout, "layout"},
		{ClampScroll, "clamp_scroll"},
		{RecomputeWindow, "window"},
		{Persist, "persist"},
	} {
		if e.Has(f.flag) {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "|")
}

const refilter = RecomputeFilter | ResetScroll | RecomputeWindow

// Reduce applies one event to s and returns the next state with the work the
// change requires. Events that change nothing return no effects.
func Reduce(s State, ev Event) (State, Effects) {
	switch ev := ev.(type) {
	case SetSearch:
		c := s.Criteria
		c.Search = ev.Query
		return withCriteria(s, c)
	case SetTag:
		c := s.Criteria
		c.Tag = ev.Tag
		return withCriteria(s, c)
	case SetYear:
		c := s.Criteria
		c.Year = ev.Year
		return withCriteria(s, c)
	case SetType:
		c := s.Criteria
		c.Type = ev.Type
		return withCriteria(s, c)
	case SetWatchedFilter:
		c := s.Criteria
		c.Watched = ev.Filter
		return withCriteria(s, c)
	case SetFavoriteFilter:
		c := s.Criteria
		c.Favorite = ev.Filter
		return withCriteria(s, c)
	case ResetFilters:
		return withCriteria(s, catalog.Criteria{})

	case ToggleWatched:
		if s.Watched.Has(ev.ID) == ev.On {
			return s, 0
		}
		s.Watched = s.Watched.With(ev.ID, ev.On)
		return s, Persist | stateChange(s.Criteria.DependsOnWatched())
	case ToggleFavorite:
		if s.Favorite.Has(ev.ID) == ev.On {
			return s, 0
		}
		s.Favorite = s.Favorite.With(ev.ID, ev.On)
		return s, Persist | stateChange(s.Criteria.DependsOnFavorite())
	case ClearWatched:
		if s.Watched.Len() == 0 {
			return s, 0
		}
		s.Watched = catalog.IDSet{}
		return s, Persist | stateChange(s.Criteria.DependsOnWatched())

	case SetMode:
		mode := window.ParseMode(string(ev.Mode))
		if mode == s.Mode {
			return s, 0
		}
		s.Mode = mode
		return s, ResetScroll | RecomputeLayout | RecomputeWindow | Persist
	case Resize:
		if ev.Width == s.Width && ev.Height == s.ViewportHeight {
			return s, 0
		}
		s.Width = ev.Width
		s.ViewportHeight = ev.Height
		return s, RecomputeLayout | ClampScroll | RecomputeWindow
	case ScrollTo:
		if ev.Offset == s.Scroll {
			return s, 0
		}
		s.Scroll = ev.Offset
		return s, ClampScroll | RecomputeWindow
	case ScrollBy:
		if ev.Delta == 0 {
			return s, 0
		}
		s.Scroll += ev.Delta
		return s, ClampScroll | RecomputeWindow
	case ToggleTheme:
		if s.Theme == ThemeGreen {
			s.Theme = ThemeDark
		} else {
			s.Theme = ThemeGreen
		}
		return s, Persist | RecomputeWindow
	}
	return s, 0
}

func withCriteria(s State, c catalog.Criteria) (State, Effects) {
	if c == s.Criteria {
		return s, 0
	}
	s.Criteria = c
	return s, refilter
}

// stateChange picks between a full re-filter and a window-only refresh
// depending on whether the active criteria read the toggled set.
func stateChange(filterDepends bool) Effects {
	if filterDepends {
		return refilter
	}
	return RecomputeWindow
}
