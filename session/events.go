package session

import (
	"anime_checklist/catalog"
	"anime_checklist/window"
)

// Event is a user or environment action the session reacts to.
type Event interface {
	isEvent()
}

type (
	SetSearch         struct{ Query string }
	SetTag            struct{ Tag string }
	SetYear           struct{ Year string }
	SetType           struct{ Type string }
	SetWatchedFilter  struct{ Filter catalog.WatchedFilter }
	SetFavoriteFilter struct{ Filter catalog.FavoriteFilter }
	ResetFilters      struct{}

	ToggleWatched struct {
		ID int
		On bool
	}
	ToggleFavorite struct {
		ID int
		On bool
	}
	ClearWatched struct{}

	SetMode     struct{ Mode window.Mode }
	Resize      struct{ Width, Height int }
	ScrollTo    struct{ Offset int }
	ScrollBy    struct{ Delta int }
	ToggleTheme struct{}
)

func (SetSearch) isEvent()         {}
func (SetTag) isEvent()            {}
func (SetYear) isEvent()           {}
func (SetType) isEvent()           {}
func (SetWatchedFilter) isEvent()  {}
func (SetFavoriteFilter) isEvent() {}
func (ResetFilters) isEvent()      {}
func (ToggleWatched) isEvent()     {}
func (ToggleFavorite) isEvent()    {}
func (ClearWatched) isEvent()      {}
func (SetMode) isEvent()           {}
func (Resize) isEvent()            {}
func (ScrollTo) isEvent()          {}
func (ScrollBy) isEvent()          {}
func (ToggleTheme) isEvent()       {}
