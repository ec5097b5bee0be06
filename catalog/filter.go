package catalog

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// WatchedFilter restricts on watched-set membership.
type WatchedFilter int

const (
	WatchedAny WatchedFilter = iota
	WatchedOnly
	UnwatchedOnly
)

// FavoriteFilter restricts on favorite-set membership.
type FavoriteFilter int

const (
	FavoriteAny FavoriteFilter = iota
	FavoriteOnly
	NotFavoriteOnly
)

// Criteria is the set of restrictions the user has selected. The zero value
// restricts nothing.
type Criteria struct {
	Search   string
	Tag      string
	Year     string // as typed or picked; compared numerically
	Type     string
	Watched  WatchedFilter
	Favorite FavoriteFilter
}

// Active reports whether any axis restricts the catalog.
func (c Criteria) Active() bool {
	return strings.TrimSpace(c.Search) != "" || c.Tag != "" || strings.TrimSpace(c.Year) != "" ||
		c.Type != "" || c.DependsOnWatched() || c.DependsOnFavorite()
}

func (c Criteria) DependsOnWatched() bool  { return c.Watched != WatchedAny }
func (c Criteria) DependsOnFavorite() bool { return c.Favorite != FavoriteAny }

// matcher is Criteria with its string inputs resolved once per Apply.
type matcher struct {
	query    string
	tag      string
	year     int
	hasYear  bool
	badYear  bool
	typ      string
	watched  WatchedFilter
	favorite FavoriteFilter
}

func (c Criteria) compile() matcher {
	m := matcher{
		query:    cases.Fold().String(strings.TrimSpace(c.Search)),
		tag:      c.Tag,
		typ:      c.Type,
		watched:  c.Watched,
		favorite: c.Favorite,
	}
	if y := strings.TrimSpace(c.Year); y != "" {
		m.hasYear = true
		n, err := strconv.Atoi(y)
		if err != nil {
			m.badYear = true
		}
		m.year = n
	}
	return m
}

func (m matcher) match(r Record, folded string, watched, favorite IDSet) bool {
	if m.query != "" && !strings.Contains(folded, m.query) {
		return false
	}
	if m.tag != "" && !r.HasTag(m.tag) {
		return false
	}
	if m.hasYear && (m.badYear || r.Year != m.year) {
		return false
	}
	if m.typ != "" && r.Type != m.typ {
		return false
	}
	switch m.watched {
	case WatchedOnly:
		if !watched.Has(r.ID) {
			return false
		}
	case UnwatchedOnly:
		if watched.Has(r.ID) {
			return false
		}
	}
	switch m.favorite {
	case FavoriteOnly:
		if !favorite.Has(r.ID) {
			return false
		}
	case NotFavoriteOnly:
		if favorite.Has(r.ID) {
			return false
		}
	}
	return true
}

// Apply returns the records matching every active restriction, in catalog
// order. It has no side effects and never fails.
func Apply(cat *Catalog, criteria Criteria, watched, favorite IDSet) []Record {
	if cat.Len() == 0 {
		return nil
	}
	if !criteria.Active() {
		out := make([]Record, len(cat.records))
		copy(out, cat.records)
		return out
	}
	m := criteria.compile()
	var out []Record
	for i, r := range cat.records {
		if m.match(r, cat.folded[i], watched, favorite) {
			out = append(out, r)
		}
	}
	return out
}

// Target names a state set an export reads from.
type Target string

const (
	TargetWatched  Target = "watched"
	TargetFavorite Target = "favorite"
)

// ParseTarget accepts "watched", "favorite" and "favorites".
func ParseTarget(s string) (Target, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "watched":
		return TargetWatched, true
	case "favorite", "favorites":
		return TargetFavorite, true
	}
	return "", false
}

// Selected returns the records in the target set, in catalog order rather
// than set insertion order.
func Selected(cat *Catalog, target Target, watched, favorite IDSet) []Record {
	set := watched
	if target == TargetFavorite {
		set = favorite
	}
	var out []Record
	for _, r := range cat.All() {
		if set.Has(r.ID) {
			out = append(out, r)
		}
	}
	return out
}
