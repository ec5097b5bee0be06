package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func yearsCatalog(t *testing.T) *Catalog {
	t.Helper()
	var records []Record
	for i := 0; i < 10; i++ {
		records = append(records, Record{
			ID:    i,
			Title: fmt.Sprintf("Show %d", 2010+i),
			Type:  []string{TypeTV, TypeMovie}[i%2],
			Year:  2010 + i,
			Tags:  []string{[]string{"Action", "Drama"}[i%2], "Comedy"},
		})
	}
	cat, err := New(records)
	require.NoError(t, err)
	return cat
}

func ids(records []Record) []int {
	out := make([]int, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestApply_YearScenario(t *testing.T) {
	cat := yearsCatalog(t)

	got := Apply(cat, Criteria{Year: "2015"}, nil, nil)

	require.Len(t, got, 1)
	assert.Equal(t, 2015, got[0].Year)
}

func TestApply_NoActiveAxisReturnsCatalog(t *testing.T) {
	cat := yearsCatalog(t)

	got := Apply(cat, Criteria{Search: "   "}, NewIDSet(1), NewIDSet(2))

	assert.Equal(t, ids(cat.All()), ids(got))
}

func TestApply_SingleAxis(t *testing.T) {
	cat, err := New([]Record{
		{ID: 0, Title: "Cowboy Bebop", Type: TypeTV, Year: 2010, Tags: []string{"Space"}},
		{ID: 1, Title: "BEBOP Movie", Type: TypeMovie, Year: 2011, Tags: []string{"space"}},
		{ID: 2, Title: "Trigun", Type: "", Year: 2010, Tags: []string{"Western", "Space"}},
		{ID: 3, Title: "Mushishi", Type: TypeOVA, Year: 2012},
	})
	require.NoError(t, err)
	watched := NewIDSet(0, 3)
	favorite := NewIDSet(2)

	tests := []struct {
		name     string
		criteria Criteria
		want     []int
	}{
		{"search is case-insensitive", Criteria{Search: "bebop"}, []int{0, 1}},
		{"search is trimmed", Criteria{Search: "  trig  "}, []int{2}},
		{"tag is exact", Criteria{Tag: "Space"}, []int{0, 2}},
		{"year accepts padded string", Criteria{Year: " 2010 "}, []int{0, 2}},
		{"unparsable year matches nothing", Criteria{Year: "soon"}, nil},
		{"type compares the stored value", Criteria{Type: TypeTV}, []int{0}},
		{"watched only", Criteria{Watched: WatchedOnly}, []int{0, 3}},
		{"unwatched only", Criteria{Watched: UnwatchedOnly}, []int{1, 2}},
		{"favorite only", Criteria{Favorite: FavoriteOnly}, []int{2}},
		{"not favorite", Criteria{Favorite: NotFavoriteOnly}, []int{0, 1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(cat, tt.criteria, watched, favorite)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApply_Conjunction(t *testing.T) {
	cat := yearsCatalog(t)
	watched := NewIDSet(1, 3, 4, 5)

	got := Apply(cat, Criteria{Type: TypeMovie, Tag: "Drama", Watched: WatchedOnly, Search: "show"}, watched, nil)

	assert.Equal(t, []int{1, 3, 5}, ids(got))
}

func TestApply_PreservesCatalogOrder(t *testing.T) {
	records := []Record{
		{ID: 40, Title: "zeta", Year: 2020},
		{ID: 7, Title: "alpha", Year: 2020},
		{ID: 12, Title: "zed", Year: 2020},
		{ID: 3, Title: "beta", Year: 2020},
	}
	cat, err := New(records)
	require.NoError(t, err)

	got := Apply(cat, Criteria{Search: "z"}, nil, nil)

	assert.Equal(t, []int{40, 12}, ids(got))
}

func TestApply_EmptyCatalog(t *testing.T) {
	cat, err := New(nil)
	require.NoError(t, err)

	assert.Empty(t, Apply(cat, Criteria{Search: "x"}, nil, nil))
	assert.Empty(t, Apply(nil, Criteria{}, nil, nil))
}

func TestApply_DoesNotAliasCatalog(t *testing.T) {
	cat := yearsCatalog(t)

	got := Apply(cat, Criteria{}, nil, nil)
	got[0] = Record{ID: 99}

	first, err := cat.Lookup(0)
	require.NoError(t, err)
	assert.Equal(t, "Show 2010", first.Title)
}

func TestCriteria_Active(t *testing.T) {
	assert.False(t, Criteria{}.Active())
	assert.False(t, Criteria{Search: " \t"}.Active())
	assert.True(t, Criteria{Favorite: FavoriteOnly}.Active())
	assert.True(t, Criteria{Year: "2019"}.Active())
}

func TestSelected_UsesCatalogOrder(t *testing.T) {
	cat := yearsCatalog(t)
	watched := NewIDSet(8, 2, 5)
	favorite := NewIDSet(9)

	assert.Equal(t, []int{2, 5, 8}, ids(Selected(cat, TargetWatched, watched, favorite)))
	assert.Equal(t, []int{9}, ids(Selected(cat, TargetFavorite, watched, favorite)))
	assert.Empty(t, Selected(cat, TargetFavorite, watched, nil))
}

func TestParseTarget(t *testing.T) {
	tests := []struct {
		in   string
		want Target
		ok   bool
	}{
		{"watched", TargetWatched, true},
		{"Favorites", TargetFavorite, true},
		{"favorite", TargetFavorite, true},
		{"all", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseTarget(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
