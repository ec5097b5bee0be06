package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anime_checklist/catalog"
)

var exportDay = time.Date(2024, time.March, 9, 22, 30, 0, 0, time.UTC)

func sample() []catalog.Record {
	return []catalog.Record{
		{ID: 0, Title: "Fullmetal <Alchemist>", Type: catalog.TypeTV, Episodes: 64, Year: 2009, Status: catalog.StatusFinished,
			Tags: []string{"action", "adventure", "drama", "fantasy", "military", "magic"}},
		{ID: 3, Title: "Untyped", Year: 2015},
	}
}

func TestNewDocument(t *testing.T) {
	doc, err := NewDocument(catalog.TargetWatched, sample(), exportDay)
	require.NoError(t, err)

	assert.Equal(t, "My Watched Anime List", doc.Title)
	assert.Equal(t, 2, doc.Count())
	assert.Equal(t, 64, doc.TotalEpisodes)
	assert.Equal(t, Entry{Index: 2, Title: "Untyped", Year: "2015", Type: "TV", Episodes: "-", Status: "Unknown"}, doc.Entries[1])
}

func TestNewDocument_Empty(t *testing.T) {
	_, err := NewDocument(catalog.TargetFavorite, nil, exportDay)
	assert.ErrorIs(t, err, ErrEmptySelection)
	assert.ErrorContains(t, err, "no favorite anime")
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "anime_watched_list_2024-03-09.doc", Filename(catalog.TargetWatched, KindWord, exportDay))
	assert.Equal(t, "anime_favorite_list_2024-03-09.pdf", Filename(catalog.TargetFavorite, KindPDF, exportDay))

	east := time.FixedZone("JST", 9*3600)
	assert.Equal(t, "anime_watched_list_2024-03-09.pdf", Filename(catalog.TargetWatched, KindPDF, exportDay.In(east)))
}

func TestParseKind(t *testing.T) {
	k, ok := ParseKind("Word")
	assert.True(t, ok)
	assert.Equal(t, KindWord, k)
	_, ok = ParseKind("odt")
	assert.False(t, ok)
}

func TestWord(t *testing.T) {
	doc, err := NewDocument(catalog.TargetFavorite, sample(), exportDay)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Word(&buf, doc))
	assert.Contains(t, buf.String(), "<w:View>Print</w:View>")

	page, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)

	assert.Equal(t, "My Favorite Anime List", page.Find("h1").Text())
	assert.Equal(t, "Generated on: Mar 9, 2024", page.Find("p.generated").Text())

	entries := page.Find("tr.entry")
	require.Equal(t, 2, entries.Length())
	assert.Equal(t, "1. Fullmetal <Alchemist>", entries.Eq(0).Find("h2").Text())
	assert.Equal(t, "Genres: action, adventure, drama, fantasy, military", entries.Eq(0).Find(".genres").Text())
	assert.Contains(t, entries.Eq(1).Find(".meta").Text(), "Episodes: -")
	assert.Equal(t, 0, entries.Eq(1).Find(".genres").Length())

	assert.Equal(t, "2", page.Find("#total-anime").Text())
	assert.Equal(t, "64", page.Find("#total-episodes").Text())
}

func TestPDF_Paginates(t *testing.T) {
	tests := []struct {
		items int
		pages int
	}{
		{1, 1},
		{7, 1},
		{8, 2},
		{20, 3},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d items", tt.items), func(t *testing.T) {
			recs := make([]catalog.Record, tt.items)
			for i := range recs {
				recs[i] = catalog.Record{ID: i, Title: fmt.Sprintf("Entry %d", i), Year: 2010, Episodes: 12}
			}
			doc, err := NewDocument(catalog.TargetWatched, recs, exportDay)
			require.NoError(t, err)

			pdf := renderPDF(doc)
			require.NoError(t, pdf.Error())
			assert.Equal(t, tt.pages, pdf.PageNo())
		})
	}
}

func TestPDF_Output(t *testing.T) {
	doc, err := NewDocument(catalog.TargetWatched, sample(), exportDay)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, PDF(&buf, doc))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestTruncateTitle(t *testing.T) {
	short := strings.Repeat("a", 55)
	assert.Equal(t, short, truncateTitle(short))

	long := strings.Repeat("b", 56)
	got := truncateTitle(long)
	assert.Equal(t, strings.Repeat("b", 52)+"...", got)
}

func TestWriteFile(t *testing.T) {
	doc, err := NewDocument(catalog.TargetWatched, sample(), exportDay)
	require.NoError(t, err)

	dir := t.TempDir()
	path, err := WriteFile(dir, KindWord, doc)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "anime_watched_list_2024-03-09.doc"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Total Anime")

	_, err = WriteFile(dir, Kind("odt"), doc)
	assert.Error(t, err)
}
