// Package export renders a selection of catalog records as a Word (.doc)
// or PDF document. Renderers work on a Document built from a snapshot slice,
// so they can run off the UI loop without touching session state.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"anime_checklist/catalog"
	"anime_checklist/utils"
)

// ErrEmptySelection is returned when the target set has no records.
var ErrEmptySelection = errors.New("nothing to export")

// Kind is an output format and doubles as the file extension.
type Kind string

const (
	KindWord Kind = "doc"
	KindPDF  Kind = "pdf"
)

// ParseKind accepts "doc", "word" and "pdf".
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "doc", "word":
		return KindWord, true
	case "pdf":
		return KindPDF, true
	}
	return "", false
}

// Entry is one exported record with its display fields resolved.
type Entry struct {
	Index    int // 1-based
	Title    string
	Year     string
	Type     string
	Episodes string
	Status   string
	Tags     []string
}

type Document struct {
	Target        catalog.Target
	Title         string
	Generated     time.Time
	Entries       []Entry
	TotalEpisodes int
}

// Count is the number of exported records.
func (d Document) Count() int { return len(d.Entries) }

// GeneratedOn is the date line shown under the title.
func (d Document) GeneratedOn() string {
	return d.Generated.Format("Jan 2, 2006")
}

// NewDocument builds the document for target from records, which must
// already be the selected set in catalog order.
func NewDocument(target catalog.Target, records []catalog.Record, now time.Time) (Document, error) {
	if len(records) == 0 {
		return Document{}, fmt.Errorf("no %s anime: %w", target, ErrEmptySelection)
	}
	doc := Document{
		Target:    target,
		Title:     Title(target),
		Generated: now,
		Entries:   make([]Entry, 0, len(records)),
	}
	for i, r := range records {
		doc.TotalEpisodes += max(0, r.Episodes)
		doc.Entries = append(doc.Entries, Entry{
			Index:    i + 1,
			Title:    r.Title,
			Year:     orDash(r.Year),
			Type:     r.DisplayType(),
			Episodes: orDash(r.Episodes),
			Status:   orDefault(r.Status, "Unknown"),
			Tags:     r.Tags,
		})
	}
	return doc, nil
}

// Title is the document heading for target.
func Title(target catalog.Target) string {
	if target == catalog.TargetFavorite {
		return "My Favorite Anime List"
	}
	return "My Watched Anime List"
}

// Filename is anime_<target>_list_<YYYY-MM-DD>.<kind>, dated in UTC.
func Filename(target catalog.Target, kind Kind, now time.Time) string {
	return fmt.Sprintf("anime_%s_list_%s.%s", target, now.UTC().Format(time.DateOnly), kind)
}

// WriteFile renders doc into dir under its Filename and returns the path.
func WriteFile(dir string, kind Kind, doc Document) (string, error) {
	var buf bytes.Buffer
	var err error
	switch kind {
	case KindWord:
		err = Word(&buf, doc)
	case KindPDF:
		err = PDF(&buf, doc)
	default:
		return "", fmt.Errorf("unknown export format %q", kind)
	}
	if err != nil {
		return "", err
	}

	path := filepath.Join(utils.ExpandPath(dir), Filename(doc.Target, kind, doc.Generated))
	if err := utils.WriteFileAtomic(path, buf.Bytes()); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return path, nil
}

func orDash(n int) string {
	if n <= 0 {
		return "-"
	}
	return strconv.Itoa(n)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func firstTags(tags []string, n int) string {
	if len(tags) > n {
		tags = tags[:n]
	}
	return strings.Join(tags, ", ")
}
