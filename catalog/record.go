package catalog

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// Display types found in the dataset.
const (
	TypeTV      = "TV"
	TypeMovie   = "MOVIE"
	TypeOVA     = "OVA"
	TypeONA     = "ONA"
	TypeSpecial = "SPECIAL"
	TypeUnknown = "UNKNOWN"
)

// Airing statuses found in the dataset.
const (
	StatusFinished = "FINISHED"
	StatusOngoing  = "ONGOING"
	StatusUpcoming = "UPCOMING"
	StatusUnknown  = "UNKNOWN"
)

// Record is one catalog entry. Records are values and never change once the
// catalog is built; the slices they carry are shared and must not be written.
type Record struct {
	ID        int
	Title     string
	Type      string
	Episodes  int // 0 when unknown
	Year      int
	Season    string
	Tags      []string
	Sources   []string
	Relations []string
	Synonyms  []string
	Status    string
	Studios   []string
	Picture   string
	Thumbnail string
}

// DisplayType falls back to "TV" the way the list and exports label entries.
func (r Record) DisplayType() string {
	if r.Type == "" {
		return TypeTV
	}
	return r.Type
}

func (r Record) HasTag(tag string) bool {
	return slices.Contains(r.Tags, tag)
}

// Catalog is the full ordered record sequence plus an id index.
type Catalog struct {
	records []Record
	index   map[int]int
	folded  []string // case-folded titles, parallel to records
}

// New builds a catalog, keeping the given order.
func New(records []Record) (*Catalog, error) {
	c := &Catalog{
		records: records,
		index:   make(map[int]int, len(records)),
		folded:  make([]string, len(records)),
	}
	fold := cases.Fold()
	for i, r := range records {
		if _, dup := c.index[r.ID]; dup {
			return nil, fmt.Errorf("catalog: id %d: %w", r.ID, ErrDuplicateID)
		}
		c.index[r.ID] = i
		c.folded[i] = fold.String(r.Title)
	}
	return c, nil
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// All returns the records in catalog order. The slice is shared.
func (c *Catalog) All() []Record {
	if c == nil {
		return nil
	}
	return c.records
}

// Lookup returns the record for id or a *LookupError.
func (c *Catalog) Lookup(id int) (Record, error) {
	if c != nil {
		if i, ok := c.index[id]; ok {
			return c.records[i], nil
		}
	}
	return Record{}, &LookupError{ID: id}
}

// Tags lists every distinct tag, ascending.
func (c *Catalog) Tags() []string {
	seen := map[string]struct{}{}
	for _, r := range c.All() {
		for _, t := range r.Tags {
			seen[t] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// Years lists every distinct year, newest first.
func (c *Catalog) Years() []int {
	seen := map[int]struct{}{}
	for _, r := range c.All() {
		seen[r.Year] = struct{}{}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// Types lists every distinct stored type, ascending. Untyped records are
// not offered since the type filter compares stored values.
func (c *Catalog) Types() []string {
	seen := map[string]struct{}{}
	for _, r := range c.All() {
		if r.Type != "" {
			seen[r.Type] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		if strings.TrimSpace(k) != "" {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
