package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"anime_checklist/utils"
)

// DefaultBlacklist is matched as lower-case substrings of each tag.
var DefaultBlacklist = []string{
	"hentai", "ecchi", "erotica", "borderline porn", "promotional",
	"anime influenced", "kids", "boys love", "yaoi", "shounen ai",
}

const DefaultMinYear = 2007

// Eligibility decides which dataset entries make it into the catalog.
type Eligibility struct {
	MinYear   int
	Blacklist []string
}

func DefaultEligibility() Eligibility {
	return Eligibility{MinYear: DefaultMinYear, Blacklist: DefaultBlacklist}
}

// RawEntry mirrors one element of the offline database "data" array.
type RawEntry struct {
	Sources      []string   `json:"sources"`
	Title        string     `json:"title"`
	Type         string     `json:"type"`
	Episodes     int        `json:"episodes"`
	Status       string     `json:"status"`
	AnimeSeason  *RawSeason `json:"animeSeason"`
	Picture      string     `json:"picture"`
	Thumbnail    string     `json:"thumbnail"`
	Synonyms     []string   `json:"synonyms"`
	Relations    []string   `json:"relations"`
	RelatedAnime []string   `json:"relatedAnime"`
	Tags         []string   `json:"tags"`
	Studios      []string   `json:"studios"`
}

type RawSeason struct {
	Season string `json:"season"`
	Year   Year   `json:"year"`
}

// Year accepts a JSON number or a numeric string. Anything else decodes to 0,
// which the normalizer treats as "no year".
type Year int

func (y *Year) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	s = strings.Trim(s, `"`)
	if s == "" || s == "null" {
		*y = 0
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		*y = Year(n)
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		*y = Year(int(f))
		return nil
	}
	*y = 0
	return nil
}

// Normalize turns a raw entry into a Record with the given id, or reports why
// the entry is not eligible.
func Normalize(raw RawEntry, id int, rules Eligibility) (Record, error) {
	for _, tag := range raw.Tags {
		lower := strings.ToLower(tag)
		for _, b := range rules.Blacklist {
			if b != "" && strings.Contains(lower, b) {
				return Record{}, fmt.Errorf("%q: %w", tag, ErrBlacklisted)
			}
		}
	}

	var year int
	var season string
	if raw.AnimeSeason != nil {
		year = int(raw.AnimeSeason.Year)
		season = raw.AnimeSeason.Season
	}
	if year <= 0 {
		return Record{}, ErrNoYear
	}
	if year < rules.MinYear {
		return Record{}, fmt.Errorf("%d: %w", year, ErrTooOld)
	}

	relations := raw.Relations
	if len(relations) == 0 {
		relations = raw.RelatedAnime
	}
	status := raw.Status
	if status == "" {
		status = StatusUnknown
	}

	return Record{
		ID:        id,
		Title:     raw.Title,
		Type:      raw.Type,
		Episodes:  raw.Episodes,
		Year:      year,
		Season:    season,
		Tags:      nonNil(raw.Tags),
		Sources:   nonNil(raw.Sources),
		Relations: nonNil(relations),
		Synonyms:  nonNil(raw.Synonyms),
		Status:    status,
		Studios:   nonNil(raw.Studios),
		Picture:   raw.Picture,
		Thumbnail: raw.Thumbnail,
	}, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// LoadStats counts what happened to each dataset entry.
type LoadStats struct {
	Read        int
	Kept        int
	NoYear      int
	TooOld      int
	Blacklisted int
}

func (s LoadStats) Dropped() int { return s.Read - s.Kept }

// Decode reads an offline-database document and builds the catalog. Entries
// failing normalization are dropped and counted; they never fail the load.
func Decode(r io.Reader, rules Eligibility, log *slog.Logger) (*Catalog, LoadStats, error) {
	if log == nil {
		log = slog.Default()
	}
	var stats LoadStats
	var records []Record

	dec := json.NewDecoder(r)
	if err := expectDelim(dec, '{'); err != nil {
		return nil, stats, err
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, stats, fmt.Errorf("dataset: %w", err)
		}
		key, _ := tok.(string)
		if key != "data" {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, stats, fmt.Errorf("dataset: field %q: %w", key, err)
			}
			continue
		}
		if err := expectDelim(dec, '['); err != nil {
			return nil, stats, err
		}
		for dec.More() {
			var raw RawEntry
			if err := dec.Decode(&raw); err != nil {
				return nil, stats, fmt.Errorf("dataset: entry %d: %w", stats.Read, err)
			}
			stats.Read++
			rec, err := Normalize(raw, len(records), rules)
			if err != nil {
				switch {
				case errors.Is(err, ErrNoYear):
					stats.NoYear++
				case errors.Is(err, ErrTooOld):
					stats.TooOld++
				case errors.Is(err, ErrBlacklisted):
					stats.Blacklisted++
				}
				log.Debug("entry dropped", slog.String("title", raw.Title), slog.Any("reason", err))
				continue
			}
			records = append(records, rec)
		}
		if err := expectDelim(dec, ']'); err != nil {
			return nil, stats, err
		}
	}
	stats.Kept = len(records)

	cat, err := New(records)
	if err != nil {
		return nil, stats, err
	}
	log.Info("catalog loaded",
		slog.Int("read", stats.Read),
		slog.Int("kept", stats.Kept),
		slog.Int("no_year", stats.NoYear),
		slog.Int("too_old", stats.TooOld),
		slog.Int("blacklisted", stats.Blacklisted),
	)
	return cat, stats, nil
}

// LoadFile decodes the dataset at path, accepting UTF-8 or BOM-marked UTF-16.
func LoadFile(path string, rules Eligibility, log *slog.Logger) (*Catalog, LoadStats, error) {
	data, err := utils.ReadText(path)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("dataset: %w", err)
	}
	return Decode(bytes.NewReader(data), rules, log)
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("dataset: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("dataset: expected %q, got %v", want, tok)
	}
	return nil
}
