package ui

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	gloss "github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"anime_checklist/catalog"
	"anime_checklist/lang"
)

// Maximum modal width in cells.
const detailMaxWidth = 80

// DetailModel shows every field of one record in a scrollable box.
type DetailModel struct {
	record   catalog.Record
	watched  bool
	favorite bool
	styles   Styles
	viewport viewport.Model
	width    int
	height   int
}

// Messages used to communicate toggles/close to the parent AppModel
type DetailToggleMsg struct {
	ID      int
	Watched bool // false toggles favorite
}
type DetailCloseMsg struct{}

func NewDetailModel(rec catalog.Record, watched, favorite bool, styles Styles, width, height int) DetailModel {
	m := DetailModel{
		record:   rec,
		watched:  watched,
		favorite: favorite,
		styles:   styles,
	}
	m.resize(width, height)
	return m
}

func (m DetailModel) ID() int { return m.record.ID }

// SetFlags refreshes the state marks after a toggle.
func (m *DetailModel) SetFlags(watched, favorite bool) {
	m.watched, m.favorite = watched, favorite
	offset := m.viewport.YOffset
	m.viewport.SetContent(m.content())
	m.viewport.SetYOffset(offset)
}

// boxSize is the outer modal size for the terminal size.
func boxSize(width, height int) (int, int) {
	return max(20, min(detailMaxWidth, width-4)), max(5, height-2)
}

func (m *DetailModel) resize(width, height int) {
	m.width, m.height = width, height
	boxW, boxH := boxSize(width, height)
	// border and horizontal padding
	m.viewport = viewport.New(boxW-6, boxH-2)
	m.viewport.SetContent(m.content())
}

func (m DetailModel) Init() tea.Cmd { return nil }

func (m DetailModel) Update(msg tea.Msg) (DetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "enter":
			return m, func() tea.Msg { return DetailCloseMsg{} }
		case " ", "x":
			id := m.record.ID
			return m, func() tea.Msg { return DetailToggleMsg{ID: id, Watched: true} }
		case "s":
			id := m.record.ID
			return m, func() tea.Msg { return DetailToggleMsg{ID: id, Watched: false} }
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m DetailModel) View() string {
	boxW, _ := boxSize(m.width, m.height)
	box := m.styles.DetailBox.Width(boxW - 2).Render(m.viewport.View())
	hint := m.styles.Hint.Render(lang.Active().Hint.Detail)
	return gloss.Place(m.width, m.height, gloss.Center, gloss.Center, box+"\n"+hint)
}

// content lays the record out for the viewport width.
func (m DetailModel) content() string {
	texts := lang.Active().Detail
	rec := m.record
	width := max(10, m.viewport.Width)
	s := m.styles

	var b strings.Builder
	b.WriteString(s.DetailTitle.Render(wordwrap.String(rec.Title, width)))
	b.WriteString("\n")

	sub := []string{strconv.Itoa(rec.Year)}
	if rec.Episodes > 0 {
		sub = append(sub, lang.Episodes(rec.Episodes))
	}
	if rec.Season != "" && rec.Season != "UNDEFINED" {
		sub = append(sub, rec.Season)
	}
	b.WriteString(s.Meta.Render(strings.Join(sub, " • ")))
	b.WriteString("\n\n")

	b.WriteString(s.Badge.Render(rec.DisplayType()) + " " + s.DetailLabel.Render(texts.Status+": ") + orNone(rec.Status, texts.None))
	b.WriteString("\n")
	b.WriteString(m.flag(m.watched, markWatched, texts.Watched, s.WatchedMark) + "   " +
		m.flag(m.favorite, markFavorite, texts.Favorite, s.FavoriteMark))
	b.WriteString("\n")

	section := func(label string, body string) {
		if body == "" {
			return
		}
		b.WriteString("\n")
		b.WriteString(s.DetailLabel.Render(label))
		b.WriteString("\n")
		b.WriteString(wordwrap.String(body, width))
		b.WriteString("\n")
	}
	section(texts.Studios, strings.Join(rec.Studios, ", "))
	section(texts.Tags, strings.Join(rec.Tags, ", "))
	section(texts.Synonyms, strings.Join(rec.Synonyms, " / "))
	section(texts.Related, linkList(rec.Relations))
	section(texts.Sources, linkList(rec.Sources))

	return strings.TrimRight(b.String(), "\n")
}

func (m DetailModel) flag(on bool, mark, label string, style gloss.Style) string {
	if on {
		return style.Render("[" + mark + "] " + label)
	}
	return m.styles.Meta.Render("[ ] " + label)
}

// linkList prints one "host  uri" line per link.
func linkList(uris []string) string {
	lines := make([]string, 0, len(uris))
	for _, u := range uris {
		host := hostName(u)
		if host == u {
			lines = append(lines, u)
			continue
		}
		lines = append(lines, host+"  "+u)
	}
	return strings.Join(lines, "\n")
}

// hostName labels a link by its host without "www.". Unparsable input is
// returned as is.
func hostName(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

func orNone(s, none string) string {
	if s == "" {
		return none
	}
	return s
}
