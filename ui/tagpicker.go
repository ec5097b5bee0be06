package ui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	gloss "github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"

	"anime_checklist/lang"
)

// TagPickerModel wraps a bubbles list to choose the genre filter.
type TagPickerModel struct {
	list list.Model
	hint gloss.Style
}

type tagItem struct {
	tag   string // empty means no restriction
	label string
}

func (i tagItem) Title() string       { return i.label }
func (i tagItem) Description() string { return "" }
func (i tagItem) FilterValue() string { return i.label }

// Messages used to communicate selection/cancel to the parent AppModel
type TagSelectMsg string
type TagCancelMsg struct{}

// NewTagPickerModel lists "all genres" followed by tags, preselecting current.
func NewTagPickerModel(tags []string, current string, styles Styles, width, height int) TagPickerModel {
	texts := lang.Active().Tags
	items := make([]list.Item, 0, len(tags)+1)
	items = append(items, tagItem{tag: "", label: texts.AllTags})
	selected := 0
	for i, t := range tags {
		items = append(items, tagItem{tag: t, label: t})
		if t == current {
			selected = i + 1
		}
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	delegate.Styles.SelectedTitle = gloss.NewStyle().
		Foreground(styles.Palette.Accent).
		BorderLeft(true).
		BorderStyle(gloss.NormalBorder()).
		BorderForeground(styles.Palette.Accent).
		PaddingLeft(1).
		Bold(true)
	delegate.Styles.NormalTitle = gloss.NewStyle().
		Foreground(styles.Palette.Subtle).
		PaddingLeft(2)

	l := list.New(items, delegate, max(20, width-4), max(5, height-3))
	l.Title = texts.Title
	l.SetShowHelp(false)
	l.SetShowTitle(true)
	l.SetShowStatusBar(true)
	l.SetStatusBarItemName(texts.StatusSingular, texts.StatusPlural)
	l.DisableQuitKeybindings()
	l.Filter = substringFilter
	l.Styles.Title = gloss.NewStyle().Foreground(styles.Palette.Accent).Bold(true)
	l.Styles.StatusBar = gloss.NewStyle().
		Foreground(styles.Palette.Muted).
		PaddingBottom(1).
		PaddingLeft(2)

	l.FilterInput.Prompt = texts.FilterPrompt
	l.FilterInput.PromptStyle = styles.Prompt
	l.FilterInput.TextStyle = styles.PromptText
	l.FilterInput.Cursor.Style = styles.PromptCursor
	l.Select(selected)

	return TagPickerModel{list: l, hint: styles.Hint}
}

func (m TagPickerModel) Init() tea.Cmd { return nil }

func (m TagPickerModel) Update(msg tea.Msg) (TagPickerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(max(20, msg.Width-4), max(5, msg.Height-3))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if m.list.FilterState() == list.Filtering {
				// accept the filter text and keep picking
				break
			}
			if item, ok := m.list.SelectedItem().(tagItem); ok {
				return m, func() tea.Msg { return TagSelectMsg(item.tag) }
			}
		case "esc":
			if m.list.FilterState() == list.Filtering || m.list.IsFiltered() {
				m.list.ResetFilter()
				return m, nil
			}
			return m, func() tea.Msg { return TagCancelMsg{} }
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m TagPickerModel) View() string {
	hint := m.hint.Render(lang.Active().Hint.Tags)
	return gloss.NewStyle().
		PaddingTop(1).
		PaddingLeft(2).
		Render(m.list.View() + "\n" + hint)
}

// substringFilter keeps tags containing the term, ignoring case, in list
// order.
func substringFilter(term string, targets []string) []list.Rank {
	fold := cases.Fold()
	term = fold.String(strings.TrimSpace(term))
	ranks := make([]list.Rank, 0, len(targets))
	for i, t := range targets {
		if term == "" {
			ranks = append(ranks, list.Rank{Index: i})
			continue
		}
		folded := fold.String(t)
		at := strings.Index(folded, term)
		if at < 0 {
			continue
		}
		start := utf8.RuneCountInString(folded[:at])
		matched := make([]int, utf8.RuneCountInString(term))
		for j := range matched {
			matched[j] = start + j
		}
		ranks = append(ranks, list.Rank{Index: i, MatchedIndexes: matched})
	}
	return ranks
}
