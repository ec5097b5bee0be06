package ui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	gloss "github.com/charmbracelet/lipgloss"

	"anime_checklist/lang"
	"anime_checklist/session"
	"anime_checklist/utils"
)

type AppState int

const (
	StateBrowse AppState = iota
	StateDetail
	StateTags
	StateConfirm
)

type AppModel struct {
	state   AppState
	browser BrowserModel
	detail  DetailModel
	tags    TagPickerModel
	confirm string
	log     *slog.Logger
	width   int
	height  int
}

// Options wires the app to its session and settings.
type Options struct {
	Session   *session.Session
	Timing    utils.TimingConfig
	ExportDir string
	Logger    *slog.Logger
}

func NewAppModel(opts Options) AppModel {
	return newAppModel(opts, newTeaScheduler(opts.Timing.Frame()))
}

func newAppModel(opts Options, sched scheduler) AppModel {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return AppModel{
		state:   StateBrowse,
		browser: NewBrowserModel(opts.Session, opts.Timing, opts.ExportDir, sched, log),
		log:     log,
	}
}

func (m AppModel) Init() tea.Cmd { return nil }

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch tm := msg.(type) {
	case tea.KeyMsg:
		if tm.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width, m.height = tm.Width, tm.Height
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.browser, cmd = m.browser.Update(tm)
		cmds = append(cmds, cmd)
		switch m.state {
		case StateDetail:
			m.detail, cmd = m.detail.Update(tm)
			cmds = append(cmds, cmd)
		case StateTags:
			m.tags, cmd = m.tags.Update(tm)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	// Background work always belongs to the browser, whatever is on screen.
	case timerMsg, exportDoneMsg, spinner.TickMsg:
		var cmd tea.Cmd
		m.browser, cmd = m.browser.Update(msg)
		return m, cmd
	}

	switch m.state {
	case StateBrowse:
		return m.handleStateBrowse(msg)
	case StateDetail:
		return m.handleStateDetail(msg)
	case StateTags:
		return m.handleStateTags(msg)
	case StateConfirm:
		return m.handleStateConfirm(msg)
	default:
		return m, nil
	}
}

func (m AppModel) handleStateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch tm := msg.(type) {
	case openDetailMsg:
		rec, err := m.browser.sess.Record(tm.ID)
		if err != nil {
			m.browser.setStatus(lang.Active().Common.MissingRecord, true)
			return m, nil
		}
		m.detail = NewDetailModel(rec, m.browser.sess.IsWatched(rec.ID), m.browser.sess.IsFavorite(rec.ID),
			m.browser.styles, m.width, m.height)
		m.state = StateDetail
		return m, nil

	case openTagsMsg:
		m.tags = NewTagPickerModel(m.browser.sess.Catalog().Tags(), m.browser.sess.Criteria().Tag,
			m.browser.styles, m.width, m.height)
		m.state = StateTags
		return m, nil

	case confirmClearMsg:
		m.confirm = lang.ClearWatchedPrompt(tm.Count)
		m.state = StateConfirm
		return m, nil
	}

	var cmd tea.Cmd
	m.browser, cmd = m.browser.Update(msg)
	return m, cmd
}

func (m AppModel) handleStateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch tm := msg.(type) {
	case DetailCloseMsg:
		m.state = StateBrowse
		return m, nil
	case DetailToggleMsg:
		m.browser.Toggle(tm.ID, tm.Watched)
		m.detail.SetFlags(m.browser.sess.IsWatched(tm.ID), m.browser.sess.IsFavorite(tm.ID))
		return m, nil
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

func (m AppModel) handleStateTags(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch tm := msg.(type) {
	case TagSelectMsg:
		m.browser.SetTag(string(tm))
		m.state = StateBrowse
		return m, nil
	case TagCancelMsg:
		m.state = StateBrowse
		return m, nil
	}

	var cmd tea.Cmd
	m.tags, cmd = m.tags.Update(msg)
	return m, cmd
}

func (m AppModel) handleStateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "y", "Y", "enter":
		m.browser.ClearWatched()
		m.log.Info("watched progress cleared")
		m.state = StateBrowse
	case "n", "N", "esc", "q":
		m.state = StateBrowse
	}
	return m, nil
}

func (m AppModel) View() string {
	switch m.state {
	case StateBrowse:
		return m.browser.View()
	case StateDetail:
		return m.detail.View()
	case StateTags:
		return m.tags.View()
	case StateConfirm:
		texts := lang.Active().Confirm
		body := m.confirm + "\n\n" + m.browser.styles.Hint.Render(texts.Yes+"   "+texts.No)
		dialog := m.browser.styles.ConfirmBox.Render(body)
		return gloss.Place(m.width, m.height, gloss.Center, gloss.Center, dialog)
	default:
		return lang.Active().Common.UnknownState
	}
}

// RunApp runs the browser until the user quits.
func RunApp(opts Options) error {
	p := tea.NewProgram(NewAppModel(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
