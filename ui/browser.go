package ui

import (
	"errors"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	gloss "github.com/charmbracelet/lipgloss"

	"anime_checklist/catalog"
	"anime_checklist/export"
	"anime_checklist/lang"
	"anime_checklist/session"
	"anime_checklist/utils"
	"anime_checklist/window"
)

type focus int

const (
	focusList focus = iota
	focusSearch
)

// Lines around the list: header, search, filters, hint, status.
const chromeHeight = 5

// Lines moved per mouse wheel notch.
const wheelStep = 3

// scheduler is a session.Scheduler whose requests become tea commands.
type scheduler interface {
	session.Scheduler
	Flush() tea.Cmd
}

// scrollCoalescer keeps the latest requested offset until the next frame.
type scrollCoalescer struct {
	limiter session.FrameLimiter
	target  int
}

// BrowserModel is the main screen: search box, filter bar and the windowed
// catalog list.
type BrowserModel struct {
	sess      *session.Session
	log       *slog.Logger
	styles    Styles
	sched     scheduler
	exportDir string

	search  textinput.Model
	spinner spinner.Model
	focus   focus
	cursor  int // index into the filtered collection
	width   int
	height  int

	searchDebounce *session.Debouncer
	resizeDebounce *session.Debouncer
	scroll         *scrollCoalescer

	target    catalog.Target
	exporting bool
	status    string
	statusErr bool
}

// Messages the browser sends up to AppModel.
type openDetailMsg struct{ ID int }
type openTagsMsg struct{}
type confirmClearMsg struct{ Count int }

type exportDoneMsg struct {
	Path string
	Err  error
}

func NewBrowserModel(sess *session.Session, timing utils.TimingConfig, exportDir string, sched scheduler, log *slog.Logger) BrowserModel {
	if log == nil {
		log = slog.Default()
	}
	styles := StylesFor(sess.State().Theme)

	ti := textinput.New()
	ti.Prompt = lang.Active().Search.Prompt
	ti.Placeholder = lang.Active().Search.Placeholder
	ti.SetValue(sess.Criteria().Search)
	applyInputStyles(&ti, styles)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return BrowserModel{
		sess:           sess,
		log:            log,
		styles:         styles,
		sched:          sched,
		exportDir:      exportDir,
		search:         ti,
		spinner:        sp,
		searchDebounce: &session.Debouncer{Key: session.KeySearch, Delay: timing.SearchDebounce()},
		resizeDebounce: &session.Debouncer{Key: session.KeyResize, Delay: timing.ResizeDebounce()},
		scroll:         &scrollCoalescer{limiter: session.FrameLimiter{Key: session.KeyScroll}},
		target:         catalog.TargetWatched,
	}
}

func applyInputStyles(ti *textinput.Model, s Styles) {
	ti.PromptStyle = s.Prompt
	ti.TextStyle = s.PromptText
	ti.Cursor.Style = s.PromptCursor
}

func (m BrowserModel) Init() tea.Cmd { return nil }

// listSize is the area rows are rendered into; one column is kept for the
// scrollbar.
func (m BrowserModel) listSize() (int, int) {
	return max(0, m.width-1), max(0, m.height-chromeHeight)
}

func (m BrowserModel) Update(msg tea.Msg) (BrowserModel, tea.Cmd) {
	var cmd tea.Cmd

	switch tm := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = tm.Width, tm.Height
		m.search.Width = max(10, m.width-gloss.Width(m.search.Prompt)-2)
		if m.sess.State().Width == 0 {
			m.applySize()
		} else {
			m.resizeDebounce.Trigger(m.sched)
		}

	case timerMsg:
		m.handleTimer(tm)

	case tea.MouseMsg:
		if tm.Action == tea.MouseActionPress {
			switch tm.Button {
			case tea.MouseButtonWheelUp:
				m.scrollBy(-wheelStep)
			case tea.MouseButtonWheelDown:
				m.scrollBy(wheelStep)
			}
		}

	case spinner.TickMsg:
		if m.exporting {
			m.spinner, cmd = m.spinner.Update(tm)
		}

	case exportDoneMsg:
		m.exporting = false
		if tm.Err != nil {
			m.log.Error("export failed", slog.Any("err", tm.Err))
			m.setStatus(lang.ExportFailed(tm.Err), true)
		} else {
			m.log.Info("export written", slog.String("path", tm.Path))
			m.setStatus(lang.ExportSaved(tm.Path), false)
		}

	case tea.KeyMsg:
		if m.focus == focusSearch {
			m, cmd = m.handleSearchKey(tm)
		} else {
			m, cmd = m.handleKey(tm)
		}
	}

	return m, tea.Batch(cmd, m.sched.Flush())
}

func (m *BrowserModel) handleTimer(tm timerMsg) {
	switch tm.Key {
	case session.KeySearch:
		if m.searchDebounce.Fire(tm.Gen) {
			m.dispatch(session.SetSearch{Query: m.search.Value()})
		}
	case session.KeyResize:
		if m.resizeDebounce.Fire(tm.Gen) {
			m.applySize()
		}
	case session.KeyScroll:
		if m.scroll.limiter.Fire(tm.Gen) {
			m.dispatch(session.ScrollTo{Offset: m.scroll.target})
		}
	}
}

func (m *BrowserModel) applySize() {
	w, h := m.listSize()
	m.dispatch(session.Resize{Width: w, Height: h})
}

// dispatch forwards ev to the session and keeps the cursor and pending
// scroll consistent with the effects it reports.
func (m *BrowserModel) dispatch(ev session.Event) session.Effects {
	eff := m.sess.Dispatch(ev)
	if eff.Has(session.ResetScroll) {
		m.cursor = 0
		m.scroll.limiter.Cancel()
	}
	if n := len(m.sess.Filtered()); m.cursor >= n {
		m.cursor = max(0, n-1)
	}
	if eff.Has(session.RecomputeLayout) && !eff.Has(session.ResetScroll) {
		m.revealCursor()
	}
	return eff
}

// revealCursor scrolls the selection back into view after the geometry
// moved it. A pending scroll was computed for the old layout and is dropped.
func (m *BrowserModel) revealCursor() {
	if len(m.sess.Filtered()) == 0 {
		return
	}
	m.scroll.limiter.Cancel()
	st := m.sess.State()
	g := m.sess.Geometry()
	if want := g.ScrollToReveal(st.Scroll, g.RowOf(m.cursor), st.ViewportHeight); want != st.Scroll {
		m.sess.Dispatch(session.ScrollTo{Offset: want})
	}
}

// currentScroll is the offset the next frame will show.
func (m BrowserModel) currentScroll() int {
	if m.scroll.limiter.Pending() {
		return m.scroll.target
	}
	return m.sess.State().Scroll
}

func (m *BrowserModel) scrollTo(offset int) {
	m.scroll.target = min(max(0, offset), m.sess.MaxScroll())
	m.scroll.limiter.Request(m.sched)
}

func (m *BrowserModel) scrollBy(delta int) {
	m.scrollTo(m.currentScroll() + delta)
}

// moveCursor moves the selection and scrolls just enough to keep it visible.
func (m *BrowserModel) moveCursor(delta int) {
	n := len(m.sess.Filtered())
	if n == 0 {
		return
	}
	m.cursor = min(max(0, m.cursor+delta), n-1)

	g := m.sess.Geometry()
	_, vh := m.listSize()
	base := m.currentScroll()
	if want := g.ScrollToReveal(base, g.RowOf(m.cursor), vh); want != base {
		m.scrollTo(want)
	}
}

func (m BrowserModel) pageItems() int {
	g := m.sess.Geometry()
	_, vh := m.listSize()
	return max(1, vh/max(1, g.RowHeight)) * max(1, g.ItemsPerRow)
}

// Selected returns the record under the cursor.
func (m BrowserModel) Selected() (catalog.Record, bool) {
	filtered := m.sess.Filtered()
	if m.cursor < 0 || m.cursor >= len(filtered) {
		return catalog.Record{}, false
	}
	return filtered[m.cursor], true
}

func (m BrowserModel) handleSearchKey(msg tea.KeyMsg) (BrowserModel, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", "tab":
		m.search.Blur()
		m.focus = focusList
		m.searchDebounce.Cancel()
		m.dispatch(session.SetSearch{Query: m.search.Value()})
		return m, nil
	}

	prev := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != prev {
		m.searchDebounce.Trigger(m.sched)
	}
	return m, cmd
}

func (m BrowserModel) handleKey(msg tea.KeyMsg) (BrowserModel, tea.Cmd) {
	g := m.sess.Geometry()
	crit := m.sess.Criteria()

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.focus = focusSearch
		cmd := m.search.Focus()
		return m, cmd

	// ---------------- Navigation ----------------
	case "down", "j":
		m.moveCursor(g.ItemsPerRow)
	case "up", "k":
		m.moveCursor(-g.ItemsPerRow)
	case "right", "l":
		if g.ItemsPerRow > 1 {
			m.moveCursor(1)
		}
	case "left", "h":
		if g.ItemsPerRow > 1 {
			m.moveCursor(-1)
		}
	case "pgdown", "ctrl+f":
		m.moveCursor(m.pageItems())
	case "pgup", "ctrl+b":
		m.moveCursor(-m.pageItems())
	case "home":
		m.moveCursor(-m.cursor)
	case "end", "G":
		m.moveCursor(len(m.sess.Filtered()))
	case "ctrl+e":
		m.scrollBy(1)
	case "ctrl+y":
		m.scrollBy(-1)

	// ---------------- Filters ----------------
	case "g":
		return m, func() tea.Msg { return openTagsMsg{} }
	case "y", "Y":
		m.dispatch(session.SetYear{Year: cycle(m.yearOptions(), crit.Year, step(msg.String() == "y"))})
	case "T":
		m.dispatch(session.SetType{Type: cycle(m.typeOptions(), crit.Type, 1)})
	case "w":
		m.dispatch(session.SetWatchedFilter{Filter: cycle(watchedOptions, crit.Watched, 1)})
	case "f":
		m.dispatch(session.SetFavoriteFilter{Filter: cycle(favoriteOptions, crit.Favorite, 1)})
	case "r":
		m.searchDebounce.Cancel()
		m.search.SetValue("")
		m.dispatch(session.ResetFilters{})
	case "v":
		mode := window.ModeGrid
		if g.Mode == window.ModeGrid {
			mode = window.ModeList
		}
		m.dispatch(session.SetMode{Mode: mode})

	// ---------------- Record state ----------------
	case " ", "x":
		if rec, ok := m.Selected(); ok {
			m.dispatch(session.ToggleWatched{ID: rec.ID, On: !m.sess.IsWatched(rec.ID)})
		}
	case "s":
		if rec, ok := m.Selected(); ok {
			m.dispatch(session.ToggleFavorite{ID: rec.ID, On: !m.sess.IsFavorite(rec.ID)})
		}
	case "enter":
		if rec, ok := m.Selected(); ok {
			id := rec.ID
			return m, func() tea.Msg { return openDetailMsg{ID: id} }
		}
	case "c":
		if n := m.sess.Stats().Watched; n > 0 {
			return m, func() tea.Msg { return confirmClearMsg{Count: n} }
		}
	case "C":
		m.dispatch(session.ToggleTheme{})
		m.styles = StylesFor(m.sess.State().Theme)
		applyInputStyles(&m.search, m.styles)
		m.setStatus(lang.ThemeChanged(m.sess.State().Theme == session.ThemeGreen), false)

	// ---------------- Export ----------------
	case "E":
		if m.target == catalog.TargetWatched {
			m.target = catalog.TargetFavorite
		} else {
			m.target = catalog.TargetWatched
		}
	case "d":
		return m.startExport(export.KindWord)
	case "p":
		return m.startExport(export.KindPDF)
	}
	return m, nil
}

// ClearWatched empties the watched set after the user confirmed it.
func (m *BrowserModel) ClearWatched() {
	m.dispatch(session.ClearWatched{})
}

// Toggle flips a state flag of id, used by the detail view.
func (m *BrowserModel) Toggle(id int, watched bool) {
	if watched {
		m.dispatch(session.ToggleWatched{ID: id, On: !m.sess.IsWatched(id)})
	} else {
		m.dispatch(session.ToggleFavorite{ID: id, On: !m.sess.IsFavorite(id)})
	}
}

// SetTag applies the tag chosen in the picker.
func (m *BrowserModel) SetTag(tag string) {
	m.dispatch(session.SetTag{Tag: tag})
}

// startExport snapshots the selection and renders it off the update loop.
func (m BrowserModel) startExport(kind export.Kind) (BrowserModel, tea.Cmd) {
	if m.exporting {
		return m, nil
	}
	doc, err := export.NewDocument(m.target, m.sess.Selected(m.target), time.Now())
	if errors.Is(err, export.ErrEmptySelection) {
		texts := lang.Active().Export
		msg := texts.EmptyWatched
		if m.target == catalog.TargetFavorite {
			msg = texts.EmptyFavorite
		}
		m.setStatus(msg, true)
		return m, nil
	}

	m.exporting = true
	m.setStatus(lang.Active().Export.Generating, false)
	dir := m.exportDir
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		path, err := export.WriteFile(dir, kind, doc)
		return exportDoneMsg{Path: path, Err: err}
	})
}

func (m *BrowserModel) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// ---------------- Filter options ----------------

var (
	watchedOptions  = []catalog.WatchedFilter{catalog.WatchedAny, catalog.WatchedOnly, catalog.UnwatchedOnly}
	favoriteOptions = []catalog.FavoriteFilter{catalog.FavoriteAny, catalog.FavoriteOnly, catalog.NotFavoriteOnly}
)

func (m BrowserModel) yearOptions() []string {
	years := m.sess.Catalog().Years()
	out := make([]string, 0, len(years)+1)
	out = append(out, "")
	for _, y := range years {
		out = append(out, strconv.Itoa(y))
	}
	return out
}

func (m BrowserModel) typeOptions() []string {
	return append([]string{""}, m.sess.Catalog().Types()...)
}

func step(forward bool) int {
	if forward {
		return 1
	}
	return -1
}

// cycle returns the option delta steps away from cur, wrapping around.
// An unknown cur counts as the first option.
func cycle[T comparable](options []T, cur T, delta int) T {
	if len(options) == 0 {
		return cur
	}
	i := max(0, slices.Index(options, cur))
	n := len(options)
	return options[((i+delta)%n+n)%n]
}

// ---------------- View ----------------

func (m BrowserModel) View() string {
	if m.width == 0 {
		return ""
	}
	listW, listH := m.listSize()
	line := gloss.NewStyle().MaxWidth(m.width)

	parts := []string{
		line.Render(m.headerView()),
		line.Render(m.search.View()),
		line.Render(m.filterView()),
	}
	body := m.bodyLines(listW, listH)
	bar := scrollbar(listH, m.sess.State().Scroll, m.sess.MaxScroll(), m.sess.Window().TotalHeight)
	for i := range body {
		parts = append(parts, padRight(body[i], listW)+m.renderBar(bar[i]))
	}
	parts = append(parts, line.Render(m.styles.Hint.Render(m.hintText())))
	parts = append(parts, line.Render(m.statusView()))
	return strings.Join(parts, "\n")
}

func (m BrowserModel) headerView() string {
	st := m.sess.Stats()
	header := m.styles.Header.Render(lang.Active().Header.Title) + "  " +
		m.styles.Stats.Render(lang.StatsLine(st.Watched, st.Total, st.Filtered))
	if m.exporting {
		header += "  " + m.spinner.View()
	}
	return header
}

func (m BrowserModel) filterView() string {
	texts := lang.Active().Filter
	crit := m.sess.Criteria()

	orAll := func(v string) string {
		if v == "" {
			return texts.All
		}
		return v
	}
	watched := map[catalog.WatchedFilter]string{
		catalog.WatchedAny:    texts.Any,
		catalog.WatchedOnly:   texts.Watched,
		catalog.UnwatchedOnly: texts.Unwatched,
	}[crit.Watched]
	favorite := map[catalog.FavoriteFilter]string{
		catalog.FavoriteAny:     texts.Any,
		catalog.FavoriteOnly:    texts.Favorite,
		catalog.NotFavoriteOnly: texts.NotFavorite,
	}[crit.Favorite]
	view := texts.ViewList
	if m.sess.Geometry().Mode == window.ModeGrid {
		view = texts.ViewGrid
	}
	target := texts.TargetWatched
	if m.target == catalog.TargetFavorite {
		target = texts.TargetFavor
	}

	fields := []struct{ label, value string }{
		{texts.TagLabel, orAll(crit.Tag)},
		{texts.YearLabel, orAll(crit.Year)},
		{texts.TypeLabel, orAll(crit.Type)},
		{texts.WatchedLabel, watched},
		{texts.FavoriteLabel, favorite},
		{texts.ViewLabel, view},
		{texts.ExportLabel, target},
	}
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, m.styles.FilterLabel.Render(f.label+": ")+m.styles.FilterValue.Render(f.value))
	}
	return " " + strings.Join(out, m.styles.FilterLabel.Render(" │ "))
}

func (m BrowserModel) hintText() string {
	if m.focus == focusSearch {
		return lang.Active().Hint.Search
	}
	return lang.Active().Hint.Browse
}

func (m BrowserModel) statusView() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return m.styles.StatusError.Render(m.status)
	}
	return m.styles.Status.Render(m.status)
}

// bodyLines renders the materialized rows and slices out the viewport.
func (m BrowserModel) bodyLines(width, height int) []string {
	out := make([]string, 0, height)
	if len(m.sess.Filtered()) == 0 {
		if height > 0 {
			out = append(out, m.styles.Meta.Render(" "+lang.Active().Header.NoResults))
		}
	} else {
		win := m.sess.Window()
		g := m.sess.Geometry()
		var lines []string
		for _, row := range win.Rows {
			lines = append(lines, m.renderRow(row, g, width)...)
		}
		off := max(0, m.sess.State().Scroll-win.StartRow*g.RowHeight)
		off = min(off, len(lines))
		out = append(out, lines[off:min(off+height, len(lines))]...)
	}
	for len(out) < height {
		out = append(out, "")
	}
	return out
}

func (m BrowserModel) renderBar(cell rune) string {
	if cell == barThumb {
		return m.styles.ScrollThumb.Render(string(cell))
	}
	return m.styles.ScrollTrack.Render(string(cell))
}
