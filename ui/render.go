package ui

import (
	"fmt"
	"strings"

	gloss "github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"anime_checklist/catalog"
	"anime_checklist/lang"
	"anime_checklist/window"
)

const (
	markWatched  = "✓"
	markFavorite = "★"
	barThumb     = '┃'
	barTrack     = '│'
)

// renderRow paints one window row as exactly g.RowHeight lines.
func (m BrowserModel) renderRow(row window.Row, g window.Geometry, width int) []string {
	first := row.Index * g.ItemsPerRow
	if g.Mode != window.ModeGrid {
		var lines []string
		if len(row.Items) > 0 {
			lines = m.listItem(row.Items[0], first == m.cursor, width)
		}
		return fitLines(lines, g.RowHeight)
	}

	colW := max(1, width/max(1, g.ItemsPerRow))
	cards := make([]string, 0, len(row.Items))
	for i, it := range row.Items {
		cards = append(cards, m.gridCard(it, first+i == m.cursor, colW, g.RowHeight))
	}
	return fitLines(strings.Split(gloss.JoinHorizontal(gloss.Top, cards...), "\n"), g.RowHeight)
}

func (m BrowserModel) marks(it window.Item) string {
	w := m.styles.Meta.Render("·")
	if it.Watched {
		w = m.styles.WatchedMark.Render(markWatched)
	}
	f := " "
	if it.Favorite {
		f = m.styles.FavoriteMark.Render(markFavorite)
	}
	return w + " " + f
}

// listItem is a title line followed by a metadata line.
func (m BrowserModel) listItem(it window.Item, selected bool, width int) []string {
	pointer, title := " ", m.styles.Title
	if selected {
		pointer, title = m.styles.SelectedTitle.Render("▌"), m.styles.SelectedTitle
	}
	// pointer, space, two marks and a space
	name := runewidth.Truncate(it.Record.Title, max(1, width-6), "…")
	meta := runewidth.Truncate(metaLine(it.Record, true), max(1, width-6), "…")

	return []string{
		pointer + " " + m.marks(it) + " " + title.Render(name),
		"      " + m.styles.Meta.Render(meta),
	}
}

// gridCard is a bordered card colW cells wide and height lines tall.
func (m BrowserModel) gridCard(it window.Item, selected bool, colW, height int) string {
	rec := it.Record
	if height < 3 || colW < 4 {
		name := runewidth.Truncate(rec.Title, max(1, colW-4), "…")
		return padRight(m.marks(it)+" "+name, colW)
	}

	inner := colW - 3 // border plus left padding
	var lines []string
	titleLines := strings.Split(wordwrap.String(rec.Title, inner), "\n")
	if len(titleLines) > 2 {
		titleLines = titleLines[:2]
		titleLines[1] += "…"
	}
	titleStyle := m.styles.Title
	if selected {
		titleStyle = m.styles.SelectedTitle
	}
	for _, l := range titleLines {
		lines = append(lines, titleStyle.Render(runewidth.Truncate(l, inner, "…")))
	}
	lines = append(lines,
		m.styles.Meta.Render(runewidth.Truncate(metaLine(rec, false), inner, "…")),
		m.styles.Meta.Render(runewidth.Truncate(strings.Join(rec.Tags, ", "), inner, "…")),
		m.marks(it),
	)
	lines = fitLines(lines, height-2)

	style := m.styles.Card
	if selected {
		style = m.styles.SelectedCard
	}
	return style.Width(colW - 2).Height(height - 2).MaxHeight(height).Render(strings.Join(lines, "\n"))
}

// metaLine is "year • type • episodes[ • status • tags]".
func metaLine(rec catalog.Record, long bool) string {
	parts := []string{fmt.Sprint(rec.Year), rec.DisplayType()}
	if rec.Episodes > 0 {
		parts = append(parts, lang.Episodes(rec.Episodes))
	}
	if long {
		if rec.Status != "" && rec.Status != catalog.StatusUnknown {
			parts = append(parts, rec.Status)
		}
		if len(rec.Tags) > 0 {
			parts = append(parts, strings.Join(rec.Tags, ", "))
		}
	}
	return strings.Join(parts, " • ")
}

// fitLines pads or cuts lines to exactly n entries.
func fitLines(lines []string, n int) []string {
	n = max(0, n)
	if len(lines) >= n {
		return lines[:n]
	}
	out := make([]string, n)
	copy(out, lines)
	return out
}

// padRight fills s with spaces up to width cells, ignoring ANSI sequences.
func padRight(s string, width int) string {
	if w := gloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// scrollbar returns one cell per viewport line, with the thumb sized and
// placed by the scroll position.
func scrollbar(height, scroll, maxScroll, totalHeight int) []rune {
	if height <= 0 {
		return nil
	}
	bar := make([]rune, height)
	for i := range bar {
		bar[i] = ' '
	}
	if totalHeight <= height || maxScroll <= 0 {
		return bar
	}
	thumb := max(1, height*height/totalHeight)
	top := (height - thumb) * min(max(0, scroll), maxScroll) / maxScroll
	for i := range bar {
		bar[i] = barTrack
		if i >= top && i < top+thumb {
			bar[i] = barThumb
		}
	}
	return bar
}
