package ui

import (
	gloss "github.com/charmbracelet/lipgloss"

	"anime_checklist/session"
)

// Palette is the set of colors one theme is built from.
type Palette struct {
	Accent   gloss.Color
	Text     gloss.Color
	Muted    gloss.Color
	Subtle   gloss.Color
	Border   gloss.Color
	Watched  gloss.Color
	Favorite gloss.Color
	Error    gloss.Color
}

var (
	darkPalette = Palette{
		Accent:   gloss.Color("#89b4fa"),
		Text:     gloss.Color("#cdd6f4"),
		Muted:    gloss.Color("#585b70"),
		Subtle:   gloss.Color("#bac2de"),
		Border:   gloss.Color("#363a4f"),
		Watched:  gloss.Color("#a6e3a1"),
		Favorite: gloss.Color("#f9e2af"),
		Error:    gloss.Color("#f38ba8"),
	}

	greenPalette = Palette{
		Accent:   gloss.Color("#22c55e"),
		Text:     gloss.Color("#dcfce7"),
		Muted:    gloss.Color("#3f6212"),
		Subtle:   gloss.Color("#86efac"),
		Border:   gloss.Color("#14532d"),
		Watched:  gloss.Color("#4ade80"),
		Favorite: gloss.Color("#facc15"),
		Error:    gloss.Color("#f87171"),
	}
)

// Styles holds every style the browser renders with.
type Styles struct {
	Palette Palette

	Header      gloss.Style
	Stats       gloss.Style
	FilterLabel gloss.Style
	FilterValue gloss.Style
	Hint        gloss.Style
	Status      gloss.Style
	StatusError gloss.Style

	Title         gloss.Style
	SelectedTitle gloss.Style
	Meta          gloss.Style
	WatchedMark   gloss.Style
	FavoriteMark  gloss.Style

	Card         gloss.Style
	SelectedCard gloss.Style

	ScrollTrack gloss.Style
	ScrollThumb gloss.Style

	DetailBox   gloss.Style
	DetailTitle gloss.Style
	DetailLabel gloss.Style
	Badge       gloss.Style

	ConfirmBox gloss.Style

	Prompt       gloss.Style
	PromptText   gloss.Style
	PromptCursor gloss.Style
}

// StylesFor builds the styles of a theme.
func StylesFor(theme session.Theme) Styles {
	p := darkPalette
	if theme == session.ThemeGreen {
		p = greenPalette
	}

	card := gloss.NewStyle().
		Border(gloss.RoundedBorder()).
		BorderForeground(p.Border).
		Foreground(p.Text).
		PaddingLeft(1)

	return Styles{
		Palette: p,

		Header:      gloss.NewStyle().Foreground(p.Accent).Bold(true).PaddingLeft(1),
		Stats:       gloss.NewStyle().Foreground(p.Subtle),
		FilterLabel: gloss.NewStyle().Foreground(p.Muted),
		FilterValue: gloss.NewStyle().Foreground(p.Accent),
		Hint:        gloss.NewStyle().Foreground(p.Muted).PaddingLeft(1),
		Status:      gloss.NewStyle().Foreground(p.Accent).PaddingLeft(1),
		StatusError: gloss.NewStyle().Foreground(p.Error).PaddingLeft(1),

		Title: gloss.NewStyle().Foreground(p.Text),
		SelectedTitle: gloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),
		Meta:         gloss.NewStyle().Foreground(p.Muted),
		WatchedMark:  gloss.NewStyle().Foreground(p.Watched).Bold(true),
		FavoriteMark: gloss.NewStyle().Foreground(p.Favorite).Bold(true),

		Card:         card,
		SelectedCard: card.BorderForeground(p.Accent),

		ScrollTrack: gloss.NewStyle().Foreground(p.Border),
		ScrollThumb: gloss.NewStyle().Foreground(p.Accent),

		DetailBox: gloss.NewStyle().
			Border(gloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(0, 2),
		DetailTitle: gloss.NewStyle().Foreground(p.Accent).Bold(true),
		DetailLabel: gloss.NewStyle().Foreground(p.Muted).Bold(true),
		Badge: gloss.NewStyle().
			Foreground(gloss.Color("#1e1e2e")).
			Background(p.Accent).
			Padding(0, 1),

		ConfirmBox: gloss.NewStyle().
			Border(gloss.RoundedBorder()).
			BorderForeground(p.Error).
			Padding(1, 3),

		Prompt:       gloss.NewStyle().Foreground(p.Accent),
		PromptText:   gloss.NewStyle().Foreground(p.Text),
		PromptCursor: gloss.NewStyle().Foreground(p.Text),
	}
}
