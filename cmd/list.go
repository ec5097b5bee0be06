package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"anime_checklist/catalog"
	"anime_checklist/lang"
)

type listFlags struct {
	search      string
	tag         string
	year        string
	typ         string
	watched     bool
	unwatched   bool
	favorite    bool
	notFavorite bool
	limit       int
}

func (f listFlags) criteria() (catalog.Criteria, error) {
	if f.watched && f.unwatched {
		return catalog.Criteria{}, errors.New("--watched and --unwatched are exclusive")
	}
	if f.favorite && f.notFavorite {
		return catalog.Criteria{}, errors.New("--favorite and --not-favorite are exclusive")
	}
	c := catalog.Criteria{
		Search: f.search,
		Tag:    f.tag,
		Year:   f.year,
		Type:   strings.ToUpper(f.typ),
	}
	switch {
	case f.watched:
		c.Watched = catalog.WatchedOnly
	case f.unwatched:
		c.Watched = catalog.UnwatchedOnly
	}
	switch {
	case f.favorite:
		c.Favorite = catalog.FavoriteOnly
	case f.notFavorite:
		c.Favorite = catalog.NotFavoriteOnly
	}
	return c, nil
}

func newListCmd(root *rootFlags) *cobra.Command {
	flags := &listFlags{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the filtered catalog as a table",
		RunE: func(cmd *cobra.Command, args []string) error {
			crit, err := flags.criteria()
			if err != nil {
				return err
			}
			e, err := setup(root)
			if err != nil {
				return err
			}
			defer e.Close()

			st := e.initialState()
			records := catalog.Apply(e.cat, crit, st.Watched, st.Favorite)
			renderList(cmd.OutOrStdout(), records, st.Watched, st.Favorite, flags.limit)
			return nil
		},
	}
	cmd.Flags().StringVarP(&flags.search, "search", "s", "", "case-insensitive title substring")
	cmd.Flags().StringVar(&flags.tag, "tag", "", "exact genre tag")
	cmd.Flags().StringVar(&flags.year, "year", "", "release year")
	cmd.Flags().StringVar(&flags.typ, "type", "", "TV, MOVIE, OVA, ONA or SPECIAL")
	cmd.Flags().BoolVar(&flags.watched, "watched", false, "only watched entries")
	cmd.Flags().BoolVar(&flags.unwatched, "unwatched", false, "only unwatched entries")
	cmd.Flags().BoolVar(&flags.favorite, "favorite", false, "only favorites")
	cmd.Flags().BoolVar(&flags.notFavorite, "not-favorite", false, "hide favorites")
	cmd.Flags().IntVarP(&flags.limit, "limit", "n", 50, "maximum rows, 0 for all")
	return cmd
}

// renderList writes records as a table, cut to limit rows when limit > 0.
func renderList(w io.Writer, records []catalog.Record, watched, favorite catalog.IDSet, limit int) {
	shown := records
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"ID", "Title", "Year", "Type", "Eps", "Status", ""})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: 48},
		{Number: 5, Align: text.AlignRight},
	})
	for _, r := range shown {
		eps := "-"
		if r.Episodes > 0 {
			eps = fmt.Sprint(r.Episodes)
		}
		marks := ""
		if watched.Has(r.ID) {
			marks += "✓"
		}
		if favorite.Has(r.ID) {
			marks += "★"
		}
		t.AppendRow(table.Row{r.ID, r.Title, r.Year, r.DisplayType(), eps, r.Status, marks})
	}
	footer := lang.Number(len(records)) + " results"
	if len(shown) < len(records) {
		footer = fmt.Sprintf("%s of %s results", lang.Number(len(shown)), lang.Number(len(records)))
	}
	t.AppendFooter(table.Row{"", footer})
	t.Render()
}
