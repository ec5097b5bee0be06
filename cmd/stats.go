package main

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"anime_checklist/catalog"
	"anime_checklist/lang"
)

func newStatsCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize the loaded catalog and your progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(root)
			if err != nil {
				return err
			}
			defer e.Close()

			st := e.initialState()
			renderStats(cmd.OutOrStdout(), e.stats, e.cat, st.Watched.Len(), st.Favorite.Len())
			return nil
		},
	}
}

// renderStats prints what the loader kept and dropped next to the progress
// counters.
func renderStats(w io.Writer, load catalog.LoadStats, cat *catalog.Catalog, watched, favorite int) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	t.AppendRows([]table.Row{
		{"Entries read", lang.Number(load.Read)},
		{"Kept", lang.Number(load.Kept)},
		{"Dropped: no year", lang.Number(load.NoYear)},
		{"Dropped: too old", lang.Number(load.TooOld)},
		{"Dropped: blacklisted", lang.Number(load.Blacklisted)},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"Genres", lang.Number(len(cat.Tags()))},
		{"Years", lang.Number(len(cat.Years()))},
		{"Watched", lang.Number(watched)},
		{"Favorites", lang.Number(favorite)},
	})
	t.Render()
}
