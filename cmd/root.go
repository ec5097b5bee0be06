package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"anime_checklist/catalog"
	"anime_checklist/lang"
	"anime_checklist/session"
	"anime_checklist/ui"
	"anime_checklist/utils"
	"anime_checklist/window"
)

// env is what every subcommand starts from: config, logger, catalog and the
// persisted settings.
type env struct {
	cfg      utils.Config
	log      *slog.Logger
	closer   io.Closer
	cat      *catalog.Catalog
	stats    catalog.LoadStats
	settings utils.Settings
}

func (e *env) Close() {
	if e.closer != nil {
		e.closer.Close()
	}
}

type rootFlags struct {
	config  string
	dataset string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           appName,
		Short:         "Browse the anime offline database and track what you watched",
		Long:          `A terminal checklist over the anime offline database: search, filter, mark watched and favorite entries, export your lists.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(flags)
		},
	}
	root.PersistentFlags().StringVar(&flags.config, "config", "", "config file (default "+utils.ConfigPath()+")")
	root.PersistentFlags().StringVar(&flags.dataset, "dataset", "", "dataset JSON, overrides [data].source")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s", appName, version)
			if commit != "none" && commit != "" {
				fmt.Fprintf(cmd.OutOrStdout(), " (%s)", commit)
			}
			fmt.Fprintln(cmd.OutOrStdout())
		},
	}

	root.AddCommand(versionCmd, newListCmd(flags), newExportCmd(flags), newStatsCmd(flags))
	return root
}

// setup loads config, logger, settings and the catalog in that order.
func setup(flags *rootFlags) (*env, error) {
	if err := utils.LoadAppConfig(flags.config); err != nil {
		return nil, err
	}
	cfg := utils.AppConfig
	if flags.dataset != "" {
		cfg.Data.Source = utils.ExpandPath(flags.dataset)
	}
	if cfg.UI.Locale != "" && !lang.SetLocale(lang.Locale(cfg.UI.Locale)) {
		return nil, fmt.Errorf("unknown locale %q, available: %v", cfg.UI.Locale, lang.AvailableLocales())
	}

	e := &env{cfg: cfg}
	log, closer, err := utils.NewLogger(cfg.Log)
	if err != nil {
		log = utils.DiscardLogger()
	}
	e.log, e.closer = log, closer

	e.settings, err = utils.LoadSettings()
	if err != nil {
		// a broken state file starts over rather than blocking the app
		e.log.Warn("settings ignored", slog.Any("err", err))
		e.settings = utils.Settings{}
	}

	rules := catalog.Eligibility{MinYear: cfg.Data.MinYear, Blacklist: cfg.Data.Blacklist}
	e.cat, e.stats, err = catalog.LoadFile(cfg.Data.Source, rules, e.log)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("failed to load %s: %w", cfg.Data.Source, err)
	}
	return e, nil
}

// initialState restores the persisted sets, dropping ids the catalog no
// longer has.
func (e *env) initialState() session.State {
	known := func(ids []int) catalog.IDSet {
		kept := make([]int, 0, len(ids))
		for _, id := range ids {
			if _, err := e.cat.Lookup(id); err != nil {
				e.log.Warn("persisted id skipped", slog.Int("id", id))
				continue
			}
			kept = append(kept, id)
		}
		return catalog.NewIDSet(kept...)
	}
	return session.State{
		Watched:  known(e.settings.Watched),
		Favorite: known(e.settings.Favorites),
		Theme:    session.ParseTheme(e.settings.Theme),
		Mode:     window.ParseMode(e.settings.ViewMode),
	}
}

func (e *env) persister() session.Persister {
	return session.PersisterFunc(func(s session.Snapshot) {
		err := utils.SaveSettings(utils.Settings{
			Watched:   s.Watched,
			Favorites: s.Favorite,
			Theme:     string(s.Theme),
			ViewMode:  string(s.Mode),
		})
		if err != nil {
			e.log.Error("failed to save settings", slog.Any("err", err))
		}
	})
}

func (e *env) newSession() *session.Session {
	l := e.cfg.Layout
	return session.New(e.cat, e.initialState(), session.Options{
		Layout: window.Config{
			GridMinColWidth: l.GridMinColWidth,
			GridItemHeight:  l.GridItemHeight,
			ListRowHeight:   l.ListRowHeight,
			NarrowThreshold: l.NarrowThreshold,
		},
		BufferRows: l.BufferRows,
		Persister:  e.persister(),
		Logger:     e.log,
	})
}

func runBrowse(flags *rootFlags) error {
	e, err := setup(flags)
	if err != nil {
		return err
	}
	defer e.Close()

	return ui.RunApp(ui.Options{
		Session:   e.newSession(),
		Timing:    e.cfg.Timing,
		ExportDir: e.cfg.UI.ExportDir,
		Logger:    e.log,
	})
}
