package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"anime_checklist/catalog"
	"anime_checklist/export"
	"anime_checklist/lang"
)

func newExportCmd(root *rootFlags) *cobra.Command {
	var (
		targetName string
		formatName string
		outDir     string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the watched or favorite list as a Word or PDF document",
		RunE: func(cmd *cobra.Command, args []string) error {
			target, ok := catalog.ParseTarget(targetName)
			if !ok {
				return fmt.Errorf("unknown target %q, want watched or favorite", targetName)
			}
			kind, ok := export.ParseKind(formatName)
			if !ok {
				return fmt.Errorf("unknown format %q, want doc or pdf", formatName)
			}

			e, err := setup(root)
			if err != nil {
				return err
			}
			defer e.Close()

			if outDir == "" {
				outDir = e.cfg.UI.ExportDir
			}
			st := e.initialState()
			doc, err := export.NewDocument(target, catalog.Selected(e.cat, target, st.Watched, st.Favorite), time.Now())
			if err != nil {
				return err
			}
			path, err := export.WriteFile(outDir, kind, doc)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), lang.ExportSaved(path))
			return nil
		},
	}
	cmd.Flags().StringVarP(&targetName, "target", "t", string(catalog.TargetWatched), "watched or favorite")
	cmd.Flags().StringVarP(&formatName, "format", "f", string(export.KindWord), "doc or pdf")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default [ui].export_dir)")
	return cmd
}
