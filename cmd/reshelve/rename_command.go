package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"reshelve/internal/config"
	"reshelve/internal/media/probe"
	"reshelve/internal/quality"
	"reshelve/internal/renamer"
)

func newRenameCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool
	var jsonOut bool
	var noProbe bool

	cmd := &cobra.Command{
		Use:   "rename <directory>",
		Short: "Rename media files into the configured patterns",
		Long: `Walk a directory, parse each video filename, optionally confirm the title
against the configured metadata services, and rename the file into the
configured movie or TV pattern.

Examples:
  reshelve rename /library/incoming
  reshelve rename --dry-run /library/incoming
  reshelve rename --no-probe /library/incoming`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			dir, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}

			lookup, closeLookup, err := ctx.newLookup(logger)
			if err != nil {
				return err
			}
			defer closeLookup()

			var prober quality.Prober
			if !noProbe {
				prober = probe.NewInspector(cfg.FFprobeBinary())
			}

			r := renamer.New(renamer.Options{
				MoviePattern: cfg.Renamer.MoviePattern,
				TVPattern:    cfg.Renamer.TVPattern,
				Extensions:   cfg.Renamer.Extensions,
				Classifier:   quality.NewClassifier(prober, logger),
				Lookup:       lookup,
				Logger:       logger,
				DryRun:       dryRun,
			})
			results := r.ProcessDirectory(cmd.Context(), dir)

			if jsonOut {
				if results == nil {
					results = []renamer.Result{}
				}
				return writeJSON(cmd, results)
			}
			renderRenames(cmd.OutOrStdout(), results, dryRun)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report every rename without moving files")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit results as JSON")
	cmd.Flags().BoolVar(&noProbe, "no-probe", false, "Skip the ffprobe container inspection")
	return cmd
}

func renderRenames(out io.Writer, results []renamer.Result, dryRun bool) {
	if len(results) == 0 {
		fmt.Fprintln(out, "No media files found.")
		return
	}
	colorize := shouldColorize(out)
	if dryRun {
		fmt.Fprintln(out, "Dry run: no files were moved.")
	}

	renamed := 0
	rows := make([][]string, 0, len(results))
	for _, result := range results {
		if result.Success {
			renamed++
		}
		rows = append(rows, []string{
			filepath.Base(result.OriginalPath),
			filepath.Base(result.NewPath),
			statusCell(result.Success, result.Error, colorize),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Original", "New", "Status"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft},
	))
	fmt.Fprintf(out, "Renamed %d of %d files.\n", renamed, len(results))
}
