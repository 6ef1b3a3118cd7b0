package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"reshelve/internal/config"
	"reshelve/internal/consolidate"
)

func newConsolidateCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "consolidate <directory>",
		Short: "Merge scattered TV show directories into unified season layouts",
		Long: `Scan a library directory for TV show folders that belong to the same show,
resolve the show identity online when API keys are configured, and merge the
folders into one "Title (Year)" directory with Season NN subdirectories.

Examples:
  reshelve consolidate /library/tv
  reshelve consolidate --dry-run /library/tv
  reshelve consolidate --json /library/tv`,
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
			root, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}

			lookup, closeLookup, err := ctx.newLookup(logger)
			if err != nil {
				return err
			}
			defer closeLookup()

			engine := consolidate.NewEngine(consolidate.Options{
				Lookup:     lookup,
				Extensions: cfg.Renamer.Extensions,
				Logger:     logger,
				DryRun:     dryRun,
			})
			results, err := engine.Consolidate(cmd.Context(), root)
			if err != nil {
				return err
			}

			if jsonOut {
				if results == nil {
					results = []consolidate.ConsolidationResult{}
				}
				return writeJSON(cmd, results)
			}
			renderConsolidation(cmd.OutOrStdout(), results, dryRun)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report every decision without moving files")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit results as JSON")
	return cmd
}

func renderConsolidation(out io.Writer, results []consolidate.ConsolidationResult, dryRun bool) {
	if len(results) == 0 {
		fmt.Fprintln(out, "Nothing to consolidate.")
		return
	}
	colorize := shouldColorize(out)
	if dryRun {
		fmt.Fprintln(out, "Dry run: no files were moved.")
	}
	for _, result := range results {
		fmt.Fprintf(out, "\n%s -> %s\n", result.ShowTitle, result.UnifiedDirectory)

		rows := make([][]string, 0, len(result.Operations))
		for _, op := range result.Operations {
			season := ""
			if op.Season != 0 {
				season = strconv.Itoa(op.Season)
			}
			rows = append(rows, []string{
				filepath.Base(op.Source),
				season,
				statusCell(op.Success, op.Error, colorize),
			})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"Source", "Season", "Status"},
			rows,
			[]columnAlignment{alignLeft, alignRight, alignLeft},
		))
	}
}
