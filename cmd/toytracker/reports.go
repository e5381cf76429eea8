package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"toytracker/internal/config"
	"toytracker/internal/ingest"
	"toytracker/internal/report"
)

func exportCmd() *cobra.Command {
	var toStdout bool
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the owned/missing inventory CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			options := ingest.Options{Reports: []report.Kind{report.KindInventory}}
			if toStdout {
				options.Inventory = cmd.OutOrStdout()
			}
			return runReports(cmd, options)
		},
	}
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Print the CSV instead of writing "+report.InventoryCSV)
	return cmd
}

func zonesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "zones",
		Short: "Write the missing-toys-by-zone Markdown and CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReports(cmd, ingest.Options{Reports: []report.Kind{report.KindZones}})
		},
	}
}

func topCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "top",
		Short: "Rank zones by distinct missing toys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative")
			}
			return runReports(cmd, ingest.Options{
				Reports:   []report.Kind{report.KindRanking},
				Drilldown: limit,
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Zones to drill into (default from config, 10)")
	return cmd
}

func reportCmd() *cobra.Command {
	var kinds []string
	var sync bool
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write every report from one read of the SavedVariables file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			options := ingest.Options{Reports: report.AllKinds()}
			if len(kinds) > 0 {
				options.Reports = options.Reports[:0]
				for _, k := range kinds {
					kind, err := report.ParseKind(k)
					if err != nil {
						return err
					}
					options.Reports = append(options.Reports, kind)
				}
			}
			if !sync {
				return runReports(cmd, options)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := openStore(cmd.Context(), cfg.Database.DSN)
			if err != nil {
				return err
			}
			defer db.Close(cmd.Context())
			options.Sink = db
			return runWithConfig(cmd, cfg, options)
		},
	}
	cmd.Flags().StringSliceVar(&kinds, "only", nil, "Reports to write: inventory, zones, top")
	cmd.Flags().BoolVar(&sync, "sync", false, "Also replace the database snapshot")
	return cmd
}

func runReports(cmd *cobra.Command, options ingest.Options) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return runWithConfig(cmd, cfg, options)
}

func runWithConfig(cmd *cobra.Command, cfg *config.ProjectConfig, options ingest.Options) error {
	result, err := ingest.Run(cmd.Context(), cfg, options)
	if err != nil {
		return err
	}
	return printResult(os.Stdout, result)
}

func printResult(out io.Writer, result *ingest.Result) error {
	for _, path := range result.Written {
		fmt.Fprintf(out, "Wrote: %s\n", path)
	}
	if result.Synced {
		fmt.Fprintf(out, "Synced: %d toys\n", result.Counts.Records)
	}

	if len(result.Errors) > 0 {
		fmt.Fprintf(out, "\nErrors (%d):\n", len(result.Errors))
		for _, item := range result.Errors {
			fmt.Fprintf(out, "  - %v\n", item)
		}
		return fmt.Errorf("run completed with errors")
	}
	return nil
}
