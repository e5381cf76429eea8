package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"toytracker/internal/ingest"
	"toytracker/internal/validate"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Report records the extractor skips, drops or truncates",
		Args:  cobra.NoArgs,
		RunE:  runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	snap, err := ingest.Load(cfg)
	if err != nil {
		return err
	}

	report := validate.Run(snap.Text)
	errorIssues := report.BySeverity(validate.SeverityError)
	warnIssues := report.BySeverity(validate.SeverityWarn)

	fmt.Fprintf(os.Stdout, "Checked %d records in %s\n", report.Records, snap.SourceFile)
	if len(errorIssues) == 0 && len(warnIssues) == 0 {
		fmt.Fprintln(os.Stdout, "No issues found.")
		return nil
	}

	if len(errorIssues) > 0 {
		fmt.Fprintf(os.Stdout, "Errors (%d):\n", len(errorIssues))
		printIssues(os.Stdout, errorIssues)
	}
	if len(warnIssues) > 0 {
		if len(errorIssues) > 0 {
			fmt.Fprintln(os.Stdout, "")
		}
		fmt.Fprintf(os.Stdout, "Warnings (%d):\n", len(warnIssues))
		printIssues(os.Stdout, warnIssues)
	}

	if report.HasErrors() {
		return fmt.Errorf("validation found errors")
	}
	return nil
}

func printIssues(out io.Writer, issues []validate.Issue) {
	for _, issue := range issues {
		if issue.ItemID == 0 {
			fmt.Fprintf(out, "  - %s (%s)\n", issue.Message, issue.Code)
			continue
		}
		fmt.Fprintf(out, "  - %d %s: %s (%s)\n", issue.ItemID, issue.Name, issue.Message, issue.Code)
	}
}
