package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepsafe/parse"
	"github.com/katalvlaran/stepsafe/summary"
)

// NewReportCmd creates the report command.
func NewReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report <file>",
		Short: "Render a Markdown digest of per-row verdicts and counts",
		Long: `Report performs the same evaluation as check but renders a Markdown
digest: one table row per report with both verdicts, followed by the two
counts in fixed order.

Example:
  stepsafe report reports.txt > summary.md`,
		Args: cobra.ExactArgs(1),
		RunE: runReportCmd,
	}
}

// runReportCmd parses the input file and writes the Markdown digest to
// the command's output stream.
func runReportCmd(cmd *cobra.Command, args []string) error {
	reports, err := parse.ReportsFile(args[0])
	if err != nil {
		return err
	}

	sum, err := summary.Tally(reports, nil)
	if err != nil {
		return err
	}

	return sum.WriteMarkdown(cmd.OutOrStdout())
}
