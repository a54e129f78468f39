package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepsafe/parse"
	"github.com/katalvlaran/stepsafe/summary"
)

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Count safe and single-removal-safe reports in a file",
		Long: `Check reads one integer report per line and prints two counts in fixed
order: reports that are naturally safe, then reports that are safe when
one element removal is allowed.

A report is safe when its consecutive steps all move in one direction
with magnitudes between 1 and 3 inclusive. A malformed token aborts the
run and names its line.

Example:
  stepsafe check reports.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runCheckCmd,
	}
}

// runCheckCmd parses the input file, tallies both verdicts, and prints
// the two counts.
func runCheckCmd(cmd *cobra.Command, args []string) error {
	reports, err := parse.ReportsFile(args[0])
	if err != nil {
		return err
	}

	sum, err := summary.Tally(reports, nil)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Safe reports: %d\n", sum.SafeCount)
	fmt.Fprintf(cmd.OutOrStdout(), "Safe with one removal: %d\n", sum.ToleratedCount)
	return nil
}
