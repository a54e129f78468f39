package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepsafe/parse"
	"github.com/katalvlaran/stepsafe/reconcile"
)

// NewReconcileCmd creates the reconcile command.
func NewReconcileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile <file>",
		Short: "Compare two columns of integers by distance and similarity",
		Long: `Reconcile reads a two-column integer file and prints, in order:
the total distance between the sorted columns, then the similarity score
(each left value weighted by its count in the right column).

Example:
  stepsafe reconcile columns.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runReconcileCmd,
	}
}

// runReconcileCmd parses the two-column file and prints distance, then
// similarity.
func runReconcileCmd(cmd *cobra.Command, args []string) error {
	left, right, err := parse.ColumnsFile(args[0])
	if err != nil {
		return err
	}

	distance, err := reconcile.Distance(left, right)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Total distance: %d\n", distance)
	fmt.Fprintf(cmd.OutOrStdout(), "Similarity score: %d\n", reconcile.Similarity(left, right))
	return nil
}
