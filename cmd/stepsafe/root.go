// Package main provides the entry point for the stepsafe CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for stepsafe.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stepsafe",
		Short: "Audit integer reports for bounded monotonic stepping",
		Long: `stepsafe reads a text file of integer rows ("reports") and decides, per row,
whether every consecutive step moves in one direction with a magnitude
between 1 and 3 — directly, and with one element removal allowed.

It prints two counts in fixed order: naturally safe reports first, then
reports safe with one removal.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewReportCmd())
	cmd.AddCommand(NewReconcileCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
