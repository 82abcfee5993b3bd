// Package main provides the entry point for the linktidy CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for linktidy.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "linktidy",
		Short: "Tidy and analyze link collections in text documents",
		Long: `linktidy normalizes collections of links kept as bulleted lists in text
documents (conventionally a project's README.md).

It extracts every link line, removes duplicates, sorts the links
alphabetically or grouped by domain, rewrites the document in place,
and reports statistics: protocol mix, domain and TLD frequencies, and
malformed URLs.

Everything before the first link line is preserved untouched. Non-link
lines mixed in among the links are dropped on rewrite.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewTidyCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
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

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}
