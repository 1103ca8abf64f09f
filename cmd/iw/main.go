// Package main provides the command-line interface for the issue watcher.
package main

import (
	"log"

	"github.com/lerenn/issue-watcher/cmd/iw/internal/cli"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "iw",
		Short: "Issue Watcher - regression checks on upstream issues",
		Long: `Check that upstream issues tracked by workarounds are still in the expected state, ` +
			`and that upstream projects did not publish more releases than expected.`,
		SilenceUsage: true,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&cli.Quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "", "Specify a custom config file path")

	rootCmd.AddCommand(
		createInitCmd(),
		createIssueCmd(),
		createReleasesCmd(),
		createCheckCmd(),
		createRCFileCmd(),
	)

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
