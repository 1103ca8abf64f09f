package main

import (
	"errors"
	"fmt"

	"github.com/lerenn/issue-watcher/cmd/iw/internal/cli"
	"github.com/spf13/cobra"
)

// ErrWatchesFailed is returned when at least one configured watch failed.
var ErrWatchesFailed = errors.New("some watches failed")

func createCheckCmd() *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Check every watch of the configuration",
		Long: `Check every issue listed under 'watches' in the configuration file.

Examples:
  iw check
  iw check -c ./iw.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			checker, cfg, err := cli.NewChecker(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			if len(cfg.Watches) == 0 {
				if !cli.Quiet {
					fmt.Fprintln(cmd.OutOrStdout(), "No watches configured.")
				}
				return nil
			}

			failed := 0
			for _, result := range checker.RunWatches(cmd.Context(), cfg.Watches) {
				if result.Passed() {
					if !cli.Quiet {
						fmt.Fprintf(cmd.OutOrStdout(), "  ok    %s\n", result.Watch.Issue)
					}
					continue
				}

				failed++
				fmt.Fprintf(cmd.ErrOrStderr(), "  FAIL  %s: %v\n", result.Watch.Issue, result.Err)
				if result.Watch.Message != "" {
					fmt.Fprintf(cmd.ErrOrStderr(), "        %s\n", result.Watch.Message)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", ErrWatchesFailed, failed, len(cfg.Watches))
			}
			return nil
		},
	}

	return checkCmd
}
