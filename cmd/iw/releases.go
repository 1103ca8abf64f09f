package main

import (
	"fmt"

	"github.com/lerenn/issue-watcher/cmd/iw/internal/cli"
	"github.com/lerenn/issue-watcher/pkg/issue"
	"github.com/spf13/cobra"
)

func createReleasesCmd() *cobra.Command {
	var (
		maxCount int
		message  string
	)

	releasesCmd := &cobra.Command{
		Use:   "releases <owner/repo|owner/repo#number> --max <count>",
		Short: "Check that a repository did not publish too many releases",
		Long: `Check that a repository has at most --max release tags.

When an issue number is given, failure messages link the tracked issue.

Examples:
  iw releases pyupio/safety --max 120
  iw releases pyupio/safety#119 --max 120`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := issue.ParseReference(args[0])
			if err != nil {
				if ref, err = issue.ParseRepository(args[0]); err != nil {
					return err
				}
			}

			checker, _, err := cli.NewChecker(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			if err := checker.CheckReleaseCountAtMost(cmd.Context(), ref, maxCount); err != nil {
				return withMessage(err, message)
			}

			if !cli.Quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "%s has at most %d release tags\n", ref.FullName(), maxCount)
			}
			return nil
		},
	}

	releasesCmd.Flags().IntVar(&maxCount, "max", 0, "Maximum number of release tags")
	releasesCmd.Flags().StringVarP(&message, "message", "m", "", "Message shown when the check fails")
	_ = releasesCmd.MarkFlagRequired("max")

	return releasesCmd
}
