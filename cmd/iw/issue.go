package main

import (
	"fmt"

	"github.com/lerenn/issue-watcher/cmd/iw/internal/cli"
	"github.com/lerenn/issue-watcher/pkg/issue"
	"github.com/spf13/cobra"
)

func createIssueCmd() *cobra.Command {
	var (
		expectedState string
		message       string
	)

	issueCmd := &cobra.Command{
		Use:   "issue <owner/repo#number|issue-url> [--state open|closed] [--message <text>]",
		Short: "Check the state of an upstream issue",
		Long: `Check that an upstream issue is in the expected state (open by default).

Examples:
  iw issue pyupio/safety#119
  iw issue https://github.com/pyupio/safety/issues/119 --state open -m "Check if safety can be enabled on Windows."`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := issue.ParseReference(args[0])
			if err != nil {
				return err
			}
			expected, err := issue.ParseState(expectedState)
			if err != nil {
				return err
			}

			checker, _, err := cli.NewChecker(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			if err := checker.CheckIssueState(cmd.Context(), ref, expected); err != nil {
				return withMessage(err, message)
			}

			if !cli.Quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is %s\n", ref, expected)
			}
			return nil
		},
	}

	issueCmd.Flags().StringVarP(&expectedState, "state", "s", string(issue.Open), "Expected issue state (open or closed)")
	issueCmd.Flags().StringVarP(&message, "message", "m", "", "Message shown when the check fails")

	return issueCmd
}

// withMessage appends the caller message to a failed check.
func withMessage(err error, message string) error {
	if message == "" {
		return err
	}
	return fmt.Errorf("%w\n%s", err, message)
}
