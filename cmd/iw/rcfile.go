package main

import (
	"fmt"

	"github.com/lerenn/issue-watcher/cmd/iw/internal/cli"
	"github.com/lerenn/issue-watcher/pkg/fs"
	"github.com/lerenn/issue-watcher/pkg/rcfile"
	"github.com/spf13/cobra"
)

func createRCFileCmd() *cobra.Command {
	var shape rcfile.Shape

	rcfileCmd := &cobra.Command{
		Use:   "rcfile <script>",
		Short: "Check the RC file generated by a test script",
		Long: `Run '<script> --generate-rc-file', check the first and last lines of the
generated .testrc file and remove it.

Examples:
  iw rcfile ./test.sh`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			generator := rcfile.NewGenerator(rcfile.NewGeneratorParams{
				FS:     fs.NewFS(),
				Logger: cli.NewLogger(cmd.OutOrStdout()),
				Script: args[0],
			})

			if err := generator.Verify(cmd.Context(), shape); err != nil {
				return err
			}

			if !cli.Quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "%s generates a valid %s\n", args[0], rcfile.DefaultFileName)
			}
			return nil
		},
	}

	rcfileCmd.Flags().StringVar(&shape.FirstLinePrefix, "first-line", rcfile.DefaultFirstLinePrefix,
		"Expected prefix of the first line")
	rcfileCmd.Flags().StringVar(&shape.LastLinePrefix, "last-line", rcfile.DefaultLastLinePrefix,
		"Expected prefix of the last line")

	return rcfileCmd
}
