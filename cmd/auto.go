package cmd

import (
	"github.com/spf13/cobra"
)

var autoCmd = &cobra.Command{
	Use:   "auto",
	Short: "Run status then seed",
	Long:  `Prints the status report, then seeds the tracked repository. The exit code is the one from seed.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger := newLogger()
		doc, fetcher, err := setup(logger)
		if err != nil {
			return fail(cmd, err)
		}
		// The status result is informational only.
		_ = reportStatus(cmd, doc, fetcher, logger)
		return exitCode(seedIssues(cmd, doc, fetcher, logger))
	},
}

func init() {
	rootCmd.AddCommand(autoCmd)
}
