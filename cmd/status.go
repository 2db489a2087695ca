package cmd

import (
	"log"

	"github.com/naka-gawa/github-achievements/internal/domain"
	"github.com/naka-gawa/github-achievements/internal/gateway"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show achievement progress",
	Long: `Resolves the authenticated GitHub user, gathers profile and contribution
statistics and prints them grouped by achievement badge. Statistics that
cannot be fetched are shown as (unavailable). Contribution figures are
approximations.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, _ []string) error {
	logger := newLogger()
	doc, fetcher, err := setup(logger)
	if err != nil {
		return fail(cmd, err)
	}
	return exitCode(reportStatus(cmd, doc, fetcher, logger))
}

func reportStatus(cmd *cobra.Command, doc domain.Document, fetcher gateway.Fetcher, logger *log.Logger) int {
	return newReporter(fetcher, logger).Report(cmd.Context(), doc, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
