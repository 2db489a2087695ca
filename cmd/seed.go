package cmd

import (
	"log"

	"github.com/naka-gawa/github-achievements/internal/domain"
	"github.com/naka-gawa/github-achievements/internal/gateway"
	"github.com/naka-gawa/github-achievements/internal/usecase"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create action items as issues",
	Long: `Creates one issue per suggested achievement action in the tracked
repository, skipping titles that are already open. Running seed again
creates nothing new.

Each created issue prints "Created: <title>". A failed creation prints the
error and seeding continues with the next issue. When nothing was created
the run ends with either "All achievement issues already exist." or, if
every attempt failed, "No achievement issues created (N failed)."`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, _ []string) error {
	logger := newLogger()
	doc, fetcher, err := setup(logger)
	if err != nil {
		return fail(cmd, err)
	}
	return exitCode(seedIssues(cmd, doc, fetcher, logger))
}

func seedIssues(cmd *cobra.Command, doc domain.Document, fetcher gateway.Fetcher, logger *log.Logger) int {
	_, code := usecase.NewSeeder(fetcher, logger).Seed(cmd.Context(), doc, cmd.OutOrStdout(), cmd.ErrOrStderr())
	return code
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
