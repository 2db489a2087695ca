package cmd

import (
	"fmt"

	"github.com/naka-gawa/github-achievements/internal/page"
	"github.com/spf13/cobra"
)

var pageCmd = &cobra.Command{
	Use:   "page",
	Short: "Render the statistics into a static HTML page",
	Long: `Gathers the same statistics as status and writes them to a static HTML
page, for example for GitHub Pages. If nothing can be fetched the page is
rendered with demo data instead of failing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		logger := newLogger()
		fetcher, err := newFetcher(logger)
		if err != nil {
			return fail(cmd, err)
		}

		generator := page.NewGenerator(fetcher, newReporter(fetcher, logger), logger)
		stats, err := generator.Generate(cmd.Context(), output)
		if err != nil {
			return fail(cmd, err)
		}

		out := cmd.OutOrStdout()
		if stats.Demo {
			fmt.Fprintln(out, "Error fetching stats, generated demo page.")
		}
		fmt.Fprintf(out, "Generated %s\n", output)
		fmt.Fprintf(out, "Stats: user=%s", stats.User)
		for _, c := range stats.Cards {
			fmt.Fprintf(out, " %q=%s", c.Label, c.Value)
		}
		fmt.Fprintln(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pageCmd)
	pageCmd.Flags().StringP("output", "o", page.DefaultOutput, "Output HTML file")
}
