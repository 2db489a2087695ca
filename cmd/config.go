package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/naka-gawa/github-achievements/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or edit configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	show, _ := cmd.Flags().GetBool("show")
	repo, _ := cmd.Flags().GetString("set-repo")
	format, _ := cmd.Flags().GetString("output")
	out := cmd.OutOrStdout()

	store, err := newStore()
	if err != nil {
		return fail(cmd, err)
	}
	doc, err := store.Load()
	if err != nil {
		return fail(cmd, err)
	}

	if repo != "" {
		if err := config.SetRepo(doc, repo); err != nil {
			return fail(cmd, err)
		}
		if err := store.Save(doc); err != nil {
			return fail(cmd, err)
		}
		fmt.Fprintf(out, "Repo set to: %s\n", repo)
		return nil
	}

	if show {
		var data []byte
		switch format {
		case "json":
			data, err = json.MarshalIndent(doc, "", "  ")
			data = append(data, '\n')
		case "yaml":
			data, err = yaml.Marshal(map[string]any(doc))
		default:
			return fail(cmd, fmt.Errorf("unknown output format %q (want json or yaml)", format))
		}
		if err != nil {
			return fail(cmd, err)
		}
		_, _ = out.Write(data)
		return nil
	}

	fmt.Fprintf(out, "Config file: %s\n", store.Path())
	fmt.Fprintf(out, "Current repo: %v\n", config.Get(doc, "repo", "not set"))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Use --set-repo <owner/repo> to change the tracked repository")
	fmt.Fprintln(out, "Use --show to see full config")
	return nil
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().Bool("show", false, "Show full config")
	configCmd.Flags().String("set-repo", "", "Set the tracked repository (owner/repo)")
	configCmd.Flags().StringP("output", "o", "json", "Format for --show: json or yaml")
}
