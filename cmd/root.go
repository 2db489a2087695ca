// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/naka-gawa/github-achievements/internal/ghcli"
	"github.com/naka-gawa/github-achievements/internal/usecase"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "1.0.0"

// settings holds the runtime options shared by every command. Flags win
// over GHACH_* environment variables.
var settings = viper.New()

var rootCmd = &cobra.Command{
	Use:   "github-achievements",
	Short: "Track and plan legitimate GitHub achievements.",
	Long: `github-achievements is a local helper that reports GitHub profile and
contribution statistics relevant to achievement badges, and seeds a
repository with issues describing legitimate actions toward them.

Examples:
  github-achievements status         Show achievement progress
  github-achievements seed           Create action items as issues
  github-achievements auto           Run status then seed
  github-achievements config --set-repo myname/myrepo
  github-achievements page           Render docs/index.html`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// exitError carries a process exit code for a failure that has already been
// reported to the user.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// exitCode turns a usecase exit code into a command result.
func exitCode(code int) error {
	if code == 0 {
		return nil
	}
	return &exitError{code: code}
}

// fail reports err on the command's error stream and exits with 1.
func fail(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	return &exitError{code: 1}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.code)
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func init() {
	// Persistent flags are available to all commands.
	flags := rootCmd.PersistentFlags()
	flags.BoolP("verbose", "v", false, "Enable verbose/debug logging")
	flags.String("config", "", "Configuration file (default $HOME/.config/github-achievements/config.json)")
	flags.String("backend", "gh", "GitHub backend: gh (GitHub CLI) or api (REST/GraphQL with GITHUB_TOKEN)")
	flags.String("gh-path", "gh", "GitHub CLI executable")
	flags.Duration("timeout", ghcli.DefaultTimeout, "Timeout for a single gh invocation")
	flags.Int("concurrency", usecase.DefaultConcurrency, "Number of metric queries run in parallel")

	for _, name := range []string{"verbose", "config", "backend", "gh-path", "timeout", "concurrency"} {
		_ = settings.BindPFlag(name, flags.Lookup(name))
	}
	settings.SetEnvPrefix("GHACH")
	settings.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	settings.AutomaticEnv()
}
