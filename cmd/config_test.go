package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// resetFlags restores every flag to its default, since cobra keeps flag
// values on the package-level commands between executions.
func resetFlags() {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(reset)
	}
}

// execute runs the root command with args, starting from default flag values.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		resetFlags()
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	_, err := rootCmd.ExecuteC()
	return stdout.String(), stderr.String(), err
}

func TestConfigCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	t.Run("summary on a fresh install", func(t *testing.T) {
		out, _, err := execute(t, "config", "--config", path)

		require.NoError(t, err)
		assert.Contains(t, out, "Config file: "+path+"\n")
		assert.Contains(t, out, "Current repo: owner/repo\n")
		assert.Contains(t, out, "Use --set-repo")
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr), "reading must not create the file")
	})

	t.Run("set repo persists", func(t *testing.T) {
		out, _, err := execute(t, "config", "--config", path, "--set-repo", "me/goals")

		require.NoError(t, err)
		assert.Equal(t, "Repo set to: me/goals\n", out)

		out, _, err = execute(t, "config", "--config", path)
		require.NoError(t, err)
		assert.Contains(t, out, "Current repo: me/goals\n")
	})

	t.Run("invalid repo is rejected", func(t *testing.T) {
		_, errOut, err := execute(t, "config", "--config", path, "--set-repo", "not-a-repo")

		var exitErr *exitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 1, exitErr.code)
		assert.Contains(t, errOut, "Error: ")
	})

	t.Run("show as yaml", func(t *testing.T) {
		out, _, err := execute(t, "config", "--config", path, "--show", "--output", "yaml")

		require.NoError(t, err)
		var doc map[string]any
		require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
		assert.Equal(t, "me/goals", doc["repo"])
		assert.Contains(t, doc, "achievements")
	})

	t.Run("show as json", func(t *testing.T) {
		out, _, err := execute(t, "config", "--config", path, "--show")

		require.NoError(t, err)
		assert.Contains(t, out, `"repo": "me/goals"`)
	})
}

func TestConfigCommand_ParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, errOut, err := execute(t, "status", "--config", path)

	var exitErr *exitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.code)
	assert.Contains(t, errOut, path)
}

func TestAutoCommand_ConfigErrorReportedOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	out, errOut, err := execute(t, "auto", "--config", path)

	var exitErr *exitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.code)
	assert.Empty(t, out)
	assert.Equal(t, 1, strings.Count(errOut, "Error: "))
	assert.Contains(t, errOut, path)
}

func TestAPIBackendRequiresToken(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	path := filepath.Join(t.TempDir(), "config.json")

	_, errOut, err := execute(t, "seed", "--config", path, "--backend", "api")

	var exitErr *exitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.code)
	assert.Contains(t, errOut, "GITHUB_TOKEN environment variable is not set")
}

func TestExitCode(t *testing.T) {
	assert.NoError(t, exitCode(0))
	var exitErr *exitError
	require.ErrorAs(t, exitCode(2), &exitErr)
	assert.Equal(t, 2, exitErr.code)
}


func TestSeedCommand_Help(t *testing.T) {
	out, _, err := execute(t, "seed", "--help")

	require.NoError(t, err)
	assert.Contains(t, out, "All achievement issues already exist.")
	assert.Contains(t, out, "No achievement issues created (N failed).")
}
