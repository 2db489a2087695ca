package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Run("creates missing parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "a", "b", "out.txt")

		require.NoError(t, WriteFileAtomic(path, []byte("hello"), 0o600))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))
	})

	t.Run("overwrites existing content wholesale", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		require.NoError(t, os.WriteFile(path, []byte("a much longer original body"), 0o600))

		require.NoError(t, WriteFileAtomic(path, []byte("short"), 0o600))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "short", string(data))
	})
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "dir")

	require.NoError(t, EnsureDir(filepath.Join(dir, "file.json")))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
