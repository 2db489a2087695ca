package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/naka-gawa/github-achievements/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), ".config", "github-achievements", "config.json"))
}

func TestStore_LoadDefault(t *testing.T) {
	store := newTestStore(t)

	doc, err := store.Load()
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultDocument(), doc)
	assert.Contains(t, doc, "repo")
	assert.Contains(t, doc, "achievements")

	// The directory is prepared but the file is only written by Save.
	_, err = os.Stat(filepath.Dir(store.Path()))
	assert.NoError(t, err)
	_, err = os.Stat(store.Path())
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestStore_LoadDefaultIsACopy(t *testing.T) {
	store := newTestStore(t)

	first, err := store.Load()
	require.NoError(t, err)
	first["repo"] = "mutated/repo"

	second, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultRepo, second["repo"])
}

func TestStore_SaveAndLoad(t *testing.T) {
	testCases := []struct {
		name string
		doc  domain.Document
	}{
		{
			name: "minimal document",
			doc:  domain.Document{"repo": "testuser/testrepo", "achievements": map[string]any{}},
		},
		{
			name: "default document",
			doc:  domain.DefaultDocument(),
		},
		{
			name: "extra keys survive",
			doc: domain.Document{
				"repo":  "a/b",
				"extra": map[string]any{"nested": []any{"x", true, float64(3)}},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := newTestStore(t)

			require.NoError(t, store.Save(tc.doc))
			loaded, err := store.Load()

			require.NoError(t, err)
			assert.Equal(t, tc.doc, loaded)
		})
	}
}

func TestStore_SaveOverwritesWholesale(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(domain.Document{"repo": "a/b", "old": true}))

	require.NoError(t, store.Save(domain.Document{"repo": "c/d"}))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.Document{"repo": "c/d"}, loaded)
}

func TestStore_LoadParseError(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{name: "not json", content: "{not json"},
		{name: "json null", content: "null"},
		{name: "json array", content: "[1, 2]"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := newTestStore(t)
			require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0o750))
			require.NoError(t, os.WriteFile(store.Path(), []byte(tc.content), 0o600))

			doc, err := store.Load()

			assert.Nil(t, doc)
			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, store.Path(), parseErr.Path)
		})
	}
}

func TestGet(t *testing.T) {
	doc := domain.Document{
		"repo": "myuser/myrepo",
		"achievements": map[string]any{
			"pull_shark": map[string]any{"threshold": []any{float64(2), float64(16)}},
		},
	}

	testCases := []struct {
		name     string
		key      string
		def      any
		expected any
	}{
		{name: "top level", key: "repo", expected: "myuser/myrepo"},
		{name: "nested", key: "achievements.pull_shark.threshold", expected: []any{float64(2), float64(16)}},
		{name: "missing top level", key: "nonexistent", def: "default", expected: "default"},
		{name: "missing nested", key: "achievements.yolo.enabled", def: true, expected: true},
		{name: "through a non-object", key: "repo.owner", def: "fallback", expected: "fallback"},
		{name: "through a list", key: "achievements.pull_shark.threshold.0", def: -1, expected: -1},
		{name: "empty key", key: "", def: "none", expected: "none"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Get(doc, tc.key, tc.def))
		})
	}
}

func TestGet_NilDocument(t *testing.T) {
	assert.Equal(t, "d", Get(nil, "repo", "d"))
}
