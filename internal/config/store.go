// Package config loads and saves the JSON configuration document and
// resolves values inside it.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/naka-gawa/github-achievements/internal/domain"
	"github.com/naka-gawa/github-achievements/internal/fsutil"
)

// ParseError reports a configuration file that exists but is not valid JSON.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing config %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Store reads and writes the configuration document at a fixed path.
type Store struct {
	path string
}

// NewStore returns a Store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns $HOME/.config/github-achievements/config.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "github-achievements", "config.json"), nil
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Load returns the document on disk, or a copy of the default document when
// the file does not exist. Load never creates the file.
func (s *Store) Load() (domain.Document, error) {
	if err := fsutil.EnsureDir(s.path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.DefaultDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", s.path, err)
	}

	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Path: s.path, Err: err}
	}
	if doc == nil {
		// A literal "null" decodes to a nil map.
		return nil, &ParseError{Path: s.path, Err: errors.New("document is not a JSON object")}
	}
	return doc, nil
}

// Save overwrites the file with the full document.
func (s *Store) Save(doc domain.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return fsutil.WriteFileAtomic(s.path, append(data, '\n'), 0o600)
}

// Get resolves a dot-separated key through nested objects. It returns def as
// soon as a segment is missing or the value reached so far is not an object.
func Get(doc domain.Document, key string, def any) any {
	var cur any = map[string]any(doc)
	for _, segment := range strings.Split(key, ".") {
		m, ok := asMap(cur)
		if !ok {
			return def
		}
		next, ok := m[segment]
		if !ok {
			return def
		}
		cur = next
	}
	return cur
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, m != nil
	case domain.Document:
		return map[string]any(m), m != nil
	default:
		return nil, false
	}
}
