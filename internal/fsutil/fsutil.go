// Package fsutil holds small filesystem helpers shared by the config store
// and the page generator.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFileAtomic creates the parent directory of path and replaces the file
// with data in a single rename, so readers never observe a partial write.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	if err := EnsureDir(path); err != nil {
		return err
	}
	if err := atomicWriteFile(path, data, perm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// EnsureDir creates the parent directory of path if it does not exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}
