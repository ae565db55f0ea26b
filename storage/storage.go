// Package storage reads and writes documents on disk for the editor.
// The editing core never touches the filesystem; hosts call into this
// package when a save is requested.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// Load reads the document at path. A missing file is not an error: it
// yields an empty document, so opening a new name just works.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("load %s: %w", path, err)
	}
	return string(data), nil
}

// Save writes content to path atomically: the content lands in a
// temporary file in the same directory first and is renamed over the
// target, so a crash mid-write never truncates the original.
func Save(path string, content string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save %s: %w", path, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
