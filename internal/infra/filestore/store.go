// Package filestore provides a local-file implementation of domain.BlobStore.
package filestore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/runoshun/taskdeck/internal/domain"
)

// Ensure Store implements domain.BlobStore.
var _ domain.BlobStore = (*Store)(nil)

// Store reads and writes a single blob held in a local file.
type Store struct {
	path string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first write.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the backing file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Read returns the full file contents as text.
func (s *Store) Read() (string, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("read store file: %w", err)
	}
	return string(content), nil
}

// Write replaces the file contents with the given text. The blob is
// written to a temp file first and renamed into place, so a reader never
// observes a partial write.
func (s *Store) Write(contents string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(contents), 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
