package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store abstracts document IO for the tidy workflow.
type Store interface {
	// Read returns the full text of the document at path.
	Read(path string) (string, error)

	// Backup copies text to the backup location derived from path and
	// suffix, returning the backup path. It is called with the
	// pre-transform text before any write-back.
	Backup(path, suffix, text string) (string, error)

	// Write replaces the document at path with text.
	Write(path, text string) error
}

// FileStore is the Store implementation over the local filesystem.
type FileStore struct{}

// NewFileStore creates a FileStore.
func NewFileStore() *FileStore {
	return &FileStore{}
}

// Read returns the full text of the document at path.
func (s *FileStore) Read(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided document path is intentional
	if err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}
	return string(data), nil
}

// Backup writes text to path+suffix. The backup keeps the source file's
// permission bits when they can be determined, falling back to 0600.
func (s *FileStore) Backup(path, suffix, text string) (string, error) {
	backupPath := path + suffix

	mode := os.FileMode(0600)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(backupPath, []byte(text), mode); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}
	return backupPath, nil
}

// Write replaces the document at path with text, creating parent
// directories as needed.
func (s *FileStore) Write(path, text string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(path, []byte(text), mode); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}
