package storage

import (
	"os"
	"path/filepath"
	"testing"
)

// TestFileStore tests document IO against a temporary directory.
func TestFileStore(t *testing.T) {
	t.Parallel()

	t.Run("Read returns the full text", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "links.md")
		if err := os.WriteFile(path, []byte("* https://a.com/1\n"), 0o600); err != nil {
			t.Fatal(err)
		}

		got, err := NewFileStore().Read(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "* https://a.com/1\n" {
			t.Errorf("Read() = %q, unexpected content", got)
		}
	})

	t.Run("Read on a missing file fails", func(t *testing.T) {
		t.Parallel()

		if _, err := NewFileStore().Read(filepath.Join(t.TempDir(), "absent")); err == nil {
			t.Error("expected an error for a missing file")
		}
	})

	t.Run("Backup writes the snapshot beside the source", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "links.md")
		if err := os.WriteFile(path, []byte("original\n"), 0o600); err != nil {
			t.Fatal(err)
		}

		backupPath, err := NewFileStore().Backup(path, ".bak", "original\n")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if backupPath != path+".bak" {
			t.Errorf("backup path = %q, expected %q", backupPath, path+".bak")
		}

		data, err := os.ReadFile(backupPath)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "original\n" {
			t.Errorf("backup content = %q, expected the snapshot text", data)
		}
	})

	t.Run("Write replaces the document", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "links.md")
		if err := os.WriteFile(path, []byte("old\n"), 0o600); err != nil {
			t.Fatal(err)
		}

		if err := NewFileStore().Write(path, "new\n"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "new\n" {
			t.Errorf("content = %q, expected new", data)
		}
	})

	t.Run("Write creates missing parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "deep", "links.md")
		if err := NewFileStore().Write(path, "text\n"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected the file to exist: %v", err)
		}
	})
}
