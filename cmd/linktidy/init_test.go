package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestInitCmd tests configuration file generation.
func TestInitCmd(t *testing.T) {
	runInit := func(t *testing.T, args ...string) error {
		t.Helper()

		cmd := NewRootCmd()
		cmd.SetArgs(append([]string{"init"}, args...))
		return cmd.Execute()
	}

	t.Run("creates the configuration file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".linktidy")

		if err := runInit(t, "-o", path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("config file missing: %v", err)
		}
		for _, want := range []string{"defaults:", "files:"} {
			if !strings.Contains(string(data), want) {
				t.Errorf("template missing %q:\n%s", want, data)
			}
		}
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".linktidy")
		if err := os.WriteFile(path, []byte("mine"), 0o600); err != nil {
			t.Fatal(err)
		}

		if err := runInit(t, "-o", path); err == nil {
			t.Error("expected an error for an existing file")
		}

		data, _ := os.ReadFile(path)
		if string(data) != "mine" {
			t.Errorf("existing file was modified: %q", data)
		}
	})

	t.Run("force overwrites", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".linktidy")
		if err := os.WriteFile(path, []byte("mine"), 0o600); err != nil {
			t.Fatal(err)
		}

		if err := runInit(t, "-o", path, "-f"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, _ := os.ReadFile(path)
		if string(data) == "mine" {
			t.Error("expected the template to replace the file")
		}
	})

	t.Run("creates missing parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", ".linktidy")

		if err := runInit(t, "-o", path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected the file to exist: %v", err)
		}
	})
}
