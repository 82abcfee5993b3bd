package main

import (
	"bytes"
	"strings"
	"testing"
)

// TestGetVersion tests version resolution precedence.
func TestGetVersion(t *testing.T) {
	if got := getVersion(); got == "" {
		t.Error("getVersion() returned empty")
	}

	orig := version
	t.Cleanup(func() { version = orig })

	version = "v1.2.3"
	if got := getVersion(); got != "v1.2.3" {
		t.Errorf("getVersion() = %q, expected the ldflags value", got)
	}
}

// TestVersionCmd tests the version subcommand output.
func TestVersionCmd(t *testing.T) {
	cmd := NewVersionCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	cmd.Run(cmd, nil)

	out := buf.String()
	if !strings.Contains(out, "linktidy ") {
		t.Errorf("output missing the version line:\n%s", out)
	}
	if !strings.Contains(out, "commit ") || !strings.Contains(out, "built ") {
		t.Errorf("output missing build details:\n%s", out)
	}
}

// TestGetCommit tests commit resolution via ldflags.
func TestGetCommit(t *testing.T) {
	orig := commit
	t.Cleanup(func() { commit = orig })

	commit = "abc1234"
	if got := getCommit(); got != "abc1234" {
		t.Errorf("getCommit() = %q, expected the ldflags value", got)
	}
}
