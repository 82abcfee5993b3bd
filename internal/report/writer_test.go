package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/linktidy/linktidy/internal/model"
)

// sampleReport builds a report with a representative mix of valid,
// duplicated, and broken links already analyzed.
func sampleReport() *model.Report {
	st := model.NewStatistics()
	st.TotalLinks = 5
	st.UniqueLinks = 4
	st.Duplicates = 1
	st.Protocols.Inc("https")
	st.Protocols.Inc("https")
	st.Protocols.Inc("https")
	st.Protocols.Inc("http")
	st.Domains.Inc("a.com")
	st.Domains.Inc("b.org")
	st.Domains.Inc("a.com")
	st.TLDs.Inc("com")
	st.TLDs.Inc("org")
	st.TLDs.Inc("com")
	st.BrokenLinks = append(st.BrokenLinks, "http://bad::url")

	report := model.NewReport("README.md", "")
	report.StartedAt = time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)
	report.Stats = st
	return report
}

// TestTextWriter tests the human-readable renderer.
func TestTextWriter(t *testing.T) {
	t.Parallel()

	t.Run("renders every section", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewTextWriter(&buf).Write(sampleReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		for _, want := range []string{
			"LINK STATISTICS",
			"Document:  README.md",
			"Ordering:  alphabetical",
			"Total links:  5",
			"Unique links: 4",
			"Duplicates:   1",
			"https",
			"(75%)",
			"a.com",
			"2 links",
			"b.org",
			"1 link",
			"Broken links",
			"http://bad::url",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("empty statistics render placeholders", func(t *testing.T) {
		t.Parallel()

		report := model.NewReport("empty.md", "")
		report.Stats = model.NewStatistics()

		var buf bytes.Buffer
		if _, err := NewTextWriter(&buf).Write(report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := strings.Count(buf.String(), "(none)"); got != 4 {
			t.Errorf("expected 4 empty-section placeholders, found %d:\n%s", got, buf.String())
		}
	})

	t.Run("WithTopN caps the domain table", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewTextWriter(&buf, WithTopN(1)).Write(sampleReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		if !strings.Contains(out, "Top 1 domains") {
			t.Errorf("expected the capped heading, got:\n%s", out)
		}
		if strings.Contains(out, "b.org") {
			t.Errorf("second domain should be cut from the table:\n%s", out)
		}
	})
}

// TestJSONWriter tests the machine-readable renderer.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("emits valid JSON with the summary shape", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(sampleReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var decoded model.Summary
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
		}

		if decoded.FilePath != "README.md" {
			t.Errorf("file_path = %q, expected README.md", decoded.FilePath)
		}
		if decoded.TotalLinks != 5 || decoded.UniqueLinks != 4 {
			t.Errorf("totals = %d/%d, expected 5/4", decoded.TotalLinks, decoded.UniqueLinks)
		}
		if len(decoded.Protocols) != 2 || decoded.Protocols[0].Key != "https" {
			t.Errorf("protocols = %v, expected https first", decoded.Protocols)
		}
		if !strings.HasSuffix(buf.String(), "\n") {
			t.Error("expected a trailing newline")
		}
	})

	t.Run("pretty printing indents", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithPrettyPrint()).Write(sampleReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "\n  \"") {
			t.Errorf("expected indented output, got:\n%s", buf.String())
		}
	})
}

// TestMarkdownWriter tests the Markdown renderer.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("renders headings tables and the pie chart", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(sampleReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		for _, want := range []string{
			"# Link Statistics",
			"## Totals",
			"## Protocols",
			"| https ",
			"```mermaid",
			"pie",
			"## Broken Links",
			"`http://bad::url`",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("no broken links renders the tip alert", func(t *testing.T) {
		t.Parallel()

		report := model.NewReport("clean.md", "")
		st := model.NewStatistics()
		st.TotalLinks = 1
		st.UniqueLinks = 1
		st.Protocols.Inc("https")
		st.Domains.Inc("a.com")
		st.TLDs.Inc("com")
		report.Stats = st

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "No broken links detected.") {
			t.Errorf("expected the tip alert, got:\n%s", buf.String())
		}
	})
}

// TestMultiWriter tests fan-out to multiple writers.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	var text, jsonBuf bytes.Buffer
	mw := NewMultiWriter(NewTextWriter(&text), NewJSONWriter(&jsonBuf))

	if _, err := mw.Write(sampleReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if text.Len() == 0 || jsonBuf.Len() == 0 {
		t.Errorf("expected both writers to receive output, got %d/%d bytes",
			text.Len(), jsonBuf.Len())
	}
}
