package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/linktidy/linktidy/internal/config"
	"github.com/linktidy/linktidy/internal/model"
)

// TextWriter outputs human-readable statistics reports.
//
// Plain text with ASCII formatting rather than ANSI colors: it works in
// every terminal and pipes cleanly to files and other tools.
type TextWriter struct {
	baseWriter

	// topN limits the domain and TLD tables.
	topN int

	// brokenExamples limits how many broken URLs are listed before the
	// remainder collapses to a count.
	brokenExamples int
}

// TextWriterOption configures a TextWriter.
type TextWriterOption func(*TextWriter)

// WithTopN overrides how many domains and TLDs are listed.
func WithTopN(n int) TextWriterOption {
	return func(w *TextWriter) {
		if n > 0 {
			w.topN = n
		}
	}
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer, opts ...TextWriterOption) *TextWriter {
	w := &TextWriter{
		baseWriter:     newBaseWriter(output),
		topN:           config.DefaultTopN,
		brokenExamples: config.DefaultBrokenExamples,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write renders the report's statistics in human-readable form.
func (w *TextWriter) Write(report *model.Report) (int, error) {
	return w.WriteSummary(model.NewSummary(report))
}

// WriteSummary renders the summary in human-readable form.
func (w *TextWriter) WriteSummary(summary *model.Summary) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, summary)
	w.writeCounts(&sb, summary)
	w.writeProtocols(&sb, summary)
	w.writeDomains(&sb, summary)
	w.writeTLDs(&sb, summary)
	w.writeBroken(&sb, summary)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report banner with run information.
func (w *TextWriter) writeHeader(sb *strings.Builder, summary *model.Summary) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n")
	sb.WriteString("                   LINK STATISTICS\n")
	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Document:  %s\n", summary.FilePath))
	sb.WriteString(fmt.Sprintf("Tidied at: %s\n", summary.TidiedAt.Format("2006-01-02 15:04:05")))
	if summary.Grouped {
		sb.WriteString("Ordering:  grouped by domain\n")
	} else {
		sb.WriteString("Ordering:  alphabetical\n")
	}
	if summary.Error != "" {
		sb.WriteString(fmt.Sprintf("Status:    ERROR - %s\n", summary.Error))
	}
	sb.WriteString("\n")
}

// writeCounts writes the total/unique/duplicate section.
func (w *TextWriter) writeCounts(sb *strings.Builder, summary *model.Summary) {
	sb.WriteString("Totals\n")
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  Total links:  %d\n", summary.TotalLinks))
	sb.WriteString(fmt.Sprintf("  Unique links: %d\n", summary.UniqueLinks))
	sb.WriteString(fmt.Sprintf("  Duplicates:   %d\n", summary.Duplicates))
	sb.WriteString("\n")
}

// writeProtocols writes the protocol distribution with percentages.
func (w *TextWriter) writeProtocols(sb *strings.Builder, summary *model.Summary) {
	sb.WriteString("Protocols\n")
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n")

	if len(summary.Protocols) == 0 {
		sb.WriteString("  (none)\n\n")
		return
	}

	for _, e := range summary.Protocols {
		sb.WriteString(fmt.Sprintf("  %-8s %4d  (%d%%)\n", e.Key, e.Count, e.Percent))
	}
	sb.WriteString("\n")
}

// writeDomains writes the top domains by link count.
func (w *TextWriter) writeDomains(sb *strings.Builder, summary *model.Summary) {
	sb.WriteString(fmt.Sprintf("Top %d domains\n", w.topN))
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n")

	entries := topEntries(summary.Domains, w.topN)
	if len(entries) == 0 {
		sb.WriteString("  (none)\n\n")
		return
	}

	for _, e := range entries {
		noun := "links"
		if e.Count == 1 {
			noun = "link"
		}
		sb.WriteString(fmt.Sprintf("  %-40s %4d %s\n", e.Key, e.Count, noun))
	}
	sb.WriteString("\n")
}

// writeTLDs writes the top TLDs with percentages.
func (w *TextWriter) writeTLDs(sb *strings.Builder, summary *model.Summary) {
	sb.WriteString(fmt.Sprintf("Top %d TLDs\n", w.topN))
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n")

	entries := topEntries(summary.TLDs, w.topN)
	if len(entries) == 0 {
		sb.WriteString("  (none)\n\n")
		return
	}

	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("  %-12s %4d  (%d%%)\n", e.Key, e.Count, e.Percent))
	}
	sb.WriteString("\n")
}

// writeBroken writes the broken link section: total count, a few
// examples, and how many more exist beyond them.
func (w *TextWriter) writeBroken(sb *strings.Builder, summary *model.Summary) {
	sb.WriteString("Broken links\n")
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n")

	if len(summary.BrokenLinks) == 0 {
		sb.WriteString("  (none)\n\n")
		return
	}

	sb.WriteString(fmt.Sprintf("  %d broken link(s) found:\n", len(summary.BrokenLinks)))

	shown := summary.BrokenLinks
	if len(shown) > w.brokenExamples {
		shown = shown[:w.brokenExamples]
	}
	for _, b := range shown {
		sb.WriteString(fmt.Sprintf("    - %s\n", b))
	}
	if more := len(summary.BrokenLinks) - len(shown); more > 0 {
		sb.WriteString(fmt.Sprintf("    ... and %d more\n", more))
	}
	sb.WriteString("\n")
}
