package report

import (
	"io"

	"github.com/linktidy/linktidy/internal/model"
)

// Writer defines the interface for statistics report output.
//
// An interface rather than concrete writers in the CLI allows the same
// routing code to target stdout, a file, or both without caring about
// format.
type Writer interface {
	// Write renders the report's statistics to the configured
	// destination, returning the number of bytes written.
	Write(report *model.Report) (int, error)

	// WriteSummary renders a pre-built summary. Used when replaying
	// stored runs that no longer have a full report behind them.
	WriteSummary(summary *model.Summary) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously, useful for
// emitting to both terminal and file. io.MultiWriter cannot serve here
// because this interface writes reports, not raw bytes.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write renders the report through every writer, stopping on the first
// error. The total byte count covers all writers that ran.
func (m *MultiWriter) Write(report *model.Report) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(report)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriteSummary renders the summary through every writer.
func (m *MultiWriter) WriteSummary(summary *model.Summary) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.WriteSummary(summary)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides the shared output destination for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// topEntries returns at most n leading entries of a table.
func topEntries(entries []model.TableEntry, n int) []model.TableEntry {
	if len(entries) > n {
		return entries[:n]
	}
	return entries
}
