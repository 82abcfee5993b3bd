package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/linktidy/linktidy/internal/config"
	"github.com/linktidy/linktidy/internal/model"
)

// MarkdownWriter outputs statistics reports in Markdown format, for
// sharing and documentation.
//
// The nao1215/markdown library gives type-safe markdown generation:
// tables, lists, GitHub-flavored alerts, and mermaid pie charts.
type MarkdownWriter struct {
	baseWriter

	topN           int
	brokenExamples int
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter:     newBaseWriter(output),
		topN:           config.DefaultTopN,
		brokenExamples: config.DefaultBrokenExamples,
	}
}

// Write renders the report's statistics as Markdown.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	return w.WriteSummary(model.NewSummary(report))
}

// WriteSummary renders the summary as Markdown.
func (w *MarkdownWriter) WriteSummary(summary *model.Summary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, summary)
	w.writeCounts(md, summary)
	w.writeProtocols(md, summary)
	w.writeDomains(md, summary)
	w.writeTLDs(md, summary)
	w.writeBroken(md, summary)

	return len(md.String()), md.Build()
}

// writeHeader writes the report title and run information table.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, summary *model.Summary) {
	md.H1("Link Statistics")
	md.PlainText("")

	ordering := "alphabetical"
	if summary.Grouped {
		ordering = "grouped by domain"
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Document", "`" + summary.FilePath + "`"},
			{"Tidied at", summary.TidiedAt.Format("2006-01-02 15:04:05")},
			{"Ordering", ordering},
		},
	})
	md.PlainText("")
}

// writeCounts writes the totals table and a duplicate alert.
func (w *MarkdownWriter) writeCounts(md *markdown.Markdown, summary *model.Summary) {
	md.H2("Totals")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Count"},
		Rows: [][]string{
			{"Total links", strconv.Itoa(summary.TotalLinks)},
			{"Unique links", strconv.Itoa(summary.UniqueLinks)},
			{"Duplicates", strconv.Itoa(summary.Duplicates)},
		},
	})
	md.PlainText("")

	if summary.Duplicates > 0 {
		md.Notef("%d duplicate link(s) were collapsed into one entry each.", summary.Duplicates)
		md.PlainText("")
	}
}

// writeProtocols writes the protocol table and the protocol-mix pie chart.
func (w *MarkdownWriter) writeProtocols(md *markdown.Markdown, summary *model.Summary) {
	md.H2("Protocols")
	md.PlainText("")

	if len(summary.Protocols) == 0 {
		md.PlainText("No structurally valid links.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(summary.Protocols))
	for i, e := range summary.Protocols {
		rows[i] = []string{e.Key, strconv.Itoa(e.Count), strconv.Itoa(e.Percent) + "%"}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Protocol", "Count", "Share"},
		Rows:   rows,
	})
	md.PlainText("")

	w.writePieChart(md, summary)
}

// writePieChart writes a mermaid pie chart of the protocol mix.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, summary *model.Summary) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Protocol Mix"),
		piechart.WithShowData(true),
	)

	for _, e := range summary.Protocols {
		chart.LabelAndIntValue(e.Key, uint64(e.Count))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeDomains writes the top-domain table.
func (w *MarkdownWriter) writeDomains(md *markdown.Markdown, summary *model.Summary) {
	md.H2(fmt.Sprintf("Top %d Domains", w.topN))
	md.PlainText("")

	entries := topEntries(summary.Domains, w.topN)
	if len(entries) == 0 {
		md.PlainText("No structurally valid links.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{"`" + e.Key + "`", strconv.Itoa(e.Count)}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Domain", "Links"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeTLDs writes the top-TLD table.
func (w *MarkdownWriter) writeTLDs(md *markdown.Markdown, summary *model.Summary) {
	md.H2(fmt.Sprintf("Top %d TLDs", w.topN))
	md.PlainText("")

	entries := topEntries(summary.TLDs, w.topN)
	if len(entries) == 0 {
		md.PlainText("No structurally valid links.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{e.Key, strconv.Itoa(e.Count), strconv.Itoa(e.Percent) + "%"}
	}
	md.Table(markdown.TableSet{
		Header: []string{"TLD", "Count", "Share"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeBroken writes the broken-link section with a warning alert.
func (w *MarkdownWriter) writeBroken(md *markdown.Markdown, summary *model.Summary) {
	md.H2("Broken Links")
	md.PlainText("")

	if len(summary.BrokenLinks) == 0 {
		md.Tip("No broken links detected.")
		md.PlainText("")
		return
	}

	md.Warningf("%d link(s) failed structural parsing and were excluded from the tables above.", len(summary.BrokenLinks))
	md.PlainText("")

	shown := summary.BrokenLinks
	if len(shown) > w.brokenExamples {
		shown = shown[:w.brokenExamples]
	}

	items := make([]string, 0, len(shown)+1)
	for _, b := range shown {
		items = append(items, "`"+b+"`")
	}
	if more := len(summary.BrokenLinks) - len(shown); more > 0 {
		items = append(items, fmt.Sprintf("... and %d more", more))
	}
	md.BulletList(items...)
	md.PlainText("")
}
