package pipeline

import (
	"context"
	"log/slog"

	"github.com/linktidy/linktidy/internal/document"
	"github.com/linktidy/linktidy/internal/model"
	"github.com/linktidy/linktidy/internal/order"
	"github.com/linktidy/linktidy/internal/stats"
)

// ExtractStep splits the input into header and body and extracts every
// link line from the body. It is always the first step: everything
// downstream consumes its Document and Extraction.
type ExtractStep struct {
	logger *slog.Logger
}

// NewExtractStep creates the extraction step.
func NewExtractStep(logger *slog.Logger) *ExtractStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractStep{logger: logger}
}

// Name returns the step name.
func (s *ExtractStep) Name() string {
	return "extract"
}

// Do splits the document and scans the body for link lines.
func (s *ExtractStep) Do(_ context.Context, report *model.Report) error {
	report.Document = document.Split(report.Input)
	report.Extraction = document.Extract(report.Document)

	s.logger.Debug("extraction complete",
		"file", report.FilePath,
		"headerLines", len(report.Document.Header),
		"bodyLines", len(report.Document.Body),
		"totalLinks", report.Extraction.TotalCount(),
		"uniqueLinks", report.Extraction.UniqueCount(),
	)
	return nil
}

// AnalyzeStep aggregates descriptive statistics over the extraction.
type AnalyzeStep struct {
	logger *slog.Logger
}

// NewAnalyzeStep creates the statistics aggregation step.
func NewAnalyzeStep(logger *slog.Logger) *AnalyzeStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyzeStep{logger: logger}
}

// Name returns the step name.
func (s *AnalyzeStep) Name() string {
	return "analyze"
}

// Do computes the Statistics record from the extraction.
func (s *AnalyzeStep) Do(_ context.Context, report *model.Report) error {
	report.Stats = stats.Aggregate(report.Extraction)

	if len(report.Stats.BrokenLinks) > 0 {
		s.logger.Debug("broken links detected",
			"file", report.FilePath,
			"count", len(report.Stats.BrokenLinks),
		)
	}
	return nil
}

// OrderStep produces the final ordered sequence of canonical lines,
// flat or grouped by domain.
type OrderStep struct {
	logger *slog.Logger
}

// NewOrderStep creates the ordering step.
func NewOrderStep(logger *slog.Logger) *OrderStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderStep{logger: logger}
}

// Name returns the step name.
func (s *OrderStep) Name() string {
	return "order"
}

// Do runs the ordering engine in the mode the report requests.
func (s *OrderStep) Do(_ context.Context, report *model.Report) error {
	report.OrderedLines = order.Lines(report.Extraction, report.GroupByDomain)

	s.logger.Debug("ordering complete",
		"file", report.FilePath,
		"grouped", report.GroupByDomain,
		"lines", len(report.OrderedLines),
	)
	return nil
}

// ReassembleStep joins the preserved header with the ordered lines to
// produce the final document text.
type ReassembleStep struct{}

// NewReassembleStep creates the reassembly step.
func NewReassembleStep() *ReassembleStep {
	return &ReassembleStep{}
}

// Name returns the step name.
func (s *ReassembleStep) Name() string {
	return "reassemble"
}

// Do builds the output text from the header and ordered lines.
func (s *ReassembleStep) Do(_ context.Context, report *model.Report) error {
	report.Output = document.Reassemble(report.Document, report.OrderedLines)
	return nil
}

// TransformPipeline assembles the full transform: extract, analyze,
// order, reassemble.
func TransformPipeline(logger *slog.Logger, opts ...Option) *Pipeline {
	p := New(append(opts, WithLogger(logger))...)
	p.AddSteps(
		NewExtractStep(logger),
		NewAnalyzeStep(logger),
		NewOrderStep(logger),
		NewReassembleStep(),
	)
	return p
}

// StatsPipeline assembles the stats-only variant: extract and analyze,
// no ordering and no output text, so the document is never mutated.
func StatsPipeline(logger *slog.Logger, opts ...Option) *Pipeline {
	p := New(append(opts, WithLogger(logger))...)
	p.AddSteps(
		NewExtractStep(logger),
		NewAnalyzeStep(logger),
	)
	return p
}
