package pipeline

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/linktidy/linktidy/internal/model"
)

// BatchProcessor handles concurrent processing of multiple documents.
// Each document still flows through its own pipeline sequentially; the
// processor only overlaps independent files, bounded by the configured
// concurrency.
//
// A separate type rather than batch methods on Pipeline keeps Pipeline
// focused on single-document execution and gives batch-specific policy
// (limits, callbacks) its own home.
type BatchProcessor struct {
	// pipelineFactory creates a fresh pipeline per document so no state
	// leaks between runs.
	pipelineFactory func() *Pipeline

	concurrency int

	logger *slog.Logger
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent documents.
// Non-positive values are ignored.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a BatchProcessor.
func NewBatchProcessor(pipelineFactory func() *Pipeline, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		pipelineFactory: pipelineFactory,
		concurrency:     4,
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// ProcessBatch runs each report through a fresh pipeline, at most
// `concurrency` documents at a time. The callback fires once per
// completed document, from the worker goroutine that finished it;
// callers that touch shared state from the callback must synchronize.
//
// errgroup.SetLimit is used rather than a worker pool: every document
// gets a goroutine, errgroup bounds how many run, and the first
// failure cancels the rest via the derived context.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, reports []*model.Report, callback func(report *model.Report, index int)) error {
	bp.logger.Debug("starting batch processing",
		"documents", len(reports),
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, report := range reports {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			p := bp.pipelineFactory()
			if err := p.Execute(ctx, report); err != nil {
				return err
			}

			if callback != nil {
				callback(report, i)
			}
			return nil
		})
	}

	err := g.Wait()

	bp.logger.Debug("batch processing finished",
		"documents", len(reports),
		"elapsed", time.Since(startTime).Round(time.Millisecond),
	)

	return err
}
