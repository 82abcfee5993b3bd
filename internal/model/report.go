package model

import "time"

// Report is the per-run accumulator for one document transform. Pipeline
// steps populate it in sequence: the extract step fills Document and
// Extraction, the analyze step fills Stats, the order step fills
// OrderedLines, and the reassemble step fills Output.
type Report struct {
	// FilePath is the source document path, used for logging and the
	// run-history record. The pipeline itself never touches the file.
	FilePath string `json:"file_path"`

	// Input is the full pre-transform document text, unchanged. Callers
	// that want a backup snapshot take it from here before writing
	// Output back.
	Input string `json:"-"`

	// GroupByDomain selects the grouped ordering mode for this run.
	GroupByDomain bool `json:"group_by_domain"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`

	// Document is the header/body split of Input.
	Document *Document `json:"-"`

	// Extraction is the result of scanning the body for link lines.
	Extraction *Extraction `json:"-"`

	// Stats is the aggregate analysis of the extracted links.
	Stats *Statistics `json:"-"`

	// OrderedLines is the ordering engine's output: the canonical link
	// lines in their final order.
	OrderedLines []string `json:"-"`

	// Output is the reassembled document text. Empty in stats-only runs.
	Output string `json:"-"`

	// PerformedSteps names the pipeline steps that ran, in order.
	PerformedSteps []string `json:"performed_steps,omitempty"`

	// Error holds the first step error when the pipeline is configured
	// to continue past failures.
	Error error `json:"-"`

	// ErrorMessage mirrors Error for serialization.
	ErrorMessage string `json:"error,omitempty"`
}

// NewReport creates a Report for one document transform.
func NewReport(filePath, input string) *Report {
	return &Report{
		FilePath:  filePath,
		Input:     input,
		StartedAt: time.Now(),
	}
}
