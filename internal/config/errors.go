package config

import "errors"

// Configuration validation errors.
//
// Package-level sentinel errors rather than fmt.Errorf at validation
// sites: callers can branch with errors.Is while the messages stay
// human-readable, and none of them needs dynamic values.
var (
	// ErrNoTarget is returned when the target list is empty. The CLI
	// defaults to README.md, so this only happens when a caller builds
	// a Config by hand.
	ErrNoTarget = errors.New("no target specified: provide a document path")

	// ErrInvalidBatchSize is returned when the batch size is not
	// positive. Zero concurrency would process nothing.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are requested. Only one report format can be rendered.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
