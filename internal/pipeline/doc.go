// Package pipeline executes the linktidy transform as a sequence of
// steps over a shared report: split/extract, analyze, order, reassemble.
//
// A pipeline pattern instead of direct function calls keeps error
// handling and logging uniform across stages, lets the stats-only mode
// simply omit the ordering and reassembly steps, and gives each stage a
// name for structured logs. One document always runs single-threaded
// and synchronously; the only concurrency lives in BatchProcessor,
// which overlaps independent documents when several files are given.
package pipeline
