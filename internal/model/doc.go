// Package model defines the data types shared across the linktidy pipeline.
//
// The central type is Report, a per-run accumulator that pipeline steps
// populate as a document moves through splitting, link extraction,
// statistics aggregation, ordering, and reassembly. All types in this
// package are plain data holders; the behavior that produces them lives
// in the document, stats, and order packages.
package model
