// Package main provides the entry point for the linktidy CLI.
//
// linktidy normalizes and analyzes link collections kept as bulleted
// lists in text documents. It deduplicates, sorts (alphabetically or
// grouped by domain), rewrites the document, and reports descriptive
// statistics about the links it found.
//
// Usage:
//
//	linktidy tidy [file...]
//	linktidy tidy --group --stats-only LINKS.md
//
// See --help for all available options.
package main

// main is the entry point for linktidy.
func main() {
	Execute()
}
