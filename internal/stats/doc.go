// Package stats aggregates descriptive statistics over one document's
// extracted links: total/unique/duplicate counts, the protocol mix,
// per-domain and per-TLD frequency tables, and the list of URLs that
// failed structural parsing.
package stats
