// Package database provides the SQLite-backed run-history store.
//
// Every tidy run's statistics summary is recorded so users can see how
// a link collection evolved: link counts over time, when duplicates
// crept in, when broken links appeared. The store is append-only with
// respect to the transform; nothing read from it ever influences how a
// document is rewritten.
package database
