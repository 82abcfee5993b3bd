// Package report renders a run's link statistics for humans and tools.
//
// Three writers share one interface: a plain-text writer for terminal
// display (the default), a Markdown writer with tables and a
// protocol-mix pie chart for documentation, and a JSON writer for
// programmatic consumers. All render the same Summary, so formats never
// disagree about ordering or counts.
package report
