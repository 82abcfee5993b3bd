package model

import "time"

// TableEntry is one row of a rendered frequency table.
type TableEntry struct {
	// Key is the protocol, domain, or TLD.
	Key string `json:"key"`

	// Count is how many unique URLs fall under Key.
	Count int `json:"count"`

	// Percent is Count as a whole percentage of unique links, 0 when
	// there are none.
	Percent int `json:"percent"`
}

// Summary is the serializable view of one run's statistics, consumed by
// the report writers and the run-history store.
//
// A separate summary rather than serializing Report directly keeps
// presentation order explicit: the Counter tables are flattened into
// descending-count slices here, once, so every writer and the database
// agree on ordering.
type Summary struct {
	// FilePath is the source document path.
	FilePath string `json:"file_path"`

	// TidiedAt is when the run started.
	TidiedAt time.Time `json:"tidied_at"`

	// Grouped records whether domain-grouped ordering was used.
	Grouped bool `json:"grouped"`

	// TotalLinks counts all link lines found, duplicates included.
	TotalLinks int `json:"total_links"`

	// UniqueLinks counts distinct raw URLs.
	UniqueLinks int `json:"unique_links"`

	// Duplicates is TotalLinks minus UniqueLinks.
	Duplicates int `json:"duplicates"`

	// Protocols lists scheme frequencies, descending by count.
	Protocols []TableEntry `json:"protocols,omitempty"`

	// Domains lists host frequencies, descending by count.
	Domains []TableEntry `json:"domains,omitempty"`

	// TLDs lists top-level-domain frequencies, descending by count.
	TLDs []TableEntry `json:"tlds,omitempty"`

	// BrokenLinks lists URLs that failed structural parsing, in
	// first-occurrence order.
	BrokenLinks []string `json:"broken_links,omitempty"`

	// Error carries the run error message, if any.
	Error string `json:"error,omitempty"`
}

// NewSummary builds a Summary from a populated report. Ties within
// equal counts keep first-occurrence order, matching the Counter
// contract.
func NewSummary(report *Report) *Summary {
	s := &Summary{
		FilePath: report.FilePath,
		TidiedAt: report.StartedAt,
		Grouped:  report.GroupByDomain,
		Error:    report.ErrorMessage,
	}

	st := report.Stats
	if st == nil {
		return s
	}

	s.TotalLinks = st.TotalLinks
	s.UniqueLinks = st.UniqueLinks
	s.Duplicates = st.Duplicates
	s.Protocols = tableEntries(st, st.Protocols)
	s.Domains = tableEntries(st, st.Domains)
	s.TLDs = tableEntries(st, st.TLDs)
	s.BrokenLinks = st.BrokenLinks

	return s
}

// tableEntries flattens a Counter into descending-count entries with
// percentages computed against the unique link count.
func tableEntries(st *Statistics, c *Counter) []TableEntry {
	top := c.TopN(-1)
	entries := make([]TableEntry, 0, len(top))
	for _, e := range top {
		entries = append(entries, TableEntry{
			Key:     e.Key,
			Count:   e.Count,
			Percent: st.Percent(e.Count),
		})
	}
	return entries
}
