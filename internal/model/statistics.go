package model

import (
	"math"
	"sort"
)

// Counter is a frequency table that remembers key insertion order.
//
// Design decision: plain maps would lose the order in which keys were
// first seen, but the statistics contract ties Top-N tie-breaking to
// first-occurrence order. Keeping an ordered key slice alongside the
// count map makes that order explicit and the sorts deterministic.
type Counter struct {
	counts map[string]int
	keys   []string
}

// NewCounter creates an empty Counter.
func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

// Inc increments the count for key, registering it on first sight.
func (c *Counter) Inc(key string) {
	if _, ok := c.counts[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.counts[key]++
}

// Count returns the count for key, zero if the key was never seen.
func (c *Counter) Count(key string) int {
	return c.counts[key]
}

// Len returns the number of distinct keys.
func (c *Counter) Len() int {
	return len(c.keys)
}

// Keys returns the keys in insertion order. The returned slice is owned
// by the Counter and must not be mutated.
func (c *Counter) Keys() []string {
	return c.keys
}

// CountEntry is one row of a Top-N view.
type CountEntry struct {
	Key   string
	Count int
}

// TopN returns up to n entries in descending count order. Ties keep
// insertion order: the sort is stable over the insertion-ordered key
// slice, so equal counts never reorder relative to first occurrence.
func (c *Counter) TopN(n int) []CountEntry {
	entries := make([]CountEntry, 0, len(c.keys))
	for _, k := range c.keys {
		entries = append(entries, CountEntry{Key: k, Count: c.counts[k]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if n >= 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// Statistics holds the aggregate results of analyzing one document's
// links. Counts over protocols, domains, and TLDs cover unique URLs
// only, so a duplicated URL contributes once; broken URLs appear in
// BrokenLinks and in no other table.
type Statistics struct {
	// TotalLinks is the number of link lines found, duplicates included.
	TotalLinks int `json:"total_links"`

	// UniqueLinks is the number of distinct raw URLs.
	UniqueLinks int `json:"unique_links"`

	// Duplicates is TotalLinks minus UniqueLinks.
	Duplicates int `json:"duplicates"`

	// Protocols counts URL schemes over unique, structurally valid URLs.
	Protocols *Counter `json:"-"`

	// Domains counts hosts (lowercased, www-stripped) over unique,
	// structurally valid URLs.
	Domains *Counter `json:"-"`

	// TLDs counts top-level domains over unique, structurally valid URLs.
	TLDs *Counter `json:"-"`

	// BrokenLinks lists unique URLs that failed structural parsing, in
	// first-occurrence order.
	BrokenLinks []string `json:"broken_links,omitempty"`
}

// NewStatistics creates a Statistics record with empty tables.
func NewStatistics() *Statistics {
	return &Statistics{
		Protocols:   NewCounter(),
		Domains:     NewCounter(),
		TLDs:        NewCounter(),
		BrokenLinks: make([]string, 0),
	}
}

// Percent converts a table count into a whole percentage of unique
// links. When there are no unique links the answer is defined as 0,
// guarding the division.
func (s *Statistics) Percent(count int) int {
	if s.UniqueLinks == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(s.UniqueLinks) * 100))
}
