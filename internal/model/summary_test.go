package model

import (
	"reflect"
	"testing"
)

// TestNewSummary tests flattening a report into its serializable view.
func TestNewSummary(t *testing.T) {
	t.Parallel()

	t.Run("flattens counters into percentage tables", func(t *testing.T) {
		t.Parallel()

		st := NewStatistics()
		st.TotalLinks = 5
		st.UniqueLinks = 4
		st.Duplicates = 1
		st.Protocols.Inc("https")
		st.Protocols.Inc("https")
		st.Protocols.Inc("https")
		st.Protocols.Inc("http")
		st.Domains.Inc("a.com")
		st.Domains.Inc("b.com")
		st.BrokenLinks = append(st.BrokenLinks, "http://bad::url")

		report := NewReport("README.md", "")
		report.GroupByDomain = true
		report.Stats = st

		s := NewSummary(report)

		if s.FilePath != "README.md" {
			t.Errorf("FilePath = %q, expected README.md", s.FilePath)
		}
		if !s.Grouped {
			t.Error("Grouped = false, expected true")
		}
		if s.TotalLinks != 5 || s.UniqueLinks != 4 || s.Duplicates != 1 {
			t.Errorf("totals = %d/%d/%d, expected 5/4/1",
				s.TotalLinks, s.UniqueLinks, s.Duplicates)
		}

		wantProtocols := []TableEntry{
			{Key: "https", Count: 3, Percent: 75},
			{Key: "http", Count: 1, Percent: 25},
		}
		if !reflect.DeepEqual(s.Protocols, wantProtocols) {
			t.Errorf("Protocols = %v, expected %v", s.Protocols, wantProtocols)
		}
		if !reflect.DeepEqual(s.BrokenLinks, []string{"http://bad::url"}) {
			t.Errorf("BrokenLinks = %v, expected the malformed URL", s.BrokenLinks)
		}
	})

	t.Run("report without stats yields empty summary", func(t *testing.T) {
		t.Parallel()

		report := NewReport("links.txt", "")
		report.ErrorMessage = "read failed"

		s := NewSummary(report)

		if s.Error != "read failed" {
			t.Errorf("Error = %q, expected the report message", s.Error)
		}
		if s.TotalLinks != 0 || len(s.Protocols) != 0 {
			t.Errorf("expected zero-valued summary, got %+v", s)
		}
	})
}
