package stats

import (
	"github.com/linktidy/linktidy/internal/model"
	"github.com/linktidy/linktidy/internal/urlinfo"
)

// Aggregate computes the Statistics record for one extraction.
//
// Each unique URL is analyzed exactly once, in first-occurrence order.
// A structurally valid URL increments the protocol, domain, and TLD
// tables; a malformed one is appended to BrokenLinks and contributes to
// no table. Duplicate occurrences never re-count: all tables are
// defined over the unique set, while TotalLinks counts every link line
// found.
//
// First-occurrence order matters twice: it fixes the order of
// BrokenLinks, and it seeds the insertion order the Counter tables use
// to break Top-N ties. That tie-break is therefore input-order
// dependent, which is the documented, intentionally preserved behavior.
func Aggregate(ex *model.Extraction) *model.Statistics {
	s := model.NewStatistics()

	s.TotalLinks = ex.TotalCount()
	s.UniqueLinks = ex.UniqueCount()
	s.Duplicates = ex.DuplicateCount()

	for _, raw := range ex.UniqueURLs() {
		parsed, err := urlinfo.Parse(raw)
		if err != nil {
			s.BrokenLinks = append(s.BrokenLinks, raw)
			continue
		}

		s.Protocols.Inc(parsed.Scheme)
		s.Domains.Inc(parsed.Host)
		s.TLDs.Inc(parsed.TLD)
	}

	return s
}
