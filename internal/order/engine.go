package order

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/linktidy/linktidy/internal/model"
	"github.com/linktidy/linktidy/internal/urlinfo"
)

// fold is the case-folding caser used for all case-insensitive
// comparisons. Folding handles the cases ToLower misses (dotless i,
// final sigma) and gives every sort in this package the same notion of
// "case-insensitive".
var fold = cases.Fold()

// Lines produces the final ordered sequence of canonical lines for the
// given extraction. With groupByDomain false the ordering is flat:
// unique URLs sorted ascending by case-insensitive comparison, mapped
// through their canonical lines. With groupByDomain true, URLs are
// first partitioned by grouping key (the registrable domain, with
// lenient fallbacks for malformed URLs), groups are emitted in
// ascending key order, and each group is alphabetized internally.
//
// All sorts are stable, so URLs whose comparison keys fold to the same
// string keep their first-occurrence order. Broken URLs participate
// like any other: their raw string is the sort key and, in grouped
// mode, the fallback grouping key.
func Lines(ex *model.Extraction, groupByDomain bool) []string {
	if groupByDomain {
		return groupedLines(ex)
	}
	return flatLines(ex)
}

// flatLines sorts the unique URLs case-insensitively and maps them
// through the canonical-line table.
func flatLines(ex *model.Extraction) []string {
	urls := append([]string(nil), ex.UniqueURLs()...)
	sortURLs(urls)

	lines := make([]string, 0, len(urls))
	for _, u := range urls {
		lines = append(lines, ex.Lines[u])
	}
	return lines
}

// groupedLines partitions the unique URLs by grouping key, orders the
// keys ascending case-insensitively, alphabetizes within each group,
// and concatenates the groups.
func groupedLines(ex *model.Extraction) []string {
	groups := make(map[string][]string)
	keys := make([]string, 0)

	for _, u := range ex.UniqueURLs() {
		key := urlinfo.GroupKey(u)
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], u)
	}

	sort.SliceStable(keys, func(i, j int) bool {
		return strings.Compare(fold.String(keys[i]), fold.String(keys[j])) < 0
	})

	lines := make([]string, 0, ex.UniqueCount())
	for _, key := range keys {
		members := groups[key]
		sortURLs(members)
		for _, u := range members {
			lines = append(lines, ex.Lines[u])
		}
	}
	return lines
}

// sortURLs sorts raw URLs in place, ascending by case-insensitive
// comparison. The sort is stable so equal folded keys retain their
// relative order.
func sortURLs(urls []string) {
	sort.SliceStable(urls, func(i, j int) bool {
		return strings.Compare(fold.String(urls[i]), fold.String(urls[j])) < 0
	})
}
