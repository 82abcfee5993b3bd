package document

import "github.com/linktidy/linktidy/internal/model"

// Extract scans every body line through the classifier and accumulates
// the extraction: the ordered raw URL sequence (duplicates included),
// the insertion-ordered unique URL set, and the unique-URL-to-canonical-
// line map where the last occurrence's rendering wins.
//
// Body lines that do not classify as link lines are dropped. This is a
// deliberate, consequential behavior, not a bug: any non-link prose
// interleaved among the links (section sub-headers, notes) is lost on
// rewrite. Documents that need such prose preserved must keep it above
// the first link line.
func Extract(doc *model.Document) *model.Extraction {
	ex := model.NewExtraction()
	for _, line := range doc.Body {
		if link, ok := Classify(line); ok {
			ex.Add(link)
		}
	}
	return ex
}
