package document

import (
	"strings"

	"github.com/linktidy/linktidy/internal/model"
)

// Split divides a document into the preserved header and the candidate
// body. The header is every line strictly before the first link line;
// the body runs from the first link line through end of input. If no
// line classifies as a link line, the header is the whole document and
// the body is empty.
//
// Link collections are conventionally preceded by prose and title lines
// that must never be reordered or treated as links, which is why the
// split happens before extraction.
func Split(text string) *model.Document {
	sep := "\n"
	if strings.Contains(text, "\r\n") {
		sep = "\r\n"
	}

	trailing := strings.HasSuffix(text, sep)
	if trailing {
		text = strings.TrimSuffix(text, sep)
	}

	doc := &model.Document{
		Separator:       sep,
		TrailingNewline: trailing,
	}

	// A fully empty input has no lines at all. "\n" on the other hand
	// is one empty line followed by the trailing separator.
	if text == "" && !trailing {
		doc.Header = []string{}
		doc.Body = []string{}
		return doc
	}

	lines := strings.Split(text, sep)

	first := -1
	for i, line := range lines {
		if _, ok := Classify(line); ok {
			first = i
			break
		}
	}

	if first < 0 {
		doc.Header = lines
		doc.Body = []string{}
		return doc
	}

	doc.Header = lines[:first]
	doc.Body = lines[first:]
	return doc
}
