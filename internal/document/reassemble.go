package document

import (
	"strings"

	"github.com/linktidy/linktidy/internal/model"
)

// Reassemble concatenates the preserved header with the ordered link
// lines, joined by the separator the document was originally split on.
// The trailing newline is restored if the input had one, so a transform
// applied to its own output is byte-identical.
func Reassemble(doc *model.Document, orderedLines []string) string {
	lines := make([]string, 0, len(doc.Header)+len(orderedLines))
	lines = append(lines, doc.Header...)
	lines = append(lines, orderedLines...)

	out := strings.Join(lines, doc.Separator)
	if doc.TrailingNewline && len(lines) > 0 {
		out += doc.Separator
	}
	return out
}
