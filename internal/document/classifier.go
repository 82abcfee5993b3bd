package document

import (
	"strings"

	"github.com/linktidy/linktidy/internal/model"
)

// bulletPrefix is the canonical list-item prefix. Classified lines are
// always re-rendered with exactly this prefix and a single space.
const bulletPrefix = "* "

// Classify inspects one line of text and reports whether it is a link
// line, returning the extracted raw URL and the canonical re-rendering.
//
// Rules, first match wins, applied to the whitespace-trimmed line:
//  1. Starts with "* " and contains "http://" or "https://" anywhere
//     after the bullet: the raw URL is everything after the bullet,
//     re-trimmed. Known imprecision: a bulleted line whose URL is not
//     at the start ("* see http://x") yields the leading prose as part
//     of the raw URL. Downstream grouping and sorting depend on this,
//     so it stays.
//  2. Starts with "http://" or "https://": the whole trimmed line is
//     the raw URL. Known quirk: prose that merely begins with those
//     literals is classified as a link.
//  3. Anything else is not a link line.
func Classify(line string) (model.LinkLine, bool) {
	t := strings.TrimSpace(line)

	if strings.HasPrefix(t, bulletPrefix) {
		rest := t[len(bulletPrefix):]
		if strings.Contains(rest, "http://") || strings.Contains(rest, "https://") {
			raw := strings.TrimSpace(rest)
			return model.LinkLine{RawURL: raw, CanonicalLine: bulletPrefix + raw}, true
		}
		return model.LinkLine{}, false
	}

	if strings.HasPrefix(t, "http://") || strings.HasPrefix(t, "https://") {
		return model.LinkLine{RawURL: t, CanonicalLine: bulletPrefix + t}, true
	}

	return model.LinkLine{}, false
}
