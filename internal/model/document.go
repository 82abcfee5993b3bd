package model

// Document is a text document split into a preserved header and a
// candidate body. The header is every line before the first link line
// and passes through the transform unmodified; the body (first link
// line through end of input) is what link extraction consumes.
type Document struct {
	// Header contains all lines strictly before the first link line.
	// If the input contains no link line, Header is the whole document
	// and Body is empty.
	Header []string

	// Body contains the remaining lines, starting at the first link line.
	Body []string

	// Separator is the line separator the document was split on,
	// either "\r\n" or "\n". The reassembler reuses it so a transformed
	// document keeps its original line endings.
	Separator string

	// TrailingNewline records whether the input ended with a line
	// separator. Preserving it is what makes the flat transform a
	// byte-for-byte fixed point on its own output.
	TrailingNewline bool
}

// LinkLine is a single body line classified as containing a link.
type LinkLine struct {
	// RawURL is the URL as written in the document, trimmed.
	RawURL string

	// CanonicalLine is the line re-rendered with a single "* " bullet
	// prefix, regardless of the original spacing.
	CanonicalLine string
}
