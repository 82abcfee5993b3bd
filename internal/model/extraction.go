package model

// Extraction is the result of scanning a document body for link lines.
//
// Design decision: duplicate detection needs two parallel structures
// kept in sync by a single scan pass. AllURLs is the ordered sequence
// with duplicates (raw counting); the unique slice plus Lines map is
// the key-unique view (one canonical line per unique URL). The unique
// slice preserves first-occurrence order, which later becomes the
// iteration order for statistics and the tie-break order for Top-N
// views.
type Extraction struct {
	// AllURLs holds every extracted raw URL in document order,
	// duplicates included.
	AllURLs []string

	// unique holds each distinct raw URL once, in order of first
	// occurrence within AllURLs.
	unique []string

	// seen tracks membership for the unique slice.
	seen map[string]bool

	// Lines maps each unique raw URL to its canonical line. When a URL
	// occurs more than once, the last occurrence's rendering wins.
	Lines map[string]string
}

// NewExtraction creates an empty Extraction.
func NewExtraction() *Extraction {
	return &Extraction{
		AllURLs: make([]string, 0),
		unique:  make([]string, 0),
		seen:    make(map[string]bool),
		Lines:   make(map[string]string),
	}
}

// Add records one classified link line. The raw URL is appended to the
// ordered sequence unconditionally; the unique set gains the URL on
// first sight; the canonical line is always overwritten so the last
// occurrence wins.
func (e *Extraction) Add(line LinkLine) {
	e.AllURLs = append(e.AllURLs, line.RawURL)
	if !e.seen[line.RawURL] {
		e.seen[line.RawURL] = true
		e.unique = append(e.unique, line.RawURL)
	}
	e.Lines[line.RawURL] = line.CanonicalLine
}

// UniqueURLs returns the distinct raw URLs in first-occurrence order.
// The returned slice is owned by the Extraction and must not be mutated.
func (e *Extraction) UniqueURLs() []string {
	return e.unique
}

// TotalCount returns the number of link lines found, duplicates included.
func (e *Extraction) TotalCount() int {
	return len(e.AllURLs)
}

// UniqueCount returns the number of distinct raw URLs.
func (e *Extraction) UniqueCount() int {
	return len(e.unique)
}

// DuplicateCount returns how many link lines repeated an earlier URL.
func (e *Extraction) DuplicateCount() int {
	return len(e.AllURLs) - len(e.unique)
}
