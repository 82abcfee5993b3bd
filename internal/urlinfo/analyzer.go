package urlinfo

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrMalformedURL is returned when a raw URL string fails structural
// parsing. Callers record the original string as a broken link and
// exclude it from the protocol, domain, and TLD tables; the failure is
// data, never a pipeline error.
var ErrMalformedURL = errors.New("malformed URL")

// UnknownTLD is the marker used when a host contains no dot.
const UnknownTLD = "unknown"

// ParsedURL is the structural breakdown of a well-formed URL.
type ParsedURL struct {
	// Scheme is the URL scheme, e.g. "https".
	Scheme string

	// Host is the lowercased host with any leading "www." stripped.
	Host string

	// TLD is the substring of Host after the final dot, or UnknownTLD
	// when Host has no dot.
	TLD string
}

// Parse analyzes a raw URL string. On success it returns the scheme,
// normalized host, and derived TLD. On failure it returns ErrMalformedURL
// (wrapped with the parse error when there is one) and no partial result.
//
// net/url accepts relative references that the rest of the pipeline
// cannot use, so a parse only counts as successful when both scheme and
// host are present. Prose captured by the classifier's known
// imprecisions ("* see http://x") therefore lands in broken links
// instead of contributing an empty host to the domain table.
func Parse(rawURL string) (ParsedURL, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ParsedURL{}, fmt.Errorf("%w: %v", ErrMalformedURL, err)
	}
	if u.Scheme == "" || u.Hostname() == "" {
		return ParsedURL{}, ErrMalformedURL
	}

	host := normalizeHost(u.Hostname())

	return ParsedURL{
		Scheme: u.Scheme,
		Host:   host,
		TLD:    deriveTLD(host),
	}, nil
}

// GroupKey returns the key the ordering engine groups a URL under. For
// well-formed URLs it is the registrable domain: the last two labels of
// the normalized host, so sub.a.com and www.a.com both group under
// a.com. For malformed URLs it falls back to a lenient extraction of
// the authority after "scheme://"; if even that finds nothing, the full
// raw URL string is the key, which keeps broken links participating in
// grouped ordering.
func GroupKey(rawURL string) string {
	if parsed, err := Parse(rawURL); err == nil {
		return registrableDomain(parsed.Host)
	}

	if authority, ok := lenientAuthority(rawURL); ok {
		return registrableDomain(normalizeHost(authority))
	}

	return rawURL
}

// registrableDomain reduces a host to its last two dot-separated
// labels. Hosts with fewer labels are returned whole.
func registrableDomain(host string) string {
	idx := strings.LastIndex(host, ".")
	if idx <= 0 {
		return host
	}
	idx = strings.LastIndex(host[:idx], ".")
	if idx < 0 {
		return host
	}
	return host[idx+1:]
}

// lenientAuthority extracts everything between "://" and the next "/",
// whitespace, or end of string. It reports false when the marker is
// absent or the authority is empty.
func lenientAuthority(rawURL string) (string, bool) {
	idx := strings.Index(rawURL, "://")
	if idx < 0 {
		return "", false
	}

	rest := rawURL[idx+len("://"):]
	end := strings.IndexFunc(rest, func(r rune) bool {
		return r == '/' || r == ' ' || r == '\t'
	})
	if end >= 0 {
		rest = rest[:end]
	}

	if rest == "" {
		return "", false
	}
	return rest, true
}

// normalizeHost lowercases a host and strips a single leading "www.".
func normalizeHost(host string) string {
	host = strings.ToLower(host)
	return strings.TrimPrefix(host, "www.")
}

// deriveTLD returns the substring after the last dot in host, or
// UnknownTLD when host has no dot.
func deriveTLD(host string) string {
	idx := strings.LastIndex(host, ".")
	if idx < 0 || idx == len(host)-1 {
		return UnknownTLD
	}
	return host[idx+1:]
}
