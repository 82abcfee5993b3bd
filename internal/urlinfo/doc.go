// Package urlinfo provides structural analysis of raw URL strings:
// scheme and host extraction, top-level domain derivation, and
// malformed-URL detection. It also supplies the lenient host fallback
// the ordering engine uses to pick grouping keys for URLs that fail
// strict parsing.
package urlinfo
