// Package document implements the text side of the linktidy pipeline:
// classifying lines as link lines, splitting a document into a preserved
// header and a candidate body, extracting links from the body, and
// reassembling the final document.
//
// Classification is deliberately lenient text sniffing (literal
// "http://" / "https://" prefix and substring checks) rather than strict
// URL grammar. Upgrading it to real parsing would silently change which
// lines count as links on edge-case documents, so the heuristics are
// kept as-is and their known imprecisions documented where they occur.
package document
