// Package order implements the two ordering strategies for canonical
// link lines: flat case-insensitive alphabetical ordering, and
// domain-grouped ordering where links cluster under their registrable
// domain before being alphabetized within each group.
package order
