// Package bib defines the bibliographic data model shared across the
// formatting engine: person names, entries, roles, and entry types.
//
// Entries are constructed once by an upstream parser (see pkg/source) and
// treated as immutable by everything downstream. The engine never mutates
// an Entry; rendered output is derived fresh on every pass.
package bib
