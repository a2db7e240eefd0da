// Copyright 2026 The Complexity Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package alphabet defines the symbol sets from which random sequences are
// drawn. An alphabet is either one of the catalog entries (nucleotide,
// alphabetic, ...) or an explicit collection of symbols, and is resolved once
// into an ordered, duplicate-free list of runes.
package alphabet

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/seqcomplexity/complexity/internal/base"
)

// ErrInvalidAlphabet marks errors returned for alphabet specifications that
// cannot be resolved.
var ErrInvalidAlphabet = base.ErrInvalidAlphabet

// Catalog identifies a predefined alphabet.
type Catalog uint8

const (
	// Nucleotide is the DNA alphabet, ATGC.
	Nucleotide Catalog = iota
	// Alphabetic is the Latin alphabet A-Z.
	Alphabetic
	// Numeric is the decimal digits.
	Numeric
	// Symbolic is the printable ASCII punctuation plus space.
	Symbolic
	// Alphanumeric is Alphabetic followed by Numeric.
	Alphanumeric
	// AlphanumericSymbolic is Alphabetic, Numeric and Symbolic: everything on
	// a US keyboard.
	AlphanumericSymbolic
	numCatalogs
)

var catalogNames = [...]string{
	Nucleotide:           "nucleotide",
	Alphabetic:           "alphabetic",
	Numeric:              "numeric",
	Symbolic:             "symbolic",
	Alphanumeric:         "alphanumeric",
	AlphanumericSymbolic: "alphanumeric-with-symbols",
}

// aliases maps alternative names onto catalog entries.
var aliases = map[string]Catalog{
	"dna":                Nucleotide,
	"alpha":              Alphabetic,
	"symbol":             Symbolic,
	"alphanumericsymbol": AlphanumericSymbolic,
	"keyboard":           AlphanumericSymbolic,
}

const (
	nucleotides = "ATGC"
	letters     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits      = "1234567890"
	symbols     = "~!@#$%^&*()_+{}|:\"<>?`-=[]\\;',./ "
)

func (c Catalog) String() string {
	if c < numCatalogs {
		return catalogNames[c]
	}
	return "unknown"
}

// Spec returns a Spec naming the catalog entry.
func (c Catalog) Spec() Spec {
	return Named(c.String())
}

// Symbols returns the symbols of the catalog entry, in catalog order. When
// caseSensitive is set, alphabets with letters also include the lowercase
// letters, after the uppercase ones.
func (c Catalog) Symbols(caseSensitive bool) []rune {
	var s string
	switch c {
	case Nucleotide:
		s = withLower(nucleotides, caseSensitive)
	case Alphabetic:
		s = withLower(letters, caseSensitive)
	case Numeric:
		s = digits
	case Symbolic:
		s = symbols
	case Alphanumeric:
		s = withLower(letters, caseSensitive) + digits
	case AlphanumericSymbolic:
		s = withLower(letters, caseSensitive) + digits + symbols
	default:
		panic(errors.AssertionFailedf("unknown catalog %d", errors.Safe(uint8(c))))
	}
	return []rune(s)
}

func withLower(s string, caseSensitive bool) string {
	if !caseSensitive {
		return s
	}
	return s + strings.ToLower(s)
}

// Lookup finds the catalog entry with the given name or alias. Names are
// matched case-insensitively.
func Lookup(name string) (Catalog, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c := Catalog(0); c < numCatalogs; c++ {
		if catalogNames[c] == name {
			return c, true
		}
	}
	c, ok := aliases[name]
	return c, ok
}

// Names returns the canonical catalog names.
func Names() []string {
	return append([]string(nil), catalogNames[:]...)
}
