// Copyright 2026 The Complexity Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package alphabet

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/seqcomplexity/complexity/internal/base"
)

type specKind uint8

const (
	unsetSpec specKind = iota
	namedSpec
	symbolsSpec
)

// Spec specifies an alphabet either by catalog name or as an explicit
// collection of symbols. The zero value is unset; callers decide what an
// unset Spec defaults to.
type Spec struct {
	kind    specKind
	name    string
	symbols []rune
}

// Named returns a Spec referring to a catalog entry by name or alias (see
// Lookup). The name is checked by Resolve.
func Named(name string) Spec {
	return Spec{kind: namedSpec, name: name}
}

// Symbols returns a Spec for an explicit collection of symbols. Duplicates
// are removed by Resolve, keeping the first occurrence.
func Symbols(symbols ...rune) Spec {
	return Spec{kind: symbolsSpec, symbols: append([]rune(nil), symbols...)}
}

// FromString returns a Spec whose symbols are the runes of s.
func FromString(s string) Spec {
	return Spec{kind: symbolsSpec, symbols: []rune(s)}
}

// FromValue converts a dynamically typed value, as decoded from a
// configuration file, into a Spec. A string names a catalog entry; a slice of
// runes, bytes or single-character strings lists symbols. Any other type is
// rejected with an error marked as ErrInvalidAlphabet.
func FromValue(v any) (Spec, error) {
	switch v := v.(type) {
	case Spec:
		return v, nil
	case Catalog:
		return v.Spec(), nil
	case string:
		return Named(v), nil
	case []rune:
		return Symbols(v...), nil
	case []byte:
		return FromString(string(v)), nil
	case []string:
		return symbolsFromStrings(v)
	case []any:
		strs := make([]string, len(v))
		for i := range v {
			s, ok := v[i].(string)
			if !ok {
				return Spec{}, base.InvalidAlphabetf("unsupported alphabet symbol type %T", v[i])
			}
			strs[i] = s
		}
		return symbolsFromStrings(strs)
	default:
		return Spec{}, base.InvalidAlphabetf("unsupported alphabet type %T", v)
	}
}

func symbolsFromStrings(strs []string) (Spec, error) {
	symbols := make([]rune, len(strs))
	for i, s := range strs {
		r, size := utf8.DecodeRuneInString(s)
		if size == 0 || size != len(s) {
			return Spec{}, base.InvalidAlphabetf("alphabet symbol %q is not a single character", s)
		}
		symbols[i] = r
	}
	return Symbols(symbols...), nil
}

// IsZero returns true if the Spec is unset.
func (s Spec) IsZero() bool {
	return s.kind == unsetSpec
}

// String implements fmt.Stringer.
func (s Spec) String() string {
	switch s.kind {
	case namedSpec:
		return s.name
	case symbolsSpec:
		return fmt.Sprintf("%q", string(s.symbols))
	default:
		return "unset"
	}
}

// Resolve returns the ordered, duplicate-free symbols of the alphabet. Unless
// caseSensitive is set, explicit symbols are upper-cased before duplicates
// are removed. Resolve returns an error marked as ErrInvalidAlphabet if the
// Spec is unset, names an unknown catalog entry, or has no symbols.
func Resolve(s Spec, caseSensitive bool) ([]rune, error) {
	switch s.kind {
	case namedSpec:
		if strings.TrimSpace(s.name) == "" {
			return nil, base.InvalidAlphabetf("alphabet name is empty")
		}
		c, ok := Lookup(s.name)
		if !ok {
			return nil, base.InvalidAlphabetf("unknown alphabet %q (expected one of %s)",
				s.name, strings.Join(Names(), ", "))
		}
		return c.Symbols(caseSensitive), nil
	case symbolsSpec:
		if len(s.symbols) == 0 {
			return nil, base.InvalidAlphabetf("alphabet has no symbols")
		}
		return dedup(s.symbols, caseSensitive), nil
	default:
		return nil, base.InvalidAlphabetf("alphabet is unset")
	}
}

func dedup(symbols []rune, caseSensitive bool) []rune {
	seen := make(map[rune]struct{}, len(symbols))
	result := make([]rune, 0, len(symbols))
	for _, r := range symbols {
		if !caseSensitive {
			r = unicode.ToUpper(r)
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		result = append(result, r)
	}
	return result
}
