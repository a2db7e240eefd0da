// Copyright 2026 The Complexity Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package randvar

import (
	"math/rand/v2"
	"unicode/utf8"
)

// Symbols draws sequences from a fixed set of symbols, uniformly and with
// replacement. Symbols are stored UTF-8 encoded so that generated sequences
// can be handed to a compressor directly.
type Symbols struct {
	encoded [][]byte
	maxLen  int
}

// NewSymbols returns a sampler over the given symbols, which must be
// non-empty. Order matters: it determines which symbol each draw maps to.
func NewSymbols(symbols []rune) *Symbols {
	s := &Symbols{encoded: make([][]byte, len(symbols))}
	for i, r := range symbols {
		s.encoded[i] = utf8.AppendRune(nil, r)
		s.maxLen = max(s.maxLen, len(s.encoded[i]))
	}
	return s
}

// Len returns the number of symbols.
func (s *Symbols) Len() int {
	return len(s.encoded)
}

// MaxEncodedLen returns an upper bound on the number of bytes needed to
// encode a sequence of n symbols.
func (s *Symbols) MaxEncodedLen(n int) int {
	return n * s.maxLen
}

// AppendRepeated appends the i-th symbol n times to dst.
func (s *Symbols) AppendRepeated(dst []byte, i, n int) []byte {
	for range n {
		dst = append(dst, s.encoded[i]...)
	}
	return dst
}

// AppendSequence appends n symbols drawn uniformly from rng to dst. A nil rng
// uses a randomly seeded generator.
func (s *Symbols) AppendSequence(dst []byte, rng *rand.Rand, n int) []byte {
	rng = ensureRand(rng)
	for range n {
		dst = append(dst, s.encoded[rng.IntN(len(s.encoded))]...)
	}
	return dst
}
