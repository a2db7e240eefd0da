// Copyright 2026 The Complexity Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package randvar provides the seeded random sources used to draw noise
// samples.
package randvar

import "math/rand/v2"

// NewRand creates a new random number generator with a random seed.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(0, rand.Uint64()))
}

// NewSeeded creates a PCG generator for the given seed and stream. Generators
// with the same (seed, stream) produce the same sequence on every platform and
// every run; distinct streams for one seed are independent.
func NewSeeded(seed, stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, stream))
}

func ensureRand(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return NewRand()
}
