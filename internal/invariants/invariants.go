// Copyright 2026 The Complexity Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package invariants exposes build-tag controlled checks. Building with the
// "invariants" or "race" tags turns on expensive assertions, such as verifying
// that compressed samples round-trip through the decompressor.
package invariants

import "math/rand/v2"

// Sometimes returns true percent% of the time if invariants are Enabled (i.e.
// we were built with the "invariants" or "race" build tags). Otherwise, always
// returns false.
func Sometimes(percent int) bool {
	return Enabled && rand.Uint32N(100) < uint32(percent)
}
