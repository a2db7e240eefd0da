// Copyright 2026 The Complexity Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package complexity

import "github.com/seqcomplexity/complexity/internal/compression"

// CompressionSetting selects a compression algorithm and level.
type CompressionSetting = compression.Setting

// Compressor is the interface used to measure compressed lengths. Only the
// length of the output is observed; implementations must be deterministic.
// A Compressor is used by one goroutine at a time and closed when done.
type Compressor = compression.Compressor

// Compression presets.
var (
	NoCompression        = compression.None
	SnappyCompression    = compression.Snappy
	MinLZFastest         = compression.MinLZFastest
	MinLZBalanced        = compression.MinLZBalanced
	ZstdLevel1           = compression.ZstdLevel1
	ZstdLevel3           = compression.ZstdLevel3
	FlateDefault         = compression.FlateDefault
	FlateBest            = compression.FlateBest
	Bzip2BestCompression = compression.Bzip2Best
)

// CompressionPresets returns every preset CompressionSetting.
func CompressionPresets() []CompressionSetting {
	return append([]CompressionSetting(nil), compression.Presets...)
}

// ParseCompression parses a setting such as "bzip2", "zstd3" or "snappy".
func ParseCompression(s string) (CompressionSetting, error) {
	return compression.ParseSetting(s)
}
