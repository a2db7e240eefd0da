// Copyright 2026 The Complexity Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package compression

import (
	"github.com/cockroachdb/errors"
	"github.com/minio/minlz"
)

const (
	minlzLevelFastest  = uint8(minlz.LevelFastest)
	minlzLevelBalanced = uint8(minlz.LevelBalanced)
	minlzLevelSmallest = uint8(minlz.LevelSmallest)
)

type minlzCompressor struct {
	level int
}

var _ Compressor = (*minlzCompressor)(nil)

func (c *minlzCompressor) Compress(dst, src []byte) ([]byte, Setting) {
	// MinLZ cannot encode blocks greater than 8MB. Fall back to Snappy in those
	// cases. Note that MinLZ can decode the Snappy compressed block.
	if len(src) > minlz.MaxBlockSize {
		compressed, _ := (snappyCompressor{}).Compress(dst, src)
		return compressed, Setting{Algorithm: MinLZ, Level: uint8(c.level)}
	}

	compressed, err := minlz.Encode(dst[:0], src, c.level)
	if err != nil {
		panic(errors.Wrap(err, "minlz compression"))
	}
	return compressed, Setting{Algorithm: MinLZ, Level: uint8(c.level)}
}

func (c *minlzCompressor) Close() {}

var minlzCompressors = [...]*minlzCompressor{
	minlzLevelFastest:  {level: minlz.LevelFastest},
	minlzLevelBalanced: {level: minlz.LevelBalanced},
	minlzLevelSmallest: {level: minlz.LevelSmallest},
}

func getMinlzCompressor(level int) Compressor {
	if level < int(minlzLevelFastest) || level > int(minlzLevelSmallest) {
		panic(errors.AssertionFailedf("unexpected MinLZ level %d", level))
	}
	return minlzCompressors[level]
}

type minlzDecompressor struct{}

var _ Decompressor = minlzDecompressor{}

func (minlzDecompressor) Decompress(dst, src []byte) ([]byte, error) {
	n, err := minlz.DecodedLen(src)
	if err != nil {
		return nil, err
	}
	return minlz.Decode(ensureLen(dst, n), src)
}

func (minlzDecompressor) Close() {}
