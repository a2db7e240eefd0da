// Copyright 2026 The Complexity Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

//go:build !cgo

package compression

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/zstd"
)

type zstdCompressor struct {
	level   int
	encoder *zstd.Encoder
}

var _ Compressor = (*zstdCompressor)(nil)

// zstdEncoderPools holds one pool per level since a zstd.Encoder is bound to
// the level it was created with.
var zstdEncoderPools [23]sync.Pool

func getZstdCompressor(level int) *zstdCompressor {
	if z, ok := zstdEncoderPools[level].Get().(*zstdCompressor); ok {
		return z
	}
	encoder, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)),
		zstd.WithEncoderConcurrency(1))
	if err != nil {
		panic(errors.Wrap(err, "zstd encoder"))
	}
	return &zstdCompressor{level: level, encoder: encoder}
}

func (z *zstdCompressor) Compress(dst, src []byte) ([]byte, Setting) {
	return z.encoder.EncodeAll(src, dst[:0]), Setting{Algorithm: Zstd, Level: uint8(z.level)}
}

func (z *zstdCompressor) Close() {
	zstdEncoderPools[z.level].Put(z)
}

type zstdDecompressor struct {
	decoder *zstd.Decoder
}

var _ Decompressor = (*zstdDecompressor)(nil)

var zstdDecompressorPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
		if err != nil {
			panic(errors.Wrap(err, "zstd decoder"))
		}
		return &zstdDecompressor{decoder: decoder}
	},
}

func (z *zstdDecompressor) Decompress(dst, src []byte) ([]byte, error) {
	return z.decoder.DecodeAll(src, dst[:0])
}

func (z *zstdDecompressor) Close() {
	zstdDecompressorPool.Put(z)
}

func getZstdDecompressor() *zstdDecompressor {
	return zstdDecompressorPool.Get().(*zstdDecompressor)
}
