// Copyright 2026 The Complexity Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

//go:build cgo

package compression

import (
	"sync"

	"github.com/DataDog/zstd"
	"github.com/cockroachdb/errors"
)

type zstdCompressor struct {
	level int
	ctx   zstd.Ctx
}

var _ Compressor = (*zstdCompressor)(nil)

var zstdCompressorPool = sync.Pool{
	New: func() any {
		return &zstdCompressor{ctx: zstd.NewCtx()}
	},
}

func (z *zstdCompressor) Compress(dst, src []byte) ([]byte, Setting) {
	bound := zstd.CompressBound(len(src))
	if cap(dst) < bound {
		dst = make([]byte, 0, bound)
	}
	result, err := z.ctx.CompressLevel(dst[:bound], src, z.level)
	if err != nil {
		panic(errors.Wrap(err, "zstd compression"))
	}
	return result, Setting{Algorithm: Zstd, Level: uint8(z.level)}
}

func (z *zstdCompressor) Close() {
	zstdCompressorPool.Put(z)
}

func getZstdCompressor(level int) *zstdCompressor {
	z := zstdCompressorPool.Get().(*zstdCompressor)
	z.level = level
	return z
}

type zstdDecompressor struct {
	ctx zstd.Ctx
}

var _ Decompressor = (*zstdDecompressor)(nil)

func (z *zstdDecompressor) Decompress(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, errors.Errorf("decodeZstd: empty src buffer")
	}
	return z.ctx.Decompress(dst[:0], src)
}

func (z *zstdDecompressor) Close() {
	zstdDecompressorPool.Put(z)
}

var zstdDecompressorPool = sync.Pool{
	New: func() any {
		return &zstdDecompressor{ctx: zstd.NewCtx()}
	},
}

func getZstdDecompressor() *zstdDecompressor {
	return zstdDecompressorPool.Get().(*zstdDecompressor)
}
