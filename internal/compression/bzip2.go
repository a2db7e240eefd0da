// Copyright 2026 The Complexity Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package compression

import (
	"bytes"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/dsnet/compress/bzip2"
)

type bzip2Compressor struct {
	level int
	buf   bytes.Buffer
	w     *bzip2.Writer
}

var _ Compressor = (*bzip2Compressor)(nil)

// bzip2CompressorPools holds one pool per level (1-9). A bzip2 writer
// allocates buffers proportional to its block size, so writers are reused.
var bzip2CompressorPools [10]sync.Pool

func getBzip2Compressor(level int) *bzip2Compressor {
	if c, ok := bzip2CompressorPools[level].Get().(*bzip2Compressor); ok {
		return c
	}
	c := &bzip2Compressor{level: level}
	w, err := bzip2.NewWriter(&c.buf, &bzip2.WriterConfig{Level: level})
	if err != nil {
		panic(errors.Wrap(err, "bzip2 writer"))
	}
	c.w = w
	return c
}

func (c *bzip2Compressor) Compress(dst, src []byte) ([]byte, Setting) {
	c.buf.Reset()
	if err := c.w.Reset(&c.buf); err != nil {
		panic(errors.Wrap(err, "bzip2 compression"))
	}
	if _, err := c.w.Write(src); err != nil {
		panic(errors.Wrap(err, "bzip2 compression"))
	}
	if err := c.w.Close(); err != nil {
		panic(errors.Wrap(err, "bzip2 compression"))
	}
	return append(dst[:0], c.buf.Bytes()...), Setting{Algorithm: Bzip2, Level: uint8(c.level)}
}

func (c *bzip2Compressor) Close() {
	bzip2CompressorPools[c.level].Put(c)
}

type bzip2Decompressor struct{}

var _ Decompressor = bzip2Decompressor{}

func (bzip2Decompressor) Decompress(dst, src []byte) ([]byte, error) {
	r, err := bzip2.NewReader(bytes.NewReader(src), nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()
	return readAllInto(dst, r)
}

func (bzip2Decompressor) Close() {}
