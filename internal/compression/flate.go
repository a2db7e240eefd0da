// Copyright 2026 The Complexity Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package compression

import (
	"bytes"
	"io"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/flate"
)

type flateCompressor struct {
	level int
	buf   bytes.Buffer
	w     *flate.Writer
}

var _ Compressor = (*flateCompressor)(nil)

// flateCompressorPools holds one pool per level (1-9).
var flateCompressorPools [10]sync.Pool

func getFlateCompressor(level int) *flateCompressor {
	if c, ok := flateCompressorPools[level].Get().(*flateCompressor); ok {
		return c
	}
	c := &flateCompressor{level: level}
	w, err := flate.NewWriter(&c.buf, level)
	if err != nil {
		panic(errors.Wrap(err, "flate writer"))
	}
	c.w = w
	return c
}

func (c *flateCompressor) Compress(dst, src []byte) ([]byte, Setting) {
	c.buf.Reset()
	c.w.Reset(&c.buf)
	if _, err := c.w.Write(src); err != nil {
		panic(errors.Wrap(err, "flate compression"))
	}
	if err := c.w.Close(); err != nil {
		panic(errors.Wrap(err, "flate compression"))
	}
	return append(dst[:0], c.buf.Bytes()...), Setting{Algorithm: Flate, Level: uint8(c.level)}
}

func (c *flateCompressor) Close() {
	flateCompressorPools[c.level].Put(c)
}

type flateDecompressor struct{}

var _ Decompressor = flateDecompressor{}

func (flateDecompressor) Decompress(dst, src []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(src))
	defer func() { _ = r.Close() }()
	return readAllInto(dst, r)
}

func (flateDecompressor) Close() {}

// readAllInto reads r to EOF, appending to dst[:0].
func readAllInto(dst []byte, r io.Reader) ([]byte, error) {
	buf := bytes.NewBuffer(dst[:0])
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
