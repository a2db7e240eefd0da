// Copyright 2026 The Complexity Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package compression

import "github.com/golang/snappy"

type snappyCompressor struct{}

var _ Compressor = snappyCompressor{}

func (snappyCompressor) Compress(dst, src []byte) ([]byte, Setting) {
	dst = dst[:cap(dst):cap(dst)]
	return snappy.Encode(dst, src), Snappy
}

func (snappyCompressor) Close() {}

type snappyDecompressor struct{}

var _ Decompressor = snappyDecompressor{}

func (snappyDecompressor) Decompress(dst, src []byte) ([]byte, error) {
	n, err := snappy.DecodedLen(src)
	if err != nil {
		return nil, err
	}
	return snappy.Decode(ensureLen(dst, n), src)
}

func (snappyDecompressor) Close() {}

func ensureLen(b []byte, n int) []byte {
	if cap(b) < n {
		return make([]byte, n)
	}
	return b[:n]
}
