// Copyright 2026 The Complexity Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package complexity

import (
	"bytes"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/cockroachdb/errors"
	"github.com/seqcomplexity/complexity/internal/base"
	"github.com/seqcomplexity/complexity/internal/compression"
	"github.com/seqcomplexity/complexity/internal/invariants"
	"github.com/seqcomplexity/complexity/internal/metricsutil"
	"github.com/seqcomplexity/complexity/internal/randvar"
	"golang.org/x/sync/errgroup"
)

// builder computes the statistics a Baseline is made of. It holds no
// mutable state and is safe for concurrent use.
type builder struct {
	symbols       *randvar.Symbols
	newCompressor func() Compressor
	parallelism   int
	// verify is set when the compressor is one of the built-in ones, whose
	// output can be checked against the matching decompressor.
	verify bool
}

// minimumCompressedLength returns the compression floor for sequences of the
// given length: the mean compressed length of every alphabet symbol repeated
// length times. The alphabet is already case-normalized.
func (b *builder) minimumCompressedLength(length int) float64 {
	c := b.newCompressor()
	defer c.Close()

	var seq, buf []byte
	var total int64
	for i := 0; i < b.symbols.Len(); i++ {
		seq = b.symbols.AppendRepeated(seq[:0], i, length)
		var n int
		n, buf = b.compressedLen(c, buf, seq)
		total += int64(n)
	}
	return float64(total) / float64(b.symbols.Len())
}

// noiseDistribution compresses iterations random sequences of the given
// length and returns the sample mean and standard deviation of their
// compressed lengths minus floor, along with a histogram of the raw
// compressed lengths.
//
// Sample i is drawn from randvar.NewSeeded(length, i). Samples are compressed
// in parallel but folded in index order, so the result does not depend on
// the parallelism.
func (b *builder) noiseDistribution(
	length int, floor float64, iterations int,
) (mean, stddev float64, hist *hdrhistogram.Histogram, err error) {
	if iterations < 2 {
		return 0, 0, nil, base.UndefinedStatisticf(
			"noise distribution of length %d needs at least 2 samples, got %d",
			errors.Safe(length), errors.Safe(iterations))
	}

	lengths := make([]int, iterations)
	workers := min(b.parallelism, iterations)
	chunk := (iterations + workers - 1) / workers
	var g errgroup.Group
	for start := 0; start < iterations; start += chunk {
		end := min(start+chunk, iterations)
		g.Go(func() error {
			c := b.newCompressor()
			defer c.Close()
			seq := make([]byte, 0, b.symbols.MaxEncodedLen(length))
			var buf []byte
			for i := start; i < end; i++ {
				rng := randvar.NewSeeded(uint64(length), uint64(i))
				seq = b.symbols.AppendSequence(seq[:0], rng, length)
				lengths[i], buf = b.compressedLen(c, buf, seq)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, 0, nil, err
	}

	var w metricsutil.Welford
	maxLen := 0
	for _, n := range lengths {
		w.Add(float64(n) - floor)
		maxLen = max(maxLen, n)
	}
	hist = hdrhistogram.New(1, int64(max(maxLen, 2)), 3)
	for _, n := range lengths {
		if err := hist.RecordValue(int64(n)); err != nil {
			return 0, 0, nil, errors.Wrapf(err, "recording compressed length %d", errors.Safe(n))
		}
	}
	return w.Mean(), w.SampleStandardDeviation(), hist, nil
}

// build computes the Baseline for sequences of the given length.
func (b *builder) build(length, iterations int) (*Baseline, error) {
	floor := b.minimumCompressedLength(length)
	mean, stddev, hist, err := b.noiseDistribution(length, floor, iterations)
	if err != nil {
		return nil, err
	}
	return makeBaseline(length, floor, mean, stddev, iterations, hist), nil
}

func (b *builder) compressedLen(c Compressor, buf, src []byte) (int, []byte) {
	compressed, setting := c.Compress(buf[:0], src)
	if b.verify && invariants.Sometimes(10) {
		verifyRoundTrip(setting, src, compressed)
	}
	return len(compressed), compressed[:0]
}

func verifyRoundTrip(setting CompressionSetting, src, compressed []byte) {
	d := compression.GetDecompressor(setting.Algorithm)
	defer d.Close()
	decompressed, err := d.Decompress(nil, compressed)
	if err != nil {
		panic(errors.AssertionFailedf("%s: decompressing sample: %v", setting, err))
	}
	if !bytes.Equal(decompressed, src) {
		panic(errors.AssertionFailedf("%s: sample does not round-trip (%d bytes in, %d bytes out)",
			setting, errors.Safe(len(src)), errors.Safe(len(decompressed))))
	}
}
