// Copyright 2026 The Complexity Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package complexity

import (
	"math"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"gonum.org/v1/gonum/stat/distuv"
)

// Baseline summarizes how well random sequences of one length compress. It is
// immutable once built.
//
// The compressed length of a sequence is split into a floor, the mean
// compressed length of the homogeneous sequences of that length (one per
// alphabet symbol), and the adjusted length above the floor. Average and
// StandardDeviation describe the adjusted lengths of random sequences, which
// are modelled as normally distributed.
type Baseline struct {
	// Length is the number of symbols in the sequences the baseline describes.
	Length int `yaml:"length"`
	// AverageMinimumCompressedLength is the compression floor: the mean, over
	// all alphabet symbols, of the compressed length of that symbol repeated
	// Length times.
	AverageMinimumCompressedLength float64 `yaml:"floor"`
	// Average is the sample mean of the adjusted lengths of random sequences.
	Average float64 `yaml:"average"`
	// StandardDeviation is the unbiased sample standard deviation of the
	// adjusted lengths of random sequences.
	StandardDeviation float64 `yaml:"stddev"`
	// Samples is the number of random sequences the baseline was built from.
	// Zero for baselines constructed with NewBaseline.
	Samples int `yaml:"samples"`

	dist distuv.Normal
	// hist holds the raw compressed lengths of the samples. Nil for baselines
	// constructed with NewBaseline.
	hist *hdrhistogram.Histogram
}

// NewBaseline constructs a Baseline from precomputed statistics, for example
// ones recorded from an earlier run.
func NewBaseline(length int, floor, average, stddev float64) (*Baseline, error) {
	switch {
	case length < 0:
		return nil, errors.Newf("baseline length %d must be >= 0", length)
	case math.IsNaN(floor) || math.IsInf(floor, 0) || math.IsNaN(average) || math.IsInf(average, 0):
		return nil, errors.Newf("baseline floor %v and average %v must be finite", floor, average)
	case math.IsNaN(stddev) || math.IsInf(stddev, 0) || stddev < 0:
		return nil, errors.Newf("baseline standard deviation %v must be finite and >= 0", stddev)
	}
	return makeBaseline(length, floor, average, stddev, 0, nil), nil
}

func makeBaseline(
	length int, floor, average, stddev float64, samples int, hist *hdrhistogram.Histogram,
) *Baseline {
	return &Baseline{
		Length:                         length,
		AverageMinimumCompressedLength: floor,
		Average:                        average,
		StandardDeviation:              stddev,
		Samples:                        samples,
		dist:                           distuv.Normal{Mu: average, Sigma: stddev},
		hist:                           hist,
	}
}

// AdjustedLength returns the compressed length minus the compression floor.
func (b *Baseline) AdjustedLength(compressedLen int) float64 {
	return float64(compressedLen) - b.AverageMinimumCompressedLength
}

// ZScore returns the number of standard deviations the adjusted length of a
// proband lies from the mean adjusted length of random sequences. Positive
// scores mean the proband compressed worse than typical noise; negative
// scores mean it is more structured.
//
// If every sample compressed to the same length (StandardDeviation is 0),
// ZScore returns 0 for that length and ±Inf for any other.
func (b *Baseline) ZScore(compressedLen int) float64 {
	deviation := b.AdjustedLength(compressedLen) - b.Average
	if b.StandardDeviation == 0 {
		if deviation == 0 {
			return 0
		}
		return math.Inf(int(math.Copysign(1, deviation)))
	}
	return deviation / b.StandardDeviation
}

// Percentile returns the probability, under the normal model of the
// baseline, that a random sequence has an adjusted length at most the
// proband's. The result is not clamped away from 0 or 1.
//
// If StandardDeviation is 0 the model is a step at Average.
func (b *Baseline) Percentile(compressedLen int) float64 {
	x := b.AdjustedLength(compressedLen)
	if b.StandardDeviation == 0 {
		if x < b.Average {
			return 0
		}
		return 1
	}
	return b.dist.CDF(x)
}

// CompressedLengthAtQuantile returns the empirical compressed length of the
// random samples at quantile q (0 to 100). It returns false for baselines that
// were not built from samples.
func (b *Baseline) CompressedLengthAtQuantile(q float64) (int64, bool) {
	if b.hist == nil {
		return 0, false
	}
	return b.hist.ValueAtQuantile(q), true
}

// LengthCount is the number of random samples that compressed to Length
// bytes.
type LengthCount struct {
	Length int64
	Count  int64
}

// SampleLengths returns the distribution of the compressed lengths of the
// random samples, in increasing order of length, omitting empty lengths.
func (b *Baseline) SampleLengths() []LengthCount {
	if b.hist == nil {
		return nil
	}
	var result []LengthCount
	for _, bar := range b.hist.Distribution() {
		if bar.Count == 0 {
			continue
		}
		result = append(result, LengthCount{Length: bar.From, Count: bar.Count})
	}
	return result
}

// String implements fmt.Stringer.
func (b *Baseline) String() string {
	return redact.StringWithoutMarkers(b)
}

// SafeFormat implements redact.SafeFormatter.
func (b *Baseline) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("length %d: floor %.2f, noise %.2f ± %.2f",
		redact.Safe(b.Length), redact.Safe(b.AverageMinimumCompressedLength),
		redact.Safe(b.Average), redact.Safe(b.StandardDeviation))
	if b.Samples > 0 {
		w.Printf(" (%d samples)", redact.Safe(b.Samples))
	}
}
