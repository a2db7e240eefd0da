// Copyright 2026 The Complexity Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package metricsutil contains running statistics used to summarize noise
// samples.
package metricsutil

import "math"

// Welford maintains running statistics for mean and variance using Welford's
// algorithm. The zero value is ready to use.
type Welford struct {
	count int64
	mean  float64
	m2    float64
}

// Add incorporates a new data point x into the running statistics.
func (w *Welford) Add(x float64) {
	w.count++
	delta := x - w.mean
	w.mean += delta / float64(w.count)
	delta2 := x - w.mean
	w.m2 += delta * delta2
}

// Count returns the number of values that have been added.
func (w *Welford) Count() int64 {
	return w.count
}

// Mean returns the current running mean.
// If no values have been added, returns NaN.
func (w *Welford) Mean() float64 {
	if w.count == 0 {
		return math.NaN()
	}
	return w.mean
}

// Variance returns the population variance (M2/n). Returns NaN if no values.
func (w *Welford) Variance() float64 {
	if w.count == 0 {
		return math.NaN()
	}
	return w.m2 / float64(w.count)
}

// SampleVariance returns the unbiased sample variance (M2/(n-1)). Returns NaN
// if fewer than 2 values.
func (w *Welford) SampleVariance() float64 {
	if w.count < 2 {
		return math.NaN()
	}
	// Rounding can leave a tiny negative M2 for constant inputs.
	return max(w.m2, 0) / float64(w.count-1)
}

// SampleStandardDeviation returns the sample standard deviation, the square
// root of SampleVariance.
func (w *Welford) SampleStandardDeviation() float64 {
	return math.Sqrt(w.SampleVariance())
}
