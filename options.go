// Copyright 2026 The Complexity Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package complexity

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/seqcomplexity/complexity/alphabet"
	"github.com/seqcomplexity/complexity/internal/base"
)

const (
	// DefaultIterations is the number of noise samples drawn per baseline by
	// DefaultOptions.
	DefaultIterations = 1000
	// MinIterations is the smallest accepted number of noise samples.
	MinIterations = 10
	// RecommendedIterations is the number of noise samples below which New
	// logs a warning: baselines built from fewer samples reproduce poorly.
	RecommendedIterations = 100
)

// Options holds the optional parameters for configuring an Analyzer. Options
// are copied by New; later modifications have no effect on the Analyzer.
type Options struct {
	// Alphabet is the symbol set random sequences are drawn from. The zero
	// value selects alphabet.Nucleotide.
	Alphabet alphabet.Spec

	// CaseSensitive disables case folding. By default probands and alphabets
	// are upper-cased before they are measured, so "acgt" and "ACGT" score
	// the same.
	CaseSensitive bool

	// Iterations is the number of random sequences compressed to build each
	// baseline. Unlike the other fields it has no implicit default: it must
	// be at least MinIterations. DefaultOptions sets it to DefaultIterations.
	Iterations int

	// Compression is the built-in compressor used to measure sequences. The
	// zero value selects Bzip2BestCompression. Ignored if NewCompressor is set.
	Compression CompressionSetting

	// NewCompressor, if set, supplies the compressors used to measure
	// sequences instead of Compression. It is called once per goroutine that
	// measures sequences, and each returned Compressor is closed after use.
	NewCompressor func() Compressor

	// Parallelism bounds the number of goroutines compressing noise samples
	// for one baseline. The default is runtime.GOMAXPROCS(0). Results do not
	// depend on it.
	Parallelism int

	// Logger used to write log messages.
	//
	// The default logger uses the Go standard library log package.
	Logger Logger

	// BuildLatency, if set, observes the duration of every baseline build in
	// seconds.
	BuildLatency prometheus.Histogram
}

// DefaultOptions returns Options with every field set to its default,
// including Iterations.
func DefaultOptions() *Options {
	o := &Options{Iterations: DefaultIterations}
	o.EnsureDefaults()
	return o
}

// EnsureDefaults ensures that the default values for all options are set if a
// valid value was not already specified. Iterations is left untouched.
func (o *Options) EnsureDefaults() {
	if o.Alphabet.IsZero() {
		o.Alphabet = alphabet.Nucleotide.Spec()
	}
	if o.Compression == (CompressionSetting{}) {
		o.Compression = Bzip2BestCompression
	}
	if o.Parallelism == 0 {
		o.Parallelism = runtime.GOMAXPROCS(0)
	}
	if o.Logger == nil {
		o.Logger = base.DefaultLogger{}
	}
}

// Clone creates a shallow-copy of the supplied options.
func (o *Options) Clone() *Options {
	n := &Options{}
	if o != nil {
		*n = *o
	}
	return n
}

// Validate verifies that the options are mutually consistent. The alphabet is
// checked separately, when it is resolved by New.
func (o *Options) Validate() error {
	// Note that we can presume Options.EnsureDefaults has been called, so there
	// is no need to check for zero values.

	var buf strings.Builder
	if o.Iterations < 1 {
		fmt.Fprintf(&buf, "Iterations (%d) must be a positive integer\n", o.Iterations)
	} else if o.Iterations < MinIterations {
		fmt.Fprintf(&buf, "Iterations (%d) must be >= %d\n", o.Iterations, MinIterations)
	}
	if o.Parallelism < 1 {
		fmt.Fprintf(&buf, "Parallelism (%d) must be >= 1\n", o.Parallelism)
	}
	if o.NewCompressor == nil {
		if err := o.Compression.Validate(); err != nil {
			fmt.Fprintf(&buf, "Compression (%s) is invalid: %v\n", o.Compression, err)
		}
	}
	if buf.Len() == 0 {
		return nil
	}
	return base.InvalidConfigurationf("invalid options:\n%s", buf.String())
}
