// Copyright 2026 The Complexity Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package complexity estimates how random a symbol sequence is by comparing
// its compressed length against a baseline of random sequences of the same
// length drawn from the same alphabet.
//
// For every sequence length an Analyzer builds, once, a Baseline: the mean
// compressed length of the homogeneous sequences (the floor) and the mean and
// standard deviation of the compressed length above that floor of many
// uniformly random sequences. A proband is then reported as a z-score and a
// percentile against the Baseline for its length. Low scores mean the proband
// compresses better than noise, that is, it contains more structure.
package complexity

import (
	"bytes"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"github.com/cockroachdb/crlib/crtime"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/swiss"
	"github.com/seqcomplexity/complexity/alphabet"
	"github.com/seqcomplexity/complexity/internal/compression"
	"github.com/seqcomplexity/complexity/internal/randvar"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Analyzer scores sequences against per-length baselines. Baselines are built
// lazily, the first time a length is queried, and cached for the lifetime of
// the Analyzer. An Analyzer is safe for concurrent use.
type Analyzer struct {
	opts     *Options
	alphabet []rune
	builder  builder

	mu struct {
		sync.Mutex
		baselines swiss.Map[int, *Baseline]
	}
	// inflight deduplicates concurrent builds of the same length.
	inflight singleflight.Group

	metrics struct {
		baselinesBuilt    atomic.Int64
		cacheHits         atomic.Int64
		cacheMisses       atomic.Int64
		samplesCompressed atomic.Int64
		buildNanos        atomic.Int64
		probandsScored    atomic.Int64
	}
}

// Result is the evaluation of a single proband.
type Result struct {
	// Length is the number of symbols in the proband.
	Length int `yaml:"length"`
	// CompressedLength is the compressed size of the case-normalized proband.
	CompressedLength int `yaml:"compressed_length"`
	// AdjustedLength is CompressedLength minus the compression floor.
	AdjustedLength float64 `yaml:"adjusted_length"`
	ZScore         float64 `yaml:"zscore"`
	Percentile     float64 `yaml:"percentile"`
}

// New returns an Analyzer configured by opts. A nil opts uses
// DefaultOptions. The Options are validated and the alphabet resolved here;
// the errors returned wrap ErrInvalidConfiguration or ErrInvalidAlphabet.
func New(opts *Options) (*Analyzer, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	opts = opts.Clone()
	opts.EnsureDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	symbols, err := alphabet.Resolve(opts.Alphabet, opts.CaseSensitive)
	if err != nil {
		return nil, err
	}
	if opts.Iterations < RecommendedIterations {
		opts.Logger.Infof("complexity: %d iterations per baseline is below the recommended %d; results may not reproduce well",
			opts.Iterations, RecommendedIterations)
	}

	a := &Analyzer{
		opts:     opts,
		alphabet: symbols,
	}
	a.builder = builder{
		symbols:       randvar.NewSymbols(symbols),
		newCompressor: opts.NewCompressor,
		parallelism:   opts.Parallelism,
	}
	if a.builder.newCompressor == nil {
		setting := opts.Compression
		a.builder.newCompressor = func() Compressor {
			return compression.GetCompressor(setting)
		}
		a.builder.verify = true
	}
	a.mu.baselines.Init(16)
	return a, nil
}

// Alphabet returns the resolved alphabet, after case folding and removal of
// duplicates.
func (a *Analyzer) Alphabet() []rune {
	return slices.Clone(a.alphabet)
}

// Options returns a copy of the options the Analyzer was configured with,
// with defaults applied.
func (a *Analyzer) Options() *Options {
	return a.opts.Clone()
}

// Score returns the z-score of the proband: the number of standard deviations
// its adjusted compressed length lies from that of random sequences of the
// same length.
func (a *Analyzer) Score(proband string) (float64, error) {
	r, err := a.Evaluate(proband)
	if err != nil {
		return 0, err
	}
	return r.ZScore, nil
}

// Percentile returns the estimated fraction of random sequences of the same
// length whose adjusted compressed length is at most the proband's.
func (a *Analyzer) Percentile(proband string) (float64, error) {
	r, err := a.Evaluate(proband)
	if err != nil {
		return 0, err
	}
	return r.Percentile, nil
}

// Evaluate scores the proband, returning both the z-score and the percentile
// along with the lengths they were derived from.
func (a *Analyzer) Evaluate(proband string) (Result, error) {
	length := utf8.RuneCountInString(proband)
	b, err := a.Baseline(length)
	if err != nil {
		return Result{}, err
	}
	n := a.compressedLen([]byte(proband))
	a.metrics.probandsScored.Add(1)
	return Result{
		Length:           length,
		CompressedLength: n,
		AdjustedLength:   b.AdjustedLength(n),
		ZScore:           b.ZScore(n),
		Percentile:       b.Percentile(n),
	}, nil
}

func (a *Analyzer) compressedLen(seq []byte) int {
	if !a.opts.CaseSensitive {
		seq = bytes.ToUpper(seq)
	}
	c := a.builder.newCompressor()
	defer c.Close()
	n, _ := a.builder.compressedLen(c, nil, seq)
	return n
}

// Baseline returns the Baseline for sequences of the given length, building
// it if necessary. Concurrent callers asking for the same length share a
// single build and observe the same *Baseline.
func (a *Analyzer) Baseline(length int) (*Baseline, error) {
	if length < 0 {
		return nil, errors.Newf("sequence length %d must be >= 0", errors.Safe(length))
	}
	if b, ok := a.lookup(length); ok {
		a.metrics.cacheHits.Add(1)
		return b, nil
	}
	a.metrics.cacheMisses.Add(1)

	v, err, _ := a.inflight.Do(strconv.Itoa(length), func() (any, error) {
		// Another caller may have finished building between the lookup above
		// and joining the flight.
		if b, ok := a.lookup(length); ok {
			return b, nil
		}
		b, err := a.buildBaseline(length)
		if err != nil {
			return nil, err
		}
		a.mu.Lock()
		a.mu.baselines.Put(length, b)
		a.mu.Unlock()
		return b, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Baseline), nil
}

func (a *Analyzer) lookup(length int) (*Baseline, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mu.baselines.Get(length)
}

func (a *Analyzer) buildBaseline(length int) (*Baseline, error) {
	start := crtime.NowMono()
	b, err := a.builder.build(length, a.opts.Iterations)
	if err != nil {
		return nil, errors.Wrapf(err, "building baseline for length %d", errors.Safe(length))
	}
	elapsed := start.Elapsed()

	a.metrics.baselinesBuilt.Add(1)
	a.metrics.samplesCompressed.Add(int64(b.Samples))
	a.metrics.buildNanos.Add(int64(elapsed))
	if a.opts.BuildLatency != nil {
		a.opts.BuildLatency.Observe(elapsed.Seconds())
	}
	a.opts.Logger.Infof("complexity: built baseline in %s: %s", elapsed, b)
	return b, nil
}

// Warm builds the baselines for the given lengths concurrently, so later
// queries for them do not pay for the build.
func (a *Analyzer) Warm(lengths ...int) error {
	var g errgroup.Group
	for _, length := range lengths {
		g.Go(func() error {
			_, err := a.Baseline(length)
			return err
		})
	}
	return g.Wait()
}

// Lengths returns the lengths for which a Baseline has been built, in
// increasing order.
func (a *Analyzer) Lengths() []int {
	a.mu.Lock()
	lengths := make([]int, 0, a.mu.baselines.Len())
	a.mu.baselines.All(func(length int, _ *Baseline) bool {
		lengths = append(lengths, length)
		return true
	})
	a.mu.Unlock()
	slices.Sort(lengths)
	return lengths
}

// MinimumCompressedLength returns the compression floor for sequences of the
// given length: the mean compressed length of each alphabet symbol repeated
// length times. It does not consult or populate the cache.
func (a *Analyzer) MinimumCompressedLength(length int) (float64, error) {
	if length < 0 {
		return 0, errors.Newf("sequence length %d must be >= 0", errors.Safe(length))
	}
	return a.builder.minimumCompressedLength(length), nil
}

// NoiseDistribution compresses iterations random sequences of the given
// length and returns the sample mean and standard deviation of their
// compressed lengths minus floor. Sample i is drawn from a PCG generator
// seeded with (length, i), so the result is reproducible. It returns
// ErrUndefinedStatistic if iterations is below 2. It does not consult or
// populate the cache.
func (a *Analyzer) NoiseDistribution(
	length int, floor float64, iterations int,
) (mean, stddev float64, err error) {
	if length < 0 {
		return 0, 0, errors.Newf("sequence length %d must be >= 0", errors.Safe(length))
	}
	mean, stddev, _, err = a.builder.noiseDistribution(length, floor, iterations)
	if err == nil {
		a.metrics.samplesCompressed.Add(int64(iterations))
	}
	return mean, stddev, err
}
