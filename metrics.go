// Copyright 2026 The Complexity Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package complexity

import (
	"time"

	"github.com/cockroachdb/redact"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds counters describing the work an Analyzer has done.
type Metrics struct {
	// BaselinesBuilt is the number of baselines built and cached.
	BaselinesBuilt int64
	// CacheHits is the number of baseline lookups answered from the cache.
	CacheHits int64
	// CacheMisses is the number of baseline lookups that had to build, or
	// wait for a concurrent build of, the baseline.
	CacheMisses int64
	// SamplesCompressed is the number of random sequences compressed.
	SamplesCompressed int64
	// ProbandsScored is the number of probands evaluated.
	ProbandsScored int64
	// BuildDuration is the cumulative time spent building baselines.
	BuildDuration time.Duration
}

// Metrics returns a snapshot of the Analyzer's counters.
func (a *Analyzer) Metrics() Metrics {
	return Metrics{
		BaselinesBuilt:    a.metrics.baselinesBuilt.Load(),
		CacheHits:         a.metrics.cacheHits.Load(),
		CacheMisses:       a.metrics.cacheMisses.Load(),
		SamplesCompressed: a.metrics.samplesCompressed.Load(),
		ProbandsScored:    a.metrics.probandsScored.Load(),
		BuildDuration:     time.Duration(a.metrics.buildNanos.Load()),
	}
}

// String pretty-prints the metrics.
func (m Metrics) String() string {
	return redact.StringWithoutMarkers(m)
}

var _ redact.SafeFormatter = Metrics{}

// SafeFormat implements redact.SafeFormatter.
func (m Metrics) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("baselines: %d built in %s, %d samples compressed\n",
		redact.Safe(m.BaselinesBuilt), redact.Safe(m.BuildDuration.Round(time.Millisecond)),
		redact.Safe(m.SamplesCompressed))
	w.Printf("cache: %d hits, %d misses\n", redact.Safe(m.CacheHits), redact.Safe(m.CacheMisses))
	w.Printf("probands: %d scored\n", redact.Safe(m.ProbandsScored))
}

var (
	baselinesBuiltDesc = prometheus.NewDesc(
		"complexity_baselines_built_total", "Number of baselines built.", nil, nil)
	cacheHitsDesc = prometheus.NewDesc(
		"complexity_baseline_cache_hits_total", "Number of baseline lookups served from the cache.", nil, nil)
	cacheMissesDesc = prometheus.NewDesc(
		"complexity_baseline_cache_misses_total", "Number of baseline lookups that required a build.", nil, nil)
	samplesCompressedDesc = prometheus.NewDesc(
		"complexity_samples_compressed_total", "Number of random sequences compressed.", nil, nil)
	probandsScoredDesc = prometheus.NewDesc(
		"complexity_probands_scored_total", "Number of probands evaluated.", nil, nil)
	buildSecondsDesc = prometheus.NewDesc(
		"complexity_baseline_build_seconds_total", "Cumulative time spent building baselines.", nil, nil)
)

// Collector returns a prometheus.Collector exporting the Analyzer's Metrics.
func (a *Analyzer) Collector() prometheus.Collector {
	return collector{a: a}
}

type collector struct {
	a *Analyzer
}

var _ prometheus.Collector = collector{}

// Describe implements prometheus.Collector.
func (c collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- baselinesBuiltDesc
	ch <- cacheHitsDesc
	ch <- cacheMissesDesc
	ch <- samplesCompressedDesc
	ch <- probandsScoredDesc
	ch <- buildSecondsDesc
}

// Collect implements prometheus.Collector.
func (c collector) Collect(ch chan<- prometheus.Metric) {
	m := c.a.Metrics()
	counter := func(desc *prometheus.Desc, v float64) {
		ch <- prometheus.MustNewConstMetric(desc, prometheus.CounterValue, v)
	}
	counter(baselinesBuiltDesc, float64(m.BaselinesBuilt))
	counter(cacheHitsDesc, float64(m.CacheHits))
	counter(cacheMissesDesc, float64(m.CacheMisses))
	counter(samplesCompressedDesc, float64(m.SamplesCompressed))
	counter(probandsScoredDesc, float64(m.ProbandsScored))
	counter(buildSecondsDesc, m.BuildDuration.Seconds())
}
