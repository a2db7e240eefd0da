// Copyright 2026 The Complexity Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package complexity

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, families []*dto.MetricFamily, name string) float64 {
	t.Helper()
	for _, mf := range families {
		if mf.GetName() == name {
			require.Len(t, mf.GetMetric(), 1)
			return mf.GetMetric()[0].GetCounter().GetValue()
		}
	}
	t.Fatalf("metric %s not found", name)
	return 0
}

func TestCollector(t *testing.T) {
	opts := testOptions()
	opts.BuildLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "complexity_baseline_build_duration_seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
	})
	a := newTestAnalyzer(t, opts)

	reg := prometheus.NewPedanticRegistry()
	reg.MustRegister(a.Collector())
	require.Equal(t, 6, testutil.CollectAndCount(a.Collector()))

	for _, proband := range []string{"ACGT", "ACGTACGT", "TTTT"} {
		_, err := a.Score(proband)
		require.NoError(t, err)
	}

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Equal(t, 2.0, counterValue(t, families, "complexity_baselines_built_total"))
	require.Equal(t, 1.0, counterValue(t, families, "complexity_baseline_cache_hits_total"))
	require.Equal(t, 2.0, counterValue(t, families, "complexity_baseline_cache_misses_total"))
	require.Equal(t, 400.0, counterValue(t, families, "complexity_samples_compressed_total"))
	require.Equal(t, 3.0, counterValue(t, families, "complexity_probands_scored_total"))
	require.Equal(t, a.Metrics().BuildDuration.Seconds(),
		counterValue(t, families, "complexity_baseline_build_seconds_total"))

	var m dto.Metric
	require.NoError(t, opts.BuildLatency.Write(&m))
	require.EqualValues(t, 2, m.GetHistogram().GetSampleCount())
}

func TestMetricsString(t *testing.T) {
	m := Metrics{
		BaselinesBuilt:    2,
		CacheHits:         5,
		CacheMisses:       2,
		SamplesCompressed: 2000,
		ProbandsScored:    7,
		BuildDuration:     1234567 * time.Microsecond,
	}
	require.Equal(t, strings.TrimSpace(`
baselines: 2 built in 1.235s, 2000 samples compressed
cache: 5 hits, 2 misses
probands: 7 scored
`)+"\n", m.String())
}
