// Copyright 2026 The Complexity Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/seqcomplexity/complexity"
	"github.com/seqcomplexity/complexity/alphabet"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestAnalyzerOptions(t *testing.T) {
	defer viper.Reset()

	viper.Reset()
	opts, err := analyzerOptions(1234)
	require.NoError(t, err)
	require.Equal(t, 1234, opts.Iterations)
	require.True(t, opts.Alphabet.IsZero())
	require.Equal(t, complexity.CompressionSetting{}, opts.Compression)

	viper.Reset()
	viper.Set(keyAlphabet, []any{"a", "c", "g", "u"})
	viper.Set(keyIterations, 50)
	viper.Set(keyCompression, "zstd1")
	viper.Set(keyCaseSensitive, true)
	opts, err = analyzerOptions(1234)
	require.NoError(t, err)
	require.Equal(t, alphabet.FromString("acgu"), opts.Alphabet)
	require.Equal(t, 50, opts.Iterations)
	require.Equal(t, complexity.ZstdLevel1, opts.Compression)
	require.True(t, opts.CaseSensitive)

	viper.Reset()
	viper.Set(keyAlphabet, []any{"ab"})
	_, err = analyzerOptions(1234)
	require.True(t, errors.Is(err, complexity.ErrInvalidAlphabet), "%v", err)

	viper.Reset()
	viper.Set(keyCompression, "lz4")
	_, err = analyzerOptions(1234)
	require.Error(t, err)
}

func TestReadSequences(t *testing.T) {
	seqs, err := readSequences(strings.NewReader("ACGT\n\n  TTGA \nGGGG"))
	require.NoError(t, err)
	require.Equal(t, []string{"ACGT", "TTGA", "GGGG"}, seqs)
}

func TestScoreSequences(t *testing.T) {
	a, err := complexity.New(&complexity.Options{
		Iterations: 50,
		Logger:     complexity.NoopLogger{},
	})
	require.NoError(t, err)

	sequences := []string{"ATATATATATATATATATATATAT", "GATCCGGGTCCACGAAGTAATAGC"}
	var buf bytes.Buffer
	require.NoError(t, scoreSequences(&buf, a, sequences, "tsv"))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	for i, line := range lines {
		fields := strings.Split(line, "\t")
		require.Len(t, fields, 3)
		require.Equal(t, sequences[i], fields[0])
	}

	buf.Reset()
	require.NoError(t, scoreSequences(&buf, a, sequences, "yaml"))
	var rows []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 2)
	require.Equal(t, sequences[0], rows[0]["sequence"])
	require.Equal(t, 24, rows[0]["length"])
	require.Contains(t, rows[0], "zscore")

	buf.Reset()
	require.NoError(t, scoreSequences(&buf, a, sequences, "table"))
	require.Contains(t, buf.String(), "PERCENTILE")

	require.Error(t, scoreSequences(&buf, a, sequences, "csv"))
}

func TestWriteBaselines(t *testing.T) {
	a, err := complexity.New(&complexity.Options{
		Iterations: 50,
		Logger:     complexity.NoopLogger{},
	})
	require.NoError(t, err)
	b, err := a.Baseline(20)
	require.NoError(t, err)
	s := summarize(b)
	require.LessOrEqual(t, s.P1, s.P50)
	require.LessOrEqual(t, s.P50, s.P99)

	var buf bytes.Buffer
	require.NoError(t, writeBaselines(&buf, []baselineSummary{s}, "yaml"))
	var rows []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 1)
	require.Equal(t, 20, rows[0]["length"])
	require.Equal(t, 50, rows[0]["samples"])

	require.NotEmpty(t, plotSampleLengths(b))
	nb, err := complexity.NewBaseline(20, 1, 2, 3)
	require.NoError(t, err)
	require.Equal(t, "(no samples)", plotSampleLengths(nb))
}
