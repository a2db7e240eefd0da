// Copyright 2026 The Complexity Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
	"github.com/seqcomplexity/complexity"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var baselinePlot bool

var baselineCmd = &cobra.Command{
	Use:   "baseline <length>...",
	Short: "build and print baselines for sequence lengths",
	Long: `
Builds the baselines for the given sequence lengths and prints the
compression floor, the mean and standard deviation of the noise above it, and
percentiles of the compressed lengths of the random samples.
`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBaseline,
}

func init() {
	baselineCmd.Flags().BoolVar(
		&baselinePlot, "plot", false, "plot the distribution of compressed sample lengths")
}

// baselineSummary is the printed form of a Baseline.
type baselineSummary struct {
	*complexity.Baseline `yaml:",inline"`
	P1                   int64 `yaml:"p1"`
	P50                  int64 `yaml:"p50"`
	P99                  int64 `yaml:"p99"`
}

func summarize(b *complexity.Baseline) baselineSummary {
	s := baselineSummary{Baseline: b}
	s.P1, _ = b.CompressedLengthAtQuantile(1)
	s.P50, _ = b.CompressedLengthAtQuantile(50)
	s.P99, _ = b.CompressedLengthAtQuantile(99)
	return s
}

func runBaseline(cmd *cobra.Command, args []string) error {
	lengths := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			return errors.Newf("invalid sequence length %q", arg)
		}
		lengths[i] = n
	}
	a, err := newAnalyzer(complexity.DefaultIterations)
	if err != nil {
		return err
	}
	if err := a.Warm(lengths...); err != nil {
		return err
	}

	summaries := make([]baselineSummary, len(lengths))
	for i, n := range lengths {
		b, err := a.Baseline(n)
		if err != nil {
			return err
		}
		summaries[i] = summarize(b)
	}
	w := cmd.OutOrStdout()
	if err := writeBaselines(w, summaries, viper.GetString(keyFormat)); err != nil {
		return err
	}
	if baselinePlot {
		for _, s := range summaries {
			fmt.Fprintf(w, "\nlength %d: compressed sample lengths\n%s\n", s.Length, plotSampleLengths(s.Baseline))
		}
	}
	return nil
}

func writeBaselines(w io.Writer, summaries []baselineSummary, format string) error {
	switch format {
	case "tsv":
		for _, s := range summaries {
			fmt.Fprintf(w, "%d\t%.4f\t%.4f\t%.4f\t%d\t%d\t%d\t%d\n", s.Length,
				s.AverageMinimumCompressedLength, s.Average, s.StandardDeviation,
				s.Samples, s.P1, s.P50, s.P99)
		}
		return nil

	case "table":
		tbl := tablewriter.NewWriter(w)
		tbl.SetHeader([]string{"Length", "Floor", "Average", "StdDev", "Samples", "P1", "P50", "P99"})
		for _, s := range summaries {
			tbl.Append([]string{
				fmt.Sprintf("%d", s.Length),
				fmt.Sprintf("%.2f", s.AverageMinimumCompressedLength),
				fmt.Sprintf("%.4f", s.Average),
				fmt.Sprintf("%.4f", s.StandardDeviation),
				fmt.Sprintf("%d", s.Samples),
				fmt.Sprintf("%d", s.P1),
				fmt.Sprintf("%d", s.P50),
				fmt.Sprintf("%d", s.P99),
			})
		}
		tbl.Render()
		return nil

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(summaries); err != nil {
			return err
		}
		return enc.Close()

	default:
		return errors.Newf("unknown output format %q (expected tsv, table or yaml)", format)
	}
}

// plotSampleLengths plots the number of samples per compressed length, from
// the shortest to the longest observed length.
func plotSampleLengths(b *complexity.Baseline) string {
	counts := b.SampleLengths()
	if len(counts) == 0 {
		return "(no samples)"
	}
	first := counts[0].Length
	values := make([]float64, counts[len(counts)-1].Length-first+1)
	for _, c := range counts {
		values[c.Length-first] = float64(c.Count)
	}
	return asciigraph.Plot(values,
		asciigraph.Height(10),
		asciigraph.Caption(fmt.Sprintf("samples per compressed length, from %d bytes", first)))
}
