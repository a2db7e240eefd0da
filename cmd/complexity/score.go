// Copyright 2026 The Complexity Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/seqcomplexity/complexity"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var scoreCmd = &cobra.Command{
	Use:   "score [sequence...]",
	Short: "score sequences against random baselines",
	Long: `
Scores each sequence given as an argument, or each non-empty line of standard
input if there are no arguments. The z-score and percentile are rounded to
four decimal places.
`,
	RunE: runScore,
}

// scored is one row of output.
type scored struct {
	Sequence string `yaml:"sequence"`
	complexity.Result `yaml:",inline"`
}

func runScore(cmd *cobra.Command, args []string) error {
	sequences := args
	if len(sequences) == 0 {
		var err error
		if sequences, err = readSequences(cmd.InOrStdin()); err != nil {
			return err
		}
	}
	a, err := newAnalyzer(complexity.DefaultIterations)
	if err != nil {
		return err
	}
	return scoreSequences(cmd.OutOrStdout(), a, sequences, viper.GetString(keyFormat))
}

func readSequences(r io.Reader) ([]string, error) {
	var sequences []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			sequences = append(sequences, line)
		}
	}
	return sequences, errors.Wrap(scanner.Err(), "reading sequences")
}

func scoreSequences(w io.Writer, a *complexity.Analyzer, sequences []string, format string) error {
	// Build the baselines for all lengths up front, concurrently.
	lengths := make([]int, 0, len(sequences))
	for _, s := range sequences {
		lengths = append(lengths, len([]rune(s)))
	}
	if err := a.Warm(lengths...); err != nil {
		return err
	}

	rows := make([]scored, 0, len(sequences))
	for _, s := range sequences {
		r, err := a.Evaluate(s)
		if err != nil {
			return err
		}
		rows = append(rows, scored{Sequence: s, Result: r})
	}
	return writeScores(w, rows, format)
}

func writeScores(w io.Writer, rows []scored, format string) error {
	switch format {
	case "tsv":
		for _, r := range rows {
			fmt.Fprintf(w, "%s\t%.4f\t%.4f\n", r.Sequence, r.ZScore, r.Percentile)
		}
		return nil

	case "table":
		tbl := tablewriter.NewWriter(w)
		tbl.SetHeader([]string{"Sequence", "Length", "Compressed", "Adjusted", "Z-Score", "Percentile"})
		for _, r := range rows {
			tbl.Append([]string{
				r.Sequence,
				fmt.Sprintf("%d", r.Length),
				fmt.Sprintf("%d", r.CompressedLength),
				fmt.Sprintf("%.2f", r.AdjustedLength),
				fmt.Sprintf("%.4f", r.ZScore),
				fmt.Sprintf("%.4f", r.Percentile),
			})
		}
		tbl.Render()
		return nil

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return err
		}
		return enc.Close()

	default:
		return errors.Newf("unknown output format %q (expected tsv, table or yaml)", format)
	}
}
