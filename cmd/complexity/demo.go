// Copyright 2026 The Complexity Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// demoIterations is the number of samples per baseline used by the demo
// unless overridden.
const demoIterations = 10000

// demoSequences are 40 base probands ranging from periodic repeats to
// sequences indistinguishable from noise.
var demoSequences = []string{
	"ATATATATATATATATATATATATATATATATATATATAT",
	"GATGGATCCTAGACGAGGGCCAATATGCTAATGCTAACCT",
	"GCGCCACTATGATCACATGGTGTGATTTGGTGTCATTTGG",
	"GATCCGGGTCCACGAAGTAATAGCGAGCAAGACAGACAGG",
	"TGACGAAAGATGGAAGCGTTGAGGCGTGTCGTGTCAGAAC",
	"ATGTACAGTGGCACACGTACGGTACGTACGTATGGTTGCT",
	"TCCACCACCACAAGTAGAGCCAGCTCGCGGCTGTGCGCGC",
	"GCTGGCTCTACTTGTGGTGGTGGACGGACGGCGCTCTTTT",
	"CGCTGGACTCGACGGCGGCGGCGAGGTCGTTGCGGCCCGC",
	"TTAATATAGAATTCTATGGAATTCACTCAGCAAATAACAC",
	"GGGAGGGGATGGGGAGCATTGCGGAGGCACGCGCAAGTTA",
	"ACAGCGACGGTTATATTAAGGAAAGGAATATGCGGATAAG",
	"ATCTTGGATCGATGGGTAACTAGGGATGAAGAAGAAGATG",
	"GCGATGCATGCATAAGTGGCACATCCAAATCCACTATTAC",
	"ACAGTCACAGTCACCAGCAGTAGTTGTTGCGATTCTAAAG",
	"AAAACAAGGGTTTCAGGTTTCATGGTATGTGCTTTCTTAG",
	"AAAGCAACCATGCTGAAAACTTTTGTTTTGTTATTTTGTC",
	"AGAGCCTCCTCTCCTACAACTGCTTTCATGGCTTGAACAT",
	"CGTCCACCACCACAAGTAGAGCCAGCTCGCGGCTGTGCGC",
	"TGCGATGCATGCATAAGTGGCACATCCAAATCCACTATTA",
	"ATATATATATATATATATATATATATATATATATATATAT",
	"GATCATCGAGCATCATGACTGCATGACTGCATCATACTAC",
	"ACGATCGATCGATCGATCGATCGATCGATCGATCGATCGC",
	"GGGTGGAGGCGGGAGGGGTGCGGGGGTGGCGGGAGGGGCG",
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "score a built-in set of DNA probands",
	Long: `
Scores a built-in list of 40 base DNA probands against the nucleotide
alphabet, using 10000 samples per baseline unless --iterations is given.
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newAnalyzer(demoIterations)
		if err != nil {
			return err
		}
		return scoreSequences(cmd.OutOrStdout(), a, demoSequences, viper.GetString(keyFormat))
	},
}
