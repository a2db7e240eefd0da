// Copyright 2026 The Complexity Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "complexity [command] (flags)",
	Short: "compression-based sequence complexity analyzer",
	Long: `
Scores how random a sequence is by comparing its compressed length against
the compressed lengths of random sequences of the same length drawn from the
same alphabet. Results are reported as a z-score and a percentile: strongly
negative scores mean the sequence is more structured than noise.
`,
	SilenceUsage: true,
}

func main() {
	log.SetFlags(0)

	cobra.OnInitialize(initConfig)
	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		scoreCmd,
		baselineCmd,
		demoCmd,
	)
	initFlags()

	if err := rootCmd.Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}
