// Copyright 2026 The Complexity Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/seqcomplexity/complexity"
	"github.com/seqcomplexity/complexity/alphabet"
	"github.com/spf13/viper"
)

var cfgFile string

// Configuration keys. Each can be set with a flag, in the config file, or
// with a COMPLEXITY_ prefixed environment variable.
const (
	keyAlphabet      = "alphabet"
	keyCaseSensitive = "case_sensitive"
	keyIterations    = "iterations"
	keyCompression   = "compression"
	keyParallelism   = "parallelism"
	keyFormat        = "format"
	keyVerbose       = "verbose"
)

func initFlags() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.complexity.yaml)")
	flags.String("alphabet", "nucleotide",
		fmt.Sprintf("alphabet random sequences are drawn from (%s)", strings.Join(alphabet.Names(), ", ")))
	flags.Bool("case-sensitive", false, "do not fold probands and alphabet to upper case")
	flags.IntP("iterations", "n", complexity.DefaultIterations, "random sequences compressed per baseline")
	flags.String("compression", complexity.Bzip2BestCompression.String(), "compression setting (e.g. bzip2, zstd3, flate9)")
	flags.IntP("parallelism", "p", runtime.GOMAXPROCS(0), "goroutines compressing samples for one baseline")
	flags.StringP("format", "f", "tsv", "output format (tsv, table, yaml)")
	flags.BoolP("verbose", "v", false, "log baseline builds")

	for key, flag := range map[string]string{
		keyAlphabet:      "alphabet",
		keyCaseSensitive: "case-sensitive",
		keyIterations:    "iterations",
		keyCompression:   "compression",
		keyParallelism:   "parallelism",
		keyFormat:        "format",
		keyVerbose:       "verbose",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName(".complexity")
	}

	viper.SetEnvPrefix("complexity")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "error reading config: %v\n", err)
			os.Exit(1)
		}
	} else if viper.GetBool(keyVerbose) {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// analyzerOptions builds Options from the flags, config file and environment.
// defaultIterations is used when the iteration count is not set explicitly.
func analyzerOptions(defaultIterations int) (*complexity.Options, error) {
	opts := &complexity.Options{
		CaseSensitive: viper.GetBool(keyCaseSensitive),
		Iterations:    viper.GetInt(keyIterations),
		Parallelism:   viper.GetInt(keyParallelism),
		Logger:        complexity.NoopLogger{},
	}
	if !viper.IsSet(keyIterations) {
		opts.Iterations = defaultIterations
	}
	if viper.GetBool(keyVerbose) {
		opts.Logger = complexity.DefaultLogger{}
	}

	// A config file may list the symbols explicitly instead of naming a
	// catalog alphabet.
	if v := viper.Get(keyAlphabet); v != nil {
		spec, err := alphabet.FromValue(v)
		if err != nil {
			return nil, err
		}
		opts.Alphabet = spec
	}
	if s := viper.GetString(keyCompression); s != "" {
		setting, err := complexity.ParseCompression(s)
		if err != nil {
			return nil, err
		}
		opts.Compression = setting
	}
	return opts, nil
}

func newAnalyzer(defaultIterations int) (*complexity.Analyzer, error) {
	opts, err := analyzerOptions(defaultIterations)
	if err != nil {
		return nil, err
	}
	return complexity.New(opts)
}
