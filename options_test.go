// Copyright 2026 The Complexity Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package complexity

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
	"github.com/seqcomplexity/complexity/alphabet"
	"github.com/stretchr/testify/require"
)

// testLogger records log messages so tests can assert on them.
type testLogger struct {
	mu  sync.Mutex
	buf strings.Builder
}

var _ Logger = (*testLogger)(nil)

func (l *testLogger) Infof(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(&l.buf, "log: "+format+"\n", args...)
}

func (l *testLogger) Fatalf(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}

func (l *testLogger) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.String()
}

func TestOptionsDefaults(t *testing.T) {
	opts := DefaultOptions()
	require.Equal(t, alphabet.Nucleotide.Spec(), opts.Alphabet)
	require.False(t, opts.CaseSensitive)
	require.Equal(t, DefaultIterations, opts.Iterations)
	require.Equal(t, Bzip2BestCompression, opts.Compression)
	require.Equal(t, runtime.GOMAXPROCS(0), opts.Parallelism)
	require.NotNil(t, opts.Logger)
	require.NoError(t, opts.Validate())

	// EnsureDefaults leaves Iterations alone.
	opts = &Options{}
	opts.EnsureDefaults()
	require.Zero(t, opts.Iterations)
	require.True(t, errors.Is(opts.Validate(), ErrInvalidConfiguration))
}

func TestOptionsClone(t *testing.T) {
	var nilOpts *Options
	require.Equal(t, &Options{}, nilOpts.Clone())

	opts := DefaultOptions()
	clone := opts.Clone()
	clone.Iterations = 7
	require.Equal(t, DefaultIterations, opts.Iterations)
}

func TestOptionsValidate(t *testing.T) {
	datadriven.RunTest(t, "testdata/options", func(t *testing.T, td *datadriven.TestData) string {
		switch td.Cmd {
		case "new":
			logger := &testLogger{}
			opts := DefaultOptions()
			opts.Logger = logger
			for _, arg := range td.CmdArgs {
				switch arg.Key {
				case "alphabet":
					opts.Alphabet = alphabet.Named(arg.Vals[0])
				case "symbols":
					opts.Alphabet = alphabet.FromString(arg.Vals[0])
				case "case-sensitive":
					opts.CaseSensitive = true
				case "iterations":
					td.ScanArgs(t, "iterations", &opts.Iterations)
				case "parallelism":
					td.ScanArgs(t, "parallelism", &opts.Parallelism)
				case "compression":
					setting, err := ParseCompression(arg.Vals[0])
					require.NoError(t, err)
					opts.Compression = setting
				case "level":
					var level int
					td.ScanArgs(t, "level", &level)
					opts.Compression.Level = uint8(level)
				default:
					td.Fatalf(t, "unknown argument %s", arg.Key)
				}
			}
			a, err := New(opts)
			if err != nil {
				return fmt.Sprintf("%serror: %v", logger, err)
			}
			o := a.Options()
			return fmt.Sprintf("%salphabet=%s symbols=%q iterations=%d compression=%s",
				logger, o.Alphabet, string(a.Alphabet()), o.Iterations, o.Compression)

		default:
			td.Fatalf(t, "unknown command %s", td.Cmd)
			return ""
		}
	})
}

func TestNewErrors(t *testing.T) {
	for _, tc := range []struct {
		name   string
		opts   *Options
		marker error
	}{
		{"zero iterations", &Options{Iterations: 0}, ErrInvalidConfiguration},
		{"negative iterations", &Options{Iterations: -1}, ErrInvalidConfiguration},
		{"too few iterations", &Options{Iterations: MinIterations - 1}, ErrInvalidConfiguration},
		{"negative parallelism", &Options{Iterations: 100, Parallelism: -2}, ErrInvalidConfiguration},
		{"bad compression level", &Options{
			Iterations:  100,
			Compression: CompressionSetting{Algorithm: Bzip2BestCompression.Algorithm, Level: 10},
		}, ErrInvalidConfiguration},
		{"empty alphabet name", &Options{Iterations: 100, Alphabet: alphabet.Named("")}, ErrInvalidAlphabet},
		{"unknown alphabet", &Options{Iterations: 100, Alphabet: alphabet.Named("rna")}, ErrInvalidAlphabet},
		{"no symbols", &Options{Iterations: 100, Alphabet: alphabet.Symbols()}, ErrInvalidAlphabet},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tc.opts.Logger = NoopLogger{}
			a, err := New(tc.opts)
			require.Nil(t, a)
			require.Error(t, err)
			require.True(t, errors.Is(err, tc.marker), "%v", err)
		})
	}
}

func TestNewCopiesOptions(t *testing.T) {
	opts := &Options{Iterations: 100, Logger: NoopLogger{}}
	a, err := New(opts)
	require.NoError(t, err)
	// The caller's Options are neither defaulted nor retained.
	require.True(t, opts.Alphabet.IsZero())
	opts.Iterations = 1
	require.Equal(t, 100, a.Options().Iterations)
	require.Equal(t, []rune("ATGC"), a.Alphabet())
}

func TestNewNilOptions(t *testing.T) {
	a, err := New(nil)
	require.NoError(t, err)
	require.Equal(t, DefaultIterations, a.Options().Iterations)
}
