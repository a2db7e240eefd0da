// Copyright 2026 The Complexity Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package compression

import (
	"bytes"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/cockroachdb/crlib/testutils/leaktest"
	"github.com/stretchr/testify/require"
)

func TestCompressionRoundtrip(t *testing.T) {
	defer leaktest.AfterTest(t)()

	seed := uint64(time.Now().UnixNano())
	t.Logf("seed %d", seed)
	rng := rand.New(rand.NewPCG(0, seed))

	for _, s := range Presets {
		t.Run(s.String(), func(t *testing.T) {
			payload := make([]byte, 1+rng.IntN(10<<10 /* 10 KiB */))
			for i := range payload {
				payload[i] = "ATGC"[rng.IntN(4)]
			}
			// Create a randomly-sized buffer to house the compressed output. If it's
			// not sufficient, Compress should allocate one that is.
			compressedBuf := make([]byte, 1+rng.IntN(1<<10 /* 1 KiB */))
			compressor := GetCompressor(s)
			defer compressor.Close()
			compressed, st := compressor.Compress(compressedBuf, payload)
			require.Equal(t, s, st)

			decompressor := GetDecompressor(st.Algorithm)
			defer decompressor.Close()
			got, err := decompressor.Decompress(nil, compressed)
			require.NoError(t, err)
			require.Equal(t, payload, got)
		})
	}
}

func TestCompressionDeterministic(t *testing.T) {
	defer leaktest.AfterTest(t)()

	payload := bytes.Repeat([]byte("GATTACA"), 100)
	for _, s := range Presets {
		t.Run(s.String(), func(t *testing.T) {
			var lengths []int
			// Reuse one compressor and also obtain fresh ones from the pool; the
			// output must not depend on the state left by a previous payload.
			c := GetCompressor(s)
			for i := 0; i < 3; i++ {
				n, _ := CompressedLen(c, nil, payload)
				lengths = append(lengths, n)
				_, _ = c.Compress(nil, []byte("unrelated payload"))
			}
			c.Close()
			c = GetCompressor(s)
			n, _ := CompressedLen(c, nil, payload)
			lengths = append(lengths, n)
			c.Close()
			for _, l := range lengths[1:] {
				require.Equal(t, lengths[0], l)
			}
		})
	}
}

func TestCompressionShrinksRepetitiveInput(t *testing.T) {
	payload := bytes.Repeat([]byte("A"), 4096)
	for _, s := range Presets {
		if s == None {
			continue
		}
		t.Run(s.String(), func(t *testing.T) {
			c := GetCompressor(s)
			defer c.Close()
			n, _ := CompressedLen(c, nil, payload)
			require.Less(t, n, len(payload)/4)
		})
	}
}

func TestDecompressionError(t *testing.T) {
	rng := rand.New(rand.NewPCG(0, 1 /* fixed seed */))
	garbage := make([]byte, 64)
	for i := range garbage {
		garbage[i] = byte(rng.Uint32())
	}
	for _, a := range []Algorithm{Zstd, Bzip2} {
		t.Run(a.String(), func(t *testing.T) {
			d := GetDecompressor(a)
			defer d.Close()
			_, err := d.Decompress(nil, garbage)
			require.Error(t, err)
		})
	}
}

func TestParseSetting(t *testing.T) {
	for _, s := range Presets {
		got, err := ParseSetting(s.String())
		require.NoError(t, err)
		require.Equal(t, s, got)
	}

	for input, want := range map[string]Setting{
		"bzip2":   Bzip2Best,
		"BZIP2":   Bzip2Best,
		"zstd":    ZstdLevel3,
		"zstd1":   ZstdLevel1,
		" flate ": FlateDefault,
		"minlz":   MinLZBalanced,
		"none":    None,
	} {
		got, err := ParseSetting(input)
		require.NoError(t, err, input)
		require.Equal(t, want, got, input)
	}

	require.Error(t, Setting{}.Validate())
	for _, input := range []string{"", "unspecified", "lz4", "zstd0", "zstd23", "bzip2x", "snappy1", "flate10"} {
		_, err := ParseSetting(input)
		require.Error(t, err, input)
	}
}
