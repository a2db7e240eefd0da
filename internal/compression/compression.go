// Copyright 2026 The Complexity Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package compression adapts a set of byte compressors to a common interface.
// The analyzer only ever observes the length of a compressed payload, but
// every compressor here is lossless and deterministic so that lengths are
// reproducible and can be verified by round-tripping.
package compression

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Algorithm identifies a compression algorithm.
type Algorithm uint8

const (
	// Unspecified is the zero Algorithm. Callers replace it with a default
	// before use.
	Unspecified Algorithm = iota
	NoAlgorithm
	SnappyAlgorithm
	MinLZ
	Zstd
	Flate
	Bzip2
	NumAlgorithms
)

var algorithmNames = [...]string{
	Unspecified:     "Unspecified",
	NoAlgorithm:     "None",
	SnappyAlgorithm: "Snappy",
	MinLZ:           "MinLZ",
	Zstd:            "ZSTD",
	Flate:           "Flate",
	Bzip2:           "Bzip2",
}

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	if a < NumAlgorithms {
		return algorithmNames[a]
	}
	return fmt.Sprintf("Algorithm(%d)", a)
}

// Setting contains the information needed to compress a payload: the
// algorithm and an algorithm-specific level.
type Setting struct {
	Algorithm Algorithm
	// Level is only meaningful for MinLZ, Zstd, Flate and Bzip2.
	Level uint8
}

// String implements fmt.Stringer. The result can be parsed by ParseSetting.
func (s Setting) String() string {
	switch s.Algorithm {
	case Unspecified, NoAlgorithm, SnappyAlgorithm:
		return s.Algorithm.String()
	default:
		return fmt.Sprintf("%s%d", s.Algorithm, s.Level)
	}
}

// Setting presets.
var (
	None          = Setting{Algorithm: NoAlgorithm}
	Snappy        = Setting{Algorithm: SnappyAlgorithm}
	MinLZFastest  = Setting{Algorithm: MinLZ, Level: minlzLevelFastest}
	MinLZBalanced = Setting{Algorithm: MinLZ, Level: minlzLevelBalanced}
	ZstdLevel1    = Setting{Algorithm: Zstd, Level: 1}
	ZstdLevel3    = Setting{Algorithm: Zstd, Level: 3}
	FlateDefault  = Setting{Algorithm: Flate, Level: 6}
	FlateBest     = Setting{Algorithm: Flate, Level: 9}
	// Bzip2Best uses 900k blocks, the setting of the Python bz2 module.
	Bzip2Best = Setting{Algorithm: Bzip2, Level: 9}
)

// Presets lists every preset setting.
var Presets = []Setting{
	None,
	Snappy,
	MinLZFastest,
	MinLZBalanced,
	ZstdLevel1,
	ZstdLevel3,
	FlateDefault,
	FlateBest,
	Bzip2Best,
}

// ParseSetting parses the output of Setting.String, case-insensitively. A
// bare algorithm name selects that algorithm's default level.
func ParseSetting(s string) (Setting, error) {
	str := strings.ToLower(strings.TrimSpace(s))
	for a := NoAlgorithm; a < NumAlgorithms; a++ {
		name := strings.ToLower(a.String())
		if !strings.HasPrefix(str, name) {
			continue
		}
		rest := str[len(name):]
		if rest == "" {
			return defaultSetting(a), nil
		}
		if a == NoAlgorithm || a == SnappyAlgorithm {
			break
		}
		level, err := strconv.ParseUint(rest, 10, 8)
		if err != nil {
			break
		}
		setting := Setting{Algorithm: a, Level: uint8(level)}
		if err := setting.Validate(); err != nil {
			return Setting{}, err
		}
		return setting, nil
	}
	return Setting{}, errors.Newf("unknown compression setting %q", s)
}

func defaultSetting(a Algorithm) Setting {
	switch a {
	case MinLZ:
		return MinLZBalanced
	case Zstd:
		return ZstdLevel3
	case Flate:
		return FlateDefault
	case Bzip2:
		return Bzip2Best
	default:
		return Setting{Algorithm: a}
	}
}

// Validate returns an error if the level is not supported by the algorithm.
func (s Setting) Validate() error {
	switch s.Algorithm {
	case Unspecified:
		return errors.New("compression algorithm is unspecified")
	case NoAlgorithm, SnappyAlgorithm:
		return nil
	case MinLZ:
		if s.Level < minlzLevelFastest || s.Level > minlzLevelSmallest {
			return errors.Newf("MinLZ level %d must be between %d and %d",
				s.Level, minlzLevelFastest, minlzLevelSmallest)
		}
	case Zstd:
		if s.Level < 1 || s.Level > 22 {
			return errors.Newf("ZSTD level %d must be between 1 and 22", s.Level)
		}
	case Flate:
		if s.Level < 1 || s.Level > 9 {
			return errors.Newf("Flate level %d must be between 1 and 9", s.Level)
		}
	case Bzip2:
		if s.Level < 1 || s.Level > 9 {
			return errors.Newf("Bzip2 level %d must be between 1 and 9", s.Level)
		}
	default:
		return errors.Newf("unknown compression algorithm %d", errors.Safe(s.Algorithm))
	}
	return nil
}

// Compressor compresses payloads. A Compressor is not safe for concurrent use;
// each goroutine must obtain its own.
type Compressor interface {
	// Compress a payload, appending the result to dst[:0] and returning it
	// along with the setting that produced it.
	Compress(dst, src []byte) ([]byte, Setting)

	// Close must be called when the Compressor is no longer needed.
	// After Close is called, the Compressor must not be used again.
	Close()
}

// GetCompressor returns a Compressor for the given setting. The setting must
// be valid.
func GetCompressor(s Setting) Compressor {
	switch s.Algorithm {
	case NoAlgorithm:
		return noopCompressor{}
	case SnappyAlgorithm:
		return snappyCompressor{}
	case MinLZ:
		return getMinlzCompressor(int(s.Level))
	case Zstd:
		return getZstdCompressor(int(s.Level))
	case Flate:
		return getFlateCompressor(int(s.Level))
	case Bzip2:
		return getBzip2Compressor(int(s.Level))
	default:
		panic(errors.AssertionFailedf("invalid compression setting %s", s))
	}
}

// Decompressor reverses a Compressor. A Decompressor is not safe for
// concurrent use.
type Decompressor interface {
	// Decompress appends the decompressed form of src to dst[:0].
	Decompress(dst, src []byte) ([]byte, error)

	// Close must be called when the Decompressor is no longer needed.
	// After Close is called, the Decompressor must not be used again.
	Close()
}

// GetDecompressor returns a Decompressor for the given algorithm.
func GetDecompressor(a Algorithm) Decompressor {
	switch a {
	case NoAlgorithm:
		return noopDecompressor{}
	case SnappyAlgorithm:
		return snappyDecompressor{}
	case MinLZ:
		return minlzDecompressor{}
	case Zstd:
		return getZstdDecompressor()
	case Flate:
		return flateDecompressor{}
	case Bzip2:
		return bzip2Decompressor{}
	default:
		panic(errors.AssertionFailedf("invalid compression algorithm %d", errors.Safe(a)))
	}
}

// CompressedLen compresses src with c and returns the length of the result.
// buf is used as scratch space and the (possibly grown) buffer is returned.
func CompressedLen(c Compressor, buf, src []byte) (int, []byte) {
	compressed, _ := c.Compress(buf[:0], src)
	return len(compressed), compressed[:0]
}
