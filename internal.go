// Copyright 2026 The Complexity Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package complexity

import "github.com/seqcomplexity/complexity/internal/base"

// Logger defines an interface for writing log messages.
type Logger = base.Logger

// DefaultLogger logs to the Go stdlib logs.
type DefaultLogger = base.DefaultLogger

// NoopLogger discards all messages.
type NoopLogger = base.NoopLogger

// ErrInvalidConfiguration is returned by New (possibly wrapped) when the
// Options cannot be used, for example when Iterations is below
// MinIterations. Use errors.Is to test for it.
var ErrInvalidConfiguration = base.ErrInvalidConfiguration

// ErrInvalidAlphabet is returned by New (possibly wrapped) when the alphabet
// is unset, empty, names an unknown catalog entry, or has an unsupported type.
var ErrInvalidAlphabet = base.ErrInvalidAlphabet

// ErrUndefinedStatistic is returned when a noise distribution would be
// computed from fewer than two samples.
var ErrUndefinedStatistic = base.ErrUndefinedStatistic
