// Copyright 2026 The Complexity Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

import "github.com/cockroachdb/errors"

// ErrInvalidConfiguration marks errors caused by Options that cannot be used
// to construct an analyzer, such as a non-positive iteration count.
var ErrInvalidConfiguration = errors.New("complexity: invalid configuration")

// ErrInvalidAlphabet marks errors caused by an alphabet specification that is
// empty, names an unknown catalog, or has an unsupported type.
var ErrInvalidAlphabet = errors.New("complexity: invalid alphabet")

// ErrUndefinedStatistic marks errors raised when a statistic such as the
// sample standard deviation is requested from too few samples.
var ErrUndefinedStatistic = errors.New("complexity: undefined statistic")

// InvalidConfigurationf formats an error marked as ErrInvalidConfiguration.
func InvalidConfigurationf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalidConfiguration)
}

// InvalidAlphabetf formats an error marked as ErrInvalidAlphabet.
func InvalidAlphabetf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalidAlphabet)
}

// UndefinedStatisticf formats an error marked as ErrUndefinedStatistic.
func UndefinedStatisticf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrUndefinedStatistic)
}
