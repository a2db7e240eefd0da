// Copyright 2026 The Complexity Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package base defines the logger and error markers shared by the analyzer,
// the alphabet catalog and the internal packages.
package base
