// Copyright ©2024 The Parity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parity certifies that performance-optimized routines are
// observably identical to their reference implementations.
//
// Every certified workload ships as a pair: a straightforward baseline whose
// output defines ground truth, and an optimized rewrite (blocked memory
// access, byte-level processing, parallel decomposition) that must reproduce
// that output. The engine runs both over the same input and compares the
// results under an explicit policy:
//
//   - floating-point values compare within an absolute tolerance, with NaN
//     treated as interchangeable with NaN and infinities matched by sign
//   - ordered sequences compare position by position; reordering is a failure
//   - key-count mappings compare through a container interface, so a plain
//     map and a sharded concurrent counter can be certified against each other
//
// Comparison never throws: every check returns a ValidationResult, and
// results from many checks combine into a single report that preserves all
// failures, not just the first.
package parity
