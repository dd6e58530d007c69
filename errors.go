// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tilegrid

import "github.com/pkg/errors"

// Program construction failures fall in exactly two classes, both terminal
// for the current construction attempt: retrying with the same (shapes, grid)
// inputs deterministically reproduces the same failure.
var (
	// ErrPrecondition marks a caller or configuration bug: malformed or
	// non-tile-aligned shapes, an unallocated destination buffer, a core
	// missing from every work group, a reused queue index.
	ErrPrecondition = errors.New("precondition violation")

	// ErrResourceExhausted marks a device limit: the requested tile queues
	// do not fit the per-core L1 budget. It is surfaced before any kernel
	// is bound.
	ErrResourceExhausted = errors.New("device resource exhausted")
)
