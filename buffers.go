// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tilegrid

//go:generate go tool enumer -type=BufferType -output=gen_buffertype_enumer.go buffers.go

// BufferType is the residency class of a device buffer: the bulk DRAM pool or
// a core's fast local L1 pool. Kernel compile-time arguments carry it as a
// boolean ("is DRAM") so the data-movement engines pick the right address
// decoding.
type BufferType int

const (
	// DRAM is the bulk off-core memory pool.
	DRAM BufferType = iota

	// L1 is the fast local per-core memory pool.
	L1
)

// IsDRAM returns whether the buffer lives in the bulk pool, in the form the
// kernel compile-time arguments expect.
func (i BufferType) IsDRAM() bool {
	return i == DRAM
}
