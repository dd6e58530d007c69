// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package tilegrid builds tile-parallel execution programs for a fixed 2-D
// grid of independent compute cores, each running a data-movement reader, a
// data-movement writer and a compute engine connected by small fixed-capacity
// on-core tile queues.
//
// The package maps one tensor operation onto the grid: it partitions the
// operation's tiles into at most two load-balanced groups of cores
// (package worksplit), allocates the per-core tile queues and binds the
// per-engine kernels (package program), and writes the per-core runtime
// arguments in row-major core order (package ops/bcast for the broadcast
// binary op). The result is a reusable program.Program: re-invoking the same
// operation with new buffer locations but identical shapes only requires
// calling Program.Patch, not rebuilding.
//
// This root package holds the interfaces of the external collaborators: the
// device (grid descriptor and local-memory budget), device buffers and
// tensors. The device driver, the kernel compiler and the kernel sources
// themselves live outside this module; only their argument contracts matter
// here.
package tilegrid

import (
	"fmt"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/tilegrid/coords"
)

// Shape is the (batch, channel, height, width) shape of a 4-D device tensor.
//
// Heights and widths handed to the program builders must be multiples of the
// tile dimensions (see package tiles); batch and channel are unconstrained.
type Shape struct {
	N, C, H, W int
}

// MakeShape returns a Shape with the given dimensions.
func MakeShape(n, c, h, w int) Shape {
	return Shape{N: n, C: c, H: h, W: w}
}

// Size returns the total number of elements.
func (s Shape) Size() int {
	return s.N * s.C * s.H * s.W
}

// String implements fmt.Stringer.
func (s Shape) String() string {
	return fmt.Sprintf("[%d, %d, %d, %d]", s.N, s.C, s.H, s.W)
}

// Device is the grid descriptor: the view of the device driver this package
// needs to schedule work. It is always passed explicitly, never discovered
// from a global.
type Device interface {
	// ComputeGridSize returns the dimensions of the compute-and-storage
	// core grid available for scheduling.
	ComputeGridSize() coords.GridSize

	// L1SizePerCore returns the number of bytes of fast local (L1) memory
	// each core can dedicate to tile queues.
	L1SizePerCore() uint64
}

// Buffer is an allocated device buffer. Only its address and residency class
// are consumed here; allocation and lifetime are the driver's business.
type Buffer interface {
	// Address of the buffer on the device. Device addresses fit the
	// 32-bit runtime-argument slots of the engine kernels.
	Address() uint32

	// Type returns the buffer's residency class.
	Type() BufferType
}

// Tensor is the device tensor view consumed by the program builders.
type Tensor interface {
	// Shape of the tensor, in NCHW order.
	Shape() Shape

	// DType of the tensor elements.
	DType() dtypes.DType

	// Buffer holding the tensor data, or nil if not allocated on device.
	Buffer() Buffer

	// Device the tensor lives on.
	Device() Device
}
