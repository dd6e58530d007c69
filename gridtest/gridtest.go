// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package gridtest provides in-memory implementations of the tilegrid
// collaborator interfaces (Device, Buffer, Tensor) for tests. No real device
// is touched: addresses are plain numbers and the grid is whatever the test
// asks for.
package gridtest

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/tilegrid"
	"github.com/gomlx/tilegrid/coords"
)

// DefaultL1Size is the per-core local memory budget of the simulated device,
// 1 MiB as on first-generation grids.
const DefaultL1Size = 1 << 20

// Device is a simulated grid descriptor.
type Device struct {
	grid coords.GridSize
	l1   uint64
}

var _ tilegrid.Device = (*Device)(nil)

// NewDevice returns a simulated device with a cols x rows compute grid and
// the default L1 budget.
func NewDevice(cols, rows int) *Device {
	return &Device{grid: coords.MakeGrid(cols, rows), l1: DefaultL1Size}
}

// WithL1Size overrides the per-core L1 budget and returns the device.
func (d *Device) WithL1Size(bytes uint64) *Device {
	d.l1 = bytes
	return d
}

// ComputeGridSize implements tilegrid.Device.
func (d *Device) ComputeGridSize() coords.GridSize { return d.grid }

// L1SizePerCore implements tilegrid.Device.
func (d *Device) L1SizePerCore() uint64 { return d.l1 }

// Buffer is a simulated device buffer.
type Buffer struct {
	addr  uint32
	btype tilegrid.BufferType
}

var _ tilegrid.Buffer = (*Buffer)(nil)

// NewBuffer returns a buffer at the given address and residency class.
func NewBuffer(addr uint32, btype tilegrid.BufferType) *Buffer {
	return &Buffer{addr: addr, btype: btype}
}

// Address implements tilegrid.Buffer.
func (b *Buffer) Address() uint32 { return b.addr }

// Type implements tilegrid.Buffer.
func (b *Buffer) Type() tilegrid.BufferType { return b.btype }

// Tensor is a simulated device tensor.
type Tensor struct {
	device *Device
	shape  tilegrid.Shape
	dtype  dtypes.DType
	buffer *Buffer
}

var _ tilegrid.Tensor = (*Tensor)(nil)

// NewTensor returns a tensor of the given shape and dtype backed by buffer
// (nil for an unallocated tensor).
func NewTensor(device *Device, shape tilegrid.Shape, dtype dtypes.DType, buffer *Buffer) *Tensor {
	return &Tensor{device: device, shape: shape, dtype: dtype, buffer: buffer}
}

// Shape implements tilegrid.Tensor.
func (t *Tensor) Shape() tilegrid.Shape { return t.shape }

// DType implements tilegrid.Tensor.
func (t *Tensor) DType() dtypes.DType { return t.dtype }

// Buffer implements tilegrid.Tensor. It returns nil for an unallocated
// tensor.
func (t *Tensor) Buffer() tilegrid.Buffer {
	if t.buffer == nil {
		return nil
	}
	return t.buffer
}

// Device implements tilegrid.Tensor.
func (t *Tensor) Device() tilegrid.Device { return t.device }
