// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package program holds the execution plan built for one tensor operation on
// the core grid: the per-core tile queues, the engine kernel instances and
// their per-core runtime arguments.
//
// A Program is built once per distinct (operation, shapes, grid) combination
// and handed to the external dispatch layer. Everything in it is frozen after
// construction except the address-bearing runtime-argument slots, which
// Program.Patch may rewrite any number of times so later invocations with new
// buffer locations but identical shapes skip the whole build.
//
// Construction and Patch are single-writer and happen strictly before
// dispatch; nothing here is safe to call concurrently with kernel execution.
package program

import (
	"github.com/dustin/go-humanize"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/tilegrid"
	"github.com/gomlx/tilegrid/coords"
	"github.com/gomlx/tilegrid/tiles"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// PatchFunc rewrites the address-bearing runtime-argument slots of a Program
// for new input/output buffers. It never touches tile counts, offsets, queues
// or compile-time arguments.
type PatchFunc func(inputs, outputs []tilegrid.Buffer) error

// Program aggregates the tile queues, kernel instances and runtime arguments
// of one operation invocation. Build one with New and the Add* methods, then
// freeze it by handing it to the dispatcher.
type Program struct {
	id      string
	device  tilegrid.Device
	queues  map[int]*TileQueue
	order   []*TileQueue
	kernels []*Kernel
	l1Used  map[coords.CoreCoord]uint64
	patch   PatchFunc
}

// New returns an empty Program for the device.
func New(device tilegrid.Device) *Program {
	return &Program{
		id:     uuid.NewString(),
		device: device,
		queues: make(map[int]*TileQueue),
		l1Used: make(map[coords.CoreCoord]uint64),
	}
}

// ID returns the build id of the Program, used in logs and error messages.
func (p *Program) ID() string { return p.id }

// Device the Program was built for.
func (p *Program) Device() tilegrid.Device { return p.device }

// AddTileQueue allocates a tile queue at the given slot index on every core
// of the range, reserving capacityTiles tiles of dtype on each.
//
// A reused index or non-positive capacity is a caller bug
// (tilegrid.ErrPrecondition). Exceeding the device's per-core L1 budget is
// tilegrid.ErrResourceExhausted; it is checked on every core of the range
// before any storage is committed.
func (p *Program) AddTileQueue(index int, cores coords.CoreRangeSet, capacityTiles int, dtype dtypes.DType) (*TileQueue, error) {
	if _, found := p.queues[index]; found {
		return nil, errors.Wrapf(tilegrid.ErrPrecondition,
			"program %s: tile queue index %d allocated twice", p.id, index)
	}
	if capacityTiles <= 0 {
		return nil, errors.Wrapf(tilegrid.ErrPrecondition,
			"program %s: tile queue %d capacity must be positive, got %d", p.id, index, capacityTiles)
	}
	byteSize := uint64(capacityTiles) * tiles.SizeInBytes(dtype)
	budget := p.device.L1SizePerCore()
	coresList := cores.Cores()
	for _, core := range coresList {
		if used := p.l1Used[core]; used+byteSize > budget {
			return nil, errors.Wrapf(tilegrid.ErrResourceExhausted,
				"program %s: tile queue %d needs %s on core %s, but only %s of the %s L1 budget remain",
				p.id, index, humanize.Bytes(byteSize), core,
				humanize.Bytes(budget-used), humanize.Bytes(budget))
		}
	}
	for _, core := range coresList {
		p.l1Used[core] += byteSize
	}
	q := &TileQueue{
		Index:         index,
		Cores:         cores,
		CapacityTiles: capacityTiles,
		ByteSize:      byteSize,
		DType:         dtype,
	}
	p.queues[index] = q
	p.order = append(p.order, q)
	klog.V(2).Infof("program %s: tile queue %d: %d tiles of %s (%s per core) on %s",
		p.id, index, capacityTiles, dtype, humanize.Bytes(byteSize), cores)
	return q, nil
}

// AddKernel instantiates a kernel of the given role over the core range, with
// its compile-time arguments and source defines. Runtime arguments are set
// afterwards, per core, with Kernel.SetRuntimeArgs.
func (p *Program) AddKernel(role KernelRole, name string, cores coords.CoreRangeSet,
	compileTimeArgs []uint32, defines map[string]string) *Kernel {
	k := newKernel(role, name, cores, compileTimeArgs, defines)
	p.kernels = append(p.kernels, k)
	klog.V(2).Infof("program %s: %s kernel %q on %s, compile-time args %v",
		p.id, role, name, cores, compileTimeArgs)
	return k
}

// Queues returns the tile queues in allocation order.
func (p *Program) Queues() []*TileQueue {
	return append([]*TileQueue(nil), p.order...)
}

// Queue returns the tile queue at the given index, or nil.
func (p *Program) Queue(index int) *TileQueue {
	return p.queues[index]
}

// Kernels returns the kernel instances in binding order.
func (p *Program) Kernels() []*Kernel {
	return append([]*Kernel(nil), p.kernels...)
}

// KernelsWithRole returns the kernels bound for one engine role.
func (p *Program) KernelsWithRole(role KernelRole) (matched []*Kernel) {
	for _, k := range p.kernels {
		if k.Role == role {
			matched = append(matched, k)
		}
	}
	return
}

// SetPatchFunc installs the patch callback. Builders call it once, at the end
// of construction, with a closure over the kernel handles they bound.
func (p *Program) SetPatchFunc(fn PatchFunc) {
	p.patch = fn
}

// Patch points the Program's reader/writer kernels at new buffer addresses,
// keeping every tile count and offset untouched. The new buffers must have
// shapes compatible with the Program's original tile layout -- that is the
// caller's guarantee, not re-checked here.
//
// A Program built with no kernels (a zero-tile operation) patches trivially.
func (p *Program) Patch(inputs, outputs []tilegrid.Buffer) error {
	if p.patch == nil {
		return nil
	}
	return p.patch(inputs, outputs)
}
