// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package program

import (
	"maps"
	"slices"

	"github.com/gomlx/tilegrid"
	"github.com/gomlx/tilegrid/coords"
	"github.com/pkg/errors"
)

//go:generate go tool enumer -type=KernelRole -trimprefix=Role -output=gen_kernelrole_enumer.go kernel.go

// KernelRole selects which hardware engine of a core runs the kernel.
type KernelRole int

const (
	// RoleReader is the data-movement engine that brings tiles into the
	// on-core queues.
	RoleReader KernelRole = iota

	// RoleWriter is the data-movement engine that drains result tiles to
	// the destination buffer.
	RoleWriter

	// RoleCompute is the math engine consuming and producing tile queues.
	RoleCompute
)

// Kernel is one engine kernel instantiated over a range of cores.
//
// CompileTimeArgs are baked into the kernel variant when it is built and
// shared by every core of the range; they never change after construction.
// Runtime arguments vary per core and may be rewritten (by Program.Patch)
// without rebuilding anything.
type Kernel struct {
	Role  KernelRole
	Name  string
	Cores coords.CoreRangeSet

	// CompileTimeArgs of the kernel variant, fixed once per Program.
	CompileTimeArgs []uint32

	// Defines select source-level variants (e.g. the broadcast arithmetic
	// op); they are compile-time like CompileTimeArgs.
	Defines map[string]string

	runtimeArgs map[coords.CoreCoord][]uint32
}

// SetRuntimeArgs stores the per-core runtime arguments. The slice is copied.
// A core outside the kernel's range is a caller bug and returns a
// tilegrid.ErrPrecondition error.
func (k *Kernel) SetRuntimeArgs(core coords.CoreCoord, args []uint32) error {
	if !k.Cores.Contains(core) {
		return errors.Wrapf(tilegrid.ErrPrecondition,
			"core %s is outside the range %s of kernel %q", core, k.Cores, k.Name)
	}
	k.runtimeArgs[core] = slices.Clone(args)
	return nil
}

// RuntimeArgs returns a copy of the runtime arguments stored for the core,
// or false if none were set. Mutate the copy and store it back with
// SetRuntimeArgs.
func (k *Kernel) RuntimeArgs(core coords.CoreCoord) ([]uint32, bool) {
	args, found := k.runtimeArgs[core]
	if !found {
		return nil, false
	}
	return slices.Clone(args), true
}

func newKernel(role KernelRole, name string, cores coords.CoreRangeSet,
	compileTimeArgs []uint32, defines map[string]string) *Kernel {
	return &Kernel{
		Role:            role,
		Name:            name,
		Cores:           cores,
		CompileTimeArgs: slices.Clone(compileTimeArgs),
		Defines:         maps.Clone(defines),
		runtimeArgs:     make(map[coords.CoreCoord][]uint32),
	}
}
