// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package program_test

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/tilegrid"
	"github.com/gomlx/tilegrid/gridtest"
	"github.com/gomlx/tilegrid/program"
	"github.com/gomlx/tilegrid/tiles"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestAddTileQueue(t *testing.T) {
	dev := gridtest.NewDevice(2, 2)
	prog := program.New(dev)
	cores := dev.ComputeGridSize().FirstCores(4)

	q, err := prog.AddTileQueue(0, cores, 2, dtypes.Float32)
	require.NoError(t, err)
	require.Equal(t, 0, q.Index)
	require.Equal(t, 2, q.CapacityTiles)
	require.Equal(t, 2*tiles.SizeInBytes(dtypes.Float32), q.ByteSize)
	require.Equal(t, q, prog.Queue(0))

	// Reusing an index is a caller bug.
	_, err = prog.AddTileQueue(0, cores, 2, dtypes.Float32)
	require.True(t, errors.Is(err, tilegrid.ErrPrecondition))

	_, err = prog.AddTileQueue(1, cores, 0, dtypes.Float32)
	require.True(t, errors.Is(err, tilegrid.ErrPrecondition))
}

func TestAddTileQueueL1Budget(t *testing.T) {
	// Budget of 3 tiles of float32 per core: a 2-tile queue fits, a second
	// does not, and the failed attempt must not have committed storage.
	dev := gridtest.NewDevice(2, 1).WithL1Size(3 * tiles.SizeInBytes(dtypes.Float32))
	prog := program.New(dev)
	cores := dev.ComputeGridSize().FirstCores(2)

	_, err := prog.AddTileQueue(0, cores, 2, dtypes.Float32)
	require.NoError(t, err)

	_, err = prog.AddTileQueue(1, cores, 2, dtypes.Float32)
	require.True(t, errors.Is(err, tilegrid.ErrResourceExhausted))

	_, err = prog.AddTileQueue(1, cores, 1, dtypes.Float32)
	require.NoError(t, err)
}

func TestKernelRuntimeArgs(t *testing.T) {
	dev := gridtest.NewDevice(2, 1)
	prog := program.New(dev)
	grid := dev.ComputeGridSize()
	k := prog.AddKernel(program.RoleReader, "reader", grid.FirstCores(1), []uint32{7}, nil)

	core := grid.CoreAt(0)
	require.NoError(t, k.SetRuntimeArgs(core, []uint32{1, 2, 3}))
	args, found := k.RuntimeArgs(core)
	require.True(t, found)
	require.Equal(t, []uint32{1, 2, 3}, args)

	// RuntimeArgs hands out a copy; mutating it must not leak back.
	args[0] = 99
	args, _ = k.RuntimeArgs(core)
	require.Equal(t, []uint32{1, 2, 3}, args)

	// A core outside the kernel's range is a caller bug.
	err := k.SetRuntimeArgs(grid.CoreAt(1), []uint32{1})
	require.True(t, errors.Is(err, tilegrid.ErrPrecondition))

	_, found = k.RuntimeArgs(grid.CoreAt(1))
	require.False(t, found)
}

func TestKernelsWithRole(t *testing.T) {
	dev := gridtest.NewDevice(2, 2)
	prog := program.New(dev)
	all := dev.ComputeGridSize().FirstCores(4)
	reader := prog.AddKernel(program.RoleReader, "r", all, nil, nil)
	c1 := prog.AddKernel(program.RoleCompute, "c", all, []uint32{1}, nil)
	c2 := prog.AddKernel(program.RoleCompute, "c", all, []uint32{2}, nil)

	require.Equal(t, []*program.Kernel{reader}, prog.KernelsWithRole(program.RoleReader))
	require.Equal(t, []*program.Kernel{c1, c2}, prog.KernelsWithRole(program.RoleCompute))
	require.Empty(t, prog.KernelsWithRole(program.RoleWriter))
	require.Len(t, prog.Kernels(), 3)
}

func TestPatchWithoutCallback(t *testing.T) {
	prog := program.New(gridtest.NewDevice(1, 1))
	require.NoError(t, prog.Patch(nil, nil))
}

func TestKernelRoleStrings(t *testing.T) {
	require.Equal(t, "Reader", program.RoleReader.String())
	require.Equal(t, "Writer", program.RoleWriter.String())
	require.Equal(t, "Compute", program.RoleCompute.String())
	role, err := program.KernelRoleString("compute")
	require.NoError(t, err)
	require.Equal(t, program.RoleCompute, role)
}
