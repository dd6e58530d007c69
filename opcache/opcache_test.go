// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package opcache_test

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/tilegrid"
	"github.com/gomlx/tilegrid/gridtest"
	"github.com/gomlx/tilegrid/opcache"
	"github.com/gomlx/tilegrid/ops/bcast"
	"github.com/gomlx/tilegrid/program"
	"github.com/stretchr/testify/require"
)

func bcastKey(dev *gridtest.Device, op bcast.OpMath, a, b tilegrid.Shape) opcache.Key {
	return opcache.Key{
		Op:    "bcast." + op.String() + "/" + bcast.DimHW.String(),
		A:     a,
		B:     b,
		DType: dtypes.Float32,
		Grid:  dev.ComputeGridSize(),
	}
}

func TestGetOrBuild(t *testing.T) {
	dev := gridtest.NewDevice(2, 1)
	ashape := tilegrid.MakeShape(1, 1, 32, 160)
	bshape := tilegrid.MakeShape(1, 1, 32, 32)
	build := func(addrA, addrB, addrOut uint32) func() (*program.Program, error) {
		return func() (*program.Program, error) {
			a := gridtest.NewTensor(dev, ashape, dtypes.Float32, gridtest.NewBuffer(addrA, tilegrid.DRAM))
			b := gridtest.NewTensor(dev, bshape, dtypes.Float32, gridtest.NewBuffer(addrB, tilegrid.DRAM))
			out := gridtest.NewTensor(dev, ashape, dtypes.Float32, gridtest.NewBuffer(addrOut, tilegrid.DRAM))
			return bcast.MultiCoreHW(a, b, out, bcast.OpAdd)
		}
	}

	cache := opcache.New()
	key := bcastKey(dev, bcast.OpAdd, ashape, bshape)
	prog, hit, err := cache.GetOrBuild(key, build(0x1000, 0x2000, 0x3000))
	require.NoError(t, err)
	require.False(t, hit)
	require.Equal(t, 1, cache.Len())

	// Same key: the cached Program comes back, and a patch points it at the
	// new invocation's buffers without rebuilding.
	again, hit, err := cache.GetOrBuild(key, build(0x4000, 0x5000, 0x6000))
	require.NoError(t, err)
	require.True(t, hit)
	require.Same(t, prog, again)
	require.NoError(t, again.Patch(
		[]tilegrid.Buffer{gridtest.NewBuffer(0x4000, tilegrid.DRAM), gridtest.NewBuffer(0x5000, tilegrid.DRAM)},
		[]tilegrid.Buffer{gridtest.NewBuffer(0x6000, tilegrid.DRAM)}))
	reader := again.KernelsWithRole(program.RoleReader)[0]
	args, found := reader.RuntimeArgs(dev.ComputeGridSize().CoreAt(0))
	require.True(t, found)
	require.Equal(t, uint32(0x4000), args[0])

	// A different op kind is a different program.
	_, hit, err = cache.GetOrBuild(bcastKey(dev, bcast.OpMul, ashape, bshape), build(0x1000, 0x2000, 0x3000))
	require.NoError(t, err)
	require.False(t, hit)
	require.Equal(t, 2, cache.Len())

	cache.Reset()
	require.Equal(t, 0, cache.Len())
}

func TestBuildErrorNotCached(t *testing.T) {
	dev := gridtest.NewDevice(2, 1)
	cache := opcache.New()
	key := bcastKey(dev, bcast.OpAdd, tilegrid.MakeShape(1, 1, 40, 64), tilegrid.MakeShape(1, 1, 32, 32))
	_, _, err := cache.GetOrBuild(key, func() (*program.Program, error) {
		a := gridtest.NewTensor(dev, tilegrid.MakeShape(1, 1, 40, 64), dtypes.Float32, gridtest.NewBuffer(1, tilegrid.DRAM))
		b := gridtest.NewTensor(dev, tilegrid.MakeShape(1, 1, 32, 32), dtypes.Float32, gridtest.NewBuffer(2, tilegrid.DRAM))
		out := gridtest.NewTensor(dev, tilegrid.MakeShape(1, 1, 40, 64), dtypes.Float32, gridtest.NewBuffer(3, tilegrid.DRAM))
		return bcast.MultiCoreHW(a, b, out, bcast.OpAdd)
	})
	require.Error(t, err)
	require.Equal(t, 0, cache.Len())
}
