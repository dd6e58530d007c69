// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package bcast_test

import (
	"fmt"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/tilegrid"
	"github.com/gomlx/tilegrid/gridtest"
	"github.com/gomlx/tilegrid/ops/bcast"
	"github.com/janpfeifer/must"
)

// Build a program for A + B with B broadcast along height and width, then
// re-point it at new buffers instead of rebuilding.
func Example() {
	dev := gridtest.NewDevice(4, 4)
	ashape := tilegrid.MakeShape(2, 1, 64, 64)
	bshape := tilegrid.MakeShape(1, 1, 32, 32)
	a := gridtest.NewTensor(dev, ashape, dtypes.Float32, gridtest.NewBuffer(0x1000, tilegrid.DRAM))
	b := gridtest.NewTensor(dev, bshape, dtypes.Float32, gridtest.NewBuffer(0x2000, tilegrid.DRAM))
	output := gridtest.NewTensor(dev, ashape, dtypes.Float32, gridtest.NewBuffer(0x3000, tilegrid.DRAM))

	prog := must.M1(bcast.MultiCoreHW(a, b, output, bcast.OpAdd))
	fmt.Printf("queues: %d, kernels: %d\n", len(prog.Queues()), len(prog.Kernels()))

	// Next invocation, same shapes, new buffers: patch, don't rebuild.
	must.M(prog.Patch(
		[]tilegrid.Buffer{gridtest.NewBuffer(0x7000, tilegrid.DRAM), gridtest.NewBuffer(0x8000, tilegrid.DRAM)},
		[]tilegrid.Buffer{gridtest.NewBuffer(0x9000, tilegrid.DRAM)}))
	fmt.Println("patched")

	// Output:
	// queues: 3, kernels: 3
	// patched
}
