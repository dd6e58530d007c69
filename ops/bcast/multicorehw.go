// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package bcast

import (
	"github.com/gomlx/tilegrid"
	"github.com/gomlx/tilegrid/program"
	"github.com/gomlx/tilegrid/tiles"
	"github.com/gomlx/tilegrid/worksplit"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Queue slot numbers are fixed per operation: input operands count up from 0,
// output operands start at index 16.
const (
	queueSrcA   = 0
	queueSrcB   = 1
	queueOutput = 16

	// Two tiles per queue: double buffering between data movement and
	// compute.
	queueCapacityTiles = 2
)

// Kernel sources, compiled by the external kernel compiler. Only their
// argument contracts matter here.
const (
	readerKernelName  = "kernels/dataflow/reader_bcast_hw_interleaved_partitioned.cpp"
	writerKernelName  = "kernels/dataflow/writer_unary_interleaved_start_id.cpp"
	computeKernelName = "kernels/compute/bcast_hw.cpp"
)

// Address-bearing runtime-argument slots, the only ones Patch rewrites.
const (
	readerArgSrcAAddr = 0
	readerArgSrcBAddr = 4
	writerArgDstAddr  = 0
)

// Build constructs the program for C = A op B broadcast along dim, picking
// the parallelization from A's shape. Only the multi-core HW strategy is
// implemented so far.
func Build(a, b, output tilegrid.Tensor, op OpMath, dim OpDim) (*program.Program, error) {
	strategy, err := ChooseStrategy(a, dim)
	if err != nil {
		return nil, err
	}
	switch strategy {
	case StrategyMultiCoreHW:
		return MultiCoreHW(a, b, output, op)
	default:
		return nil, errors.Errorf("bcast: %s parallelization not implemented", strategy)
	}
}

// MultiCoreHW builds the program for C = A op B with B broadcast along
// height and width, spread over the whole core grid.
//
// Every active core owns a disjoint contiguous window of A's (and C's) tile
// range, assigned in row-major core order so that core order matches the
// output's tile layout; cores are fully independent, there is no cross-core
// synchronization. Operand B is re-read from its start on every core (and
// rewound at every per-batch stride), so its total tile count is shared by
// all cores rather than split.
//
// The returned Program carries a patch callback that re-points the reader
// and writer at new buffer addresses without rebuilding anything; use it to
// reuse the Program across invocations with identical shapes.
func MultiCoreHW(a, b, output tilegrid.Tensor, op OpMath) (*program.Program, error) {
	ashape, bshape := a.Shape(), b.Shape()
	numTiles, err := tiles.CountForShape(ashape)
	if err != nil {
		return nil, err
	}
	if err = tiles.CheckAligned(bshape); err != nil {
		return nil, err
	}
	if a.Buffer() == nil || b.Buffer() == nil {
		return nil, errors.Wrapf(tilegrid.ErrPrecondition,
			"bcast: input tensors must be allocated on device")
	}
	if output.Buffer() == nil {
		return nil, errors.Wrapf(tilegrid.ErrPrecondition,
			"bcast: output buffer must be allocated on device")
	}

	nc := ashape.N * ashape.C
	ht := ashape.H / tiles.Height
	wt := ashape.W / tiles.Width
	numBTiles := nc * bshape.H * bshape.W / tiles.HW
	var bnc1 uint32
	if bshape.N*bshape.C == 1 {
		// B is scalar-like: the reader reuses a single tile for the
		// whole operation instead of advancing.
		bnc1 = 1
	}

	device := a.Device()
	grid := device.ComputeGridSize()
	split := worksplit.SplitToCores(grid, numTiles)
	prog := program.New(device)
	klog.V(1).Infof("bcast %s/%s: program %s, %d tiles over %d cores of grid %s (group1 %d cores x %d tiles, group2 %d cores x %d tiles)",
		op, DimHW, prog.ID(), numTiles, split.NumCores, grid,
		split.Group1.Cores.NumCores(), split.Group1.TilesPerCore,
		split.Group2.Cores.NumCores(), split.Group2.TilesPerCore)
	if split.NumCores == 0 {
		// Zero-tile operation: a valid, trivially empty program.
		return prog, nil
	}

	dtype := a.DType()
	for _, index := range []int{queueSrcA, queueSrcB, queueOutput} {
		if _, err = prog.AddTileQueue(index, split.AllCores, queueCapacityTiles, dtype); err != nil {
			return nil, err
		}
	}

	reader := prog.AddKernel(program.RoleReader, readerKernelName, split.AllCores,
		[]uint32{
			uint32(dtype),
			boolArg(a.Buffer().Type().IsDRAM()),
			boolArg(b.Buffer().Type().IsDRAM()),
		}, nil)
	writer := prog.AddKernel(program.RoleWriter, writerKernelName, split.AllCores,
		[]uint32{
			queueOutput,
			uint32(dtype),
			boolArg(output.Buffer().Type().IsDRAM()),
		}, nil)

	// The math engine bakes its per-core tile count into the kernel variant,
	// one variant per work group; the data-movement engines take the count
	// as a runtime argument, so a single variant covers all active cores.
	defines := kernelDefines(op, DimHW)
	for _, group := range []worksplit.WorkGroup{split.Group1, split.Group2} {
		if group.IsEmpty() {
			continue
		}
		prog.AddKernel(program.RoleCompute, computeKernelName, group.Cores,
			[]uint32{
				1,                          // batch factor
				1,                          // height tiles, ignored
				uint32(group.TilesPerCore), // width tiles per core
			}, defines)
	}

	// Per-batch tile stride: the reader rewinds operand B to its start
	// whenever the output offset crosses a multiple of it.
	batchStrideTiles := uint32(ht * wt)
	nextTile := 0
	for i := 0; i < split.NumCores; i++ {
		core := grid.CoreAt(i)
		tilesPerCore, found := split.TilesForCore(core)
		if !found {
			return nil, errors.Wrapf(tilegrid.ErrPrecondition,
				"bcast: core %s is in no work group of the split over grid %s", core, grid)
		}
		if err = reader.SetRuntimeArgs(core, []uint32{
			a.Buffer().Address(),  // 0
			0,                     // 1
			0,                     // 2
			uint32(tilesPerCore),  // 3
			b.Buffer().Address(),  // 4
			0,                     // 5
			0,                     // 6
			uint32(numBTiles),     // 7
			uint32(tilesPerCore),  // 8
			1,                     // 9
			1,                     // 10
			uint32(tilesPerCore),  // 11
			bnc1,                  // 12
			uint32(nextTile),      // 13
			batchStrideTiles,      // 14
		}); err != nil {
			return nil, err
		}
		if err = writer.SetRuntimeArgs(core, []uint32{
			output.Buffer().Address(),
			uint32(tilesPerCore),
			uint32(nextTile),
		}); err != nil {
			return nil, err
		}
		klog.V(2).Infof("bcast: core %s takes tiles [%d, %d)", core, nextTile, nextTile+tilesPerCore)
		nextTile += tilesPerCore
	}

	numCores := split.NumCores
	prog.SetPatchFunc(func(inputs, outputs []tilegrid.Buffer) error {
		if len(inputs) != 2 || len(outputs) != 1 {
			return errors.Wrapf(tilegrid.ErrPrecondition,
				"bcast patch: want 2 input and 1 output buffers, got %d and %d",
				len(inputs), len(outputs))
		}
		srcA, srcB, dst := inputs[0], inputs[1], outputs[0]
		for i := 0; i < numCores; i++ {
			core := grid.CoreAt(i)
			args, found := reader.RuntimeArgs(core)
			if !found {
				return errors.Wrapf(tilegrid.ErrPrecondition,
					"bcast patch: no reader runtime args for core %s", core)
			}
			args[readerArgSrcAAddr] = srcA.Address()
			args[readerArgSrcBAddr] = srcB.Address()
			if err := reader.SetRuntimeArgs(core, args); err != nil {
				return err
			}
			args, found = writer.RuntimeArgs(core)
			if !found {
				return errors.Wrapf(tilegrid.ErrPrecondition,
					"bcast patch: no writer runtime args for core %s", core)
			}
			args[writerArgDstAddr] = dst.Address()
			if err := writer.SetRuntimeArgs(core, args); err != nil {
				return err
			}
		}
		return nil
	})
	return prog, nil
}

func boolArg(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
