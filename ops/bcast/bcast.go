// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package bcast builds the execution program for the element-wise broadcast
// binary operation: C = A op B where one of B's extents collapses and is
// reused ("broadcast") across A's full extent.
//
// Only the scheduling lives here -- which core processes which tiles, which
// queues and kernels are bound, and the per-core runtime arguments. The
// arithmetic itself is in the compute kernel sources, selected by the
// BCAST_OP/BCAST_DIM defines attached to the compute kernel instances.
package bcast

import (
	"github.com/gomlx/tilegrid"
	"github.com/gomlx/tilegrid/tiles"
)

//go:generate go tool enumer -type=OpMath,OpDim,Strategy -output=gen_bcast_enumer.go bcast.go

// OpMath selects the broadcast arithmetic variant.
type OpMath int

const (
	OpAdd OpMath = iota
	OpSub
	OpMul
)

// OpDim selects which axes of operand B collapse.
type OpDim int

const (
	// DimH broadcasts along height: B is a single tile-row.
	DimH OpDim = iota

	// DimW broadcasts along width: B is a single tile-column.
	DimW

	// DimHW broadcasts along both: B's height/width extent collapses and
	// is reused across A's full extent.
	DimHW
)

// Strategy is the parallelization picked for one invocation.
type Strategy int

const (
	StrategySingleCore Strategy = iota
	StrategyMultiCoreH
	StrategyMultiCoreW
	StrategyMultiCoreHW
)

// kernelDefines returns the source defines selecting the arithmetic variant
// and broadcast axis of the compute kernel.
func kernelDefines(op OpMath, dim OpDim) map[string]string {
	mathDefine := map[OpMath]string{
		OpAdd: "add_tiles_bcast",
		OpSub: "sub_tiles_bcast",
		OpMul: "mul_tiles_bcast",
	}
	dimDefine := map[OpDim]string{
		DimH:  "BroadcastType::ROW",
		DimW:  "BroadcastType::COL",
		DimHW: "BroadcastType::SCALAR",
	}
	return map[string]string{
		"BCAST_OP":  mathDefine[op],
		"BCAST_DIM": dimDefine[dim],
	}
}

// ChooseStrategy picks the parallelization for the operation from the shape
// of operand A: any operation larger than one tile goes multi-core.
func ChooseStrategy(a tilegrid.Tensor, dim OpDim) (Strategy, error) {
	numTiles, err := tiles.CountForShape(a.Shape())
	if err != nil {
		return 0, err
	}
	if numTiles <= 1 {
		return StrategySingleCore, nil
	}
	switch dim {
	case DimH:
		return StrategyMultiCoreH, nil
	case DimW:
		return StrategyMultiCoreW, nil
	default:
		return StrategyMultiCoreHW, nil
	}
}
