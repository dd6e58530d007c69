// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package program

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/tilegrid/coords"
)

// TileQueue is a bounded FIFO of tiles ("circular buffer") local to each core
// of its range, mediating the producer-consumer handoff between the engines
// of that core. The full/empty signaling is provided by the engine runtime;
// this package only reserves the storage and fixes the index producers and
// consumers rendezvous on.
//
// A capacity of two tiles gives one tile of overlap between data movement and
// compute (double buffering).
type TileQueue struct {
	// Index is the queue slot number, fixed per operation. Channels never
	// share indices within a Program.
	Index int

	// Cores the queue is allocated on.
	Cores coords.CoreRangeSet

	// CapacityTiles is the bound of the FIFO, in tiles.
	CapacityTiles int

	// ByteSize reserved on each core: CapacityTiles tiles of DType.
	ByteSize uint64

	// DType is the element format of the tiles.
	DType dtypes.DType
}
