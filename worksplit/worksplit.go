// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package worksplit partitions a tile count over the core grid.
//
// The split is a pure function of (grid, totalTiles): no randomness, no
// hidden state, so the same inputs always produce the same per-core
// assignment. Tiles are spread over at most two groups of cores whose
// per-core counts differ by at most one; when the total does not divide
// evenly, the remainder is concentrated in group 1, the first cores in
// enumeration order, each taking one extra tile.
package worksplit

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/tilegrid/coords"
)

// WorkGroup is a set of cores that all process the same number of tiles.
type WorkGroup struct {
	Cores        coords.CoreRangeSet
	TilesPerCore int
}

// IsEmpty reports whether the group has no cores.
func (g WorkGroup) IsEmpty() bool {
	return g.Cores.IsEmpty()
}

// Split is the result of dividing a tile count over a grid.
//
// Invariants: Group1 and Group2 are disjoint, their union is AllCores,
// and Group1.Cores.NumCores()*Group1.TilesPerCore +
// Group2.Cores.NumCores()*Group2.TilesPerCore equals the total tile count.
type Split struct {
	// Grid the split was computed for.
	Grid coords.GridSize

	// NumCores actually assigned work: min(grid cores, total tiles). Cores
	// beyond NumCores stay idle, they are never allocated for zero work.
	NumCores int

	// AllCores is the union of both groups: the first NumCores cores in
	// enumeration order.
	AllCores coords.CoreRangeSet

	// Group1 holds the first totalTiles%NumCores cores, each processing
	// one tile more than Group2. Empty when the division is exact.
	Group1 WorkGroup

	// Group2 holds the remaining cores, each processing
	// totalTiles/NumCores tiles. Empty when every core takes an extra
	// tile (never happens: the remainder is < NumCores).
	Group2 WorkGroup
}

// SplitToCores divides totalTiles over the cores of the grid.
// totalTiles == 0 yields an empty split with no active cores.
// It panics on negative totalTiles -- for any non-negative input it cannot
// fail.
func SplitToCores(grid coords.GridSize, totalTiles int) Split {
	if totalTiles < 0 {
		exceptions.Panicf("worksplit.SplitToCores(%s, %d): negative tile count", grid, totalTiles)
	}
	split := Split{Grid: grid}
	if totalTiles == 0 {
		return split
	}
	split.NumCores = min(grid.NumCores(), totalTiles)
	split.AllCores = grid.FirstCores(split.NumCores)
	base := totalTiles / split.NumCores
	remainder := totalTiles % split.NumCores
	if remainder > 0 {
		split.Group1 = WorkGroup{
			Cores:        grid.FirstCores(remainder),
			TilesPerCore: base + 1,
		}
	}
	if remainder < split.NumCores {
		split.Group2 = WorkGroup{
			Cores:        grid.Span(remainder, split.NumCores),
			TilesPerCore: base,
		}
	}
	return split
}

// TilesForCore returns the tile count assigned to the core and whether the
// core belongs to any group. Group membership is answered by lookup on the
// ranges built by SplitToCores, it is never re-derived.
func (s Split) TilesForCore(core coords.CoreCoord) (int, bool) {
	if s.Group1.Cores.Contains(core) {
		return s.Group1.TilesPerCore, true
	}
	if s.Group2.Cores.Contains(core) {
		return s.Group2.TilesPerCore, true
	}
	return 0, false
}
