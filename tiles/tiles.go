// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package tiles holds the tile geometry constants and the tile arithmetic
// shared by the program builders.
//
// A tile is the fixed 32x32 block of elements that is the atomic unit of
// data movement and compute on the grid: every size in this module is
// expressed in tile counts, never raw elements.
package tiles

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/tilegrid"
	"github.com/pkg/errors"
)

const (
	// Width of a tile, in elements.
	Width = 32

	// Height of a tile, in elements.
	Height = 32

	// HW is the number of elements in one tile.
	HW = Width * Height
)

// SizeInBytes returns the byte size of a single tile of the given element
// format.
func SizeInBytes(dtype dtypes.DType) uint64 {
	return uint64(HW * dtype.Size())
}

// CheckAligned returns an error if the shape's height or width is not a
// whole number of tiles. Misaligned shapes are a caller bug
// (tilegrid.ErrPrecondition): this module never pads.
func CheckAligned(s tilegrid.Shape) error {
	if s.H%Height != 0 || s.W%Width != 0 {
		return errors.Wrapf(tilegrid.ErrPrecondition,
			"shape %s is not tile-aligned, H and W must be multiples of %dx%d", s, Height, Width)
	}
	return nil
}

// CountForShape returns the total number of tiles of the shape's logical
// layout: batch*channel * height-tiles * width-tiles.
func CountForShape(s tilegrid.Shape) (int, error) {
	if err := CheckAligned(s); err != nil {
		return 0, err
	}
	return s.N * s.C * (s.H / Height) * (s.W / Width), nil
}
