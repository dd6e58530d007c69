// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package coords models positions and rectangular regions on the 2-D compute
// core grid.
//
// Cores are enumerated in row-major order, `i -> (x=i/rows, y=i%rows)`: the
// enumeration walks each column of the grid top to bottom before moving to
// the next column. This order is load-bearing for the schedulers built on
// top: per-core tile windows are assigned in enumeration order so that core
// order matches the output tensor's tile layout.
package coords

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gomlx/exceptions"
)

// CoreCoord is the (x, y) position of one core on the grid: x is the column,
// y the row.
type CoreCoord struct {
	X, Y int
}

// String implements fmt.Stringer.
func (c CoreCoord) String() string {
	return fmt.Sprintf("(x=%d, y=%d)", c.X, c.Y)
}

// GridSize holds the dimensions of the core grid: X columns by Y rows.
type GridSize struct {
	X, Y int
}

// MakeGrid returns a GridSize with the given number of columns and rows.
// It panics if either dimension is not positive -- an invalid grid is a bug
// in the caller, not a recoverable condition.
func MakeGrid(cols, rows int) GridSize {
	if cols <= 0 || rows <= 0 {
		exceptions.Panicf("coords.MakeGrid(%d, %d): grid dimensions must be positive", cols, rows)
	}
	return GridSize{X: cols, Y: rows}
}

// NumCores returns the total number of cores on the grid.
func (g GridSize) NumCores() int {
	return g.X * g.Y
}

// CoreAt returns the i-th core in enumeration order.
// It panics if i is out of the range [0, NumCores()).
func (g GridSize) CoreAt(i int) CoreCoord {
	if i < 0 || i >= g.NumCores() {
		exceptions.Panicf("coords: core index %d out of range for grid %s", i, g)
	}
	return CoreCoord{X: i / g.Y, Y: i % g.Y}
}

// String implements fmt.Stringer.
func (g GridSize) String() string {
	return fmt.Sprintf("%dx%d", g.X, g.Y)
}

// Span returns the set of cores with enumeration indices in [start, end).
// At most three rectangles are needed: a partial leading column, a block of
// full columns and a partial trailing column.
//
// It panics if the span does not fit the grid.
func (g GridSize) Span(start, end int) CoreRangeSet {
	if start < 0 || end < start || end > g.NumCores() {
		exceptions.Panicf("coords: span [%d, %d) out of range for grid %s", start, end, g)
	}
	if start == end {
		return CoreRangeSet{}
	}
	first, last := g.CoreAt(start), g.CoreAt(end-1)
	if first.X == last.X {
		return NewCoreRangeSet(MakeCoreRange(first, last))
	}
	var ranges []CoreRange
	fullColsStart := first.X
	if first.Y > 0 {
		ranges = append(ranges, MakeCoreRange(first, CoreCoord{X: first.X, Y: g.Y - 1}))
		fullColsStart++
	}
	fullColsEnd := last.X
	if last.Y == g.Y-1 {
		fullColsEnd++
	}
	if fullColsStart < fullColsEnd {
		ranges = append(ranges, MakeCoreRange(
			CoreCoord{X: fullColsStart, Y: 0},
			CoreCoord{X: fullColsEnd - 1, Y: g.Y - 1}))
	}
	if last.Y < g.Y-1 {
		ranges = append(ranges, MakeCoreRange(CoreCoord{X: last.X, Y: 0}, last))
	}
	return NewCoreRangeSet(ranges...)
}

// FirstCores returns the set covering the first n cores in enumeration order.
func (g GridSize) FirstCores(n int) CoreRangeSet {
	return g.Span(0, n)
}

// CoreRange is a rectangle of cores, both corners inclusive.
type CoreRange struct {
	Start, End CoreCoord
}

// MakeCoreRange returns the rectangle with the given corners. It panics if
// the corners are out of order or negative.
func MakeCoreRange(start, end CoreCoord) CoreRange {
	if start.X < 0 || start.Y < 0 || end.X < start.X || end.Y < start.Y {
		exceptions.Panicf("coords.MakeCoreRange(%s, %s): invalid corners", start, end)
	}
	return CoreRange{Start: start, End: end}
}

// Contains reports whether the core falls inside the rectangle.
func (r CoreRange) Contains(c CoreCoord) bool {
	return c.X >= r.Start.X && c.X <= r.End.X && c.Y >= r.Start.Y && c.Y <= r.End.Y
}

// NumCores returns the number of cores in the rectangle.
func (r CoreRange) NumCores() int {
	return (r.End.X - r.Start.X + 1) * (r.End.Y - r.Start.Y + 1)
}

// String implements fmt.Stringer.
func (r CoreRange) String() string {
	return fmt.Sprintf("[%s - %s]", r.Start, r.End)
}

// CoreRangeSet is a union of core rectangles. The zero value is the empty
// set. Values are immutable once built.
type CoreRangeSet struct {
	ranges []CoreRange
}

// NewCoreRangeSet returns the union of the given rectangles. Rectangles are
// assumed disjoint -- the builders in this module only ever produce disjoint
// ones.
func NewCoreRangeSet(ranges ...CoreRange) CoreRangeSet {
	return CoreRangeSet{ranges: slices.Clone(ranges)}
}

// IsEmpty reports whether the set has no cores.
func (s CoreRangeSet) IsEmpty() bool {
	return len(s.ranges) == 0
}

// Ranges returns a copy of the rectangles of the set.
func (s CoreRangeSet) Ranges() []CoreRange {
	return slices.Clone(s.ranges)
}

// NumCores returns the total number of cores in the set.
func (s CoreRangeSet) NumCores() (count int) {
	for _, r := range s.ranges {
		count += r.NumCores()
	}
	return
}

// Contains reports whether the core is a member of any rectangle of the set.
func (s CoreRangeSet) Contains(c CoreCoord) bool {
	for _, r := range s.ranges {
		if r.Contains(c) {
			return true
		}
	}
	return false
}

// Cores returns every core of the set, rectangle by rectangle, each rectangle
// enumerated column by column.
func (s CoreRangeSet) Cores() []CoreCoord {
	cores := make([]CoreCoord, 0, s.NumCores())
	for _, r := range s.ranges {
		for x := r.Start.X; x <= r.End.X; x++ {
			for y := r.Start.Y; y <= r.End.Y; y++ {
				cores = append(cores, CoreCoord{X: x, Y: y})
			}
		}
	}
	return cores
}

// String implements fmt.Stringer.
func (s CoreRangeSet) String() string {
	if s.IsEmpty() {
		return "{}"
	}
	parts := make([]string, len(s.ranges))
	for i, r := range s.ranges {
		parts[i] = r.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
