// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package opcache caches built programs keyed by (operation kind, shapes,
// element format, grid), the combination that fully determines a program's
// structure.
//
// A cache hit hands back a Program whose kernels and tile windows are already
// computed; the caller only has to Patch it with the invocation's buffer
// addresses. This is what amortizes the build cost across repeated calls
// with the same shapes but different data locations.
package opcache

import (
	"sync"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/tilegrid"
	"github.com/gomlx/tilegrid/coords"
	"github.com/gomlx/tilegrid/program"
)

// Key identifies one program structure. Two invocations with equal keys can
// share a Program through Patch.
type Key struct {
	// Op is the operation kind, e.g. "bcast.OpAdd/DimHW".
	Op string

	// A and B are the operand shapes.
	A, B tilegrid.Shape

	// DType is the element format.
	DType dtypes.DType

	// Grid the program was scheduled on.
	Grid coords.GridSize
}

// Cache is a concurrency-safe program cache. The zero value is not usable,
// create one with New.
type Cache struct {
	mu       sync.Mutex
	programs map[Key]*program.Program
}

// New returns an empty Cache.
func New() *Cache {
	return &Cache{programs: make(map[Key]*program.Program)}
}

// GetOrBuild returns the cached Program for the key, building and caching it
// with build on a miss. hit tells which happened. On a hit the caller still
// owns patching the Program to the current buffer addresses.
//
// build runs under the cache lock: program construction is cheap relative to
// kernel compilation and this keeps concurrent callers from building the same
// key twice.
func (c *Cache) GetOrBuild(key Key, build func() (*program.Program, error)) (prog *program.Program, hit bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if prog, hit = c.programs[key]; hit {
		return prog, true, nil
	}
	prog, err = build()
	if err != nil {
		return nil, false, err
	}
	c.programs[key] = prog
	return prog, false, nil
}

// Len returns the number of cached programs.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.programs)
}

// Reset drops every cached program, e.g. when the device context is torn
// down.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.programs = make(map[Key]*program.Program)
}
