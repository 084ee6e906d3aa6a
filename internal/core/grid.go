package core

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds reports a coordinate outside the grid.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// Grid stores a fixed-size 2D grid of values in row-major order.
type Grid[T any] struct {
	W, H int
	data []T
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid[T any](w, h int) *Grid[T] {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid[T]{W: w, H: h, data: make([]T, w*h)}
}

// Cells exposes the backing slice so callers can read values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.W + x }

// In reports whether (x, y) lies inside the grid.
func (g *Grid[T]) In(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Get returns the value at (x, y).
func (g *Grid[T]) Get(x, y int) (T, error) {
	if !g.In(x, y) {
		var zero T
		return zero, fmt.Errorf("get (%d,%d) on %dx%d grid: %w", x, y, g.W, g.H, ErrOutOfBounds)
	}
	return g.data[g.Index(x, y)], nil
}

// Set stores v at (x, y).
func (g *Grid[T]) Set(x, y int, v T) error {
	if !g.In(x, y) {
		return fmt.Errorf("set (%d,%d) on %dx%d grid: %w", x, y, g.W, g.H, ErrOutOfBounds)
	}
	g.data[g.Index(x, y)] = v
	return nil
}

// At returns the value at (x, y) without a bounds check. Callers must have
// checked In first.
func (g *Grid[T]) At(x, y int) T { return g.data[y*g.W+x] }

// Put is the unchecked counterpart of Set.
func (g *Grid[T]) Put(x, y int, v T) { g.data[y*g.W+x] = v }

// Reset fills every cell with v.
func (g *Grid[T]) Reset(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// CopyFrom overwrites g with the contents of src. Both grids must share
// dimensions.
func (g *Grid[T]) CopyFrom(src *Grid[T]) {
	copy(g.data, src.data)
}
