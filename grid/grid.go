// Package grid provides a plain array-backed container over the same
// bounded tile space as package tileset, holding one value of any type per
// tile. Flips and rotations are performed by element swaps. The container
// consumes only the tile index relation and never touches a bit-packed
// representation.
package grid

import (
	"github.com/wainwrightmark/geometrid-sub000/tile"
)

// Grid holds one T per tile of a fixed WIDTH x HEIGHT space.
type Grid[T any] struct {
	dims  tile.Dims
	cells []T
}

// New returns a zero-filled grid of the given extent.
func New[T any](dims tile.Dims) *Grid[T] {
	return &Grid[T]{
		dims:  dims,
		cells: make([]T, dims.Size()),
	}
}

// Fill builds a grid by evaluating f for every tile in row-major order.
func Fill[T any](dims tile.Dims, f func(tile.Tile) T) *Grid[T] {
	g := New[T](dims)
	for i := range g.cells {
		g.cells[i] = f(tile.Tile(i))
	}
	return g
}

// Dims returns the grid extent.
func (g *Grid[T]) Dims() tile.Dims { return g.dims }

// Get returns the value at t.
func (g *Grid[T]) Get(t tile.Tile) T {
	return g.cells[t]
}

// At returns the value at (x, y).
func (g *Grid[T]) At(x, y uint8) T {
	return g.cells[g.dims.Index(tile.Coord{X: x, Y: y})]
}

// Set stores v at t.
func (g *Grid[T]) Set(t tile.Tile, v T) {
	g.cells[t] = v
}

// Swap exchanges the values at a and b.
func (g *Grid[T]) Swap(a, b tile.Tile) {
	g.cells[a], g.cells[b] = g.cells[b], g.cells[a]
}

// FlipHorizontal mirrors every row in place, swapping column x with column
// Width-1-x.
func (g *Grid[T]) FlipHorizontal() {
	w, h := g.dims.Width, g.dims.Height
	for y := uint8(0); y < h; y++ {
		for x := uint8(0); x < w/2; x++ {
			a := g.dims.Index(tile.Coord{X: x, Y: y})
			b := g.dims.Index(tile.Coord{X: w - 1 - x, Y: y})
			g.Swap(a, b)
		}
	}
}

// FlipVertical mirrors every column in place, swapping row y with row
// Height-1-y.
func (g *Grid[T]) FlipVertical() {
	w, h := g.dims.Width, g.dims.Height
	for y := uint8(0); y < h/2; y++ {
		for x := uint8(0); x < w; x++ {
			a := g.dims.Index(tile.Coord{X: x, Y: y})
			b := g.dims.Index(tile.Coord{X: x, Y: h - 1 - y})
			g.Swap(a, b)
		}
	}
}

// RotateQuarter rotates a square grid a quarter turn clockwise in place,
// using the four-way cycle swap. It reports false and leaves the grid
// untouched when the grid is not square.
func (g *Grid[T]) RotateQuarter() bool {
	n := g.dims.Width
	if n != g.dims.Height {
		return false
	}

	for y := uint8(0); y < n/2; y++ {
		for x := y; x < n-1-y; x++ {
			a := g.dims.Index(tile.Coord{X: x, Y: y})
			b := g.dims.Index(tile.Coord{X: n - 1 - y, Y: x})
			c := g.dims.Index(tile.Coord{X: n - 1 - x, Y: n - 1 - y})
			d := g.dims.Index(tile.Coord{X: y, Y: n - 1 - x})

			g.cells[a], g.cells[b], g.cells[c], g.cells[d] = g.cells[d], g.cells[a], g.cells[b], g.cells[c]
		}
	}
	return true
}
