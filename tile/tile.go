// Package tile defines the index relation of a bounded WIDTH x HEIGHT grid:
// the bijection between a linear row-major tile index and a 2D coordinate,
// and neighbor lookups in the eight compass directions.
package tile

import "fmt"

// Tile is a linear row-major index into a bounded grid. The largest
// supported grid has 256 tiles, so every valid index fits in a byte.
type Tile uint8

// Coord is a 2D grid position. (0,0) is the north-west corner, x grows
// east, y grows south.
type Coord struct {
	X uint8
	Y uint8
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is one of the eight compass neighbor directions.
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var dirNames = [...]string{"north", "northeast", "east", "southeast", "south", "southwest", "west", "northwest"}

func (d Direction) String() string {
	if int(d) < len(dirNames) {
		return dirNames[d]
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// offsets are (dx, dy) per direction.
var offsets = [...][2]int{
	North:     {0, -1},
	NorthEast: {1, -1},
	East:      {1, 0},
	SouthEast: {1, 1},
	South:     {0, 1},
	SouthWest: {-1, 1},
	West:      {-1, 0},
	NorthWest: {-1, -1},
}

// Dims describes the extent of a grid. Both sides must be at least 1 and
// Width*Height must not exceed 256.
type Dims struct {
	Width  uint8
	Height uint8
}

// Size is the total tile count Width*Height.
func (d Dims) Size() int {
	return int(d.Width) * int(d.Height)
}

// Contains reports whether c lies inside the grid.
func (d Dims) Contains(c Coord) bool {
	return c.X < d.Width && c.Y < d.Height
}

// Index maps a coordinate to its linear tile index. The coordinate must be
// inside the grid.
func (d Dims) Index(c Coord) Tile {
	return Tile(int(c.Y)*int(d.Width) + int(c.X))
}

// Coord maps a linear tile index back to its coordinate.
func (d Dims) Coord(t Tile) Coord {
	w := int(d.Width)
	return Coord{X: uint8(int(t) % w), Y: uint8(int(t) / w)}
}

// TileAt returns the tile at (x, y), or false if the position is outside
// the grid.
func (d Dims) TileAt(x, y uint8) (Tile, bool) {
	c := Coord{X: x, Y: y}
	if !d.Contains(c) {
		return 0, false
	}
	return d.Index(c), true
}

// Next returns the successor of t in direction dir, or false when the move
// leaves the grid.
func (d Dims) Next(t Tile, dir Direction) (Tile, bool) {
	c := d.Coord(t)
	off := offsets[dir]

	nx := int(c.X) + off[0]
	ny := int(c.Y) + off[1]
	if nx < 0 || ny < 0 || nx >= int(d.Width) || ny >= int(d.Height) {
		return 0, false
	}
	return d.Index(Coord{X: uint8(nx), Y: uint8(ny)}), true
}
