package tileset

import (
	"github.com/wainwrightmark/geometrid-sub000/tile"
	"github.com/wainwrightmark/geometrid-sub000/word"
)

// Set is a bit-packed subset of a tile space: bit i of the backing word is
// the membership of tile i. Sets are plain values; copying one copies the
// whole word, so no two sets ever alias storage. Bits at positions >= Size
// are zero at every mutation boundary.
//
// All binary operations assume both operands share the same Geometry.
type Set[W word.Word[W]] struct {
	geo  *Geometry[W]
	bits W
}

// Empty returns the set with no tiles present.
func (g *Geometry[W]) Empty() Set[W] {
	var zero W
	return Set[W]{geo: g, bits: zero}
}

// All returns the set with every tile present.
func (g *Geometry[W]) All() Set[W] {
	return Set[W]{geo: g, bits: g.all}
}

// FromFunc builds a set by evaluating pred for every tile in row-major
// order.
func (g *Geometry[W]) FromFunc(pred func(tile.Tile) bool) Set[W] {
	var w W
	for i := 0; i < g.size; i++ {
		if pred(tile.Tile(i)) {
			w = w.SetBit(i)
		}
	}
	return Set[W]{geo: g, bits: w}
}

// FromTiles builds a set containing exactly the given tiles. Indices at or
// beyond Size are ignored.
func (g *Geometry[W]) FromTiles(tiles ...tile.Tile) Set[W] {
	var w W
	for _, t := range tiles {
		if int(t) < g.size {
			w = w.SetBit(int(t))
		}
	}
	return Set[W]{geo: g, bits: w}
}

// FromRaw wraps a raw backing word. The caller is responsible for the
// representation matching the geometry; bits beyond Size are masked off.
func (g *Geometry[W]) FromRaw(w W) Set[W] {
	return Set[W]{geo: g, bits: w.And(g.all)}
}

// Row returns the set of all tiles in row y.
func (g *Geometry[W]) Row(y uint8) Set[W] {
	return Set[W]{geo: g, bits: g.RowMask(y)}
}

// Col returns the set of all tiles in column x.
func (g *Geometry[W]) Col(x uint8) Set[W] {
	return Set[W]{geo: g, bits: g.ColMask(x)}
}

// Raw returns the backing word.
func (s Set[W]) Raw() W { return s.bits }

// Geometry returns the shared configuration this set belongs to.
func (s Set[W]) Geometry() *Geometry[W] { return s.geo }

func (s Set[W]) IsEmpty() bool { return s.bits.IsZero() }

// Count is the number of present tiles.
func (s Set[W]) Count() int { return s.bits.OnesCount() }

// Contains reports whether t is present.
func (s Set[W]) Contains(t tile.Tile) bool {
	return int(t) < s.geo.size && s.bits.Bit(int(t))
}

// Add marks t present in place. Indices at or beyond Size are ignored.
func (s *Set[W]) Add(t tile.Tile) {
	if int(t) < s.geo.size {
		s.bits = s.bits.SetBit(int(t))
	}
}

// Remove marks t absent in place.
func (s *Set[W]) Remove(t tile.Tile) {
	s.bits = s.bits.ClearBit(int(t))
}

// WithTile returns a copy of s with t present.
func (s Set[W]) WithTile(t tile.Tile) Set[W] {
	s.Add(t)
	return s
}

// WithoutTile returns a copy of s with t absent.
func (s Set[W]) WithoutTile(t tile.Tile) Set[W] {
	s.Remove(t)
	return s
}

func (s Set[W]) Union(o Set[W]) Set[W] {
	s.bits = s.bits.Or(o.bits)
	return s
}

func (s Set[W]) Intersect(o Set[W]) Set[W] {
	s.bits = s.bits.And(o.bits)
	return s
}

func (s Set[W]) SymmetricDiff(o Set[W]) Set[W] {
	s.bits = s.bits.Xor(o.bits)
	return s
}

// IsSubsetOf reports whether every tile of s is present in o.
func (s Set[W]) IsSubsetOf(o Set[W]) bool {
	return s.bits.And(o.bits).Eq(s.bits)
}

// IsSupersetOf reports whether every tile of o is present in s.
func (s Set[W]) IsSupersetOf(o Set[W]) bool {
	return o.IsSubsetOf(s)
}

// Negate complements membership, re-masked to the grid so that dead bits
// beyond Size never surface as present tiles.
func (s Set[W]) Negate() Set[W] {
	s.bits = s.bits.Not().And(s.geo.all)
	return s
}

func (s Set[W]) Equal(o Set[W]) bool {
	return s.bits.Eq(o.bits)
}

// First returns the lowest present tile, or false if the set is empty.
func (s Set[W]) First() (tile.Tile, bool) {
	tz := s.bits.TrailingZeros()
	if tz == s.bits.Width() {
		return 0, false
	}
	return tile.Tile(tz), true
}

// Last returns the highest present tile, or false if the set is empty.
func (s Set[W]) Last() (tile.Tile, bool) {
	lz := s.bits.LeadingZeros()
	if lz == s.bits.Width() {
		return 0, false
	}
	return tile.Tile(s.bits.Width() - 1 - lz), true
}

// Pop removes and returns the lowest present tile.
func (s *Set[W]) Pop() (tile.Tile, bool) {
	t, ok := s.First()
	if ok {
		s.bits = s.bits.ClearBit(int(t))
	}
	return t, ok
}

// PopLast removes and returns the highest present tile.
func (s *Set[W]) PopLast() (tile.Tile, bool) {
	t, ok := s.Last()
	if ok {
		s.bits = s.bits.ClearBit(int(t))
	}
	return t, ok
}

// ShiftNorth moves every tile up by rows grid rows. Tiles shifted past the
// top edge are dropped; rows at or beyond Height empties the set.
func (s Set[W]) ShiftNorth(rows int) Set[W] {
	if rows <= 0 {
		return s
	}
	if rows >= int(s.geo.dims.Height) {
		var zero W
		s.bits = zero
		return s
	}
	s.bits = s.bits.Shr(uint(rows * int(s.geo.dims.Width)))
	return s
}

// ShiftSouth moves every tile down by rows grid rows, dropping tiles past
// the bottom edge.
func (s Set[W]) ShiftSouth(rows int) Set[W] {
	if rows <= 0 {
		return s
	}
	if rows >= int(s.geo.dims.Height) {
		var zero W
		s.bits = zero
		return s
	}
	s.bits = s.bits.Shl(uint(rows * int(s.geo.dims.Width))).And(s.geo.all)
	return s
}

// Tiles returns the present tiles in ascending row-major order.
func (s Set[W]) Tiles() []tile.Tile {
	out := make([]tile.Tile, 0, s.Count())
	it := s.Iter()
	for {
		t, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, t)
	}
}
