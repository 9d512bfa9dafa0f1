package tileset

import (
	"iter"

	"github.com/wainwrightmark/geometrid-sub000/tile"
	"github.com/wainwrightmark/geometrid-sub000/word"
)

// TileIter yields the present tiles of a set, lowest first going forward
// and highest first going backward. It owns a private copy of the backing
// word and clears one bit per step, so the set it came from is never
// touched and Len stays popcount-exact under any interleaving of forward
// and backward consumption. Once the word reaches zero the iterator is
// permanently exhausted.
type TileIter[W word.Word[W]] struct {
	bits W
}

// Iter returns a fresh iterator over the present tiles of s.
func (s Set[W]) Iter() TileIter[W] {
	return TileIter[W]{bits: s.bits}
}

// Len is the exact number of tiles remaining.
func (it *TileIter[W]) Len() int {
	return it.bits.OnesCount()
}

// Next removes and returns the lowest remaining tile.
func (it *TileIter[W]) Next() (tile.Tile, bool) {
	tz := it.bits.TrailingZeros()
	if tz == it.bits.Width() {
		return 0, false
	}
	it.bits = it.bits.ClearBit(tz)
	return tile.Tile(tz), true
}

// NextBack removes and returns the highest remaining tile.
func (it *TileIter[W]) NextBack() (tile.Tile, bool) {
	lz := it.bits.LeadingZeros()
	if lz == it.bits.Width() {
		return 0, false
	}
	i := it.bits.Width() - 1 - lz
	it.bits = it.bits.ClearBit(i)
	return tile.Tile(i), true
}

// Nth consumes n+1 remaining tiles from the front and returns the last one
// consumed, equivalent to n+1 calls of Next keeping the final result. It
// skips whole runs of absent and present bits at a time, so the cost is
// proportional to the runs crossed, not to n. If fewer than n+1 tiles
// remain the iterator is emptied and exhaustion is reported.
func (it *TileIter[W]) Nth(n int) (tile.Tile, bool) {
	if n < 0 {
		return it.Next()
	}
	if it.bits.OnesCount() <= n {
		var zero W
		it.bits = zero
		return 0, false
	}

	w := it.bits
	shifted := 0
	for {
		// Skip the gap of absent tiles in front.
		gap := w.TrailingZeros()
		w = w.Shr(uint(gap))
		shifted += gap

		// A run of present tiles follows. Consume it whole if the target
		// lies beyond it.
		run := w.TrailingOnes()
		if run <= n {
			w = w.Shr(uint(run))
			shifted += run
			n -= run
			continue
		}

		// The target is the n-th bit inside this run.
		t := tile.Tile(shifted + n)
		w = w.Shr(uint(n + 1))
		shifted += n + 1
		// Shift the survivors back so the untouched upper bits sit at
		// their original positions again.
		it.bits = w.Shl(uint(shifted))
		return t, true
	}
}

// NthBack is the mirror of Nth from the back: it consumes n+1 remaining
// tiles highest-first and returns the last one consumed.
func (it *TileIter[W]) NthBack(n int) (tile.Tile, bool) {
	if n < 0 {
		return it.NextBack()
	}
	if it.bits.OnesCount() <= n {
		var zero W
		it.bits = zero
		return 0, false
	}

	width := it.bits.Width()
	w := it.bits
	shifted := 0
	for {
		gap := w.LeadingZeros()
		w = w.Shl(uint(gap))
		shifted += gap

		run := w.LeadingOnes()
		if run <= n {
			w = w.Shl(uint(run))
			shifted += run
			n -= run
			continue
		}

		t := tile.Tile(width - 1 - (shifted + n))
		w = w.Shl(uint(n + 1))
		shifted += n + 1
		it.bits = w.Shr(uint(shifted))
		return t, true
	}
}

// All ranges over the present tiles of s in ascending row-major order.
func (s Set[W]) All() iter.Seq[tile.Tile] {
	return func(yield func(tile.Tile) bool) {
		it := s.Iter()
		for {
			t, ok := it.Next()
			if !ok {
				return
			}
			if !yield(t) {
				return
			}
		}
	}
}

// Backward ranges over the present tiles of s in descending row-major
// order.
func (s Set[W]) Backward() iter.Seq[tile.Tile] {
	return func(yield func(tile.Tile) bool) {
		it := s.Iter()
		for {
			t, ok := it.NextBack()
			if !ok {
				return
			}
			if !yield(t) {
				return
			}
		}
	}
}
