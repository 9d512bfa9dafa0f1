package tileset

import (
	"iter"

	"github.com/wainwrightmark/geometrid-sub000/word"
)

// BitIter is a plain boolean view over the bit positions [bottom, top) of a
// set at a fixed stride, used for rows and columns. Forward and backward
// consumption walk the same underlying bits in opposite orders. The view is
// finite and cheap to rebuild; its length is computed arithmetically.
type BitIter[W word.Word[W]] struct {
	bits   W
	bottom int
	top    int
	step   int
}

// RowBits returns the boolean view of row y at stride 1. An out-of-range
// row yields an empty view.
func (s Set[W]) RowBits(y uint8) BitIter[W] {
	if y >= s.geo.dims.Height {
		return BitIter[W]{step: 1}
	}
	w := int(s.geo.dims.Width)
	bottom := int(y) * w
	return BitIter[W]{bits: s.bits, bottom: bottom, top: bottom + w, step: 1}
}

// ColBits returns the boolean view of column x at stride Width. An
// out-of-range column yields an empty view.
func (s Set[W]) ColBits(x uint8) BitIter[W] {
	if x >= s.geo.dims.Width {
		return BitIter[W]{step: 1}
	}
	w := int(s.geo.dims.Width)
	return BitIter[W]{bits: s.bits, bottom: int(x), top: int(x) + s.geo.size, step: w}
}

// Len is the number of bits remaining in the view.
func (v *BitIter[W]) Len() int {
	if v.top <= v.bottom {
		return 0
	}
	return (v.top - v.bottom) / v.step
}

// Next consumes and returns the lowest remaining bit of the view.
func (v *BitIter[W]) Next() (bool, bool) {
	if v.bottom >= v.top {
		return false, false
	}
	b := v.bits.Bit(v.bottom)
	v.bottom += v.step
	return b, true
}

// NextBack consumes and returns the highest remaining bit of the view.
func (v *BitIter[W]) NextBack() (bool, bool) {
	if v.bottom >= v.top {
		return false, false
	}
	v.top -= v.step
	return v.bits.Bit(v.top), true
}

// All ranges forward over the remaining bits.
func (v BitIter[W]) All() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for {
			b, ok := v.Next()
			if !ok {
				return
			}
			if !yield(b) {
				return
			}
		}
	}
}
