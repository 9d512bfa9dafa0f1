package word

import (
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Native adapts any machine unsigned integer to the Word capability. One
// generic implementation covers all four supported native widths.
type Native[T constraints.Unsigned] struct {
	v T
}

// Convenience names for the supported native realizations.
type (
	U8  = Native[uint8]
	U16 = Native[uint16]
	U32 = Native[uint32]
	U64 = Native[uint64]
)

// Of wraps a raw unsigned value as a word.
func Of[T constraints.Unsigned](v T) Native[T] {
	return Native[T]{v: v}
}

// Uint unwraps the raw value.
func (a Native[T]) Uint() T {
	return a.v
}

func (a Native[T]) Width() int {
	return int(unsafe.Sizeof(a.v)) * 8
}

func (a Native[T]) And(b Native[T]) Native[T] { return Native[T]{v: a.v & b.v} }
func (a Native[T]) Or(b Native[T]) Native[T]  { return Native[T]{v: a.v | b.v} }
func (a Native[T]) Xor(b Native[T]) Native[T] { return Native[T]{v: a.v ^ b.v} }
func (a Native[T]) Not() Native[T]            { return Native[T]{v: ^a.v} }

// Shift counts of Width or more produce the zero word, which the language
// already guarantees for unsigned shifts.
func (a Native[T]) Shl(n uint) Native[T] { return Native[T]{v: a.v << n} }
func (a Native[T]) Shr(n uint) Native[T] { return Native[T]{v: a.v >> n} }

func (a Native[T]) OnesCount() int {
	return bits.OnesCount64(uint64(a.v))
}

func (a Native[T]) TrailingZeros() int {
	if a.v == 0 {
		return a.Width()
	}
	return bits.TrailingZeros64(uint64(a.v))
}

func (a Native[T]) LeadingZeros() int {
	return bits.LeadingZeros64(uint64(a.v)) - (64 - a.Width())
}

func (a Native[T]) TrailingOnes() int { return a.Not().TrailingZeros() }
func (a Native[T]) LeadingOnes() int  { return a.Not().LeadingZeros() }

func (a Native[T]) Bit(i int) bool {
	if i < 0 || i >= a.Width() {
		return false
	}
	return a.v>>uint(i)&1 == 1
}

func (a Native[T]) SetBit(i int) Native[T] {
	if i < 0 || i >= a.Width() {
		return a
	}
	return Native[T]{v: a.v | T(1)<<uint(i)}
}

func (a Native[T]) ClearBit(i int) Native[T] {
	if i < 0 || i >= a.Width() {
		return a
	}
	return Native[T]{v: a.v &^ (T(1) << uint(i))}
}

func (a Native[T]) IsZero() bool        { return a.v == 0 }
func (a Native[T]) Eq(b Native[T]) bool { return a.v == b.v }
