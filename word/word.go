// Package word abstracts the backing storage of a bit-packed tile set as a
// wide unsigned word. A word supports bitwise algebra, shifts, population
// count and run counts from either end; nothing else. Three realizations
// exist: Native over the machine unsigned types, U128 as a pair of uint64
// halves, and U256 as a pair of U128 halves.
package word

// Word is the capability constraint a backing word must satisfy. It is
// self-referential: a realization W implements Word[W]. All operations are
// pure; shift counts at or beyond Width yield the zero word.
type Word[W any] interface {
	And(W) W
	Or(W) W
	Xor(W) W
	Not() W
	Shl(n uint) W
	Shr(n uint) W

	OnesCount() int
	TrailingZeros() int
	TrailingOnes() int
	LeadingZeros() int
	LeadingOnes() int

	Bit(i int) bool
	SetBit(i int) W
	ClearBit(i int) W

	IsZero() bool
	Eq(W) bool

	// Width is the bit width of the realization, a constant per type.
	Width() int
}
