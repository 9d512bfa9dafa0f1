package word

import "math/bits"

// U128 is a 128-bit word built from two uint64 halves. Bit 0 is the lowest
// bit of Lo, bit 127 the highest bit of Hi.
type U128 struct {
	Hi uint64
	Lo uint64
}

// U128Of builds a 128-bit word from its raw halves.
func U128Of(hi, lo uint64) U128 {
	return U128{Hi: hi, Lo: lo}
}

func (a U128) Width() int { return 128 }

func (a U128) And(b U128) U128 { return U128{Hi: a.Hi & b.Hi, Lo: a.Lo & b.Lo} }
func (a U128) Or(b U128) U128  { return U128{Hi: a.Hi | b.Hi, Lo: a.Lo | b.Lo} }
func (a U128) Xor(b U128) U128 { return U128{Hi: a.Hi ^ b.Hi, Lo: a.Lo ^ b.Lo} }
func (a U128) Not() U128       { return U128{Hi: ^a.Hi, Lo: ^a.Lo} }

func (a U128) Shl(n uint) U128 {
	switch {
	case n >= 128:
		return U128{}
	case n >= 64:
		return U128{Hi: a.Lo << (n - 64)}
	case n == 0:
		return a
	default:
		return U128{Hi: a.Hi<<n | a.Lo>>(64-n), Lo: a.Lo << n}
	}
}

func (a U128) Shr(n uint) U128 {
	switch {
	case n >= 128:
		return U128{}
	case n >= 64:
		return U128{Lo: a.Hi >> (n - 64)}
	case n == 0:
		return a
	default:
		return U128{Hi: a.Hi >> n, Lo: a.Lo>>n | a.Hi<<(64-n)}
	}
}

func (a U128) OnesCount() int {
	return bits.OnesCount64(a.Hi) + bits.OnesCount64(a.Lo)
}

func (a U128) TrailingZeros() int {
	if a.Lo != 0 {
		return bits.TrailingZeros64(a.Lo)
	}
	return 64 + bits.TrailingZeros64(a.Hi)
}

func (a U128) LeadingZeros() int {
	if a.Hi != 0 {
		return bits.LeadingZeros64(a.Hi)
	}
	return 64 + bits.LeadingZeros64(a.Lo)
}

func (a U128) TrailingOnes() int { return a.Not().TrailingZeros() }
func (a U128) LeadingOnes() int  { return a.Not().LeadingZeros() }

func (a U128) Bit(i int) bool {
	switch {
	case i < 0 || i >= 128:
		return false
	case i < 64:
		return a.Lo>>uint(i)&1 == 1
	default:
		return a.Hi>>uint(i-64)&1 == 1
	}
}

func (a U128) SetBit(i int) U128 {
	switch {
	case i < 0 || i >= 128:
		return a
	case i < 64:
		a.Lo |= 1 << uint(i)
	default:
		a.Hi |= 1 << uint(i-64)
	}
	return a
}

func (a U128) ClearBit(i int) U128 {
	switch {
	case i < 0 || i >= 128:
		return a
	case i < 64:
		a.Lo &^= 1 << uint(i)
	default:
		a.Hi &^= 1 << uint(i-64)
	}
	return a
}

func (a U128) IsZero() bool   { return a.Hi == 0 && a.Lo == 0 }
func (a U128) Eq(b U128) bool { return a == b }
