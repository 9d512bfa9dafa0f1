package word

// U256 is a 256-bit word built from two U128 halves, since no machine word
// spans 256 bits. Bit 0 is the lowest bit of Lo, bit 255 the highest bit of
// Hi. Every operation decomposes onto the halves.
type U256 struct {
	Hi U128
	Lo U128
}

// U256Of builds a 256-bit word from its raw halves.
func U256Of(hi, lo U128) U256 {
	return U256{Hi: hi, Lo: lo}
}

func (a U256) Width() int { return 256 }

func (a U256) And(b U256) U256 { return U256{Hi: a.Hi.And(b.Hi), Lo: a.Lo.And(b.Lo)} }
func (a U256) Or(b U256) U256  { return U256{Hi: a.Hi.Or(b.Hi), Lo: a.Lo.Or(b.Lo)} }
func (a U256) Xor(b U256) U256 { return U256{Hi: a.Hi.Xor(b.Hi), Lo: a.Lo.Xor(b.Lo)} }
func (a U256) Not() U256       { return U256{Hi: a.Hi.Not(), Lo: a.Lo.Not()} }

func (a U256) Shl(n uint) U256 {
	switch {
	case n >= 256:
		return U256{}
	case n >= 128:
		return U256{Hi: a.Lo.Shl(n - 128)}
	case n == 0:
		return a
	default:
		return U256{Hi: a.Hi.Shl(n).Or(a.Lo.Shr(128 - n)), Lo: a.Lo.Shl(n)}
	}
}

func (a U256) Shr(n uint) U256 {
	switch {
	case n >= 256:
		return U256{}
	case n >= 128:
		return U256{Lo: a.Hi.Shr(n - 128)}
	case n == 0:
		return a
	default:
		return U256{Hi: a.Hi.Shr(n), Lo: a.Lo.Shr(n).Or(a.Hi.Shl(128 - n))}
	}
}

func (a U256) OnesCount() int {
	return a.Hi.OnesCount() + a.Lo.OnesCount()
}

func (a U256) TrailingZeros() int {
	if !a.Lo.IsZero() {
		return a.Lo.TrailingZeros()
	}
	return 128 + a.Hi.TrailingZeros()
}

func (a U256) LeadingZeros() int {
	if !a.Hi.IsZero() {
		return a.Hi.LeadingZeros()
	}
	return 128 + a.Lo.LeadingZeros()
}

func (a U256) TrailingOnes() int { return a.Not().TrailingZeros() }
func (a U256) LeadingOnes() int  { return a.Not().LeadingZeros() }

func (a U256) Bit(i int) bool {
	switch {
	case i < 0 || i >= 256:
		return false
	case i < 128:
		return a.Lo.Bit(i)
	default:
		return a.Hi.Bit(i - 128)
	}
}

func (a U256) SetBit(i int) U256 {
	switch {
	case i < 0 || i >= 256:
		return a
	case i < 128:
		a.Lo = a.Lo.SetBit(i)
	default:
		a.Hi = a.Hi.SetBit(i - 128)
	}
	return a
}

func (a U256) ClearBit(i int) U256 {
	switch {
	case i < 0 || i >= 256:
		return a
	case i < 128:
		a.Lo = a.Lo.ClearBit(i)
	default:
		a.Hi = a.Hi.ClearBit(i - 128)
	}
	return a
}

func (a U256) IsZero() bool   { return a.Hi.IsZero() && a.Lo.IsZero() }
func (a U256) Eq(b U256) bool { return a == b }
