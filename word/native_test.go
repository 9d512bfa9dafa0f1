package word

import "testing"

func TestNativeWidths(t *testing.T) {
	if w := (U8{}).Width(); w != 8 {
		t.Errorf("U8 width %d", w)
	}
	if w := (U16{}).Width(); w != 16 {
		t.Errorf("U16 width %d", w)
	}
	if w := (U32{}).Width(); w != 32 {
		t.Errorf("U32 width %d", w)
	}
	if w := (U64{}).Width(); w != 64 {
		t.Errorf("U64 width %d", w)
	}
}

func TestNativeCounts(t *testing.T) {
	a := Of(uint8(0b1011_0100))

	if got := a.OnesCount(); got != 4 {
		t.Errorf("OnesCount = %d, want 4", got)
	}
	if got := a.TrailingZeros(); got != 2 {
		t.Errorf("TrailingZeros = %d, want 2", got)
	}
	if got := a.LeadingZeros(); got != 0 {
		t.Errorf("LeadingZeros = %d, want 0", got)
	}
	if got := Of(uint8(0b0011_0100)).LeadingZeros(); got != 2 {
		t.Errorf("LeadingZeros = %d, want 2", got)
	}
	if got := Of(uint8(0b0000_0111)).TrailingOnes(); got != 3 {
		t.Errorf("TrailingOnes = %d, want 3", got)
	}
	if got := Of(uint8(0b1110_0000)).LeadingOnes(); got != 3 {
		t.Errorf("LeadingOnes = %d, want 3", got)
	}
}

func TestNativeZeroCounts(t *testing.T) {
	var z U16

	if got := z.TrailingZeros(); got != 16 {
		t.Errorf("zero TrailingZeros = %d, want 16", got)
	}
	if got := z.LeadingZeros(); got != 16 {
		t.Errorf("zero LeadingZeros = %d, want 16", got)
	}
	if got := z.Not().TrailingOnes(); got != 16 {
		t.Errorf("all-ones TrailingOnes = %d, want 16", got)
	}
	if got := z.Not().LeadingOnes(); got != 16 {
		t.Errorf("all-ones LeadingOnes = %d, want 16", got)
	}
}

func TestNativeShiftsSaturate(t *testing.T) {
	a := Of(uint8(0xff))

	if got := a.Shl(8); !got.IsZero() {
		t.Errorf("Shl(8) = %08b, want zero", got.Uint())
	}
	if got := a.Shr(8); !got.IsZero() {
		t.Errorf("Shr(8) = %08b, want zero", got.Uint())
	}
	if got := a.Shl(0); !got.Eq(a) {
		t.Errorf("Shl(0) changed the word")
	}
}

func TestNativeBitOps(t *testing.T) {
	var a U32

	a = a.SetBit(0).SetBit(17).SetBit(31)
	if !a.Bit(17) || !a.Bit(0) || !a.Bit(31) {
		t.Fatalf("set bits missing: %032b", a.Uint())
	}
	if a.OnesCount() != 3 {
		t.Fatalf("OnesCount = %d, want 3", a.OnesCount())
	}

	a = a.ClearBit(17)
	if a.Bit(17) {
		t.Errorf("bit 17 still set after clear")
	}

	// out of range is a no-op for set/clear and false for test
	if b := a.SetBit(32); !b.Eq(a) {
		t.Errorf("SetBit(32) changed the word")
	}
	if a.Bit(-1) || a.Bit(32) {
		t.Errorf("out of range Bit should be false")
	}
}

func TestNativeAlgebra(t *testing.T) {
	a := Of(uint16(0b1100))
	b := Of(uint16(0b1010))

	if got := a.And(b).Uint(); got != 0b1000 {
		t.Errorf("And = %b", got)
	}
	if got := a.Or(b).Uint(); got != 0b1110 {
		t.Errorf("Or = %b", got)
	}
	if got := a.Xor(b).Uint(); got != 0b0110 {
		t.Errorf("Xor = %b", got)
	}
	if got := a.Not().Uint(); got != 0xfff3 {
		t.Errorf("Not = %x", got)
	}
}
