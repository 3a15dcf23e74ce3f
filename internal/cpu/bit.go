package cpu

import "github.com/thelolagemann/gbcore/pkg/bits"

// testBit tests the bit at the given position in the given value.
//
//	BIT n, r
//	n = 0-7
//	r = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if bit n of r is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(value uint8, position uint8) {
	c.SetFlag(FlagZero, !bits.Test(value, position))
	c.SetFlag(FlagSubtract, false)
	c.SetFlag(FlagHalfCarry, true)
}

// setBit sets the bit at the given position in the given value.
//
//	SET n, r
//	n = 0-7
//	r = A, B, C, D, E, H, L, (HL)
//
// Flags affected: none.
func (c *CPU) setBit(value uint8, position uint8) uint8 {
	return bits.Set(value, position)
}

// clearBit clears the bit at the given position in the given value.
//
//	RES n, r
//	n = 0-7
//	r = A, B, C, D, E, H, L, (HL)
//
// Flags affected: none.
func (c *CPU) clearBit(value uint8, position uint8) uint8 {
	return bits.Reset(value, position)
}
