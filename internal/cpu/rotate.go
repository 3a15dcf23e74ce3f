package cpu

import "github.com/thelolagemann/gbcore/pkg/bits"

// rotateLeftCarry rotates n left by 1 bit. The most significant bit is copied
// to both the carry flag and the least significant bit.
//
//	RLC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftCarry(n uint8) uint8 {
	carry := n & bits.Bit7
	computed := n<<1 | carry>>7
	c.setFlags(computed == 0, false, false, carry == bits.Bit7)

	return computed
}

// rotateRightCarry rotates n right by 1 bit. The least significant bit is
// copied to both the carry flag and the most significant bit.
//
//	RRC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightCarry(n uint8) uint8 {
	carry := n & bits.Bit0
	computed := n>>1 | carry<<7
	c.setFlags(computed == 0, false, false, carry == bits.Bit0)

	return computed
}

// rotateLeftThroughCarry rotates n left by 1 bit. The carry flag is copied to
// the least significant bit, and the most significant bit is copied to the
// carry flag.
//
//	RL n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftThroughCarry(n uint8) uint8 {
	computed := n << 1
	if c.IsFlagSet(FlagCarry) {
		computed |= bits.Bit0
	}
	c.setFlags(computed == 0, false, false, n&bits.Bit7 == bits.Bit7)

	return computed
}

// rotateRightThroughCarry rotates n right by 1 bit. The carry flag is copied to
// the most significant bit, and the least significant bit is copied to the
// carry flag.
//
//	RR n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightThroughCarry(n uint8) uint8 {
	computed := n >> 1
	if c.IsFlagSet(FlagCarry) {
		computed |= bits.Bit7
	}
	c.setFlags(computed == 0, false, false, n&bits.Bit0 == bits.Bit0)

	return computed
}

// shiftLeftArithmetic shifts n left by 1 bit. Bit 0 is reset.
//
//	SLA n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) shiftLeftArithmetic(n uint8) uint8 {
	computed := n << 1
	c.setFlags(computed == 0, false, false, n&bits.Bit7 == bits.Bit7)

	return computed
}

// shiftRightArithmetic shifts n right by 1 bit. Bit 7 is left unchanged.
//
//	SRA n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) shiftRightArithmetic(n uint8) uint8 {
	computed := n>>1 | n&bits.Bit7
	c.setFlags(computed == 0, false, false, n&bits.Bit0 == bits.Bit0)

	return computed
}

// shiftRightLogical shifts n right by 1 bit. Bit 7 is reset.
//
//	SRL n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) shiftRightLogical(n uint8) uint8 {
	computed := n >> 1
	c.setFlags(computed == 0, false, false, n&bits.Bit0 == bits.Bit0)

	return computed
}

// swap the upper and lower nibbles of n.
//
//	SWAP n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) swap(n uint8) uint8 {
	c.setFlags(n == 0, false, false, false)
	return bits.Swap(n)
}

// rotate applies the rotate, shift or swap operation op to n. The
// accumulator forms (RLCA, RLA, RRCA, RRA) always reset the zero
// flag. ok is false if op is not part of the group.
func (c *CPU) rotate(op Operation, n uint8) (result uint8, ok bool) {
	switch op {
	case RLC:
		return c.rotateLeftCarry(n), true
	case RRC:
		return c.rotateRightCarry(n), true
	case RL:
		return c.rotateLeftThroughCarry(n), true
	case RR:
		return c.rotateRightThroughCarry(n), true
	case SLA:
		return c.shiftLeftArithmetic(n), true
	case SRA:
		return c.shiftRightArithmetic(n), true
	case SWAP:
		return c.swap(n), true
	case SRL:
		return c.shiftRightLogical(n), true
	case RLCA:
		result = c.rotateLeftCarry(n)
	case RLA:
		result = c.rotateLeftThroughCarry(n)
	case RRCA:
		result = c.rotateRightCarry(n)
	case RRA:
		result = c.rotateRightThroughCarry(n)
	default:
		return 0, false
	}

	c.SetFlag(FlagZero, false)
	return result, true
}
