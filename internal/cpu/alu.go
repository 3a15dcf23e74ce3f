package cpu

// add adds n to the A Register.
//
//	ADD A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8) {
	result := c.A + n
	c.HalfAdd(c.A, n)
	c.shouldZeroFlag(result)
	c.SetFlag(FlagSubtract, false)
	c.SetFlag(FlagCarry, uint16(c.A)+uint16(n) > 0xFF)
	c.A = result
}

// addCarry adds n plus the carry flag to the A Register. The carry
// is added as a separate ADD of 1 before n, so the flags only
// reflect the second addition.
//
//	ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addCarry(n uint8) {
	if c.IsFlagSet(FlagCarry) {
		c.add(1)
	}
	c.add(n)
}

// sub subtracts n from the A Register. If compare is true the
// result is discarded, leaving only the flags.
//
//	SUB n
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(n uint8, compare bool) {
	result := c.A - n
	c.HalfSub(c.A, n)
	c.shouldZeroFlag(result)
	c.SetFlag(FlagSubtract, true)
	c.SetFlag(FlagCarry, n > c.A)
	if !compare {
		c.A = result
	}
}

// subCarry subtracts n plus the carry flag from the A Register, as
// a SUB of 1 followed by a SUB of n.
//
//	SBC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) subCarry(n uint8) {
	if c.IsFlagSet(FlagCarry) {
		c.sub(1, false)
	}
	c.sub(n, false)
}

// and performs a bitwise AND operation on n and the A Register.
//
//	AND n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.A &= n
	c.setFlags(c.A == 0, false, true, false)
}

// or performs a bitwise OR operation on n and the A Register.
//
//	OR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(n uint8) {
	c.A |= n
	c.setFlags(c.A == 0, false, false, false)
}

// xor performs a bitwise XOR operation on n and the A Register.
//
//	XOR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(n uint8) {
	c.A ^= n
	c.setFlags(c.A == 0, false, false, false)
}

// increment n by 1 and set the flags accordingly.
//
//	INC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(n uint8) uint8 {
	c.HalfAdd(n, 1)
	result := n + 1
	c.shouldZeroFlag(result)
	c.SetFlag(FlagSubtract, false)
	return result
}

// decrement n by 1 and set the flags accordingly.
//
//	DEC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(n uint8) uint8 {
	c.HalfSub(n, 1)
	result := n - 1
	c.shouldZeroFlag(result)
	c.SetFlag(FlagSubtract, true)
	return result
}

// addHL adds nn to the HL RegisterPair.
//
//	ADD HL, nn
//	nn = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHL(nn uint16) {
	hl := c.HL.Uint16()
	sum := uint32(hl) + uint32(nn)
	c.SetFlag(FlagSubtract, false)
	c.SetFlag(FlagHalfCarry, (hl&0xFFF)+(nn&0xFFF) > 0xFFF)
	c.SetFlag(FlagCarry, sum > 0xFFFF)
	c.HL.SetUint16(uint16(sum))
}

// addSPSigned returns SP plus the signed offset e.
//
//	ADD SP, e
//	LD HL, SP+e
//	e = 8-bit signed immediate value
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned(e uint8) uint16 {
	result := uint16(int32(c.SP) + int32(int8(e)))

	tmpVal := c.SP ^ uint16(int8(e)) ^ result
	c.setFlags(false, false, tmpVal&0x10 == 0x10, tmpVal&0x100 == 0x100)

	return result
}

// decimalAdjust corrects the A Register into packed BCD after an
// addition or subtraction.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set or reset according to operation.
func (c *CPU) decimalAdjust() {
	if c.IsFlagSet(FlagSubtract) {
		if c.IsFlagSet(FlagCarry) {
			c.A -= 0x60
		}
		if c.IsFlagSet(FlagHalfCarry) {
			c.A -= 0x06
		}
	} else {
		if c.IsFlagSet(FlagCarry) || c.A > 0x99 {
			c.A += 0x60
			c.SetFlag(FlagCarry, true)
		}
		if c.IsFlagSet(FlagHalfCarry) || c.A&0xF > 0x9 {
			c.A += 0x06
		}
	}
	c.shouldZeroFlag(c.A)
	c.SetFlag(FlagHalfCarry, false)
}

// complement flips every bit of the A Register.
//
//	CPL
//
// Flags affected:
//
//	Z - Not affected.
//	N - Set.
//	H - Set.
//	C - Not affected.
func (c *CPU) complement() {
	c.A = 0xFF ^ c.A
	c.SetFlag(FlagSubtract, true)
	c.SetFlag(FlagHalfCarry, true)
}

// setCarry sets the carry flag (SCF), or flips it (CCF).
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Reset.
//	C - Set (SCF) or complemented (CCF).
func (c *CPU) setCarry(toggle bool) {
	if toggle {
		c.ToggleCarry()
	} else {
		c.SetFlag(FlagCarry, true)
	}
	c.SetFlag(FlagSubtract, false)
	c.SetFlag(FlagHalfCarry, false)
}
