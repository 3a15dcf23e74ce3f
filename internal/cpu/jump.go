package cpu

// pushStack pushes a 16 bit value onto the stack, the high byte
// first at SP-1, then the low byte at SP-2.
func (c *CPU) pushStack(value uint16) {
	c.b.Write(c.SP-1, uint8(value>>8))
	c.b.Write(c.SP-2, uint8(value&0xFF))
	c.SP -= 2
}

// popStack pops a 16 bit value off the stack, the low byte first.
func (c *CPU) popStack() uint16 {
	lower := uint16(c.b.Read(c.SP))
	upper := uint16(c.b.Read(c.SP+1)) << 8
	c.SP += 2
	return lower | upper
}

// condition evaluates cond against the current flags.
func (c *CPU) condition(cond Condition) bool {
	switch cond {
	case IfZero:
		return c.IsFlagSet(FlagZero)
	case IfNotZero:
		return !c.IsFlagSet(FlagZero)
	case IfCarry:
		return c.IsFlagSet(FlagCarry)
	case IfNotCarry:
		return !c.IsFlagSet(FlagCarry)
	}
	return true
}

// jumpAbsolute jumps to the address following the opcode at pc,
// if the condition holds.
//
//	JP cc, nn
//	cc = NZ, Z, NC, C
//	nn = 16-bit immediate value
func (c *CPU) jumpAbsolute(cond Condition, pc uint16) bool {
	if !c.condition(cond) {
		return false
	}
	c.PC = c.readOperand16(pc)
	return true
}

// jumpRelative adds the signed offset following the opcode at pc
// to the PC, if the condition holds. The PC has already been
// advanced past the instruction.
//
//	JR cc, e
//	cc = NZ, Z, NC, C
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelative(cond Condition, pc uint16) bool {
	offset := int8(c.readOperand(pc))
	if !c.condition(cond) {
		return false
	}
	c.PC = uint16(int32(c.PC) + int32(offset))
	return true
}

// call pushes the address of the next instruction onto the stack and jumps to
// the address following the opcode at pc, if the condition holds.
//
//	CALL cc, nn
//	cc = NZ, Z, NC, C
//	nn = 16-bit immediate value
func (c *CPU) call(cond Condition, pc uint16) bool {
	address := c.readOperand16(pc)
	if !c.condition(cond) {
		return false
	}
	c.pushStack(c.PC)
	c.PC = address
	return true
}

// ret pops the return address off the stack, if the condition holds.
//
//	RET cc
//	cc = NZ, Z, NC, C
func (c *CPU) ret(cond Condition) bool {
	if !c.condition(cond) {
		return false
	}
	c.PC = c.popStack()
	return true
}

// restart pushes the address of the next instruction onto the stack
// and jumps to one of the fixed vectors in low memory.
//
//	RST n
//	n = 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38
func (c *CPU) restart(vector uint16) {
	c.pushStack(c.PC)
	c.PC = vector
}
