package cpu

import "fmt"

// readOperand reads the byte following the opcode at pc.
func (c *CPU) readOperand(pc uint16) uint8 {
	return c.b.Read(pc + 1)
}

// readOperand16 reads the little-endian word following the opcode at pc.
func (c *CPU) readOperand16(pc uint16) uint16 {
	return uint16(c.b.Read(pc+1)) | uint16(c.b.Read(pc+2))<<8
}

// register returns the Register for the given Location, or nil if
// the Location is not a single register.
func (c *CPU) register(loc Location) *Register {
	switch loc {
	case LocA:
		return &c.A
	case LocB:
		return &c.B
	case LocC:
		return &c.C
	case LocD:
		return &c.D
	case LocE:
		return &c.E
	case LocH:
		return &c.H
	case LocL:
		return &c.L
	}
	return nil
}

// address returns the memory address referenced by loc, for the
// instruction whose opcode is at pc.
func (c *CPU) address(loc Location, pc uint16) uint16 {
	switch loc {
	case LocHL, LocHLI, LocHLD:
		return c.HL.Uint16()
	case LocBC:
		return c.BC.Uint16()
	case LocDE:
		return c.DE.Uint16()
	case LocA8:
		return 0xFF00 | uint16(c.readOperand(pc))
	case LocA16:
		return c.readOperand16(pc)
	case LocCA:
		return 0xFF00 | uint16(c.C)
	}
	panic(fmt.Sprintf("cpu: location %s has no address", loc))
}

// postAccess applies the increment or decrement of (HL+) and (HL-).
func (c *CPU) postAccess(loc Location) {
	switch loc {
	case LocHLI:
		c.HL.SetUint16(c.HL.Uint16() + 1)
	case LocHLD:
		c.HL.SetUint16(c.HL.Uint16() - 1)
	}
}

// read8 returns the value at loc, for the instruction whose opcode
// is at pc.
func (c *CPU) read8(loc Location, pc uint16) uint8 {
	if r := c.register(loc); r != nil {
		return *r
	}
	if loc == LocD8 {
		return c.readOperand(pc)
	}

	value := c.b.Read(c.address(loc, pc))
	c.postAccess(loc)
	return value
}

// write8 stores value at loc, for the instruction whose opcode is at pc.
func (c *CPU) write8(loc Location, pc uint16, value uint8) {
	if r := c.register(loc); r != nil {
		*r = value
		return
	}

	c.b.Write(c.address(loc, pc), value)
	c.postAccess(loc)
}

// pair returns the value of the 16-bit register p.
func (c *CPU) pair(p Pair) uint16 {
	switch p {
	case PairBC:
		return c.BC.Uint16()
	case PairDE:
		return c.DE.Uint16()
	case PairHL:
		return c.HL.Uint16()
	case PairSP:
		return c.SP
	case PairAF:
		return c.AF.Uint16()
	}
	panic(fmt.Sprintf("cpu: invalid register pair %d", p))
}

// setPair sets the 16-bit register p to value. Writing AF discards
// the lower nibble of F.
func (c *CPU) setPair(p Pair, value uint16) {
	switch p {
	case PairBC:
		c.BC.SetUint16(value)
	case PairDE:
		c.DE.SetUint16(value)
	case PairHL:
		c.HL.SetUint16(value)
	case PairSP:
		c.SP = value
	case PairAF:
		c.AF.SetUint16(value)
	default:
		panic(fmt.Sprintf("cpu: invalid register pair %d", p))
	}
}

// storeSP stores SP at the address following the opcode at pc, the
// low byte first.
//
//	LD (nn), SP
//	nn = 16-bit immediate address
func (c *CPU) storeSP(pc uint16) {
	address := c.readOperand16(pc)
	c.b.Write(address, uint8(c.SP&0xFF))
	c.b.Write(address+1, uint8(c.SP>>8))
}
