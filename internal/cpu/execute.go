package cpu

import "github.com/thelolagemann/gbcore/internal/types"

// execute runs the body of instr, whose opcode is at pc. The PC has
// already been advanced past the instruction. It returns true if a
// conditional instruction took its branch.
//
// ErrUnimplemented is returned, before any state is touched, when
// the CPU has no body for the operation and operand shape of instr.
func (c *CPU) execute(instr Instruction, pc uint16) (bool, error) {
	switch o := instr.Operand.(type) {
	case None:
		return false, c.executeControl(instr.Op)
	case Arithmetic:
		return false, c.executeArithmetic(instr.Op, o.Arg, pc)
	case Load:
		c.write8(o.Dst, pc, c.read8(o.Src, pc))
	case Jump:
		return c.jumpAbsolute(o.Cond, pc), nil
	case JumpRelative:
		return c.jumpRelative(o.Cond, pc), nil
	case JumpHL:
		c.PC = c.HL.Uint16()
	case Call:
		return c.call(o.Cond, pc), nil
	case Return:
		if instr.Op == RETI {
			c.PC = c.popStack()
			c.scheduleIME = true
			return true, nil
		}
		return c.ret(o.Cond), nil
	case Restart:
		c.restart(o.Vector)
	case Push:
		c.pushStack(c.pair(o.Pair))
	case Pop:
		c.setPair(o.Pair, c.popStack())
	case Unary16:
		switch instr.Op {
		case INC:
			c.setPair(o.Pair, c.pair(o.Pair)+1)
		case DEC:
			c.setPair(o.Pair, c.pair(o.Pair)-1)
		default:
			return false, ErrUnimplemented
		}
	case Load16:
		c.setPair(o.Pair, c.readOperand16(pc))
	case Add16:
		c.addHL(c.pair(o.Pair))
	case StoreSP:
		c.storeSP(pc)
	case AddSP:
		c.SP = c.addSPSigned(c.readOperand(pc))
	case LoadHLSP:
		c.HL.SetUint16(c.addSPSigned(c.readOperand(pc)))
	case LoadSPHL:
		c.SP = c.HL.Uint16()
	case Rotate:
		return false, c.executeRotate(instr.Op, o.Target, pc)
	case Bit:
		return false, c.executeBit(instr.Op, o, pc)
	default:
		return false, ErrUnimplemented
	}

	return false, nil
}

func (c *CPU) executeControl(op Operation) error {
	switch op {
	case NOP:
	case HALT:
		c.mode = ModeHalt
	case STOP:
		c.b.Write(types.DIV, 0)
		c.mode = ModeStop
	case DI:
		c.IME = false
		c.scheduleIME = false
	case EI:
		c.scheduleIME = true
	case DAA:
		c.decimalAdjust()
	case CPL:
		c.complement()
	case SCF:
		c.setCarry(false)
	case CCF:
		c.setCarry(true)
	default:
		return ErrUnimplemented
	}
	return nil
}

func (c *CPU) executeArithmetic(op Operation, arg Location, pc uint16) error {
	switch op {
	case INC:
		c.write8(arg, pc, c.increment(c.read8(arg, pc)))
		return nil
	case DEC:
		c.write8(arg, pc, c.decrement(c.read8(arg, pc)))
		return nil
	}

	n := c.read8(arg, pc)
	switch op {
	case ADD:
		c.add(n)
	case ADC:
		c.addCarry(n)
	case SUB:
		c.sub(n, false)
	case SBC:
		c.subCarry(n)
	case AND:
		c.and(n)
	case XOR:
		c.xor(n)
	case OR:
		c.or(n)
	case CP:
		c.sub(n, true)
	default:
		return ErrUnimplemented
	}
	return nil
}

func (c *CPU) executeRotate(op Operation, target Location, pc uint16) error {
	result, ok := c.rotate(op, c.read8(target, pc))
	if !ok {
		return ErrUnimplemented
	}
	c.write8(target, pc, result)
	return nil
}

func (c *CPU) executeBit(op Operation, o Bit, pc uint16) error {
	value := c.read8(o.Target, pc)
	switch op {
	case BIT:
		c.testBit(value, o.Index)
	case RES:
		c.write8(o.Target, pc, c.clearBit(value, o.Index))
	case SET:
		c.write8(o.Target, pc, c.setBit(value, o.Index))
	default:
		return ErrUnimplemented
	}
	return nil
}
