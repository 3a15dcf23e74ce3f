// Package cpu provides the instruction decoder and execution engine
// of the Game Boy CPU.
package cpu

import (
	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/pkg/log"
)

type mode = uint8

const (
	// ModeNormal is the normal CPU mode.
	ModeNormal mode = iota
	// ModeHalt is the halt CPU mode, left when an enabled
	// interrupt is requested.
	ModeHalt
	// ModeStop is the stop CPU mode, left when an enabled
	// joypad interrupt is requested.
	ModeStop
)

// Bus is the memory the CPU executes against.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
	// ReportCycles informs the bus of the machine cycles taken by
	// the last instruction, so that it can step its peripherals.
	ReportCycles(cycles uint8)
	// Interrupts returns the interrupts that are both enabled
	// and requested.
	Interrupts() interrupts.Snapshot
	// ClearRequests clears every interrupt request.
	ClearRequests()
}

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	Registers

	// IME is the interrupt master enable. Interrupts are only
	// dispatched while it is set.
	IME bool
	// scheduleIME is set by EI and RETI. IME becomes true once
	// it has survived one full step.
	scheduleIME bool

	// Debug enables a trace line per instruction through Log.
	Debug bool
	Log   log.Logger

	b      Bus
	cycles uint8
	mode   mode
}

// NewCPU creates a new CPU instance, with PC at 0x0000, SP at 0xFFFE
// and interrupts enabled.
func NewCPU() *CPU {
	c := &CPU{
		SP:  0xFFFE,
		IME: true,
		Log: log.NewNullLogger(),
	}
	c.bindPairs()

	return c
}

// Step executes exactly one instruction against b, followed by
// the interrupt dispatch it may trigger, and returns the opcode
// that was executed. While halted or stopped, one idle cycle
// passes instead and the opcode of the HALT or STOP is returned.
//
// If the opcode cannot be executed, an *OpcodeError is returned
// and the state of the CPU and of b is left unchanged.
func (c *CPU) Step(b Bus) (uint8, error) {
	c.b = b
	apply := c.scheduleIME

	if c.mode != ModeNormal {
		return c.idle(apply), nil
	}

	pc := c.PC
	opcode := b.Read(pc)
	next := b.Read(pc + 1)
	instr := Decode(opcode, next)
	if instr.Op == Unsupported {
		return opcode, c.opcodeError(ErrUnsupported, opcode, next, pc)
	}

	c.PC += uint16(instr.Length)
	taken, err := c.execute(instr, pc)
	if err != nil {
		c.PC = pc
		return opcode, c.opcodeError(err, opcode, next, pc)
	}

	if c.Debug {
		c.Log.Debugf("%04X  %-14s AF:%04X BC:%04X DE:%04X HL:%04X SP:%04X", pc, instr, c.AF.Uint16(), c.BC.Uint16(), c.DE.Uint16(), c.HL.Uint16(), c.SP)
	}

	c.cycles = instr.cost(taken)
	b.ReportCycles(c.cycles)
	c.applyIME(apply)
	c.handleInterrupts()

	return opcode, nil
}

// Cycles returns the number of machine cycles reported by the
// last step.
func (c *CPU) Cycles() uint8 {
	return c.cycles
}

// Halted returns true if the CPU is waiting in HALT or STOP.
func (c *CPU) Halted() bool {
	return c.mode != ModeNormal
}

// IMEScheduled returns true if EI or RETI has scheduled IME to be
// enabled at the end of the next step.
func (c *CPU) IMEScheduled() bool {
	return c.scheduleIME
}

// idle performs one step while halted or stopped.
func (c *CPU) idle(apply bool) uint8 {
	opcode := opcodeHALT
	if c.mode == ModeStop {
		opcode = opcodeSTOP
	}

	c.cycles = 1
	c.b.ReportCycles(c.cycles)
	c.applyIME(apply)

	pending := c.b.Interrupts()
	switch c.mode {
	case ModeHalt:
		if pending.Any() {
			c.mode = ModeNormal
		}
	case ModeStop:
		if pending.Joypad {
			c.mode = ModeNormal
		}
	}
	c.handleInterrupts()

	return opcode
}

// applyIME enables IME if it was scheduled before the step began,
// and no DI cancelled it during the step.
func (c *CPU) applyIME(apply bool) {
	if apply && c.scheduleIME {
		c.IME = true
		c.scheduleIME = false
	}
}

// handleInterrupts dispatches the highest priority pending
// interrupt, when IME is set. The request byte is cleared in
// full every time it is evaluated. Nothing is dispatched while
// stopped.
func (c *CPU) handleInterrupts() {
	if !c.IME || c.mode == ModeStop {
		return
	}

	pending := c.b.Interrupts()
	c.b.ClearRequests()

	src, ok := pending.Highest()
	if !ok {
		return
	}

	c.pushStack(c.PC)
	c.PC = src.Vector()
	c.IME = false
	c.mode = ModeNormal
}

func (c *CPU) opcodeError(kind error, opcode, next uint8, pc uint16) error {
	err := &OpcodeError{Kind: kind, Opcode: opcode, PC: pc}
	if opcode == PrefixCB {
		err.Opcode = next
		err.Prefixed = true
	}
	return err
}

// opcodes of the instructions that put the CPU to sleep
const (
	opcodeSTOP uint8 = 0x10
	opcodeHALT uint8 = 0x76
)
