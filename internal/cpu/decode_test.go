package cpu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var unsupportedOpcodes = map[uint8]bool{
	0xD3: true, 0xDB: true, 0xDD: true, 0xE3: true, 0xE4: true, 0xEB: true,
	0xEC: true, 0xED: true, 0xF4: true, 0xFC: true, 0xFD: true,
}

func TestInstructionSet_Timing(t *testing.T) {
	timings := []uint8{
		1, 3, 2, 2, 1, 1, 2, 1, 5, 2, 2, 2, 1, 1, 2, 1,
		1, 3, 2, 2, 1, 1, 2, 1, 3, 2, 2, 2, 1, 1, 2, 1,
		2, 3, 2, 2, 1, 1, 2, 1, 2, 2, 2, 2, 1, 1, 2, 1,
		2, 3, 2, 2, 3, 3, 3, 1, 2, 2, 2, 2, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		2, 2, 2, 2, 2, 2, 1, 2, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		2, 3, 3, 4, 3, 4, 2, 4, 2, 4, 3, 0, 3, 6, 2, 4,
		2, 3, 3, 0, 3, 4, 2, 4, 2, 4, 3, 0, 3, 0, 2, 4,
		3, 3, 2, 0, 0, 4, 2, 4, 4, 1, 4, 0, 0, 0, 2, 4,
		3, 3, 2, 1, 0, 4, 2, 4, 3, 2, 4, 1, 0, 0, 2, 4,
	}
	for i, timing := range timings {
		if i == PrefixCB {
			continue
		}
		assert.Equal(t, timing, InstructionSet[i].Cycles, "opcode 0x%02X", i)
	}

	cbTimings := []uint8{
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 3, 2, 2, 2, 2, 2, 2, 2, 3, 2,
		2, 2, 2, 2, 2, 2, 3, 2, 2, 2, 2, 2, 2, 2, 3, 2,
		2, 2, 2, 2, 2, 2, 3, 2, 2, 2, 2, 2, 2, 2, 3, 2,
		2, 2, 2, 2, 2, 2, 3, 2, 2, 2, 2, 2, 2, 2, 3, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
	}
	for i, timing := range cbTimings {
		assert.Equal(t, timing, InstructionSetCB[i].Cycles, "opcode 0xCB 0x%02X", i)
		assert.Equal(t, uint8(2), InstructionSetCB[i].Length, "opcode 0xCB 0x%02X", i)
	}
}

func TestInstructionSet_Taken(t *testing.T) {
	taken := map[uint8]uint8{
		0x20: 3, 0x28: 3, 0x30: 3, 0x38: 3, // JR cc
		0xC2: 4, 0xCA: 4, 0xD2: 4, 0xDA: 4, // JP cc
		0xC4: 6, 0xCC: 6, 0xD4: 6, 0xDC: 6, // CALL cc
		0xC0: 5, 0xC8: 5, 0xD0: 5, 0xD8: 5, // RET cc
	}
	for i := 0; i < 256; i++ {
		if i == PrefixCB {
			continue
		}
		instr := InstructionSet[i]
		if cost, ok := taken[uint8(i)]; ok {
			assert.Equal(t, cost, instr.cost(true), "opcode 0x%02X", i)
			assert.Less(t, instr.cost(false), instr.cost(true), "opcode 0x%02X", i)
			continue
		}
		assert.Equal(t, instr.cost(false), instr.cost(true), "opcode 0x%02X", i)
	}
}

func TestInstructionSet_Length(t *testing.T) {
	for i := 0; i < 256; i++ {
		if i == PrefixCB {
			continue
		}
		instr := InstructionSet[i]
		assert.NotNil(t, instr.Operand, "opcode 0x%02X", i)
		assert.GreaterOrEqual(t, instr.Length, uint8(1), "opcode 0x%02X", i)
		assert.LessOrEqual(t, instr.Length, uint8(3), "opcode 0x%02X", i)
	}
	assert.Equal(t, uint8(2), InstructionSet[0x10].Length, "STOP")
	assert.Equal(t, uint8(3), InstructionSet[0x08].Length, "LD (a16), SP")
	assert.Equal(t, uint8(2), InstructionSet[0xE0].Length, "LDH (a8), A")
	assert.Equal(t, uint8(1), InstructionSet[0xE2].Length, "LD (C), A")
}

func TestDecode_Unsupported(t *testing.T) {
	for i := 0; i < 256; i++ {
		if i == PrefixCB {
			continue
		}
		instr := Decode(uint8(i), 0x00)
		assert.Equal(t, unsupportedOpcodes[uint8(i)], instr.Op == Unsupported, "opcode 0x%02X", i)
	}
	for i := 0; i < 256; i++ {
		assert.NotEqual(t, Unsupported, Decode(PrefixCB, uint8(i)).Op, "opcode 0xCB 0x%02X", i)
	}
}

func TestDecode_Prefixed(t *testing.T) {
	assert.Equal(t, InstructionSetCB[0x7C], Decode(PrefixCB, 0x7C))
	assert.Equal(t, InstructionSet[0x7C], Decode(0x7C, 0xCB))
}

func TestInstruction_String(t *testing.T) {
	tests := []struct {
		opcode   uint8
		prefixed bool
		want     string
	}{
		{0x00, false, "NOP"},
		{0x01, false, "LD BC, d16"},
		{0x03, false, "INC BC"},
		{0x04, false, "INC B"},
		{0x07, false, "RLCA"},
		{0x08, false, "LD (a16), SP"},
		{0x09, false, "ADD HL, BC"},
		{0x10, false, "STOP"},
		{0x18, false, "JR r8"},
		{0x20, false, "JR NZ, r8"},
		{0x2A, false, "LD A, (HL+)"},
		{0x32, false, "LD (HL-), A"},
		{0x34, false, "INC (HL)"},
		{0x76, false, "HALT"},
		{0x80, false, "ADD A, B"},
		{0x8E, false, "ADC A, (HL)"},
		{0x90, false, "SUB B"},
		{0xC0, false, "RET NZ"},
		{0xC2, false, "JP NZ, a16"},
		{0xC5, false, "PUSH BC"},
		{0xC9, false, "RET"},
		{0xCD, false, "CALL a16"},
		{0xD9, false, "RETI"},
		{0xE0, false, "LD (a8), A"},
		{0xE2, false, "LD (C), A"},
		{0xE8, false, "ADD SP, r8"},
		{0xE9, false, "JP HL"},
		{0xF1, false, "POP AF"},
		{0xF8, false, "LD HL, SP+r8"},
		{0xF9, false, "LD SP, HL"},
		{0xFE, false, "CP d8"},
		{0xFF, false, "RST 38H"},
		{0x00, true, "RLC B"},
		{0x37, true, "SWAP A"},
		{0x46, true, "BIT 0, (HL)"},
		{0x7C, true, "BIT 7, H"},
		{0x87, true, "RES 0, A"},
		{0xFE, true, "SET 7, (HL)"},
	}
	for _, tt := range tests {
		name := fmt.Sprintf("0x%02X", tt.opcode)
		instr := InstructionSet[tt.opcode]
		if tt.prefixed {
			name = "0xCB " + name
			instr = InstructionSetCB[tt.opcode]
		}
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, instr.String())
		})
	}
}
