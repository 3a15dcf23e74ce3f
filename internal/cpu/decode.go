package cpu

// Decode returns the descriptor of the instruction starting with
// opcode. next is the byte following the opcode, and is only
// consulted when opcode is the 0xCB prefix.
//
// Decode never fails: opcodes with no assigned meaning decode to
// an Instruction whose Op is Unsupported.
func Decode(opcode, next uint8) Instruction {
	if opcode == PrefixCB {
		return InstructionSetCB[next]
	}
	return InstructionSet[opcode]
}
