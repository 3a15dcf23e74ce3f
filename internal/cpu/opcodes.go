package cpu

// PrefixCB is the opcode that selects the extended instruction set.
const PrefixCB = 0xCB

// InstructionSet holds the descriptor of every opcode. The 0xCB
// prefix has no entry of its own, see InstructionSetCB.
var InstructionSet = [256]Instruction{
	0x00: {Op: NOP, Operand: None{}, Length: 1, Cycles: 1},
	0x01: {Op: LD, Operand: Load16{Pair: PairBC}, Length: 3, Cycles: 3},
	0x02: {Op: LD, Operand: Load{Dst: LocBC, Src: LocA}, Length: 1, Cycles: 2},
	0x03: {Op: INC, Operand: Unary16{Pair: PairBC}, Length: 1, Cycles: 2},
	0x04: {Op: INC, Operand: Arithmetic{Arg: LocB}, Length: 1, Cycles: 1},
	0x05: {Op: DEC, Operand: Arithmetic{Arg: LocB}, Length: 1, Cycles: 1},
	0x06: {Op: LD, Operand: Load{Dst: LocB, Src: LocD8}, Length: 2, Cycles: 2},
	0x07: {Op: RLCA, Operand: Rotate{Target: LocA}, Length: 1, Cycles: 1},
	0x08: {Op: LD, Operand: StoreSP{}, Length: 3, Cycles: 5},
	0x09: {Op: ADD, Operand: Add16{Pair: PairBC}, Length: 1, Cycles: 2},
	0x0A: {Op: LD, Operand: Load{Dst: LocA, Src: LocBC}, Length: 1, Cycles: 2},
	0x0B: {Op: DEC, Operand: Unary16{Pair: PairBC}, Length: 1, Cycles: 2},
	0x0C: {Op: INC, Operand: Arithmetic{Arg: LocC}, Length: 1, Cycles: 1},
	0x0D: {Op: DEC, Operand: Arithmetic{Arg: LocC}, Length: 1, Cycles: 1},
	0x0E: {Op: LD, Operand: Load{Dst: LocC, Src: LocD8}, Length: 2, Cycles: 2},
	0x0F: {Op: RRCA, Operand: Rotate{Target: LocA}, Length: 1, Cycles: 1},
	0x10: {Op: STOP, Operand: None{}, Length: 2, Cycles: 1},
	0x11: {Op: LD, Operand: Load16{Pair: PairDE}, Length: 3, Cycles: 3},
	0x12: {Op: LD, Operand: Load{Dst: LocDE, Src: LocA}, Length: 1, Cycles: 2},
	0x13: {Op: INC, Operand: Unary16{Pair: PairDE}, Length: 1, Cycles: 2},
	0x14: {Op: INC, Operand: Arithmetic{Arg: LocD}, Length: 1, Cycles: 1},
	0x15: {Op: DEC, Operand: Arithmetic{Arg: LocD}, Length: 1, Cycles: 1},
	0x16: {Op: LD, Operand: Load{Dst: LocD, Src: LocD8}, Length: 2, Cycles: 2},
	0x17: {Op: RLA, Operand: Rotate{Target: LocA}, Length: 1, Cycles: 1},
	0x18: {Op: JR, Operand: JumpRelative{Cond: Always}, Length: 2, Cycles: 3},
	0x19: {Op: ADD, Operand: Add16{Pair: PairDE}, Length: 1, Cycles: 2},
	0x1A: {Op: LD, Operand: Load{Dst: LocA, Src: LocDE}, Length: 1, Cycles: 2},
	0x1B: {Op: DEC, Operand: Unary16{Pair: PairDE}, Length: 1, Cycles: 2},
	0x1C: {Op: INC, Operand: Arithmetic{Arg: LocE}, Length: 1, Cycles: 1},
	0x1D: {Op: DEC, Operand: Arithmetic{Arg: LocE}, Length: 1, Cycles: 1},
	0x1E: {Op: LD, Operand: Load{Dst: LocE, Src: LocD8}, Length: 2, Cycles: 2},
	0x1F: {Op: RRA, Operand: Rotate{Target: LocA}, Length: 1, Cycles: 1},
	0x20: {Op: JR, Operand: JumpRelative{Cond: IfNotZero}, Length: 2, Cycles: 2, Taken: 3},
	0x21: {Op: LD, Operand: Load16{Pair: PairHL}, Length: 3, Cycles: 3},
	0x22: {Op: LD, Operand: Load{Dst: LocHLI, Src: LocA}, Length: 1, Cycles: 2},
	0x23: {Op: INC, Operand: Unary16{Pair: PairHL}, Length: 1, Cycles: 2},
	0x24: {Op: INC, Operand: Arithmetic{Arg: LocH}, Length: 1, Cycles: 1},
	0x25: {Op: DEC, Operand: Arithmetic{Arg: LocH}, Length: 1, Cycles: 1},
	0x26: {Op: LD, Operand: Load{Dst: LocH, Src: LocD8}, Length: 2, Cycles: 2},
	0x27: {Op: DAA, Operand: None{}, Length: 1, Cycles: 1},
	0x28: {Op: JR, Operand: JumpRelative{Cond: IfZero}, Length: 2, Cycles: 2, Taken: 3},
	0x29: {Op: ADD, Operand: Add16{Pair: PairHL}, Length: 1, Cycles: 2},
	0x2A: {Op: LD, Operand: Load{Dst: LocA, Src: LocHLI}, Length: 1, Cycles: 2},
	0x2B: {Op: DEC, Operand: Unary16{Pair: PairHL}, Length: 1, Cycles: 2},
	0x2C: {Op: INC, Operand: Arithmetic{Arg: LocL}, Length: 1, Cycles: 1},
	0x2D: {Op: DEC, Operand: Arithmetic{Arg: LocL}, Length: 1, Cycles: 1},
	0x2E: {Op: LD, Operand: Load{Dst: LocL, Src: LocD8}, Length: 2, Cycles: 2},
	0x2F: {Op: CPL, Operand: None{}, Length: 1, Cycles: 1},
	0x30: {Op: JR, Operand: JumpRelative{Cond: IfNotCarry}, Length: 2, Cycles: 2, Taken: 3},
	0x31: {Op: LD, Operand: Load16{Pair: PairSP}, Length: 3, Cycles: 3},
	0x32: {Op: LD, Operand: Load{Dst: LocHLD, Src: LocA}, Length: 1, Cycles: 2},
	0x33: {Op: INC, Operand: Unary16{Pair: PairSP}, Length: 1, Cycles: 2},
	0x34: {Op: INC, Operand: Arithmetic{Arg: LocHL}, Length: 1, Cycles: 3},
	0x35: {Op: DEC, Operand: Arithmetic{Arg: LocHL}, Length: 1, Cycles: 3},
	0x36: {Op: LD, Operand: Load{Dst: LocHL, Src: LocD8}, Length: 2, Cycles: 3},
	0x37: {Op: SCF, Operand: None{}, Length: 1, Cycles: 1},
	0x38: {Op: JR, Operand: JumpRelative{Cond: IfCarry}, Length: 2, Cycles: 2, Taken: 3},
	0x39: {Op: ADD, Operand: Add16{Pair: PairSP}, Length: 1, Cycles: 2},
	0x3A: {Op: LD, Operand: Load{Dst: LocA, Src: LocHLD}, Length: 1, Cycles: 2},
	0x3B: {Op: DEC, Operand: Unary16{Pair: PairSP}, Length: 1, Cycles: 2},
	0x3C: {Op: INC, Operand: Arithmetic{Arg: LocA}, Length: 1, Cycles: 1},
	0x3D: {Op: DEC, Operand: Arithmetic{Arg: LocA}, Length: 1, Cycles: 1},
	0x3E: {Op: LD, Operand: Load{Dst: LocA, Src: LocD8}, Length: 2, Cycles: 2},
	0x3F: {Op: CCF, Operand: None{}, Length: 1, Cycles: 1},
	0x40: {Op: LD, Operand: Load{Dst: LocB, Src: LocB}, Length: 1, Cycles: 1},
	0x41: {Op: LD, Operand: Load{Dst: LocB, Src: LocC}, Length: 1, Cycles: 1},
	0x42: {Op: LD, Operand: Load{Dst: LocB, Src: LocD}, Length: 1, Cycles: 1},
	0x43: {Op: LD, Operand: Load{Dst: LocB, Src: LocE}, Length: 1, Cycles: 1},
	0x44: {Op: LD, Operand: Load{Dst: LocB, Src: LocH}, Length: 1, Cycles: 1},
	0x45: {Op: LD, Operand: Load{Dst: LocB, Src: LocL}, Length: 1, Cycles: 1},
	0x46: {Op: LD, Operand: Load{Dst: LocB, Src: LocHL}, Length: 1, Cycles: 2},
	0x47: {Op: LD, Operand: Load{Dst: LocB, Src: LocA}, Length: 1, Cycles: 1},
	0x48: {Op: LD, Operand: Load{Dst: LocC, Src: LocB}, Length: 1, Cycles: 1},
	0x49: {Op: LD, Operand: Load{Dst: LocC, Src: LocC}, Length: 1, Cycles: 1},
	0x4A: {Op: LD, Operand: Load{Dst: LocC, Src: LocD}, Length: 1, Cycles: 1},
	0x4B: {Op: LD, Operand: Load{Dst: LocC, Src: LocE}, Length: 1, Cycles: 1},
	0x4C: {Op: LD, Operand: Load{Dst: LocC, Src: LocH}, Length: 1, Cycles: 1},
	0x4D: {Op: LD, Operand: Load{Dst: LocC, Src: LocL}, Length: 1, Cycles: 1},
	0x4E: {Op: LD, Operand: Load{Dst: LocC, Src: LocHL}, Length: 1, Cycles: 2},
	0x4F: {Op: LD, Operand: Load{Dst: LocC, Src: LocA}, Length: 1, Cycles: 1},
	0x50: {Op: LD, Operand: Load{Dst: LocD, Src: LocB}, Length: 1, Cycles: 1},
	0x51: {Op: LD, Operand: Load{Dst: LocD, Src: LocC}, Length: 1, Cycles: 1},
	0x52: {Op: LD, Operand: Load{Dst: LocD, Src: LocD}, Length: 1, Cycles: 1},
	0x53: {Op: LD, Operand: Load{Dst: LocD, Src: LocE}, Length: 1, Cycles: 1},
	0x54: {Op: LD, Operand: Load{Dst: LocD, Src: LocH}, Length: 1, Cycles: 1},
	0x55: {Op: LD, Operand: Load{Dst: LocD, Src: LocL}, Length: 1, Cycles: 1},
	0x56: {Op: LD, Operand: Load{Dst: LocD, Src: LocHL}, Length: 1, Cycles: 2},
	0x57: {Op: LD, Operand: Load{Dst: LocD, Src: LocA}, Length: 1, Cycles: 1},
	0x58: {Op: LD, Operand: Load{Dst: LocE, Src: LocB}, Length: 1, Cycles: 1},
	0x59: {Op: LD, Operand: Load{Dst: LocE, Src: LocC}, Length: 1, Cycles: 1},
	0x5A: {Op: LD, Operand: Load{Dst: LocE, Src: LocD}, Length: 1, Cycles: 1},
	0x5B: {Op: LD, Operand: Load{Dst: LocE, Src: LocE}, Length: 1, Cycles: 1},
	0x5C: {Op: LD, Operand: Load{Dst: LocE, Src: LocH}, Length: 1, Cycles: 1},
	0x5D: {Op: LD, Operand: Load{Dst: LocE, Src: LocL}, Length: 1, Cycles: 1},
	0x5E: {Op: LD, Operand: Load{Dst: LocE, Src: LocHL}, Length: 1, Cycles: 2},
	0x5F: {Op: LD, Operand: Load{Dst: LocE, Src: LocA}, Length: 1, Cycles: 1},
	0x60: {Op: LD, Operand: Load{Dst: LocH, Src: LocB}, Length: 1, Cycles: 1},
	0x61: {Op: LD, Operand: Load{Dst: LocH, Src: LocC}, Length: 1, Cycles: 1},
	0x62: {Op: LD, Operand: Load{Dst: LocH, Src: LocD}, Length: 1, Cycles: 1},
	0x63: {Op: LD, Operand: Load{Dst: LocH, Src: LocE}, Length: 1, Cycles: 1},
	0x64: {Op: LD, Operand: Load{Dst: LocH, Src: LocH}, Length: 1, Cycles: 1},
	0x65: {Op: LD, Operand: Load{Dst: LocH, Src: LocL}, Length: 1, Cycles: 1},
	0x66: {Op: LD, Operand: Load{Dst: LocH, Src: LocHL}, Length: 1, Cycles: 2},
	0x67: {Op: LD, Operand: Load{Dst: LocH, Src: LocA}, Length: 1, Cycles: 1},
	0x68: {Op: LD, Operand: Load{Dst: LocL, Src: LocB}, Length: 1, Cycles: 1},
	0x69: {Op: LD, Operand: Load{Dst: LocL, Src: LocC}, Length: 1, Cycles: 1},
	0x6A: {Op: LD, Operand: Load{Dst: LocL, Src: LocD}, Length: 1, Cycles: 1},
	0x6B: {Op: LD, Operand: Load{Dst: LocL, Src: LocE}, Length: 1, Cycles: 1},
	0x6C: {Op: LD, Operand: Load{Dst: LocL, Src: LocH}, Length: 1, Cycles: 1},
	0x6D: {Op: LD, Operand: Load{Dst: LocL, Src: LocL}, Length: 1, Cycles: 1},
	0x6E: {Op: LD, Operand: Load{Dst: LocL, Src: LocHL}, Length: 1, Cycles: 2},
	0x6F: {Op: LD, Operand: Load{Dst: LocL, Src: LocA}, Length: 1, Cycles: 1},
	0x70: {Op: LD, Operand: Load{Dst: LocHL, Src: LocB}, Length: 1, Cycles: 2},
	0x71: {Op: LD, Operand: Load{Dst: LocHL, Src: LocC}, Length: 1, Cycles: 2},
	0x72: {Op: LD, Operand: Load{Dst: LocHL, Src: LocD}, Length: 1, Cycles: 2},
	0x73: {Op: LD, Operand: Load{Dst: LocHL, Src: LocE}, Length: 1, Cycles: 2},
	0x74: {Op: LD, Operand: Load{Dst: LocHL, Src: LocH}, Length: 1, Cycles: 2},
	0x75: {Op: LD, Operand: Load{Dst: LocHL, Src: LocL}, Length: 1, Cycles: 2},
	0x76: {Op: HALT, Operand: None{}, Length: 1, Cycles: 1},
	0x77: {Op: LD, Operand: Load{Dst: LocHL, Src: LocA}, Length: 1, Cycles: 2},
	0x78: {Op: LD, Operand: Load{Dst: LocA, Src: LocB}, Length: 1, Cycles: 1},
	0x79: {Op: LD, Operand: Load{Dst: LocA, Src: LocC}, Length: 1, Cycles: 1},
	0x7A: {Op: LD, Operand: Load{Dst: LocA, Src: LocD}, Length: 1, Cycles: 1},
	0x7B: {Op: LD, Operand: Load{Dst: LocA, Src: LocE}, Length: 1, Cycles: 1},
	0x7C: {Op: LD, Operand: Load{Dst: LocA, Src: LocH}, Length: 1, Cycles: 1},
	0x7D: {Op: LD, Operand: Load{Dst: LocA, Src: LocL}, Length: 1, Cycles: 1},
	0x7E: {Op: LD, Operand: Load{Dst: LocA, Src: LocHL}, Length: 1, Cycles: 2},
	0x7F: {Op: LD, Operand: Load{Dst: LocA, Src: LocA}, Length: 1, Cycles: 1},
	0x80: {Op: ADD, Operand: Arithmetic{Arg: LocB}, Length: 1, Cycles: 1},
	0x81: {Op: ADD, Operand: Arithmetic{Arg: LocC}, Length: 1, Cycles: 1},
	0x82: {Op: ADD, Operand: Arithmetic{Arg: LocD}, Length: 1, Cycles: 1},
	0x83: {Op: ADD, Operand: Arithmetic{Arg: LocE}, Length: 1, Cycles: 1},
	0x84: {Op: ADD, Operand: Arithmetic{Arg: LocH}, Length: 1, Cycles: 1},
	0x85: {Op: ADD, Operand: Arithmetic{Arg: LocL}, Length: 1, Cycles: 1},
	0x86: {Op: ADD, Operand: Arithmetic{Arg: LocHL}, Length: 1, Cycles: 2},
	0x87: {Op: ADD, Operand: Arithmetic{Arg: LocA}, Length: 1, Cycles: 1},
	0x88: {Op: ADC, Operand: Arithmetic{Arg: LocB}, Length: 1, Cycles: 1},
	0x89: {Op: ADC, Operand: Arithmetic{Arg: LocC}, Length: 1, Cycles: 1},
	0x8A: {Op: ADC, Operand: Arithmetic{Arg: LocD}, Length: 1, Cycles: 1},
	0x8B: {Op: ADC, Operand: Arithmetic{Arg: LocE}, Length: 1, Cycles: 1},
	0x8C: {Op: ADC, Operand: Arithmetic{Arg: LocH}, Length: 1, Cycles: 1},
	0x8D: {Op: ADC, Operand: Arithmetic{Arg: LocL}, Length: 1, Cycles: 1},
	0x8E: {Op: ADC, Operand: Arithmetic{Arg: LocHL}, Length: 1, Cycles: 2},
	0x8F: {Op: ADC, Operand: Arithmetic{Arg: LocA}, Length: 1, Cycles: 1},
	0x90: {Op: SUB, Operand: Arithmetic{Arg: LocB}, Length: 1, Cycles: 1},
	0x91: {Op: SUB, Operand: Arithmetic{Arg: LocC}, Length: 1, Cycles: 1},
	0x92: {Op: SUB, Operand: Arithmetic{Arg: LocD}, Length: 1, Cycles: 1},
	0x93: {Op: SUB, Operand: Arithmetic{Arg: LocE}, Length: 1, Cycles: 1},
	0x94: {Op: SUB, Operand: Arithmetic{Arg: LocH}, Length: 1, Cycles: 1},
	0x95: {Op: SUB, Operand: Arithmetic{Arg: LocL}, Length: 1, Cycles: 1},
	0x96: {Op: SUB, Operand: Arithmetic{Arg: LocHL}, Length: 1, Cycles: 2},
	0x97: {Op: SUB, Operand: Arithmetic{Arg: LocA}, Length: 1, Cycles: 1},
	0x98: {Op: SBC, Operand: Arithmetic{Arg: LocB}, Length: 1, Cycles: 1},
	0x99: {Op: SBC, Operand: Arithmetic{Arg: LocC}, Length: 1, Cycles: 1},
	0x9A: {Op: SBC, Operand: Arithmetic{Arg: LocD}, Length: 1, Cycles: 1},
	0x9B: {Op: SBC, Operand: Arithmetic{Arg: LocE}, Length: 1, Cycles: 1},
	0x9C: {Op: SBC, Operand: Arithmetic{Arg: LocH}, Length: 1, Cycles: 1},
	0x9D: {Op: SBC, Operand: Arithmetic{Arg: LocL}, Length: 1, Cycles: 1},
	0x9E: {Op: SBC, Operand: Arithmetic{Arg: LocHL}, Length: 1, Cycles: 2},
	0x9F: {Op: SBC, Operand: Arithmetic{Arg: LocA}, Length: 1, Cycles: 1},
	0xA0: {Op: AND, Operand: Arithmetic{Arg: LocB}, Length: 1, Cycles: 1},
	0xA1: {Op: AND, Operand: Arithmetic{Arg: LocC}, Length: 1, Cycles: 1},
	0xA2: {Op: AND, Operand: Arithmetic{Arg: LocD}, Length: 1, Cycles: 1},
	0xA3: {Op: AND, Operand: Arithmetic{Arg: LocE}, Length: 1, Cycles: 1},
	0xA4: {Op: AND, Operand: Arithmetic{Arg: LocH}, Length: 1, Cycles: 1},
	0xA5: {Op: AND, Operand: Arithmetic{Arg: LocL}, Length: 1, Cycles: 1},
	0xA6: {Op: AND, Operand: Arithmetic{Arg: LocHL}, Length: 1, Cycles: 2},
	0xA7: {Op: AND, Operand: Arithmetic{Arg: LocA}, Length: 1, Cycles: 1},
	0xA8: {Op: XOR, Operand: Arithmetic{Arg: LocB}, Length: 1, Cycles: 1},
	0xA9: {Op: XOR, Operand: Arithmetic{Arg: LocC}, Length: 1, Cycles: 1},
	0xAA: {Op: XOR, Operand: Arithmetic{Arg: LocD}, Length: 1, Cycles: 1},
	0xAB: {Op: XOR, Operand: Arithmetic{Arg: LocE}, Length: 1, Cycles: 1},
	0xAC: {Op: XOR, Operand: Arithmetic{Arg: LocH}, Length: 1, Cycles: 1},
	0xAD: {Op: XOR, Operand: Arithmetic{Arg: LocL}, Length: 1, Cycles: 1},
	0xAE: {Op: XOR, Operand: Arithmetic{Arg: LocHL}, Length: 1, Cycles: 2},
	0xAF: {Op: XOR, Operand: Arithmetic{Arg: LocA}, Length: 1, Cycles: 1},
	0xB0: {Op: OR, Operand: Arithmetic{Arg: LocB}, Length: 1, Cycles: 1},
	0xB1: {Op: OR, Operand: Arithmetic{Arg: LocC}, Length: 1, Cycles: 1},
	0xB2: {Op: OR, Operand: Arithmetic{Arg: LocD}, Length: 1, Cycles: 1},
	0xB3: {Op: OR, Operand: Arithmetic{Arg: LocE}, Length: 1, Cycles: 1},
	0xB4: {Op: OR, Operand: Arithmetic{Arg: LocH}, Length: 1, Cycles: 1},
	0xB5: {Op: OR, Operand: Arithmetic{Arg: LocL}, Length: 1, Cycles: 1},
	0xB6: {Op: OR, Operand: Arithmetic{Arg: LocHL}, Length: 1, Cycles: 2},
	0xB7: {Op: OR, Operand: Arithmetic{Arg: LocA}, Length: 1, Cycles: 1},
	0xB8: {Op: CP, Operand: Arithmetic{Arg: LocB}, Length: 1, Cycles: 1},
	0xB9: {Op: CP, Operand: Arithmetic{Arg: LocC}, Length: 1, Cycles: 1},
	0xBA: {Op: CP, Operand: Arithmetic{Arg: LocD}, Length: 1, Cycles: 1},
	0xBB: {Op: CP, Operand: Arithmetic{Arg: LocE}, Length: 1, Cycles: 1},
	0xBC: {Op: CP, Operand: Arithmetic{Arg: LocH}, Length: 1, Cycles: 1},
	0xBD: {Op: CP, Operand: Arithmetic{Arg: LocL}, Length: 1, Cycles: 1},
	0xBE: {Op: CP, Operand: Arithmetic{Arg: LocHL}, Length: 1, Cycles: 2},
	0xBF: {Op: CP, Operand: Arithmetic{Arg: LocA}, Length: 1, Cycles: 1},
	0xC0: {Op: RET, Operand: Return{Cond: IfNotZero}, Length: 1, Cycles: 2, Taken: 5},
	0xC1: {Op: POP, Operand: Pop{Pair: PairBC}, Length: 1, Cycles: 3},
	0xC2: {Op: JP, Operand: Jump{Cond: IfNotZero}, Length: 3, Cycles: 3, Taken: 4},
	0xC3: {Op: JP, Operand: Jump{Cond: Always}, Length: 3, Cycles: 4},
	0xC4: {Op: CALL, Operand: Call{Cond: IfNotZero}, Length: 3, Cycles: 3, Taken: 6},
	0xC5: {Op: PUSH, Operand: Push{Pair: PairBC}, Length: 1, Cycles: 4},
	0xC6: {Op: ADD, Operand: Arithmetic{Arg: LocD8}, Length: 2, Cycles: 2},
	0xC7: {Op: RST, Operand: Restart{Vector: 0x00}, Length: 1, Cycles: 4},
	0xC8: {Op: RET, Operand: Return{Cond: IfZero}, Length: 1, Cycles: 2, Taken: 5},
	0xC9: {Op: RET, Operand: Return{Cond: Always}, Length: 1, Cycles: 4},
	0xCA: {Op: JP, Operand: Jump{Cond: IfZero}, Length: 3, Cycles: 3, Taken: 4},
	// 0xCB: prefix
	0xCC: {Op: CALL, Operand: Call{Cond: IfZero}, Length: 3, Cycles: 3, Taken: 6},
	0xCD: {Op: CALL, Operand: Call{Cond: Always}, Length: 3, Cycles: 6},
	0xCE: {Op: ADC, Operand: Arithmetic{Arg: LocD8}, Length: 2, Cycles: 2},
	0xCF: {Op: RST, Operand: Restart{Vector: 0x08}, Length: 1, Cycles: 4},
	0xD0: {Op: RET, Operand: Return{Cond: IfNotCarry}, Length: 1, Cycles: 2, Taken: 5},
	0xD1: {Op: POP, Operand: Pop{Pair: PairDE}, Length: 1, Cycles: 3},
	0xD2: {Op: JP, Operand: Jump{Cond: IfNotCarry}, Length: 3, Cycles: 3, Taken: 4},
	0xD3: {Op: Unsupported, Operand: None{}, Length: 1, Cycles: 0},
	0xD4: {Op: CALL, Operand: Call{Cond: IfNotCarry}, Length: 3, Cycles: 3, Taken: 6},
	0xD5: {Op: PUSH, Operand: Push{Pair: PairDE}, Length: 1, Cycles: 4},
	0xD6: {Op: SUB, Operand: Arithmetic{Arg: LocD8}, Length: 2, Cycles: 2},
	0xD7: {Op: RST, Operand: Restart{Vector: 0x10}, Length: 1, Cycles: 4},
	0xD8: {Op: RET, Operand: Return{Cond: IfCarry}, Length: 1, Cycles: 2, Taken: 5},
	0xD9: {Op: RETI, Operand: Return{Cond: Always}, Length: 1, Cycles: 4},
	0xDA: {Op: JP, Operand: Jump{Cond: IfCarry}, Length: 3, Cycles: 3, Taken: 4},
	0xDB: {Op: Unsupported, Operand: None{}, Length: 1, Cycles: 0},
	0xDC: {Op: CALL, Operand: Call{Cond: IfCarry}, Length: 3, Cycles: 3, Taken: 6},
	0xDD: {Op: Unsupported, Operand: None{}, Length: 1, Cycles: 0},
	0xDE: {Op: SBC, Operand: Arithmetic{Arg: LocD8}, Length: 2, Cycles: 2},
	0xDF: {Op: RST, Operand: Restart{Vector: 0x18}, Length: 1, Cycles: 4},
	0xE0: {Op: LD, Operand: Load{Dst: LocA8, Src: LocA}, Length: 2, Cycles: 3},
	0xE1: {Op: POP, Operand: Pop{Pair: PairHL}, Length: 1, Cycles: 3},
	0xE2: {Op: LD, Operand: Load{Dst: LocCA, Src: LocA}, Length: 1, Cycles: 2},
	0xE3: {Op: Unsupported, Operand: None{}, Length: 1, Cycles: 0},
	0xE4: {Op: Unsupported, Operand: None{}, Length: 1, Cycles: 0},
	0xE5: {Op: PUSH, Operand: Push{Pair: PairHL}, Length: 1, Cycles: 4},
	0xE6: {Op: AND, Operand: Arithmetic{Arg: LocD8}, Length: 2, Cycles: 2},
	0xE7: {Op: RST, Operand: Restart{Vector: 0x20}, Length: 1, Cycles: 4},
	0xE8: {Op: ADD, Operand: AddSP{}, Length: 2, Cycles: 4},
	0xE9: {Op: JP, Operand: JumpHL{}, Length: 1, Cycles: 1},
	0xEA: {Op: LD, Operand: Load{Dst: LocA16, Src: LocA}, Length: 3, Cycles: 4},
	0xEB: {Op: Unsupported, Operand: None{}, Length: 1, Cycles: 0},
	0xEC: {Op: Unsupported, Operand: None{}, Length: 1, Cycles: 0},
	0xED: {Op: Unsupported, Operand: None{}, Length: 1, Cycles: 0},
	0xEE: {Op: XOR, Operand: Arithmetic{Arg: LocD8}, Length: 2, Cycles: 2},
	0xEF: {Op: RST, Operand: Restart{Vector: 0x28}, Length: 1, Cycles: 4},
	0xF0: {Op: LD, Operand: Load{Dst: LocA, Src: LocA8}, Length: 2, Cycles: 3},
	0xF1: {Op: POP, Operand: Pop{Pair: PairAF}, Length: 1, Cycles: 3},
	0xF2: {Op: LD, Operand: Load{Dst: LocA, Src: LocCA}, Length: 1, Cycles: 2},
	0xF3: {Op: DI, Operand: None{}, Length: 1, Cycles: 1},
	0xF4: {Op: Unsupported, Operand: None{}, Length: 1, Cycles: 0},
	0xF5: {Op: PUSH, Operand: Push{Pair: PairAF}, Length: 1, Cycles: 4},
	0xF6: {Op: OR, Operand: Arithmetic{Arg: LocD8}, Length: 2, Cycles: 2},
	0xF7: {Op: RST, Operand: Restart{Vector: 0x30}, Length: 1, Cycles: 4},
	0xF8: {Op: LD, Operand: LoadHLSP{}, Length: 2, Cycles: 3},
	0xF9: {Op: LD, Operand: LoadSPHL{}, Length: 1, Cycles: 2},
	0xFA: {Op: LD, Operand: Load{Dst: LocA, Src: LocA16}, Length: 3, Cycles: 4},
	0xFB: {Op: EI, Operand: None{}, Length: 1, Cycles: 1},
	0xFC: {Op: Unsupported, Operand: None{}, Length: 1, Cycles: 0},
	0xFD: {Op: Unsupported, Operand: None{}, Length: 1, Cycles: 0},
	0xFE: {Op: CP, Operand: Arithmetic{Arg: LocD8}, Length: 2, Cycles: 2},
	0xFF: {Op: RST, Operand: Restart{Vector: 0x38}, Length: 1, Cycles: 4},
}
