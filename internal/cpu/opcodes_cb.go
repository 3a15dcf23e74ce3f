package cpu

// InstructionSetCB holds the descriptor of every opcode following
// the 0xCB prefix.
var InstructionSetCB = [256]Instruction{
	0x00: {Op: RLC, Operand: Rotate{Target: LocB}, Length: 2, Cycles: 2},
	0x01: {Op: RLC, Operand: Rotate{Target: LocC}, Length: 2, Cycles: 2},
	0x02: {Op: RLC, Operand: Rotate{Target: LocD}, Length: 2, Cycles: 2},
	0x03: {Op: RLC, Operand: Rotate{Target: LocE}, Length: 2, Cycles: 2},
	0x04: {Op: RLC, Operand: Rotate{Target: LocH}, Length: 2, Cycles: 2},
	0x05: {Op: RLC, Operand: Rotate{Target: LocL}, Length: 2, Cycles: 2},
	0x06: {Op: RLC, Operand: Rotate{Target: LocHL}, Length: 2, Cycles: 4},
	0x07: {Op: RLC, Operand: Rotate{Target: LocA}, Length: 2, Cycles: 2},
	0x08: {Op: RRC, Operand: Rotate{Target: LocB}, Length: 2, Cycles: 2},
	0x09: {Op: RRC, Operand: Rotate{Target: LocC}, Length: 2, Cycles: 2},
	0x0A: {Op: RRC, Operand: Rotate{Target: LocD}, Length: 2, Cycles: 2},
	0x0B: {Op: RRC, Operand: Rotate{Target: LocE}, Length: 2, Cycles: 2},
	0x0C: {Op: RRC, Operand: Rotate{Target: LocH}, Length: 2, Cycles: 2},
	0x0D: {Op: RRC, Operand: Rotate{Target: LocL}, Length: 2, Cycles: 2},
	0x0E: {Op: RRC, Operand: Rotate{Target: LocHL}, Length: 2, Cycles: 4},
	0x0F: {Op: RRC, Operand: Rotate{Target: LocA}, Length: 2, Cycles: 2},
	0x10: {Op: RL, Operand: Rotate{Target: LocB}, Length: 2, Cycles: 2},
	0x11: {Op: RL, Operand: Rotate{Target: LocC}, Length: 2, Cycles: 2},
	0x12: {Op: RL, Operand: Rotate{Target: LocD}, Length: 2, Cycles: 2},
	0x13: {Op: RL, Operand: Rotate{Target: LocE}, Length: 2, Cycles: 2},
	0x14: {Op: RL, Operand: Rotate{Target: LocH}, Length: 2, Cycles: 2},
	0x15: {Op: RL, Operand: Rotate{Target: LocL}, Length: 2, Cycles: 2},
	0x16: {Op: RL, Operand: Rotate{Target: LocHL}, Length: 2, Cycles: 4},
	0x17: {Op: RL, Operand: Rotate{Target: LocA}, Length: 2, Cycles: 2},
	0x18: {Op: RR, Operand: Rotate{Target: LocB}, Length: 2, Cycles: 2},
	0x19: {Op: RR, Operand: Rotate{Target: LocC}, Length: 2, Cycles: 2},
	0x1A: {Op: RR, Operand: Rotate{Target: LocD}, Length: 2, Cycles: 2},
	0x1B: {Op: RR, Operand: Rotate{Target: LocE}, Length: 2, Cycles: 2},
	0x1C: {Op: RR, Operand: Rotate{Target: LocH}, Length: 2, Cycles: 2},
	0x1D: {Op: RR, Operand: Rotate{Target: LocL}, Length: 2, Cycles: 2},
	0x1E: {Op: RR, Operand: Rotate{Target: LocHL}, Length: 2, Cycles: 4},
	0x1F: {Op: RR, Operand: Rotate{Target: LocA}, Length: 2, Cycles: 2},
	0x20: {Op: SLA, Operand: Rotate{Target: LocB}, Length: 2, Cycles: 2},
	0x21: {Op: SLA, Operand: Rotate{Target: LocC}, Length: 2, Cycles: 2},
	0x22: {Op: SLA, Operand: Rotate{Target: LocD}, Length: 2, Cycles: 2},
	0x23: {Op: SLA, Operand: Rotate{Target: LocE}, Length: 2, Cycles: 2},
	0x24: {Op: SLA, Operand: Rotate{Target: LocH}, Length: 2, Cycles: 2},
	0x25: {Op: SLA, Operand: Rotate{Target: LocL}, Length: 2, Cycles: 2},
	0x26: {Op: SLA, Operand: Rotate{Target: LocHL}, Length: 2, Cycles: 4},
	0x27: {Op: SLA, Operand: Rotate{Target: LocA}, Length: 2, Cycles: 2},
	0x28: {Op: SRA, Operand: Rotate{Target: LocB}, Length: 2, Cycles: 2},
	0x29: {Op: SRA, Operand: Rotate{Target: LocC}, Length: 2, Cycles: 2},
	0x2A: {Op: SRA, Operand: Rotate{Target: LocD}, Length: 2, Cycles: 2},
	0x2B: {Op: SRA, Operand: Rotate{Target: LocE}, Length: 2, Cycles: 2},
	0x2C: {Op: SRA, Operand: Rotate{Target: LocH}, Length: 2, Cycles: 2},
	0x2D: {Op: SRA, Operand: Rotate{Target: LocL}, Length: 2, Cycles: 2},
	0x2E: {Op: SRA, Operand: Rotate{Target: LocHL}, Length: 2, Cycles: 4},
	0x2F: {Op: SRA, Operand: Rotate{Target: LocA}, Length: 2, Cycles: 2},
	0x30: {Op: SWAP, Operand: Rotate{Target: LocB}, Length: 2, Cycles: 2},
	0x31: {Op: SWAP, Operand: Rotate{Target: LocC}, Length: 2, Cycles: 2},
	0x32: {Op: SWAP, Operand: Rotate{Target: LocD}, Length: 2, Cycles: 2},
	0x33: {Op: SWAP, Operand: Rotate{Target: LocE}, Length: 2, Cycles: 2},
	0x34: {Op: SWAP, Operand: Rotate{Target: LocH}, Length: 2, Cycles: 2},
	0x35: {Op: SWAP, Operand: Rotate{Target: LocL}, Length: 2, Cycles: 2},
	0x36: {Op: SWAP, Operand: Rotate{Target: LocHL}, Length: 2, Cycles: 4},
	0x37: {Op: SWAP, Operand: Rotate{Target: LocA}, Length: 2, Cycles: 2},
	0x38: {Op: SRL, Operand: Rotate{Target: LocB}, Length: 2, Cycles: 2},
	0x39: {Op: SRL, Operand: Rotate{Target: LocC}, Length: 2, Cycles: 2},
	0x3A: {Op: SRL, Operand: Rotate{Target: LocD}, Length: 2, Cycles: 2},
	0x3B: {Op: SRL, Operand: Rotate{Target: LocE}, Length: 2, Cycles: 2},
	0x3C: {Op: SRL, Operand: Rotate{Target: LocH}, Length: 2, Cycles: 2},
	0x3D: {Op: SRL, Operand: Rotate{Target: LocL}, Length: 2, Cycles: 2},
	0x3E: {Op: SRL, Operand: Rotate{Target: LocHL}, Length: 2, Cycles: 4},
	0x3F: {Op: SRL, Operand: Rotate{Target: LocA}, Length: 2, Cycles: 2},
	0x40: {Op: BIT, Operand: Bit{Target: LocB, Index: 0}, Length: 2, Cycles: 2},
	0x41: {Op: BIT, Operand: Bit{Target: LocC, Index: 0}, Length: 2, Cycles: 2},
	0x42: {Op: BIT, Operand: Bit{Target: LocD, Index: 0}, Length: 2, Cycles: 2},
	0x43: {Op: BIT, Operand: Bit{Target: LocE, Index: 0}, Length: 2, Cycles: 2},
	0x44: {Op: BIT, Operand: Bit{Target: LocH, Index: 0}, Length: 2, Cycles: 2},
	0x45: {Op: BIT, Operand: Bit{Target: LocL, Index: 0}, Length: 2, Cycles: 2},
	0x46: {Op: BIT, Operand: Bit{Target: LocHL, Index: 0}, Length: 2, Cycles: 3},
	0x47: {Op: BIT, Operand: Bit{Target: LocA, Index: 0}, Length: 2, Cycles: 2},
	0x48: {Op: BIT, Operand: Bit{Target: LocB, Index: 1}, Length: 2, Cycles: 2},
	0x49: {Op: BIT, Operand: Bit{Target: LocC, Index: 1}, Length: 2, Cycles: 2},
	0x4A: {Op: BIT, Operand: Bit{Target: LocD, Index: 1}, Length: 2, Cycles: 2},
	0x4B: {Op: BIT, Operand: Bit{Target: LocE, Index: 1}, Length: 2, Cycles: 2},
	0x4C: {Op: BIT, Operand: Bit{Target: LocH, Index: 1}, Length: 2, Cycles: 2},
	0x4D: {Op: BIT, Operand: Bit{Target: LocL, Index: 1}, Length: 2, Cycles: 2},
	0x4E: {Op: BIT, Operand: Bit{Target: LocHL, Index: 1}, Length: 2, Cycles: 3},
	0x4F: {Op: BIT, Operand: Bit{Target: LocA, Index: 1}, Length: 2, Cycles: 2},
	0x50: {Op: BIT, Operand: Bit{Target: LocB, Index: 2}, Length: 2, Cycles: 2},
	0x51: {Op: BIT, Operand: Bit{Target: LocC, Index: 2}, Length: 2, Cycles: 2},
	0x52: {Op: BIT, Operand: Bit{Target: LocD, Index: 2}, Length: 2, Cycles: 2},
	0x53: {Op: BIT, Operand: Bit{Target: LocE, Index: 2}, Length: 2, Cycles: 2},
	0x54: {Op: BIT, Operand: Bit{Target: LocH, Index: 2}, Length: 2, Cycles: 2},
	0x55: {Op: BIT, Operand: Bit{Target: LocL, Index: 2}, Length: 2, Cycles: 2},
	0x56: {Op: BIT, Operand: Bit{Target: LocHL, Index: 2}, Length: 2, Cycles: 3},
	0x57: {Op: BIT, Operand: Bit{Target: LocA, Index: 2}, Length: 2, Cycles: 2},
	0x58: {Op: BIT, Operand: Bit{Target: LocB, Index: 3}, Length: 2, Cycles: 2},
	0x59: {Op: BIT, Operand: Bit{Target: LocC, Index: 3}, Length: 2, Cycles: 2},
	0x5A: {Op: BIT, Operand: Bit{Target: LocD, Index: 3}, Length: 2, Cycles: 2},
	0x5B: {Op: BIT, Operand: Bit{Target: LocE, Index: 3}, Length: 2, Cycles: 2},
	0x5C: {Op: BIT, Operand: Bit{Target: LocH, Index: 3}, Length: 2, Cycles: 2},
	0x5D: {Op: BIT, Operand: Bit{Target: LocL, Index: 3}, Length: 2, Cycles: 2},
	0x5E: {Op: BIT, Operand: Bit{Target: LocHL, Index: 3}, Length: 2, Cycles: 3},
	0x5F: {Op: BIT, Operand: Bit{Target: LocA, Index: 3}, Length: 2, Cycles: 2},
	0x60: {Op: BIT, Operand: Bit{Target: LocB, Index: 4}, Length: 2, Cycles: 2},
	0x61: {Op: BIT, Operand: Bit{Target: LocC, Index: 4}, Length: 2, Cycles: 2},
	0x62: {Op: BIT, Operand: Bit{Target: LocD, Index: 4}, Length: 2, Cycles: 2},
	0x63: {Op: BIT, Operand: Bit{Target: LocE, Index: 4}, Length: 2, Cycles: 2},
	0x64: {Op: BIT, Operand: Bit{Target: LocH, Index: 4}, Length: 2, Cycles: 2},
	0x65: {Op: BIT, Operand: Bit{Target: LocL, Index: 4}, Length: 2, Cycles: 2},
	0x66: {Op: BIT, Operand: Bit{Target: LocHL, Index: 4}, Length: 2, Cycles: 3},
	0x67: {Op: BIT, Operand: Bit{Target: LocA, Index: 4}, Length: 2, Cycles: 2},
	0x68: {Op: BIT, Operand: Bit{Target: LocB, Index: 5}, Length: 2, Cycles: 2},
	0x69: {Op: BIT, Operand: Bit{Target: LocC, Index: 5}, Length: 2, Cycles: 2},
	0x6A: {Op: BIT, Operand: Bit{Target: LocD, Index: 5}, Length: 2, Cycles: 2},
	0x6B: {Op: BIT, Operand: Bit{Target: LocE, Index: 5}, Length: 2, Cycles: 2},
	0x6C: {Op: BIT, Operand: Bit{Target: LocH, Index: 5}, Length: 2, Cycles: 2},
	0x6D: {Op: BIT, Operand: Bit{Target: LocL, Index: 5}, Length: 2, Cycles: 2},
	0x6E: {Op: BIT, Operand: Bit{Target: LocHL, Index: 5}, Length: 2, Cycles: 3},
	0x6F: {Op: BIT, Operand: Bit{Target: LocA, Index: 5}, Length: 2, Cycles: 2},
	0x70: {Op: BIT, Operand: Bit{Target: LocB, Index: 6}, Length: 2, Cycles: 2},
	0x71: {Op: BIT, Operand: Bit{Target: LocC, Index: 6}, Length: 2, Cycles: 2},
	0x72: {Op: BIT, Operand: Bit{Target: LocD, Index: 6}, Length: 2, Cycles: 2},
	0x73: {Op: BIT, Operand: Bit{Target: LocE, Index: 6}, Length: 2, Cycles: 2},
	0x74: {Op: BIT, Operand: Bit{Target: LocH, Index: 6}, Length: 2, Cycles: 2},
	0x75: {Op: BIT, Operand: Bit{Target: LocL, Index: 6}, Length: 2, Cycles: 2},
	0x76: {Op: BIT, Operand: Bit{Target: LocHL, Index: 6}, Length: 2, Cycles: 3},
	0x77: {Op: BIT, Operand: Bit{Target: LocA, Index: 6}, Length: 2, Cycles: 2},
	0x78: {Op: BIT, Operand: Bit{Target: LocB, Index: 7}, Length: 2, Cycles: 2},
	0x79: {Op: BIT, Operand: Bit{Target: LocC, Index: 7}, Length: 2, Cycles: 2},
	0x7A: {Op: BIT, Operand: Bit{Target: LocD, Index: 7}, Length: 2, Cycles: 2},
	0x7B: {Op: BIT, Operand: Bit{Target: LocE, Index: 7}, Length: 2, Cycles: 2},
	0x7C: {Op: BIT, Operand: Bit{Target: LocH, Index: 7}, Length: 2, Cycles: 2},
	0x7D: {Op: BIT, Operand: Bit{Target: LocL, Index: 7}, Length: 2, Cycles: 2},
	0x7E: {Op: BIT, Operand: Bit{Target: LocHL, Index: 7}, Length: 2, Cycles: 3},
	0x7F: {Op: BIT, Operand: Bit{Target: LocA, Index: 7}, Length: 2, Cycles: 2},
	0x80: {Op: RES, Operand: Bit{Target: LocB, Index: 0}, Length: 2, Cycles: 2},
	0x81: {Op: RES, Operand: Bit{Target: LocC, Index: 0}, Length: 2, Cycles: 2},
	0x82: {Op: RES, Operand: Bit{Target: LocD, Index: 0}, Length: 2, Cycles: 2},
	0x83: {Op: RES, Operand: Bit{Target: LocE, Index: 0}, Length: 2, Cycles: 2},
	0x84: {Op: RES, Operand: Bit{Target: LocH, Index: 0}, Length: 2, Cycles: 2},
	0x85: {Op: RES, Operand: Bit{Target: LocL, Index: 0}, Length: 2, Cycles: 2},
	0x86: {Op: RES, Operand: Bit{Target: LocHL, Index: 0}, Length: 2, Cycles: 4},
	0x87: {Op: RES, Operand: Bit{Target: LocA, Index: 0}, Length: 2, Cycles: 2},
	0x88: {Op: RES, Operand: Bit{Target: LocB, Index: 1}, Length: 2, Cycles: 2},
	0x89: {Op: RES, Operand: Bit{Target: LocC, Index: 1}, Length: 2, Cycles: 2},
	0x8A: {Op: RES, Operand: Bit{Target: LocD, Index: 1}, Length: 2, Cycles: 2},
	0x8B: {Op: RES, Operand: Bit{Target: LocE, Index: 1}, Length: 2, Cycles: 2},
	0x8C: {Op: RES, Operand: Bit{Target: LocH, Index: 1}, Length: 2, Cycles: 2},
	0x8D: {Op: RES, Operand: Bit{Target: LocL, Index: 1}, Length: 2, Cycles: 2},
	0x8E: {Op: RES, Operand: Bit{Target: LocHL, Index: 1}, Length: 2, Cycles: 4},
	0x8F: {Op: RES, Operand: Bit{Target: LocA, Index: 1}, Length: 2, Cycles: 2},
	0x90: {Op: RES, Operand: Bit{Target: LocB, Index: 2}, Length: 2, Cycles: 2},
	0x91: {Op: RES, Operand: Bit{Target: LocC, Index: 2}, Length: 2, Cycles: 2},
	0x92: {Op: RES, Operand: Bit{Target: LocD, Index: 2}, Length: 2, Cycles: 2},
	0x93: {Op: RES, Operand: Bit{Target: LocE, Index: 2}, Length: 2, Cycles: 2},
	0x94: {Op: RES, Operand: Bit{Target: LocH, Index: 2}, Length: 2, Cycles: 2},
	0x95: {Op: RES, Operand: Bit{Target: LocL, Index: 2}, Length: 2, Cycles: 2},
	0x96: {Op: RES, Operand: Bit{Target: LocHL, Index: 2}, Length: 2, Cycles: 4},
	0x97: {Op: RES, Operand: Bit{Target: LocA, Index: 2}, Length: 2, Cycles: 2},
	0x98: {Op: RES, Operand: Bit{Target: LocB, Index: 3}, Length: 2, Cycles: 2},
	0x99: {Op: RES, Operand: Bit{Target: LocC, Index: 3}, Length: 2, Cycles: 2},
	0x9A: {Op: RES, Operand: Bit{Target: LocD, Index: 3}, Length: 2, Cycles: 2},
	0x9B: {Op: RES, Operand: Bit{Target: LocE, Index: 3}, Length: 2, Cycles: 2},
	0x9C: {Op: RES, Operand: Bit{Target: LocH, Index: 3}, Length: 2, Cycles: 2},
	0x9D: {Op: RES, Operand: Bit{Target: LocL, Index: 3}, Length: 2, Cycles: 2},
	0x9E: {Op: RES, Operand: Bit{Target: LocHL, Index: 3}, Length: 2, Cycles: 4},
	0x9F: {Op: RES, Operand: Bit{Target: LocA, Index: 3}, Length: 2, Cycles: 2},
	0xA0: {Op: RES, Operand: Bit{Target: LocB, Index: 4}, Length: 2, Cycles: 2},
	0xA1: {Op: RES, Operand: Bit{Target: LocC, Index: 4}, Length: 2, Cycles: 2},
	0xA2: {Op: RES, Operand: Bit{Target: LocD, Index: 4}, Length: 2, Cycles: 2},
	0xA3: {Op: RES, Operand: Bit{Target: LocE, Index: 4}, Length: 2, Cycles: 2},
	0xA4: {Op: RES, Operand: Bit{Target: LocH, Index: 4}, Length: 2, Cycles: 2},
	0xA5: {Op: RES, Operand: Bit{Target: LocL, Index: 4}, Length: 2, Cycles: 2},
	0xA6: {Op: RES, Operand: Bit{Target: LocHL, Index: 4}, Length: 2, Cycles: 4},
	0xA7: {Op: RES, Operand: Bit{Target: LocA, Index: 4}, Length: 2, Cycles: 2},
	0xA8: {Op: RES, Operand: Bit{Target: LocB, Index: 5}, Length: 2, Cycles: 2},
	0xA9: {Op: RES, Operand: Bit{Target: LocC, Index: 5}, Length: 2, Cycles: 2},
	0xAA: {Op: RES, Operand: Bit{Target: LocD, Index: 5}, Length: 2, Cycles: 2},
	0xAB: {Op: RES, Operand: Bit{Target: LocE, Index: 5}, Length: 2, Cycles: 2},
	0xAC: {Op: RES, Operand: Bit{Target: LocH, Index: 5}, Length: 2, Cycles: 2},
	0xAD: {Op: RES, Operand: Bit{Target: LocL, Index: 5}, Length: 2, Cycles: 2},
	0xAE: {Op: RES, Operand: Bit{Target: LocHL, Index: 5}, Length: 2, Cycles: 4},
	0xAF: {Op: RES, Operand: Bit{Target: LocA, Index: 5}, Length: 2, Cycles: 2},
	0xB0: {Op: RES, Operand: Bit{Target: LocB, Index: 6}, Length: 2, Cycles: 2},
	0xB1: {Op: RES, Operand: Bit{Target: LocC, Index: 6}, Length: 2, Cycles: 2},
	0xB2: {Op: RES, Operand: Bit{Target: LocD, Index: 6}, Length: 2, Cycles: 2},
	0xB3: {Op: RES, Operand: Bit{Target: LocE, Index: 6}, Length: 2, Cycles: 2},
	0xB4: {Op: RES, Operand: Bit{Target: LocH, Index: 6}, Length: 2, Cycles: 2},
	0xB5: {Op: RES, Operand: Bit{Target: LocL, Index: 6}, Length: 2, Cycles: 2},
	0xB6: {Op: RES, Operand: Bit{Target: LocHL, Index: 6}, Length: 2, Cycles: 4},
	0xB7: {Op: RES, Operand: Bit{Target: LocA, Index: 6}, Length: 2, Cycles: 2},
	0xB8: {Op: RES, Operand: Bit{Target: LocB, Index: 7}, Length: 2, Cycles: 2},
	0xB9: {Op: RES, Operand: Bit{Target: LocC, Index: 7}, Length: 2, Cycles: 2},
	0xBA: {Op: RES, Operand: Bit{Target: LocD, Index: 7}, Length: 2, Cycles: 2},
	0xBB: {Op: RES, Operand: Bit{Target: LocE, Index: 7}, Length: 2, Cycles: 2},
	0xBC: {Op: RES, Operand: Bit{Target: LocH, Index: 7}, Length: 2, Cycles: 2},
	0xBD: {Op: RES, Operand: Bit{Target: LocL, Index: 7}, Length: 2, Cycles: 2},
	0xBE: {Op: RES, Operand: Bit{Target: LocHL, Index: 7}, Length: 2, Cycles: 4},
	0xBF: {Op: RES, Operand: Bit{Target: LocA, Index: 7}, Length: 2, Cycles: 2},
	0xC0: {Op: SET, Operand: Bit{Target: LocB, Index: 0}, Length: 2, Cycles: 2},
	0xC1: {Op: SET, Operand: Bit{Target: LocC, Index: 0}, Length: 2, Cycles: 2},
	0xC2: {Op: SET, Operand: Bit{Target: LocD, Index: 0}, Length: 2, Cycles: 2},
	0xC3: {Op: SET, Operand: Bit{Target: LocE, Index: 0}, Length: 2, Cycles: 2},
	0xC4: {Op: SET, Operand: Bit{Target: LocH, Index: 0}, Length: 2, Cycles: 2},
	0xC5: {Op: SET, Operand: Bit{Target: LocL, Index: 0}, Length: 2, Cycles: 2},
	0xC6: {Op: SET, Operand: Bit{Target: LocHL, Index: 0}, Length: 2, Cycles: 4},
	0xC7: {Op: SET, Operand: Bit{Target: LocA, Index: 0}, Length: 2, Cycles: 2},
	0xC8: {Op: SET, Operand: Bit{Target: LocB, Index: 1}, Length: 2, Cycles: 2},
	0xC9: {Op: SET, Operand: Bit{Target: LocC, Index: 1}, Length: 2, Cycles: 2},
	0xCA: {Op: SET, Operand: Bit{Target: LocD, Index: 1}, Length: 2, Cycles: 2},
	0xCB: {Op: SET, Operand: Bit{Target: LocE, Index: 1}, Length: 2, Cycles: 2},
	0xCC: {Op: SET, Operand: Bit{Target: LocH, Index: 1}, Length: 2, Cycles: 2},
	0xCD: {Op: SET, Operand: Bit{Target: LocL, Index: 1}, Length: 2, Cycles: 2},
	0xCE: {Op: SET, Operand: Bit{Target: LocHL, Index: 1}, Length: 2, Cycles: 4},
	0xCF: {Op: SET, Operand: Bit{Target: LocA, Index: 1}, Length: 2, Cycles: 2},
	0xD0: {Op: SET, Operand: Bit{Target: LocB, Index: 2}, Length: 2, Cycles: 2},
	0xD1: {Op: SET, Operand: Bit{Target: LocC, Index: 2}, Length: 2, Cycles: 2},
	0xD2: {Op: SET, Operand: Bit{Target: LocD, Index: 2}, Length: 2, Cycles: 2},
	0xD3: {Op: SET, Operand: Bit{Target: LocE, Index: 2}, Length: 2, Cycles: 2},
	0xD4: {Op: SET, Operand: Bit{Target: LocH, Index: 2}, Length: 2, Cycles: 2},
	0xD5: {Op: SET, Operand: Bit{Target: LocL, Index: 2}, Length: 2, Cycles: 2},
	0xD6: {Op: SET, Operand: Bit{Target: LocHL, Index: 2}, Length: 2, Cycles: 4},
	0xD7: {Op: SET, Operand: Bit{Target: LocA, Index: 2}, Length: 2, Cycles: 2},
	0xD8: {Op: SET, Operand: Bit{Target: LocB, Index: 3}, Length: 2, Cycles: 2},
	0xD9: {Op: SET, Operand: Bit{Target: LocC, Index: 3}, Length: 2, Cycles: 2},
	0xDA: {Op: SET, Operand: Bit{Target: LocD, Index: 3}, Length: 2, Cycles: 2},
	0xDB: {Op: SET, Operand: Bit{Target: LocE, Index: 3}, Length: 2, Cycles: 2},
	0xDC: {Op: SET, Operand: Bit{Target: LocH, Index: 3}, Length: 2, Cycles: 2},
	0xDD: {Op: SET, Operand: Bit{Target: LocL, Index: 3}, Length: 2, Cycles: 2},
	0xDE: {Op: SET, Operand: Bit{Target: LocHL, Index: 3}, Length: 2, Cycles: 4},
	0xDF: {Op: SET, Operand: Bit{Target: LocA, Index: 3}, Length: 2, Cycles: 2},
	0xE0: {Op: SET, Operand: Bit{Target: LocB, Index: 4}, Length: 2, Cycles: 2},
	0xE1: {Op: SET, Operand: Bit{Target: LocC, Index: 4}, Length: 2, Cycles: 2},
	0xE2: {Op: SET, Operand: Bit{Target: LocD, Index: 4}, Length: 2, Cycles: 2},
	0xE3: {Op: SET, Operand: Bit{Target: LocE, Index: 4}, Length: 2, Cycles: 2},
	0xE4: {Op: SET, Operand: Bit{Target: LocH, Index: 4}, Length: 2, Cycles: 2},
	0xE5: {Op: SET, Operand: Bit{Target: LocL, Index: 4}, Length: 2, Cycles: 2},
	0xE6: {Op: SET, Operand: Bit{Target: LocHL, Index: 4}, Length: 2, Cycles: 4},
	0xE7: {Op: SET, Operand: Bit{Target: LocA, Index: 4}, Length: 2, Cycles: 2},
	0xE8: {Op: SET, Operand: Bit{Target: LocB, Index: 5}, Length: 2, Cycles: 2},
	0xE9: {Op: SET, Operand: Bit{Target: LocC, Index: 5}, Length: 2, Cycles: 2},
	0xEA: {Op: SET, Operand: Bit{Target: LocD, Index: 5}, Length: 2, Cycles: 2},
	0xEB: {Op: SET, Operand: Bit{Target: LocE, Index: 5}, Length: 2, Cycles: 2},
	0xEC: {Op: SET, Operand: Bit{Target: LocH, Index: 5}, Length: 2, Cycles: 2},
	0xED: {Op: SET, Operand: Bit{Target: LocL, Index: 5}, Length: 2, Cycles: 2},
	0xEE: {Op: SET, Operand: Bit{Target: LocHL, Index: 5}, Length: 2, Cycles: 4},
	0xEF: {Op: SET, Operand: Bit{Target: LocA, Index: 5}, Length: 2, Cycles: 2},
	0xF0: {Op: SET, Operand: Bit{Target: LocB, Index: 6}, Length: 2, Cycles: 2},
	0xF1: {Op: SET, Operand: Bit{Target: LocC, Index: 6}, Length: 2, Cycles: 2},
	0xF2: {Op: SET, Operand: Bit{Target: LocD, Index: 6}, Length: 2, Cycles: 2},
	0xF3: {Op: SET, Operand: Bit{Target: LocE, Index: 6}, Length: 2, Cycles: 2},
	0xF4: {Op: SET, Operand: Bit{Target: LocH, Index: 6}, Length: 2, Cycles: 2},
	0xF5: {Op: SET, Operand: Bit{Target: LocL, Index: 6}, Length: 2, Cycles: 2},
	0xF6: {Op: SET, Operand: Bit{Target: LocHL, Index: 6}, Length: 2, Cycles: 4},
	0xF7: {Op: SET, Operand: Bit{Target: LocA, Index: 6}, Length: 2, Cycles: 2},
	0xF8: {Op: SET, Operand: Bit{Target: LocB, Index: 7}, Length: 2, Cycles: 2},
	0xF9: {Op: SET, Operand: Bit{Target: LocC, Index: 7}, Length: 2, Cycles: 2},
	0xFA: {Op: SET, Operand: Bit{Target: LocD, Index: 7}, Length: 2, Cycles: 2},
	0xFB: {Op: SET, Operand: Bit{Target: LocE, Index: 7}, Length: 2, Cycles: 2},
	0xFC: {Op: SET, Operand: Bit{Target: LocH, Index: 7}, Length: 2, Cycles: 2},
	0xFD: {Op: SET, Operand: Bit{Target: LocL, Index: 7}, Length: 2, Cycles: 2},
	0xFE: {Op: SET, Operand: Bit{Target: LocHL, Index: 7}, Length: 2, Cycles: 4},
	0xFF: {Op: SET, Operand: Bit{Target: LocA, Index: 7}, Length: 2, Cycles: 2},
}
