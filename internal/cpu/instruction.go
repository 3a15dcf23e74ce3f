package cpu

import "fmt"

// Operation identifies what an Instruction does.
type Operation uint8

const (
	// Unsupported is the operation of every opcode that has no
	// assigned meaning. Executing it is a fatal error.
	Unsupported Operation = iota
	NOP
	STOP
	HALT
	DI
	EI
	DAA
	CPL
	SCF
	CCF
	LD
	INC
	DEC
	ADD
	ADC
	SUB
	SBC
	AND
	XOR
	OR
	CP
	JP
	JR
	CALL
	RET
	RETI
	RST
	PUSH
	POP
	RLCA
	RLA
	RRCA
	RRA
	RLC
	RRC
	RL
	RR
	SLA
	SRA
	SWAP
	SRL
	BIT
	RES
	SET
)

var operationNames = [...]string{
	Unsupported: "UNSUPPORTED",
	NOP:         "NOP",
	STOP:        "STOP",
	HALT:        "HALT",
	DI:          "DI",
	EI:          "EI",
	DAA:         "DAA",
	CPL:         "CPL",
	SCF:         "SCF",
	CCF:         "CCF",
	LD:          "LD",
	INC:         "INC",
	DEC:         "DEC",
	ADD:         "ADD",
	ADC:         "ADC",
	SUB:         "SUB",
	SBC:         "SBC",
	AND:         "AND",
	XOR:         "XOR",
	OR:          "OR",
	CP:          "CP",
	JP:          "JP",
	JR:          "JR",
	CALL:        "CALL",
	RET:         "RET",
	RETI:        "RETI",
	RST:         "RST",
	PUSH:        "PUSH",
	POP:         "POP",
	RLCA:        "RLCA",
	RLA:         "RLA",
	RRCA:        "RRCA",
	RRA:         "RRA",
	RLC:         "RLC",
	RRC:         "RRC",
	RL:          "RL",
	RR:          "RR",
	SLA:         "SLA",
	SRA:         "SRA",
	SWAP:        "SWAP",
	SRL:         "SRL",
	BIT:         "BIT",
	RES:         "RES",
	SET:         "SET",
}

func (o Operation) String() string {
	if int(o) < len(operationNames) {
		return operationNames[o]
	}
	return fmt.Sprintf("Operation(%d)", o)
}

// Location is an 8-bit operand: one of the single registers, a
// memory cell addressed through a register pair or an immediate,
// or the immediate byte itself.
type Location uint8

const (
	LocA   Location = iota // A
	LocB                   // B
	LocC                   // C
	LocD                   // D
	LocE                   // E
	LocH                   // H
	LocL                   // L
	LocHL                  // (HL)
	LocHLI                 // (HL+), HL incremented after the access
	LocHLD                 // (HL-), HL decremented after the access
	LocBC                  // (BC)
	LocDE                  // (DE)
	LocD8                  // 8-bit immediate
	LocA8                  // (0xFF00 + a8)
	LocA16                 // (a16)
	LocCA                  // (0xFF00 + C)
)

var locationNames = [...]string{
	LocA:   "A",
	LocB:   "B",
	LocC:   "C",
	LocD:   "D",
	LocE:   "E",
	LocH:   "H",
	LocL:   "L",
	LocHL:  "(HL)",
	LocHLI: "(HL+)",
	LocHLD: "(HL-)",
	LocBC:  "(BC)",
	LocDE:  "(DE)",
	LocD8:  "d8",
	LocA8:  "(a8)",
	LocA16: "(a16)",
	LocCA:  "(C)",
}

func (l Location) String() string {
	if int(l) < len(locationNames) {
		return locationNames[l]
	}
	return fmt.Sprintf("Location(%d)", l)
}

// Pair is a 16-bit operand.
type Pair uint8

const (
	PairBC Pair = iota
	PairDE
	PairHL
	PairSP
	PairAF
)

var pairNames = [...]string{
	PairBC: "BC",
	PairDE: "DE",
	PairHL: "HL",
	PairSP: "SP",
	PairAF: "AF",
}

func (p Pair) String() string {
	if int(p) < len(pairNames) {
		return pairNames[p]
	}
	return fmt.Sprintf("Pair(%d)", p)
}

// Condition is evaluated against the flags by conditional
// jumps, calls and returns.
type Condition uint8

const (
	Always Condition = iota
	IfZero
	IfNotZero
	IfCarry
	IfNotCarry
)

var conditionNames = [...]string{
	Always:     "",
	IfZero:     "Z",
	IfNotZero:  "NZ",
	IfCarry:    "C",
	IfNotCarry: "NC",
}

func (c Condition) String() string {
	if int(c) < len(conditionNames) {
		return conditionNames[c]
	}
	return fmt.Sprintf("Condition(%d)", c)
}

// Operand is the operand shape of an Instruction. The concrete
// types below are the only implementations.
type Operand interface {
	operand()
}

type (
	// None is the operand of instructions that take no operand.
	None struct{}
	// Arithmetic is the operand of the 8-bit ALU, INC and DEC.
	Arithmetic struct{ Arg Location }
	// Load is the operand of the 8-bit loads.
	Load struct{ Dst, Src Location }
	// Jump is the operand of JP cc, a16.
	Jump struct{ Cond Condition }
	// JumpRelative is the operand of JR cc, r8.
	JumpRelative struct{ Cond Condition }
	// JumpHL is the operand of JP HL.
	JumpHL struct{}
	// Call is the operand of CALL cc, a16.
	Call struct{ Cond Condition }
	// Return is the operand of RET cc and RETI.
	Return struct{ Cond Condition }
	// Restart is the operand of RST, holding its fixed vector.
	Restart struct{ Vector uint16 }
	// Push is the operand of PUSH rr.
	Push struct{ Pair Pair }
	// Pop is the operand of POP rr.
	Pop struct{ Pair Pair }
	// Unary16 is the operand of the 16-bit INC and DEC.
	Unary16 struct{ Pair Pair }
	// Load16 is the operand of LD rr, d16.
	Load16 struct{ Pair Pair }
	// Add16 is the operand of ADD HL, rr.
	Add16 struct{ Pair Pair }
	// StoreSP is the operand of LD (a16), SP.
	StoreSP struct{}
	// AddSP is the operand of ADD SP, r8.
	AddSP struct{}
	// LoadHLSP is the operand of LD HL, SP+r8.
	LoadHLSP struct{}
	// LoadSPHL is the operand of LD SP, HL.
	LoadSPHL struct{}
	// Rotate is the operand of the rotate, shift and swap group.
	Rotate struct{ Target Location }
	// Bit is the operand of BIT, RES and SET.
	Bit struct {
		Target Location
		Index  uint8
	}
)

func (None) operand()         {}
func (Arithmetic) operand()   {}
func (Load) operand()         {}
func (Jump) operand()         {}
func (JumpRelative) operand() {}
func (JumpHL) operand()       {}
func (Call) operand()         {}
func (Return) operand()       {}
func (Restart) operand()      {}
func (Push) operand()         {}
func (Pop) operand()          {}
func (Unary16) operand()      {}
func (Load16) operand()       {}
func (Add16) operand()        {}
func (StoreSP) operand()      {}
func (AddSP) operand()        {}
func (LoadHLSP) operand()     {}
func (LoadSPHL) operand()     {}
func (Rotate) operand()       {}
func (Bit) operand()          {}

// Instruction is the immutable descriptor of a decoded instruction.
type Instruction struct {
	Op      Operation
	Operand Operand
	// Length is the number of bytes of the instruction, including
	// the opcode and the 0xCB prefix.
	Length uint8
	// Cycles is the number of machine cycles the instruction takes.
	// For conditional instructions this is the cost when the
	// condition does not hold.
	Cycles uint8
	// Taken is the number of machine cycles a conditional
	// instruction takes when its condition holds, 0 otherwise.
	Taken uint8
}

// cost returns the number of cycles to report for the instruction.
func (i Instruction) cost(taken bool) uint8 {
	if taken && i.Taken != 0 {
		return i.Taken
	}
	return i.Cycles
}

// String returns the mnemonic of the instruction, such as
// "LD A, (HL+)" or "JR NZ, r8".
func (i Instruction) String() string {
	switch o := i.Operand.(type) {
	case Arithmetic:
		switch i.Op {
		case ADD, ADC, SBC:
			return fmt.Sprintf("%s A, %s", i.Op, o.Arg)
		}
		return fmt.Sprintf("%s %s", i.Op, o.Arg)
	case Load:
		return fmt.Sprintf("LD %s, %s", o.Dst, o.Src)
	case Jump:
		return withCondition("JP", o.Cond, "a16")
	case JumpRelative:
		return withCondition("JR", o.Cond, "r8")
	case JumpHL:
		return "JP HL"
	case Call:
		return withCondition("CALL", o.Cond, "a16")
	case Return:
		if i.Op == RETI {
			return "RETI"
		}
		if o.Cond == Always {
			return "RET"
		}
		return "RET " + o.Cond.String()
	case Restart:
		return fmt.Sprintf("RST %02XH", o.Vector)
	case Push:
		return "PUSH " + o.Pair.String()
	case Pop:
		return "POP " + o.Pair.String()
	case Unary16:
		return fmt.Sprintf("%s %s", i.Op, o.Pair)
	case Load16:
		return fmt.Sprintf("LD %s, d16", o.Pair)
	case Add16:
		return fmt.Sprintf("ADD HL, %s", o.Pair)
	case StoreSP:
		return "LD (a16), SP"
	case AddSP:
		return "ADD SP, r8"
	case LoadHLSP:
		return "LD HL, SP+r8"
	case LoadSPHL:
		return "LD SP, HL"
	case Rotate:
		switch i.Op {
		case RLCA, RLA, RRCA, RRA:
			return i.Op.String()
		}
		return fmt.Sprintf("%s %s", i.Op, o.Target)
	case Bit:
		return fmt.Sprintf("%s %d, %s", i.Op, o.Index, o.Target)
	}
	return i.Op.String()
}

func withCondition(name string, cond Condition, arg string) string {
	if cond == Always {
		return name + " " + arg
	}
	return fmt.Sprintf("%s %s, %s", name, cond, arg)
}
