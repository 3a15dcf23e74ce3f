package cpu

// Register represents a GB Register which is used to hold an 8-bit value.
// The CPU has 8 registers: A, B, C, D, E, H, L, and F. The F register is
// special in that it is used to hold the flags.
type Register = uint8

// RegisterPair represents a pair of GB Registers which is used to hold a 16-bit
// value. The CPU has 4 register pairs: AF, BC, DE, and HL. The High register
// holds the most significant byte.
type RegisterPair struct {
	High *Register
	Low  *Register

	lowMask uint8 // bits of Low that can be written
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value) & r.lowMask
}

// Registers represents the GB CPU registers.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
	AF *RegisterPair
}

// NewRegisters returns a zeroed register file, with the
// register pairs bound to their 8-bit halves.
func NewRegisters() *Registers {
	r := &Registers{}
	r.bindPairs()
	return r
}

func (r *Registers) bindPairs() {
	r.BC = &RegisterPair{High: &r.B, Low: &r.C, lowMask: 0xFF}
	r.DE = &RegisterPair{High: &r.D, Low: &r.E, lowMask: 0xFF}
	r.HL = &RegisterPair{High: &r.H, Low: &r.L, lowMask: 0xFF}
	// the lower nibble of F is always 0
	r.AF = &RegisterPair{High: &r.A, Low: &r.F, lowMask: 0xF0}
}

// HalfAdd sets FlagHalfCarry if adding a and b carries out of
// bit 3. It must be called with the operands before the addition.
func (r *Registers) HalfAdd(a, b uint8) {
	r.SetFlag(FlagHalfCarry, ((a&0xF)+(b&0xF))&0x10 != 0)
}

// HalfSub sets FlagHalfCarry if subtracting b from a borrows
// from bit 4. It must be called with the operands before the
// subtraction.
func (r *Registers) HalfSub(a, b uint8) {
	r.SetFlag(FlagHalfCarry, a&0xF < b&0xF)
}
