package cpu

import "github.com/thelolagemann/gbcore/pkg/bits"

// Flag is the bit index of a flag in the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// IsFlagSet returns true if the given flag is set.
func (r *Registers) IsFlagSet(flag Flag) bool {
	return bits.Test(r.F, flag)
}

// SetFlag sets or clears the given flag.
func (r *Registers) SetFlag(flag Flag, value bool) {
	r.F = bits.Assign(r.F, flag, value)
}

// ToggleCarry inverts FlagCarry.
func (r *Registers) ToggleCarry() {
	r.SetFlag(FlagCarry, !r.IsFlagSet(FlagCarry))
}

// setFlags sets all four flags at once.
func (r *Registers) setFlags(zero, subtract, halfCarry, carry bool) {
	r.SetFlag(FlagZero, zero)
	r.SetFlag(FlagSubtract, subtract)
	r.SetFlag(FlagHalfCarry, halfCarry)
	r.SetFlag(FlagCarry, carry)
}

// shouldZeroFlag sets FlagZero if the given value is 0.
func (r *Registers) shouldZeroFlag(value uint8) {
	r.SetFlag(FlagZero, value == 0)
}
