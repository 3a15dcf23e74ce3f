package gameboy

import (
	"github.com/thelolagemann/gbcore/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy)

// Debug enables the per instruction trace of the CPU.
func Debug() Opt {
	return func(gb *GameBoy) {
		gb.CPU.Debug = true
	}
}

// WithLogger replaces the logger of the GameBoy and its CPU.
func WithLogger(l log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = l
	}
}

// NoBios skips the boot ROM by setting CPU.PC to 0x100.
func NoBios() Opt {
	return func(gb *GameBoy) {
		gb.CPU.PC = 0x0100
	}
}

// WithProgram loads program into memory at address.
func WithProgram(address uint16, program []byte) Opt {
	return func(gb *GameBoy) {
		gb.MMU.Load(address, program)
	}
}
