// Package gameboy pairs a CPU with its MMU, and drives them one
// instruction or one frame at a time.
package gameboy

import (
	"time"

	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/mmu"
	"github.com/thelolagemann/gbcore/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the Game Boy, in machine cycles.
	ClockSpeed = 1048576 // 4.194304 MHz / 4
	// CyclesPerFrame is the number of machine cycles per frame.
	CyclesPerFrame = 17556 // 70224 / 4
)

// GameBoy represents a Game Boy. It owns exactly one CPU and one
// MMU, so any number of them can run side by side.
type GameBoy struct {
	CPU *cpu.CPU
	MMU *mmu.MMU

	log.Logger

	currentCycle uint64
}

// New returns a new GameBoy with the given options applied.
func New(opts ...Opt) *GameBoy {
	g := &GameBoy{
		CPU:    cpu.NewCPU(),
		MMU:    mmu.NewMMU(),
		Logger: log.New(),
	}

	for _, opt := range opts {
		opt(g)
	}
	g.CPU.Log = g.Logger

	return g
}

// Step executes a single instruction, and returns the opcode that
// was executed.
func (g *GameBoy) Step() (uint8, error) {
	opcode, err := g.CPU.Step(g.MMU)
	if err != nil {
		g.Errorf("%v", err)
		return opcode, err
	}
	g.currentCycle += uint64(g.CPU.Cycles())

	return opcode, nil
}

// RunFrame steps the emulation until at least CyclesPerFrame
// machine cycles have passed since the start of the frame, and
// returns the number of cycles it ran for. The first error stops
// the frame.
func (g *GameBoy) RunFrame() (uint64, error) {
	start := g.currentCycle
	for g.currentCycle-start < CyclesPerFrame {
		if _, err := g.Step(); err != nil {
			return g.currentCycle - start, err
		}
	}

	return g.currentCycle - start, nil
}

// Cycles returns the number of machine cycles executed so far.
func (g *GameBoy) Cycles() uint64 {
	return g.currentCycle
}

// Elapsed returns the emulated time the executed cycles take on
// hardware running at ClockSpeed.
func (g *GameBoy) Elapsed() time.Duration {
	return time.Duration(g.currentCycle) * time.Second / ClockSpeed
}
