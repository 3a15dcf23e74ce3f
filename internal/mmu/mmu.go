// Package mmu provides the addressable memory of the Game Boy. The
// MMU is a flat 64kB byte space, with the timer registers routed to
// the timer.Controller it owns, and the interrupt enable/request
// bytes exposed through a decoded interrupts.Snapshot.
package mmu

import (
	"github.com/cespare/xxhash"
	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/internal/timer"
	"github.com/thelolagemann/gbcore/internal/types"
)

// MMU is the memory management unit for the Game Boy. It handles all
// memory reads and writes to the Game Boy's 64kB of memory, and
// delegates the timer registers to the timer.Controller.
type MMU struct {
	// 64kB address space
	raw [0x10000]uint8

	// 0xFF04 - 0xFF07 - timer registers
	Timer *timer.Controller
}

// NewMMU returns a new MMU, with every byte zeroed and a
// zeroed timer.
func NewMMU() *MMU {
	return &MMU{
		Timer: timer.NewController(),
	}
}

// Read returns the value at the given address.
func (m *MMU) Read(address uint16) uint8 {
	if types.IsTimerAddress(address) {
		return m.Timer.Read(address)
	}
	return m.raw[address]
}

// Write writes the value to the given address. Writing to
// types.DIV resets the divider instead of storing the value.
func (m *MMU) Write(address uint16, value uint8) {
	if types.IsTimerAddress(address) {
		m.Timer.Write(address, value)
		return
	}
	m.raw[address] = value
}

// Read16 returns the little-endian 16-bit value at the given address.
func (m *MMU) Read16(address uint16) uint16 {
	return uint16(m.Read(address)) | uint16(m.Read(address+1))<<8
}

// Load copies data into memory starting at the given address,
// wrapping around at the end of the address space. Each byte goes
// through Write, so the timer registers behave as usual.
func (m *MMU) Load(address uint16, data []byte) {
	for i, b := range data {
		m.Write(address+uint16(i), b)
	}
}

// ReportCycles steps the timer by the given number of cycles, and
// requests a timer interrupt if the timer overflowed.
func (m *MMU) ReportCycles(cycles uint8) {
	if m.Timer.Step(cycles) {
		m.Request(interrupts.Timer)
	}
}

// Request requests the given interrupt, by setting the
// corresponding bit in the types.IF register.
func (m *MMU) Request(src interrupts.Source) {
	m.raw[types.IF] |= src.Flag()
}

// Interrupts returns the decoded view of the interrupts that are
// both enabled (types.IE) and requested (types.IF).
func (m *MMU) Interrupts() interrupts.Snapshot {
	return interrupts.Decode(m.raw[types.IE], m.raw[types.IF])
}

// ClearRequests clears every bit of the types.IF register.
func (m *MMU) ClearRequests() {
	m.raw[types.IF] = 0
}

// Checksum returns a hash of the entire address space, including
// the timer registers. Two MMUs holding the same bytes produce the
// same checksum.
func (m *MMU) Checksum() uint64 {
	d := xxhash.New()
	d.Write(m.raw[:])
	d.Write([]byte{
		m.Timer.Read(types.DIV),
		m.Timer.Read(types.TIMA),
		m.Timer.Read(types.TMA),
		m.Timer.Read(types.TAC),
	})
	return d.Sum64()
}
