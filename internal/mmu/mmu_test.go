package mmu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/internal/types"
)

func TestMMU_ZeroState(t *testing.T) {
	m := NewMMU()
	for addr := 0; addr <= 0xFFFF; addr++ {
		require.Equal(t, uint8(0), m.Read(uint16(addr)), "0x%04X", addr)
	}
	assert.False(t, m.Interrupts().Any())
}

func TestMMU_ReadWrite(t *testing.T) {
	m := NewMMU()
	m.Write(0xC000, 0x42)
	m.Write(0xFFFF, 0x1F)
	m.Write(0x0000, 0x01)

	assert.Equal(t, uint8(0x42), m.Read(0xC000))
	assert.Equal(t, uint8(0x1F), m.Read(0xFFFF))
	assert.Equal(t, uint8(0x01), m.Read(0x0000))
}

func TestMMU_Read16(t *testing.T) {
	m := NewMMU()
	m.Load(0x1000, []byte{0x34, 0x12})
	assert.Equal(t, uint16(0x1234), m.Read16(0x1000))
}

func TestMMU_TimerRouting(t *testing.T) {
	m := NewMMU()

	m.Write(types.TAC, 0xFD)
	assert.Equal(t, uint8(0x05), m.Read(types.TAC), "TAC should be masked by the timer")
	assert.Equal(t, uint8(0x05), m.Timer.Read(types.TAC))

	m.Write(types.TMA, 0x77)
	assert.Equal(t, uint8(0x77), m.Timer.Read(types.TMA))

	m.Write(types.TIMA, 0x10)
	assert.Equal(t, uint8(0x10), m.Read(types.TIMA))

	// the divider is reset on write
	for i := 0; i < 4; i++ {
		m.ReportCycles(255)
	}
	assert.Equal(t, uint8(4), m.Read(types.DIV))
	m.Write(types.DIV, 0x99)
	assert.Equal(t, uint8(0), m.Read(types.DIV))
}

func TestMMU_ReportCycles(t *testing.T) {
	m := NewMMU()
	m.Write(types.IE, 0xFF)
	m.Write(types.TAC, 0x05)
	m.Write(types.TIMA, 0xFF)
	m.Write(types.TMA, 0xAB)

	m.ReportCycles(15)
	assert.False(t, m.Interrupts().Timer)

	m.ReportCycles(1)
	assert.True(t, m.Interrupts().Timer)
	assert.Equal(t, interrupts.TimerFlag, m.Read(types.IF))
	assert.Equal(t, uint8(0xAB), m.Read(types.TIMA))
}

func TestMMU_Interrupts(t *testing.T) {
	m := NewMMU()
	m.Request(interrupts.VBlank)
	m.Request(interrupts.Serial)
	assert.False(t, m.Interrupts().Any(), "nothing enabled yet")

	m.Write(types.IE, interrupts.SerialFlag)
	s := m.Interrupts()
	assert.True(t, s.Serial)
	assert.False(t, s.VBlank)

	m.ClearRequests()
	assert.Equal(t, uint8(0), m.Read(types.IF))
	assert.False(t, m.Interrupts().Any())

	// clearing with nothing requested is harmless
	m.ClearRequests()
	assert.Equal(t, uint8(0), m.Read(types.IF))
}

func TestMMU_Checksum(t *testing.T) {
	a, b := NewMMU(), NewMMU()
	assert.Equal(t, a.Checksum(), b.Checksum())

	a.Write(0x8000, 1)
	assert.NotEqual(t, a.Checksum(), b.Checksum())

	b.Write(0x8000, 1)
	assert.Equal(t, a.Checksum(), b.Checksum())

	a.Write(types.TMA, 3)
	assert.NotEqual(t, a.Checksum(), b.Checksum())
}
