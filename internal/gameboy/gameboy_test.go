package gameboy

import (
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

func TestNew_Options(t *testing.T) {
	logger := log.NewNullLogger()
	g := New(
		WithLogger(logger),
		NoBios(),
		Debug(),
		WithProgram(0x0100, []byte{0x3E, 0x42}),
	)

	assert.Equal(t, uint16(0x0100), g.CPU.PC)
	assert.True(t, g.CPU.Debug)
	assert.Equal(t, logger, g.CPU.Log)
	assert.Equal(t, uint8(0x3E), g.MMU.Read(0x0100))
	assert.Equal(t, uint8(0x42), g.MMU.Read(0x0101))
}

func TestGameBoy_Step(t *testing.T) {
	// LD A, 0x42; LD B, A; NOP
	g := New(WithLogger(log.NewNullLogger()), WithProgram(0x0000, []byte{0x3E, 0x42, 0x47, 0x00}))

	opcode, err := g.Step()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x3E), opcode)
	assert.Equal(t, uint64(2), g.Cycles())

	_, err = g.Step()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x42), g.CPU.B)
	assert.Equal(t, uint64(3), g.Cycles())
}

func TestGameBoy_Step_Error(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	g := New(WithLogger(logger), WithProgram(0x0000, []byte{0x00, 0xFD}))

	_, err := g.Step()
	require.NoError(t, err)

	_, err = g.Step()
	require.Error(t, err)
	assert.True(t, errors.Is(err, cpu.ErrUnsupported))
	assert.Equal(t, uint16(0x0001), g.CPU.PC)
	assert.Equal(t, uint64(1), g.Cycles())

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, err.Error(), hook.LastEntry().Message)
}

func TestGameBoy_RunFrame(t *testing.T) {
	t.Run("NOP loop", func(t *testing.T) {
		g := New(WithLogger(log.NewNullLogger()))

		cycles, err := g.RunFrame()
		require.NoError(t, err)
		assert.Equal(t, uint64(CyclesPerFrame), cycles)
		assert.Equal(t, uint64(CyclesPerFrame), g.Cycles())
		// 0x0000 to 0x4494 is all NOPs
		assert.Equal(t, uint16(CyclesPerFrame), g.CPU.PC)
	})
	t.Run("JP loop", func(t *testing.T) {
		// JP 0x0000, 4 cycles each
		g := New(WithLogger(log.NewNullLogger()), WithProgram(0x0000, []byte{0xC3, 0x00, 0x00}))

		cycles, err := g.RunFrame()
		require.NoError(t, err)
		assert.Equal(t, uint64(17556), cycles)

		cycles, err = g.RunFrame()
		require.NoError(t, err)
		assert.Equal(t, uint64(17556), cycles)
		assert.Equal(t, uint64(2*17556), g.Cycles())
	})
	t.Run("halted frame", func(t *testing.T) {
		g := New(WithLogger(log.NewNullLogger()), WithProgram(0x0000, []byte{0xF3, 0x76})) // DI; HALT

		cycles, err := g.RunFrame()
		require.NoError(t, err)
		assert.Equal(t, uint64(CyclesPerFrame), cycles)
		assert.True(t, g.CPU.Halted())
		assert.Equal(t, uint16(0x0002), g.CPU.PC)
	})
	t.Run("stops at the first error", func(t *testing.T) {
		g := New(WithLogger(log.NewNullLogger()), WithProgram(0x0010, []byte{0xDD}))

		cycles, err := g.RunFrame()
		assert.True(t, errors.Is(err, cpu.ErrUnsupported))
		assert.Equal(t, uint64(16), cycles)
		assert.Equal(t, uint16(0x0010), g.CPU.PC)
	})
}

func TestGameBoy_Independent(t *testing.T) {
	program := []byte{0x3C, 0x18, 0xFD} // INC A; JR -3
	a := New(WithLogger(log.NewNullLogger()), WithProgram(0x0000, program))
	b := New(WithLogger(log.NewNullLogger()), WithProgram(0x0000, program))
	a.MMU.Write(types.TAC, 0x05)

	for i := 0; i < 100; i++ {
		_, err := a.Step()
		require.NoError(t, err)
	}

	assert.Equal(t, uint8(50), a.CPU.A)
	assert.Equal(t, uint8(0), b.CPU.A)
	assert.Equal(t, uint64(0), b.Cycles())
	assert.NotEqual(t, a.MMU.Checksum(), b.MMU.Checksum())

	for i := 0; i < 100; i++ {
		_, err := b.Step()
		require.NoError(t, err)
	}
	assert.Equal(t, a.CPU.A, b.CPU.A)
	assert.Equal(t, a.Cycles(), b.Cycles())
	// only a has its timer running
	assert.NotEqual(t, a.MMU.Read(types.TIMA), b.MMU.Read(types.TIMA))
}

func TestGameBoy_Elapsed(t *testing.T) {
	g := New(WithLogger(log.NewNullLogger()))
	assert.Equal(t, time.Duration(0), g.Elapsed())

	_, err := g.RunFrame()
	require.NoError(t, err)
	// 17556 cycles at 1048576 Hz
	assert.Equal(t, 16742706*time.Nanosecond, g.Elapsed())

	for i := 1; i < 60; i++ {
		_, err := g.RunFrame()
		require.NoError(t, err)
	}
	assert.InDelta(t, float64(time.Second), float64(g.Elapsed()), float64(5*time.Millisecond))
}
