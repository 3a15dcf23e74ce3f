package interrupts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSource_Vector(t *testing.T) {
	expected := map[Source]uint16{
		VBlank: 0x0040,
		LCD:    0x0048,
		Timer:  0x0050,
		Serial: 0x0058,
		Joypad: 0x0060,
	}
	for src, vector := range expected {
		assert.Equal(t, vector, src.Vector(), src.String())
	}
}

func TestSource_Flag(t *testing.T) {
	assert.Equal(t, VBlankFlag, VBlank.Flag())
	assert.Equal(t, LCDFlag, LCD.Flag())
	assert.Equal(t, TimerFlag, Timer.Flag())
	assert.Equal(t, SerialFlag, Serial.Flag())
	assert.Equal(t, JoypadFlag, Joypad.Flag())
}

func TestDecode(t *testing.T) {
	s := Decode(0xFF, TimerFlag|JoypadFlag)
	assert.False(t, s.VBlank)
	assert.False(t, s.LCD)
	assert.True(t, s.Timer)
	assert.False(t, s.Serial)
	assert.True(t, s.Joypad)
	assert.True(t, s.Any())

	// requested but not enabled
	s = Decode(VBlankFlag, TimerFlag)
	assert.False(t, s.Any())

	// upper bits carry no meaning
	s = Decode(0xE0, 0xE0)
	assert.False(t, s.Any())
}

func TestSnapshot_Highest(t *testing.T) {
	_, ok := Snapshot{}.Highest()
	assert.False(t, ok)

	src, ok := Decode(0x1F, VBlankFlag|TimerFlag).Highest()
	assert.True(t, ok)
	assert.Equal(t, VBlank, src)

	src, ok = Decode(0x1F, SerialFlag|JoypadFlag|LCDFlag).Highest()
	assert.True(t, ok)
	assert.Equal(t, LCD, src)

	src, ok = Decode(0x1F, JoypadFlag).Highest()
	assert.True(t, ok)
	assert.Equal(t, Joypad, src)
}
