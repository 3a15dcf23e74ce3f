// Package interrupts describes the five hardware interrupt
// sources, their priority and their vectors, along with a
// decoded view of the enabled and requested interrupts.
//
// Only one interrupt is serviced at a time, and they are
// serviced in the order of priority:
//
//   - VBlank
//   - LCD
//   - Timer
//   - Serial
//   - Joypad
package interrupts

import "github.com/thelolagemann/gbcore/pkg/bits"

// Source identifies an interrupt source. Sources are ordered
// by priority, VBlank being the highest.
type Source uint8

const (
	// VBlank is requested every time the PPU enters
	// VBlank mode.
	VBlank Source = iota
	// LCD is requested by the LCD STAT register when
	// certain conditions are met.
	LCD
	// Timer is requested when the timer counter (TIMA)
	// overflows.
	Timer
	// Serial is requested when a serial transfer is
	// completed.
	Serial
	// Joypad is requested when a joypad input line goes
	// from high to low.
	Joypad
)

const (
	// VBlankFlag is the bit of VBlank in IE and IF.
	VBlankFlag = bits.Bit0
	// LCDFlag is the bit of LCD in IE and IF.
	LCDFlag = bits.Bit1
	// TimerFlag is the bit of Timer in IE and IF.
	TimerFlag = bits.Bit2
	// SerialFlag is the bit of Serial in IE and IF.
	SerialFlag = bits.Bit3
	// JoypadFlag is the bit of Joypad in IE and IF.
	JoypadFlag = bits.Bit4
)

// Sources lists every interrupt source in priority order.
var Sources = [5]Source{VBlank, LCD, Timer, Serial, Joypad}

var sourceNames = [5]string{"VBlank", "LCD", "Timer", "Serial", "Joypad"}

// Flag returns the bit of the source in the IE and IF registers.
func (s Source) Flag() uint8 {
	return 1 << s
}

// Vector returns the address the handler for the source
// starts executing at.
func (s Source) Vector() uint16 {
	return 0x0040 + uint16(s)*8
}

func (s Source) String() string {
	if int(s) < len(sourceNames) {
		return sourceNames[s]
	}
	return "Unknown"
}

// Snapshot is the decoded view of the interrupts that are both
// enabled and requested at a given moment.
type Snapshot struct {
	VBlank bool
	LCD    bool
	Timer  bool
	Serial bool
	Joypad bool
}

// Decode returns the Snapshot of enable AND request. Only the
// lower five bits of each mask carry meaning.
func Decode(enable, request uint8) Snapshot {
	pending := enable & request
	return Snapshot{
		VBlank: pending&VBlankFlag != 0,
		LCD:    pending&LCDFlag != 0,
		Timer:  pending&TimerFlag != 0,
		Serial: pending&SerialFlag != 0,
		Joypad: pending&JoypadFlag != 0,
	}
}

// Pending reports whether the given source is pending.
func (s Snapshot) Pending(src Source) bool {
	switch src {
	case VBlank:
		return s.VBlank
	case LCD:
		return s.LCD
	case Timer:
		return s.Timer
	case Serial:
		return s.Serial
	case Joypad:
		return s.Joypad
	}
	return false
}

// Any returns true if at least one interrupt is pending.
func (s Snapshot) Any() bool {
	return s.VBlank || s.LCD || s.Timer || s.Serial || s.Joypad
}

// Highest returns the pending source with the highest priority,
// or false if nothing is pending.
func (s Snapshot) Highest() (Source, bool) {
	for _, src := range Sources {
		if s.Pending(src) {
			return src, true
		}
	}
	return 0, false
}
