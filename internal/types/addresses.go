package types

// HardwareAddress represents the address of a memory-mapped
// hardware register. The registers handled by the core live
// at 0xFF04 - 0xFF07, 0xFF0F & 0xFFFF.
type HardwareAddress = uint16

const (
	// DIV is the address of the DIV hardware register. The DIV
	// hardware register is incremented every 255 cycles, whether
	// or not the timer is enabled. Writing any value to it resets
	// it to 0.
	DIV HardwareAddress = 0xFF04
	// TIMA is the address of the timer counter. It counts at the
	// rate selected by TAC, and on overflow is reloaded from TMA
	// while a timer interrupt is requested.
	TIMA HardwareAddress = 0xFF05
	// TMA is the address of the timer modulo, the value TIMA is
	// reloaded with.
	TMA HardwareAddress = 0xFF06
	// TAC is the address of the TAC hardware register. The TAC
	// hardware register is used to control the timer.
	//
	//  Bit 2:    Timer Enable
	//  Bit 1-0:  Input Clock Select
	//            00: every 1024 cycles
	//            01: every 16 cycles
	//            10: every 64 cycles
	//            11: every 256 cycles
	TAC HardwareAddress = 0xFF07
	// IF is the address of the interrupt request register. Bit n
	// is set while interrupts.Source n is requested, from VBlank
	// (bit 0) to Joypad (bit 4). The upper 3 bits are unused.
	IF HardwareAddress = 0xFF0F
	// IE is the address of the interrupt enable register, laid
	// out like IF. A source is only pending while its bit is set
	// in both.
	IE HardwareAddress = 0xFFFF
)

// IsTimerAddress returns true if the address belongs to one of
// the four timer registers (DIV, TIMA, TMA, TAC).
func IsTimerAddress(address uint16) bool {
	return address >= DIV && address <= TAC
}
