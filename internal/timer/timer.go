// Package timer provides an implementation of the Game Boy
// timer. It is used to generate interrupts at a specific
// frequency. The frequency can be configured using the
// types.TAC register.
package timer

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
)

// divThreshold is the number of cycles after which the divider
// register is incremented.
const divThreshold = 255

// periods maps the clock select bits of types.TAC to the
// number of cycles between increments of types.TIMA.
var periods = [4]uint16{1024, 16, 64, 256}

// Controller is the controller for the timer. It has four registers:
//
//   - types.DIV: The divider register. It is incremented every 255 cycles.
//   - types.TIMA: The counter register. It is incremented at a rate specified by the control register.
//   - types.TMA: The modulo register. When the counter overflows, it is reset to the value of this register.
//   - types.TAC: The control register. It enables the timer and specifies its frequency.
type Controller struct {
	divCycles  uint16 // cycles accumulated towards the next DIV increment
	timaCycles uint16 // cycles accumulated towards the next TIMA increment
	period     uint16 // cycles between TIMA increments

	divider uint8 // DIV
	counter uint8 // TIMA
	modulo  uint8 // TMA
	control uint8 // TAC
}

// NewController returns a new controller, with every register zeroed.
func NewController() *Controller {
	return &Controller{
		period: periods[0],
	}
}

// Read returns the value of the register at the specified address.
func (c *Controller) Read(address uint16) uint8 {
	switch address {
	case types.DIV:
		return c.divider
	case types.TIMA:
		return c.counter
	case types.TMA:
		return c.modulo
	case types.TAC:
		return c.control
	}

	panic(fmt.Sprintf("timer: illegal read from address 0x%04X", address))
}

// Write writes the value to the register at the specified address.
// Any write to types.DIV resets it to 0, regardless of the value.
func (c *Controller) Write(address uint16, value uint8) {
	switch address {
	case types.DIV:
		c.divider = 0
	case types.TIMA:
		c.counter = value
	case types.TMA:
		c.modulo = value
	case types.TAC:
		c.control = value & 0x7
		c.period = periods[c.control&0x3]
	default:
		panic(fmt.Sprintf("timer: illegal write to address 0x%04X", address))
	}
}

// Step steps the timer by the specified number of cycles. It
// returns true if TIMA overflowed during the step, in which case
// TIMA has been reloaded from TMA and a timer interrupt should be
// requested.
func (c *Controller) Step(cycles uint8) bool {
	c.divCycles += uint16(cycles)
	if c.divCycles >= divThreshold {
		c.divCycles = 0
		c.divider++ // wraps to 0, no interrupt
	}

	if !c.isEnabled() {
		return false
	}

	c.timaCycles += uint16(cycles)
	if c.timaCycles < c.period {
		return false
	}
	c.timaCycles = 0

	if c.counter == 0xFF {
		c.counter = c.modulo
		return true
	}
	c.counter++

	return false
}

// Period returns the number of cycles between TIMA increments
// selected by the current value of types.TAC.
func (c *Controller) Period() uint16 {
	return c.period
}

// isEnabled returns true if the timer is enabled.
func (c *Controller) isEnabled() bool {
	return c.control&0x4 > 0
}
