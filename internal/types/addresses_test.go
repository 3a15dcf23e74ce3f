package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTimerAddress(t *testing.T) {
	for _, addr := range []uint16{DIV, TIMA, TMA, TAC} {
		assert.True(t, IsTimerAddress(addr), "0x%04X", addr)
	}
	for _, addr := range []uint16{0xFF03, 0xFF08, IF, IE, 0x0000} {
		assert.False(t, IsTimerAddress(addr), "0x%04X", addr)
	}
}
