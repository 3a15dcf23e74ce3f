package bits

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBits(t *testing.T) {
	for i := uint8(0); i < 8; i++ {
		v := Set(0, i)
		assert.Equal(t, uint8(1)<<i, v)
		assert.True(t, Test(v, i))
		assert.Equal(t, uint8(1), Val(v, i))
		assert.Equal(t, uint8(0), Reset(v, i))
		assert.Equal(t, v, Assign(0, i, true))
		assert.Equal(t, uint8(0), Assign(v, i, false))
	}
}

func TestSwap(t *testing.T) {
	assert.Equal(t, uint8(0x21), Swap(0x12))
	assert.Equal(t, uint8(0x0F), Swap(0xF0))
	assert.Equal(t, uint8(0x00), Swap(0x00))
}
