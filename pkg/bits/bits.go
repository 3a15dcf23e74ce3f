// Package bits provides helpers for inspecting and modifying
// the individual bits of an 8-bit value.
package bits

const (
	Bit0 uint8 = 1 << iota // 0b0000_0001
	Bit1                   // 0b0000_0010
	Bit2                   // 0b0000_0100
	Bit3                   // 0b0000_1000
	Bit4                   // 0b0001_0000
	Bit5                   // 0b0010_0000
	Bit6                   // 0b0100_0000
	Bit7                   // 0b1000_0000
)

// Val returns the value (0 or 1) of the bit at index i.
func Val(b uint8, i uint8) uint8 {
	return (b >> i) & 1
}

// Reset clears the bit at index i.
func Reset(b, i uint8) uint8 {
	return b &^ (1 << i)
}

// Set sets the bit at index i.
func Set(b, i uint8) uint8 {
	return b | (1 << i)
}

// Test reports whether the bit at index i is set.
func Test(b, i uint8) bool {
	return (b>>i)&1 != 0
}

// Assign sets or clears the bit at index i depending on v.
func Assign(b, i uint8, v bool) uint8 {
	if v {
		return Set(b, i)
	}
	return Reset(b, i)
}

// Swap exchanges the upper and lower nibbles of b.
func Swap(b uint8) uint8 {
	return b<<4 | b>>4
}
