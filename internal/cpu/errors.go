package cpu

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported is returned when the fetched opcode has no
	// assigned meaning.
	ErrUnsupported = errors.New("unsupported opcode")
	// ErrUnimplemented is returned when the fetched opcode is
	// mapped, but the CPU has no body to execute it.
	ErrUnimplemented = errors.New("unimplemented opcode")
)

// OpcodeError describes an opcode the CPU refused to execute.
// It wraps either ErrUnsupported or ErrUnimplemented.
type OpcodeError struct {
	Kind     error
	Opcode   uint8
	Prefixed bool   // Opcode follows the 0xCB prefix
	PC       uint16 // address of the opcode (or of the prefix)
}

func (e *OpcodeError) Error() string {
	if e.Prefixed {
		return fmt.Sprintf("cpu: %v 0xCB 0x%02X at 0x%04X", e.Kind, e.Opcode, e.PC)
	}
	return fmt.Sprintf("cpu: %v 0x%02X at 0x%04X", e.Kind, e.Opcode, e.PC)
}

func (e *OpcodeError) Unwrap() error {
	return e.Kind
}
