package chip8

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownInstruction is returned for an instruction word that is not
	// part of the instruction set.
	ErrUnknownInstruction = errors.New("unknown instruction")
	// ErrStackOverflow is returned when a call exceeds the stack depth.
	ErrStackOverflow = errors.New("call stack overflow")
	// ErrStackUnderflow is returned when returning with an empty call stack.
	ErrStackUnderflow = errors.New("call stack underflow")
	// ErrInvalidKey is returned when a register used as key index holds a value above 0xF.
	ErrInvalidKey = errors.New("invalid key index")
	// ErrAddressOutOfRange is returned when an instruction accesses memory beyond the address space.
	ErrAddressOutOfRange = errors.New("address out of range")
	// ErrProgramTooLarge is returned when a program does not fit into program memory.
	ErrProgramTooLarge = errors.New("program too large")
)

// ExecutionError describes a fatal error that occurred while executing the
// instruction at Address.
type ExecutionError struct {
	Address uint16 // address of the failing instruction
	Opcode  uint16 // instruction word, 0 if it could not be fetched
	Name    string // instruction mnemonic, empty if the word did not decode
	Err     error
}

func (e *ExecutionError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("instruction $%04X at $%03X: %s", e.Opcode, e.Address, e.Err)
	}
	return fmt.Sprintf("%s instruction $%04X at $%03X: %s", e.Name, e.Opcode, e.Address, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
