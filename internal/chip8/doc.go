// Package chip8 implements the CHIP-8 virtual machine.
//
// # Machine Model
//
// The machine has 4KB of memory, sixteen 8-bit registers V0-VF, a 16-bit
// address register I, a call stack of 16 return addresses, a delay and a
// sound timer and a 64x32 monochrome display:
//   - 0x000-0x04F: built-in hexadecimal font, 5 bytes per digit
//   - ProgramStart (0x200): reset address and load address of programs
//   - VF doubles as flag register for carry, borrow, shift and collision results
//
// # Execution
//
// Each call to Machine.Step samples the supplied key state and executes at
// most one instruction:
//
//	m := chip8.New()
//	if err := m.Load(rom); err != nil {
//		return fmt.Errorf("loading program: %w", err)
//	}
//	result, err := m.Step(keys)
//
// The machine does not pace itself. The caller decides how many steps to
// run per frame and calls Machine.TickTimers at 60 Hz. The instruction
// LD Vx, K suspends execution until a key is pressed, subsequent steps only
// sample the keys until then.
//
// # Errors
//
// Unknown instructions, call stack overflows and underflows, key indexes
// above 0xF and memory accesses beyond 0xFFF are fatal and returned as
// *ExecutionError wrapping one of the sentinel errors of this package.
package chip8
