package chip8

import (
	"fmt"
	"math/rand/v2"
)

// CHIP-8 memory layout and machine constants.
//
//	0x000-0x04F: hexadecimal digit glyphs
//	0x050-0x1FF: reserved for the interpreter
//	0x200-0xFFF: program memory
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 0x1000

	// ProgramStart is the reset address of the program counter and the
	// address a program image is loaded to.
	ProgramStart = 0x200

	// MaxProgramSize is the largest program image that fits into memory.
	MaxProgramSize = MemorySize - ProgramStart

	// GlyphAddress is the address of the built-in font.
	GlyphAddress = 0x000

	// StackDepth is the number of return addresses the call stack can hold.
	StackDepth = 16

	// NumKeys is the number of keys on the hexadecimal keypad.
	NumKeys = 16

	// InstructionSize is the size of every instruction in bytes.
	InstructionSize = 2

	flagRegister = 0xF
)

// Machine is a CHIP-8 virtual machine. It is not safe for concurrent use.
type Machine struct {
	pc     uint16
	v      [16]byte
	i      uint16
	sp     int
	stack  [StackDepth]uint16
	memory [MemorySize]byte

	delayTimer byte
	soundTimer byte

	display Framebuffer

	awaitingKey bool
	keyRegister int
	keys        [NumKeys]bool

	program []byte
	random  func() byte
}

// StepResult is the outcome of a single step of the machine.
type StepResult struct {
	Changed       bool // framebuffer changed since it was last presented
	WaitingForKey bool // machine is suspended until a key gets pressed
}

// New returns a machine in its reset state with the font loaded.
func New() *Machine {
	m := &Machine{
		random: defaultRandom,
	}
	m.reset()
	return m
}

// Load copies the program image into program memory, replacing any previously
// loaded image. Images larger than MaxProgramSize are rejected and leave the
// memory untouched.
func (m *Machine) Load(program []byte) error {
	if len(program) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes exceeds the maximum of %d bytes",
			ErrProgramTooLarge, len(program), MaxProgramSize)
	}

	m.program = append(m.program[:0], program...)
	clear(m.memory[ProgramStart:])
	copy(m.memory[ProgramStart:], m.program)
	return nil
}

// Reset returns the machine to the state directly after the last Load.
// The blanked framebuffer is marked as changed so that it gets presented.
func (m *Machine) Reset() {
	m.reset()
	copy(m.memory[ProgramStart:], m.program)
	m.display.dirty = true
}

func (m *Machine) reset() {
	*m = Machine{
		pc:      ProgramStart,
		program: m.program,
		random:  m.random,
	}
	copy(m.memory[GlyphAddress:], glyphs[:])
}

// SetRandomSource replaces the source of random bytes used by the
// random instruction.
func (m *Machine) SetRandomSource(source func() byte) {
	m.random = source
}

// TickTimers decrements the delay and sound timers if they are not zero.
// It is expected to be called at 60 Hz.
func (m *Machine) TickTimers() {
	if m.delayTimer > 0 {
		m.delayTimer--
	}
	if m.soundTimer > 0 {
		m.soundTimer--
	}
}

// SoundActive returns whether the tone should currently be audible.
func (m *Machine) SoundActive() bool {
	return m.soundTimer > 0
}

// Framebuffer returns the display of the machine.
func (m *Machine) Framebuffer() *Framebuffer {
	return &m.display
}

// PC returns the program counter.
func (m *Machine) PC() uint16 {
	return m.pc
}

// Register returns the value of the general register with the given index.
func (m *Machine) Register(index int) byte {
	return m.v[index&0xF]
}

// AddressRegister returns the value of the I register.
func (m *Machine) AddressRegister() uint16 {
	return m.i
}

// StackPointer returns the number of return addresses on the call stack.
func (m *Machine) StackPointer() int {
	return m.sp
}

// DelayTimer returns the current delay timer value.
func (m *Machine) DelayTimer() byte {
	return m.delayTimer
}

// SoundTimer returns the current sound timer value.
func (m *Machine) SoundTimer() byte {
	return m.soundTimer
}

// WaitingForKey returns whether the machine is suspended until a key press.
func (m *Machine) WaitingForKey() bool {
	return m.awaitingKey
}

// ReadMemory returns the byte at the given address, wrapping at MemorySize.
func (m *Machine) ReadMemory(address uint16) byte {
	return m.memory[address%MemorySize]
}

func defaultRandom() byte {
	return byte(rand.Uint32() >> 24)
}
