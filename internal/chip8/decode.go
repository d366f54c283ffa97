package chip8

import (
	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// sysName is the mnemonic of the legacy machine code call 0nnn,
// which is executed as a no-op.
const sysName = "sys"

type flowKind uint8

const (
	flowNext flowKind = iota // advance to the next instruction
	flowSkip                 // skip the next instruction
	flowJump                 // continue at target
)

// flow describes how an executed instruction changes the program counter.
type flow struct {
	kind   flowKind
	target uint16
}

var next = flow{kind: flowNext}

func jump(target uint16) flow {
	return flow{kind: flowJump, target: target}
}

func skipIf(condition bool) flow {
	if condition {
		return flow{kind: flowSkip}
	}
	return next
}

type handler func(m *Machine, ins Instruction) (flow, error)

// Instruction is a decoded instruction word.
type Instruction struct {
	Word    uint16
	name    string
	execute handler
}

// Name returns the mnemonic of the instruction.
func (ins Instruction) Name() string {
	return ins.name
}

// Address returns the 12 bit address operand nnn.
func (ins Instruction) Address() uint16 {
	return ins.Word & 0x0FFF
}

// Byte returns the 8 bit immediate operand kk.
func (ins Instruction) Byte() byte {
	return byte(ins.Word)
}

// X returns the register index operand in the second nibble.
func (ins Instruction) X() int {
	return int(ins.Word>>8) & 0xF
}

// Y returns the register index operand in the third nibble.
func (ins Instruction) Y() int {
	return int(ins.Word>>4) & 0xF
}

// N returns the 4 bit operand in the lowest nibble.
func (ins Instruction) N() int {
	return int(ins.Word) & 0xF
}

// Decode maps an instruction word to its operation. Words with a first
// nibble of 0 that are not CLS or RET decode to a no-op system call.
// All other words outside the instruction set return ErrUnknownInstruction.
func Decode(word uint16) (Instruction, error) {
	name, h := lookup(word)
	if h == nil {
		return Instruction{Word: word}, ErrUnknownInstruction
	}
	return Instruction{
		Word:    word,
		name:    name,
		execute: h,
	}, nil
}

//nolint:cyclop,funlen // the instruction set is a flat mapping
func lookup(word uint16) (string, handler) {
	switch word >> 12 {
	case 0x0:
		switch word {
		case 0x00E0:
			return chip8cpu.ClsName, opClear
		case 0x00EE:
			return chip8cpu.RetName, opReturn
		default:
			return sysName, opSys
		}
	case 0x1:
		return chip8cpu.JpName, opJump
	case 0x2:
		return chip8cpu.CallName, opCall
	case 0x3:
		return chip8cpu.SeName, opSkipEqualByte
	case 0x4:
		return chip8cpu.SneName, opSkipNotEqualByte
	case 0x5:
		if word&0xF == 0 {
			return chip8cpu.SeName, opSkipEqualRegister
		}
	case 0x6:
		return chip8cpu.LdName, opLoadByte
	case 0x7:
		return chip8cpu.AddName, opAddByte
	case 0x8:
		return lookupALU(word)
	case 0x9:
		if word&0xF == 0 {
			return chip8cpu.SneName, opSkipNotEqualRegister
		}
	case 0xA:
		return chip8cpu.LdName, opLoadAddress
	case 0xB:
		return chip8cpu.JpName, opJumpOffset
	case 0xC:
		return chip8cpu.RndName, opRandom
	case 0xD:
		return chip8cpu.DrwName, opDraw
	case 0xE:
		switch word & 0xFF {
		case 0x9E:
			return chip8cpu.SkpName, opSkipKeyDown
		case 0xA1:
			return chip8cpu.SknpName, opSkipKeyUp
		}
	case 0xF:
		return lookupMisc(word)
	}
	return "", nil
}

// lookupALU decodes the register arithmetic group 8xyn.
func lookupALU(word uint16) (string, handler) {
	switch word & 0xF {
	case 0x0:
		return chip8cpu.LdName, opLoadRegister
	case 0x1:
		return chip8cpu.OrName, opOr
	case 0x2:
		return chip8cpu.AndName, opAnd
	case 0x3:
		return chip8cpu.XorName, opXor
	case 0x4:
		return chip8cpu.AddName, opAddRegister
	case 0x5:
		return chip8cpu.SubName, opSub
	case 0x6:
		return chip8cpu.ShrName, opShiftRight
	case 0x7:
		return chip8cpu.SubnName, opSubReverse
	case 0xE:
		return chip8cpu.ShlName, opShiftLeft
	}
	return "", nil
}

// lookupMisc decodes the timer, key and memory group Fxkk.
func lookupMisc(word uint16) (string, handler) {
	switch word & 0xFF {
	case 0x07:
		return chip8cpu.LdName, opReadDelayTimer
	case 0x0A:
		return chip8cpu.LdName, opWaitKey
	case 0x15:
		return chip8cpu.LdName, opSetDelayTimer
	case 0x18:
		return chip8cpu.LdName, opSetSoundTimer
	case 0x1E:
		return chip8cpu.AddName, opAddAddress
	case 0x29:
		return chip8cpu.LdName, opGlyphAddress
	case 0x33:
		return chip8cpu.LdName, opStoreBCD
	case 0x55:
		return chip8cpu.LdName, opStoreRegisters
	case 0x65:
		return chip8cpu.LdName, opLoadRegisters
	}
	return "", nil
}
