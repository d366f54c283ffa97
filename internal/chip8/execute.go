package chip8

// 0nnn - SYS addr
// Machine code routines of the historical interpreters are ignored.
func opSys(_ *Machine, _ Instruction) (flow, error) {
	return next, nil
}

// 00E0 - CLS
func opClear(m *Machine, _ Instruction) (flow, error) {
	m.display.clear()
	return next, nil
}

// 00EE - RET
func opReturn(m *Machine, _ Instruction) (flow, error) {
	if m.sp == 0 {
		return next, ErrStackUnderflow
	}
	m.sp--
	return jump(m.stack[m.sp]), nil
}

// 1nnn - JP addr
func opJump(_ *Machine, ins Instruction) (flow, error) {
	return jump(ins.Address()), nil
}

// 2nnn - CALL addr
func opCall(m *Machine, ins Instruction) (flow, error) {
	if m.sp == StackDepth {
		return next, ErrStackOverflow
	}
	m.stack[m.sp] = m.pc + InstructionSize
	m.sp++
	return jump(ins.Address()), nil
}

// 3xkk - SE Vx, byte
func opSkipEqualByte(m *Machine, ins Instruction) (flow, error) {
	return skipIf(m.v[ins.X()] == ins.Byte()), nil
}

// 4xkk - SNE Vx, byte
func opSkipNotEqualByte(m *Machine, ins Instruction) (flow, error) {
	return skipIf(m.v[ins.X()] != ins.Byte()), nil
}

// 5xy0 - SE Vx, Vy
func opSkipEqualRegister(m *Machine, ins Instruction) (flow, error) {
	return skipIf(m.v[ins.X()] == m.v[ins.Y()]), nil
}

// 9xy0 - SNE Vx, Vy
func opSkipNotEqualRegister(m *Machine, ins Instruction) (flow, error) {
	return skipIf(m.v[ins.X()] != m.v[ins.Y()]), nil
}

// 6xkk - LD Vx, byte
func opLoadByte(m *Machine, ins Instruction) (flow, error) {
	m.v[ins.X()] = ins.Byte()
	return next, nil
}

// 7xkk - ADD Vx, byte
// The sum wraps and VF is not affected.
func opAddByte(m *Machine, ins Instruction) (flow, error) {
	m.v[ins.X()] += ins.Byte()
	return next, nil
}

// 8xy0 - LD Vx, Vy
func opLoadRegister(m *Machine, ins Instruction) (flow, error) {
	m.v[ins.X()] = m.v[ins.Y()]
	return next, nil
}

// 8xy1 - OR Vx, Vy
func opOr(m *Machine, ins Instruction) (flow, error) {
	m.v[ins.X()] |= m.v[ins.Y()]
	return next, nil
}

// 8xy2 - AND Vx, Vy
func opAnd(m *Machine, ins Instruction) (flow, error) {
	m.v[ins.X()] &= m.v[ins.Y()]
	return next, nil
}

// 8xy3 - XOR Vx, Vy
func opXor(m *Machine, ins Instruction) (flow, error) {
	m.v[ins.X()] ^= m.v[ins.Y()]
	return next, nil
}

// 8xy4 - ADD Vx, Vy
// VF is set to 1 if the sum does not fit into 8 bits.
func opAddRegister(m *Machine, ins Instruction) (flow, error) {
	sum := uint16(m.v[ins.X()]) + uint16(m.v[ins.Y()])
	m.v[ins.X()] = byte(sum)
	m.v[flagRegister] = boolToFlag(sum > 0xFF)
	return next, nil
}

// 8xy5 - SUB Vx, Vy
// VF is set to 1 if no borrow occurred.
func opSub(m *Machine, ins Instruction) (flow, error) {
	x, y := m.v[ins.X()], m.v[ins.Y()]
	m.v[ins.X()] = x - y
	m.v[flagRegister] = boolToFlag(x >= y)
	return next, nil
}

// 8xy6 - SHR Vx
// Vy is ignored.
func opShiftRight(m *Machine, ins Instruction) (flow, error) {
	m.v[flagRegister] = m.v[ins.X()] & 0x01
	m.v[ins.X()] >>= 1
	return next, nil
}

// 8xy7 - SUBN Vx, Vy
// VF is set to 1 if no borrow occurred.
func opSubReverse(m *Machine, ins Instruction) (flow, error) {
	x, y := m.v[ins.X()], m.v[ins.Y()]
	m.v[flagRegister] = boolToFlag(y >= x)
	m.v[ins.X()] = y - x
	return next, nil
}

// 8xyE - SHL Vx
// Vy is ignored.
func opShiftLeft(m *Machine, ins Instruction) (flow, error) {
	m.v[flagRegister] = m.v[ins.X()] >> 7
	m.v[ins.X()] <<= 1
	return next, nil
}

// Annn - LD I, addr
func opLoadAddress(m *Machine, ins Instruction) (flow, error) {
	m.i = ins.Address()
	return next, nil
}

// Bnnn - JP V0, addr
func opJumpOffset(m *Machine, ins Instruction) (flow, error) {
	return jump(ins.Address() + uint16(m.v[0])), nil
}

// Cxkk - RND Vx, byte
func opRandom(m *Machine, ins Instruction) (flow, error) {
	m.v[ins.X()] = m.random() & ins.Byte()
	return next, nil
}

// Dxyn - DRW Vx, Vy, nibble
// Sprites are XORed onto the display and wrap around on both axes.
// VF is set to 1 if any lit pixel got erased.
func opDraw(m *Machine, ins Instruction) (flow, error) {
	height := ins.N()
	if err := m.checkRange(m.i, height); err != nil {
		return next, err
	}

	column := int(m.v[ins.X()])
	row := int(m.v[ins.Y()])
	collision := false
	for line := range height {
		if m.display.drawByte(row+line, column, m.memory[int(m.i)+line]) {
			collision = true
		}
	}

	m.v[flagRegister] = boolToFlag(collision)
	m.display.dirty = true
	return next, nil
}

// Ex9E - SKP Vx
func opSkipKeyDown(m *Machine, ins Instruction) (flow, error) {
	key := m.v[ins.X()]
	if key >= NumKeys {
		return next, ErrInvalidKey
	}
	return skipIf(m.keys[key]), nil
}

// ExA1 - SKNP Vx
func opSkipKeyUp(m *Machine, ins Instruction) (flow, error) {
	key := m.v[ins.X()]
	if key >= NumKeys {
		return next, ErrInvalidKey
	}
	return skipIf(!m.keys[key]), nil
}

// Fx07 - LD Vx, DT
func opReadDelayTimer(m *Machine, ins Instruction) (flow, error) {
	m.v[ins.X()] = m.delayTimer
	return next, nil
}

// Fx0A - LD Vx, K
// The program counter moves past this instruction, Step then stops
// executing until a key press is captured.
func opWaitKey(m *Machine, ins Instruction) (flow, error) {
	m.awaitingKey = true
	m.keyRegister = ins.X()
	return next, nil
}

// Fx15 - LD DT, Vx
func opSetDelayTimer(m *Machine, ins Instruction) (flow, error) {
	m.delayTimer = m.v[ins.X()]
	return next, nil
}

// Fx18 - LD ST, Vx
func opSetSoundTimer(m *Machine, ins Instruction) (flow, error) {
	m.soundTimer = m.v[ins.X()]
	return next, nil
}

// Fx1E - ADD I, Vx
func opAddAddress(m *Machine, ins Instruction) (flow, error) {
	m.i += uint16(m.v[ins.X()])
	return next, nil
}

// Fx29 - LD F, Vx
func opGlyphAddress(m *Machine, ins Instruction) (flow, error) {
	m.i = glyphAddress(m.v[ins.X()])
	return next, nil
}

// Fx33 - LD B, Vx
func opStoreBCD(m *Machine, ins Instruction) (flow, error) {
	if err := m.checkRange(m.i, 3); err != nil {
		return next, err
	}
	value := m.v[ins.X()]
	m.memory[m.i] = value / 100
	m.memory[m.i+1] = value / 10 % 10
	m.memory[m.i+2] = value % 10
	return next, nil
}

// Fx55 - LD [I], Vx
func opStoreRegisters(m *Machine, ins Instruction) (flow, error) {
	count := ins.X() + 1
	if err := m.checkRange(m.i, count); err != nil {
		return next, err
	}
	copy(m.memory[m.i:int(m.i)+count], m.v[:count])
	return next, nil
}

// Fx65 - LD Vx, [I]
func opLoadRegisters(m *Machine, ins Instruction) (flow, error) {
	count := ins.X() + 1
	if err := m.checkRange(m.i, count); err != nil {
		return next, err
	}
	copy(m.v[:count], m.memory[m.i:int(m.i)+count])
	return next, nil
}

// checkRange returns an error if length bytes starting at address
// do not fit into memory.
func (m *Machine) checkRange(address uint16, length int) error {
	if int(address)+length > MemorySize {
		return ErrAddressOutOfRange
	}
	return nil
}

func boolToFlag(b bool) byte {
	if b {
		return 1
	}
	return 0
}
