package chip8

// Step advances the machine by one step using the given key state.
//
// While the machine waits for a key press, no instruction is fetched. A key
// counts as pressed when it is down in the given state and was up in the
// state passed to the previous step, the lowest key index wins. The key is
// written to the destination register and execution resumes on the next step.
//
// Any returned error is fatal, the machine state is undefined afterwards.
func (m *Machine) Step(keys [NumKeys]bool) (StepResult, error) {
	previous := m.keys
	m.keys = keys

	if m.awaitingKey {
		m.captureKey(previous)
		return m.result(), nil
	}

	if err := m.cycle(); err != nil {
		return m.result(), err
	}
	return m.result(), nil
}

func (m *Machine) captureKey(previous [NumKeys]bool) {
	for key, down := range m.keys {
		if down && !previous[key] {
			m.v[m.keyRegister] = byte(key)
			m.awaitingKey = false
			return
		}
	}
}

// cycle fetches, decodes and executes a single instruction.
func (m *Machine) cycle() error {
	address := m.pc
	if int(address)+InstructionSize > MemorySize {
		return &ExecutionError{Address: address, Err: ErrAddressOutOfRange}
	}
	word := uint16(m.memory[address])<<8 | uint16(m.memory[address+1])

	ins, err := Decode(word)
	if err != nil {
		return &ExecutionError{Address: address, Opcode: word, Err: err}
	}

	f, err := ins.execute(m, ins)
	if err != nil {
		return &ExecutionError{Address: address, Opcode: word, Name: ins.Name(), Err: err}
	}

	switch f.kind {
	case flowNext:
		m.pc += InstructionSize
	case flowSkip:
		m.pc += 2 * InstructionSize
	case flowJump:
		m.pc = f.target
	}
	return nil
}

func (m *Machine) result() StepResult {
	return StepResult{
		Changed:       m.display.dirty,
		WaitingForKey: m.awaitingKey,
	}
}
