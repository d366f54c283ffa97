package chip8

// testStart is the address test programs are placed at.
const testStart = 0xA00

// newTestMachine returns a machine with the program counter at testStart,
// Vn set to n and a deterministic random source.
func newTestMachine() *Machine {
	m := New()
	m.pc = testStart
	for i := range m.v {
		m.v[i] = byte(i)
	}
	m.random = func() byte { return 0xA5 }
	return m
}

// executeWord runs a single instruction word at the program counter.
func (m *Machine) executeWord(word uint16) error {
	m.memory[m.pc] = byte(word >> 8)
	m.memory[m.pc+1] = byte(word)
	_, err := m.Step(m.keys)
	return err
}

// loadWords writes instruction words to program memory.
func loadWords(words ...uint16) []byte {
	data := make([]byte, 0, len(words)*2)
	for _, w := range words {
		data = append(data, byte(w>>8), byte(w))
	}
	return data
}

var noKeys [NumKeys]bool

func keysDown(indexes ...int) [NumKeys]bool {
	var keys [NumKeys]bool
	for _, i := range indexes {
		keys[i] = true
	}
	return keys
}
