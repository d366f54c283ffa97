// Package input maps host keyboard keys to the 16 keys of the CHIP-8 keypad.
package input

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/set"
)

// Layout lists the keypad keys in the order of the conventional host layout
//
//	1 2 3 4      1 2 3 C
//	Q W E R  ->  4 5 6 D
//	A S D F      7 8 9 E
//	Z X C V      A 0 B F
var Layout = [chip8.NumKeys]byte{
	0x1, 0x2, 0x3, 0xC,
	0x4, 0x5, 0x6, 0xD,
	0x7, 0x8, 0x9, 0xE,
	0xA, 0x0, 0xB, 0xF,
}

// LayoutRunes are the host characters matching the Layout order.
const LayoutRunes = "1234qwerasdfzxcv"

// Keymap maps host keys of type K to keypad keys.
type Keymap[K comparable] struct {
	keys    map[K]byte
	bound   set.Set[K]
	ordered []K
}

// New returns a keymap for the given host keys which are assigned in Layout order.
// Every keypad key has to be mapped exactly once.
func New[K comparable](hostKeys [chip8.NumKeys]K) (*Keymap[K], error) {
	m := &Keymap[K]{
		keys:    make(map[K]byte, chip8.NumKeys),
		bound:   set.New[K](),
		ordered: make([]K, 0, chip8.NumKeys),
	}
	for i, hostKey := range hostKeys {
		if err := m.bind(hostKey, Layout[i]); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// NewRunes returns a keymap for the host characters of LayoutRunes.
func NewRunes() *Keymap[rune] {
	var hostKeys [chip8.NumKeys]rune
	for i, r := range LayoutRunes {
		hostKeys[i] = r
	}
	m, err := New(hostKeys)
	if err != nil {
		panic(err) // LayoutRunes is a constant without duplicates
	}
	return m
}

func (m *Keymap[K]) bind(hostKey K, key byte) error {
	if m.bound.Contains(hostKey) {
		return fmt.Errorf("host key %v is mapped more than once", hostKey)
	}
	m.bound.Add(hostKey)
	m.keys[hostKey] = key
	m.ordered = append(m.ordered, hostKey)
	return nil
}

// Key returns the keypad key for the given host key.
func (m *Keymap[K]) Key(hostKey K) (byte, bool) {
	key, ok := m.keys[hostKey]
	return key, ok
}

// State builds the keypad state by querying the down state of every mapped host key.
func (m *Keymap[K]) State(isDown func(K) bool) [chip8.NumKeys]bool {
	var state [chip8.NumKeys]bool
	for _, hostKey := range m.ordered {
		if isDown(hostKey) {
			state[m.keys[hostKey]] = true
		}
	}
	return state
}
