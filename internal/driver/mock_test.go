package driver

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
)

type fakePresenter struct {
	presented int
	lit       int
	err       error
}

func (p *fakePresenter) Present(fb *chip8.Framebuffer) error {
	p.presented++
	p.lit = fb.LitPixels()
	return p.err
}

type fakeTone struct {
	active  bool
	changes int
}

func (t *fakeTone) SetActive(active bool) {
	if active != t.active {
		t.changes++
	}
	t.active = active
}

type fakeSource struct {
	inputs []Input
	polls  int
}

func (s *fakeSource) Poll() Input {
	s.polls++
	if len(s.inputs) == 0 {
		return Input{Quit: true}
	}
	input := s.inputs[0]
	s.inputs = s.inputs[1:]
	return input
}

// newTestDriver returns a driver for a machine loaded with the given instruction words.
func newTestDriver(t *testing.T, instructionsPerFrame int, words ...uint16) (*Driver, *fakePresenter, *fakeTone) {
	t.Helper()

	program := make([]byte, 0, len(words)*2)
	for _, w := range words {
		program = append(program, byte(w>>8), byte(w))
	}

	machine := chip8.New()
	if err := machine.Load(program); err != nil {
		t.Fatalf("loading program: %v", err)
	}

	presenter := &fakePresenter{}
	tone := &fakeTone{}
	d := New(log.NewTestLogger(t), machine, instructionsPerFrame, presenter, tone)
	return d, presenter, tone
}

func keysDown(indexes ...int) [chip8.NumKeys]bool {
	var keys [chip8.NumKeys]bool
	for _, i := range indexes {
		keys[i] = true
	}
	return keys
}
