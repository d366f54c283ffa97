package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"unicode"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/driver"
	"github.com/retroenv/retrochip8/internal/input"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

// Control characters handled by the terminal frontend.
const (
	keyCtrlC  = 0x03
	keyCtrlR  = 0x12
	keyEscape = 0x1b
)

// ErrNotTerminal is returned when the standard input is not a terminal.
var ErrNotTerminal = errors.New("standard input is not a terminal")

// Terminal is a presenter and input source backed by the controlling terminal.
// Escape or Ctrl+C quit, Ctrl+R resets the machine.
type Terminal struct {
	logger *log.Logger
	out    io.Writer
	keymap *input.Keymap[rune]
	hold   *input.Hold
	events chan rune
	done   chan struct{}
	closed sync.Once

	fd       int
	oldState *term.State
}

// New returns a terminal frontend writing to the given output.
func New(logger *log.Logger, out io.Writer) *Terminal {
	return &Terminal{
		logger: logger,
		out:    out,
		keymap: input.NewRunes(),
		hold:   input.NewHold(input.DefaultHoldFrames),
		events: make(chan rune, 64),
		done:   make(chan struct{}),
		fd:     -1,
	}
}

// Open switches the standard input to raw mode and starts reading key presses.
func (t *Terminal) Open() error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return ErrNotTerminal
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("setting raw mode: %w", err)
	}
	t.fd = fd
	t.oldState = oldState

	if _, err := io.WriteString(t.out, hideCursor+clearScreen); err != nil {
		return fmt.Errorf("writing to terminal: %w", err)
	}

	// the reader stops forwarding after Close, a pending read of stdin
	// only ends with the next key press or the process
	go t.read(os.Stdin)
	return nil
}

func (t *Terminal) read(in io.Reader) {
	reader := bufio.NewReader(in)
	for {
		r, _, err := reader.ReadRune()
		if err != nil {
			t.logger.Debug("Terminal input closed", log.Err(err))
			close(t.events)
			return
		}
		select {
		case t.events <- r:
		case <-t.done:
			return
		}
	}
}

// Close stops the input reader and restores the terminal state.
func (t *Terminal) Close() error {
	t.closed.Do(func() {
		close(t.done)
	})
	if t.oldState == nil {
		return nil
	}

	_, _ = io.WriteString(t.out, showCursor+lineEnd)
	err := term.Restore(t.fd, t.oldState)
	t.oldState = nil
	if err != nil {
		return fmt.Errorf("restoring terminal: %w", err)
	}
	return nil
}

// Present renders the framebuffer.
func (t *Terminal) Present(fb *chip8.Framebuffer) error {
	return Render(t.out, fb)
}

// Poll processes all pending key presses and returns the input of the next frame.
func (t *Terminal) Poll() driver.Input {
	var in driver.Input

	for {
		select {
		case r, ok := <-t.events:
			if !ok {
				in.Quit = true
				in.Keys = t.hold.Advance()
				return in
			}
			t.handleRune(r, &in)
		default:
			in.Keys = t.hold.Advance()
			return in
		}
	}
}

func (t *Terminal) handleRune(r rune, in *driver.Input) {
	switch r {
	case keyCtrlC, keyEscape:
		in.Quit = true
	case keyCtrlR:
		in.Reset = true
	default:
		if key, ok := t.keymap.Key(unicode.ToLower(r)); ok {
			t.hold.Press(key)
		}
	}
}
