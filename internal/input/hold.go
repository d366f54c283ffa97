package input

import "github.com/retroenv/retrochip8/internal/chip8"

// DefaultHoldFrames is the number of frames a terminal key press is reported as down.
const DefaultHoldFrames = 6

// Hold turns single key press events into a key state that stays down for a
// number of frames. Terminals only deliver key press events, there is no
// release notification.
type Hold struct {
	frames    int
	remaining [chip8.NumKeys]int
}

// NewHold returns a hold window of the given number of frames.
func NewHold(frames int) *Hold {
	if frames < 1 {
		frames = 1
	}
	return &Hold{frames: frames}
}

// Press marks the keypad key as down for the configured number of frames.
func (h *Hold) Press(key byte) {
	h.remaining[key&0xF] = h.frames
}

// Advance returns the current key state and ages all held keys by one frame.
func (h *Hold) Advance() [chip8.NumKeys]bool {
	var state [chip8.NumKeys]bool
	for key, remaining := range h.remaining {
		if remaining > 0 {
			state[key] = true
			h.remaining[key]--
		}
	}
	return state
}
