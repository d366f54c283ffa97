// Package driver runs the machine in 60 Hz frames and connects it to the
// presentation, sound and input frontends.
package driver

import (
	"context"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
)

// FrameRate is the rate of the timers and of the frame driver in Hz.
const FrameRate = 60

// FrameDuration is the duration of a single frame.
const FrameDuration = time.Second / FrameRate

// Presenter displays the framebuffer of the machine.
type Presenter interface {
	Present(fb *chip8.Framebuffer) error
}

// Tone is a sound output that can be switched on and off.
type Tone interface {
	SetActive(active bool)
}

// Input is the host input of a single frame.
type Input struct {
	Keys  [chip8.NumKeys]bool
	Reset bool
	Quit  bool
}

// InputSource returns the host input for the next frame.
type InputSource interface {
	Poll() Input
}

// Stats contains execution statistics.
type Stats struct {
	Frames       int
	Instructions int
	Resets       int
}

// Driver executes a fixed number of instructions per frame and ticks the timers.
type Driver struct {
	logger    *log.Logger
	machine   *chip8.Machine
	presenter Presenter
	tone      Tone

	instructionsPerFrame int
	stats                Stats
}

// New returns a new frame driver. The presenter and tone are optional.
func New(logger *log.Logger, machine *chip8.Machine, instructionsPerFrame int,
	presenter Presenter, tone Tone) *Driver {

	if instructionsPerFrame < 1 {
		instructionsPerFrame = 1
	}
	return &Driver{
		logger:               logger,
		machine:              machine,
		presenter:            presenter,
		tone:                 tone,
		instructionsPerFrame: instructionsPerFrame,
	}
}

// Machine returns the driven machine.
func (d *Driver) Machine() *chip8.Machine {
	return d.machine
}

// Stats returns the execution statistics.
func (d *Driver) Stats() Stats {
	return d.stats
}

// Reset restarts the loaded program.
func (d *Driver) Reset() {
	d.machine.Reset()
	d.stats.Resets++
	d.logger.Info("Machine reset")
}

// Frame executes one frame: up to the configured number of instructions, one
// timer tick, sound gating and presentation of a changed framebuffer.
// Execution of the frame stops early while the machine waits for a key press.
func (d *Driver) Frame(keys [chip8.NumKeys]bool) error {
	for range d.instructionsPerFrame {
		waiting := d.machine.WaitingForKey()
		result, err := d.machine.Step(keys)
		if err != nil {
			return err
		}
		if !waiting {
			d.stats.Instructions++
		}
		if result.WaitingForKey {
			break
		}
	}

	d.machine.TickTimers()
	if d.tone != nil {
		d.tone.SetActive(d.machine.SoundActive())
	}

	fb := d.machine.Framebuffer()
	if fb.Dirty() && d.presenter != nil {
		if err := d.presenter.Present(fb); err != nil {
			return err
		}
		fb.ClearDirty()
	}

	d.stats.Frames++
	return nil
}

// Run executes frames paced at the frame rate until the context is canceled or
// the input source requests to quit.
func (d *Driver) Run(ctx context.Context, source InputSource) error {
	ticker := time.NewTicker(FrameDuration)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		input := source.Poll()
		if input.Quit {
			return nil
		}
		if input.Reset {
			d.Reset()
		}
		if err := d.Frame(input.Keys); err != nil {
			return err
		}
	}
}

// RunFrames executes the given number of frames without pacing and without input.
func (d *Driver) RunFrames(ctx context.Context, frames int) error {
	var keys [chip8.NumKeys]bool
	for range frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := d.Frame(keys); err != nil {
			return err
		}
	}
	return nil
}

// LogStats logs the execution statistics at debug level.
func (d *Driver) LogStats() {
	d.logger.Debug("Emulation statistics",
		log.Int("frames", d.stats.Frames),
		log.Int("instructions", d.stats.Instructions),
		log.Int("resets", d.stats.Resets),
		log.Hex("pc", d.machine.PC()))
}
