// Package config handles application configuration and setup
package config

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Limits for the emulation options.
const (
	MaxInstructionsPerFrame = 1000
	MaxScale                = 40
)

// Emulator is the validated runtime configuration of the emulator.
type Emulator struct {
	InstructionsPerFrame int
	Frames               int
	Seed                 uint64

	Scale      int
	Foreground color.RGBA
	Background color.RGBA
	Status     bool
	Mute       bool
}

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	switch {
	case debug:
		cfg.Level = log.DebugLevel
	case quiet:
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// New validates the program options and returns the emulator configuration.
func New(opts options.Program) (Emulator, error) {
	if opts.InstructionsPerFrame < 1 || opts.InstructionsPerFrame > MaxInstructionsPerFrame {
		return Emulator{}, fmt.Errorf("instructions per frame %d out of range 1-%d",
			opts.InstructionsPerFrame, MaxInstructionsPerFrame)
	}
	if opts.Scale < 1 || opts.Scale > MaxScale {
		return Emulator{}, fmt.Errorf("scale %d out of range 1-%d", opts.Scale, MaxScale)
	}
	if opts.Frames < 1 {
		return Emulator{}, fmt.Errorf("frame count %d must be positive", opts.Frames)
	}

	fg, err := ParseColor(opts.Foreground)
	if err != nil {
		return Emulator{}, fmt.Errorf("parsing foreground color: %w", err)
	}
	bg, err := ParseColor(opts.Background)
	if err != nil {
		return Emulator{}, fmt.Errorf("parsing background color: %w", err)
	}

	return Emulator{
		InstructionsPerFrame: opts.InstructionsPerFrame,
		Frames:               opts.Frames,
		Seed:                 opts.Seed,
		Scale:                opts.Scale,
		Foreground:           fg,
		Background:           bg,
		Status:               opts.Status,
		Mute:                 opts.Mute,
	}, nil
}

// ParseColor parses a color in the hex format RRGGBB, optionally prefixed by # or 0x.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "#"), "0x")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color '%s': expected 6 hex digits", s)
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color '%s': %w", s, err)
	}
	return color.RGBA{R: b[0], G: b[1], B: b[2], A: 0xFF}, nil
}
