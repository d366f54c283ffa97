package config

import (
	"image/color"
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func validOptions() options.Program {
	return options.Program{
		Display: options.Display{
			Scale:      10,
			Foreground: "ffbf00",
			Background: "#000000",
		},
		Emulation: options.Emulation{
			InstructionsPerFrame: 11,
			Frames:               600,
		},
	}
}

func TestNew(t *testing.T) {
	cfg, err := New(validOptions())
	assert.NoError(t, err)
	assert.Equal(t, 11, cfg.InstructionsPerFrame)
	assert.Equal(t, 600, cfg.Frames)
	assert.Equal(t, 10, cfg.Scale)
	assert.Equal(t, color.RGBA{R: 0xFF, G: 0xBF, A: 0xFF}, cfg.Foreground)
	assert.Equal(t, color.RGBA{A: 0xFF}, cfg.Background)
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		modify     func(*options.Program)
		errContain string
	}{
		{"zero instructions", func(o *options.Program) { o.InstructionsPerFrame = 0 }, "instructions per frame"},
		{"too many instructions", func(o *options.Program) { o.InstructionsPerFrame = MaxInstructionsPerFrame + 1 }, "instructions per frame"},
		{"zero scale", func(o *options.Program) { o.Scale = 0 }, "scale"},
		{"zero frames", func(o *options.Program) { o.Frames = 0 }, "frame count"},
		{"invalid foreground", func(o *options.Program) { o.Foreground = "red" }, "foreground"},
		{"invalid background", func(o *options.Program) { o.Background = "zzzzzz" }, "background"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := validOptions()
			tt.modify(&opts)

			_, err := New(opts)
			assert.ErrorContains(t, err, tt.errContain)
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		want    color.RGBA
		wantErr bool
	}{
		{"ffbf00", color.RGBA{R: 0xFF, G: 0xBF, B: 0x00, A: 0xFF}, false},
		{"#102030", color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF}, false},
		{"0xABCDEF", color.RGBA{R: 0xAB, G: 0xCD, B: 0xEF, A: 0xFF}, false},
		{"fff", color.RGBA{}, true},
		{"gg0000", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
