// Package video presents the framebuffer of the machine in a scaled window.
package video

import (
	"fmt"
	"image/color"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/driver"
)

// BytesPerPixel is the size of a single RGBA pixel.
const BytesPerPixel = 4

// Palette defines the colors of lit and unlit pixels.
type Palette struct {
	Foreground color.RGBA
	Background color.RGBA
}

// BufferSize returns the size of an RGBA buffer holding the whole framebuffer.
func BufferSize() int {
	return chip8.Width * chip8.Height * BytesPerPixel
}

// Fill converts the framebuffer into RGBA pixel data, row by row.
func (p Palette) Fill(fb *chip8.Framebuffer, pixels []byte) {
	offset := 0
	for row := range chip8.Height {
		for column := range chip8.Width {
			c := p.Background
			if fb.Pixel(row, column) {
				c = p.Foreground
			}
			pixels[offset] = c.R
			pixels[offset+1] = c.G
			pixels[offset+2] = c.B
			pixels[offset+3] = c.A
			offset += BytesPerPixel
		}
	}
}

// StatusText returns the status line describing the machine state.
func StatusText(machine *chip8.Machine, stats driver.Stats) string {
	rate := 0
	if stats.Frames > 0 {
		rate = stats.Instructions * driver.FrameRate / stats.Frames
	}

	s := fmt.Sprintf("PC %03X I %03X DT %02X ST %02X %d/s",
		machine.PC(), machine.AddressRegister(), machine.DelayTimer(), machine.SoundTimer(), rate)
	if machine.WaitingForKey() {
		s += " waiting for key"
	}
	return s
}
