// Package terminal presents the framebuffer in a terminal using half block
// characters and reads the keypad state from raw terminal input.
package terminal

import (
	"io"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
)

const (
	cursorHome  = "\x1b[H"
	clearScreen = "\x1b[2J"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	lineEnd     = "\r\n" // raw mode does not translate newlines
)

// Render writes the framebuffer to the writer, two pixel rows per text line,
// starting at the home position of the cursor.
func Render(w io.Writer, fb *chip8.Framebuffer) error {
	var sb strings.Builder
	sb.Grow(len(cursorHome) + chip8.Height/2*(chip8.Width*3+len(lineEnd)))
	sb.WriteString(cursorHome)

	for row := 0; row < chip8.Height; row += 2 {
		for column := range chip8.Width {
			sb.WriteRune(halfBlock(fb.Pixel(row, column), fb.Pixel(row+1, column)))
		}
		sb.WriteString(lineEnd)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func halfBlock(upper, lower bool) rune {
	switch {
	case upper && lower:
		return '█'
	case upper:
		return '▀'
	case lower:
		return '▄'
	default:
		return ' '
	}
}
