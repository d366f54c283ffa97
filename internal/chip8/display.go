package chip8

import "strings"

// Display dimensions in pixels.
const (
	Width  = 64
	Height = 32
)

// Framebuffer is the monochrome 64x32 display of the machine.
// Pixels are addressed by row and column, row 0 column 0 being the top left.
type Framebuffer struct {
	pixels [Height][Width]bool
	dirty  bool
}

// Pixel returns whether the pixel at the given row and column is lit.
// Coordinates outside the display wrap around.
func (f *Framebuffer) Pixel(row, column int) bool {
	return f.pixels[wrap(row, Height)][wrap(column, Width)]
}

// Dirty returns whether the framebuffer was cleared or drawn to since the
// last call to ClearDirty.
func (f *Framebuffer) Dirty() bool {
	return f.dirty
}

// ClearDirty acknowledges a successful presentation of the framebuffer.
func (f *Framebuffer) ClearDirty() {
	f.dirty = false
}

// LitPixels returns the number of lit pixels.
func (f *Framebuffer) LitPixels() int {
	count := 0
	for row := range f.pixels {
		for _, lit := range f.pixels[row] {
			if lit {
				count++
			}
		}
	}
	return count
}

// String renders the framebuffer as text, one line per row,
// using '#' for lit and '.' for unlit pixels.
func (f *Framebuffer) String() string {
	var sb strings.Builder
	sb.Grow(Height * (Width + 1))
	for row := range f.pixels {
		for _, lit := range f.pixels[row] {
			if lit {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (f *Framebuffer) clear() {
	f.pixels = [Height][Width]bool{}
	f.dirty = true
}

// drawByte XORs the 8 bits of a sprite byte into the given row starting at
// the given column, most significant bit first. Both coordinates wrap.
// It returns true if any lit pixel was turned off.
func (f *Framebuffer) drawByte(row, column int, data byte) bool {
	collision := false
	line := &f.pixels[wrap(row, Height)]
	for bit := range 8 {
		if data&(0x80>>bit) == 0 {
			continue
		}
		x := wrap(column+bit, Width)
		if line[x] {
			collision = true
		}
		line[x] = !line[x]
	}
	return collision
}

func wrap(value, size int) int {
	value %= size
	if value < 0 {
		value += size
	}
	return value
}
