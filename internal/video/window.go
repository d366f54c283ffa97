//go:build !headless

package video

import (
	"context"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/driver"
	"github.com/retroenv/retrochip8/internal/input"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/image/font/basicfont"
)

const statusHeight = 16

var statusColor = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}

var hostKeys = [chip8.NumKeys]ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4,
	ebiten.KeyQ, ebiten.KeyW, ebiten.KeyE, ebiten.KeyR,
	ebiten.KeyA, ebiten.KeyS, ebiten.KeyD, ebiten.KeyF,
	ebiten.KeyZ, ebiten.KeyX, ebiten.KeyC, ebiten.KeyV,
}

// Window is an ebiten game that drives the machine once per tick and
// displays its framebuffer.
type Window struct {
	ctx     context.Context
	logger  *log.Logger
	driver  *driver.Driver
	keymap  *input.Keymap[ebiten.Key]
	palette Palette
	scale   int
	status  bool

	pixels []byte
	image  *ebiten.Image
}

// New returns a window with the given palette, scale factor and optional status line.
func New(logger *log.Logger, palette Palette, scale int, status bool) (*Window, error) {
	keymap, err := input.New(hostKeys)
	if err != nil {
		return nil, fmt.Errorf("creating keymap: %w", err)
	}

	return &Window{
		logger:  logger,
		keymap:  keymap,
		palette: palette,
		scale:   scale,
		status:  status,
		pixels:  make([]byte, BufferSize()),
	}, nil
}

// Present converts the framebuffer to pixel data for the next draw.
func (w *Window) Present(fb *chip8.Framebuffer) error {
	w.palette.Fill(fb, w.pixels)
	return nil
}

// Run opens the window and runs the driver until the window gets closed,
// Escape is pressed or the context is canceled. It blocks the calling goroutine.
func (w *Window) Run(ctx context.Context, d *driver.Driver) error {
	w.ctx = ctx
	w.driver = d
	w.palette.Fill(d.Machine().Framebuffer(), w.pixels)

	width, height := w.Layout(0, 0)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("retrochip8")
	ebiten.SetTPS(driver.FrameRate)

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return ctx.Err()
}

// Update executes one frame of the machine.
func (w *Window) Update() error {
	if w.ctx.Err() != nil || ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		w.logger.Debug("Escape pressed, closing window")
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		w.driver.Reset()
	}

	keys := w.keymap.State(ebiten.IsKeyPressed)
	return w.driver.Frame(keys)
}

// Draw renders the framebuffer and the optional status line.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.image == nil {
		w.image = ebiten.NewImage(chip8.Width, chip8.Height)
	}
	w.image.WritePixels(w.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w.scale), float64(w.scale))
	screen.DrawImage(w.image, op)

	if w.status {
		s := StatusText(w.driver.Machine(), w.driver.Stats())
		text.Draw(screen, s, basicfont.Face7x13, 4, chip8.Height*w.scale+statusHeight-3, statusColor)
	}
}

// Layout returns the fixed logical screen size.
func (w *Window) Layout(_, _ int) (int, int) {
	height := chip8.Height * w.scale
	if w.status {
		height += statusHeight
	}
	return chip8.Width * w.scale, height
}
