//go:build headless

package video

import (
	"context"
	"errors"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/driver"
	"github.com/retroenv/retrogolib/log"
)

// ErrNoWindowSupport is returned when the window frontend is used in a build without it.
var ErrNoWindowSupport = errors.New("window frontend is not available in headless builds")

// Window is unavailable in headless builds.
type Window struct{}

// New returns ErrNoWindowSupport.
func New(_ *log.Logger, _ Palette, _ int, _ bool) (*Window, error) {
	return nil, ErrNoWindowSupport
}

// Present does nothing.
func (w *Window) Present(_ *chip8.Framebuffer) error {
	return nil
}

// Run returns ErrNoWindowSupport.
func (w *Window) Run(_ context.Context, _ *driver.Driver) error {
	return ErrNoWindowSupport
}
