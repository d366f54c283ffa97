package driver

import (
	"context"
	"errors"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestFrame_Instructions(t *testing.T) {
	d, _, _ := newTestDriver(t, 5, 0x1200) // JP 0x200

	assert.NoError(t, d.Frame(keysDown()))
	assert.NoError(t, d.Frame(keysDown()))

	stats := d.Stats()
	assert.Equal(t, 2, stats.Frames)
	assert.Equal(t, 10, stats.Instructions)
	assert.Equal(t, uint16(0x200), d.Machine().PC())
}

func TestFrame_WaitForKey(t *testing.T) {
	d, _, _ := newTestDriver(t, 5,
		0xF00A, // LD V0, K
		0x1202, // JP 0x202
	)

	assert.NoError(t, d.Frame(keysDown()))
	assert.True(t, d.Machine().WaitingForKey())
	assert.Equal(t, 1, d.Stats().Instructions)

	assert.NoError(t, d.Frame(keysDown()))
	assert.True(t, d.Machine().WaitingForKey())
	assert.Equal(t, 1, d.Stats().Instructions)

	assert.NoError(t, d.Frame(keysDown(7)))
	assert.False(t, d.Machine().WaitingForKey())
	assert.Equal(t, byte(7), d.Machine().Register(0))
	assert.Equal(t, 5, d.Stats().Instructions)
}

func TestFrame_Tone(t *testing.T) {
	d, _, tone := newTestDriver(t, 3,
		0x6003, // LD V0, 3
		0xF018, // LD ST, V0
		0x1204, // JP 0x204
	)

	assert.NoError(t, d.Frame(keysDown()))
	assert.Equal(t, byte(2), d.Machine().SoundTimer())
	assert.True(t, tone.active)

	assert.NoError(t, d.Frame(keysDown()))
	assert.True(t, tone.active)

	assert.NoError(t, d.Frame(keysDown()))
	assert.Equal(t, byte(0), d.Machine().SoundTimer())
	assert.False(t, tone.active)
	assert.Equal(t, 2, tone.changes)
}

func TestFrame_Present(t *testing.T) {
	d, presenter, _ := newTestDriver(t, 4,
		0xA000, // LD I, glyph 0
		0xD015, // DRW V0, V1, 5
		0x1204, // JP 0x204
	)

	assert.NoError(t, d.Frame(keysDown()))
	assert.Equal(t, 1, presenter.presented)
	assert.Equal(t, 14, presenter.lit)
	assert.False(t, d.Machine().Framebuffer().Dirty())

	assert.NoError(t, d.Frame(keysDown()))
	assert.Equal(t, 1, presenter.presented)
}

func TestFrame_PresentError(t *testing.T) {
	d, presenter, _ := newTestDriver(t, 1, 0x00E0) // CLS
	presenter.err = errors.New("display lost")

	err := d.Frame(keysDown())
	assert.ErrorContains(t, err, "display lost")
	assert.True(t, d.Machine().Framebuffer().Dirty())
}

func TestFrame_ExecutionError(t *testing.T) {
	d, _, _ := newTestDriver(t, 4, 0x5011) // invalid 5xy1

	err := d.Frame(keysDown())
	var execErr *chip8.ExecutionError
	assert.True(t, errors.As(err, &execErr))
	assert.Equal(t, uint16(0x200), execErr.Address)
	assert.True(t, errors.Is(err, chip8.ErrUnknownInstruction))
}

func TestRunFrames(t *testing.T) {
	d, _, _ := newTestDriver(t, 2, 0x1200)

	assert.NoError(t, d.RunFrames(context.Background(), 30))
	assert.Equal(t, 30, d.Stats().Frames)
	assert.Equal(t, 60, d.Stats().Instructions)
}

func TestRunFrames_Canceled(t *testing.T) {
	d, _, _ := newTestDriver(t, 2, 0x1200)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.RunFrames(ctx, 30)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 0, d.Stats().Frames)
}

func TestRun(t *testing.T) {
	d, _, _ := newTestDriver(t, 1,
		0x7001, // ADD V0, 1
		0x1200, // JP 0x200
	)
	source := &fakeSource{
		inputs: []Input{
			{},
			{},
			{Reset: true},
		},
	}

	assert.NoError(t, d.Run(context.Background(), source))
	assert.Equal(t, 4, source.polls)
	assert.Equal(t, 3, d.Stats().Frames)
	assert.Equal(t, 1, d.Stats().Resets)
	// the reset cleared V0 before the last frame executed ADD again
	assert.Equal(t, byte(1), d.Machine().Register(0))
}

func TestRun_Canceled(t *testing.T) {
	d, _, _ := newTestDriver(t, 1, 0x1200)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Run(ctx, &fakeSource{})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestReset_Presented(t *testing.T) {
	d, presenter, _ := newTestDriver(t, 3,
		0xA000, // LD I, glyph 0
		0xD015, // DRW V0, V1, 5
		0x1204, // JP 0x204
	)

	assert.NoError(t, d.Frame(keysDown()))
	assert.Equal(t, 1, presenter.presented)
	assert.Equal(t, 14, presenter.lit)

	d.Reset()
	// only the first instruction runs before the frame is presented again
	d.instructionsPerFrame = 1
	assert.NoError(t, d.Frame(keysDown()))
	assert.Equal(t, 2, presenter.presented)
	assert.Equal(t, 0, presenter.lit)
	assert.Equal(t, 1, d.Stats().Resets)
}
