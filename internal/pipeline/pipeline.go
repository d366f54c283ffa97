// Package pipeline orchestrates the emulation workflow stages.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/driver"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/sound"
	"github.com/retroenv/retrochip8/internal/terminal"
	"github.com/retroenv/retrochip8/internal/video"
	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ErrUnsupportedSystem is returned for programs of systems that can not be emulated.
var ErrUnsupportedSystem = errors.New("unsupported system")

// Pipeline orchestrates the complete emulation workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
	output   io.Writer
}

// New creates a new emulation pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
		output:   os.Stdout,
	}
}

// Execute runs the complete emulation pipeline.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program) error {
	system := p.detector.Detect(opts)
	if !detector.Supported(system) {
		return fmt.Errorf("%w '%s'", ErrUnsupportedSystem, system)
	}

	cfg, err := config.New(opts)
	if err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	program, err := p.loader.Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading program: %w", err)
	}

	machine, err := p.createMachine(program, cfg)
	if err != nil {
		return fmt.Errorf("creating machine: %w", err)
	}

	p.printInfo(opts, system, len(program))

	return p.ExecuteWithMachine(ctx, machine, opts.Frontend, cfg)
}

// ExecuteWithMachine runs the emulation of a machine with an already loaded program
// using the given frontend.
func (p *Pipeline) ExecuteWithMachine(ctx context.Context, machine *chip8.Machine,
	frontend string, cfg config.Emulator) error {

	var err error
	switch frontend {
	case options.FrontendHeadless:
		err = p.runHeadless(ctx, machine, cfg)
	case options.FrontendTerminal:
		err = p.runTerminal(ctx, machine, cfg)
	case options.FrontendWindow:
		err = p.runWindow(ctx, machine, cfg)
	default:
		return fmt.Errorf("unsupported frontend '%s'", frontend)
	}
	if err != nil {
		return fmt.Errorf("running %s frontend: %w", frontend, err)
	}
	return nil
}

// createMachine creates a machine with the loaded program and the configured random source.
func (p *Pipeline) createMachine(program []byte, cfg config.Emulator) (*chip8.Machine, error) {
	machine := chip8.New()
	if err := machine.Load(program); err != nil {
		return nil, fmt.Errorf("loading program into memory: %w", err)
	}

	if cfg.Seed != 0 {
		rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
		machine.SetRandomSource(func() byte {
			return byte(rng.Uint32() >> 24)
		})
		p.logger.Debug("Using seeded random source", log.String("seed", fmt.Sprint(cfg.Seed)))
	}
	return machine, nil
}

// runHeadless runs the configured number of frames without pacing and
// prints the final framebuffer.
func (p *Pipeline) runHeadless(ctx context.Context, machine *chip8.Machine, cfg config.Emulator) error {
	d := driver.New(p.logger, machine, cfg.InstructionsPerFrame, nil, nil)
	defer d.LogStats()

	if err := d.RunFrames(ctx, cfg.Frames); err != nil {
		return err
	}

	if _, err := io.WriteString(p.output, machine.Framebuffer().String()); err != nil {
		return fmt.Errorf("writing framebuffer: %w", err)
	}
	return nil
}

// runTerminal runs the machine paced at the frame rate in the terminal.
func (p *Pipeline) runTerminal(ctx context.Context, machine *chip8.Machine, cfg config.Emulator) error {
	term := terminal.New(p.logger, p.output)
	if err := term.Open(); err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	defer func() {
		if err := term.Close(); err != nil {
			p.logger.Error("Closing terminal failed", log.Err(err))
		}
	}()

	tone, closeTone := p.createTone(cfg)
	defer closeTone()

	d := driver.New(p.logger, machine, cfg.InstructionsPerFrame, term, tone)
	defer d.LogStats()

	if err := term.Present(machine.Framebuffer()); err != nil {
		return fmt.Errorf("presenting framebuffer: %w", err)
	}
	return d.Run(ctx, term)
}

// runWindow runs the machine in a window that paces the frames itself.
func (p *Pipeline) runWindow(ctx context.Context, machine *chip8.Machine, cfg config.Emulator) error {
	palette := video.Palette{
		Foreground: cfg.Foreground,
		Background: cfg.Background,
	}
	window, err := video.New(p.logger, palette, cfg.Scale, cfg.Status)
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}

	tone, closeTone := p.createTone(cfg)
	defer closeTone()

	d := driver.New(p.logger, machine, cfg.InstructionsPerFrame, window, tone)
	defer d.LogStats()

	return window.Run(ctx, d)
}

// createTone opens the audio output unless muted. A failing audio device
// is not fatal, the emulation continues without sound.
func (p *Pipeline) createTone(cfg config.Emulator) (driver.Tone, func()) {
	if cfg.Mute {
		return nil, func() {}
	}

	player, err := sound.NewPlayer(sound.NewSquareWave())
	if err != nil {
		p.logger.Warn("Audio output not available, continuing without sound", log.Err(err))
		return nil, func() {}
	}

	return player, func() {
		if err := player.Close(); err != nil {
			p.logger.Error("Closing audio output failed", log.Err(err))
		}
	}
}

// printInfo prints information about the program being emulated.
func (p *Pipeline) printInfo(opts options.Program, system arch.System, size int) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Running Chip-8 program",
		log.String("file", opts.Input),
		log.Stringer("system", system),
		log.Int("size", size),
		log.String("frontend", opts.Frontend),
	)
}

// PrintBanner prints application version information.
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("retrochip8", log.String("version", buildinfo.Version(version, commit, date)))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Debug("Build", log.String("date", date))
	}
}
