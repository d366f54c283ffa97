// Package options contains the program options.
package options

// Frontend names.
const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
	FrontendHeadless = "headless"
)

// Parameters contains file path options.
type Parameters struct {
	Input string `flag:"i" usage:"input ROM file"`
}

// Flags contains behavior options.
type Flags struct {
	System   string `flag:"s" usage:"target system: chip8 (default: auto-detect)"`
	Frontend string `flag:"frontend" usage:"frontend: window, terminal, headless" default:"window"`
	Debug    bool   `flag:"debug" usage:"enable debug logging"`
	Quiet    bool   `flag:"q" usage:"quiet mode"`
}

// Display contains presentation options.
type Display struct {
	Scale      int    `flag:"scale" usage:"window scale factor" default:"10"`
	Foreground string `flag:"fg" usage:"lit pixel color as hex RGB" default:"ffbf00"`
	Background string `flag:"bg" usage:"unlit pixel color as hex RGB" default:"000000"`
	Status     bool   `flag:"status" usage:"show a status line in the window"`
	Mute       bool   `flag:"mute" usage:"disable the tone generator"`
}

// Emulation contains options that control the execution of the machine.
type Emulation struct {
	InstructionsPerFrame int    `flag:"ipf" usage:"instructions executed per 60 Hz frame" default:"11"`
	Frames               int    `flag:"frames" usage:"frames to run in headless mode" default:"600"`
	Seed                 uint64 `flag:"seed" usage:"seed for the random number generator, 0 for a random seed"`
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
	Display
	Emulation
}
