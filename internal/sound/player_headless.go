//go:build headless

package sound

// Player is a silent stand-in for builds without audio support.
type Player struct {
	wave *SquareWave
}

// NewPlayer returns a player that only tracks the tone state.
func NewPlayer(wave *SquareWave) (*Player, error) {
	return &Player{wave: wave}, nil
}

// SetActive switches the tone on or off.
func (p *Player) SetActive(active bool) {
	p.wave.SetActive(active)
}

// Close stops the playback.
func (p *Player) Close() error {
	p.wave.SetActive(false)
	return nil
}
