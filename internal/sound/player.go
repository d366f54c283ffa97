//go:build !headless

package sound

import (
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// Player plays a square wave through the audio device of the host.
type Player struct {
	wave   *SquareWave
	ctx    *oto.Context
	player *oto.Player
	mutex  sync.Mutex
}

// NewPlayer opens the audio device and starts streaming the square wave.
func NewPlayer(wave *SquareWave) (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("creating audio context: %w", err)
	}
	<-ready

	p := &Player{
		wave:   wave,
		ctx:    ctx,
		player: ctx.NewPlayer(wave),
	}
	p.player.Play()
	return p, nil
}

// SetActive switches the tone on or off.
func (p *Player) SetActive(active bool) {
	p.wave.SetActive(active)
}

// Close stops the playback.
func (p *Player) Close() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.player == nil {
		return nil
	}
	p.wave.SetActive(false)
	err := p.player.Close()
	p.player = nil
	if err != nil {
		return fmt.Errorf("closing audio player: %w", err)
	}
	return nil
}
