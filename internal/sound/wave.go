// Package sound generates the tone that is audible while the sound timer runs.
package sound

import (
	"encoding/binary"
	"math"
	"sync/atomic"
)

// Tone parameters.
const (
	SampleRate = 44100
	Frequency  = 440
	Volume     = 0.25

	bytesPerSample = 4 // mono float32
)

// SquareWave is a reader that produces float32 little endian mono samples of a
// square wave while active and silence otherwise.
type SquareWave struct {
	active    atomic.Bool
	frequency float64
	volume    float32
	phase     float64 // only accessed by the reading goroutine
}

// NewSquareWave returns a square wave generator with the default tone parameters.
func NewSquareWave() *SquareWave {
	return &SquareWave{
		frequency: Frequency,
		volume:    Volume,
	}
}

// SetActive switches the tone on or off. It is safe to call concurrently with Read.
func (w *SquareWave) SetActive(active bool) {
	w.active.Store(active)
}

// Active returns whether the tone is switched on.
func (w *SquareWave) Active() bool {
	return w.active.Load()
}

// Read fills p with as many complete samples as fit into it.
func (w *SquareWave) Read(p []byte) (int, error) {
	samples := len(p) / bytesPerSample
	active := w.active.Load()
	step := w.frequency / SampleRate

	for i := range samples {
		var sample float32
		if active {
			sample = w.volume
			if w.phase >= 0.5 {
				sample = -w.volume
			}
			w.phase += step
			if w.phase >= 1 {
				w.phase--
			}
		}
		binary.LittleEndian.PutUint32(p[i*bytesPerSample:], math.Float32bits(sample))
	}

	if !active {
		w.phase = 0
	}
	return samples * bytesPerSample, nil
}
