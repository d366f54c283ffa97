package sound

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func readSamples(t *testing.T, w *SquareWave, count int) []float32 {
	t.Helper()

	buf := make([]byte, count*bytesPerSample)
	n, err := w.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, len(buf), n)

	samples := make([]float32, count)
	for i := range samples {
		samples[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*bytesPerSample:]))
	}
	return samples
}

func TestSquareWave_Silent(t *testing.T) {
	w := NewSquareWave()
	assert.False(t, w.Active())

	for _, sample := range readSamples(t, w, 256) {
		assert.Equal(t, float32(0), sample)
	}
}

func TestSquareWave_Active(t *testing.T) {
	w := NewSquareWave()
	w.SetActive(true)

	// one period of 440 Hz at 44100 Hz is a little more than 100 samples
	samples := readSamples(t, w, 100)
	assert.Equal(t, float32(Volume), samples[0])
	assert.Equal(t, float32(Volume), samples[49])
	assert.Equal(t, float32(-Volume), samples[51])
	assert.Equal(t, float32(-Volume), samples[99])

	next := readSamples(t, w, 2)
	assert.Equal(t, float32(-Volume), next[0])
	assert.Equal(t, float32(Volume), next[1])
}

func TestSquareWave_PartialSample(t *testing.T) {
	w := NewSquareWave()
	w.SetActive(true)

	n, err := w.Read(make([]byte, 7))
	assert.NoError(t, err)
	assert.Equal(t, bytesPerSample, n)
}

func TestSquareWave_ResetPhase(t *testing.T) {
	w := NewSquareWave()
	w.SetActive(true)
	_ = readSamples(t, w, 75)

	w.SetActive(false)
	_ = readSamples(t, w, 1)

	w.SetActive(true)
	samples := readSamples(t, w, 1)
	assert.Equal(t, float32(Volume), samples[0])
}

func TestPlayer_Headless(t *testing.T) {
	if !headlessBuild {
		t.Skip("requires an audio device")
	}

	w := NewSquareWave()
	p, err := NewPlayer(w)
	assert.NoError(t, err)

	p.SetActive(true)
	assert.True(t, w.Active())
	assert.NoError(t, p.Close())
	assert.False(t, w.Active())
}
