package loader

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("load program file", func(t *testing.T) {
		data := []byte{0x00, 0xE0, 0x12, 0x00}
		tmpFile := createTempFile(t, data)

		program, err := New().Load(tmpFile)
		assert.NoError(t, err)
		assert.Equal(t, len(data), len(program))
		assert.True(t, bytes.Equal(data, program))
	})

	t.Run("load program of maximum size", func(t *testing.T) {
		tmpFile := createTempFile(t, make([]byte, chip8.MaxProgramSize))

		program, err := New().Load(tmpFile)
		assert.NoError(t, err)
		assert.Len(t, program, chip8.MaxProgramSize)
	})

	t.Run("error on oversized program", func(t *testing.T) {
		tmpFile := createTempFile(t, make([]byte, chip8.MaxProgramSize+1))

		_, err := New().Load(tmpFile)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, chip8.ErrProgramTooLarge))
	})

	t.Run("error on empty program", func(t *testing.T) {
		tmpFile := createTempFile(t, nil)

		_, err := New().Load(tmpFile)
		assert.True(t, errors.Is(err, ErrEmptyProgram))
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		_, err := New().Load("/nonexistent/file.ch8")
		assert.ErrorContains(t, err, "opening file")
	})
}

func TestLoadFromReader(t *testing.T) {
	data := []byte{0x6A, 0x42, 0xA0, 0x00}

	program, err := New().LoadFromReader(bytes.NewReader(data))
	assert.NoError(t, err)
	assert.True(t, bytes.Equal(data, program))
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.ch8")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
