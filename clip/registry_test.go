// SPDX-License-Identifier: EPL-2.0

package clip_test

import (
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audvox/clip"
)

func writeWAV(t *testing.T, path string, rate, channels int, data []int) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, rate, 16, channels, 1)
	require.NoError(t, enc.Write(&goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: 16,
	}))
	require.NoError(t, enc.Close())
}

func TestRegistry_LoadWAV(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "footstep_01.wav")
	writeWAV(t, path, 8000, 1, []int{16384, -16384, 0, 8192})

	c, err := clip.NewDefaultRegistry().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "footstep_01", c.Name)
	assert.Equal(t, 8000, c.SampleRate)
	assert.Equal(t, 1, c.Channels)
	require.Equal(t, 4, c.Frames())
	assert.InDelta(t, 0.5, c.Samples[0], 0.0001)
	assert.InDelta(t, -0.5, c.Samples[1], 0.0001)
	assert.InDelta(t, 0.25, c.Samples[3], 0.0001)
}

func TestRegistry_LoadStereoWAV(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "door.WAV")
	writeWAV(t, path, 16000, 2, []int{100, 200, 300, 400})

	c, err := clip.NewDefaultRegistry().Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Channels)
	assert.Equal(t, 2, c.Frames())
}

func TestRegistry_UnsupportedExtension(t *testing.T) {
	t.Parallel()

	_, err := clip.NewDefaultRegistry().Load("sound.flac")
	assert.ErrorIs(t, err, clip.ErrUnsupportedFormat)
}

func TestRegistry_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := clip.NewDefaultRegistry().Load(filepath.Join(t.TempDir(), "missing.wav"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRegistry_InvalidWAV(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "junk.wav")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a riff file, just text padding"), 0o600))

	_, err := clip.NewDefaultRegistry().Load(path)
	assert.ErrorIs(t, err, clip.ErrNotWavFile)
}

func TestRegistry_GetIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	reg := clip.NewDefaultRegistry()
	for _, ext := range []string{"wav", "WAV", "aiff", "aif", "mp3", "ogg"} {
		_, ok := reg.Get(ext)
		assert.True(t, ok, "decoder for %q", ext)
	}

	_, ok := reg.Get("flac")
	assert.False(t, ok)
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	reg := clip.NewRegistry()
	_, ok := reg.Get("wav")
	require.False(t, ok)

	reg.Register("WAV", clip.WAVDecoder{})
	_, ok = reg.Get("wav")
	assert.True(t, ok)
}
