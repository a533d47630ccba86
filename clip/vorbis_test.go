// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// floatReader hands out interleaved samples a few frames at a time.
type floatReader struct {
	sampleRate int
	channels   int
	samples    []float32
	offset     int
	err        error
}

func (r *floatReader) Read(p []float32) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	if r.offset >= len(r.samples) {
		return 0, io.EOF
	}
	n := copy(p[:min(len(p), 2*r.channels)], r.samples[r.offset:])
	r.offset += n
	return n, nil
}

func (r *floatReader) SampleRate() int { return r.sampleRate }
func (r *floatReader) Channels() int   { return r.channels }

func TestVorbisDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := VorbisDecoder{}.Decode(bytes.NewReader([]byte("This is not Ogg Vorbis data")))
	assert.Error(t, err)
}

func TestVorbisDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := VorbisDecoder{}.Decode(bytes.NewReader(nil))
	assert.Error(t, err)
}

func TestReadFloatStream_Metadata(t *testing.T) {
	t.Parallel()

	c, err := readFloatStream(&floatReader{
		sampleRate: 48000,
		channels:   1,
		samples:    []float32{0.1, 0.2, 0.3, 0.4, 0.5},
	})
	require.NoError(t, err)

	assert.Equal(t, 48000, c.SampleRate)
	assert.Equal(t, 1, c.Channels)
	assert.Equal(t, 5, c.Frames())
}

func TestReadFloatStream_Samples(t *testing.T) {
	t.Parallel()

	want := []float32{0.5, -0.5, 1, -1, 0.25, -0.25, 0, 0}
	c, err := readFloatStream(&floatReader{sampleRate: 44100, channels: 2, samples: want})
	require.NoError(t, err)

	assert.Equal(t, want, c.Samples)
	assert.Equal(t, 4, c.Frames())
}

func TestReadFloatStream_Errors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	_, err := readFloatStream(&floatReader{sampleRate: 44100, channels: 2, err: boom})
	assert.ErrorIs(t, err, boom)

	_, err = readFloatStream(&floatReader{sampleRate: 44100, channels: 0})
	assert.ErrorIs(t, err, ErrInvalidChannels)

	_, err = readFloatStream(&floatReader{sampleRate: 44100, channels: 2})
	assert.ErrorIs(t, err, ErrEmptyClip)
}
