// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constantClip(rate, channels, frames int, value float32) *Clip {
	samples := make([]float32, frames*channels)
	for i := range samples {
		samples[i] = value
	}
	return &Clip{Name: "const", SampleRate: rate, Channels: channels, Samples: samples}
}

func TestToMono_Stereo(t *testing.T) {
	t.Parallel()

	c := &Clip{SampleRate: 8000, Channels: 2, Samples: []float32{0.4, 0.6, -1, 1, 0.2, 0.2}}
	mono := ToMono(c)

	require.Equal(t, 1, mono.Channels)
	require.Len(t, mono.Samples, 3)
	assert.InDelta(t, 0.5, mono.Samples[0], 0.0001)
	assert.InDelta(t, 0.0, mono.Samples[1], 0.0001)
	assert.InDelta(t, 0.2, mono.Samples[2], 0.0001)
}

func TestToMono_MultiChannel(t *testing.T) {
	t.Parallel()

	c := &Clip{SampleRate: 8000, Channels: 3, Samples: []float32{0.3, 0.6, 0.9}}
	mono := ToMono(c)

	require.Len(t, mono.Samples, 1)
	assert.InDelta(t, 0.6, mono.Samples[0], 0.0001)
}

func TestToMono_Passthrough(t *testing.T) {
	t.Parallel()

	c := constantClip(8000, 1, 10, 0.5)
	assert.Same(t, c, ToMono(c))
}

func TestResample_Lengths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src, dst int
		frames   int
		want     int
	}{
		{"downsample 44.1k to 16k", 44100, 16000, 44100, 16000},
		{"upsample 8k to 48k", 8000, 48000, 800, 4800},
		{"downsample 48k to 8k", 48000, 8000, 480, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := Resample(constantClip(tt.src, 1, tt.frames, 0.25), tt.dst)
			require.NoError(t, err)
			assert.Equal(t, tt.dst, out.SampleRate)
			assert.Equal(t, tt.want, out.Frames())
		})
	}
}

func TestResample_ConstantSignalIsPreserved(t *testing.T) {
	t.Parallel()

	out, err := Resample(constantClip(22050, 2, 2205, 0.25), 48000)
	require.NoError(t, err)
	require.Equal(t, 2, out.Channels)

	for i, v := range out.Samples {
		if math.Abs(float64(v-0.25)) > 0.0001 {
			t.Fatalf("sample %d = %v, want 0.25", i, v)
		}
	}
}

func TestResample_SameRate(t *testing.T) {
	t.Parallel()

	c := constantClip(8000, 1, 10, 0.1)
	out, err := Resample(c, 8000)
	require.NoError(t, err)
	assert.Same(t, c, out)
}

func TestResample_Errors(t *testing.T) {
	t.Parallel()

	_, err := Resample(constantClip(8000, 1, 10, 0), 0)
	assert.ErrorIs(t, err, ErrInvalidRate)

	_, err = Resample(&Clip{SampleRate: 8000, Channels: 1}, 16000)
	assert.ErrorIs(t, err, ErrEmptyClip)

	// a single frame cannot survive an 8x downsample
	_, err = Resample(constantClip(64000, 1, 1, 0), 8000)
	assert.ErrorIs(t, err, ErrEmptyClip)
}

func TestConvert(t *testing.T) {
	t.Parallel()

	out, err := Convert(constantClip(44100, 2, 4410, 0.5), 48000)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Channels)
	assert.Equal(t, 48000, out.SampleRate)
	assert.Equal(t, 4800, out.Frames())
}

func TestCubicInterpolate_Bounds(t *testing.T) {
	t.Parallel()

	for i := range 100 {
		y0, y1, y2, y3 := float32(i), float32(i+1), float32(i+2), float32(i+3)
		assert.Equal(t, y1, cubicInterpolate(y0, y1, y2, y3, 0))
		assert.Equal(t, y2, cubicInterpolate(y0, y1, y2, y3, 1))
	}

	assert.InDelta(t, 2.25, cubicInterpolate(1, 2, 3, 4, 0.25), 0.01)
}
