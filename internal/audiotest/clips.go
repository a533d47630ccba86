// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic clips and a scriptable playback
// backend for tests.
package audiotest

import (
	"math"

	"github.com/ik5/audvox/clip"
)

// NewClip creates a clip whose samples come from waveform.
// frames is the number of samples per channel.
func NewClip(name string, sampleRate, channels, frames int, waveform func(frame int, channel int) float32) *clip.Clip {
	samples := make([]float32, frames*channels)
	for f := range frames {
		for ch := range channels {
			samples[f*channels+ch] = waveform(f, ch)
		}
	}

	return &clip.Clip{
		Name:       name,
		SampleRate: sampleRate,
		Channels:   channels,
		Samples:    samples,
	}
}

// NewSilentClip creates a mono clip of zeros.
func NewSilentClip(name string, sampleRate, frames int) *clip.Clip {
	return NewConstantClip(name, sampleRate, frames, 0)
}

// NewConstantClip creates a mono clip with every sample set to value.
func NewConstantClip(name string, sampleRate, frames int, value float32) *clip.Clip {
	return NewClip(name, sampleRate, 1, frames, func(int, int) float32 {
		return value
	})
}

// NewSineClip creates a sine tone on every channel.
func NewSineClip(name string, sampleRate, channels, frames int, frequency float64) *clip.Clip {
	return NewClip(name, sampleRate, channels, frames, func(frame int, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}
