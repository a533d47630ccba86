// SPDX-License-Identifier: EPL-2.0

package clip

import "fmt"

// Convert returns a mono copy of c at the given sample rate.
func Convert(c *Clip, rate int) (*Clip, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return Resample(ToMono(c), rate)
}

// ToMono averages all channels of c into one. Mono clips are returned as is.
func ToMono(c *Clip) *Clip {
	if c == nil || c.Channels <= 1 {
		return c
	}

	channels := c.Channels
	frames := c.Frames()
	out := make([]float32, frames)
	inv := float32(1.0) / float32(channels)

	switch channels {
	case 2:
		for f := range frames {
			idx := f << 1
			out[f] = (c.Samples[idx] + c.Samples[idx+1]) * 0.5
		}
	default:
		for f := range frames {
			var sum float32
			base := f * channels
			for ch := range channels {
				sum += c.Samples[base+ch]
			}
			out[f] = sum * inv
		}
	}

	return &Clip{Name: c.Name, SampleRate: c.SampleRate, Channels: 1, Samples: out}
}

// Resample converts c to rate, keeping its channel count.
func Resample(c *Clip, rate int) (*Clip, error) {
	if rate <= 0 {
		return nil, ErrInvalidRate
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.SampleRate == rate {
		return c, nil
	}

	channels := c.Channels
	inFrames := c.Frames()
	outFrames := int(int64(inFrames) * int64(rate) / int64(c.SampleRate))
	if outFrames == 0 {
		return nil, fmt.Errorf("clip %q at %d Hz: %w", c.Name, rate, ErrEmptyClip)
	}

	// source frames per output frame
	ratio := float64(c.SampleRate) / float64(rate)
	out := make([]float32, outFrames*channels)

	at := func(frame, ch int) float32 {
		if frame < 0 {
			frame = 0
		} else if frame >= inFrames {
			frame = inFrames - 1
		}
		return c.Samples[frame*channels+ch]
	}

	for f := range outFrames {
		pos := float64(f) * ratio
		i := int(pos)
		x := float32(pos - float64(i))
		for ch := range channels {
			out[f*channels+ch] = cubicInterpolate(at(i-1, ch), at(i, ch), at(i+1, ch), at(i+2, ch), x)
		}
	}

	return &Clip{Name: c.Name, SampleRate: rate, Channels: channels, Samples: out}, nil
}

// cubicInterpolate is a Catmull-Rom spline between y1 (x=0) and y2 (x=1).
func cubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2
	a3 := y1

	return a0*x*x*x + a1*x*x + a2*x + a3
}
