// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"fmt"
	"io"
	"time"
)

// Clip is decoded PCM audio held in memory.
type Clip struct {
	Name       string
	SampleRate int
	Channels   int
	// Samples are interleaved, one value per channel per frame.
	Samples []float32
}

// Decoder builds a Clip from encoded audio.
type Decoder interface {
	Decode(r io.Reader) (*Clip, error)
}

// Frames returns the number of sample frames in the clip.
func (c *Clip) Frames() int {
	if c == nil || c.Channels <= 0 {
		return 0
	}
	return len(c.Samples) / c.Channels
}

// Duration returns the playback length at the clip's own sample rate.
func (c *Clip) Duration() time.Duration {
	if c == nil || c.SampleRate <= 0 {
		return 0
	}
	return time.Duration(c.Frames()) * time.Second / time.Duration(c.SampleRate)
}

// Validate reports whether the clip can be played.
func (c *Clip) Validate() error {
	switch {
	case c == nil:
		return ErrEmptyClip
	case c.SampleRate <= 0:
		return fmt.Errorf("clip %q: %w", c.Name, ErrInvalidRate)
	case c.Channels <= 0:
		return fmt.Errorf("clip %q: %w", c.Name, ErrInvalidChannels)
	case c.Frames() == 0:
		return fmt.Errorf("clip %q: %w", c.Name, ErrEmptyClip)
	}
	return nil
}

func (c *Clip) String() string {
	return fmt.Sprintf("%s (%d Hz, %d ch, %s)", c.Name, c.SampleRate, c.Channels, c.Duration())
}
