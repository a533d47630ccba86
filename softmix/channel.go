// SPDX-License-Identifier: EPL-2.0

package softmix

import (
	"fmt"
	"math"

	"github.com/ik5/audvox/bus"
	"github.com/ik5/audvox/voice"
)

// Channel is one input of a Mixer with its own gain. It is the backend for
// the voices of one bus.
type Channel struct {
	mixer  *Mixer
	name   string
	gainDB float64
	gain   float32
}

var (
	_ voice.Backend = (*Channel)(nil)
	_ bus.Mixer     = (*Channel)(nil)
)

func (c *Channel) Name() string    { return c.name }
func (c *Channel) GainDB() float64 { return c.gainDB }
func (c *Channel) Gain() float32   { return c.gain }
func (c *Channel) Mixer() *Mixer   { return c.mixer }

// SetFloat sets a channel parameter. Only bus.VolumeParam, in dB, is known.
func (c *Channel) SetFloat(param string, value float64) error {
	if param != bus.VolumeParam {
		return fmt.Errorf("channel %q: %w: %q", c.name, ErrUnknownParam, param)
	}
	if math.IsNaN(value) || math.IsInf(value, 1) {
		return fmt.Errorf("channel %q %s: %w: %v", c.name, param, ErrInvalidValue, value)
	}

	c.gainDB = value
	c.gain = float32(math.Pow(10, value/20))
	return nil
}

// Play starts v from the beginning of its clip. done runs from a later
// Advance or Render once the clip is exhausted.
func (c *Channel) Play(v *voice.Voice, done func()) error {
	return c.mixer.start(c, v, done)
}

// Stop drops v's track. Voices that are not playing are ignored.
func (c *Channel) Stop(v *voice.Voice) error {
	c.mixer.stop(v)
	return nil
}

// SetPosition records p for v. The mix is mono, so it does not change gain.
func (c *Channel) SetPosition(v *voice.Voice, p voice.Position) error {
	c.mixer.positions[v] = p
	return nil
}
