// SPDX-License-Identifier: EPL-2.0

package softmix

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/ik5/audvox/clip"
	"github.com/ik5/audvox/voice"
)

type track struct {
	ch     *Channel
	voice  *voice.Voice
	pcm    []float32
	cursor int
	done   func()
}

func (t *track) remaining() int { return len(t.pcm) - t.cursor }

// Mixer sums the voices playing on its channels.
type Mixer struct {
	rate      int
	log       *zap.Logger
	channels  []*Channel
	tracks    []*track
	prepared  map[*clip.Clip][]float32
	positions map[*voice.Voice]voice.Position
}

type Option func(*Mixer)

func WithLogger(l *zap.Logger) Option {
	return func(m *Mixer) {
		if l != nil {
			m.log = l
		}
	}
}

// New returns a mixer producing rate frames per second.
func New(rate int, opts ...Option) (*Mixer, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRate, rate)
	}

	m := &Mixer{
		rate:      rate,
		log:       zap.NewNop(),
		prepared:  make(map[*clip.Clip][]float32),
		positions: make(map[*voice.Voice]voice.Position),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

func (m *Mixer) SampleRate() int { return m.rate }
func (m *Mixer) Playing() int    { return len(m.tracks) }

// Channel adds a channel at unity gain.
func (m *Mixer) Channel(name string) *Channel {
	c := &Channel{mixer: m, name: name, gain: 1}
	m.channels = append(m.channels, c)
	return c
}

// Channels returns the channels in creation order.
func (m *Mixer) Channels() []*Channel {
	return slices.Clone(m.channels)
}

// IsPlaying reports whether v has a running track.
func (m *Mixer) IsPlaying(v *voice.Voice) bool {
	return m.find(v) >= 0
}

// PositionOf returns the last position set for v.
func (m *Mixer) PositionOf(v *voice.Voice) (voice.Position, bool) {
	p, ok := m.positions[v]
	return p, ok
}

// Advance moves every track forward by frames. Tracks that reach the end of
// their clip are removed first, then their callbacks run in start order.
func (m *Mixer) Advance(frames int) {
	if frames <= 0 || len(m.tracks) == 0 {
		return
	}

	var finished []*track
	kept := m.tracks[:0]
	for _, t := range m.tracks {
		t.cursor += frames
		if t.cursor >= len(t.pcm) {
			finished = append(finished, t)
			continue
		}
		kept = append(kept, t)
	}
	clear(m.tracks[len(kept):])
	m.tracks = kept

	for _, t := range finished {
		m.log.Debug("track finished", zap.Stringer("voice", t.voice), zap.String("channel", t.ch.name))
		t.done()
	}
}

// Render writes the next len(dst) frames of the mix into dst and advances.
func (m *Mixer) Render(dst []float32) {
	clear(dst)

	for _, t := range m.tracks {
		n := min(len(dst), t.remaining())
		src := t.pcm[t.cursor : t.cursor+n]
		g := t.ch.gain
		for i, s := range src {
			dst[i] += s * g
		}
	}

	m.Advance(len(dst))
}

func (m *Mixer) start(c *Channel, v *voice.Voice, done func()) error {
	if v.Clip() == nil {
		return fmt.Errorf("channel %q play %s: %w", c.name, v, voice.ErrNoClip)
	}
	if m.find(v) >= 0 {
		return fmt.Errorf("channel %q play %s: %w", c.name, v, ErrAlreadyPlaying)
	}

	pcm, err := m.prepare(v.Clip())
	if err != nil {
		return fmt.Errorf("channel %q play %s: %w", c.name, v, err)
	}

	m.tracks = append(m.tracks, &track{ch: c, voice: v, pcm: pcm, done: done})
	m.log.Debug("track started",
		zap.Stringer("voice", v),
		zap.String("channel", c.name),
		zap.Int("frames", len(pcm)))

	return nil
}

func (m *Mixer) stop(v *voice.Voice) {
	i := m.find(v)
	if i < 0 {
		return
	}
	m.tracks = slices.Delete(m.tracks, i, i+1)
}

func (m *Mixer) find(v *voice.Voice) int {
	return slices.IndexFunc(m.tracks, func(t *track) bool { return t.voice == v })
}

func (m *Mixer) prepare(c *clip.Clip) ([]float32, error) {
	if pcm, ok := m.prepared[c]; ok {
		return pcm, nil
	}

	mono, err := clip.Convert(c, m.rate)
	if err != nil {
		return nil, err
	}
	if len(mono.Samples) == 0 {
		return nil, fmt.Errorf("clip %q: %w", c.Name, clip.ErrEmptyClip)
	}

	m.prepared[c] = mono.Samples
	return mono.Samples, nil
}
