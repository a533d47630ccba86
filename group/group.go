// SPDX-License-Identifier: EPL-2.0

package group

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ik5/audvox/bus"
	"github.com/ik5/audvox/voice"
)

// Listener receives a notification each time a voice of the group goes idle.
type Listener interface {
	OnVoiceStopped(g *Group, v *voice.Voice)
}

// Group is a named pool of voices routed to one bus.
type Group struct {
	name     string
	bus      bus.ID
	voices   []*voice.Voice
	members  map[*voice.Voice]struct{}
	backend  voice.Backend
	listener Listener
	log      *zap.Logger
}

// New builds a group. Voices keep the order given; that order decides which
// idle voice is picked first.
func New(name string, busID bus.ID, backend voice.Backend, voices ...*voice.Voice) (*Group, error) {
	g := &Group{
		name:    name,
		bus:     busID,
		voices:  make([]*voice.Voice, 0, len(voices)),
		members: make(map[*voice.Voice]struct{}, len(voices)),
		backend: backend,
		log:     zap.NewNop(),
	}

	for _, v := range voices {
		if _, dup := g.members[v]; dup {
			continue
		}
		if !v.Claim() {
			g.release()
			return nil, fmt.Errorf("group %q voice %s: %w", name, v, ErrVoiceOwned)
		}
		g.members[v] = struct{}{}
		g.voices = append(g.voices, v)
	}

	return g, nil
}

// release drops ownership claims made during a failed New.
func (g *Group) release() {
	for v := range g.members {
		v.Disown()
	}
}

func (g *Group) Name() string { return g.name }
func (g *Group) Bus() bus.ID  { return g.bus }

// Voices returns the pool in pick order.
func (g *Group) Voices() []*voice.Voice {
	out := make([]*voice.Voice, len(g.voices))
	copy(out, g.voices)
	return out
}

// SetListener registers the receiver of stop notifications.
func (g *Group) SetListener(l Listener) { g.listener = l }

// SetLogger replaces the group's logger.
func (g *Group) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	g.log = l.With(zap.String("group", g.name), zap.Stringer("bus", g.bus))
}

// Owns reports whether v belongs to the group.
func (g *Group) Owns(v *voice.Voice) bool {
	_, ok := g.members[v]
	return ok
}

// IdleCount returns how many voices are free.
func (g *Group) IdleCount() int {
	n := 0
	for _, v := range g.voices {
		if !v.IsPlaying() {
			n++
		}
	}
	return n
}

// Acquire returns the first idle voice in pool order. The voice stays idle
// until Start.
func (g *Group) Acquire() (*voice.Voice, bool) {
	for _, v := range g.voices {
		if !v.IsPlaying() {
			return v, true
		}
	}
	return nil, false
}

// Start positions v when pos is set and begins playback.
func (g *Group) Start(v *voice.Voice, pos *voice.Position) error {
	if !g.Owns(v) {
		return fmt.Errorf("group %q start %s: %w", g.name, v, ErrForeignVoice)
	}
	if v.IsPlaying() {
		return fmt.Errorf("group %q start %s: %w", g.name, v, ErrVoiceBusy)
	}
	if v.Clip() == nil {
		return fmt.Errorf("group %q start %s: %w", g.name, v, voice.ErrNoClip)
	}

	if pos != nil {
		if err := g.backend.SetPosition(v, *pos); err != nil {
			return fmt.Errorf("group %q position %s: %w", g.name, v, err)
		}
		v.SetPosition(*pos)
	}

	v.Begin()
	play := v.Plays()
	if err := g.backend.Play(v, func() { g.finished(v, play) }); err != nil {
		// never started, so no stop notification
		v.Release()
		return fmt.Errorf("group %q play %s: %w", g.name, v, err)
	}

	return nil
}

// Stop halts v at once and notifies the listener. Stopping an idle voice does
// nothing.
func (g *Group) Stop(v *voice.Voice) error {
	if !g.Owns(v) {
		return fmt.Errorf("group %q stop %s: %w", g.name, v, ErrForeignVoice)
	}
	if !v.IsPlaying() {
		return nil
	}

	var err error
	if stopErr := g.backend.Stop(v); stopErr != nil {
		// the voice is treated as stopped regardless
		err = fmt.Errorf("group %q stop %s: %w", g.name, v, stopErr)
		g.log.Warn("backend stop failed", zap.Stringer("voice", v), zap.Error(stopErr))
	}
	g.idle(v)

	return err
}

// finished is the backend callback for a natural end. A callback left over
// from an earlier playback of v is ignored.
func (g *Group) finished(v *voice.Voice, play uint64) {
	if v.Plays() != play {
		g.log.Debug("stale finish ignored", zap.Stringer("voice", v), zap.Uint64("play", play))
		return
	}
	g.log.Debug("voice finished", zap.Stringer("voice", v))
	g.idle(v)
}

func (g *Group) idle(v *voice.Voice) {
	if !v.Release() {
		return
	}
	if g.listener != nil {
		g.listener.OnVoiceStopped(g, v)
	}
}

func (g *Group) String() string {
	return fmt.Sprintf("%s@%s", g.name, g.bus)
}
