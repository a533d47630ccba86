// SPDX-License-Identifier: EPL-2.0

package voice

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ik5/audvox/clip"
)

type State uint8

const (
	Idle State = iota
	Playing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Position is a point in world space.
type Position struct {
	X, Y, Z float64
}

// Backend is the playback engine that voices run on.
type Backend interface {
	// Play starts v from the beginning of its clip. done fires once on natural end.
	Play(v *Voice, done func()) error
	// Stop halts v immediately. done is not called.
	Stop(v *Voice) error
	SetPosition(v *Voice, p Position) error
}

// Voice is a playback slot holding one clip at a time.
type Voice struct {
	id       uuid.UUID
	name     string
	clip     *clip.Clip
	position Position
	state    State
	claimed  bool
	plays    uint64
}

// New returns an idle voice bound to c. The name defaults to the clip name.
func New(c *clip.Clip) *Voice {
	v := &Voice{id: uuid.New(), clip: c}
	if c != nil {
		v.name = c.Name
	}
	return v
}

// NewNamed returns an idle voice with an explicit name.
func NewNamed(name string, c *clip.Clip) *Voice {
	v := New(c)
	v.name = name
	return v
}

func (v *Voice) ID() uuid.UUID      { return v.id }
func (v *Voice) Name() string       { return v.name }
func (v *Voice) Clip() *clip.Clip   { return v.clip }
func (v *Voice) State() State       { return v.state }
func (v *Voice) Position() Position { return v.position }
func (v *Voice) IsPlaying() bool    { return v.state == Playing }

// Plays counts successful Begin calls. It tells one playback of v from the next.
func (v *Voice) Plays() uint64 { return v.plays }

func (v *Voice) SetPosition(p Position) { v.position = p }

// Bind replaces the clip. Only idle voices can be rebound.
func (v *Voice) Bind(c *clip.Clip) error {
	if v.state == Playing {
		return fmt.Errorf("binding %s: %w", v, ErrBusy)
	}
	v.clip = c
	return nil
}

// Begin moves an idle voice to Playing. It returns false if already playing.
func (v *Voice) Begin() bool {
	if v.state == Playing {
		return false
	}
	v.state = Playing
	v.plays++
	return true
}

// Release moves a playing voice to Idle. It returns false if already idle.
func (v *Voice) Release() bool {
	if v.state == Idle {
		return false
	}
	v.state = Idle
	return true
}

// Claim marks the voice as owned. It returns false if it already was.
func (v *Voice) Claim() bool {
	if v.claimed {
		return false
	}
	v.claimed = true
	return true
}

// Disown undoes Claim.
func (v *Voice) Disown() { v.claimed = false }

func (v *Voice) String() string {
	return fmt.Sprintf("%s[%s]", v.name, v.id.String()[:8])
}
