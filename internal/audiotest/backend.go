// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"github.com/ik5/audvox/voice"
)

type Op string

const (
	OpPlay        Op = "play"
	OpStop        Op = "stop"
	OpSetPosition Op = "set_position"
)

// Call is one recorded backend request.
type Call struct {
	Op       Op
	Voice    *voice.Voice
	Position voice.Position
}

// Backend records every request and lets tests end voices on demand.
// It is not safe for concurrent use.
type Backend struct {
	Calls []Call

	// PlayErr, StopErr and PositionErr are returned by the matching call when set.
	PlayErr     error
	StopErr     error
	PositionErr error

	done map[*voice.Voice]func()
}

func NewBackend() *Backend {
	return &Backend{done: make(map[*voice.Voice]func())}
}

func (b *Backend) Play(v *voice.Voice, done func()) error {
	b.Calls = append(b.Calls, Call{Op: OpPlay, Voice: v})
	if b.PlayErr != nil {
		return b.PlayErr
	}
	b.done[v] = done
	return nil
}

func (b *Backend) Stop(v *voice.Voice) error {
	b.Calls = append(b.Calls, Call{Op: OpStop, Voice: v})
	delete(b.done, v)
	return b.StopErr
}

func (b *Backend) SetPosition(v *voice.Voice, p voice.Position) error {
	b.Calls = append(b.Calls, Call{Op: OpSetPosition, Voice: v, Position: p})
	return b.PositionErr
}

// Finish simulates the natural end of v's clip. It returns false when v is not
// playing on this backend.
func (b *Backend) Finish(v *voice.Voice) bool {
	done, ok := b.done[v]
	if !ok {
		return false
	}
	delete(b.done, v)
	done()
	return true
}

// Done returns the callback handed to the latest Play of v, if still pending.
func (b *Backend) Done(v *voice.Voice) (func(), bool) {
	done, ok := b.done[v]
	return done, ok
}

// Playing reports whether v was started and has neither finished nor been stopped.
func (b *Backend) Playing(v *voice.Voice) bool {
	_, ok := b.done[v]
	return ok
}

// Ops returns the recorded operations in order.
func (b *Backend) Ops() []Op {
	out := make([]Op, len(b.Calls))
	for i, c := range b.Calls {
		out[i] = c.Op
	}
	return out
}

// Count returns how many calls of op were recorded.
func (b *Backend) Count(op Op) int {
	n := 0
	for _, c := range b.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}
