// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/ik5/audvox/bus"
	"github.com/ik5/audvox/voice"
)

// Advancer moves playback forward; natural ends are reported from inside Advance.
type Advancer interface {
	Advance(frames int)
}

// Loop owns a Coordinator and serialises all access to it on the goroutine
// running Run. Mixer ticks run on the same goroutine, so stop notifications
// never interleave with play requests.
type Loop struct {
	coord *Coordinator
	log   *zap.Logger

	clock  clock.Clock
	target Advancer
	period time.Duration
	frames int

	cmds    chan func()
	done    chan struct{}
	started atomic.Bool
}

type LoopOption func(*Loop)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c clock.Clock) LoopOption {
	return func(l *Loop) { l.clock = c }
}

// WithTicker advances a by frames every period.
func WithTicker(a Advancer, period time.Duration, frames int) LoopOption {
	return func(l *Loop) {
		l.target = a
		l.period = period
		l.frames = frames
	}
}

func WithLoopLogger(log *zap.Logger) LoopOption {
	return func(l *Loop) {
		if log != nil {
			l.log = log
		}
	}
}

func NewLoop(c *Coordinator, opts ...LoopOption) *Loop {
	l := &Loop{
		coord: c,
		log:   zap.NewNop(),
		clock: clock.New(),
		cmds:  make(chan func()),
		done:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run processes requests and ticks until ctx is done. It can be called once.
func (l *Loop) Run(ctx context.Context) error {
	if !l.started.CompareAndSwap(false, true) {
		return ErrLoopStarted
	}
	defer close(l.done)

	var tick <-chan time.Time
	if l.target != nil && l.period > 0 {
		t := l.clock.Ticker(l.period)
		defer t.Stop()
		tick = t.C
	}

	l.log.Info("playback loop started", zap.Duration("tick", l.period), zap.Int("frames", l.frames))
	defer l.log.Info("playback loop stopped")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.cmds:
			fn()
		case <-tick:
			l.target.Advance(l.frames)
		}
	}
}

// Do runs fn on the loop goroutine and waits for it. If ctx ends after fn was
// accepted, fn still runs but Do returns ctx.Err().
func (l *Loop) Do(ctx context.Context, fn func(c *Coordinator)) error {
	finished := make(chan struct{})
	cmd := func() {
		defer close(finished)
		fn(l.coord)
	}

	select {
	case l.cmds <- cmd:
	case <-l.done:
		return ErrLoopClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Play calls Coordinator.Play on the loop goroutine.
func (l *Loop) Play(ctx context.Context, name string, loc *voice.Position) (*voice.Voice, error) {
	var (
		v   *voice.Voice
		err error
	)
	if doErr := l.Do(ctx, func(c *Coordinator) { v, err = c.Play(name, loc) }); doErr != nil {
		return nil, doErr
	}
	return v, err
}

// SetBusVolume calls Coordinator.SetBusVolume on the loop goroutine.
func (l *Loop) SetBusVolume(ctx context.Context, id bus.ID, volume float64) error {
	var err error
	if doErr := l.Do(ctx, func(c *Coordinator) { err = c.SetBusVolume(id, volume) }); doErr != nil {
		return doErr
	}
	return err
}
