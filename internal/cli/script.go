// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/ik5/audvox"
	"github.com/ik5/audvox/bus"
	"github.com/ik5/audvox/playback"
	"github.com/ik5/audvox/voice"
)

var ErrBadScript = errors.New("bad script line")

type opKind uint8

const (
	opPlay opKind = iota
	opVolume
	opAdvance
)

// step is one script line:
//
//	play <group> [x y z]
//	volume <bus> <volume>
//	advance <duration>
type step struct {
	line   int
	op     opKind
	group  string
	pos    *voice.Position
	bus    bus.ID
	volume float64
	dur    time.Duration
}

// parseScript reads every step, reporting all bad lines together. Blank lines
// and lines starting with # are skipped.
func parseScript(r io.Reader) ([]step, error) {
	var (
		steps []step
		errs  error
	)

	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		s, err := parseStep(fields)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("line %d: %w", n, err))
			continue
		}
		s.line = n
		steps = append(steps, s)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}

	return steps, errs
}

func parseStep(fields []string) (step, error) {
	switch cmd, args := fields[0], fields[1:]; cmd {
	case "play":
		switch len(args) {
		case 1:
			return step{op: opPlay, group: args[0]}, nil
		case 4:
			var xyz [3]float64
			for i, a := range args[1:] {
				f, err := strconv.ParseFloat(a, 64)
				if err != nil {
					return step{}, fmt.Errorf("%w: position %q", ErrBadScript, a)
				}
				xyz[i] = f
			}
			return step{op: opPlay, group: args[0], pos: &voice.Position{X: xyz[0], Y: xyz[1], Z: xyz[2]}}, nil
		}
		return step{}, fmt.Errorf("%w: play <group> [x y z]", ErrBadScript)

	case "volume":
		if len(args) != 2 {
			return step{}, fmt.Errorf("%w: volume <bus> <volume>", ErrBadScript)
		}
		id, err := bus.ParseID(args[0])
		if err != nil {
			return step{}, err
		}
		v, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return step{}, fmt.Errorf("%w: volume %q", ErrBadScript, args[1])
		}
		return step{op: opVolume, bus: id, volume: v}, nil

	case "advance":
		if len(args) != 1 {
			return step{}, fmt.Errorf("%w: advance <duration>", ErrBadScript)
		}
		d, err := time.ParseDuration(args[0])
		if err != nil || d < 0 {
			return step{}, fmt.Errorf("%w: duration %q", ErrBadScript, args[0])
		}
		return step{op: opAdvance, dur: d}, nil

	default:
		return step{}, fmt.Errorf("%w: unknown command %q", ErrBadScript, cmd)
	}
}

type report struct {
	plays   int
	dropped int
	samples []float32
}

// runScript plays the steps against eng and records the mix. Time moves in
// tick-sized blocks so natural ends land where the live loop would see them.
// After the last step the mix keeps rendering until every voice has ended or
// tail has passed.
func runScript(eng *audvox.Engine, steps []step, tail time.Duration, log *zap.Logger) (*report, error) {
	rep := &report{}
	block := max(eng.Config().FramesPerTick(), 1)

	render := func(frames int) {
		for frames > 0 {
			n := min(frames, block)
			buf := make([]float32, n)
			eng.Render(buf)
			rep.samples = append(rep.samples, buf...)
			frames -= n
		}
	}

	for _, s := range steps {
		switch s.op {
		case opPlay:
			_, err := eng.Play(s.group, s.pos)
			switch {
			case playback.IsDropped(err):
				rep.dropped++
			case err != nil:
				return nil, fmt.Errorf("line %d: %w", s.line, err)
			default:
				rep.plays++
			}
		case opVolume:
			if err := eng.SetBusVolume(s.bus, s.volume); err != nil {
				return nil, fmt.Errorf("line %d: %w", s.line, err)
			}
		case opAdvance:
			render(framesFor(s.dur, eng.SampleRate()))
		}
	}

	limit := framesFor(tail, eng.SampleRate())
	for drained := 0; eng.Mixer().Playing() > 0 && drained < limit; drained += block {
		render(min(block, limit-drained))
	}
	if left := eng.Mixer().Playing(); left > 0 {
		log.Warn("voices still playing at end of tail", zap.Int("voices", left), zap.Duration("tail", tail))
	}

	return rep, nil
}

// framesFor splits d into whole seconds first so long scripts cannot overflow.
func framesFor(d time.Duration, rate int) int {
	sec, rem := int64(d/time.Second), int64(d%time.Second)
	return int(sec*int64(rate) + rem*int64(rate)/int64(time.Second))
}
