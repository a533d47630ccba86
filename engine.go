// SPDX-License-Identifier: EPL-2.0

package audvox

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ik5/audvox/bus"
	"github.com/ik5/audvox/clip"
	"github.com/ik5/audvox/config"
	"github.com/ik5/audvox/group"
	"github.com/ik5/audvox/playback"
	"github.com/ik5/audvox/softmix"
	"github.com/ik5/audvox/voice"
)

// Engine is a fully wired set of buses, sound groups and a mixer.
type Engine struct {
	cfg      *config.Config
	log      *zap.Logger
	mixer    *softmix.Mixer
	channels map[bus.ID]*softmix.Channel
	buses    *bus.Registry
	groups   *group.Registry
	coord    *playback.Coordinator
}

// New builds an engine from cfg. Clips are loaded and converted to the mixer
// rate up front, so a missing or broken file fails here rather than on play.
func New(cfg *config.Config, opts ...Option) (*Engine, error) {
	o := options{log: zap.NewNop(), loader: clip.NewDefaultRegistry()}
	for _, opt := range opts {
		opt(&o)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	mixer, err := softmix.New(cfg.SampleRate, softmix.WithLogger(o.log.Named("mixer")))
	if err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:      cfg,
		log:      o.log,
		mixer:    mixer,
		channels: make(map[bus.ID]*softmix.Channel, len(cfg.Buses)),
	}

	busCfgs, err := cfg.BusConfigs()
	if err != nil {
		return nil, err
	}
	for i := range busCfgs {
		ch := mixer.Channel(busCfgs[i].ID.String())
		busCfgs[i].Mixer = ch
		e.channels[busCfgs[i].ID] = ch
	}
	if e.buses, err = bus.NewRegistry(busCfgs...); err != nil {
		return nil, err
	}

	clips := make(map[string]*clip.Clip)
	e.groups = group.NewRegistry()
	for _, gc := range cfg.Groups {
		g, err := e.buildGroup(gc, o.loader, clips)
		if err != nil {
			return nil, err
		}
		if e.groups.Register(g) {
			e.log.Warn("sound group defined twice, last definition wins", zap.String("group", g.Name()))
		}
	}

	e.coord, err = playback.New(e.buses, e.groups,
		playback.WithLogger(o.log),
		playback.WithRegisterer(o.registerer))
	if err != nil {
		return nil, err
	}

	e.log.Info("engine ready",
		zap.Int("sample_rate", cfg.SampleRate),
		zap.Int("buses", e.buses.Len()),
		zap.Int("groups", e.groups.Len()),
		zap.Int("clips", len(clips)))

	return e, nil
}

// buildGroup gives the group one voice per clip path. Paths shared between
// voices are decoded once.
func (e *Engine) buildGroup(gc config.Group, loader Loader, clips map[string]*clip.Clip) (*group.Group, error) {
	id, err := bus.ParseID(gc.Bus)
	if err != nil {
		return nil, fmt.Errorf("group %q: %w", gc.Name, err)
	}

	voices := make([]*voice.Voice, 0, len(gc.Voices))
	for i, path := range gc.Voices {
		c, ok := clips[path]
		if !ok {
			raw, err := loader.Load(path)
			if err != nil {
				return nil, fmt.Errorf("group %q voice %d: %w", gc.Name, i+1, err)
			}
			if c, err = clip.Convert(raw, e.cfg.SampleRate); err != nil {
				return nil, fmt.Errorf("group %q voice %d: %w", gc.Name, i+1, err)
			}
			clips[path] = c
		}
		voices = append(voices, voice.NewNamed(fmt.Sprintf("%s_%02d", gc.Name, i+1), c))
	}

	return group.New(gc.Name, id, e.channels[id], voices...)
}

func (e *Engine) Config() *config.Config             { return e.cfg }
func (e *Engine) Mixer() *softmix.Mixer              { return e.mixer }
func (e *Engine) Coordinator() *playback.Coordinator { return e.coord }
func (e *Engine) SampleRate() int                    { return e.cfg.SampleRate }

// Play starts a voice of the named group. See playback.Coordinator.Play.
func (e *Engine) Play(name string, loc *voice.Position) (*voice.Voice, error) {
	return e.coord.Play(name, loc)
}

func (e *Engine) SetBusVolume(id bus.ID, volume float64) error {
	return e.coord.SetBusVolume(id, volume)
}

// Active lists the voices playing on a bus, oldest first.
func (e *Engine) Active(id bus.ID) ([]*voice.Voice, error) {
	entries, err := e.coord.Active(id)
	if err != nil {
		return nil, err
	}
	out := make([]*voice.Voice, len(entries))
	for i, en := range entries {
		out[i] = en.Voice
	}
	return out, nil
}

// Advance moves time forward without producing audio.
func (e *Engine) Advance(frames int) { e.mixer.Advance(frames) }

// Render mixes the next len(dst) mono frames into dst.
func (e *Engine) Render(dst []float32) { e.mixer.Render(dst) }

// NewLoop returns a loop that owns the engine's coordinator and advances the
// mixer every configured tick. Once the loop runs, use it instead of the
// engine methods.
func (e *Engine) NewLoop(opts ...playback.LoopOption) *playback.Loop {
	base := []playback.LoopOption{
		playback.WithTicker(e.mixer, e.cfg.Tick, e.cfg.FramesPerTick()),
		playback.WithLoopLogger(e.log),
	}
	return playback.NewLoop(e.coord, append(base, opts...)...)
}
