// SPDX-License-Identifier: EPL-2.0

package bus

import (
	"fmt"

	"go.uber.org/multierr"
)

// Registry holds every bus, built once at startup.
type Registry struct {
	infos []*Info
	index map[ID]int
}

// NewRegistry validates cfgs and builds the registry. Every problem found is
// reported, not just the first.
func NewRegistry(cfgs ...Config) (*Registry, error) {
	r := &Registry{
		infos: make([]*Info, 0, len(cfgs)),
		index: make(map[ID]int, len(cfgs)),
	}

	var errs error
	for _, cfg := range cfgs {
		if _, ok := r.index[cfg.ID]; ok {
			errs = multierr.Append(errs, fmt.Errorf("bus %s: %w", cfg.ID, ErrDuplicateBus))
			continue
		}
		if cfg.VoiceLimit < 0 {
			errs = multierr.Append(errs, fmt.Errorf("bus %s: %w", cfg.ID, ErrInvalidVoiceLimit))
			continue
		}

		info := &Info{id: cfg.ID, voiceLimit: cfg.VoiceLimit, mixer: cfg.Mixer}
		if err := info.setVolume(cfg.Volume); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("bus %s: %w", cfg.ID, err))
			continue
		}

		r.index[cfg.ID] = len(r.infos)
		r.infos = append(r.infos, info)
	}
	if errs != nil {
		return nil, errs
	}

	return r, nil
}

// Lookup returns the bus registered under id. A miss is a setup defect.
func (r *Registry) Lookup(id ID) (*Info, error) {
	idx, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("bus %s: %w", id, ErrUnknownBus)
	}
	return r.infos[idx], nil
}

// SetVolume stores volume on the bus and pushes its dB gain to the mixer.
// Invalid volumes leave the bus untouched.
func (r *Registry) SetVolume(id ID, volume float64) error {
	info, err := r.Lookup(id)
	if err != nil {
		return err
	}
	if err := info.setVolume(volume); err != nil {
		return fmt.Errorf("bus %s volume %v: %w", id, volume, err)
	}
	return nil
}

// IDs returns the registered ids in registration order.
func (r *Registry) IDs() []ID {
	out := make([]ID, len(r.infos))
	for i, info := range r.infos {
		out[i] = info.id
	}
	return out
}

func (r *Registry) Len() int { return len(r.infos) }
