// SPDX-License-Identifier: EPL-2.0

package bus

import (
	"math"

	"github.com/ik5/audvox/voice"
)

// VolumeParam is the mixer parameter that receives the bus gain in dB.
const VolumeParam = "Volume"

// Mixer is the output a bus drives, e.g. a channel of a software mixer.
type Mixer interface {
	SetFloat(param string, value float64) error
}

// Owner is the sound group that owns an admitted voice.
type Owner interface {
	Stop(v *voice.Voice) error
}

// Entry is one admitted voice.
type Entry struct {
	Voice *voice.Voice
	Owner Owner
}

// Config describes a bus at startup.
type Config struct {
	ID         ID
	VoiceLimit int
	Volume     float64
	// Mixer is optional.
	Mixer Mixer
}

// Info is the runtime state of a bus.
type Info struct {
	id         ID
	voiceLimit int
	volume     float64
	gainDB     float64
	mixer      Mixer
	active     []Entry
}

func (i *Info) ID() ID           { return i.id }
func (i *Info) VoiceLimit() int  { return i.voiceLimit }
func (i *Info) Volume() float64  { return i.volume }
func (i *Info) GainDB() float64  { return i.gainDB }
func (i *Info) ActiveCount() int { return len(i.active) }
func (i *Info) Mixer() Mixer     { return i.mixer }

// Active returns a copy of the active list, oldest first.
func (i *Info) Active() []Entry {
	out := make([]Entry, len(i.active))
	copy(out, i.active)
	return out
}

// AtLimit reports whether admitting another voice requires an eviction.
// A bus with nothing active never evicts, including one with a zero limit.
func (i *Info) AtLimit() bool {
	n := len(i.active)
	return n >= i.voiceLimit && n > 0
}

// Oldest returns the entry that would be evicted next.
func (i *Info) Oldest() (Entry, bool) {
	if len(i.active) == 0 {
		return Entry{}, false
	}
	return i.active[0], true
}

// Admit appends e as the newest entry.
func (i *Info) Admit(e Entry) {
	i.active = append(i.active, e)
}

// Contains reports whether v owned by o is active on the bus.
func (i *Info) Contains(v *voice.Voice, o Owner) bool {
	return i.indexOf(v, o) >= 0
}

// Retire removes the entry for v owned by o, keeping the order of the rest.
// It reports whether an entry was removed.
func (i *Info) Retire(v *voice.Voice, o Owner) bool {
	idx := i.indexOf(v, o)
	if idx < 0 {
		return false
	}
	copy(i.active[idx:], i.active[idx+1:])
	i.active[len(i.active)-1] = Entry{}
	i.active = i.active[:len(i.active)-1]
	return true
}

func (i *Info) indexOf(v *voice.Voice, o Owner) int {
	for idx, e := range i.active {
		if e.Voice == v && e.Owner == o {
			return idx
		}
	}
	return -1
}

func (i *Info) setVolume(volume float64) error {
	gain, err := GainDB(volume)
	if err != nil {
		return err
	}
	if i.mixer != nil {
		if err := i.mixer.SetFloat(VolumeParam, gain); err != nil {
			return err
		}
	}
	i.volume = volume
	i.gainDB = gain
	return nil
}

// GainDB converts a linear volume to decibels.
func GainDB(volume float64) (float64, error) {
	if !(volume > 0) || math.IsInf(volume, 1) {
		return 0, ErrInvalidVolume
	}
	return 20 * math.Log10(volume), nil
}
