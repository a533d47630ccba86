// SPDX-License-Identifier: EPL-2.0

// Package playback admits play requests onto buses.
//
// A Coordinator resolves a sound group by name, enforces the bus voice limit
// by evicting the oldest active voice, acquires an idle voice, positions and
// starts it, and records it as active. Groups report every stop back through
// OnVoiceStopped, which retires the voice from its bus.
//
//	coord, err := playback.New(buses, groups, playback.WithLogger(log))
//	v, err := coord.Play("sfx_footstep", &voice.Position{X: 2})
//	if playback.IsDropped(err) {
//	    // unknown group or exhausted pool: the sound is skipped
//	}
//
// # Concurrency
//
// A Coordinator is not safe for concurrent use. Drive it from a single
// goroutine, or wrap it in a Loop, which runs every request and every mixer
// tick on one goroutine.
package playback
