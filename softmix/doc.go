// SPDX-License-Identifier: EPL-2.0

// Package softmix is an in-memory mono mixer that voices can play on.
//
// A Mixer runs at a fixed sample rate and owns one Channel per bus. Channels
// implement voice.Backend, so sound groups start and stop voices on them, and
// bus.Mixer, so bus volume changes land on the channel gain. Time only moves
// when the caller advances the mixer, either by Advance or by Render, which
// makes the mixer usable both offline and behind a real audio callback.
//
// Clips are converted to mono at the mixer rate on first play and cached.
//
// A Mixer is not safe for concurrent use.
package softmix
