// SPDX-License-Identifier: EPL-2.0

// Package audvox decides which sounds get to play on a voice-limited,
// multi-bus audio engine.
//
// Sounds are organised in named sound groups, each owning a fixed pool of
// voices and routed to one bus (sfx, ui or voice). Every bus caps how many of
// its voices may play at once. When a play request arrives for a bus that is
// already full, the voice that started first on that bus is stopped to make
// room. Requests for unknown groups, or for groups whose voices are all busy,
// are dropped with a warning instead of failing the caller.
//
// # Building an engine
//
// An Engine is assembled once from a config.Config:
//
//	cfg, err := config.Load("audvox.yaml")
//	if err != nil {
//		return err
//	}
//	eng, err := audvox.New(cfg, audvox.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	v, err := eng.Play("explosion", &voice.Position{X: 2})
//	if playback.IsDropped(err) {
//		// nothing to play, not a failure
//	}
//
// The engine drives a softmix.Mixer. Time moves when the caller renders or
// advances it; natural ends free their bus slot from inside that call.
//
// # Concurrency
//
// Engine methods must be called from one goroutine. NewLoop returns a
// playback.Loop that serialises requests from any number of goroutines and
// advances the mixer on a ticker.
//
// # Packages
//
//   - bus: bus ids, limits, volumes and active lists
//   - group: sound groups and their registry
//   - voice: voices and the backend contract
//   - playback: the coordinator, its metrics and the request loop
//   - softmix: the in-memory mixer backend
//   - clip: decoding (WAV, AIFF, MP3, Ogg Vorbis) and conversion
//   - config: YAML configuration
package audvox
