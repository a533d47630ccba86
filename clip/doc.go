// SPDX-License-Identifier: EPL-2.0

// Package clip holds the audio bound to playback voices.
//
// A Clip is a fully decoded, in-memory block of interleaved float32 samples in
// the range [-1.0, 1.0]. Voices reference clips; the software mixer reads them
// and uses their length to detect the natural end of playback.
//
// # Decoding
//
// Decoders wrap existing codec libraries:
//   - WAV via github.com/go-audio/wav
//   - AIFF via github.com/go-audio/aiff
//   - MP3 via github.com/hajimehoshi/go-mp3
//   - Ogg Vorbis via github.com/jfreymuth/oggvorbis
//
// The registry selects a decoder by file extension:
//
//	reg := clip.NewDefaultRegistry()
//	c, err := reg.Load("assets/sfx/footstep_01.wav")
//
// The clip name is the file name without its extension.
//
// # Conversion
//
// Before mixing, clips are brought to the mixer's sample rate and to a single
// channel:
//
//	mono, err := clip.Convert(c, 48000)
//
// ToMono averages channels. Resample uses Catmull-Rom cubic interpolation and
// works for both upsampling and downsampling.
package clip
