// SPDX-License-Identifier: EPL-2.0

// Package config loads the bus and sound group layout from YAML.
//
// A minimal file:
//
//	sample_rate: 48000
//	tick: 20ms
//	buses:
//	  - id: sfx
//	    voice_limit: 8
//	    volume: 1
//	groups:
//	  - name: explosion
//	    bus: sfx
//	    voices: [sounds/boom1.wav, sounds/boom2.wav]
//
// Scalar keys can be overridden from the environment with the AUDVOX_ prefix,
// e.g. AUDVOX_SAMPLE_RATE or AUDVOX_LOG_LEVEL. Relative voice paths are
// resolved against the directory of the config file.
package config
