// SPDX-License-Identifier: EPL-2.0

// Package bus tracks mixing buses: their voice ceilings, volumes and the
// ordered list of voices currently admitted on each.
//
// The active list is first-in first-out. The entry at index 0 is the oldest
// admission and is the one evicted when a bus reaches its voice limit.
//
// Volumes are linear amplitudes in (0, +Inf). Mixer bindings receive them in
// decibels:
//
//	gainDB = 20 * log10(volume)
//
// so 1.0 is 0 dB and 0.1 is -20 dB. Zero, negative, NaN and infinite volumes
// are rejected with ErrInvalidVolume.
package bus
