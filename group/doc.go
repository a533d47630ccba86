// SPDX-License-Identifier: EPL-2.0

// Package group pools the voices that play variations of one logical sound.
//
// A Group hands out the first idle voice in pool order. Selection is
// deterministic: no shuffling and no round robin. Every return of a voice to
// Idle, whether forced through Stop or caused by the clip ending, is reported
// once to the group's Listener.
//
// A Registry maps group names to groups. Names are unique; registering a
// name twice keeps the last group.
package group
