// SPDX-License-Identifier: EPL-2.0

// Package voice defines a single controllable playback unit and the contract
// a playback backend must honour.
//
// A Voice is either Idle or Playing:
//
//	Idle --Begin--> Playing --Release--> Idle
//
// Begin and Release report whether the transition happened, which lets the
// owner route every return to Idle through exactly one stop notification.
//
// # Backend Contract
//
// A Backend plays, stops and positions voices. It must invoke the done
// callback given to Play exactly once when the clip ends naturally, never
// after Stop and never from inside Play itself.
package voice
