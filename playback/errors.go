// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"errors"

	"github.com/ik5/audvox/group"
)

var (
	ErrNoVoiceAvailable = errors.New("no idle voice available")
	ErrLoopClosed       = errors.New("playback loop is not running")
	ErrLoopStarted      = errors.New("playback loop already started")
)

// IsDropped reports whether err means a play request was skipped rather than
// failed: the group is unknown or all of its voices are busy.
func IsDropped(err error) bool {
	return errors.Is(err, group.ErrUnknownGroup) || errors.Is(err, ErrNoVoiceAvailable)
}
