// SPDX-License-Identifier: EPL-2.0

package bus

import "errors"

var (
	ErrUnknownBus        = errors.New("unknown bus")
	ErrInvalidVolume     = errors.New("volume must be a finite value greater than zero")
	ErrInvalidVoiceLimit = errors.New("voice limit must not be negative")
	ErrDuplicateBus      = errors.New("bus registered more than once")
)
