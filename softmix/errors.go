// SPDX-License-Identifier: EPL-2.0

package softmix

import "errors"

var (
	ErrUnknownParam   = errors.New("unknown mixer parameter")
	ErrInvalidValue   = errors.New("invalid parameter value")
	ErrAlreadyPlaying = errors.New("voice is already playing")
	ErrInvalidRate    = errors.New("mixer sample rate must be positive")
)
