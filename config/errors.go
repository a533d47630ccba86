// SPDX-License-Identifier: EPL-2.0

package config

import "errors"

var (
	ErrNoBuses           = errors.New("no buses configured")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrInvalidTick       = errors.New("tick must be positive")
	ErrInvalidLogFormat  = errors.New("log format must be json or console")
	ErrUnnamedGroup      = errors.New("group has no name")
	ErrNoVoices          = errors.New("group has no voices")
	ErrUndeclaredBus     = errors.New("bus is not declared")
)
