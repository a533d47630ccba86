// SPDX-License-Identifier: EPL-2.0

package clip

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported clip format")
	ErrEmptyClip         = errors.New("clip has no samples")
	ErrInvalidRate       = errors.New("sample rate must be positive")
	ErrInvalidChannels   = errors.New("channel count must be positive")
	ErrNotWavFile        = errors.New("not a WAV file")
	ErrNotAiffFile       = errors.New("not an AIFF file")
)
