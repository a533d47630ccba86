// SPDX-License-Identifier: EPL-2.0

package group

import "errors"

var (
	ErrUnknownGroup = errors.New("unknown sound group")
	ErrForeignVoice = errors.New("voice does not belong to this group")
	ErrVoiceOwned   = errors.New("voice already belongs to a group")
	ErrVoiceBusy    = errors.New("voice is already playing")
)
