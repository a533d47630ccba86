// SPDX-License-Identifier: EPL-2.0

package bus

import (
	"fmt"
	"strings"
)

// ID names a mixing bus.
type ID uint8

const (
	SFX ID = iota
	UI
	Voice
)

var names = [...]string{
	SFX:   "sfx",
	UI:    "ui",
	Voice: "voice",
}

// All returns every known bus id.
func All() []ID {
	return []ID{SFX, UI, Voice}
}

func (id ID) String() string {
	if int(id) < len(names) {
		return names[id]
	}
	return fmt.Sprintf("bus(%d)", uint8(id))
}

// ParseID resolves a bus name, ignoring case and surrounding blanks.
func ParseID(s string) (ID, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == want {
			return ID(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownBus)
}

func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *ID) UnmarshalText(b []byte) error {
	parsed, err := ParseID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
