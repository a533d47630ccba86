// SPDX-License-Identifier: EPL-2.0

package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want ID
	}{
		{"sfx", SFX},
		{"SFX", SFX},
		{" ui ", UI},
		{"Voice", Voice},
	}

	for _, tt := range tests {
		got, err := ParseID(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseID("music")
	assert.ErrorIs(t, err, ErrUnknownBus)
}

func TestID_String(t *testing.T) {
	t.Parallel()

	for _, id := range All() {
		parsed, err := ParseID(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
	}
	assert.Equal(t, "bus(9)", ID(9).String())
}

func TestID_Text(t *testing.T) {
	t.Parallel()

	var id ID
	require.NoError(t, id.UnmarshalText([]byte("ui")))
	assert.Equal(t, UI, id)

	b, err := Voice.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "voice", string(b))

	assert.ErrorIs(t, id.UnmarshalText([]byte("nope")), ErrUnknownBus)
}
