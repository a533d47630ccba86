// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"
)

// WAVDecoder decodes PCM WAV files of 8, 16, 24 or 32 bits.
type WAVDecoder struct{}

func (WAVDecoder) Decode(r io.Reader) (*Clip, error) {
	rs, err := asReadSeeker(r)
	if err != nil {
		return nil, err
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading wav pcm: %w", err)
	}

	return fromIntBuffer(buf, int(dec.BitDepth), false)
}
