// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
)

// MP3Decoder decodes MPEG-1/2 layer III audio.
type MP3Decoder struct{}

// pcm16Stream yields 16-bit little-endian stereo, as go-mp3 always does.
type pcm16Stream interface {
	io.Reader
	SampleRate() int
}

func (MP3Decoder) Decode(r io.Reader) (*Clip, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return readPCM16Stereo(dec)
}

func readPCM16Stereo(s pcm16Stream) (*Clip, error) {
	raw, err := io.ReadAll(s)
	if err != nil {
		return nil, fmt.Errorf("reading mp3 pcm: %w", err)
	}

	samples := make([]float32, len(raw)/2)
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(raw[2*i : 2*i+2]))
		samples[i] = float32(v) / 32768.0
	}

	c := &Clip{
		SampleRate: s.SampleRate(),
		Channels:   2,
		Samples:    samples,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}
