// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"
)

// VorbisDecoder decodes Ogg Vorbis streams.
type VorbisDecoder struct{}

// floatStream yields interleaved float samples; Read counts values, not frames.
type floatStream interface {
	Read(p []float32) (int, error)
	SampleRate() int
	Channels() int
}

func (VorbisDecoder) Decode(r io.Reader) (*Clip, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return readFloatStream(dec)
}

func readFloatStream(s floatStream) (*Clip, error) {
	channels := s.Channels()
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}

	var samples []float32
	buf := make([]float32, 4096*channels)
	for {
		n, err := s.Read(buf)
		samples = append(samples, buf[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading vorbis pcm: %w", err)
		}
		if n == 0 {
			break
		}
	}

	c := &Clip{
		SampleRate: s.SampleRate(),
		Channels:   channels,
		Samples:    samples,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}
