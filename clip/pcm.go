// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
)

// go-audio decoders need to seek.
func asReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return bytes.NewReader(data), nil
}

// fromIntBuffer normalises integer PCM to float32 based on the source bit depth.
// signed8 selects two's complement 8-bit samples (AIFF) over unsigned ones (WAV).
func fromIntBuffer(buf *goaudio.IntBuffer, bitDepth int, signed8 bool) (*Clip, error) {
	if buf == nil || buf.Format == nil {
		return nil, ErrEmptyClip
	}

	var (
		scale  float32
		offset int
	)
	switch bitDepth {
	case 8:
		scale = 128.0
		if !signed8 {
			offset = 128
		}
	case 24:
		scale = 8388608.0
	case 32:
		scale = 2147483648.0
	default:
		scale = 32768.0
	}

	samples := make([]float32, len(buf.Data))
	for i, v := range buf.Data {
		if bitDepth == 8 && signed8 {
			// decoders hand back the raw byte
			v = int(int8(uint8(v)))
		}
		samples[i] = float32(v-offset) / scale
	}

	c := &Clip{
		SampleRate: buf.Format.SampleRate,
		Channels:   buf.Format.NumChannels,
		Samples:    samples,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}
