// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
)

// AIFFDecoder decodes uncompressed AIFF files.
type AIFFDecoder struct{}

func (AIFFDecoder) Decode(r io.Reader) (*Clip, error) {
	rs, err := asReadSeeker(r)
	if err != nil {
		return nil, err
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	format := dec.Format()
	if format == nil {
		return nil, ErrNotAiffFile
	}

	out := &goaudio.IntBuffer{Format: format, SourceBitDepth: int(dec.BitDepth)}
	chunk := &goaudio.IntBuffer{Format: format, Data: make([]int, 4096)}
	for {
		n, err := dec.PCMBuffer(chunk)
		if n > 0 {
			out.Data = append(out.Data, chunk.Data[:n]...)
		}
		if n == 0 || err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading aiff pcm: %w", err)
		}
	}

	return fromIntBuffer(out, int(dec.BitDepth), true)
}
