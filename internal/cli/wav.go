// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"go.uber.org/multierr"
)

// toPCM16 clamps to [-1, 1] and scales by 32767 so +1 never overflows.
func toPCM16(samples []float32) []int {
	out := make([]int, len(samples))
	for i, x := range samples {
		x = min(max(x, -1), 1)
		out[i] = int(x * 32767.0)
	}
	return out
}

// writeWAV stores mono samples as 16-bit PCM.
func writeWAV(path string, rate int, samples []float32) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	enc := wav.NewEncoder(f, rate, 16, 1, 1)
	if err := enc.Write(&goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: rate},
		Data:           toPCM16(samples),
		SourceBitDepth: 16,
	}); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finishing %s: %w", path, err)
	}

	return nil
}
