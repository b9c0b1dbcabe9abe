// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// WritePCM writes interleaved integer samples as a PCM WAV file.
// bitDepth is 8, 16, 24 or 32; samples must already fit that range.
func WritePCM(w io.WriteSeeker, sampleRate, channels, bitDepth int, samples []int32) error {
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
	if channels < 1 || sampleRate < 1 {
		return ErrUnsupportedWavLayout
	}

	enc := gowav.NewEncoder(w, sampleRate, bitDepth, channels, formatPCM)

	// 8-bit WAV samples are stored unsigned
	bias := 0
	if bitDepth == 8 {
		bias = 128
	}

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s) + bias
	}

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing wav samples: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing wav encoder: %w", err)
	}

	return nil
}
