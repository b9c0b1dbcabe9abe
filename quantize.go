// SPDX-License-Identifier: EPL-2.0

package pcmtab

import (
	"fmt"

	"github.com/ik5/pcmtab/utils"
)

// Quantize converts normalized samples to signed integers of bitDepth.
// Samples are scaled by the positive full-scale value and truncated
// toward zero, without dithering. Values outside [-1, 1] saturate.
func Quantize(samples []float32, bitDepth int) ([]int32, error) {
	out := make([]int32, len(samples))

	switch bitDepth {
	case 16:
		for i, x := range samples {
			out[i] = int32(utils.Float32ToInt16(x))
		}
	case 32:
		for i, x := range samples {
			out[i] = utils.Float32ToInt32(x)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	return out, nil
}

// ReconcileChannels converts interleaved quantized samples from have to
// want channels. Mono is duplicated into both stereo channels; stereo is
// folded to mono by averaging each pair, truncated toward zero. Equal
// counts return samples unchanged.
func ReconcileChannels(samples []int32, have, want int) ([]int32, error) {
	for _, c := range []int{have, want} {
		if c != 1 && c != 2 {
			return nil, fmt.Errorf("%w: %d", ErrUnsupportedChannels, c)
		}
	}

	switch {
	case have == want:
		return samples, nil

	case have == 1:
		out := make([]int32, 2*len(samples))
		for i, s := range samples {
			out[2*i] = s
			out[2*i+1] = s
		}
		return out, nil

	default:
		if len(samples)%2 != 0 {
			return nil, fmt.Errorf("%w: %d stereo samples", ErrPartialFrame, len(samples))
		}

		out := make([]int32, len(samples)/2)
		for i := range out {
			// int64 so the sum of two full-scale int32 values cannot overflow
			out[i] = int32((int64(samples[2*i]) + int64(samples[2*i+1])) / 2)
		}
		return out, nil
	}
}
