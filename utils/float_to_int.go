// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Full-scale multipliers used when quantizing normalized samples.
const (
	FullScale16 = math.MaxInt16
	FullScale32 = math.MaxInt32
)

func clampUnit(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return 0
	case x > 1:
		return 1
	case x < -1:
		return -1
	}
	return x
}

// Float32ToInt16 scales x by 32767 and truncates toward zero.
// Values outside [-1, 1] saturate; NaN maps to 0.
func Float32ToInt16(x float32) int16 {
	return int16(float32(clampUnit(float64(x))) * FullScale16)
}

// Float32ToInt32 scales x by 2^31-1 and truncates toward zero.
// The product is computed in float64 so full scale stays exact.
func Float32ToInt32(x float32) int32 {
	return int32(clampUnit(float64(x)) * FullScale32)
}

// IntToFloat32 normalizes a signed PCM sample of the given bit depth to
// [-1, 1). Bit depths outside 1..32 are treated as 16-bit.
func IntToFloat32(v int, bitDepth int) float32 {
	if bitDepth < 1 || bitDepth > 32 {
		bitDepth = 16
	}
	maxVal := float64(int64(1) << (bitDepth - 1))

	return float32(float64(v) / maxVal)
}
