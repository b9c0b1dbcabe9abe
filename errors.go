// SPDX-License-Identifier: EPL-2.0

package pcmtab

import "errors"

var (
	ErrInvalidSampleRate   = errors.New("sample rate must be positive")
	ErrUnsupportedChannels = errors.New("channel count must be 1 or 2")
	ErrUnsupportedBitDepth = errors.New("bit depth must be 16 or 32")
	ErrPartialFrame        = errors.New("sample count is not a multiple of the channel count")
	ErrInvalidSource       = errors.New("source reports no channels or sample rate")
	ErrNoSamples           = errors.New("decoded audio contains no samples")
)
