// SPDX-License-Identifier: EPL-2.0

package pcmtab

import "fmt"

// Format is the fixed PCM layout every table in one run is converted to.
type Format struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

// DefaultFormat is 44.1kHz mono 16-bit.
var DefaultFormat = Format{SampleRate: 44100, Channels: 1, BitDepth: 16}

func (f Format) Validate() error {
	if f.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, f.SampleRate)
	}
	if f.Channels != 1 && f.Channels != 2 {
		return fmt.Errorf("%w: %d", ErrUnsupportedChannels, f.Channels)
	}
	if f.BitDepth != 16 && f.BitDepth != 32 {
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, f.BitDepth)
	}
	return nil
}

func (f Format) BytesPerSample() int { return f.BitDepth / 8 }

// CType is the C++ element type of the sample array.
func (f Format) CType() string {
	if f.BitDepth == 32 {
		return "int32_t"
	}
	return "int16_t"
}

func (f Format) String() string {
	return fmt.Sprintf("%dHz, %d channel(s), %d-bit PCM", f.SampleRate, f.Channels, f.BitDepth)
}
