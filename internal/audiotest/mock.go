// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic audio sources for tests. The
// sources satisfy audio.Source without importing it.
package audiotest

import (
	"io"
	"math"
)

// Waveform returns the value of channel ch at frame.
type Waveform func(frame, ch int) float32

// MockSource renders a fixed number of frames from a Waveform.
type MockSource struct {
	rate     int
	channels int
	frames   int
	pos      int
	wave     Waveform
	closed   bool
}

func NewMockSource(sampleRate, channels, frames int, wave Waveform) *MockSource {
	return &MockSource{
		rate:     sampleRate,
		channels: channels,
		frames:   frames,
		wave:     wave,
	}
}

func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewConstantSource(sampleRate, channels, frames, 0)
}

// NewSineSource renders a full-scale sine of freq Hz on every channel.
func NewSineSource(sampleRate, channels, frames int, freq float64) *MockSource {
	step := 2 * math.Pi * freq / float64(sampleRate)
	return NewMockSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		return float32(math.Sin(step * float64(frame)))
	})
}

func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 { return value })
}

// NewSliceSource replays interleaved samples. A trailing partial frame is dropped.
func NewSliceSource(sampleRate, channels int, samples []float32) *MockSource {
	return NewMockSource(sampleRate, channels, len(samples)/channels, func(frame, ch int) float32 {
		return samples[frame*channels+ch]
	})
}

func (m *MockSource) SampleRate() int { return m.rate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset rewinds to the first frame.
func (m *MockSource) Reset() { m.pos = 0 }

// ReadSamples fills whole frames of dst and returns io.EOF together with
// the last frames.
func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.pos >= m.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/m.channels, m.frames-m.pos)
	i := 0
	for f := m.pos; f < m.pos+n; f++ {
		for ch := range m.channels {
			dst[i] = m.wave(f, ch)
			i++
		}
	}
	m.pos += n

	if m.pos >= m.frames {
		return i, io.EOF
	}
	return i, nil
}
