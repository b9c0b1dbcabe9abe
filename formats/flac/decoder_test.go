// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/mewkiz/flac/frame"

	"github.com/ik5/pcmtab/audio"
)

// mockStream hands out prepared frames then io.EOF
type mockStream struct {
	frames []*frame.Frame
	next   int
	err    error
	closed bool
}

func (m *mockStream) ParseNext() (*frame.Frame, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.next >= len(m.frames) {
		return nil, io.EOF
	}
	f := m.frames[m.next]
	m.next++
	return f, nil
}

func (m *mockStream) Close() error {
	m.closed = true
	return nil
}

// makeFrame builds a frame from per-channel samples
func makeFrame(channels ...[]int32) *frame.Frame {
	f := &frame.Frame{Header: frame.Header{BlockSize: uint16(len(channels[0]))}}
	for _, samples := range channels {
		f.Subframes = append(f.Subframes, &frame.Subframe{Samples: samples})
	}
	return f
}

func readAll(t *testing.T, src *source, bufSize int) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, bufSize)
	for range 1000 {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
	t.Fatal("source never reached EOF")
	return nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"garbage", []byte("This is not FLAC data")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, ErrNotFlacFile) {
				t.Errorf("Decode() error = %v, want ErrNotFlacFile", err)
			}
		})
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newSource(&mockStream{}, 44100, 2, 16)

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.BufSize()%2 != 0 || src.BufSize() == 0 {
		t.Errorf("BufSize() = %d, want positive multiple of 2", src.BufSize())
	}
}

func TestSource_InterleavesSubframes(t *testing.T) {
	t.Parallel()

	stream := &mockStream{frames: []*frame.Frame{
		makeFrame([]int32{16384, 8192}, []int32{-16384, -8192}),
		makeFrame([]int32{0}, []int32{-32768}),
	}}
	src := newSource(stream, 44100, 2, 16)

	got := readAll(t, src, 4)
	want := []float32{0.5, -0.5, 0.25, -0.25, 0, -1}

	if len(got) != len(want) {
		t.Fatalf("got %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSource_NormalizesByBitDepth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bitDepth int
		sample   int32
		want     float32
	}{
		{8, 64, 0.5},
		{16, -16384, -0.5},
		{20, 1 << 18, 0.5},
		{24, 1 << 22, 0.5},
	}

	for _, tt := range tests {
		stream := &mockStream{frames: []*frame.Frame{makeFrame([]int32{tt.sample})}}
		src := newSource(stream, 8000, 1, tt.bitDepth)

		got := readAll(t, src, 8)
		if len(got) != 1 || got[0] != tt.want {
			t.Errorf("%d-bit: got %v, want [%v]", tt.bitDepth, got, tt.want)
		}
	}
}

func TestSource_SplitsFramesAcrossReads(t *testing.T) {
	t.Parallel()

	samples := make([]int32, 10)
	for i := range samples {
		samples[i] = int32(i * 1000)
	}
	stream := &mockStream{frames: []*frame.Frame{makeFrame(samples), makeFrame(samples)}}
	src := newSource(stream, 8000, 1, 16)

	got := readAll(t, src, 3)
	if len(got) != 20 {
		t.Errorf("got %d samples, want 20", len(got))
	}
}

func TestSource_CorruptFrame(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		frame *frame.Frame
	}{
		{"missing subframe", makeFrame([]int32{1, 2})},
		{"short subframe", makeFrame([]int32{1, 2}, []int32{1})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := newSource(&mockStream{frames: []*frame.Frame{tt.frame}}, 8000, 2, 16)

			_, err := src.ReadSamples(make([]float32, 4))
			if !errors.Is(err, ErrCorruptFrame) {
				t.Errorf("ReadSamples() error = %v, want ErrCorruptFrame", err)
			}
		})
	}
}

func TestSource_StreamError(t *testing.T) {
	t.Parallel()

	src := newSource(&mockStream{err: io.ErrUnexpectedEOF}, 8000, 1, 16)

	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want ErrUnexpectedEOF", err)
	}
}

func TestSource_InvalidDstSize(t *testing.T) {
	t.Parallel()

	src := newSource(&mockStream{}, 8000, 2, 16)

	if _, err := src.ReadSamples(make([]float32, 3)); !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("ReadSamples(3) error = %v, want ErrInvalidDstSize", err)
	}
}

func TestSource_Close(t *testing.T) {
	t.Parallel()

	stream := &mockStream{}
	src := newSource(stream, 8000, 1, 16)

	if err := src.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !stream.closed {
		t.Error("Close() did not close the underlying stream")
	}
}
