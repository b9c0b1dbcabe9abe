// SPDX-License-Identifier: EPL-2.0

package intsource

import (
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// mockPCMReader simulates a go-audio decoder for testing
type mockPCMReader struct {
	samples      []int
	offset       int
	returnErrors bool
}

func (m *mockPCMReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}

	n := copy(buf.Data, m.samples[m.offset:])
	m.offset += n

	return n, nil
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := New(&mockPCMReader{}, 44100, 2, 24, 0)

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.BitDepth() != 24 {
		t.Errorf("BitDepth() = %d, want 24", src.BitDepth())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := New(&mockPCMReader{samples: []int{0, 16384, -16384, 32767, -32768}}, 44100, 1, 16, 0)

	dst := make([]float32, 5)
	n, err := src.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v, want nil", err)
	}
	if n != 5 {
		t.Fatalf("ReadSamples() n = %d, want 5", n)
	}

	expected := []float32{0.0, 0.5, -0.5, 0.999969482, -1.0}
	for i := range n {
		if dst[i] < expected[i]-0.001 || dst[i] > expected[i]+0.001 {
			t.Errorf("dst[%d] = %f, want ~%f", i, dst[i], expected[i])
		}
	}
}

func TestSource_UnsignedBias(t *testing.T) {
	t.Parallel()

	src := New(&mockPCMReader{samples: []int{128, 255, 0}}, 8000, 1, 8, 128)

	dst := make([]float32, 3)
	n, _ := src.ReadSamples(dst)
	if n != 3 {
		t.Fatalf("ReadSamples() n = %d, want 3", n)
	}

	expected := []float32{0, 127.0 / 128.0, -1}
	for i := range n {
		if dst[i] != expected[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], expected[i])
		}
	}
}

func TestSource_ShortReadIsEOF(t *testing.T) {
	t.Parallel()

	src := New(&mockPCMReader{samples: []int{100, 200, 300, 400, 500}}, 44100, 1, 16, 0)
	dst := make([]float32, 2)

	for i, want := range []struct {
		n   int
		err error
	}{{2, nil}, {2, nil}, {1, io.EOF}, {0, io.EOF}} {
		n, err := src.ReadSamples(dst)
		if n != want.n || err != want.err {
			t.Errorf("read %d = (%d, %v), want (%d, %v)", i, n, err, want.n, want.err)
		}
	}
}

func TestSource_ExactMultipleEndsWithEOF(t *testing.T) {
	t.Parallel()

	src := New(&mockPCMReader{samples: []int{1, 2, 3, 4}}, 44100, 2, 16, 0)
	dst := make([]float32, 4)

	if n, err := src.ReadSamples(dst); n != 4 || err != nil {
		t.Fatalf("first read = (%d, %v), want (4, nil)", n, err)
	}
	if n, err := src.ReadSamples(dst); n != 0 || err != io.EOF {
		t.Fatalf("second read = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestSource_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := New(&mockPCMReader{samples: []int{1}}, 44100, 1, 16, 0)

	n, err := src.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_Error(t *testing.T) {
	t.Parallel()

	src := New(&mockPCMReader{returnErrors: true}, 44100, 1, 16, 0)

	if _, err := src.ReadSamples(make([]float32, 10)); err == nil {
		t.Error("ReadSamples() error = nil, want error")
	}
}

func TestSource_BufSize(t *testing.T) {
	t.Parallel()

	src := New(&mockPCMReader{samples: make([]int, 100)}, 44100, 2, 16, 0)

	if got := src.BufSize(); got != 4096 {
		t.Errorf("BufSize() = %d, want 4096 (default)", got)
	}

	_, _ = src.ReadSamples(make([]float32, 100))

	if got := src.BufSize(); got < 100 {
		t.Errorf("BufSize() = %d, want >= 100", got)
	}
}
