// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/pcmtab/audio"
)

const (
	// go-mp3 always produces 16-bit little-endian stereo
	channels       = 2
	bytesPerSample = 2
	bytesPerFrame  = channels * bytesPerSample
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	// bytes of an incomplete frame carried over from the previous Read
	pending int
	eof     bool
}

func newSource(dec mp3Reader) *source {
	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / bytesPerSample } // sample capacity, not bytes

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst)%channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}
	if s.eof {
		return 0, io.EOF
	}

	bytesNeeded := len(dst) * bytesPerSample
	if cap(s.buf) < bytesNeeded {
		grown := make([]byte, bytesNeeded)
		copy(grown, s.buf[:s.pending])
		s.buf = grown
	}
	s.buf = s.buf[:bytesNeeded]

	n, err := s.dec.Read(s.buf[s.pending:])
	total := s.pending + n

	// Only whole frames are handed out; the remainder waits for the next call
	usable := total - total%bytesPerFrame
	samples := usable / bytesPerSample
	for i := range samples {
		dst[i] = float32(int16(binary.LittleEndian.Uint16(s.buf[2*i:]))) / 32768.0
	}

	s.pending = copy(s.buf, s.buf[usable:total])

	switch {
	case err == io.EOF:
		// A trailing partial frame cannot be represented and is dropped
		s.eof = true
		s.pending = 0
		return samples, io.EOF
	case err != nil:
		return samples, fmt.Errorf("decoding mp3: %w", err)
	}

	return samples, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	return newSource(dec), nil
}
