// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/pcmtab/audio"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	bufSize    int
	eof        bool
}

func newSource(dec oggReader) *source {
	channels := max(dec.Channels(), 1)
	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   channels,
		bufSize:    channels * 2048,
	}
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return s.bufSize }

// ReadSamples decodes straight into dst. oggvorbis counts values rather
// than frames and always fills a multiple of the channel count.
func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst)%s.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}
	if s.eof {
		return 0, io.EOF
	}

	n, err := s.dec.Read(dst)
	switch {
	case err == io.EOF:
		s.eof = true
		return n, io.EOF
	case err != nil:
		return n, fmt.Errorf("decoding vorbis: %w", err)
	}

	return n, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}

	return newSource(dec), nil
}
