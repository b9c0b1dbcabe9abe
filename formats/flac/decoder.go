// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/ik5/pcmtab/audio"
	"github.com/ik5/pcmtab/utils"
)

// frameParser is the subset of flac.Stream used by source, for testing
type frameParser interface {
	ParseNext() (*frame.Frame, error)
}

type source struct {
	stream     frameParser
	sampleRate int
	channels   int
	bitDepth   int

	// interleaved samples of the current frame not yet handed out
	pending []float32
	pos     int
	eof     bool
}

func newSource(stream frameParser, sampleRate, channels, bitDepth int) *source {
	return &source{
		stream:     stream,
		sampleRate: sampleRate,
		channels:   channels,
		bitDepth:   bitDepth,
	}
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return s.channels * 4096 }

func (s *source) Close() error {
	if c, ok := s.stream.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return fmt.Errorf("closing flac stream: %w", err)
		}
	}
	return nil
}

// decodeFrame interleaves the subframes of the next frame into pending.
func (s *source) decodeFrame() error {
	fr, err := s.stream.ParseNext()
	if err != nil {
		return err
	}

	if len(fr.Subframes) != s.channels {
		return fmt.Errorf("%w: frame has %d subframes, stream has %d channels",
			ErrCorruptFrame, len(fr.Subframes), s.channels)
	}

	blockSize := int(fr.BlockSize)
	for _, sub := range fr.Subframes {
		if len(sub.Samples) < blockSize {
			return fmt.Errorf("%w: subframe holds %d samples, block size is %d",
				ErrCorruptFrame, len(sub.Samples), blockSize)
		}
	}

	need := blockSize * s.channels
	if cap(s.pending) < need {
		s.pending = make([]float32, need)
	}
	s.pending = s.pending[:need]
	s.pos = 0

	for i := range blockSize {
		for ch, sub := range fr.Subframes {
			s.pending[i*s.channels+ch] = utils.IntToFloat32(int(sub.Samples[i]), s.bitDepth)
		}
	}

	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst)%s.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	n := 0
	for n < len(dst) {
		if s.pos < len(s.pending) {
			c := copy(dst[n:], s.pending[s.pos:])
			s.pos += c
			n += c
			continue
		}
		if s.eof {
			return n, io.EOF
		}

		if err := s.decodeFrame(); err != nil {
			if err == io.EOF {
				s.eof = true
				continue
			}
			return n, fmt.Errorf("decoding flac frame: %w", err)
		}
	}

	return n, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	info := stream.Info
	channels := int(info.NChannels)
	bitDepth := int(info.BitsPerSample)
	if channels < 1 || info.SampleRate == 0 || bitDepth < 4 || bitDepth > 32 {
		return nil, fmt.Errorf("%w: %d channels, %d Hz, %d-bit",
			ErrUnsupportedFlacLayout, channels, info.SampleRate, bitDepth)
	}

	return newSource(stream, int(info.SampleRate), channels, bitDepth), nil
}
