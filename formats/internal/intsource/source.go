// SPDX-License-Identifier: EPL-2.0

// Package intsource adapts go-audio integer PCM decoders to audio.Source.
package intsource

import (
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/pcmtab/utils"
)

// PCMReader is the subset of the go-audio wav and aiff decoders used here.
type PCMReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source wraps a PCMReader and normalizes its integer samples.
type Source struct {
	dec        PCMReader
	sampleRate int
	channels   int
	bitDepth   int
	// bias is subtracted before normalizing (128 for unsigned 8-bit WAV)
	bias   int
	intBuf *goaudio.IntBuffer
	eof    bool
}

func New(dec PCMReader, sampleRate, channels, bitDepth, bias int) *Source {
	return &Source{
		dec:        dec,
		sampleRate: sampleRate,
		channels:   channels,
		bitDepth:   bitDepth,
		bias:       bias,
	}
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BitDepth() int   { return s.bitDepth }
func (s *Source) Close() error    { return nil }
func (s *Source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.eof {
		return 0, io.EOF
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data: make([]int, len(dst)),
			Format: &goaudio.Format{
				NumChannels: s.channels,
				SampleRate:  s.sampleRate,
			},
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	for i := range n {
		dst[i] = utils.IntToFloat32(s.intBuf.Data[i]-s.bias, s.bitDepth)
	}

	switch {
	case err == io.EOF:
		s.eof = true
		return n, io.EOF
	case err != nil:
		return n, err
	case n < len(dst):
		// go-audio reports the end of the PCM chunk as a short read
		s.eof = true
		return n, io.EOF
	}

	return n, nil
}
