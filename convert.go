// SPDX-License-Identifier: EPL-2.0

package pcmtab

import (
	"fmt"
	"path/filepath"

	"github.com/ik5/pcmtab/audio"
)

// Convert drains src into a Table in format f. The pipeline is:
//  1. sources with more than two channels are mixed down to mono
//  2. samples are resampled to f.SampleRate unless the rate already matches
//  3. samples are quantized to f.BitDepth
//  4. the channel count is reconciled to f.Channels
//
// name is the source filename; only its base is kept. Convert does not
// close src.
func Convert(name string, src audio.Source, f Format) (*Table, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if src.Channels() < 1 || src.SampleRate() < 1 {
		return nil, fmt.Errorf("%w: %d channels, %d Hz", ErrInvalidSource, src.Channels(), src.SampleRate())
	}

	var pipeline audio.Source = src
	have := src.Channels()

	if have > 2 {
		pipeline = audio.NewMonoMixer(pipeline)
		have = 1
	}

	if pipeline.SampleRate() != f.SampleRate {
		pipeline = audio.NewResampler(pipeline, f.SampleRate)
	}

	floats, err := audio.ReadAll(pipeline, pipeline.BufSize())
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	if len(floats) == 0 {
		return nil, ErrNoSamples
	}

	quantized, err := Quantize(floats, f.BitDepth)
	if err != nil {
		return nil, err
	}

	samples, err := ReconcileChannels(quantized, have, f.Channels)
	if err != nil {
		return nil, err
	}

	return NewTable(filepath.Base(name), f, samples), nil
}
