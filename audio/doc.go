// SPDX-License-Identifier: EPL-2.0

// Package audio holds the streaming primitives every decoder and converter
// in pcmtab is built from.
//
// A Source yields interleaved float32 samples in [-1, 1] and reports its
// rate and channel count. Reads are frame aligned: n is always a multiple
// of Channels(), and a read may return samples together with io.EOF.
//
// Sources compose. A typical conversion narrows a decoded file to mono and
// then changes its rate before collecting everything into memory:
//
//	src, _ := dec.Decode(f)
//	mono := audio.NewMonoMixer(src)
//	out := audio.NewResampler(mono, 22050)
//	samples, err := audio.ReadAll(out, 0)
//
// The Resampler uses Catmull-Rom interpolation and low-pass filters the
// input when downsampling. MonoMixer averages the channels of each frame.
//
// Decoders are looked up by file extension through a Registry. Keys are
// case-insensitive and the leading dot is optional:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, ok := reg.ForPath("sounds/alarm.WAV")
package audio
