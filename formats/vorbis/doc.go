// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis, a pure Go decoder.
//
// # Decoding Vorbis Files
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	source, err := decoder.Decode(file)
//
// The decoder returns an audio.Source that yields interleaved float32
// samples in the range [-1.0, 1.0] at the stream's native rate and
// channel count. Destination buffers passed to ReadSamples must be a
// multiple of the channel count.
package vorbis
