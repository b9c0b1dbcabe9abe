// SPDX-License-Identifier: EPL-2.0

// Package flac provides FLAC audio file decoding.
//
// This package uses github.com/mewkiz/flac, a pure Go decoder. Frames are
// decoded one at a time and their subframes interleaved, so memory use
// stays bounded by the largest block size.
//
//	decoder := flac.Decoder{}
//	file, _ := os.Open("audio.flac")
//	source, err := decoder.Decode(file)
//
// Samples are normalized by the stream's bits-per-sample to float32 in
// the range [-1.0, 1.0].
package flac
