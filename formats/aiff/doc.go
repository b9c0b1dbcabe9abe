// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
//
// # Supported Formats
//
//   - Big-endian signed PCM, 8, 16, 24 and 32-bit
//   - Mono and multi-channel
//   - Any sample rate
//
// # Decoding AIFF Files
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aiff")
//	source, err := decoder.Decode(file)
//
// Readers that do not implement io.Seeker are buffered in memory first.
package aiff
