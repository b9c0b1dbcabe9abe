// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
//
// # Decoding MP3 Files
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	source, err := decoder.Decode(file)
//
// # Output Format
//
//   - Sample format: float32 in range [-1.0, 1.0]
//   - Channels: always 2 (go-mp3 duplicates mono streams)
//   - Sample rate: that of the MP3 stream
//
// ReadSamples always returns whole frames. Destination buffers must hold
// an even number of samples.
//
// To convert to mono or resample, use the audio package:
//
//	mono := audio.NewMonoMixer(audio.NewResampler(source, 8000))
package mp3
