// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding and encoding are built on github.com/go-audio/wav.
//
// # Supported Formats
//
//   - Integer PCM, 8, 16, 24 and 32-bit (WAVE_FORMAT_PCM and
//     WAVE_FORMAT_EXTENSIBLE)
//   - Any channel count and sample rate
//
// # Decoding WAV Files
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//
// The decoder returns an audio.Source that provides interleaved float32
// samples in the range [-1.0, 1.0]. Readers that do not implement
// io.Seeker are buffered in memory first.
//
// # Writing WAV Files
//
// WritePCM writes interleaved integer samples as a PCM WAV file:
//
//	file, _ := os.Create("preview.wav")
//	err := wav.WritePCM(file, 44100, 1, 16, samples)
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE file
//   - ErrOnlyPCMSupported: the file holds compressed or float data
//   - ErrUnsupportedBitDepth: bit depth other than 8, 16, 24 or 32
//   - ErrUnsupportedWavLayout: missing or invalid fmt chunk
//   - ErrUnsupportedWavChunks: no data chunk
package wav
