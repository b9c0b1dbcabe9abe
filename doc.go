// SPDX-License-Identifier: EPL-2.0

// Package pcmtab converts decoded audio into fixed-format PCM tables that
// can be compiled into firmware.
//
// Every table produced in one run shares a single Format: sample rate,
// channel count (1 or 2) and bit depth (16 or 32).
//
// # Pipeline
//
//	src, _ := wav.Decoder{}.Decode(file)
//	table, err := pcmtab.Convert("alarm.wav", src, pcmtab.DefaultFormat)
//
// Convert mixes sources with more than two channels down to mono,
// resamples with audio.Resampler when the rate differs, quantizes with
// Quantize and finally reconciles channels with ReconcileChannels.
//
// # Quantization
//
// Samples are multiplied by the positive full-scale value (32767 or
// 2147483647) and truncated toward zero. There is no dithering, so the
// same input always yields the same table. Inputs beyond [-1, 1] saturate
// and NaN becomes 0.
//
// # Decoders
//
// DefaultRegistry maps file extensions to the decoders under formats/:
// mp3, wav, flac, ogg (Vorbis), aif and aiff.
//
// Tables are rendered to C++ headers by the emit package.
package pcmtab
