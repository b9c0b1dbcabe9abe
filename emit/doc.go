// SPDX-License-Identifier: EPL-2.0

// Package emit renders PCM tables and their lookup registry as C++
// headers.
//
// Each table header declares its symbols first and defines them after,
// inside the configured namespace:
//
//	extern const int16_t ALARM_DATA[];
//	extern const size_t ALARM_SAMPLE_COUNT;
//	...
//	const int16_t ALARM_DATA[] = {
//	    0, 16383, -16383, ...
//	};
//
// The index header includes every table header and defines an
// AudioFile array, an AudioIndex enum whose values are the position of
// each table, and two getAudioFile lookups (by index and by file
// name). Index.At and Index.Lookup implement the same lookups in Go.
//
// Output is deterministic: the same tables and options always render
// the same bytes.
package emit
