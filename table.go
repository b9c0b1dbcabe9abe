// SPDX-License-Identifier: EPL-2.0

package pcmtab

import (
	"time"

	"github.com/ik5/pcmtab/ident"
)

// Table is one converted audio file, ready to be emitted.
type Table struct {
	// Name is the source file's base name, e.g. "alarm.wav".
	Name string
	// Ident is the C++ symbol prefix derived from Name.
	Ident  string
	Format Format
	// Samples are interleaved and within the range of Format.BitDepth.
	Samples []int32
}

// NewTable builds a Table for the file name, deriving its identifier.
func NewTable(name string, f Format, samples []int32) *Table {
	return &Table{
		Name:    name,
		Ident:   ident.Sanitize(name),
		Format:  f,
		Samples: samples,
	}
}

// SampleCount is the number of interleaved values.
func (t *Table) SampleCount() int { return len(t.Samples) }

func (t *Table) Frames() int {
	return len(t.Samples) / max(t.Format.Channels, 1)
}

func (t *Table) ByteSize() int {
	return t.SampleCount() * t.Format.BytesPerSample()
}

func (t *Table) Duration() time.Duration {
	if t.Format.SampleRate <= 0 {
		return 0
	}
	return time.Duration(int64(t.Frames()) * int64(time.Second) / int64(t.Format.SampleRate))
}

// DurationMS is the playback length in whole milliseconds, truncated.
func (t *Table) DurationMS() int64 {
	if t.Format.SampleRate <= 0 {
		return 0
	}
	return int64(t.Frames()) * 1000 / int64(t.Format.SampleRate)
}

// HeaderName is the file the table is written to.
func (t *Table) HeaderName() string { return ident.HeaderName(t.Name) }
