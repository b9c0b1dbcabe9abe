// SPDX-License-Identifier: EPL-2.0

package emit

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/ik5/pcmtab"
)

// WriteTable renders t as a self-contained C++ header.
func WriteTable(w io.Writer, t *pcmtab.Table, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if err := t.Format.Validate(); err != nil {
		return err
	}
	if t.SampleCount() == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyTable, t.Name)
	}

	ns, _ := opts.namespaces()
	bw := bufio.NewWriter(w)
	name := commentSafe(t.Name)
	id := t.Ident
	ctype := t.Format.CType()

	fmt.Fprintf(bw, "#pragma once\n\n")
	fmt.Fprintf(bw, "// Auto-generated from %s\n", name)
	fmt.Fprintf(bw, "// DO NOT EDIT - Generated by %s\n\n", generator)
	fmt.Fprintf(bw, "#include <cstdint>\n#include <cstddef>\n\n")

	openNamespaces(bw, ns)
	fmt.Fprintf(bw, "// PCM audio data for %s\n", name)
	fmt.Fprintf(bw, "// Format: %s\n", t.Format)
	fmt.Fprintf(bw, "// Duration: %dms (%s samples)\n", t.DurationMS(), groupThousands(t.SampleCount()))
	fmt.Fprintf(bw, "extern const %s %s_DATA[];\n", ctype, id)
	fmt.Fprintf(bw, "extern const size_t %s_SAMPLE_COUNT;\n", id)
	fmt.Fprintf(bw, "extern const size_t %s_BYTE_SIZE;\n", id)
	fmt.Fprintf(bw, "extern const uint32_t %s_SAMPLE_RATE;\n", id)
	fmt.Fprintf(bw, "extern const uint8_t %s_CHANNELS;\n", id)
	fmt.Fprintf(bw, "extern const uint8_t %s_BIT_DEPTH;\n", id)
	closeNamespaces(bw, ns)

	fmt.Fprintf(bw, "\n// Implementation\n")
	openNamespaces(bw, ns)
	fmt.Fprintf(bw, "const %s %s_DATA[] = {\n", ctype, id)
	writeSamples(bw, t.Samples, opts.PerLine)
	fmt.Fprintf(bw, "};\n\n")
	fmt.Fprintf(bw, "const size_t %s_SAMPLE_COUNT = %d;\n", id, t.SampleCount())
	fmt.Fprintf(bw, "const size_t %s_BYTE_SIZE = %d;\n", id, t.ByteSize())
	fmt.Fprintf(bw, "const uint32_t %s_SAMPLE_RATE = %d;\n", id, t.Format.SampleRate)
	fmt.Fprintf(bw, "const uint8_t %s_CHANNELS = %d;\n", id, t.Format.Channels)
	fmt.Fprintf(bw, "const uint8_t %s_BIT_DEPTH = %d;\n", id, t.Format.BitDepth)
	closeNamespaces(bw, ns)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing table %s: %w", t.Name, err)
	}
	return nil
}

// writeSamples writes perLine comma separated values per line, with no
// trailing comma after the last value.
func writeSamples(bw *bufio.Writer, samples []int32, perLine int) {
	var num [12]byte

	for i, s := range samples {
		if i%perLine == 0 {
			bw.WriteString("    ")
		}

		bw.Write(strconv.AppendInt(num[:0], int64(s), 10))

		switch {
		case i == len(samples)-1:
			bw.WriteByte('\n')
		case (i+1)%perLine == 0:
			bw.WriteString(",\n")
		default:
			bw.WriteString(", ")
		}
	}
}
