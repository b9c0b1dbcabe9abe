// SPDX-License-Identifier: EPL-2.0

package emit

import (
	"bufio"
	"fmt"
	"io"
)

// ReservedIdent reports whether a table identifier clashes with a symbol
// of the index header. COUNT is the AudioIndex sentinel, and AUDIO would
// define AUDIO_SAMPLE_RATE, AUDIO_CHANNELS and AUDIO_BIT_DEPTH a second time.
func ReservedIdent(id string) bool {
	return id == "COUNT" || id == "AUDIO"
}

// WriteIndex renders the registry header for idx.
func WriteIndex(w io.Writer, idx Index, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if err := idx.Format.Validate(); err != nil {
		return err
	}
	if idx.Len() == 0 {
		return ErrEmptyIndex
	}

	ns, _ := opts.namespaces()
	bw := bufio.NewWriter(w)
	f := idx.Format

	fmt.Fprintf(bw, "#pragma once\n\n")
	fmt.Fprintf(bw, "// Auto-generated PCM audio index\n")
	fmt.Fprintf(bw, "// DO NOT EDIT - Generated by %s\n\n", generator)
	fmt.Fprintf(bw, "#include <cstdint>\n#include <cstddef>\n#include <cstring>\n\n")

	for _, e := range idx.Entries {
		fmt.Fprintf(bw, "#include %s\n", cString(e.Header))
	}
	fmt.Fprintln(bw)

	openNamespaces(bw, ns)
	fmt.Fprintf(bw, "// Audio format constants\n")
	fmt.Fprintf(bw, "constexpr uint32_t AUDIO_SAMPLE_RATE = %d;\n", f.SampleRate)
	fmt.Fprintf(bw, "constexpr uint8_t AUDIO_CHANNELS = %d;\n", f.Channels)
	fmt.Fprintf(bw, "constexpr uint8_t AUDIO_BIT_DEPTH = %d;\n\n", f.BitDepth)

	fmt.Fprintf(bw, "// PCM audio file registry\n")
	fmt.Fprintf(bw, "struct AudioFile {\n")
	fmt.Fprintf(bw, "    const char* name;\n")
	fmt.Fprintf(bw, "    const %s* data;\n", f.CType())
	fmt.Fprintf(bw, "    size_t sample_count;\n")
	fmt.Fprintf(bw, "    size_t byte_size;\n")
	fmt.Fprintf(bw, "    uint32_t sample_rate;\n")
	fmt.Fprintf(bw, "    uint8_t channels;\n")
	fmt.Fprintf(bw, "    uint8_t bit_depth;\n")
	fmt.Fprintf(bw, "};\n\n")

	fmt.Fprintf(bw, "// Available audio files\n")
	fmt.Fprintf(bw, "extern const AudioFile AUDIO_FILES[];\n")
	fmt.Fprintf(bw, "extern const size_t AUDIO_FILE_COUNT;\n\n")

	fmt.Fprintf(bw, "// Audio file indices for easy access\n")
	fmt.Fprintf(bw, "enum class AudioIndex : size_t {\n")
	for i, e := range idx.Entries {
		fmt.Fprintf(bw, "    %s = %d,\n", e.Ident, i)
	}
	fmt.Fprintf(bw, "    COUNT = %d\n", idx.Len())
	fmt.Fprintf(bw, "};\n\n")

	fmt.Fprintf(bw, "// Helper functions\n")
	fmt.Fprintf(bw, "const AudioFile* getAudioFile(AudioIndex index);\n")
	fmt.Fprintf(bw, "const AudioFile* getAudioFile(const char* name);\n")
	closeNamespaces(bw, ns)

	fmt.Fprintf(bw, "\n// Implementation\n")
	openNamespaces(bw, ns)
	fmt.Fprintf(bw, "const AudioFile AUDIO_FILES[] = {\n")
	for _, e := range idx.Entries {
		id := e.Ident
		fmt.Fprintf(bw, "    {%s, %s_DATA, %s_SAMPLE_COUNT, %s_BYTE_SIZE,\n", cString(e.Name), id, id, id)
		fmt.Fprintf(bw, "     %s_SAMPLE_RATE, %s_CHANNELS, %s_BIT_DEPTH},\n", id, id, id)
	}
	fmt.Fprintf(bw, "};\n\n")
	fmt.Fprintf(bw, "const size_t AUDIO_FILE_COUNT = %d;\n\n", idx.Len())

	bw.WriteString(lookupFuncs)
	closeNamespaces(bw, ns)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing index: %w", err)
	}
	return nil
}

const lookupFuncs = `const AudioFile* getAudioFile(AudioIndex index) {
    if (static_cast<size_t>(index) >= AUDIO_FILE_COUNT) {
        return nullptr;
    }
    return &AUDIO_FILES[static_cast<size_t>(index)];
}

const AudioFile* getAudioFile(const char* name) {
    for (size_t i = 0; i < AUDIO_FILE_COUNT; ++i) {
        if (strcmp(AUDIO_FILES[i].name, name) == 0) {
            return &AUDIO_FILES[i];
        }
    }
    return nullptr;
}
`
