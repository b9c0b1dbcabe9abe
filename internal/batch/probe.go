// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/ik5/pcmtab/audio"
)

// Capabilities records which file extensions can be decoded.
type Capabilities struct {
	formats []string
}

// Probe reports the extensions reg has decoders for.
func Probe(reg *audio.Registry) Capabilities {
	return Capabilities{formats: reg.Formats()}
}

// Formats lists the decodable extensions, sorted, without a leading dot.
func (c Capabilities) Formats() []string {
	return slices.Clone(c.formats)
}

// Supports reports whether files with extension ext can be decoded.
func (c Capabilities) Supports(ext string) bool {
	_, found := slices.BinarySearch(c.formats, normalizeExt(ext))
	return found
}

// Missing lists, once each and sorted, the extensions of files that have
// no decoder. Files without an extension are reported as "".
func (c Capabilities) Missing(files []string) []string {
	var missing []string
	for _, f := range files {
		ext := normalizeExt(filepath.Ext(f))
		if !c.Supports(ext) {
			missing = append(missing, ext)
		}
	}

	slices.Sort(missing)
	return slices.Compact(missing)
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
