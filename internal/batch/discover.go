// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/spf13/afero"
)

// DefaultPatterns are globbed when no pattern is given.
var DefaultPatterns = []string{"*.mp3", "*.wav", "*.flac", "*.ogg"}

// Discover lists the regular files in dir matching pattern, or any of
// DefaultPatterns when pattern is empty. Paths are sorted and unique.
func Discover(fs afero.Fs, dir, pattern string) ([]string, error) {
	patterns := DefaultPatterns
	if pattern != "" {
		patterns = []string{pattern}
	}

	var files []string
	for _, p := range patterns {
		matches, err := afero.Glob(fs, filepath.Join(dir, p))
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidPattern, p, err)
		}

		for _, m := range matches {
			info, err := fs.Stat(m)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			files = append(files, m)
		}
	}

	slices.Sort(files)
	return slices.Compact(files), nil
}
