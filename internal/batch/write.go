// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
)

const fileMode = 0o644

// writeAtomic writes path through a temporary file in the same directory
// and renames it into place, so readers never see a partial header.
func writeAtomic(fs afero.Fs, path string, write func(w io.WriteSeeker) error) (err error) {
	dir, base := filepath.Split(path)

	tmp, err := afero.TempFile(fs, dir, "."+base+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", base, err)
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			_ = fs.Remove(tmpName)
		}
	}()

	if err := write(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", base, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing %s: %w", base, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", base, err)
	}
	if err := fs.Chmod(tmpName, fileMode); err != nil {
		return fmt.Errorf("setting mode of %s: %w", base, err)
	}
	if err := fs.Rename(tmpName, path); err != nil {
		return fmt.Errorf("renaming %s: %w", base, err)
	}

	return nil
}
