// SPDX-License-Identifier: EPL-2.0

package emit

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	DefaultNamespace = "Exterminate::Audio"
	DefaultPerLine   = 8
	DefaultIndexName = "audio_index.h"

	generator = "pcmtab"
)

// Options controls the layout of generated headers.
type Options struct {
	// Namespace is a "::" separated C++ namespace. Empty emits symbols at
	// global scope.
	Namespace string
	// PerLine is the number of sample values written per line.
	PerLine int
	// IndexName is the file name of the registry header.
	IndexName string
}

func DefaultOptions() Options {
	return Options{
		Namespace: DefaultNamespace,
		PerLine:   DefaultPerLine,
		IndexName: DefaultIndexName,
	}
}

func (o Options) Validate() error {
	if _, err := o.namespaces(); err != nil {
		return err
	}
	if o.PerLine <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPerLine, o.PerLine)
	}
	if o.IndexName == "" || o.IndexName != filepath.Base(o.IndexName) {
		return fmt.Errorf("%w: %q", ErrInvalidIndexName, o.IndexName)
	}
	return nil
}

func (o Options) namespaces() ([]string, error) {
	if o.Namespace == "" {
		return nil, nil
	}

	parts := strings.Split(o.Namespace, "::")
	for _, p := range parts {
		if !isIdentifier(p) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNamespace, o.Namespace)
		}
	}

	return parts, nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
