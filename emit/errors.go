// SPDX-License-Identifier: EPL-2.0

package emit

import "errors"

var (
	ErrInvalidNamespace = errors.New("namespace is not a valid C++ qualified name")
	ErrInvalidPerLine   = errors.New("values per line must be positive")
	ErrInvalidIndexName = errors.New("index name must be a plain file name")
	ErrEmptyTable       = errors.New("table has no samples")
	ErrEmptyIndex       = errors.New("index has no entries")
)
