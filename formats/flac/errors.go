// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	ErrNotFlacFile           = errors.New("not a FLAC stream")
	ErrUnsupportedFlacLayout = errors.New("unsupported FLAC stream layout")
	ErrCorruptFrame          = errors.New("corrupt FLAC frame")
)
