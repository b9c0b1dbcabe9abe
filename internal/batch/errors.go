// SPDX-License-Identifier: EPL-2.0

package batch

import "errors"

var (
	ErrInputDirMissing  = errors.New("input directory does not exist")
	ErrNoFiles          = errors.New("no audio files found")
	ErrInvalidPattern   = errors.New("invalid file pattern")
	ErrNoDecoder        = errors.New("no decoder for file extension")
	ErrConversionFailed = errors.New("some files failed to convert")
	ErrReservedName     = errors.New("name is reserved by the index header")
	ErrOverwritesInput  = errors.New("output would overwrite an input file")
)
