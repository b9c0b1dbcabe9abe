// SPDX-License-Identifier: EPL-2.0

// Package batch converts every matching audio file in a directory into a
// PCM table header and writes the lookup registry for the ones that
// succeeded.
//
// Files are processed one at a time in ascending path order; that order
// is the registry position of each table. A file that fails to decode is
// logged and skipped. Run still writes the registry for the rest and
// then reports ErrConversionFailed.
package batch
