// SPDX-License-Identifier: EPL-2.0

// Package ident derives C++ symbol and header names from audio filenames.
package ident

import (
	"path/filepath"
	"slices"
	"strings"
)

// Prefix is prepended to identifiers that would otherwise start with a
// digit, or be empty.
const Prefix = "AUDIO_"

// Stem returns the base name of filename without its final extension.
func Stem(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Sanitize turns filename into an upper-case C identifier. The directory
// and extension are dropped and every rune that is not an ASCII letter or
// digit becomes an underscore.
//
//	Sanitize("misc/door-open 2.mp3") == "DOOR_OPEN_2"
//	Sanitize("00001.wav")            == "AUDIO_00001"
func Sanitize(filename string) string {
	stem := Stem(filename)

	var b strings.Builder
	b.Grow(len(Prefix) + len(stem))

	for _, r := range stem {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	s := b.String()
	if s == "" || (s[0] >= '0' && s[0] <= '9') {
		return Prefix + s
	}

	return s
}

// HeaderName is the generated header file name for filename.
func HeaderName(filename string) string {
	return Stem(filename) + ".h"
}

// Collision is a set of input files that map to the same output Key.
type Collision struct {
	Key   string
	Files []string
}

// Collisions groups filenames whose sanitized identifiers are equal.
func Collisions(filenames []string) []Collision {
	return groupBy(filenames, Sanitize)
}

// HeaderCollisions groups filenames that would be written to the same
// header file, such as "a.mp3" and "a.wav".
func HeaderCollisions(filenames []string) []Collision {
	return groupBy(filenames, HeaderName)
}

// groupBy returns the groups of more than one file, ordered by key.
// Files keep their input order within a group.
func groupBy(filenames []string, key func(string) string) []Collision {
	groups := make(map[string][]string)
	for _, f := range filenames {
		k := key(f)
		groups[k] = append(groups[k], f)
	}

	var out []Collision
	for k, files := range groups {
		if len(files) > 1 {
			out = append(out, Collision{Key: k, Files: files})
		}
	}

	slices.SortFunc(out, func(a, b Collision) int {
		return strings.Compare(a.Key, b.Key)
	})

	return out
}
