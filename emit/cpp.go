// SPDX-License-Identifier: EPL-2.0

package emit

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

func openNamespaces(bw *bufio.Writer, ns []string) {
	if len(ns) == 0 {
		return
	}
	for _, n := range ns {
		fmt.Fprintf(bw, "namespace %s {\n", n)
	}
	bw.WriteByte('\n')
}

func closeNamespaces(bw *bufio.Writer, ns []string) {
	if len(ns) == 0 {
		return
	}
	bw.WriteByte('\n')
	for i := len(ns) - 1; i >= 0; i-- {
		fmt.Fprintf(bw, "} // namespace %s\n", ns[i])
	}
}

// cString quotes s as a C string literal. Quotes, backslashes and
// control bytes are escaped as three digit octal so a following digit
// cannot extend the escape.
func cString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' || c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c < 0x20 || c == 0x7f:
			fmt.Fprintf(&b, "\\%03o", c)
		default:
			b.WriteByte(c)
		}
	}

	b.WriteByte('"')
	return b.String()
}

// commentSafe keeps a file name on one line of a // comment.
func commentSafe(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return ' '
		}
		return r
	}, s)
}

// groupThousands formats n with comma separators: 44100 -> "44,100".
func groupThousands(n int) string {
	if n < 0 {
		return "-" + groupThousands(-n)
	}
	s := strconv.Itoa(n)

	var b strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}
