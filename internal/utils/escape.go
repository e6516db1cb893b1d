package utils

import (
	"fmt"
	"strings"
	"unicode/utf16"
)

// EscapeNonASCII replaces every character in the range U+007F and above with
// a \uXXXX escape. Characters outside the Basic Multilingual Plane become a
// UTF-16 surrogate pair of escapes. Applied to a JSON document the result is
// an equivalent, pure-ASCII JSON document.
func EscapeNonASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		switch {
		case r < 0x7f:
			b.WriteRune(r)
		case r > 0xffff:
			hi, lo := utf16.EncodeRune(r)
			fmt.Fprintf(&b, `\u%04x\u%04x`, hi, lo)
		default:
			fmt.Fprintf(&b, `\u%04x`, r)
		}
	}

	return b.String()
}
