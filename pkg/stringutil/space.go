// Package stringutil holds text helpers shared by the hook stages.
//
// Whitespace here follows the ECMAScript definition (WhiteSpace plus
// LineTerminator), which is what the host-side tooling uses: ASCII tab, LF,
// VT, FF, CR, every Unicode Zs character, U+2028, U+2029 and U+FEFF. It is
// neither RE2's `\s` (ASCII only) nor unicode.IsSpace (which adds U+0085).
package stringutil

import (
	"strings"
	"unicode"
)

// SpaceClass is a regexp character class matching exactly the runes for
// which IsSpace is true.
const SpaceClass = `[\t\n\x{0B}\f\r\p{Zs}\x{2028}\x{2029}\x{FEFF}]`

// IsSpace reports whether r is whitespace.
func IsSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\uFEFF':
		return true
	}

	return unicode.Is(unicode.Zs, r)
}

// Trim strips leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimFunc(s, IsSpace)
}
