package parser

import "github.com/smykla-skalski/packetguard/pkg/stringutil"

// trimText strips leading and trailing whitespace, including a byte order
// mark and Unicode line/paragraph separators. U+0085 is not whitespace.
func trimText(s string) string {
	return stringutil.Trim(s)
}
