package domain

import (
	"strings"
	"unicode/utf8"
)

// SafeFileName reports whether s can be used as a single path element:
// valid UTF-8, not "." or "..", and free of separators and NUL.
func SafeFileName(s string) bool {
	return s != "" && s != "." && s != ".." &&
		utf8.ValidString(s) &&
		!strings.ContainsAny(s, `/\`+"\x00")
}
