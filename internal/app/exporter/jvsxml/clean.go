package jvsxml

import (
	"regexp"
	"strings"
)

// placeMarkerRe matches math-style place variables such as $x_1$, $x_{12}$ or $n3$.
var placeMarkerRe = regexp.MustCompile(`\$[a-z]_?\{?(\d+)\}?\$`)

// RewritePlaces replaces math-style place variables with the plain "xN"
// form. Already rewritten text is left unchanged.
func RewritePlaces(s string) string {
	return placeMarkerRe.ReplaceAllString(s, "x$1")
}

// SplitNotes splits notes into lines and trims each one.
func SplitNotes(s string) []string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return lines
}
