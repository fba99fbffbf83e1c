package legendfmt

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// mathDelim toggles inline TeX math regions.
const mathDelim = "$"

// texCommand matches a backslash-prefixed command name inside a math region.
var texCommand = regexp.MustCompile(`\\[a-zA-Z]+`)

// Width returns the display width of s in a monospaced layout, treating
// $-delimited regions as inline TeX math. Plain text counts its display
// columns; inside math regions braces vanish, ^ and _ take no width, and
// each \command renders as a single symbol, so
//
//	Width(`A + $ \chi^{2} $ + B`) == 10
//	Width(`$ \chi^{2} $`) == 2
//
// The $ delimiters themselves never count. An odd number of delimiters
// is not rejected; the trailing segment is measured as-is.
func Width(s string) int {
	n := 0
	for i, seg := range strings.Split(s, mathDelim) {
		if i%2 == 1 {
			seg = normalizeMath(seg)
		}
		n += runewidth.StringWidth(seg)
	}
	return n
}

// normalizeMath reduces a math segment to the glyphs it renders.
// Order matters: braces and spaces are dropped first, then ^ and _
// become spaces so they survive the command collapse, then each
// \command becomes one placeholder glyph, then spaces are dropped.
func normalizeMath(seg string) string {
	seg = strings.Map(func(r rune) rune {
		switch r {
		case '{', '}', ' ':
			return -1
		}
		return r
	}, seg)
	seg = strings.NewReplacer("^", " ", "_", " ").Replace(seg)
	seg = texCommand.ReplaceAllString(seg, "_")
	return strings.ReplaceAll(seg, " ", "")
}
