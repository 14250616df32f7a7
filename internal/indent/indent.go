// Package indent implements the whitespace measurements and strip policies
// behind dedenting: margin detection over literal text and the smart
// boundary strip.
package indent

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Margin returns the width, in runes, of the longest common leading-whitespace
// prefix shared by all non-blank lines of text. Blank lines (empty or
// whitespace-only) are excluded from the computation. Tabs and spaces are not
// normalized against each other; prefixes are compared rune by rune. If every
// line is blank the margin is 0.
func Margin(text string) int {
	common := ""
	seen := false
	for line := range strings.SplitSeq(text, "\n") {
		prefix := leadingWhitespace(line)
		if len(prefix) == len(line) {
			// Blank lines carry no margin requirement.
			continue
		}
		if !seen {
			common, seen = prefix, true
		} else {
			common = commonPrefix(common, prefix)
		}
		if common == "" {
			return 0
		}
	}
	return utf8.RuneCountInString(common)
}

func leadingWhitespace(line string) string {
	end := len(line)
	for i, r := range line {
		if !unicode.IsSpace(r) {
			end = i
			break
		}
	}
	return line[:end]
}

func commonPrefix(a, b string) string {
	i := 0
	for i < len(a) && i < len(b) {
		ra, na := utf8.DecodeRuneInString(a[i:])
		rb, _ := utf8.DecodeRuneInString(b[i:])
		if ra != rb {
			break
		}
		i += na
	}
	return a[:i]
}

// Smart removes one leading run of horizontal whitespace followed by at most
// one newline, and symmetrically one trailing newline together with any
// horizontal whitespace after it. Interior blank lines and any further
// boundary blank lines are left alone: the strip undoes exactly the
// artificial newlines introduced by writing a literal across source lines.
func Smart(s string) string {
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == '\n' {
			i += size
			break
		}
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	s = s[i:]

	j := len(s)
	for j > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:j])
		if r == '\n' {
			j -= size
			break
		}
		if !unicode.IsSpace(r) {
			break
		}
		j -= size
	}
	return s[:j]
}
