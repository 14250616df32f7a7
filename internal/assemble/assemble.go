// Package assemble joins a segmented template back into a single string,
// removing the detected margin from literal lines and realigning multiline
// interpolated values to their insertion column.
package assemble

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/KimNorgaard/go-dedent/internal/segment"
)

type assembler struct {
	out strings.Builder

	margin int
	col    int // runes emitted since the last line break
	cut    int // margin runes still to remove on the current literal line
}

// Assemble walks the element stream in order, emitting dedented literal text
// and interpolated values. The output column is tracked across chunk
// boundaries so a value following a partial literal line aligns to the
// correct column. Margin removal applies only to literal characters; line
// starts are positions in the literal stream, so newlines inside values do
// not open a new margin cut.
func Assemble(elems []segment.Element, margin int, alignDefault bool) string {
	a := assembler{margin: margin, cut: margin}
	for _, el := range elems {
		if el.Literal {
			a.literal(el.Text)
		} else {
			a.value(el.Text, el.Resolved(alignDefault))
		}
	}
	return a.out.String()
}

func (a *assembler) literal(text string) {
	for text != "" {
		if a.cut > 0 {
			r, size := utf8.DecodeRuneInString(text)
			if r != '\n' && unicode.IsSpace(r) {
				text = text[size:]
				a.cut--
				continue
			}
			// Blank line shorter than the margin, or a line boundary:
			// nothing more to remove here.
			a.cut = 0
		}

		nl := strings.IndexByte(text, '\n')
		if nl < 0 {
			a.out.WriteString(text)
			a.col += utf8.RuneCountInString(text)
			return
		}
		a.out.WriteString(text[:nl+1])
		a.col = 0
		a.cut = a.margin
		text = text[nl+1:]
	}
}

func (a *assembler) value(text string, aligned bool) {
	if aligned && strings.ContainsRune(text, '\n') {
		text = alignTo(text, a.col)
	}
	a.out.WriteString(text)
	if i := strings.LastIndexByte(text, '\n'); i >= 0 {
		a.col = utf8.RuneCountInString(text[i+1:])
	} else {
		a.col += utf8.RuneCountInString(text)
	}
}

// alignTo enforces an absolute column on a multiline value: the first line is
// left as evaluated, every subsequent line has its own leading whitespace
// replaced with col spaces.
func alignTo(text string, col int) string {
	pad := strings.Repeat(" ", col)
	lines := strings.Split(text, "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = pad + strings.TrimLeftFunc(lines[i], unicode.IsSpace)
	}
	return strings.Join(lines, "\n")
}
