package dedent

import (
	"strings"

	"github.com/KimNorgaard/go-dedent/internal/assemble"
	"github.com/KimNorgaard/go-dedent/internal/indent"
	"github.com/KimNorgaard/go-dedent/internal/segment"
)

// Dedent removes the common leading-whitespace margin from every line of
// text, preserving relative indentation, and applies the configured strip
// policy to the result. Values wrapped with Align before interpolation are
// detected and re-indented to their insertion column.
//
// The margin is the longest common leading-whitespace prefix across all
// non-blank lines; blank lines neither contribute to it nor are required to
// carry it.
func Dedent(text string, opts ...Option) (string, error) {
	o, err := newOptions(opts)
	if err != nil {
		return "", err
	}
	return process(segment.Scan(text), o), nil
}

// DedentTemplate dedents an explicit literal/interpolation sequence. Only
// the literal parts are scanned for the margin, so the indentation of
// interpolated values never pollutes it. Alignment of each value is resolved
// from its format-spec directive, falling back to the AlignValues default.
func DedentTemplate(tmpl Template, opts ...Option) (string, error) {
	o, err := newOptions(opts)
	if err != nil {
		return "", err
	}
	elems, err := tmpl.segments()
	if err != nil {
		return "", err
	}
	return process(elems, o), nil
}

func process(elems []segment.Element, o *options) string {
	var lit strings.Builder
	for _, el := range elems {
		if el.Literal {
			lit.WriteString(el.Text)
		}
	}
	margin := indent.Margin(lit.String())

	out := assemble.Assemble(elems, margin, o.align)

	switch o.strip {
	case StripAll:
		return strings.TrimSpace(out)
	case StripNone:
		return out
	default:
		return indent.Smart(out)
	}
}
