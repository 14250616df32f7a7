package dedent

import (
	"fmt"

	"github.com/KimNorgaard/go-dedent/internal/segment"
)

// Template is an ordered sequence of literal text and interpolated values,
// the two-channel representation consumed by DedentTemplate. Literal parts
// alone determine the indentation margin; interpolated values never
// contribute to it.
type Template []Part

// Part is one element of a Template, built with Text, Value or Valuef.
type Part struct {
	text   string
	value  any
	spec   string
	interp bool
}

// Text returns a literal text part.
func Text(s string) Part {
	return Part{text: s}
}

// Value returns an interpolation part carrying v with no format spec. The
// value is rendered with fmt.Sprint at assembly time.
func Value(v any) Part {
	return Part{value: v, interp: true}
}

// Valuef returns an interpolation part whose format spec controls alignment
// and rendering. The spec is a colon-separated sequence of the directives
// "align" and "noalign" and at most one fmt verb string:
//
//	Valuef("align", items)        force alignment
//	Valuef("noalign", items)      force alignment off
//	Valuef("align:%06d", n)       align, rendered with fmt.Sprintf("%06d", n)
//	Valuef("%.2f", price)         no directive, rendered with the verb
//
// A malformed spec surfaces as an *ArgumentError from DedentTemplate.
func Valuef(spec string, v any) Part {
	return Part{value: v, spec: spec, interp: true}
}

// segments renders every part into the element stream the core pipeline
// consumes, resolving format-spec directives and unwrapping Aligned values.
func (t Template) segments() ([]segment.Element, error) {
	elems := make([]segment.Element, 0, len(t))
	for _, p := range t {
		if !p.interp {
			elems = append(elems, segment.Element{Literal: true, Text: p.text})
			continue
		}

		verb, align, err := segment.ParseSpec(p.spec)
		if err != nil {
			return nil, &ArgumentError{Arg: "format spec", Value: p.spec}
		}

		v := p.value
		if a, ok := v.(Aligned); ok {
			v = a.value
			if align == segment.AlignUnset {
				align = segment.AlignOn
			}
		}

		var text string
		if verb == "" {
			text = fmt.Sprint(v)
		} else {
			text = fmt.Sprintf(verb, v)
		}
		elems = append(elems, segment.Element{Text: text, Align: align})
	}
	if len(elems) == 0 {
		elems = append(elems, segment.Element{Literal: true})
	}
	return elems, nil
}
