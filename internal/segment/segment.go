// Package segment splits template input into an ordered stream of literal
// text and interpolated values, the representation the rest of the pipeline
// operates on.
package segment

import (
	"fmt"
	"strings"
)

// Align is the per-value alignment resolution carried by an interpolation
// element.
type Align int

const (
	// AlignUnset falls back to the invocation-level default.
	AlignUnset Align = iota
	// AlignOn forces alignment for this value.
	AlignOn
	// AlignOff disables alignment for this value.
	AlignOff
)

// Element is one item of the segmented template: either a chunk of literal
// text or a fully formatted interpolated value.
type Element struct {
	Literal bool
	Text    string
	Align   Align // meaningful for interpolations only
}

// Resolved reports whether alignment applies to this element given the
// invocation-level default.
func (e Element) Resolved(alignDefault bool) bool {
	switch e.Align {
	case AlignOn:
		return true
	case AlignOff:
		return false
	}
	return alignDefault
}

// ParseSpec splits a raw format spec into its alignment directive and the
// remaining fmt verb string. Segments are colon-separated; "align" and
// "noalign" segments are directives, with the last one winning, and all other
// segments are rejoined into the verb. A non-empty verb must contain an fmt
// conversion ('%'); anything else is a malformed directive.
func ParseSpec(spec string) (verb string, align Align, err error) {
	if spec == "" {
		return "", AlignUnset, nil
	}

	var rest []string
	for _, part := range strings.Split(spec, ":") {
		switch part {
		case "align":
			align = AlignOn
		case "noalign":
			align = AlignOff
		default:
			rest = append(rest, part)
		}
	}

	verb = strings.Join(rest, ":")
	if verb != "" && !strings.ContainsRune(verb, '%') {
		return "", AlignUnset, fmt.Errorf("format spec %q has no directive or verb", spec)
	}
	return verb, align, nil
}

// Alignment marker framing. A marked region reads
//
//	\x00DEDENT_ALIGN_START:<id>\x00<text>\x00DEDENT_ALIGN_END:<id>\x00
//
// where <id> is 32 lowercase hex characters unique to one wrapped value.
const (
	markerStart = "\x00DEDENT_ALIGN_START:"
	markerEnd   = "\x00DEDENT_ALIGN_END:"
	markerSep   = "\x00"

	markerIDLen = 32
)

// Mark frames text with alignment markers under the given id.
func Mark(id, text string) string {
	return markerStart + id + markerSep + text + markerEnd + id + markerSep
}

// Scan splits text into literal elements and force-aligned interpolation
// elements at well-formed marker boundaries. Text containing no markers, or
// markers that are unterminated or carry an invalid id, is returned as
// literal text unchanged. Empty input yields a single empty literal.
func Scan(text string) []Element {
	var elems []Element
	pos := 0    // start of pending literal text
	search := 0 // scan cursor, may be ahead of pos after a false start
	for {
		i := strings.Index(text[search:], markerStart)
		if i < 0 {
			break
		}
		i += search

		rest := text[i+len(markerStart):]
		if len(rest) <= markerIDLen || !isMarkerID(rest[:markerIDLen]) || rest[markerIDLen:markerIDLen+1] != markerSep {
			search = i + 1
			continue
		}
		id := rest[:markerIDLen]
		body := rest[markerIDLen+1:]

		closing := markerEnd + id + markerSep
		end := strings.Index(body, closing)
		if end < 0 {
			search = i + 1
			continue
		}

		if i > pos {
			elems = append(elems, Element{Literal: true, Text: text[pos:i]})
		}
		elems = append(elems, Element{Text: body[:end], Align: AlignOn})

		pos = i + len(markerStart) + markerIDLen + 1 + end + len(closing)
		search = pos
	}

	if len(elems) == 0 || pos < len(text) {
		elems = append(elems, Element{Literal: true, Text: text[pos:]})
	}
	return elems
}

func isMarkerID(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
