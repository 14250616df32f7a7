package dedent

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/KimNorgaard/go-dedent/internal/segment"
)

// Aligned wraps a value so that, once the surrounding string is passed to
// Dedent, the value's continuation lines are re-indented to its insertion
// column. The wrapper renders as its value framed by invisible markers that
// Dedent detects and removes.
//
// Aligned implements fmt.Formatter, so verbs, flags, width and precision
// applied to the wrapper pass through to the wrapped value:
//
//	fmt.Sprintf("%q", Align("hi"))    // aligns the quoted form
//	fmt.Sprintf("%06d", Align(42))    // aligns "000042"
type Aligned struct {
	value any
	id    string
}

// Align marks a value for indentation alignment inside a later Dedent call.
// Use it where the value is interpolated with fmt rather than carried in a
// Template:
//
//	items, _ := dedent.Dedent(`
//	    - apples
//	    - bananas
//	`)
//	list, _ := dedent.Dedent(fmt.Sprintf(`
//	    Groceries:
//	        %s
//	    ---
//	`, dedent.Align(items)))
//	// Groceries:
//	//     - apples
//	//     - bananas
//	// ---
func Align(v any) Aligned {
	u := uuid.New()
	return Aligned{value: v, id: hex.EncodeToString(u[:])}
}

// String implements fmt.Stringer.
func (a Aligned) String() string {
	return segment.Mark(a.id, fmt.Sprint(a.value))
}

// Format implements fmt.Formatter, reapplying the caller's verb, flags,
// width and precision to the wrapped value before framing it with markers.
func (a Aligned) Format(f fmt.State, verb rune) {
	var spec strings.Builder
	spec.WriteByte('%')
	for _, flag := range "-+ #0" {
		if f.Flag(int(flag)) {
			spec.WriteRune(flag)
		}
	}
	if w, ok := f.Width(); ok {
		spec.WriteString(strconv.Itoa(w))
	}
	if p, ok := f.Precision(); ok {
		spec.WriteByte('.')
		spec.WriteString(strconv.Itoa(p))
	}
	spec.WriteRune(verb)

	io.WriteString(f, segment.Mark(a.id, fmt.Sprintf(spec.String(), a.value))) //nolint:errcheck
}
