/*
Package dedent removes the common leading-whitespace margin from multiline
text, with support for interpolated values. It is a richer take on the
classic dedent helper: on top of margin removal it smart-strips the boundary
newlines a multiline literal picks up from its source layout, and it can
re-indent multiline interpolated values to match the column they are
inserted at.

The package offers two workflows depending on how values are interpolated:

1. Plain strings and fmt interpolation

For text without values, or text built with fmt, Dedent is the whole API.
Wrap a value with Align to have its continuation lines follow the insertion
column:

	items, _ := dedent.Dedent(`
	    - apples
	    - bananas
	`)
	// items is "- apples\n- bananas"

	list, _ := dedent.Dedent(fmt.Sprintf(`
	    Groceries:
	        %s
	    ---
	`, dedent.Align(items)))
	// Groceries:
	//     - apples
	//     - bananas
	// ---

2. Explicit templates

DedentTemplate takes the literal text and the interpolated values as
separate channels, so value indentation can never distort the margin
computation. Format specs on a value combine an alignment directive with an
fmt verb:

	out, _ := dedent.DedentTemplate(dedent.Template{
	    dedent.Text("\n    Total:\n        "),
	    dedent.Valuef("align:%06d", 42),
	    dedent.Text("\n"),
	})
	// Total:
	//     000042

Both entry points accept the same options. Strip selects what happens at the
boundaries of the result: StripSmart (the default) undoes exactly one
leading and one trailing newline, StripAll trims all surrounding whitespace,
and StripNone leaves the result alone. AlignValues sets the alignment
default for values that carry no explicit align or noalign directive.

The transform is a pure function of its input: it performs no I/O, keeps no
state between calls, and is safe to call from any number of goroutines.
*/
package dedent
