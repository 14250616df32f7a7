package indent

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMargin(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "empty", input: "", expected: 0},
		{name: "all blank", input: "  \n \n", expected: 0},
		{name: "shared spaces", input: "  a\n   b", expected: 2},
		{name: "shared tab", input: "\ta\n\tb", expected: 1},
		{name: "flush-left line", input: "  a\nb", expected: 0},
		{name: "mixed tab and space prefix", input: "\t  a\n\t b", expected: 2},
		{name: "blank line excluded", input: "  a\n\n    b", expected: 2},
		{name: "wide blank line excluded", input: "  a\n          \n  b", expected: 2},
		{name: "no indentation", input: "no\nindent", expected: 0},
		{name: "single line", input: "    only", expected: 4},
		{name: "width is counted in runes", input: "  a\n  b", expected: 2},
		{name: "tab does not match space", input: "\ta\n b", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Margin(tt.input))
		})
	}
}

func TestSmart(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "one newline per side", input: "\nhello!\n", expected: "hello!"},
		{name: "no boundary whitespace", input: "hello", expected: "hello"},
		{name: "horizontal whitespace at both ends", input: "  hello  ", expected: "hello"},
		{name: "second blank line survives", input: "\n\nx\n\n", expected: "\nx\n"},
		{name: "whitespace around the boundary newlines", input: "  \nx\n  ", expected: "x"},
		{name: "interior blank lines untouched", input: "\na\n\nb\n", expected: "a\n\nb"},
		{name: "trailing space before the newline stays", input: "x  \n", expected: "x  "},
		{name: "empty", input: "", expected: ""},
		{name: "lone newline", input: "\n", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Smart(tt.input))
		})
	}
}
