package dedent

import "strconv"

// An ArgumentError reports an invalid option value or a malformed
// format-spec directive.
type ArgumentError struct {
	Arg   string // the argument or directive that was rejected
	Value string // the offending value
}

func (e *ArgumentError) Error() string {
	return "dedent: invalid " + e.Arg + ": " + strconv.Quote(e.Value)
}
