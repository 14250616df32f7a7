package dedent

// StripMode selects the whitespace-trimming policy applied to the assembled
// result.
type StripMode string

const (
	// StripSmart removes one boundary newline on each side, undoing the
	// artificial newlines introduced by writing a literal across multiple
	// source lines. This is the default.
	StripSmart StripMode = "smart"
	// StripAll removes all leading and trailing whitespace.
	StripAll StripMode = "all"
	// StripNone leaves the result unchanged.
	StripNone StripMode = "none"
)

type options struct {
	strip StripMode
	align bool
}

// Option configures a single Dedent or DedentTemplate call.
type Option func(*options) error

// Strip returns an Option that sets the whitespace-trimming policy.
// The mode must be one of StripSmart, StripAll or StripNone.
func Strip(mode StripMode) Option {
	return func(o *options) error {
		switch mode {
		case StripSmart, StripAll, StripNone:
			o.strip = mode
			return nil
		default:
			return &ArgumentError{Arg: "strip mode", Value: string(mode)}
		}
	}
}

// AlignValues returns an Option that sets the invocation-level alignment
// default for interpolated values carrying no explicit align or noalign
// directive. Alignment is off by default.
func AlignValues(enabled bool) Option {
	return func(o *options) error {
		o.align = enabled
		return nil
	}
}

func newOptions(opts []Option) (*options, error) {
	o := options{strip: StripSmart}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}
	return &o, nil
}
