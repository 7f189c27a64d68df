// Package token provides tunable options for prerequisite-token expansion.
package token

// Skip reasons reported to the OnSkip hook.
const (
	// ReasonNone marks a token declaring "no prerequisite".
	ReasonNone = "no prerequisite"

	// ReasonShape marks a token matching no recognized shape.
	ReasonShape = "unrecognized token shape"

	// ReasonRangePrefix marks a range whose second prefix differs from
	// the first ("ADT 2 - COG 5" is not a range).
	ReasonRangePrefix = "range prefix mismatch"
)

// Option configures token expansion via functional arguments.
type Option func(*Options)

// Options holds callbacks customizing expansion. The zero value is usable;
// DefaultOptions fills in no-op hooks.
type Options struct {
	// OnSkip is called once per dropped token with the normalized token
	// text and the skip reason. Expansion never errors; this hook is the
	// diagnostics channel for tests and tooling.
	OnSkip func(token, reason string)
}

// DefaultOptions returns Options with a no-op OnSkip hook.
func DefaultOptions() Options {
	return Options{
		OnSkip: func(string, string) {},
	}
}

// WithOnSkip registers a callback observing every dropped token.
func WithOnSkip(fn func(token, reason string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSkip = fn
		}
	}
}
