// Package token implements normalization and expansion of raw
// prerequisite tokens into atomic skill identifiers.
package token

import (
	"regexp"
	"strconv"
	"strings"
)

// dashVariants maps typographic dashes to the canonical hyphen-minus.
var dashVariants = strings.NewReplacer(
	"‐", "-", // hyphen
	"‑", "-", // non-breaking hyphen
	"‒", "-", // figure dash
	"–", "-", // en dash
	"—", "-", // em dash
	"−", "-", // minus sign
)

var (
	// rangeRe matches "PREFIX N - M" or "PREFIX N - PREFIX2 M".
	// PREFIX2 is only honored when it equals PREFIX (case-insensitive).
	rangeRe = regexp.MustCompile(`^([A-Za-z]+)\s*(\d+)\s*-\s*(?:([A-Za-z]+)\s*)?(\d+)$`)

	// singleRe matches a bare "PREFIX N" code.
	singleRe = regexp.MustCompile(`^([A-Za-z]+)\s*(\d+)$`)

	// orRe matches the two-way OR wrapper "A (or B)".
	orRe = regexp.MustCompile(`^(.+?)\s*\(\s*(?i:or)\s+(.+?)\s*\)$`)
)

// Normalize collapses whitespace runs to single spaces, maps dash and
// em-dash variants to "-", and trims the result.
func Normalize(raw string) string {
	s := dashVariants.Replace(raw)

	return strings.Join(strings.Fields(s), " ")
}

// IsNone reports whether the token declares "no prerequisite":
// anything beginning with "none", case-insensitively, after normalization.
func IsNone(raw string) bool {
	s := strings.ToLower(Normalize(raw))

	return strings.HasPrefix(s, "none")
}

// SplitOr detects the OR wrapper "A (or B)" and returns both sides,
// normalized. ok is false when the token is not an OR wrapper. Each side
// may itself be a range or a single code; expanding and combining them
// into one alternative group is the caller's responsibility.
func SplitOr(raw string) (left, right string, ok bool) {
	m := orRe.FindStringSubmatch(Normalize(raw))
	if m == nil {
		return "", "", false
	}

	return m[1], m[2], true
}

// Expand converts one raw prerequisite token into zero or more atomic
// skill IDs of the form "PREFIX N". Ranges expand inclusively in the
// direction of the range ("ADT 5-2" walks downward); unrecognized tokens
// expand to nothing and are reported to the OnSkip hook. Expand never
// returns an error: malformed curriculum text is dropped, not fatal.
func Expand(raw string, opts ...Option) []string {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	tok := Normalize(raw)
	if tok == "" {
		return nil
	}
	if IsNone(tok) {
		o.OnSkip(tok, ReasonNone)
		return nil
	}

	// Shape 1: numeric range.
	if m := rangeRe.FindStringSubmatch(tok); m != nil {
		prefix, lo, second, hi := m[1], m[2], m[3], m[4]
		if second != "" && !strings.EqualFold(second, prefix) {
			o.OnSkip(tok, ReasonRangePrefix)
			return nil
		}

		return expandRange(prefix, lo, hi)
	}

	// Shape 2: single code.
	if m := singleRe.FindStringSubmatch(tok); m != nil {
		return []string{code(m[1], m[2])}
	}

	// Anything else is silently dropped.
	o.OnSkip(tok, ReasonShape)

	return nil
}

// expandRange walks from lo to hi inclusive, in either direction.
func expandRange(prefix, lo, hi string) []string {
	from, _ := strconv.Atoi(lo) // digits-only by construction
	to, _ := strconv.Atoi(hi)

	step := 1
	if to < from {
		step = -1
	}
	ids := make([]string, 0, abs(to-from)+1)
	for k := from; ; k += step {
		ids = append(ids, strings.ToUpper(prefix)+" "+strconv.Itoa(k))
		if k == to {
			break
		}
	}

	return ids
}

// code builds the canonical "PREFIX N" identifier, discarding leading
// zeros in the numeric part.
func code(prefix, num string) string {
	n, _ := strconv.Atoi(num) // digits-only by construction

	return strings.ToUpper(prefix) + " " + strconv.Itoa(n)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
