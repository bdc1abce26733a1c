// Package atoi provides tunable options, results and error definitions
// for saturating int32 parsing.
package atoi

import (
	"errors"
	"fmt"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("atoi: invalid option supplied")

// WhitespaceMode selects which code points are skipped before the sign.
//
//   - ASCIISpace:   space, '\t', '\n', '\r', '\v', '\f' only.
//   - UnicodeSpace: anything unicode.IsSpace accepts (adds U+0085, U+00A0,
//     and the Unicode space separators).
type WhitespaceMode int

const (
	// ASCIISpace skips the six C isspace characters.
	ASCIISpace WhitespaceMode = iota

	// UnicodeSpace skips every code point unicode.IsSpace reports.
	UnicodeSpace
)

// String implements fmt.Stringer.
func (m WhitespaceMode) String() string {
	switch m {
	case ASCIISpace:
		return "ASCIISpace"
	case UnicodeSpace:
		return "UnicodeSpace"
	default:
		return fmt.Sprintf("WhitespaceMode(%d)", int(m))
	}
}

// Option configures Parse via functional arguments.
// If an Option is invalid it is recorded internally and surfaced
// as ErrOptionViolation when Parse is invoked.
type Option func(*Options)

// Options holds the parameters of a single Parse call.
type Options struct {
	// Whitespace picks the leading-whitespace classification.
	Whitespace WhitespaceMode

	// DigitLimit, if > 0, stops accumulation after that many digits.
	// A value of 0 disables the limit.
	DigitLimit int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the atoi defaults:
//   - ASCII whitespace
//   - no digit limit
func DefaultOptions() Options {
	return Options{
		Whitespace: ASCIISpace,
		DigitLimit: 0,
	}
}

// WithWhitespace sets the whitespace classification.
// Modes other than ASCIISpace and UnicodeSpace yield ErrOptionViolation.
func WithWhitespace(mode WhitespaceMode) Option {
	return func(o *Options) {
		switch mode {
		case ASCIISpace, UnicodeSpace:
			o.Whitespace = mode
		default:
			o.err = fmt.Errorf("%w: unknown whitespace mode %v", ErrOptionViolation, mode)
		}
	}
}

// WithDigitLimit caps the number of digits consumed.
//
//	n > 0:  stop after n digits
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithDigitLimit(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: DigitLimit cannot be negative (%d)", ErrOptionViolation, n)
		default:
			o.DigitLimit = n
		}
	}
}

// Result describes one Parse run.
//   - Value: the parsed (possibly saturated) integer.
//   - Sign: +1 or -1.
//   - Digits: digits consumed, including one that triggered saturation.
//   - Consumed: byte offset where scanning stopped.
//   - Saturated: the accumulator left the int32 range and Value was clamped.
type Result struct {
	Value     int32
	Sign      int32
	Digits    int
	Consumed  int
	Saturated bool
}

// Rest returns the part of s that Parse never consumed.
// s must be the string the Result was produced from.
func (r Result) Rest(s string) string {
	if r.Consumed >= len(s) {
		return ""
	}

	return s[r.Consumed:]
}
