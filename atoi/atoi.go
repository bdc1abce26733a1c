package atoi

import (
	"math"
	"unicode"
)

// Atoi: saturating decimal to int32
//
// Algorithm Outline:
//  1. Skip leading whitespace (ASCII set).
//  2. Peek one rune: '+' or '-' is consumed and sets the sign.
//  3. While the next rune is '0'..'9': consume it, acc = acc*10 + digit
//     in int64. If acc > MaxInt32, return MaxInt32 (sign +1) or
//     MinInt32 (sign -1) right away.
//  4. Return sign * acc.
//
// Anything else ends the scan without being consumed, so "12abc34" is 12
// and "+-12" is 0. Empty, blank, and sign-only input all give 0.
//
// Complexity: O(len(s)) time, O(1) memory.
func Atoi(s string) int32 {
	opts := DefaultOptions()

	return scan(s, &opts).Value
}

// Parse runs the same scan as Atoi under the given options and reports
// where it stopped. The only error is ErrOptionViolation; on error the
// Result is the zero value.
//
// Example:
//
//	res, err := Parse("  -0042 left", WithDigitLimit(3))
//	// res.Value == -4, res.Rest(...) == "2 left"
func Parse(s string, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	return scan(s, &o), nil
}

// scan implements the three phases over a Cursor.
func scan(s string, o *Options) Result {
	c := Cursor{s: s}
	isSpace := isASCIISpace
	if o.Whitespace == UnicodeSpace {
		isSpace = unicode.IsSpace
	}

	// Phase 1: whitespace
	for {
		r, ok := c.Peek()
		if !ok || !isSpace(r) {
			break
		}
		c.Next()
	}

	// Phase 2: optional sign
	res := Result{Sign: 1}
	if r, ok := c.Peek(); ok && (r == '+' || r == '-') {
		if r == '-' {
			res.Sign = -1
		}
		c.Next()
	}

	// Phase 3: digits, widened to int64 so overflow is seen before it wraps
	var acc int64
	for o.DigitLimit == 0 || res.Digits < o.DigitLimit {
		r, ok := c.Peek()
		if !ok || r < '0' || r > '9' {
			break
		}
		c.Next()
		res.Digits++

		acc = acc*10 + int64(r-'0')
		if acc > math.MaxInt32 {
			res.Saturated = true
			res.Consumed = c.Offset()
			if res.Sign > 0 {
				res.Value = math.MaxInt32
			} else {
				res.Value = math.MinInt32
			}

			return res
		}
	}

	res.Consumed = c.Offset()
	res.Value = res.Sign * int32(acc)

	return res
}

// isASCIISpace reports whether r is one of the C isspace characters.
func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}

	return false
}
