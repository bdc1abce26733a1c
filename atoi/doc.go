// Package atoi converts decimal text into a signed 32-bit integer using the
// classic C atoi/strtol contract, with overflow saturation instead of
// undefined behavior.
//
// What
//
//   - Skip leading whitespace (ASCII set by default).
//   - Honor at most one leading '+' or '-'.
//   - Accumulate ASCII digits until the first non-digit or end of input.
//   - Clamp to math.MaxInt32 / math.MinInt32 the moment the accumulator
//     would leave the int32 range; nothing after that digit is inspected.
//
// Why
//
//   - Atoi is total: every input yields an int32, malformed text yields 0.
//   - Parse exposes the same scan with a Result describing where it stopped,
//     whether it saturated and how many digits it took.
//
// Cursor
//
//	All scanning goes through Cursor, a forward-only reader with one rune of
//	lookahead (Peek) distinct from consumption (Next). It never rewinds, so
//	Result.Consumed is exactly the prefix the parser looked past.
//
// Complexity (N = len(s) in bytes)
//
//   - Time:   O(N), at most one inspection per rune.
//   - Memory: O(1), no allocations.
//
// Usage
//
//	n := atoi.Atoi("  -42 apples") // -42
//
//	res, err := atoi.Parse("\u00a017kg",
//	    atoi.WithWhitespace(atoi.UnicodeSpace),
//	    atoi.WithDigitLimit(4),
//	)
//	if err != nil {
//	    // only ErrOptionViolation is possible
//	}
//	fmt.Println(res.Value, res.Rest("\u00a017kg")) // 17 kg
//
// Options
//
//   - DefaultOptions():        ASCII whitespace, no digit limit.
//   - WithWhitespace(mode):    ASCIISpace or UnicodeSpace.
//   - WithDigitLimit(n):       stop after n digits (n>0); 0 means unlimited.
//
// Errors
//
//   - ErrOptionViolation  if an Option is invalid (unknown whitespace mode,
//     negative digit limit). Parsing itself never fails.
//
// Safe for concurrent use: no state is shared between calls.
package atoi
