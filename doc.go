// Package satoi is a small, dependency-free home for saturating text to
// integer conversion in the C atoi tradition.
//
// What is in here?
//
//	atoi/ — Atoi, Parse, Cursor: decimal text to int32 with optional sign,
//	        leading whitespace skip and overflow clamping to
//	        math.MinInt32 / math.MaxInt32.
//
// Why?
//
//   - strconv.ParseInt rejects "42 apples" and "  +7"; C code and many wire
//     formats expect atoi to take the numeric prefix and move on.
//   - Atoi is total: no error return, no panic, malformed input yields 0.
//   - Parse reports where the scan stopped, so callers can keep reading the
//     rest of the input.
//
// Quick example:
//
//	atoi.Atoi("   -42 with words") // -42
//	atoi.Atoi("91283472332")       // 2147483647
//
//	go get github.com/katalvlaran/satoi/atoi
package satoi
