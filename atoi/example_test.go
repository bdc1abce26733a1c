package atoi_test

import (
	"fmt"

	"github.com/katalvlaran/satoi/atoi"
)

// ExampleAtoi shows the atoi contract on everyday inputs.
func ExampleAtoi() {
	for _, s := range []string{"42", "   -42", "4193 with words", "words and 987", "+-12", "91283472332"} {
		fmt.Printf("%q -> %d\n", s, atoi.Atoi(s))
	}
	// Output:
	// "42" -> 42
	// "   -42" -> -42
	// "4193 with words" -> 4193
	// "words and 987" -> 0
	// "+-12" -> 0
	// "91283472332" -> 2147483647
}

// ////////////////////////////////////////////////////////////////////////////
// ExampleParse
// ////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Split a compact timestamp "20261016T0930" into fields. Each field is a
//	fixed-width run of digits, so WithDigitLimit stops the scan at the field
//	boundary and Rest hands back the remainder for the next call.
func ExampleParse() {
	s := "20261016T0930"
	widths := []int{4, 2, 2}

	for _, w := range widths {
		res, err := atoi.Parse(s, atoi.WithDigitLimit(w))
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Println(res.Value)
		s = res.Rest(s)
	}
	fmt.Printf("rest=%q\n", s)
	// Output:
	// 2026
	// 10
	// 16
	// rest="T0930"
}

// ExampleParse_saturation reports where an overflowing scan stopped.
func ExampleParse_saturation() {
	in := "-99999999999 tail"
	res, _ := atoi.Parse(in)
	fmt.Println(res.Value, res.Saturated, res.Digits)
	fmt.Printf("%q\n", res.Rest(in))
	// Output:
	// -2147483648 true 10
	// "9 tail"
}

// ExampleWithWhitespace parses after a NO-BREAK SPACE.
func ExampleWithWhitespace() {
	in := "\u00a077"
	fmt.Println(atoi.Atoi(in))

	res, _ := atoi.Parse(in, atoi.WithWhitespace(atoi.UnicodeSpace))
	fmt.Println(res.Value)
	// Output:
	// 0
	// 77
}
