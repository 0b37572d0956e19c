package linkex

import (
	"slices"
	"strings"
)

// NaturalCompare compares two strings the way a person would order them:
// runs of digits are compared by numeric value, everything else
// case-insensitively. It returns -1, 0 or +1.
//
// Digit runs are compared without converting to a machine integer, so runs of
// any length are ordered exactly. Leading zeros do not count: "007" equals "7".
func NaturalCompare(a, b string) int {
	at := naturalTokens(a)
	bt := naturalTokens(b)

	n := min(len(at), len(bt))
	for i := 0; i < n; i++ {
		var c int
		if isDigits(at[i]) && isDigits(bt[i]) {
			c = compareDigits(at[i], bt[i])
		} else {
			c = strings.Compare(strings.ToLower(at[i]), strings.ToLower(bt[i]))
		}
		if c != 0 {
			return c
		}
	}

	// Shorter token sequence sorts first
	switch {
	case len(at) < len(bt):
		return -1
	case len(at) > len(bt):
		return 1
	}
	return 0
}

// NaturalLess reports whether a sorts before b in natural order.
func NaturalLess(a, b string) bool {
	return NaturalCompare(a, b) < 0
}

// SortNatural sorts s in place in natural order.
// The sort is stable: strings that compare equal keep their relative order.
func SortNatural(s []string) {
	slices.SortStableFunc(s, NaturalCompare)
}

// naturalTokens splits s into alternating maximal runs of ASCII digits and
// non-digits, e.g. "ch10a" → ["ch", "10", "a"].
func naturalTokens(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string
	start := 0
	digit := isDigit(s[0])
	for i := 1; i < len(s); i++ {
		if d := isDigit(s[i]); d != digit {
			tokens = append(tokens, s[start:i])
			start = i
			digit = d
		}
	}
	return append(tokens, s[start:])
}

// compareDigits compares two all-digit strings by numeric value.
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")

	// More significant digits means a larger number
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

func isDigits(s string) bool {
	// Tokens are never empty, so checking the first byte is enough.
	return s != "" && isDigit(s[0])
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
