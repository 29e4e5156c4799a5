// Package zerowidth hides bits as non-rendering runes between the runes of a text.
package zerowidth

import "strings"

const (
	NonJoiner = '\u200c'
	Joiner    = '\u200d'
)

// Embed writes one marker before every rune except the first until bits run
// out. Bits left over are appended to the end.
func Embed(text string, bits []bool, zero, one rune) string {
	var b strings.Builder
	b.Grow(len(text) + len(bits)*3)
	at := 0
	first := true
	for _, r := range text {
		if !first && at < len(bits) {
			b.WriteRune(marker(bits[at], zero, one))
			at++
		}
		first = false
		b.WriteRune(r)
	}
	for ; at < len(bits); at++ {
		b.WriteRune(marker(bits[at], zero, one))
	}
	return b.String()
}

// Extract collects every marker rune of text in order.
func Extract(text string, zero, one rune) []bool {
	var bits []bool
	for _, r := range text {
		switch r {
		case zero:
			bits = append(bits, false)
		case one:
			bits = append(bits, true)
		}
	}
	return bits
}

// Strip removes every marker rune, leaving the visible text.
func Strip(text string, zero, one rune) string {
	return strings.Map(func(r rune) rune {
		if r == zero || r == one {
			return -1
		}
		return r
	}, text)
}

// Capacity is the number of gaps between the runes of text.
func Capacity(text string) int {
	if n := len([]rune(text)); n > 1 {
		return n - 1
	}
	return 0
}

func marker(bit bool, zero, one rune) rune {
	if bit {
		return one
	}
	return zero
}
