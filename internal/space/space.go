// Package space hides bits right after the literal spaces of a text.
package space

import "strings"

const (
	Space        = ' '
	ThinSpace    = '\u2009'
	NoBreakSpace = '\u00a0'
)

// Embed copies text and writes one marker after every space until bits run out.
// Bits left over are appended as space + marker pairs.
func Embed(text string, bits []bool, zero, one rune) string {
	var b strings.Builder
	b.Grow(len(text) + len(bits)*3)
	at := 0
	for _, r := range text {
		b.WriteRune(r)
		if r == Space && at < len(bits) {
			b.WriteRune(marker(bits[at], zero, one))
			at++
		}
	}
	for ; at < len(bits); at++ {
		b.WriteRune(Space)
		b.WriteRune(marker(bits[at], zero, one))
	}
	return b.String()
}

// Extract reads the marker bits that immediately follow a space.
func Extract(text string, zero, one rune) []bool {
	var (
		bits  []bool
		armed bool
	)
	for _, r := range text {
		switch {
		case r == Space:
			armed = true
		case armed && r == zero:
			bits = append(bits, false)
			armed = false
		case armed && r == one:
			bits = append(bits, true)
			armed = false
		default:
			armed = false
		}
	}
	return bits
}

// Capacity is the number of bits text carries without appended pairs.
func Capacity(text string) int {
	return strings.Count(text, string(Space))
}

func marker(bit bool, zero, one rune) rune {
	if bit {
		return one
	}
	return zero
}
