package bitconv

import "github.com/yyyoichi/bitstream-go"

// StringToBools converts every rune of s into an 8-bit group, most significant
// bit first. Runes above 0xFF keep only their low byte.
func StringToBools(s string) []bool {
	bits := make([]bool, 0, len(s)*8)
	for _, r := range s {
		b := uint8(r)
		for i := 7; i >= 0; i-- {
			bits = append(bits, ((b>>uint(i))&1) == 1)
		}
	}
	return bits
}

// BoolsToString decodes consecutive 8-bit groups back into runes in 0x00..0xFF.
// A trailing group shorter than 8 bits is dropped.
func BoolsToString(bits []bool) string {
	n := len(bits) / 8
	if n == 0 {
		return ""
	}
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, v := range bits[:n*8] {
		w.WriteBool(v)
	}
	r := bitstream.NewBitReader(w.Data(), 0, 0)
	r.SetBits(n * 8)

	out := make([]rune, n)
	for i := range out {
		out[i] = rune(r.Read8R(8, i))
	}
	return string(out)
}

// Representable reports whether every rune of s fits in a single 8-bit group.
func Representable(s string) bool {
	for _, r := range s {
		if r > 0xFF {
			return false
		}
	}
	return true
}
