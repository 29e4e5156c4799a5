package stegotext

import (
	"fmt"
	"unicode"
)

type Option func(*markers) error

type markers struct {
	method    Method
	zero, one rune
}

// WithMarkers replaces the runes that encode bit 0 and bit 1.
// The runes must differ. MethodSpace takes space separators (Zs) other than a
// plain space, because the space itself announces the next marker.
// MethodZeroWidth takes format characters (Cf) so the artifact reads like the
// cover text.
func WithMarkers(zero, one rune) Option {
	return func(m *markers) error {
		if zero == one {
			return fmt.Errorf("%w: bit 0 and bit 1 share %U", ErrInvalidMarkers, zero)
		}
		for _, r := range []rune{zero, one} {
			switch m.method {
			case MethodSpace:
				if r == ' ' || !unicode.Is(unicode.Zs, r) {
					return fmt.Errorf("%w: space method needs a space separator other than U+0020, got %U", ErrInvalidMarkers, r)
				}
			case MethodZeroWidth:
				if !unicode.Is(unicode.Cf, r) {
					return fmt.Errorf("%w: zero-width method needs an invisible format character, got %U", ErrInvalidMarkers, r)
				}
			}
		}
		m.zero, m.one = zero, one
		return nil
	}
}
