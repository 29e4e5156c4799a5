package stegotext

import (
	"errors"
	"fmt"

	"github.com/yyyoichi/stegotext/internal/bitconv"
	"github.com/yyyoichi/stegotext/internal/space"
	"github.com/yyyoichi/stegotext/internal/zerowidth"
)

// Method names a text embedding scheme.
type Method string

const (
	MethodSpace     Method = "Space"
	MethodZeroWidth Method = "Zero-Width"
)

var (
	ErrUnknownMethod  = errors.New("unknown embedding method")
	ErrInvalidMarkers = errors.New("invalid marker runes")
)

// Codec embeds a secret into a cover text and recovers it again.
//
// Embedding never fails: a cover text that is too small only makes the
// artifact grow. Extraction drops a trailing group of fewer than 8 bits and
// every secret rune is reduced to its low byte. Texts must be valid UTF-8;
// invalid bytes are copied as U+FFFD.
type Codec interface {
	Method() Method
	Embed(cover, secret string) string
	Extract(text string) string
	// Capacity is the number of bits cover holds before the codec has to
	// append extra markers.
	Capacity(cover string) int
}

// Methods returns the built-in methods in benchmark order.
func Methods() []Method {
	return []Method{MethodSpace, MethodZeroWidth}
}

// New returns the codec for method.
// Marker runes default to THIN SPACE / NO-BREAK SPACE for MethodSpace and
// ZERO WIDTH NON-JOINER / ZERO WIDTH JOINER for MethodZeroWidth.
func New(method Method, opts ...Option) (Codec, error) {
	var m markers
	switch method {
	case MethodSpace:
		m = markers{method: method, zero: space.ThinSpace, one: space.NoBreakSpace}
	case MethodZeroWidth:
		m = markers{method: method, zero: zerowidth.NonJoiner, one: zerowidth.Joiner}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
	for _, opt := range opts {
		if err := opt(&m); err != nil {
			return nil, err
		}
	}
	if method == MethodSpace {
		return &SpaceCodec{m}, nil
	}
	return &ZeroWidthCodec{m}, nil
}

// Embed hides secret in cover with the default markers of method.
// This is a convenience function that creates a Codec and calls its Embed method.
func Embed(method Method, cover, secret string) (string, error) {
	c, err := New(method)
	if err != nil {
		return "", err
	}
	return c.Embed(cover, secret), nil
}

// Extract recovers a secret hidden with the default markers of method.
// This is a convenience function that creates a Codec and calls its Extract method.
func Extract(method Method, text string) (string, error) {
	c, err := New(method)
	if err != nil {
		return "", err
	}
	return c.Extract(text), nil
}

// Representable reports whether every rune of secret survives the 8-bit
// encoding unchanged.
func Representable(secret string) bool {
	return bitconv.Representable(secret)
}

var _ Codec = (*SpaceCodec)(nil)

// SpaceCodec writes a marker right after each space of the cover text.
type SpaceCodec struct {
	markers
}

func (c *SpaceCodec) Method() Method { return c.method }

func (c *SpaceCodec) Embed(cover, secret string) string {
	return space.Embed(cover, bitconv.StringToBools(secret), c.zero, c.one)
}

func (c *SpaceCodec) Extract(text string) string {
	return bitconv.BoolsToString(space.Extract(text, c.zero, c.one))
}

func (c *SpaceCodec) Capacity(cover string) int { return space.Capacity(cover) }

var _ Codec = (*ZeroWidthCodec)(nil)

// ZeroWidthCodec writes a non-rendering marker between the runes of the cover text.
type ZeroWidthCodec struct {
	markers
}

func (c *ZeroWidthCodec) Method() Method { return c.method }

func (c *ZeroWidthCodec) Embed(cover, secret string) string {
	return zerowidth.Embed(cover, bitconv.StringToBools(secret), c.zero, c.one)
}

func (c *ZeroWidthCodec) Extract(text string) string {
	return bitconv.BoolsToString(zerowidth.Extract(text, c.zero, c.one))
}

func (c *ZeroWidthCodec) Capacity(cover string) int { return zerowidth.Capacity(cover) }

// Strip removes the markers from text, leaving what a reader sees.
func (c *ZeroWidthCodec) Strip(text string) string {
	return zerowidth.Strip(text, c.zero, c.one)
}
