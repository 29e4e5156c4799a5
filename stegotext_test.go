package stegotext

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var covers = []string{
	"",
	"x",
	"ab cd",
	"This is a short text.",
	"Это короткий текст.",
	"This is a medium length text with more words to embed data into. It has several sentences and allows for more steganography capacity.",
}

var secrets = []string{
	"",
	"A",
	"!",
	"Hello, this is a secret message!",
	"naïve café, 100% ÿ",
}

func TestNew(t *testing.T) {
	t.Run("built-in methods", func(t *testing.T) {
		for _, m := range Methods() {
			c, err := New(m)
			require.NoError(t, err)
			assert.Equal(t, m, c.Method())
		}
	})

	t.Run("invalid inputs", func(t *testing.T) {
		test := []struct {
			name    string
			method  Method
			opts    []Option
			wantErr error
		}{
			{"unknown method", Method("Typos"), nil, ErrUnknownMethod},
			{"same markers", MethodZeroWidth, []Option{WithMarkers('\u200b', '\u200b')}, ErrInvalidMarkers},
			{"space marker", MethodSpace, []Option{WithMarkers(' ', '\u2009')}, ErrInvalidMarkers},
			{"visible space marker", MethodSpace, []Option{WithMarkers('x', '\u2009')}, ErrInvalidMarkers},
			{"visible zero-width marker", MethodZeroWidth, []Option{WithMarkers('a', '\u200d')}, ErrInvalidMarkers},
			{"space as zero-width marker", MethodZeroWidth, []Option{WithMarkers('\u2009', '\u200d')}, ErrInvalidMarkers},
		}
		for _, tt := range test {
			t.Run(tt.name, func(t *testing.T) {
				_, err := New(tt.method, tt.opts...)
				assert.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "error should wrap expected")
			})
		}
	})
}

func TestRoundTrip(t *testing.T) {
	for _, m := range Methods() {
		c, err := New(m)
		require.NoError(t, err)
		for _, cover := range covers {
			for _, secret := range secrets {
				got := c.Extract(c.Embed(cover, secret))
				assert.Equal(t, secret, got, "method=%s cover=%q", m, cover)
			}
		}
	}
}

func TestSpaceCodec(t *testing.T) {
	c, err := New(MethodSpace)
	require.NoError(t, err)

	t.Run("concrete", func(t *testing.T) {
		got := c.Embed("ab cd", "A")
		assert.Equal(t, "ab \u2009cd \u00a0 \u2009 \u2009 \u2009 \u2009 \u2009 \u00a0", got)
		assert.Equal(t, "A", c.Extract(got))
	})

	t.Run("length grows unless the secret is empty", func(t *testing.T) {
		for _, cover := range covers {
			for _, secret := range secrets {
				n, embedded := utf8.RuneCountInString(cover), utf8.RuneCountInString(c.Embed(cover, secret))
				if secret == "" {
					assert.Equal(t, n, embedded)
				} else {
					assert.Greater(t, embedded, n)
				}
			}
		}
	})

	t.Run("every marker follows a space", func(t *testing.T) {
		runes := []rune(c.Embed("no", "Hello"))
		for i, r := range runes {
			if r == '\u2009' || r == '\u00a0' {
				require.Greater(t, i, 0)
				assert.Equal(t, ' ', runes[i-1])
			}
		}
	})

	t.Run("capacity", func(t *testing.T) {
		assert.Equal(t, 1, c.Capacity("ab cd"))
	})
}

func TestZeroWidthCodec(t *testing.T) {
	c, err := New(MethodZeroWidth)
	require.NoError(t, err)

	t.Run("concrete", func(t *testing.T) {
		got := c.Embed("AB", "!")
		assert.Equal(t, "A\u200cB\u200c\u200d\u200c\u200c\u200c\u200c\u200d", got)
		assert.Equal(t, "!", c.Extract(got))
	})

	t.Run("visible text unchanged", func(t *testing.T) {
		zw := c.(*ZeroWidthCodec)
		for _, cover := range covers {
			for _, secret := range secrets {
				assert.Equal(t, cover, zw.Strip(c.Embed(cover, secret)))
			}
		}
	})

	t.Run("capacity", func(t *testing.T) {
		assert.Equal(t, 1, c.Capacity("AB"))
		assert.Equal(t, 0, c.Capacity(""))
	})
}

func TestExtractWithoutMarkers(t *testing.T) {
	for _, m := range Methods() {
		for _, cover := range covers {
			got, err := Extract(m, cover)
			require.NoError(t, err)
			assert.Empty(t, got)
		}
	}
}

func TestTruncation(t *testing.T) {
	t.Run("wide runes keep their low byte", func(t *testing.T) {
		// U+042D 'Э' -> 0x2D '-'
		for _, m := range Methods() {
			embedded, err := Embed(m, "a b c", "Э")
			require.NoError(t, err)
			got, err := Extract(m, embedded)
			require.NoError(t, err)
			assert.Equal(t, "-", got)
		}
		assert.False(t, Representable("Э"))
		assert.True(t, Representable("Hello"))
	})

	t.Run("partial trailing group is dropped", func(t *testing.T) {
		c, err := New(MethodZeroWidth)
		require.NoError(t, err)
		embedded := c.Embed("text", "ok") + strings.Repeat("\u200d", 5)
		assert.Equal(t, "ok", c.Extract(embedded))
	})
}

func TestWithMarkers(t *testing.T) {
	c, err := New(MethodZeroWidth, WithMarkers('\u200b', '\u2060'))
	require.NoError(t, err)
	embedded := c.Embed("cover", "hi")
	assert.Equal(t, "hi", c.Extract(embedded))
	assert.Contains(t, embedded, "\u200b")

	def, err := New(MethodZeroWidth)
	require.NoError(t, err)
	assert.Empty(t, def.Extract(embedded))

	t.Run("space separators", func(t *testing.T) {
		c, err := New(MethodSpace, WithMarkers('\u2002', '\u2003')) // EN SPACE, EM SPACE
		require.NoError(t, err)
		embedded := c.Embed("a b c", "hi")
		assert.Equal(t, "hi", c.Extract(embedded))
		assert.Contains(t, embedded, "\u2003")
	})
}
