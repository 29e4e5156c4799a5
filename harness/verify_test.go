package harness

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yyyoichi/stegotext"
)

func newCheck(t *testing.T, method stegotext.Method, cover, secret string) Check {
	t.Helper()
	codec, err := stegotext.New(method)
	require.NoError(t, err)
	embedded := codec.Embed(cover, secret)
	return Check{Codec: codec, Secret: secret, Embedded: embedded, Extracted: codec.Extract(embedded)}
}

func TestHTMLVerifier(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip through the staging file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "temp.html")
		v := &HTMLVerifier{Path: path}
		for _, m := range stegotext.Methods() {
			c := newCheck(t, m, "This is a short text.", "Hello, this is a secret message!")
			ok, err := v.Verify(ctx, c)
			require.NoError(t, err)
			assert.True(t, ok, m)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, "<p>"+c.Embedded+"</p>", string(data))
		}
	})

	t.Run("entities in the cover are unescaped before extraction", func(t *testing.T) {
		// &nbsp; becomes U+00A0 and reads as bit 1 after a space
		cover := "a" + strings.Repeat(" &nbsp;", 8)
		c := newCheck(t, stegotext.MethodSpace, cover, "")

		plain, err := PlainVerifier{}.Verify(ctx, c)
		require.NoError(t, err)
		assert.True(t, plain)

		ok, err := (&HTMLVerifier{Path: filepath.Join(t.TempDir(), "temp.html")}).Verify(ctx, c)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("escaped markup in the cover", func(t *testing.T) {
		c := newCheck(t, stegotext.MethodZeroWidth, "1 &lt; 2 &amp;&amp; 3 &gt; 2", "ok")
		ok, err := (&HTMLVerifier{Path: filepath.Join(t.TempDir(), "temp.html")}).Verify(ctx, c)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestPDFVerifier(t *testing.T) {
	ctx := context.Background()
	c := newCheck(t, stegotext.MethodSpace, "ab cd", "A")

	ok, err := PDFVerifier{}.Verify(ctx, c)
	require.NoError(t, err)
	assert.True(t, ok)

	c.Extracted = "B"
	ok, err = PDFVerifier{}.Verify(ctx, c)
	require.NoError(t, err)
	assert.False(t, ok)
}
