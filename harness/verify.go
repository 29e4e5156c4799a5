package harness

import (
	"context"
	"errors"
	"fmt"
	"html"
	"os"
	"path/filepath"

	"github.com/yyyoichi/stegotext"
)

// Format is an output format an embedded text is checked against.
type Format string

const (
	FormatPlain Format = "Plain"
	FormatHTML  Format = "HTML"
	FormatPDF   Format = "PDF"
)

// Formats returns the report order of the built-in formats.
func Formats() []Format {
	return []Format{FormatPlain, FormatHTML, FormatPDF}
}

var ErrStaging = errors.New("html staging failed")

// Check carries everything a Verifier needs about one trial.
type Check struct {
	Codec     stegotext.Codec
	Secret    string
	Embedded  string
	Extracted string
}

// Verifier decides whether a secret survives a given output format.
type Verifier interface {
	Format() Format
	Verify(ctx context.Context, c Check) (bool, error)
}

var _ Verifier = PlainVerifier{}

// PlainVerifier compares the directly extracted text with the secret.
type PlainVerifier struct{}

func (PlainVerifier) Format() Format { return FormatPlain }

func (PlainVerifier) Verify(_ context.Context, c Check) (bool, error) {
	return c.Extracted == c.Secret, nil
}

var _ Verifier = (*HTMLVerifier)(nil)

// HTMLVerifier writes the embedded text as <p>...</p> to Path, reads it back,
// unescapes HTML entities and extracts again.
// Path is reused by every call; two runs must not share it.
type HTMLVerifier struct {
	Path string
}

// DefaultStagingPath is the HTML staging file used when none is configured.
func DefaultStagingPath() string {
	return filepath.Join(os.TempDir(), "stegotext-staging.html")
}

func (*HTMLVerifier) Format() Format { return FormatHTML }

func (v *HTMLVerifier) Verify(_ context.Context, c Check) (bool, error) {
	path := v.Path
	if path == "" {
		path = DefaultStagingPath()
	}
	if err := os.WriteFile(path, []byte("<p>"+c.Embedded+"</p>"), 0o644); err != nil {
		return false, fmt.Errorf("%w: write %s: %w", ErrStaging, path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("%w: read %s: %w", ErrStaging, path, err)
	}
	return c.Codec.Extract(html.UnescapeString(string(data))) == c.Secret, nil
}

var _ Verifier = PDFVerifier{}

// PDFVerifier assumes a PDF keeps the text unchanged and reports the plain
// result. No PDF is rendered.
type PDFVerifier struct{}

func (PDFVerifier) Format() Format { return FormatPDF }

func (PDFVerifier) Verify(_ context.Context, c Check) (bool, error) {
	return c.Extracted == c.Secret, nil
}
