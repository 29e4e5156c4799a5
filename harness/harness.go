// Package harness times both text codecs over a matrix of cover texts and
// secrets and checks whether the secret survives each output format.
package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"
	"unicode/utf8"

	"github.com/yyyoichi/stegotext"
)

const DefaultRepeat = 3

var ErrInvalidRepeat = errors.New("repeat must be at least 1")

type Option func(*Harness) error

// WithRepeat sets how many times every (cover, secret, method) combination runs.
func WithRepeat(n int) Option {
	return func(h *Harness) error {
		if n < 1 {
			return fmt.Errorf("%w: %d", ErrInvalidRepeat, n)
		}
		h.repeat = n
		return nil
	}
}

// WithCodecs replaces the codecs under test. They run in the given order.
func WithCodecs(codecs ...stegotext.Codec) Option {
	return func(h *Harness) error {
		h.codecs = codecs
		return nil
	}
}

// WithVerifiers replaces the format checks. They run in the given order.
func WithVerifiers(verifiers ...Verifier) Option {
	return func(h *Harness) error {
		h.verifiers = verifiers
		return nil
	}
}

// WithStagingPath sets the file the default HTML check writes to.
func WithStagingPath(path string) Option {
	return func(h *Harness) error {
		h.staging = path
		return nil
	}
}

// WithLogger prints one line per trial to l.
func WithLogger(l *log.Logger) Option {
	return func(h *Harness) error {
		h.logger = l
		return nil
	}
}

// Harness runs benchmark trials one after another. It holds no results;
// Run hands them to the caller.
type Harness struct {
	repeat    int
	codecs    []stegotext.Codec
	verifiers []Verifier
	staging   string
	logger    *log.Logger
	now       func() time.Time
}

// New initializes a harness.
// By default every combination runs DefaultRepeat times against the Space and
// Zero-Width codecs, checked as Plain, HTML and PDF.
func New(opts ...Option) (*Harness, error) {
	h := &Harness{repeat: DefaultRepeat, now: time.Now}
	for _, opt := range opts {
		if err := opt(h); err != nil {
			return nil, err
		}
	}
	if h.codecs == nil {
		for _, m := range stegotext.Methods() {
			c, err := stegotext.New(m)
			if err != nil {
				return nil, err
			}
			h.codecs = append(h.codecs, c)
		}
	}
	if h.verifiers == nil {
		h.verifiers = []Verifier{PlainVerifier{}, &HTMLVerifier{Path: h.staging}, PDFVerifier{}}
	}
	if h.logger == nil {
		h.logger = log.New(io.Discard, "", 0)
	}
	return h, nil
}

// Run executes every cover x secret x repetition x codec trial in that order.
// The first verifier error aborts the run; trials recorded so far are returned with it.
func (h *Harness) Run(ctx context.Context, covers []CoverText, secrets []SecretMessage) ([]TrialResult, error) {
	results := make([]TrialResult, 0, len(covers)*len(secrets)*h.repeat*len(h.codecs))
	for _, cover := range covers {
		for _, secret := range secrets {
			for range h.repeat {
				for _, codec := range h.codecs {
					if err := ctx.Err(); err != nil {
						return results, err
					}
					r, err := h.Trial(ctx, codec, cover, secret)
					if err != nil {
						return results, err
					}
					results = append(results, r)
				}
			}
		}
	}
	return results, nil
}

// Trial times one embed and one extract, then asks every verifier whether the
// secret survived.
func (h *Harness) Trial(ctx context.Context, codec stegotext.Codec, cover CoverText, secret SecretMessage) (TrialResult, error) {
	start := h.now()
	embedded := codec.Embed(cover.Text, secret.Msg)
	embedDur := h.now().Sub(start)

	start = h.now()
	extracted := codec.Extract(embedded)
	extractDur := h.now().Sub(start)

	r := TrialResult{
		Cover:         cover.Name,
		Secret:        secret.Name,
		Method:        codec.Method(),
		Embed:         embedDur,
		Extract:       extractDur,
		Success:       make(map[Format]bool, len(h.verifiers)),
		CoverRunes:    utf8.RuneCountInString(cover.Text),
		EmbeddedRunes: utf8.RuneCountInString(embedded),
	}
	check := Check{Codec: codec, Secret: secret.Msg, Embedded: embedded, Extracted: extracted}
	for _, v := range h.verifiers {
		ok, err := v.Verify(ctx, check)
		if err != nil {
			return r, fmt.Errorf("cover=%s secret=%s method=%s format=%s: %w",
				cover.Name, secret.Name, codec.Method(), v.Format(), err)
		}
		r.Success[v.Format()] = ok
	}

	status := "OK"
	for _, ok := range r.Success {
		if !ok {
			status = "FAIL"
			break
		}
	}
	h.logger.Printf("    [%s] Cover=%s Secret=%s Method=%s - E=%v X=%v Cap=%d/%d Runes=%d->%d\n",
		status, cover.Name, secret.Name, codec.Method(), embedDur, extractDur,
		codec.Capacity(cover.Text), utf8.RuneCountInString(secret.Msg)*8, r.CoverRunes, r.EmbeddedRunes)
	return r, nil
}
