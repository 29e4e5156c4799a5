package harness

import (
	"time"

	"github.com/yyyoichi/stegotext"
)

type (
	// CoverText is a named carrier text.
	CoverText struct {
		Name string
		Text string
	}

	// SecretMessage is a named payload. Every rune should be below 0x100.
	SecretMessage struct {
		Name string
		Msg  string
	}

	// TrialResult is the outcome of one embed + extract + format check.
	TrialResult struct {
		Cover   string
		Secret  string
		Method  stegotext.Method
		Embed   time.Duration
		Extract time.Duration
		Success map[Format]bool

		CoverRunes    int
		EmbeddedRunes int
	}

	// AggregateResult summarizes every trial sharing (Cover, Secret, Method).
	AggregateResult struct {
		Cover  string
		Secret string
		Method stegotext.Method
		Trials int

		EmbedMS         float64
		ExtractMS       float64
		EmbedStdDevMS   float64
		ExtractStdDevMS float64

		// Success is the share of successful trials per format, 0..100.
		Success map[Format]float64
	}
)

// Milliseconds converts d to fractional milliseconds.
func Milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
