package db

import (
	"github.com/yyyoichi/stegotext"
	"github.com/yyyoichi/stegotext/harness"
)

// TrialFromResult converts a harness trial into its row form
func TrialFromResult(runID string, seq int, r harness.TrialResult) *Trial {
	return &Trial{
		RunID:         runID,
		Seq:           seq,
		Cover:         r.Cover,
		Secret:        r.Secret,
		Method:        string(r.Method),
		Embed:         r.Embed,
		Extract:       r.Extract,
		CoverRunes:    r.CoverRunes,
		EmbeddedRunes: r.EmbeddedRunes,
		SuccessPlain:  r.Success[harness.FormatPlain],
		SuccessHTML:   r.Success[harness.FormatHTML],
		SuccessPDF:    r.Success[harness.FormatPDF],
	}
}

// AggregateFromResult converts a harness aggregate into its row form
func AggregateFromResult(runID string, seq int, r harness.AggregateResult) *Aggregate {
	return &Aggregate{
		RunID:           runID,
		Seq:             seq,
		Cover:           r.Cover,
		Secret:          r.Secret,
		Method:          string(r.Method),
		Trials:          r.Trials,
		EmbedMS:         r.EmbedMS,
		ExtractMS:       r.ExtractMS,
		EmbedStdDevMS:   r.EmbedStdDevMS,
		ExtractStdDevMS: r.ExtractStdDevMS,
		SuccessPlain:    r.Success[harness.FormatPlain],
		SuccessHTML:     r.Success[harness.FormatHTML],
		SuccessPDF:      r.Success[harness.FormatPDF],
	}
}

// Result converts a row back into a harness aggregate
func (a *Aggregate) Result() harness.AggregateResult {
	return harness.AggregateResult{
		Cover:           a.Cover,
		Secret:          a.Secret,
		Method:          stegotext.Method(a.Method),
		Trials:          a.Trials,
		EmbedMS:         a.EmbedMS,
		ExtractMS:       a.ExtractMS,
		EmbedStdDevMS:   a.EmbedStdDevMS,
		ExtractStdDevMS: a.ExtractStdDevMS,
		Success: map[harness.Format]float64{
			harness.FormatPlain: a.SuccessPlain,
			harness.FormatHTML:  a.SuccessHTML,
			harness.FormatPDF:   a.SuccessPDF,
		},
	}
}
