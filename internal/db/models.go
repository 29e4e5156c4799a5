package db

import "time"

type (
	// Run represents one benchmark invocation
	Run struct {
		ID        string // uuid
		StartedAt time.Time
		Repeat    int
	}

	// Trial represents a single recorded trial
	Trial struct {
		ID     int64
		RunID  string
		Seq    int // position within the run
		Cover  string
		Secret string
		Method string

		Embed         time.Duration
		Extract       time.Duration
		CoverRunes    int
		EmbeddedRunes int

		SuccessPlain bool
		SuccessHTML  bool
		SuccessPDF   bool
	}

	// Aggregate represents averaged trials of one (cover, secret, method)
	Aggregate struct {
		ID     int64
		RunID  string
		Seq    int // report order
		Cover  string
		Secret string
		Method string
		Trials int

		EmbedMS         float64
		ExtractMS       float64
		EmbedStdDevMS   float64
		ExtractStdDevMS float64

		// Percentages 0..100
		SuccessPlain float64
		SuccessHTML  float64
		SuccessPDF   float64
	}
)
