package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yyyoichi/stegotext"
	"github.com/yyyoichi/stegotext/harness"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	d, err := Open(filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func TestRun(t *testing.T) {
	d := openTestDB(t)

	started := time.Unix(1234567890, 42)
	run, err := d.InsertRun(started, 3)
	require.NoError(t, err)
	_, err = uuid.Parse(run.ID)
	assert.NoError(t, err)

	got, err := d.GetRun(run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, 3, got.Repeat)
	assert.True(t, got.StartedAt.Equal(started))

	later, err := d.InsertRun(started.Add(time.Hour), 1)
	require.NoError(t, err)
	runs, err := d.ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, later.ID, runs[0].ID)

	_, err = d.GetRun("missing")
	assert.Error(t, err)
}

func TestResults(t *testing.T) {
	d := openTestDB(t)
	run, err := d.InsertRun(time.Now(), 1)
	require.NoError(t, err)

	trials := []harness.TrialResult{
		{
			Cover: "Short (EN)", Secret: "Medium", Method: stegotext.MethodSpace,
			Embed: 1500 * time.Microsecond, Extract: 2 * time.Millisecond,
			CoverRunes: 21, EmbeddedRunes: 300,
			Success: map[harness.Format]bool{harness.FormatPlain: true, harness.FormatHTML: false, harness.FormatPDF: true},
		},
		{
			Cover: "Short (EN)", Secret: "Medium", Method: stegotext.MethodZeroWidth,
			Embed: time.Millisecond, Extract: time.Millisecond,
			CoverRunes: 21, EmbeddedRunes: 277,
			Success: map[harness.Format]bool{harness.FormatPlain: true, harness.FormatHTML: true, harness.FormatPDF: true},
		},
	}
	aggregates := harness.Aggregate(trials)

	var (
		trialRows     []*Trial
		aggregateRows []*Aggregate
	)
	for i, tr := range trials {
		trialRows = append(trialRows, TrialFromResult(run.ID, i, tr))
	}
	for i, a := range aggregates {
		aggregateRows = append(aggregateRows, AggregateFromResult(run.ID, i, a))
	}
	require.NoError(t, d.InsertResults(trialRows, aggregateRows))

	t.Run("trials", func(t *testing.T) {
		got, err := d.ListTrials(run.ID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Space", got[0].Method)
		assert.Equal(t, 1500*time.Microsecond, got[0].Embed)
		assert.True(t, got[0].SuccessPlain)
		assert.False(t, got[0].SuccessHTML)
		assert.Equal(t, 277, got[1].EmbeddedRunes)
	})

	t.Run("aggregates", func(t *testing.T) {
		got, err := d.ListAggregates(run.ID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		for i := range got {
			assert.Equal(t, aggregates[i], got[i].Result())
		}
	})

	t.Run("duplicate aggregate rolls back", func(t *testing.T) {
		err := d.InsertResults(
			[]*Trial{TrialFromResult(run.ID, 99, trials[0])},
			[]*Aggregate{aggregateRows[0]},
		)
		assert.Error(t, err)
		got, err := d.ListTrials(run.ID)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("unknown run", func(t *testing.T) {
		got, err := d.ListAggregates("missing")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
