package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// InsertRun registers a new run and returns it with a fresh id
func (d *DB) InsertRun(startedAt time.Time, repeat int) (*Run, error) {
	run := &Run{
		ID:        uuid.NewString(),
		StartedAt: startedAt,
		Repeat:    repeat,
	}
	_, err := d.db.Exec(
		"INSERT INTO runs (id, started_at, repetitions) VALUES (?, ?, ?)",
		run.ID, run.StartedAt.UnixNano(), run.Repeat,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert run: %w", err)
	}
	return run, nil
}

// InsertResults stores trials and aggregates of a run in one transaction
func (d *DB) InsertResults(trials []*Trial, aggregates []*Aggregate) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, t := range trials {
		if _, err := tx.Exec(`
			INSERT INTO trials (
				run_id, seq, cover, secret, method,
				embed_ns, extract_ns, cover_runes, embedded_runes,
				success_plain, success_html, success_pdf
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.RunID, t.Seq, t.Cover, t.Secret, t.Method,
			int64(t.Embed), int64(t.Extract), t.CoverRunes, t.EmbeddedRunes,
			t.SuccessPlain, t.SuccessHTML, t.SuccessPDF,
		); err != nil {
			return fmt.Errorf("failed to insert trial: %w", err)
		}
	}
	for _, a := range aggregates {
		if _, err := tx.Exec(`
			INSERT INTO aggregates (
				run_id, seq, cover, secret, method, trials,
				embed_ms, extract_ms, embed_stddev_ms, extract_stddev_ms,
				success_plain, success_html, success_pdf
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			a.RunID, a.Seq, a.Cover, a.Secret, a.Method, a.Trials,
			a.EmbedMS, a.ExtractMS, a.EmbedStdDevMS, a.ExtractStdDevMS,
			a.SuccessPlain, a.SuccessHTML, a.SuccessPDF,
		); err != nil {
			return fmt.Errorf("failed to insert aggregate: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit results: %w", err)
	}
	return nil
}

// GetRun retrieves a run by ID
func (d *DB) GetRun(id string) (*Run, error) {
	var (
		run       Run
		startedAt int64
	)
	err := d.db.QueryRow(
		"SELECT id, started_at, repetitions FROM runs WHERE id = ?", id,
	).Scan(&run.ID, &startedAt, &run.Repeat)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query run: %w", err)
	}
	run.StartedAt = time.Unix(0, startedAt)
	return &run, nil
}

// ListRuns lists all runs, newest first
func (d *DB) ListRuns() ([]*Run, error) {
	rows, err := d.db.Query("SELECT id, started_at, repetitions FROM runs ORDER BY started_at DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		var (
			run       Run
			startedAt int64
		)
		if err := rows.Scan(&run.ID, &startedAt, &run.Repeat); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.StartedAt = time.Unix(0, startedAt)
		runs = append(runs, &run)
	}
	return runs, rows.Err()
}

// ListTrials lists the trials of a run in execution order
func (d *DB) ListTrials(runID string) ([]*Trial, error) {
	rows, err := d.db.Query(`
		SELECT id, run_id, seq, cover, secret, method,
			embed_ns, extract_ns, cover_runes, embedded_runes,
			success_plain, success_html, success_pdf
		FROM trials WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query trials: %w", err)
	}
	defer rows.Close()

	var trials []*Trial
	for rows.Next() {
		var (
			t              Trial
			embed, extract int64
		)
		if err := rows.Scan(
			&t.ID, &t.RunID, &t.Seq, &t.Cover, &t.Secret, &t.Method,
			&embed, &extract, &t.CoverRunes, &t.EmbeddedRunes,
			&t.SuccessPlain, &t.SuccessHTML, &t.SuccessPDF,
		); err != nil {
			return nil, fmt.Errorf("failed to scan trial: %w", err)
		}
		t.Embed, t.Extract = time.Duration(embed), time.Duration(extract)
		trials = append(trials, &t)
	}
	return trials, rows.Err()
}

// ListAggregates lists the aggregates of a run in report order
func (d *DB) ListAggregates(runID string) ([]*Aggregate, error) {
	rows, err := d.db.Query(`
		SELECT id, run_id, seq, cover, secret, method, trials,
			embed_ms, extract_ms, embed_stddev_ms, extract_stddev_ms,
			success_plain, success_html, success_pdf
		FROM aggregates WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query aggregates: %w", err)
	}
	defer rows.Close()

	var aggregates []*Aggregate
	for rows.Next() {
		var a Aggregate
		if err := rows.Scan(
			&a.ID, &a.RunID, &a.Seq, &a.Cover, &a.Secret, &a.Method, &a.Trials,
			&a.EmbedMS, &a.ExtractMS, &a.EmbedStdDevMS, &a.ExtractStdDevMS,
			&a.SuccessPlain, &a.SuccessHTML, &a.SuccessPDF,
		); err != nil {
			return nil, fmt.Errorf("failed to scan aggregate: %w", err)
		}
		aggregates = append(aggregates, &a)
	}
	return aggregates, rows.Err()
}
