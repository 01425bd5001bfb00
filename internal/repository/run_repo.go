package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hvac_fixtures/internal/models"
)

type RunSQLite struct {
	db *sql.DB
}

func NewRunSQLite(db *sql.DB) *RunSQLite {
	return &RunSQLite{db: db}
}

const (
	upsertRunSQL = `
		INSERT INTO fixture_runs (id, started_at, finished_at, cases_total, cases_written, cases_failed, check_enabled)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			finished_at=excluded.finished_at,
			cases_total=excluded.cases_total,
			cases_written=excluded.cases_written,
			cases_failed=excluded.cases_failed
	`

	selectLatestRunSQL = `
		SELECT id, started_at, finished_at, cases_total, cases_written, cases_failed, check_enabled
		FROM fixture_runs ORDER BY started_at DESC LIMIT 1
	`
)

var errEmptyRunID = errors.New("run id is required")

// nullableTime maps a zero time to NULL and everything else to UTC.
func nullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC()
}

// Save inserts the run or updates its counters and finish time.
func (r *RunSQLite) Save(ctx context.Context, run models.Run) error {
	if run.ID == "" {
		return errEmptyRunID
	}

	started := run.StartedAt
	if started.IsZero() {
		started = time.Now().UTC()
	} else {
		started = started.UTC()
	}

	_, err := r.db.ExecContext(ctx, upsertRunSQL,
		run.ID,
		started,
		nullableTime(run.FinishedAt),
		run.CasesTotal,
		run.CasesWritten,
		run.CasesFailed,
		run.Check,
	)
	return err
}

// Latest fetches the most recently started run. It returns a zero Run when
// no run has been recorded yet.
func (r *RunSQLite) Latest(ctx context.Context) (models.Run, error) {
	row := r.db.QueryRowContext(ctx, selectLatestRunSQL)

	var run models.Run
	var finished sql.NullTime
	if err := row.Scan(
		&run.ID,
		&run.StartedAt,
		&finished,
		&run.CasesTotal,
		&run.CasesWritten,
		&run.CasesFailed,
		&run.Check,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Run{}, nil
		}
		return models.Run{}, err
	}

	run.StartedAt = run.StartedAt.UTC()
	if finished.Valid {
		run.FinishedAt = finished.Time.UTC()
	}
	return run, nil
}
