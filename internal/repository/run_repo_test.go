package repository_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"hvac_fixtures/internal/models"
	"hvac_fixtures/internal/repository"
)

const runColumns = "id, started_at, finished_at, cases_total, cases_written, cases_failed, check_enabled"

func TestRunSQLite_Save_SetsStartedAtWhenZero(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	repo := repository.NewRunSQLite(db)

	run := models.Run{
		ID:         "run-1",
		CasesTotal: 3,
		Check:      true,
		// StartedAt is zero
	}

	isUTCRecent := sqlmockArgumentFunc(func(v driver.Value) bool {
		tm, ok := v.(time.Time)
		if !ok || tm.Location() != time.UTC {
			return false
		}
		now := time.Now().UTC()
		return !tm.Before(now.Add(-5*time.Second)) && !tm.After(now.Add(5*time.Second))
	})

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO fixture_runs")).
		WithArgs("run-1", isUTCRecent, nil, 3, 0, 0, true).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Save(context.Background(), run); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRunSQLite_Save_ConvertsTimesToUTC(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	repo := repository.NewRunSQLite(db)

	tokyo := time.FixedZone("JST", 9*3600)
	started := time.Date(2018, 3, 7, 15, 0, 58, 0, tokyo)
	finished := started.Add(2 * time.Second)

	isExact := func(want time.Time) sqlmockArgumentFunc {
		return func(v driver.Value) bool {
			tm, ok := v.(time.Time)
			return ok && tm.Equal(want) && tm.Location() == time.UTC
		}
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO fixture_runs")).
		WithArgs("run-2", isExact(started.UTC()), isExact(finished.UTC()), 2, 1, 1, false).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.Save(context.Background(), models.Run{
		ID:           "run-2",
		StartedAt:    started,
		FinishedAt:   finished,
		CasesTotal:   2,
		CasesWritten: 1,
		CasesFailed:  1,
	})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRunSQLite_Save_RequiresID(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	if err := repository.NewRunSQLite(db).Save(context.Background(), models.Run{}); err == nil {
		t.Fatal("Save() expected error for empty id, got nil")
	}
}

func TestRunSQLite_Save_ExecErrorIsPropagated(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO fixture_runs")).
		WillReturnError(errors.New("db down"))

	if err := repository.NewRunSQLite(db).Save(context.Background(), models.Run{ID: "x"}); err == nil {
		t.Fatal("Save() expected error, got nil")
	}
}

func TestRunSQLite_Latest_NoRowsReturnsZeroValue(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + runColumns)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "started_at", "finished_at", "cases_total", "cases_written", "cases_failed", "check_enabled"}))

	got, err := repository.NewRunSQLite(db).Latest(context.Background())
	if err != nil {
		t.Fatalf("Latest() unexpected error: %v", err)
	}
	if got != (models.Run{}) {
		t.Fatalf("Latest() expected zero run, got %+v", got)
	}
}

func TestRunSQLite_Latest_HappyPath(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	ny := time.FixedZone("EST", -5*3600)
	started := time.Date(2024, 2, 1, 8, 30, 0, 0, ny)

	rows := sqlmock.NewRows([]string{"id", "started_at", "finished_at", "cases_total", "cases_written", "cases_failed", "check_enabled"}).
		AddRow("run-9", started, nil, 4, 2, 0, true)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + runColumns)).
		WillReturnRows(rows)

	got, err := repository.NewRunSQLite(db).Latest(context.Background())
	if err != nil {
		t.Fatalf("Latest() unexpected error: %v", err)
	}
	if got.ID != "run-9" || got.CasesTotal != 4 || got.CasesWritten != 2 || !got.Check {
		t.Fatalf("Latest() unexpected fields: %+v", got)
	}
	if got.StartedAt.Location() != time.UTC || !got.StartedAt.Equal(started) {
		t.Errorf("StartedAt = %v, want %v in UTC", got.StartedAt, started)
	}
	if got.Finished() {
		t.Error("NULL finished_at should leave the run unfinished")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRunSQLite_Latest_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + runColumns)).
		WillReturnError(sql.ErrConnDone)

	if _, err := repository.NewRunSQLite(db).Latest(context.Background()); !errors.Is(err, sql.ErrConnDone) {
		t.Fatalf("Latest() error = %v, want ErrConnDone", err)
	}
}

// Helpers

type sqlmockArgumentFunc func(v driver.Value) bool

func (f sqlmockArgumentFunc) Match(v driver.Value) bool {
	return f(v)
}
