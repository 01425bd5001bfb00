package repository

import (
	"context"
	"database/sql"
	"time"

	"hvac_fixtures/internal/models"
)

// RunRepo stores run summaries.
type RunRepo interface {
	Save(ctx context.Context, r models.Run) error
	Latest(ctx context.Context) (models.Run, error)
}

// EventRepo is the append-only generation history.
type EventRepo interface {
	Append(ctx context.Context, e models.GenerationEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.GenerationEvent, error)
}

// CaseStore writes the CSV tables of one fixture case into a fresh directory.
type CaseStore interface {
	WriteCase(number int, tables ...Table) (string, error)
}

// ReferenceWriter renders a human-readable workbook next to a case's CSVs.
type ReferenceWriter interface {
	WriteReference(dir string, sheets ...Sheet) (string, error)
}

type Repository struct {
	RunRepo   RunRepo
	EventRepo EventRepo
	Cases     CaseStore
	Reference ReferenceWriter
}

// NewRepository wires the output stores under outDir and the history tables
// in db. A nil db disables history.
func NewRepository(db *sql.DB, outDir string) *Repository {
	repo := &Repository{
		RunRepo:   NopRunRepo{},
		EventRepo: NopEventRepo{},
		Cases:     NewCSVStore(outDir),
		Reference: NewWorkbookWriter(),
	}
	if db != nil {
		repo.RunRepo = NewRunSQLite(db)
		repo.EventRepo = NewEventSQLite(db)
	}
	return repo
}
