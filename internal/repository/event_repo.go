package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"hvac_fixtures/internal/models"
)

// sqliteTimeLayout is how event timestamps are stored and compared.
const sqliteTimeLayout = "2006-01-02 15:04:05"

const (
	insertEventSQL = `
		INSERT INTO fixture_events (id, run_id, occurred_at, type, message, meta)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	selectEventsSQL = `SELECT id, run_id, occurred_at, type, message, meta FROM fixture_events`
)

var errEmptyEventRunID = errors.New("event run id is required")

// EventSQLite is the fixture_events table.
type EventSQLite struct {
	db *sql.DB
}

func NewEventSQLite(db *sql.DB) *EventSQLite { return &EventSQLite{db: db} }

// Append stores e under its run. A missing id or timestamp is generated.
func (r *EventSQLite) Append(ctx context.Context, e models.GenerationEvent) error {
	if e.RunID == "" {
		return errEmptyEventRunID
	}
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	at := e.OccurredAt
	if at.IsZero() {
		at = time.Now()
	}

	_, err := r.db.ExecContext(ctx, insertEventSQL,
		e.EventID,
		e.RunID,
		at.UTC().Format(sqliteTimeLayout),
		normalizeType(e.Type),
		e.Description,
		encodeMeta(e.Metadata),
	)
	if err != nil {
		return fmt.Errorf("append %s event: %w", e.Type, err)
	}
	return nil
}

// List returns events within [from, to] of the given type, oldest first.
// Zero bounds and an empty type do not filter.
func (r *EventSQLite) List(ctx context.Context, from, to time.Time, typ string) ([]models.GenerationEvent, error) {
	var w whereClause
	if !from.IsZero() {
		w.add("occurred_at >= ?", from.UTC().Format(sqliteTimeLayout))
	}
	if !to.IsZero() {
		w.add("occurred_at <= ?", to.UTC().Format(sqliteTimeLayout))
	}
	if typ = normalizeType(typ); typ != "" {
		w.add("type = ?", typ)
	}

	rows, err := r.db.QueryContext(ctx, selectEventsSQL+w.String()+" ORDER BY occurred_at ASC", w.args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var out []models.GenerationEvent
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return out, nil
}

func scanEvent(rows *sql.Rows) (models.GenerationEvent, error) {
	var (
		ev   models.GenerationEvent
		meta sql.NullString
	)
	if err := rows.Scan(&ev.EventID, &ev.RunID, &ev.OccurredAt, &ev.Type, &ev.Description, &meta); err != nil {
		return models.GenerationEvent{}, fmt.Errorf("scan event: %w", err)
	}
	ev.OccurredAt = ev.OccurredAt.UTC()
	ev.Metadata = decodeMeta(meta)
	return ev, nil
}

// whereClause collects AND-ed conditions with their positional arguments.
type whereClause struct {
	conds []string
	args  []any
}

func (w *whereClause) add(cond string, arg any) {
	w.conds = append(w.conds, cond)
	w.args = append(w.args, arg)
}

func (w *whereClause) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

func normalizeType(t string) string {
	return strings.ToUpper(strings.TrimSpace(t))
}

// encodeMeta returns the JSON text of v, or nil for no or unencodable metadata.
func encodeMeta(v any) any {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return string(b)
}

// decodeMeta parses stored JSON; text that is not JSON comes back verbatim.
func decodeMeta(s sql.NullString) any {
	if !s.Valid || s.String == "" {
		return nil
	}
	var v any
	if err := json.Unmarshal([]byte(s.String), &v); err != nil {
		return s.String
	}
	return v
}
