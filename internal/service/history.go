package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"hvac_fixtures/internal/models"
	"hvac_fixtures/internal/repository"
)

// ErrNoRuns is returned by LatestRun before any run was recorded.
var ErrNoRuns = errors.New("no generation runs recorded yet")

var errInvalidTimeRange = errors.New("invalid time range: from must be <= to")

type HistoryService struct {
	runRepo   repository.RunRepo
	eventRepo repository.EventRepo
}

func NewHistoryService(runRepo repository.RunRepo, eventRepo repository.EventRepo) *HistoryService {
	return &HistoryService{runRepo: runRepo, eventRepo: eventRepo}
}

// normalizeFilter converts bounds to UTC, uppercases the type and rejects an
// inverted range.
func normalizeFilter(f LogFilter) (LogFilter, error) {
	out := LogFilter{
		From: toUTC(f.From),
		To:   toUTC(f.To),
		Type: strings.ToUpper(strings.TrimSpace(f.Type)),
	}
	if !out.From.IsZero() && !out.To.IsZero() && out.From.After(out.To) {
		return LogFilter{}, errInvalidTimeRange
	}
	return out, nil
}

// toUTC normalizes non-zero time to UTC, preserving zero values.
func toUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// List returns recorded generation events matching f.
func (s *HistoryService) List(ctx context.Context, f LogFilter) ([]models.GenerationEvent, error) {
	nf, err := normalizeFilter(f)
	if err != nil {
		return nil, err
	}
	return s.eventRepo.List(ctx, nf.From, nf.To, nf.Type)
}

// LatestRun returns the most recent run summary.
func (s *HistoryService) LatestRun(ctx context.Context) (models.Run, error) {
	run, err := s.runRepo.Latest(ctx)
	if err != nil {
		return models.Run{}, err
	}
	if run.ID == "" {
		return models.Run{}, ErrNoRuns
	}
	run.StartedAt = toUTC(run.StartedAt)
	run.FinishedAt = toUTC(run.FinishedAt)
	return run, nil
}
