package repository

import (
	"context"
	"errors"
	"time"

	"hvac_fixtures/internal/models"
)

// ErrHistoryDisabled is returned when reading history that was never recorded.
var ErrHistoryDisabled = errors.New("generation history is disabled (set history.path)")

// NopRunRepo discards run summaries.
type NopRunRepo struct{}

func (NopRunRepo) Save(context.Context, models.Run) error { return nil }
func (NopRunRepo) Latest(context.Context) (models.Run, error) {
	return models.Run{}, ErrHistoryDisabled
}

// NopEventRepo discards events.
type NopEventRepo struct{}

func (NopEventRepo) Append(context.Context, models.GenerationEvent) error { return nil }
func (NopEventRepo) List(context.Context, time.Time, time.Time, string) ([]models.GenerationEvent, error) {
	return nil, ErrHistoryDisabled
}
