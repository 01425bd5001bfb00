package service

import (
	"context"

	"hvac_fixtures/internal/logger"
	"hvac_fixtures/internal/models"
	"hvac_fixtures/internal/repository"
)

// Generator turns parsed cases into fixture directories.
type Generator interface {
	Generate(ctx context.Context, cases []models.Case, opts GenerateOptions) (RunReport, error)
}

// History exposes recorded runs and their events.
type History interface {
	List(ctx context.Context, f LogFilter) ([]models.GenerationEvent, error)
	LatestRun(ctx context.Context) (models.Run, error)
}

// Service aggregates the application services used by the command handlers.
type Service struct {
	Validator
	Generator
	History
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, log *logger.Logger) *Service {
	validator := NewValidatorService()
	return &Service{
		Validator: validator,
		Generator: NewFixtureService(validator, repos, log),
		History:   NewHistoryService(repos.RunRepo, repos.EventRepo),
	}
}
