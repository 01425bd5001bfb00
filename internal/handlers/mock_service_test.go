package handlers

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"hvac_fixtures/internal/config"
	"hvac_fixtures/internal/logger"
	"hvac_fixtures/internal/models"
	"hvac_fixtures/internal/repository"
	"hvac_fixtures/internal/service"
)

// ---- Service Mocks ----

type mockHistory struct {
	events []models.GenerationEvent
	run    models.Run
	err    error

	lastFilter service.LogFilter
	listCalls  int
}

func (m *mockHistory) List(_ context.Context, f service.LogFilter) ([]models.GenerationEvent, error) {
	m.listCalls++
	m.lastFilter = f
	return m.events, m.err
}

func (m *mockHistory) LatestRun(context.Context) (models.Run, error) {
	return m.run, m.err
}

type mockGenerator struct {
	report   service.RunReport
	err      error
	lastOpts service.GenerateOptions
	cases    []models.Case
}

func (m *mockGenerator) Generate(_ context.Context, cases []models.Case, opts service.GenerateOptions) (service.RunReport, error) {
	m.cases = cases
	m.lastOpts = opts
	return m.report, m.err
}

// ---- Shared Test Helpers ----

// fixedBoot hands out s regardless of configuration and keeps the config seen.
func fixedBoot(s *service.Service, seen **config.Config) Bootstrap {
	return func(cfg *config.Config) (*service.Service, *logger.Logger, func() error, error) {
		if seen != nil {
			*seen = cfg
		}
		return s, logger.Nop(), func() error { return nil }, nil
	}
}

// fileBoot wires the real services against the configured output directory
// with history disabled.
func fileBoot(cfg *config.Config) (*service.Service, *logger.Logger, func() error, error) {
	repos := repository.NewRepository(nil, cfg.OutputDir)
	return service.NewService(repos, logger.Nop()), logger.Nop(), func() error { return nil }, nil
}

// run executes the command line args against a fresh handler.
func run(t *testing.T, boot Bootstrap, stdin string, args ...string) (string, error) {
	t.Helper()

	h := NewHandler(config.NewViper(), boot)
	t.Cleanup(func() { _ = h.Close() })

	root := h.InitCommands()
	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := root.ExecuteContext(ctx)
	return out.String(), err
}
