package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"hvac_fixtures/internal/logger"
	"hvac_fixtures/internal/models"
	"hvac_fixtures/internal/repository"
)

// CaseError ties a failure to the case it aborted. UnitID is zero for
// failures that are not tied to one unit.
type CaseError struct {
	Case   int
	UnitID int
	Err    error
}

func (e *CaseError) Error() string {
	if e.UnitID != 0 {
		return fmt.Sprintf("case %d, unit %d: %v", e.Case, e.UnitID, e.Err)
	}
	return fmt.Sprintf("case %d: %v", e.Case, e.Err)
}

func (e *CaseError) Unwrap() error { return e.Err }

// IsValidationFailure reports whether err carries a LogicError or ReversalError.
func IsValidationFailure(err error) bool {
	var le LogicError
	var re ReversalError
	return errors.As(err, &le) || errors.As(err, &re)
}

type FixtureService struct {
	validator Validator
	cases     repository.CaseStore
	reference repository.ReferenceWriter
	runRepo   repository.RunRepo
	eventRepo repository.EventRepo
	log       *logger.Logger
}

func NewFixtureService(v Validator, repos *repository.Repository, log *logger.Logger) *FixtureService {
	return &FixtureService{
		validator: v,
		cases:     repos.Cases,
		reference: repos.Reference,
		runRepo:   repos.RunRepo,
		eventRepo: repos.EventRepo,
		log:       log,
	}
}

// Generate writes every case in input order. Without ContinueOnError the first
// failed case ends the run and the remaining cases are reported as skipped.
// The returned error joins every case failure.
func (s *FixtureService) Generate(ctx context.Context, cases []models.Case, opts GenerateOptions) (RunReport, error) {
	run := models.Run{
		ID:         uuid.NewString(),
		StartedAt:  time.Now().UTC(),
		CasesTotal: len(cases),
		Check:      opts.Check,
	}
	log := s.log.With("run_id", run.ID)
	log.Infow("generation started", "cases", len(cases), "check", opts.Check, "reference", opts.Reference)

	s.saveRun(ctx, log, run)
	s.record(ctx, log, run.ID, models.EventRunStart, "generation started", map[string]any{
		"cases": len(cases),
		"check": opts.Check,
	})

	report := RunReport{RunID: run.ID, Cases: make([]CaseReport, 0, len(cases))}
	var failures []error
	stopped := false

	for _, c := range cases {
		if stopped {
			report.Cases = append(report.Cases, CaseReport{Number: c.Number, Units: len(c.Units), Status: CaseSkipped})
			continue
		}

		cr := s.generateCase(ctx, log, run.ID, c, opts)
		report.Cases = append(report.Cases, cr)

		if cr.Err == nil {
			run.CasesWritten++
			continue
		}
		run.CasesFailed++
		failures = append(failures, cr.Err)
		if !opts.ContinueOnError {
			stopped = true
		}
	}

	run.FinishedAt = time.Now().UTC()
	s.saveRun(ctx, log, run)
	s.record(ctx, log, run.ID, models.EventRunFinish, "generation finished", map[string]any{
		"written": run.CasesWritten,
		"failed":  run.CasesFailed,
	})
	log.Infow("generation finished", "written", run.CasesWritten, "failed", run.CasesFailed)

	return report, errors.Join(failures...)
}

func (s *FixtureService) generateCase(ctx context.Context, log *logger.Logger, runID string, c models.Case, opts GenerateOptions) CaseReport {
	cr := CaseReport{Number: c.Number, Units: len(c.Units)}
	caseLog := log.With("case", c.Number)

	if opts.Check {
		for _, u := range c.Units {
			res := s.validator.Validate(u.Monitor, u.Static)
			if err := res.Err(); err != nil {
				cr.Status = CaseRejected
				cr.Err = &CaseError{Case: c.Number, UnitID: u.Monitor.UnitID(), Err: err}
				caseLog.Errorw("case rejected", "unit", u.Monitor.UnitID(), "err", err)
				s.record(ctx, caseLog, runID, models.EventCaseRejected, cr.Err.Error(), rejectionMeta(c.Number, u.Monitor.UnitID(), res))
				return cr
			}
		}
	}

	dir, err := s.cases.WriteCase(c.Number, caseTables(c)...)
	cr.Dir = dir
	if err == nil && opts.Reference {
		_, err = s.reference.WriteReference(dir, referenceSheets(c)...)
	}
	if err != nil {
		cr.Status = CaseFailed
		cr.Err = &CaseError{Case: c.Number, Err: err}
		caseLog.Errorw("case output failed", "err", err)
		s.record(ctx, caseLog, runID, models.EventCaseFailed, cr.Err.Error(), map[string]any{"case": c.Number})
		return cr
	}

	cr.Status = CaseWritten
	caseLog.Infow("case written", "dir", dir, "units", len(c.Units))
	s.record(ctx, caseLog, runID, models.EventCaseWritten, repository.CaseDirName(c.Number)+" written", map[string]any{
		"case":  c.Number,
		"units": len(c.Units),
		"dir":   dir,
	})
	return cr
}

// rejectionMeta keeps the structured payload of a validation failure.
func rejectionMeta(caseNumber, unitID int, res Result) map[string]any {
	meta := map[string]any{"case": caseNumber, "unit": unitID}
	switch r := res.(type) {
	case LogicError:
		meta["kind"] = "logic"
		meta["feature"] = r.Feature
		meta["detail"] = r.Detail
	case ReversalError:
		meta["kind"] = "reversal"
		meta["lower"] = r.Lower
		meta["upper"] = r.Upper
		meta["detail"] = r.Detail
	}
	return meta
}

// History writes never abort fixture output; failures are logged.
func (s *FixtureService) saveRun(ctx context.Context, log *logger.Logger, run models.Run) {
	if err := s.runRepo.Save(ctx, run); err != nil {
		log.Warnw("failed to save run summary", "err", err)
	}
}

func (s *FixtureService) record(ctx context.Context, log *logger.Logger, runID, typ, desc string, meta map[string]any) {
	err := s.eventRepo.Append(ctx, models.GenerationEvent{
		EventID:     uuid.NewString(),
		RunID:       runID,
		OccurredAt:  time.Now().UTC(),
		Type:        typ,
		Description: desc,
		Metadata:    meta,
	})
	if err != nil {
		log.Warnw("failed to record generation event", "type", typ, "err", err)
	}
}
