package models

import "time"

// Run summarises one generation pass over an input file.
type Run struct {
	ID           string    `json:"id"`
	StartedAt    time.Time `json:"started_at"`
	FinishedAt   time.Time `json:"finished_at,omitempty"`
	CasesTotal   int       `json:"cases_total"`
	CasesWritten int       `json:"cases_written"`
	CasesFailed  int       `json:"cases_failed"`
	Check        bool      `json:"check"`
}

// Finished reports whether the run reached its end.
func (r Run) Finished() bool { return !r.FinishedAt.IsZero() }
