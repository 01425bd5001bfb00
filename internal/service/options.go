package service

import "time"

// GenerateOptions controls one generation run.
type GenerateOptions struct {
	Check           bool // validate every unit before writing its case
	Reference       bool // also write reference.xlsx per case
	ContinueOnError bool // skip a failed case instead of stopping the run
}

// Case outcomes reported in CaseReport.Status.
const (
	CaseWritten  = "written"
	CaseRejected = "rejected"
	CaseFailed   = "failed"
	CaseSkipped  = "skipped"
)

// CaseReport describes what happened to one case.
type CaseReport struct {
	Number int
	Dir    string
	Units  int
	Status string
	Err    error
}

// RunReport is returned by Generate.
type RunReport struct {
	RunID string
	Cases []CaseReport
}

// Written counts the cases that reached disk.
func (r RunReport) Written() int {
	n := 0
	for _, c := range r.Cases {
		if c.Status == CaseWritten {
			n++
		}
	}
	return n
}

// LogFilter supports history filtering by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", RUN_START, CASE_WRITTEN, CASE_REJECTED, CASE_FAILED, RUN_FINISH
}
