package handlers

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"hvac_fixtures/internal/models"
	"hvac_fixtures/internal/repository"
	"hvac_fixtures/internal/service"
)

var (
	okSprintf       = color.New(color.FgGreen).SprintfFunc()
	logicSprintf    = color.New(color.FgRed).SprintfFunc()
	reversalSprintf = color.New(color.FgMagenta).SprintfFunc()
	skipSprintf     = color.New(color.FgYellow).SprintfFunc()
)

// printRunReport writes one line per case of a generation run.
func printRunReport(w io.Writer, r service.RunReport) {
	for _, c := range r.Cases {
		name := repository.CaseDirName(c.Number)
		switch c.Status {
		case service.CaseWritten:
			fmt.Fprintf(w, "%s %s (%d units) -> %s\n", name, okSprintf("written"), c.Units, c.Dir)
		case service.CaseRejected:
			fmt.Fprintf(w, "%s %s: %v\n", name, logicSprintf("rejected"), c.Err)
		case service.CaseFailed:
			fmt.Fprintf(w, "%s %s: %v\n", name, logicSprintf("failed"), c.Err)
		default:
			fmt.Fprintf(w, "%s %s\n", name, skipSprintf(c.Status))
		}
	}
	fmt.Fprintf(w, "%d of %d cases written\n", r.Written(), len(r.Cases))
}

// printVerdicts writes one line per validated unit and returns the number of
// units that failed.
func printVerdicts(w io.Writer, verdicts []service.Verdict) int {
	failed := 0
	for _, v := range verdicts {
		prefix := fmt.Sprintf("%s unit %d:", repository.CaseDirName(v.Case), v.UnitID)
		switch res := v.Result.(type) {
		case service.LogicError:
			failed++
			fmt.Fprintf(w, "%s %s [%s] %s\n", prefix, logicSprintf("LOGIC"), res.Feature, res.Detail)
		case service.ReversalError:
			failed++
			fmt.Fprintf(w, "%s %s %s (%s > %s)\n", prefix, reversalSprintf("REVERSED"), res.Detail,
				degrees(res.Lower), degrees(res.Upper))
		default:
			fmt.Fprintf(w, "%s %s\n", prefix, okSprintf("ok"))
		}
	}
	fmt.Fprintf(w, "%d of %d units consistent\n", len(verdicts)-failed, len(verdicts))
	return failed
}

// printRun renders a run summary for the status command.
func printRun(w io.Writer, run models.Run) {
	fmt.Fprintf(w, "run:      %s\n", run.ID)
	fmt.Fprintf(w, "started:  %s\n", run.StartedAt.Format(layoutDateTime))
	if run.Finished() {
		fmt.Fprintf(w, "finished: %s\n", run.FinishedAt.Format(layoutDateTime))
	} else {
		fmt.Fprintf(w, "finished: %s\n", skipSprintf("no"))
	}
	fmt.Fprintf(w, "check:    %t\n", run.Check)
	fmt.Fprintf(w, "cases:    %d total, %d written, %d failed\n", run.CasesTotal, run.CasesWritten, run.CasesFailed)
}

// degrees renders a fixed-point tenths value.
func degrees(tenths int) string {
	return fmt.Sprintf("%.1f°C", float64(tenths)/10)
}
