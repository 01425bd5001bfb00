package service

import (
	"hvac_fixtures/internal/models"
	"hvac_fixtures/internal/repository"
)

// Reference sheet names, one per record kind.
const (
	monitorSheet = "R02"
	staticSheet  = "R03"
	dynamicSheet = "R15"
)

func yesNo(flag int) string {
	if flag != 0 {
		return "yes"
	}
	return "no"
}

// tenths renders a fixed-point tenths value in degrees.
func tenths(v int) float64 { return float64(v) / 10 }

// referenceSheets renders c for the operator: names instead of codes and
// degrees instead of tenths.
func referenceSheets(c models.Case) []repository.Sheet {
	mon := repository.Sheet{
		Name:   monitorSheet,
		Header: []string{"Unit ID", "Mode", "Mode code", "Limited", "Limited code"},
	}
	st := repository.Sheet{
		Name: staticSheet,
		Header: []string{
			"Unit ID", "Auto", "Heat", "Cool", "Dual-auto",
			"Auto lower", "Auto upper", "Heat lower", "Heat upper", "Cool lower", "Cool upper",
			"Dead-band",
		},
	}
	dyn := repository.Sheet{
		Name: dynamicSheet,
		Header: []string{
			"Unit ID", "Status",
			"Auto lower", "Auto upper", "Heat lower", "Heat upper", "Cool lower", "Cool upper",
		},
	}

	for _, u := range c.Units {
		m := u.Monitor
		mon.Rows = append(mon.Rows, []any{
			m.UnitID(), m.Mode().String(), int(m.Mode()), m.Limited().String(), int(m.Limited()),
		})

		s := u.Static
		caps := s.Capabilities()
		var deadBand any = "-"
		if v, ok := s.DeadBand(); ok {
			deadBand = tenths(v)
		}
		st.Rows = append(st.Rows, []any{
			s.UnitID(), yesNo(caps.Auto), yesNo(caps.Heat), yesNo(caps.Cool), yesNo(caps.Custom),
			tenths(s.AutoRange().Lower), tenths(s.AutoRange().Upper),
			tenths(s.HeatRange().Lower), tenths(s.HeatRange().Upper),
			tenths(s.CoolRange().Lower), tenths(s.CoolRange().Upper),
			deadBand,
		})

		d := u.Dynamic
		dyn.Rows = append(dyn.Rows, []any{
			d.UnitID(), d.Status(),
			d.AutoRange().Lower, d.AutoRange().Upper,
			d.HeatRange().Lower, d.HeatRange().Upper,
			d.CoolRange().Lower, d.CoolRange().Upper,
		})
	}
	return []repository.Sheet{mon, st, dyn}
}
