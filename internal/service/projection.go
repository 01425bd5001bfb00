package service

import (
	"hvac_fixtures/internal/models"
	"hvac_fixtures/internal/repository"
)

// CSV file names inside a case directory.
const (
	MonitorFile = "R02monUnit.csv"
	StaticFile  = "R03infUnit.csv"
	DynamicFile = "R15tempSet.csv"
)

// Columns populated in each output row; every other column is zero.
var (
	MonitorColumns = []models.FieldIndex{
		models.MonitorUnitID,
		models.MonitorMode,
		models.MonitorLimited,
	}

	// StaticColumns leaves out models.StaticLowerAuto (37): the controller
	// fixtures never carried it, so consumers read the auto lower bound as 0.
	StaticColumns = []models.FieldIndex{
		models.StaticUnitID,
		models.StaticHasAuto,
		models.StaticHasHeat,
		models.StaticHasCool,
		models.StaticUpperAuto,
		models.StaticLowerHeat,
		models.StaticUpperHeat,
		models.StaticLowerCool,
		models.StaticUpperCool,
		models.StaticHasCustom,
		models.StaticDeadBand,
	}

	DynamicColumns = []models.FieldIndex{
		models.DynamicUnitID,
		models.DynamicStatus,
		models.DynamicLowerAuto,
		models.DynamicUpperAuto,
		models.DynamicLowerHeat,
		models.DynamicUpperHeat,
		models.DynamicLowerCool,
		models.DynamicUpperCool,
	}
)

// Project lays a record out as a fixed-width row with only cols populated.
func Project(r models.Record, width int, cols []models.FieldIndex) []int {
	row := make([]int, width)
	for _, idx := range cols {
		if int(idx) < 0 || int(idx) >= width {
			continue
		}
		if v, ok := r.Field(idx); ok {
			row[idx] = v
		}
	}
	return row
}

// caseTables projects every unit of c into the three CSV tables.
func caseTables(c models.Case) []repository.Table {
	mon := repository.Table{Name: MonitorFile, Rows: make([][]int, 0, len(c.Units))}
	st := repository.Table{Name: StaticFile, Rows: make([][]int, 0, len(c.Units))}
	dyn := repository.Table{Name: DynamicFile, Rows: make([][]int, 0, len(c.Units))}

	for _, u := range c.Units {
		mon.Rows = append(mon.Rows, Project(u.Monitor, models.MonitorWidth, MonitorColumns))
		st.Rows = append(st.Rows, Project(u.Static, models.StaticWidth, StaticColumns))
		dyn.Rows = append(dyn.Rows, Project(u.Dynamic, models.DynamicWidth, DynamicColumns))
	}
	return []repository.Table{mon, st, dyn}
}
