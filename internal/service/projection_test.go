package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hvac_fixtures/internal/models"
)

func TestProject_OnlyListedColumns(t *testing.T) {
	t.Parallel()

	s := models.NewStatic(models.Capabilities{Auto: 1, Heat: 1, Cool: 1, Custom: 1},
		models.Range{Lower: 100, Upper: 300}, models.Range{Lower: 160, Upper: 300}, models.Range{Lower: 180, Upper: 320},
		models.DeadBandFromWire(15), 257)

	row := Project(s, models.StaticWidth, StaticColumns)
	require.Len(t, row, models.StaticWidth)

	set := map[int]int{0: 257, 18: 1, 19: 1, 20: 1, 38: 300, 39: 160, 40: 300, 41: 180, 42: 320, 81: 1, 82: 15}
	for i, v := range row {
		assert.Equal(t, set[i], v, "column %d", i)
	}
}

func TestProject_IgnoresOutOfWidthColumns(t *testing.T) {
	t.Parallel()

	m := models.NewMonitor(3, 2, 256)
	row := Project(m, 5, MonitorColumns)
	assert.Equal(t, []int{0, 256, 0, 0, 0}, row)
}

func TestCaseTables(t *testing.T) {
	t.Parallel()

	c := models.Case{Number: 1}
	for i := 0; i < 3; i++ {
		id := models.FirstUnitID + i
		c.Units = append(c.Units, models.Unit{
			Monitor: models.NewMonitor(i, 0, id),
			Static:  models.NewStatic(models.Capabilities{}, models.Range{}, models.Range{}, models.Range{}, nil, id),
			Dynamic: models.NewDynamic(1, models.Range{}, models.Range{}, models.Range{}, id),
		})
	}

	tables := caseTables(c)
	require.Len(t, tables, 3)
	assert.Equal(t, MonitorFile, tables[0].Name)
	assert.Equal(t, StaticFile, tables[1].Name)
	assert.Equal(t, DynamicFile, tables[2].Name)

	for _, tbl := range tables {
		require.Len(t, tbl.Rows, 3, tbl.Name)
	}
	assert.Equal(t, 258, tables[0].Rows[2][models.MonitorUnitID])
	assert.Equal(t, 2, tables[0].Rows[2][models.MonitorMode])
	assert.Equal(t, models.NoDeadBand, tables[1].Rows[0][models.StaticDeadBand])
	assert.Equal(t, 1, tables[2].Rows[1][models.DynamicStatus])
}

func TestReferenceSheets(t *testing.T) {
	t.Parallel()

	c := models.Case{Number: 1, Units: []models.Unit{{
		Monitor: models.NewMonitor(2, 1, 256),
		Static: models.NewStatic(models.Capabilities{Heat: 1}, models.Range{}, models.Range{Lower: 160, Upper: 300},
			models.Range{}, nil, 256),
		Dynamic: models.NewDynamic(0, models.Range{}, models.Range{}, models.Range{}, 256),
	}}}

	sheets := referenceSheets(c)
	require.Len(t, sheets, 3)

	mon := sheets[0].Rows[0]
	assert.Equal(t, []any{256, "heat", 2, "present", 1}, mon)

	st := sheets[1].Rows[0]
	require.Len(t, st, len(sheets[1].Header))
	assert.Equal(t, "no", st[1])
	assert.Equal(t, "yes", st[2])
	assert.Equal(t, 16.0, st[7])
	assert.Equal(t, "-", st[11])
}
