package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWorkbookWriter_WriteReference(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path, err := NewWorkbookWriter().WriteReference(dir,
		Sheet{Name: "R02", Header: []string{"Unit ID", "Mode"}, Rows: [][]any{{256, "auto"}, {257, "heat"}}},
		Sheet{Name: "R03", Header: []string{"Unit ID", "Dead-band"}, Rows: [][]any{{256, "-"}}},
	)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"R02", "R03"}, f.GetSheetList())

	v, err := f.GetCellValue("R02", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Mode", v)

	v, err = f.GetCellValue("R02", "A3")
	require.NoError(t, err)
	assert.Equal(t, "257", v)

	v, err = f.GetCellValue("R03", "B2")
	require.NoError(t, err)
	assert.Equal(t, "-", v)
}

func TestWorkbookWriter_NoSheets(t *testing.T) {
	t.Parallel()

	_, err := NewWorkbookWriter().WriteReference(t.TempDir())
	var oe *OutputError
	assert.ErrorAs(t, err, &oe)
}
