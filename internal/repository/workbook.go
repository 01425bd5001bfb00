package repository

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// ReferenceFile is the workbook name written inside a case directory.
const ReferenceFile = "reference.xlsx"

const defaultSheet = "Sheet1"

// Sheet is one worksheet of the reference workbook.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]any
}

type WorkbookWriter struct{}

func NewWorkbookWriter() *WorkbookWriter { return &WorkbookWriter{} }

// WriteReference saves dir/reference.xlsx with one worksheet per sheet, a
// styled header row and one row per entry.
func (WorkbookWriter) WriteReference(dir string, sheets ...Sheet) (string, error) {
	path := filepath.Join(dir, ReferenceFile)
	if len(sheets) == 0 {
		return "", &OutputError{Op: "write", Path: path, Err: errors.New("no sheets")}
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return "", &OutputError{Op: "style", Path: path, Err: err}
	}

	for i, sh := range sheets {
		if err := writeSheet(f, sh, headerStyle); err != nil {
			return "", &OutputError{Op: "sheet " + sh.Name, Path: path, Err: err}
		}
		if i == 0 {
			idx, err := f.GetSheetIndex(sh.Name)
			if err != nil {
				return "", &OutputError{Op: "sheet " + sh.Name, Path: path, Err: err}
			}
			f.SetActiveSheet(idx)
		}
	}
	if err := f.DeleteSheet(defaultSheet); err != nil {
		return "", &OutputError{Op: "sheet " + defaultSheet, Path: path, Err: err}
	}

	if err := f.SaveAs(path); err != nil {
		return "", &OutputError{Op: "save", Path: path, Err: err}
	}
	return path, nil
}

func writeSheet(f *excelize.File, sh Sheet, headerStyle int) error {
	if _, err := f.NewSheet(sh.Name); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	header := make([]any, len(sh.Header))
	for i, h := range sh.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sh.Name, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if len(sh.Header) > 0 {
		last, err := excelize.CoordinatesToCellName(len(sh.Header), 1)
		if err != nil {
			return fmt.Errorf("header range: %w", err)
		}
		if err := f.SetCellStyle(sh.Name, "A1", last, headerStyle); err != nil {
			return fmt.Errorf("header style: %w", err)
		}
		lastCol, _, err := excelize.SplitCellName(last)
		if err != nil {
			return fmt.Errorf("header range: %w", err)
		}
		if err := f.SetColWidth(sh.Name, "A", lastCol, 14); err != nil {
			return fmt.Errorf("column width: %w", err)
		}
	}

	for i, row := range sh.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
		r := row
		if err := f.SetSheetRow(sh.Name, cell, &r); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	return nil
}
