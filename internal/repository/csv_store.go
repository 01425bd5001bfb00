package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
)

// Output failure sentinels. Both are wrapped in an *OutputError.
var (
	ErrCaseExists = errors.New("case directory already exists")
	ErrEmptyRows  = errors.New("no rows to write")
)

// OutputError reports that fixture output could not be written.
type OutputError struct {
	Op   string
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("cannot write output: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *OutputError) Unwrap() error { return e.Err }

// Table is one CSV file: a name inside the case directory and its rows.
type Table struct {
	Name string
	Rows [][]int
}

// CaseDirName returns the directory name of a 1-based case number.
func CaseDirName(number int) string {
	return fmt.Sprintf("case%02d", number)
}

type CSVStore struct {
	root string
}

func NewCSVStore(root string) *CSVStore {
	return &CSVStore{root: root}
}

// WriteCase creates root/caseNN and writes every table into it. The directory
// must not exist yet, and every table must have rows; both are checked before
// anything is created on disk where possible.
func (s *CSVStore) WriteCase(number int, tables ...Table) (string, error) {
	dir := filepath.Join(s.root, CaseDirName(number))

	if len(tables) == 0 {
		return "", &OutputError{Op: "write", Path: dir, Err: ErrEmptyRows}
	}
	for _, t := range tables {
		if len(t.Rows) == 0 {
			return "", &OutputError{Op: "write", Path: filepath.Join(dir, t.Name), Err: ErrEmptyRows}
		}
	}

	if err := os.Mkdir(dir, 0o755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", &OutputError{Op: "mkdir", Path: dir, Err: ErrCaseExists}
		}
		return "", &OutputError{Op: "mkdir", Path: dir, Err: err}
	}

	for _, t := range tables {
		if err := WriteCSV(filepath.Join(dir, t.Name), t.Rows); err != nil {
			return dir, err
		}
	}
	return dir, nil
}

// WriteCSV writes rows of integers to path with CRLF line endings. Empty input
// fails without creating the file.
func WriteCSV(path string, rows [][]int) error {
	if len(rows) == 0 {
		return &OutputError{Op: "write", Path: path, Err: ErrEmptyRows}
	}

	f, err := os.Create(path)
	if err != nil {
		return &OutputError{Op: "create", Path: path, Err: err}
	}

	w := csv.NewWriter(f)
	w.UseCRLF = true
	record := make([]string, 0, len(rows[0]))
	for _, row := range rows {
		record = record[:0]
		for _, v := range row {
			record = append(record, strconv.Itoa(v))
		}
		if err := w.Write(record); err != nil {
			_ = f.Close()
			return &OutputError{Op: "write", Path: path, Err: err}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return &OutputError{Op: "write", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &OutputError{Op: "close", Path: path, Err: err}
	}
	return nil
}
