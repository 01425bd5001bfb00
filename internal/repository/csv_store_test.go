package repository

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCaseDirName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		want string
	}{
		{1, "case01"},
		{9, "case09"},
		{10, "case10"},
		{99, "case99"},
		{100, "case100"},
	}
	for _, tt := range tests {
		if got := CaseDirName(tt.n); got != tt.want {
			t.Errorf("CaseDirName(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestCSVStore_WriteCase(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewCSVStore(root)

	dir, err := store.WriteCase(1,
		Table{Name: "a.csv", Rows: [][]int{{0, 256, 3}, {0, 257, -1}}},
		Table{Name: "b.csv", Rows: [][]int{{1}}},
	)
	if err != nil {
		t.Fatalf("WriteCase: %v", err)
	}
	if want := filepath.Join(root, "case01"); dir != want {
		t.Errorf("dir = %q, want %q", dir, want)
	}

	got, err := os.ReadFile(filepath.Join(dir, "a.csv"))
	if err != nil {
		t.Fatalf("read a.csv: %v", err)
	}
	if want := "0,256,3\r\n0,257,-1\r\n"; string(got) != want {
		t.Errorf("a.csv = %q, want %q", got, want)
	}
	if _, err := os.Stat(filepath.Join(dir, "b.csv")); err != nil {
		t.Errorf("b.csv missing: %v", err)
	}
}

func TestCSVStore_WriteCase_ExistingDirFails(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "case02"), 0o755); err != nil {
		t.Fatal(err)
	}

	_, err := NewCSVStore(root).WriteCase(2, Table{Name: "a.csv", Rows: [][]int{{1}}})

	var oe *OutputError
	if !errors.As(err, &oe) || !errors.Is(err, ErrCaseExists) {
		t.Fatalf("WriteCase error = %v, want OutputError wrapping ErrCaseExists", err)
	}
	if _, err := os.Stat(filepath.Join(root, "case02", "a.csv")); !os.IsNotExist(err) {
		t.Error("existing case directory must not be written into")
	}
}

func TestCSVStore_WriteCase_EmptyRowsCreatesNothing(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	_, err := NewCSVStore(root).WriteCase(1,
		Table{Name: "a.csv", Rows: [][]int{{1}}},
		Table{Name: "b.csv"},
	)
	if !errors.Is(err, ErrEmptyRows) {
		t.Fatalf("WriteCase error = %v, want ErrEmptyRows", err)
	}
	if _, err := os.Stat(filepath.Join(root, "case01")); !os.IsNotExist(err) {
		t.Error("case directory should not be created for empty output")
	}
}

func TestCSVStore_WriteCase_MissingRoot(t *testing.T) {
	t.Parallel()

	_, err := NewCSVStore(filepath.Join(t.TempDir(), "nope")).WriteCase(1, Table{Name: "a.csv", Rows: [][]int{{1}}})

	var oe *OutputError
	if !errors.As(err, &oe) {
		t.Fatalf("WriteCase error = %v, want *OutputError", err)
	}
	if oe.Op != "mkdir" || errors.Is(err, ErrCaseExists) {
		t.Errorf("unexpected output error: %+v", oe)
	}
}

func TestWriteCSV_EmptyRows(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := WriteCSV(path, nil); !errors.Is(err, ErrEmptyRows) {
		t.Fatalf("WriteCSV error = %v, want ErrEmptyRows", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no file should be produced for empty rows")
	}
}
