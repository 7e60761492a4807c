// Package source loads the record collections a table displays and watches
// their files for changes.
package source

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrNoHeader is returned when a source has no column names.
var ErrNoHeader = errors.New("source: no header row")

// Sheet is a rectangular collection of records. Every row has exactly one
// field per column.
type Sheet struct {
	Columns []string
	Rows    [][]string
}

// Len returns the number of records.
func (s Sheet) Len() int {
	return len(s.Rows)
}

// Width returns the number of fields per record.
func (s Sheet) Width() int {
	return len(s.Columns)
}

// Cell returns the field at row, col, or "" when out of range.
func (s Sheet) Cell(row, col int) string {
	if row < 0 || row >= len(s.Rows) || col < 0 || col >= len(s.Rows[row]) {
		return ""
	}
	return s.Rows[row][col]
}

// Kind names a source format.
type Kind string

const (
	KindCSV    Kind = "csv"
	KindSQLite Kind = "sqlite"
)

// DetectKind derives the kind from a file extension, defaulting to CSV.
func DetectKind(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return KindSQLite
	}
	return KindCSV
}

// Spec describes a source to load.
type Spec struct {
	Kind  Kind // Derived from Path when empty
	Path  string
	Query string // Required for KindSQLite
}

// Load reads the sheet described by spec.
func Load(ctx context.Context, spec Spec) (Sheet, error) {
	kind := spec.Kind
	if kind == "" {
		kind = DetectKind(spec.Path)
	}
	switch kind {
	case KindCSV:
		return LoadCSVFile(spec.Path)
	case KindSQLite:
		return LoadSQLite(ctx, spec.Path, spec.Query)
	}
	return Sheet{}, fmt.Errorf("source: unknown kind %q", kind)
}
