package source

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	_ "github.com/glebarez/sqlite"
)

// LoadSQLite runs query against the SQLite database at path and returns the
// result set as a sheet. NULL values become empty fields.
func LoadSQLite(ctx context.Context, path, query string) (Sheet, error) {
	if query == "" {
		return Sheet{}, errors.New("source: sqlite needs a query")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return Sheet{}, fmt.Errorf("source: opening %s: %w", path, err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return Sheet{}, fmt.Errorf("source: query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return Sheet{}, fmt.Errorf("source: columns: %w", err)
	}
	if len(cols) == 0 {
		return Sheet{}, ErrNoHeader
	}

	sheet := Sheet{Columns: cols}
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return Sheet{}, fmt.Errorf("source: scan: %w", err)
		}
		rec := make([]string, len(cols))
		for i, v := range values {
			rec[i] = formatValue(v)
		}
		sheet.Rows = append(sheet.Rows, rec)
	}
	if err := rows.Err(); err != nil {
		return Sheet{}, fmt.Errorf("source: rows: %w", err)
	}
	return sheet, nil
}

func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(v)
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format(time.RFC3339)
	}
	return fmt.Sprint(v)
}
