package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// LoadCSV reads a sheet from CSV. The first record names the columns and
// every later record must have the same number of fields.
func LoadCSV(r io.Reader) (Sheet, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return Sheet{}, ErrNoHeader
	}
	if err != nil {
		return Sheet{}, fmt.Errorf("source: reading csv header: %w", err)
	}

	sheet := Sheet{Columns: header}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Sheet{}, fmt.Errorf("source: reading csv: %w", err)
		}
		sheet.Rows = append(sheet.Rows, rec)
	}
	return sheet, nil
}

// LoadCSVFile reads a sheet from the CSV file at path.
func LoadCSVFile(path string) (Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return Sheet{}, fmt.Errorf("source: %w", err)
	}
	defer f.Close()
	return LoadCSV(f)
}
