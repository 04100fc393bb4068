// Package csvio reads delimited job exports into raw rows. It is a thin
// wrapper: tokenization problems and missing files are the only failures.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/jobsift/jobsift/internal/jobs"
)

// Read loads the whole file: the header row and one RawRow per data row.
// Rows shorter than the header are padded with empty cells; cells beyond
// the header are dropped (they have no name to live under).
func Read(path string) ([]string, []jobs.RawRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening input file: %w", err)
	}
	defer file.Close()

	return parse(file)
}

func parse(r io.Reader) ([]string, []jobs.RawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("input file has no header row")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("reading header row: %w", err)
	}

	var rows []jobs.RawRow
	for line := 2; ; line++ {
		cells, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("reading row %d: %w", line, err)
		}

		row := make(jobs.RawRow, len(header))
		for i, name := range header {
			if i < len(cells) {
				row[name] = cells[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}

	return header, rows, nil
}
