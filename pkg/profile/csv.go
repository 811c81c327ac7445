package profile

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ReadSampleCSV reads a headered CSV into a Sample. The header row fixes the
// column order; every data row must have the same field count.
func ReadSampleCSV(r io.Reader) (Sample, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return Sample{}, fmt.Errorf("profile: csv has no header row")
	}
	if err != nil {
		return Sample{}, fmt.Errorf("profile: read csv header: %w", err)
	}
	columns := make([]string, len(header))
	seen := make(map[string]bool, len(header))
	for i, col := range header {
		columns[i] = strings.TrimSpace(col)
		if columns[i] == "" {
			return Sample{}, fmt.Errorf("profile: csv header has an empty column name at index %d", i)
		}
		if seen[columns[i]] {
			return Sample{}, fmt.Errorf("profile: csv header repeats column %q", columns[i])
		}
		seen[columns[i]] = true
	}

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Sample{}, fmt.Errorf("profile: read csv row %d: %w", len(records)+1, err)
		}
		rec := make(Record, len(columns))
		for i, col := range columns {
			rec[col] = row[i]
		}
		records = append(records, rec)
	}
	return NewSample(columns, records), nil
}
