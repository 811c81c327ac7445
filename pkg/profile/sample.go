// Package profile infers a variable/label schema from a tabular training
// sample. The resulting Schema (and the detector inputs derived from it)
// is what gets mapped onto Amazon Fraud Detector variable, label and
// event-type definitions before any remote call is made.
package profile

import "sort"

// Record maps a column name to its raw value for one row.
// An empty string is treated as a null.
type Record map[string]string

// Sample is an in-memory tabular data sample.
//
// Columns fixes the column order; Records must all carry exactly that
// column set. Profile validates both properties.
type Sample struct {
	Columns []string
	Records []Record
}

// NewSample builds a Sample from a column list and rows.
func NewSample(columns []string, records []Record) Sample {
	return Sample{Columns: columns, Records: records}
}

// validate checks record/column consistency ahead of profiling.
func (s Sample) validate() error {
	if len(s.Records) == 0 {
		return ErrEmptySample
	}
	for i, rec := range s.Records {
		if len(rec) != len(s.Columns) {
			return inconsistentColumns(i, s.Columns, rec)
		}
		for _, col := range s.Columns {
			if _, ok := rec[col]; !ok {
				return inconsistentColumns(i, s.Columns, rec)
			}
		}
	}
	return nil
}

func inconsistentColumns(row int, columns []string, rec Record) *InconsistentColumnsError {
	want := make(map[string]bool, len(columns))
	for _, c := range columns {
		want[c] = true
	}
	e := &InconsistentColumnsError{Row: row}
	for _, c := range columns {
		if _, ok := rec[c]; !ok {
			e.Missing = append(e.Missing, c)
		}
	}
	for c := range rec {
		if !want[c] {
			e.Extra = append(e.Extra, c)
		}
	}
	sort.Strings(e.Extra)
	return e
}
