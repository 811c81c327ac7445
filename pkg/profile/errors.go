package profile

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptySample is returned when the sample has zero rows.
var ErrEmptySample = errors.New("profile: sample has no rows")

// InconsistentColumnsError is returned when a record's column set disagrees
// with the sample's declared columns.
type InconsistentColumnsError struct {
	Row     int
	Missing []string
	Extra   []string
}

func (e *InconsistentColumnsError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing "+strings.Join(e.Missing, ", "))
	}
	if len(e.Extra) > 0 {
		parts = append(parts, "unexpected "+strings.Join(e.Extra, ", "))
	}
	return fmt.Sprintf("profile: row %d has inconsistent columns (%s)", e.Row, strings.Join(parts, "; "))
}

// NoLabelCandidateError is returned when no label column was hinted and no
// column satisfies the label-cardinality heuristic.
type NoLabelCandidateError struct {
	// Hint is set when a hinted column was not found in the sample.
	Hint string
}

func (e *NoLabelCandidateError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("profile: label column %q not present in sample", e.Hint)
	}
	return "profile: no column satisfies the label-cardinality heuristic and no hint was given"
}

// AmbiguousTypeError is returned when a column mixes numeric and
// non-numeric values closely enough that neither classification is safe.
type AmbiguousTypeError struct {
	Column       string
	NumericShare float64
}

func (e *AmbiguousTypeError) Error() string {
	return fmt.Sprintf("profile: column %q mixes numeric and non-numeric values (%.0f%% numeric)",
		e.Column, e.NumericShare*100)
}
