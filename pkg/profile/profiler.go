package profile

import (
	"sort"
	"strings"
)

// Kind is the inferred data kind of a column.
type Kind string

const (
	KindNumeric     Kind = "numeric"
	KindCategorical Kind = "categorical"
	KindFreeText    Kind = "free_text"
	KindLabel       Kind = "label"
	KindTimestamp   Kind = "timestamp"
)

// ColumnProfile describes one profiled column.
type ColumnProfile struct {
	Name        string `json:"name"`
	Kind        Kind   `json:"kind"`
	Cardinality int    `json:"cardinality"`
	Stats       Stats  `json:"stats"`
	Warning     string `json:"warning,omitempty"`

	// LabelValues is set only for the label column: its distinct values
	// ordered by ascending frequency (ties by value).
	LabelValues []string `json:"label_values,omitempty"`
}

// Excluded reports whether the warning screen flagged this column as
// unusable as a model variable.
func (c ColumnProfile) Excluded() bool {
	return strings.HasPrefix(c.Warning, "EXCLUDE")
}

// Schema is the profiling output: one ColumnProfile per input column in the
// original column order, plus the designated label column. It is built once
// per Profile call and never mutated afterwards.
type Schema struct {
	Columns []ColumnProfile `json:"columns"`
	Label   string          `json:"label"`

	// Variables lists the non-label, non-timestamp columns that survived
	// the warning screen, in column order.
	Variables []string `json:"variables"`
}

// Profiler classifies sample columns. The zero value is not usable; call New.
type Profiler struct {
	categoricalFraction float64
	categoricalCap      int
	numericTolerance    float64
	timestampColumn     string
}

// Option configures a Profiler.
type Option func(*Profiler)

// WithCategoricalFraction sets the distinct/rows ratio at or below which a
// string column is classified categorical.
func WithCategoricalFraction(f float64) Option {
	return func(p *Profiler) { p.categoricalFraction = f }
}

// WithCategoricalCap sets the absolute distinct-count cap at or below which
// a string column is classified categorical regardless of row count.
func WithCategoricalCap(n int) Option {
	return func(p *Profiler) { p.categoricalCap = n }
}

// WithNumericTolerance sets the numeric share above which a mixed column is
// reported as ambiguous rather than treated as a string column.
func WithNumericTolerance(f float64) Option {
	return func(p *Profiler) { p.numericTolerance = f }
}

// WithTimestampColumn names the event-timestamp column. It is excluded from
// label candidates and from the model variables.
func WithTimestampColumn(name string) Option {
	return func(p *Profiler) { p.timestampColumn = name }
}

// New constructs a Profiler with the given options.
func New(opts ...Option) *Profiler {
	p := &Profiler{
		categoricalFraction: 0.05,
		categoricalCap:      20,
		numericTolerance:    0.9,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Profile scans the sample once and derives a Schema.
//
// labelHint names the label column; pass "" to let the profiler pick the
// candidate with the smallest distinct-value count (at least 2), excluding
// uniformly-unique columns. Profile is a pure function over its inputs.
func (p *Profiler) Profile(sample Sample, labelHint string) (*Schema, error) {
	if err := sample.validate(); err != nil {
		return nil, err
	}

	byCol := make(map[string]*columnStats, len(sample.Columns))
	for _, col := range sample.Columns {
		byCol[col] = newColumnStats()
	}
	for _, rec := range sample.Records {
		for _, col := range sample.Columns {
			byCol[col].add(rec[col])
		}
	}

	label, err := p.selectLabel(sample.Columns, byCol, labelHint)
	if err != nil {
		return nil, err
	}

	schema := &Schema{Label: label}
	for _, col := range sample.Columns {
		cs := byCol[col]
		cp := ColumnProfile{
			Name:        col,
			Cardinality: len(cs.counts),
			Stats:       cs.stats(),
		}
		switch {
		case col == label:
			cp.Kind = KindLabel
			cp.LabelValues = valuesByFrequency(cs.counts)
		case col == p.timestampColumn:
			cp.Kind = KindTimestamp
		default:
			kind, err := p.classify(col, cs)
			if err != nil {
				return nil, err
			}
			cp.Kind = kind
		}
		cp.Warning = screen(cp)
		schema.Columns = append(schema.Columns, cp)
	}

	for _, cp := range schema.Columns {
		if cp.Kind == KindLabel || cp.Kind == KindTimestamp || cp.Excluded() {
			continue
		}
		schema.Variables = append(schema.Variables, cp.Name)
	}
	return schema, nil
}

// selectLabel applies the hint, or the smallest-cardinality heuristic over
// columns that are neither constant nor uniformly unique.
func (p *Profiler) selectLabel(columns []string, byCol map[string]*columnStats, hint string) (string, error) {
	if hint != "" {
		if _, ok := byCol[hint]; !ok {
			return "", &NoLabelCandidateError{Hint: hint}
		}
		return hint, nil
	}

	best := ""
	bestDistinct := 0
	for _, col := range columns {
		if col == p.timestampColumn {
			continue
		}
		cs := byCol[col]
		distinct := len(cs.counts)
		if distinct < 2 || distinct == cs.rows {
			continue
		}
		if best == "" || distinct < bestDistinct {
			best = col
			bestDistinct = distinct
		}
	}
	if best == "" {
		return "", &NoLabelCandidateError{}
	}
	return best, nil
}

// classify decides the kind of a non-label column.
func (p *Profiler) classify(col string, cs *columnStats) (Kind, error) {
	share := cs.numericShare()
	if cs.nonNull > 0 && share == 1 {
		return KindNumeric, nil
	}
	if share > p.numericTolerance {
		return "", &AmbiguousTypeError{Column: col, NumericShare: share}
	}
	distinct := len(cs.counts)
	if distinct <= p.categoricalCap {
		return KindCategorical, nil
	}
	if cs.rows > 0 && float64(distinct)/float64(cs.rows) <= p.categoricalFraction {
		return KindCategorical, nil
	}
	return KindFreeText, nil
}

// valuesByFrequency orders distinct values by ascending count, ties by value.
func valuesByFrequency(counts map[string]int) []string {
	out := make([]string, 0, len(counts))
	for v := range counts {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		if counts[out[i]] != counts[out[j]] {
			return counts[out[i]] < counts[out[j]]
		}
		return out[i] < out[j]
	})
	return out
}
