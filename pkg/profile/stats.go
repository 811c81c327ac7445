package profile

import "strconv"

// Stats holds per-column summary statistics.
type Stats struct {
	Rows        int     `json:"rows"`
	NonNull     int     `json:"not_null"`
	Nulls       int     `json:"null"`
	NullPct     float64 `json:"null_pct"`
	Distinct    int     `json:"nunique"`
	DistinctPct float64 `json:"nunique_pct"`
}

// columnStats accumulates raw counts for one column in a single pass.
type columnStats struct {
	rows    int
	nonNull int
	numeric int
	counts  map[string]int
}

func newColumnStats() *columnStats {
	return &columnStats{counts: make(map[string]int)}
}

func (c *columnStats) add(raw string) {
	c.rows++
	if raw == "" {
		return
	}
	c.nonNull++
	c.counts[raw]++
	if _, err := strconv.ParseFloat(raw, 64); err == nil {
		c.numeric++
	}
}

func (c *columnStats) stats() Stats {
	nulls := c.rows - c.nonNull
	s := Stats{
		Rows:     c.rows,
		NonNull:  c.nonNull,
		Nulls:    nulls,
		Distinct: len(c.counts),
	}
	if c.rows > 0 {
		s.NullPct = float64(nulls) / float64(c.rows)
		s.DistinctPct = float64(len(c.counts)) / float64(c.rows)
	}
	return s
}

// numericShare returns the fraction of non-null values that parse as numbers.
func (c *columnStats) numericShare() float64 {
	if c.nonNull == 0 {
		return 0
	}
	return float64(c.numeric) / float64(c.nonNull)
}
