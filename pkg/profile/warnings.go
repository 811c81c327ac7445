package profile

// Warning strings surfaced on column profiles. "EXCLUDE" prefixed warnings
// drop the column from the model variables.
const (
	warnNone           = "NO WARNING"
	warnNonBinaryLabel = "LABEL WARNING, NON-BINARY EVENT LABEL"
	warnMostlyUnique   = "EXCLUDE, GT 90% UNIQUE"
	warnSomeMissing    = "NULL WARNING, GT 20% MISSING"
	warnMostlyMissing  = "EXCLUDE, GT 50% MISSING"
	warnNumericLowCard = "LIKELY CATEGORICAL, NUMERIC w. LOW CARDINALITY"
)

// screen applies the warning rules in order; later rules win on overlap.
func screen(cp ColumnProfile) string {
	w := warnNone
	if cp.Kind == KindLabel && cp.Cardinality != 2 {
		w = warnNonBinaryLabel
	}
	if cp.Kind == KindCategorical && cp.Stats.DistinctPct > 0.9 {
		w = warnMostlyUnique
	}
	if cp.Stats.NullPct > 0.2 && cp.Stats.NullPct <= 0.5 {
		w = warnSomeMissing
	}
	if cp.Stats.NullPct > 0.5 {
		w = warnMostlyMissing
	}
	if cp.Kind == KindNumeric && cp.Stats.DistinctPct < 0.2 {
		w = warnNumericLowCard
	}
	return w
}
