package spanlaw

// BoundLine holds every bound one measurement contributes at a fixed
// candidate span value. This is the data an external renderer needs to draw
// one measurement's constraint lines: the Work Law is a vertical line at
// T1 = WorkBound, the greedy bound a line of slope −(P−1) through it, the
// Span Law a horizontal line at T∞ = SpanBound.
type BoundLine struct {
	Measurement Measurement
	WorkBound   float64 // T1 ≤ WorkBound (constant in T∞)
	SpanBound   float64 // T∞ ≤ SpanBound
	GreedyLower float64 // T1 ≥ GreedyLower at the given T∞
}

// RegionSample is the global feasible T1 interval evaluated at one T∞ value.
type RegionSample struct {
	TInf     float64
	Interval Interval
	Feasible bool
}

// BoundsAt evaluates every measurement's bounds at the candidate span tinf.
// Input must be valid; renderers obtain tinf from [0, TightestSpan] of a
// prior Check result.
func BoundsAt(ms []Measurement, tinf float64) ([]BoundLine, error) {
	if err := validateAll(ms); err != nil {
		return nil, err
	}

	lines := make([]BoundLine, len(ms))
	for i, m := range ms {
		lines[i] = BoundLine{
			Measurement: m,
			WorkBound:   m.WorkBound(),
			SpanBound:   m.SpanBound(),
			GreedyLower: m.GreedyLowerAt(tinf),
		}
	}
	return lines, nil
}

// SampleRegion evaluates the global feasible T1 interval at n evenly spaced
// T∞ values across [0, tightest span], endpoints included. n must be ≥ 2.
//
// At each T∞ the interval is [max greedy lower, min work bound]; since the
// lower envelope only relaxes as T∞ grows, a set inconsistent at the
// tightest span is infeasible at every sampled point.
func SampleRegion(ms []Measurement, n int) ([]RegionSample, error) {
	if err := validateAll(ms); err != nil {
		return nil, err
	}
	if n < 2 {
		return nil, &InvalidMeasurementError{Index: -1, Reason: "need at least 2 samples"}
	}

	tightest := ms[0].SpanBound()
	upper := ms[0].WorkBound()
	for _, m := range ms[1:] {
		if m.SpanBound() < tightest {
			tightest = m.SpanBound()
		}
		if m.WorkBound() < upper {
			upper = m.WorkBound()
		}
	}

	samples := make([]RegionSample, n)
	step := tightest / float64(n-1)
	for k := range samples {
		tinf := float64(k) * step
		if k == n-1 {
			tinf = tightest // avoid drift past the span bound
		}

		lower := ms[0].GreedyLowerAt(tinf)
		for _, m := range ms[1:] {
			if l := m.GreedyLowerAt(tinf); l > lower {
				lower = l
			}
		}

		iv := Interval{Lower: lower, Upper: upper}
		samples[k] = RegionSample{TInf: tinf, Interval: iv, Feasible: !iv.Empty()}
	}

	return samples, nil
}
