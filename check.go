package spanlaw

import "fmt"

// Status is the outcome of a consistency check.
type Status string

const (
	// StatusConsistent means at least one (T1, T∞) pair satisfies every bound.
	StatusConsistent Status = "consistent"

	// StatusInconsistent means the bounds contradict: no computation could
	// have produced all measurements. This is a result, not an error.
	StatusInconsistent Status = "inconsistent"
)

// Interval is a closed interval of candidate T1 values.
type Interval struct {
	Lower float64
	Upper float64
}

// Empty reports whether the interval contains no points.
func (iv Interval) Empty() bool { return iv.Lower > iv.Upper }

// Width returns Upper − Lower (negative when empty).
func (iv Interval) Width() float64 { return iv.Upper - iv.Lower }

// Contradiction records why no T1 value works: the strongest lower bound
// exceeds the strongest upper bound. Indices identify the measurements
// achieving each bound (first occurrence on ties) in the original input.
type Contradiction struct {
	Lower      float64 // Strongest greedy lower bound on T1
	Upper      float64 // Strongest Work Law upper bound on T1
	LowerIndex int     // Measurement achieving Lower
	UpperIndex int     // Measurement achieving Upper
}

// String states the contradiction the way the feasibility analysis reads:
// the interval that would have to contain T1 is empty.
func (c Contradiction) String() string {
	return fmt.Sprintf("%g <= T1 <= %g has no solution", c.Lower, c.Upper)
}

// PairResult is the compatibility verdict for one unordered pair of
// measurements, computed independently of the full-set check.
type PairResult struct {
	I, J       int  // Indices into the original input, I < J
	Compatible bool // True when the pair alone admits a (T1, T∞)
}

// ConsistencyResult is the complete outcome of a check.
//
// Exactly one of Feasible and Contradiction is set, matching Status.
// Attribution indices depend on input order (first occurrence wins ties);
// every numeric field is invariant under permutation of the input.
type ConsistencyResult struct {
	Status Status

	// TightestSpan is the binding Span Law constraint, min over TP.
	// The feasibility of the whole system is decided at T∞ = TightestSpan:
	// every greedy lower bound is non-increasing in T∞, so if the T1
	// interval is empty there it is empty everywhere.
	TightestSpan float64

	// SpanIndex is the measurement contributing TightestSpan.
	SpanIndex int

	// Feasible is the surviving T1 interval at T∞ = TightestSpan.
	// Nil when inconsistent.
	Feasible *Interval

	// MinParallelism is the implied floor on average parallelism T1/T∞,
	// Feasible.Lower / TightestSpan. Zero when inconsistent.
	MinParallelism float64

	// Contradiction is set iff Status is StatusInconsistent.
	Contradiction *Contradiction

	// Pairwise holds the per-pair breakdown, only from CheckPairwise.
	Pairwise []PairResult
}

// Check determines whether the measurements are mutually consistent under
// the Work Law, Span Law and greedy-scheduler bound.
//
// The algorithm evaluates every bound at the tightest span:
//
//	T∞* = min TP
//	lower = max over i of Pᵢ·TPᵢ − (Pᵢ−1)·T∞*
//	upper = min over i of Pᵢ·TPᵢ
//
// and the set is consistent iff lower ≤ upper. O(n), pure, deterministic.
//
// The only error is malformed input (ErrInvalidMeasurement); an
// inconsistent set is a normal result.
func Check(ms []Measurement) (ConsistencyResult, error) {
	if err := validateAll(ms); err != nil {
		return ConsistencyResult{}, err
	}
	return checkValidated(ms, indices(len(ms))), nil
}

// CheckPairwise is Check plus an independent compatibility verdict for
// every unordered pair of measurements. O(n²).
//
// A pair can be compatible while the full set is not; the converse cannot
// happen. The breakdown is still computed pair by pair rather than derived
// from the full-set outcome, so the report never depends on which
// measurements happen to dominate the global bounds.
func CheckPairwise(ms []Measurement) (ConsistencyResult, error) {
	result, err := Check(ms)
	if err != nil {
		return ConsistencyResult{}, err
	}

	if len(ms) > 1 {
		result.Pairwise = make([]PairResult, 0, len(ms)*(len(ms)-1)/2)
		for i := 0; i < len(ms); i++ {
			for j := i + 1; j < len(ms); j++ {
				pair := checkValidated([]Measurement{ms[i], ms[j]}, []int{i, j})
				result.Pairwise = append(result.Pairwise, PairResult{
					I:          i,
					J:          j,
					Compatible: pair.Status == StatusConsistent,
				})
			}
		}
	}

	return result, nil
}

// checkValidated runs the bound intersection on already-validated input.
// idx maps positions in ms back to the caller's original indices, so
// pairwise sub-checks attribute bounds to the right measurements.
func checkValidated(ms []Measurement, idx []int) ConsistencyResult {
	// Step 1-2: the binding Span Law constraint. First occurrence wins.
	spanAt := 0
	for i, m := range ms {
		if m.SpanBound() < ms[spanAt].SpanBound() {
			spanAt = i
		}
	}
	tightest := ms[spanAt].SpanBound()

	// Step 3-4: strongest bounds on T1 at T∞ = tightest.
	lowerAt, upperAt := 0, 0
	lower := ms[0].GreedyLowerAt(tightest)
	upper := ms[0].WorkBound()
	for i, m := range ms[1:] {
		if l := m.GreedyLowerAt(tightest); l > lower {
			lower, lowerAt = l, i+1
		}
		if u := m.WorkBound(); u < upper {
			upper, upperAt = u, i+1
		}
	}

	result := ConsistencyResult{
		TightestSpan: tightest,
		SpanIndex:    idx[spanAt],
	}

	// Step 5-6: intersect.
	if lower <= upper {
		result.Status = StatusConsistent
		result.Feasible = &Interval{Lower: lower, Upper: upper}
		result.MinParallelism = lower / tightest
	} else {
		result.Status = StatusInconsistent
		result.Contradiction = &Contradiction{
			Lower:      lower,
			Upper:      upper,
			LowerIndex: idx[lowerAt],
			UpperIndex: idx[upperAt],
		}
	}

	return result
}

func indices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}
