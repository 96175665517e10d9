package spanlaw

import (
	"math"
	"testing"
)

// Tolerance for comparing derived bounds. The inputs are exact course
// measurements, so anything beyond float64 rounding noise is a real bug.
const boundTolerance = 1e-9

// AssertConsistent verifies the measurement set admits a (T1, T∞) pair.
func AssertConsistent(t *testing.T, ms []Measurement) ConsistencyResult {
	t.Helper()

	result, err := Check(ms)
	if err != nil {
		t.Fatalf("Check failed on valid input: %v", err)
	}

	if result.Status != StatusConsistent {
		t.Errorf("Expected consistent set, got %s\n  contradiction: %v",
			result.Status, result.Contradiction)
		return result
	}

	t.Logf("✓ Consistent: %g ≤ T1 ≤ %g at T∞ = %g",
		result.Feasible.Lower, result.Feasible.Upper, result.TightestSpan)
	return result
}

// AssertInconsistent verifies the bounds contradict, and that the
// contradiction carries the expected strongest lower/upper bounds on T1.
func AssertInconsistent(t *testing.T, ms []Measurement, wantLower, wantUpper float64) ConsistencyResult {
	t.Helper()

	result, err := Check(ms)
	if err != nil {
		t.Fatalf("Check failed on valid input: %v", err)
	}

	if result.Status != StatusInconsistent {
		t.Errorf("Expected inconsistent set, got %s\n  feasible: %+v",
			result.Status, result.Feasible)
		return result
	}

	c := result.Contradiction
	if math.Abs(c.Lower-wantLower) > boundTolerance {
		t.Errorf("Contradiction lower bound: got %g, expected %g", c.Lower, wantLower)
	}
	if math.Abs(c.Upper-wantUpper) > boundTolerance {
		t.Errorf("Contradiction upper bound: got %g, expected %g", c.Upper, wantUpper)
	}

	t.Logf("✓ Inconsistent: %v", c)
	return result
}

// AssertFeasibleInterval verifies both consistency and the exact surviving
// T1 interval at the tightest span.
func AssertFeasibleInterval(t *testing.T, ms []Measurement, wantLower, wantUpper float64) ConsistencyResult {
	t.Helper()

	result := AssertConsistent(t, ms)
	if result.Status != StatusConsistent {
		return result
	}

	iv := result.Feasible
	if math.Abs(iv.Lower-wantLower) > boundTolerance {
		t.Errorf("Feasible lower bound: got %g, expected %g", iv.Lower, wantLower)
	}
	if math.Abs(iv.Upper-wantUpper) > boundTolerance {
		t.Errorf("Feasible upper bound: got %g, expected %g", iv.Upper, wantUpper)
	}

	t.Logf("✓ Feasible interval [%g, %g] matches", iv.Lower, iv.Upper)
	return result
}

// PrintAnalysis outputs the full bound derivation to the test log.
func PrintAnalysis(t *testing.T, ms []Measurement) {
	t.Helper()

	result, err := CheckPairwise(ms)
	if err != nil {
		t.Fatalf("Check failed on valid input: %v", err)
	}

	t.Logf("\n=== Bound Analysis ===")
	t.Logf("  P    T_P      Work ≤    Span ≤    Greedy ≥ (at T∞=%g)", result.TightestSpan)
	t.Logf("  ---  -------  --------  --------  --------")
	for _, m := range ms {
		t.Logf("  %-4d %-8g %-9g %-9g %g",
			m.P, m.TP, m.WorkBound(), m.SpanBound(), m.GreedyLowerAt(result.TightestSpan))
	}

	t.Logf("\nVerdict: %s", result.Status)
	if result.Feasible != nil {
		t.Logf("  %g ≤ T1 ≤ %g, parallelism ≥ %.2f",
			result.Feasible.Lower, result.Feasible.Upper, result.MinParallelism)
	}
	if result.Contradiction != nil {
		t.Logf("  %v", result.Contradiction)
	}
	for _, p := range result.Pairwise {
		t.Logf("  pair (%d, %d): compatible=%v", ms[p.I].P, ms[p.J].P, p.Compatible)
	}
}
