// Package spanlaw checks consistency of parallel execution time measurements.
//
// # Overview
//
// spanlaw answers one question: given wall-clock timings of the same program
// on different processor counts, could they all have come from a single
// computation? Every measurement T_P constrains the (unobservable) work T1
// and span T∞ through three laws:
//
//	Work Law:     T1 ≤ P · T_P
//	Span Law:     T∞ ≤ T_P
//	Greedy Bound: T_P ≤ T1/P + (1 − 1/P)·T∞, i.e. T1 ≥ P·T_P − (P−1)·T∞
//
// A measurement set is consistent iff one (T1, T∞) pair satisfies all of
// them simultaneously. spanlaw derives the bounds, intersects the feasible
// T1 intervals at the tightest span, and reports either the surviving
// interval or the exact contradiction.
//
// # Architecture
//
// The package components:
//
//   - measurement.go - Measurement type, validation, "P:T" token parsing
//   - check.go       - Consistency check and pairwise compatibility
//   - region.go      - Feasible-region sampling for external renderers
//   - report.go      - JSON schema and human-readable reports
//   - assertions.go  - Test helpers for consistency properties
//
// # Quick Start
//
// Check a measurement set:
//
//	result, err := spanlaw.Check([]spanlaw.Measurement{
//	    {P: 4, TP: 80},
//	    {P: 10, TP: 42},
//	    {P: 64, TP: 9},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	switch result.Status {
//	case spanlaw.StatusConsistent:
//	    fmt.Printf("feasible: %.0f ≤ T1 ≤ %.0f at T∞ = %.0f\n",
//	        result.Feasible.Lower, result.Feasible.Upper, result.TightestSpan)
//	case spanlaw.StatusInconsistent:
//	    fmt.Println(result.Contradiction) // "339 <= T1 <= 320 has no solution"
//	}
//
// # Determinism
//
// Check is a pure function: no I/O, no shared state, no goroutines. Results
// are numerically identical under any permutation of the input; only the
// attribution indices (which measurement contributes a bound) depend on
// input order, resolved by first occurrence.
//
// # Inconsistency Is Not an Error
//
// The only error condition is malformed input (non-positive P or T_P).
// An inconsistent measurement set is a successful, fully-specified result:
// the check found a proof that no single computation explains the data.
package spanlaw
