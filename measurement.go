package spanlaw

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidMeasurement is the sentinel for all malformed-input failures.
// Match with errors.Is; the concrete error is always *InvalidMeasurementError.
var ErrInvalidMeasurement = errors.New("invalid measurement")

// InvalidMeasurementError reports a malformed measurement and where it came from.
type InvalidMeasurementError struct {
	Index  int    // Position in the input sequence (-1 when parsing a lone token)
	Token  string // Original token, if the measurement came from text
	Reason string
}

func (e *InvalidMeasurementError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("invalid measurement %q: %s", e.Token, e.Reason)
	}
	return fmt.Sprintf("invalid measurement at index %d: %s", e.Index, e.Reason)
}

func (e *InvalidMeasurementError) Unwrap() error { return ErrInvalidMeasurement }

// Measurement is one observed timing: the program finished in TP seconds
// (or any fixed unit) using P processors. Values are immutable once built.
//
// Duplicate P values with differing TP are legal; they simply contribute
// two constraints, exactly like measurements on distinct processor counts.
type Measurement struct {
	P  int     // Processor count (≥ 1)
	TP float64 // Observed wall-clock time (> 0)
}

// Validate checks the domain constraints: P ≥ 1 and TP > 0.
func (m Measurement) Validate() error {
	if m.P < 1 {
		return &InvalidMeasurementError{Index: -1, Reason: fmt.Sprintf("processor count %d, must be ≥ 1", m.P)}
	}
	if !(m.TP > 0) { // rejects zero, negatives and NaN
		return &InvalidMeasurementError{Index: -1, Reason: fmt.Sprintf("time %v, must be > 0", m.TP)}
	}
	return nil
}

// WorkBound returns the Work Law upper bound on T1: perfect linear speedup
// from P processors implies at most P·TP serial work.
func (m Measurement) WorkBound() float64 { return float64(m.P) * m.TP }

// SpanBound returns the Span Law upper bound on T∞: the critical path can
// never be longer than any observed parallel time.
func (m Measurement) SpanBound() float64 { return m.TP }

// GreedyLowerAt returns the greedy-scheduler lower bound on T1 at a
// candidate span value:
//
//	T1 ≥ P·TP − (P−1)·T∞
//
// The bound tightens as T∞ shrinks; at T∞ = 0 it meets the Work Law.
func (m Measurement) GreedyLowerAt(tinf float64) float64 {
	return m.WorkBound() - float64(m.P-1)*tinf
}

// String renders the measurement in the "P:T" token form the CLI accepts.
func (m Measurement) String() string {
	return fmt.Sprintf("%d:%s", m.P, strconv.FormatFloat(m.TP, 'g', -1, 64))
}

// ParseMeasurement parses a "P:T" token, e.g. "64:9" or "10:42.5".
// P must be a positive integer (fractional processor counts are rejected
// here — the type system cannot represent them past this boundary), T a
// positive real.
func ParseMeasurement(token string) (Measurement, error) {
	ps, ts, ok := strings.Cut(token, ":")
	if !ok {
		return Measurement{}, &InvalidMeasurementError{Index: -1, Token: token, Reason: `expected "P:T" form`}
	}

	p, err := strconv.Atoi(strings.TrimSpace(ps))
	if err != nil {
		return Measurement{}, &InvalidMeasurementError{Index: -1, Token: token, Reason: "processor count must be a positive integer"}
	}

	tp, err := strconv.ParseFloat(strings.TrimSpace(ts), 64)
	if err != nil {
		return Measurement{}, &InvalidMeasurementError{Index: -1, Token: token, Reason: "time must be a positive real"}
	}

	m := Measurement{P: p, TP: tp}
	if err := m.Validate(); err != nil {
		var ie *InvalidMeasurementError
		if errors.As(err, &ie) {
			ie.Token = token
		}
		return Measurement{}, err
	}
	return m, nil
}

// ParseMeasurements parses a sequence of "P:T" tokens, preserving order.
func ParseMeasurements(tokens []string) ([]Measurement, error) {
	ms := make([]Measurement, 0, len(tokens))
	for i, tok := range tokens {
		m, err := ParseMeasurement(tok)
		if err != nil {
			var ie *InvalidMeasurementError
			if errors.As(err, &ie) {
				ie.Index = i
			}
			return nil, err
		}
		ms = append(ms, m)
	}
	return ms, nil
}

// validateAll checks every measurement and rejects empty input.
// Fails fast on the first malformed entry; no partial results.
func validateAll(ms []Measurement) error {
	if len(ms) == 0 {
		return &InvalidMeasurementError{Index: -1, Reason: "need at least 1 measurement"}
	}
	for i, m := range ms {
		if err := m.Validate(); err != nil {
			var ie *InvalidMeasurementError
			if errors.As(err, &ie) {
				ie.Index = i
			}
			return err
		}
	}
	return nil
}
