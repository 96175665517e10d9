package spanlaw

import (
	"errors"
	"testing"
)

// TestMeasurement_Bounds verifies the three derived bounds against the
// recitation numbers.
func TestMeasurement_Bounds(t *testing.T) {
	tests := []struct {
		m           Measurement
		work        float64
		span        float64
		greedyAt9   float64
		greedyAtTwo float64
	}{
		{Measurement{P: 4, TP: 80}, 320, 80, 293, 314},
		{Measurement{P: 10, TP: 42}, 420, 42, 339, 402},
		{Measurement{P: 64, TP: 9}, 576, 9, 9, 450},
		{Measurement{P: 1, TP: 7}, 7, 7, 7, 7}, // serial: greedy bound is flat
	}

	for _, tt := range tests {
		if got := tt.m.WorkBound(); got != tt.work {
			t.Errorf("%v WorkBound: got %g, expected %g", tt.m, got, tt.work)
		}
		if got := tt.m.SpanBound(); got != tt.span {
			t.Errorf("%v SpanBound: got %g, expected %g", tt.m, got, tt.span)
		}
		if got := tt.m.GreedyLowerAt(9); got != tt.greedyAt9 {
			t.Errorf("%v GreedyLowerAt(9): got %g, expected %g", tt.m, got, tt.greedyAt9)
		}
		if got := tt.m.GreedyLowerAt(2); got != tt.greedyAtTwo {
			t.Errorf("%v GreedyLowerAt(2): got %g, expected %g", tt.m, got, tt.greedyAtTwo)
		}

		t.Logf("✓ %v: work ≤ %g, span ≤ %g", tt.m, tt.work, tt.span)
	}
}

// TestMeasurement_GreedyMeetsWorkLawAtZeroSpan verifies the two T1 bounds
// coincide when T∞ = 0: the feasibility wedge closes at the work line.
func TestMeasurement_GreedyMeetsWorkLawAtZeroSpan(t *testing.T) {
	for _, m := range []Measurement{{P: 4, TP: 80}, {P: 64, TP: 9}, {P: 1, TP: 3}} {
		if m.GreedyLowerAt(0) != m.WorkBound() {
			t.Errorf("%v: greedy lower at T∞=0 is %g, expected work bound %g",
				m, m.GreedyLowerAt(0), m.WorkBound())
		}
	}

	t.Logf("✓ Greedy bound meets Work Law at T∞ = 0")
}

// TestParseMeasurement verifies the "P:T" token format.
func TestParseMeasurement(t *testing.T) {
	tests := []struct {
		token   string
		want    Measurement
		wantErr bool
	}{
		{"4:80", Measurement{P: 4, TP: 80}, false},
		{"10:42", Measurement{P: 10, TP: 42}, false},
		{"64:9", Measurement{P: 64, TP: 9}, false},
		{"8:0.125", Measurement{P: 8, TP: 0.125}, false},
		{" 16 : 2.5 ", Measurement{P: 16, TP: 2.5}, false},
		{"4", Measurement{}, true},        // no separator
		{"4:80:1", Measurement{}, true},   // Cut keeps "80:1", ParseFloat rejects
		{"2.5:80", Measurement{}, true},   // fractional processor count
		{"four:80", Measurement{}, true},  // non-numeric P
		{"4:fast", Measurement{}, true},   // non-numeric T
		{"0:80", Measurement{}, true},     // P below 1
		{"-4:80", Measurement{}, true},    // negative P
		{"4:0", Measurement{}, true},      // zero time
		{"4:-80", Measurement{}, true},    // negative time
		{"", Measurement{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseMeasurement(tt.token)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error for %q, got %v", tt.token, got)
				}
				if !errors.Is(err, ErrInvalidMeasurement) {
					t.Errorf("Error does not wrap ErrInvalidMeasurement: %v", err)
				}
				t.Logf("✓ Rejected %q: %v", tt.token, err)
				return
			}

			if err != nil {
				t.Fatalf("Parse %q failed: %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("Parse %q: got %v, expected %v", tt.token, got, tt.want)
			}
			t.Logf("✓ %q → %v", tt.token, got)
		})
	}
}

// TestParseMeasurements verifies order preservation and fail-fast with the
// offending position.
func TestParseMeasurements(t *testing.T) {
	ms, err := ParseMeasurements([]string{"4:80", "10:42", "64:9"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := []Measurement{{P: 4, TP: 80}, {P: 10, TP: 42}, {P: 64, TP: 9}}
	for i := range want {
		if ms[i] != want[i] {
			t.Errorf("Position %d: got %v, expected %v", i, ms[i], want[i])
		}
	}

	_, err = ParseMeasurements([]string{"4:80", "bogus", "64:9"})
	var ie *InvalidMeasurementError
	if !errors.As(err, &ie) {
		t.Fatalf("Expected *InvalidMeasurementError, got %T", err)
	}
	if ie.Index != 1 || ie.Token != "bogus" {
		t.Errorf("Error attribution: got index %d token %q, expected 1 %q",
			ie.Index, ie.Token, "bogus")
	}

	t.Logf("✓ Sequence parsed in order; bad token pinpointed: %v", ie)
}

// TestMeasurement_StringRoundTrip verifies String emits a parseable token.
func TestMeasurement_StringRoundTrip(t *testing.T) {
	for _, m := range []Measurement{{P: 4, TP: 80}, {P: 8, TP: 0.125}, {P: 10, TP: 42.5}} {
		back, err := ParseMeasurement(m.String())
		if err != nil {
			t.Fatalf("Reparse of %q failed: %v", m.String(), err)
		}
		if back != m {
			t.Errorf("Round trip: %v → %q → %v", m, m.String(), back)
		}
	}

	t.Logf("✓ String/Parse round trip stable")
}
