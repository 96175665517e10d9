package spanlaw

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Report is the serializable view of a ConsistencyResult together with the
// measurements it was computed from. One schema, no textual fallback: a
// consumer either parses this JSON or reads the human format, never both.
type Report struct {
	Measurements []Measurement
	Result       ConsistencyResult

	// Samples optionally carries feasible-region samples for an external
	// renderer; see SampleRegion. Omitted from the JSON when empty.
	Samples []RegionSample
}

// NewReport pairs a result with its input for serialization.
func NewReport(ms []Measurement, result ConsistencyResult) Report {
	return Report{Measurements: ms, Result: result}
}

type intervalJSON struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

type contradictionJSON struct {
	Lower       float64 `json:"lower"`
	Upper       float64 `json:"upper"`
	LowerSource string  `json:"lower_source"`
	UpperSource string  `json:"upper_source"`
	Text        string  `json:"text"`
}

type pairJSON struct {
	Pair       string `json:"pair"`
	Compatible bool   `json:"compatible"`
}

type sampleJSON struct {
	TInf     float64 `json:"t_inf"`
	Lower    float64 `json:"lower"`
	Upper    float64 `json:"upper"`
	Feasible bool    `json:"feasible"`
}

type reportJSON struct {
	Status        string             `json:"status"`
	Measurements  []string           `json:"measurements"`
	TightestSpan  float64            `json:"tightest_span"`
	SpanSource    string             `json:"span_source"`
	Feasible      *intervalJSON      `json:"feasible"`
	MinParallel   float64            `json:"min_parallelism,omitempty"`
	Contradiction *contradictionJSON `json:"contradiction"`
	Pairwise      []pairJSON         `json:"pairwise,omitempty"`
	Samples       []sampleJSON       `json:"region_samples,omitempty"`
}

// MarshalJSON emits the stable result schema:
//
//	{
//	  "status": "consistent" | "inconsistent",
//	  "measurements": ["4:80", ...],
//	  "tightest_span": 9,
//	  "span_source": "(64, 9)",
//	  "feasible": {"lower": ..., "upper": ...} | null,
//	  "contradiction": {"lower": 339, "upper": 320,
//	                    "lower_source": "(10, 42)", "upper_source": "(4, 80)",
//	                    "text": "339 <= T1 <= 320 has no solution"} | null,
//	  "pairwise": [{"pair": "(10, 64)", "compatible": true}, ...]
//	}
func (r Report) MarshalJSON() ([]byte, error) {
	out := reportJSON{
		Status:       string(r.Result.Status),
		Measurements: make([]string, len(r.Measurements)),
		TightestSpan: r.Result.TightestSpan,
		SpanSource:   r.source(r.Result.SpanIndex),
		MinParallel:  r.Result.MinParallelism,
	}
	for i, m := range r.Measurements {
		out.Measurements[i] = m.String()
	}

	if iv := r.Result.Feasible; iv != nil {
		out.Feasible = &intervalJSON{Lower: iv.Lower, Upper: iv.Upper}
	}
	if c := r.Result.Contradiction; c != nil {
		out.Contradiction = &contradictionJSON{
			Lower:       c.Lower,
			Upper:       c.Upper,
			LowerSource: r.source(c.LowerIndex),
			UpperSource: r.source(c.UpperIndex),
			Text:        c.String(),
		}
	}
	for _, p := range r.Result.Pairwise {
		out.Pairwise = append(out.Pairwise, pairJSON{
			Pair:       fmt.Sprintf("(%d, %d)", r.Measurements[p.I].P, r.Measurements[p.J].P),
			Compatible: p.Compatible,
		})
	}
	for _, s := range r.Samples {
		out.Samples = append(out.Samples, sampleJSON{
			TInf:     s.TInf,
			Lower:    s.Interval.Lower,
			Upper:    s.Interval.Upper,
			Feasible: s.Feasible,
		})
	}

	return json.Marshal(out)
}

// source renders a measurement reference as "(P, TP)".
func (r Report) source(i int) string {
	if i < 0 || i >= len(r.Measurements) {
		return ""
	}
	m := r.Measurements[i]
	return fmt.Sprintf("(%d, %g)", m.P, m.TP)
}

// FormatReadable renders the human report:
//
//	=== Measurement Consistency Check ===
//	Measurements:     4:80 10:42 64:9
//	Tightest Span:    T∞ ≤ 9 (from (64, 9))
//	Overall Status:   INCONSISTENT
//	Contradiction:    339 <= T1 <= 320 has no solution
//	  lower bound 339 from (10, 42), upper bound 320 from (4, 80)
//
// followed by a pairwise table when the breakdown was requested.
// Write-only: nothing in this module or its consumers parses this text.
func (r Report) FormatReadable() string {
	var b strings.Builder

	fmt.Fprintf(&b, "=== Measurement Consistency Check ===\n")
	fmt.Fprintf(&b, "Measurements:     ")
	for i, m := range r.Measurements {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(m.String())
	}
	b.WriteByte('\n')

	fmt.Fprintf(&b, "Tightest Span:    T∞ ≤ %g (from %s)\n",
		r.Result.TightestSpan, r.source(r.Result.SpanIndex))
	fmt.Fprintf(&b, "Overall Status:   %s\n", strings.ToUpper(string(r.Result.Status)))

	if iv := r.Result.Feasible; iv != nil {
		fmt.Fprintf(&b, "Feasible:         %g <= T1 <= %g at T∞ = %g\n",
			iv.Lower, iv.Upper, r.Result.TightestSpan)
		fmt.Fprintf(&b, "Parallelism:      T1/T∞ ≥ %.2f\n", r.Result.MinParallelism)
	}
	if c := r.Result.Contradiction; c != nil {
		fmt.Fprintf(&b, "Contradiction:    %s\n", c)
		fmt.Fprintf(&b, "  lower bound %g from %s, upper bound %g from %s\n",
			c.Lower, r.source(c.LowerIndex), c.Upper, r.source(c.UpperIndex))
	}

	if len(r.Result.Pairwise) > 0 {
		fmt.Fprintf(&b, "\nPairwise Compatibility:\n")
		for _, p := range r.Result.Pairwise {
			verdict := "COMPATIBLE"
			if !p.Compatible {
				verdict = "INCOMPATIBLE"
			}
			fmt.Fprintf(&b, "  %s vs %s: %s\n", r.source(p.I), r.source(p.J), verdict)
		}
	}

	return b.String()
}
