package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexshd/spanlaw"
)

var (
	flagFile     string
	flagJSON     bool
	flagPairwise bool
	flagSamples  int
)

var rootCmd = &cobra.Command{
	Use:   "spanlaw",
	Short: "Work/Span Law consistency checking for parallel timing measurements",
	Long: `spanlaw derives the Work Law, Span Law and greedy-scheduler bounds from
(P, T_P) timing measurements and reports whether any single computation
could have produced all of them.`,
	SilenceUsage: true,
}

var checkCmd = &cobra.Command{
	Use:   "check [P:T ...]",
	Short: "Check a measurement set for mutual consistency",
	Long: `Check parses "P:T" measurement tokens (e.g. "4:80" "10:42" "64:9"),
intersects the implied T1 bounds at the tightest span, and prints either
the feasible T1 interval or the exact contradiction.

Inconsistency is a result, not a failure: the command exits 0 either way.
Only malformed input exits non-zero.`,
	Args: cobra.ArbitraryArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&flagFile, "file", "", "load measurements from a YAML file instead of arguments")
	checkCmd.Flags().BoolVar(&flagJSON, "json", false, "emit the JSON result schema")
	checkCmd.Flags().BoolVar(&flagPairwise, "pairwise", false, "include per-pair compatibility breakdown")
	checkCmd.Flags().IntVar(&flagSamples, "samples", 0, "with --json, append N feasible-region samples for a renderer")
	rootCmd.AddCommand(checkCmd)
}

// measurementFile is the YAML input shape:
//
//	measurements:
//	  - p: 4
//	    t: 80
//	  - p: 10
//	    t: 42
type measurementFile struct {
	Measurements []struct {
		P int     `yaml:"p"`
		T float64 `yaml:"t"`
	} `yaml:"measurements"`
}

func loadMeasurements(args []string) ([]spanlaw.Measurement, error) {
	if flagFile == "" {
		if len(args) == 0 {
			return nil, fmt.Errorf(`no measurements: pass "P:T" tokens or --file`)
		}
		return spanlaw.ParseMeasurements(args)
	}

	if len(args) > 0 {
		return nil, fmt.Errorf("pass measurements as arguments or --file, not both")
	}

	data, err := os.ReadFile(flagFile)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", flagFile, err)
	}

	var f measurementFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", flagFile, err)
	}

	ms := make([]spanlaw.Measurement, len(f.Measurements))
	for i, e := range f.Measurements {
		ms[i] = spanlaw.Measurement{P: e.P, TP: e.T}
	}
	return ms, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	ms, err := loadMeasurements(args)
	if err != nil {
		return err
	}

	var result spanlaw.ConsistencyResult
	if flagPairwise {
		result, err = spanlaw.CheckPairwise(ms)
	} else {
		result, err = spanlaw.Check(ms)
	}
	if err != nil {
		return err
	}

	slog.Info("check complete",
		"measurements", len(ms),
		"status", result.Status,
		"tightest_span", result.TightestSpan)

	report := spanlaw.NewReport(ms, result)

	if !flagJSON {
		fmt.Fprint(cmd.OutOrStdout(), report.FormatReadable())
		return nil
	}

	if flagSamples > 0 {
		report.Samples, err = spanlaw.SampleRegion(ms, flagSamples)
		if err != nil {
			return err
		}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
