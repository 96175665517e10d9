// Command spanlaw checks consistency of parallel execution time measurements.
//
// Usage:
//
//	spanlaw check 4:80 10:42 64:9
//	spanlaw check --file measurements.yaml --pairwise --json
//	spanlaw check 4:80 10:42 --json --samples 100
//
// Measurements are "P:T" tokens (processor count, observed time) or a YAML
// file. Exit code is non-zero only for malformed input: an inconsistent
// measurement set is a successful result and exits 0.
package main

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

func init() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// cobra already printed the error
		os.Exit(1)
	}
}
