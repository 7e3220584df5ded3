package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Compute the metric envelopes for an export",
	Long: `Compute every metric envelope (completion rate, streaks, consistency,
balance, effort, trend, smoothing, change points, seasonality) over a
tracker export.

Examples:
  habitctl metrics --data export.json
  habitctl metrics --data export.json --days 90 --json`,
	RunE: runMetrics,
}

func runMetrics(cmd *cobra.Command, args []string) error {
	report, err := runAnalysis(cmd.Context())
	if err != nil {
		return err
	}

	if asJSON {
		return printJSON(report.Metrics)
	}

	names := make([]string, 0, len(report.Metrics))
	for name := range report.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		env := report.Metrics[name]
		fmt.Printf("%-20s %v\n", name, env.Value)
	}
	return nil
}
