package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Forecast completion rates with behavioral adjustment",
	Long: `Fit a trend over the export's daily completion rates and print the
behaviorally adjusted forecast with its prediction interval.

Examples:
  habitctl forecast --data export.json --horizon 14
  habitctl forecast --data export.json --json`,
	RunE: runForecast,
}

func runForecast(cmd *cobra.Command, args []string) error {
	report, err := runAnalysis(cmd.Context())
	if err != nil {
		return err
	}
	fc := report.Forecast

	if asJSON {
		return printJSON(fc)
	}

	if !fc.Success {
		return fmt.Errorf("forecast unavailable: %s", fc.Error)
	}

	fmt.Printf("Tracker %s: %d days analyzed, trend %s (slope %+.2f/day), confidence %.0f%%\n",
		report.TrackerID, fc.DaysAnalyzed, fc.Trend, fc.Slope, fc.Confidence*100)

	date := fc.StartDate
	for i, p := range fc.Predictions {
		fmt.Printf("  %s  %6.1f%%  [%5.1f - %5.1f]\n",
			date.AddDate(0, 0, i).Format("2006-01-02"), p, fc.LowerBound[i], fc.UpperBound[i])
	}

	if len(fc.AdjustmentReasons) > 0 {
		fmt.Println("Adjustments:")
		for _, reason := range fc.AdjustmentReasons {
			fmt.Printf("  - %s\n", reason)
		}
	}
	return nil
}
