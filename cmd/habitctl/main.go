// Package main implements habitctl, a developer CLI that runs the habitd
// analytics engines over a tracker JSON export.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	dataPath   string
	trackerID  string
	days       int
	horizon    int
	asJSON     bool

	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "habitctl",
	Short: "Behavioral analytics over a habit tracker export",
	Long: `habitctl runs the habitd metrics, insight, and forecast engines over
a tracker data export (JSON) and prints or displays the results.

Examples:
  # Rule-based insights for the last 30 days
  habitctl insights --data export.json --days 30

  # 14-day completion forecast
  habitctl forecast --data export.json --horizon 14

  # Interactive terminal dashboard
  habitctl dashboard --data export.json`,
	Version: version,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "config file (default ~/.config/habitd/config.yaml)")
	pf.StringVar(&dataPath, "data", "", "tracker export JSON file (required)")
	pf.StringVar(&trackerID, "tracker", "", "tracker ID (default: the export's tracker)")
	pf.IntVar(&days, "days", 0, "restrict analysis to the trailing N days (0 = all history)")
	pf.IntVar(&horizon, "horizon", 0, "forecast length in days (0 = configured default)")
	pf.BoolVar(&asJSON, "json", false, "emit raw JSON instead of formatted text")

	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(forecastCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(dashboardCmd)
}
