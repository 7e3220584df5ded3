package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Evaluate behavioral insight rules over an export",
	Long: `Evaluate the insight rule battery over a tracker export and print the
triggered insights ranked by severity and confidence.

Examples:
  habitctl insights --data export.json
  habitctl insights --data export.json --days 30 --json`,
	RunE: runInsights,
}

func runInsights(cmd *cobra.Command, args []string) error {
	report, err := runAnalysis(cmd.Context())
	if err != nil {
		return err
	}

	if asJSON {
		return printJSON(report.Insights)
	}

	if len(report.Insights) == 0 {
		fmt.Println("No insights triggered.")
		return nil
	}

	for _, in := range report.Insights {
		fmt.Printf("[%s] %s (%s, confidence %.0f%%)\n",
			in.Severity, in.Title, in.Type, in.Confidence*100)
		fmt.Printf("    %s\n", in.Description)
		if in.SuggestedAction != "" {
			fmt.Printf("    Suggestion: %s\n", in.SuggestedAction)
		}
		if in.ResearchNote != "" {
			fmt.Printf("    Note: %s\n", in.ResearchNote)
		}
	}
	return nil
}
