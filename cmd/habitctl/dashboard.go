package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/habitd/internal/dashboard"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Interactive terminal dashboard for an export",
	Long: `Run one analysis pass over a tracker export and display the result as
an interactive terminal dashboard.

Examples:
  habitctl dashboard --data export.json
  habitctl dashboard --data export.json --days 60`,
	RunE: runDashboard,
}

func runDashboard(cmd *cobra.Command, args []string) error {
	report, err := runAnalysis(cmd.Context())
	if err != nil {
		return err
	}

	model := dashboard.NewModel(report)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}
