// Package dashboard renders an analyzer report as a terminal dashboard.
//
// The model is static: habitctl runs one analysis pass over a loaded
// export and displays the result, so there is no polling loop. Keys:
// q quits, i toggles insight evidence.
package dashboard

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fyrsmithlabs/habitd/internal/analyzer"
	"github.com/fyrsmithlabs/habitd/internal/forecast"
	"github.com/fyrsmithlabs/habitd/internal/insights"
	"github.com/fyrsmithlabs/habitd/internal/metrics"
)

const (
	sparklineWidth   = 30
	sparklineHeight  = 3
	maxInsightsShown = 5
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("51")).
			Bold(true).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Bold(true).
			MarginTop(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("45"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	healthyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	containerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(1, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			MarginTop(1)

	footerKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Bold(true)

	sparklineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51"))
)

// Model is the bubbletea model for one analyzer report.
type Model struct {
	report       *analyzer.Report
	streakBar    progress.Model
	showEvidence bool
	quitting     bool
}

// NewModel wraps a report for display.
func NewModel(report *analyzer.Report) Model {
	bar := progress.New(
		progress.WithGradient("#00ff00", "#ffff00"),
		progress.WithWidth(40),
	)
	return Model{
		report:    report,
		streakBar: bar,
	}
}

// Init implements tea.Model. The dashboard is static, so no commands.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "i":
			m.showEvidence = !m.showEvidence
			return m, nil
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.report == nil {
		return containerStyle.Render(errorStyle.Render("no report loaded"))
	}
	return m.render()
}

func severityBadge(sev insights.Severity) string {
	switch sev {
	case insights.SeverityHigh:
		return errorStyle.Render("[HIGH]")
	case insights.SeverityMedium:
		return warningStyle.Render("[MED ]")
	default:
		return healthyStyle.Render("[LOW ]")
	}
}

func trendBadge(trend string) string {
	switch trend {
	case forecast.TrendIncreasing:
		return healthyStyle.Render("▲ " + trend)
	case forecast.TrendDecreasing:
		return errorStyle.Render("▼ " + trend)
	default:
		return dimStyle.Render("◆ " + trend)
	}
}

func renderSparkline(data []float64) string {
	if len(data) == 0 {
		return dimStyle.Render(fmt.Sprintf("%*s", sparklineWidth, "no data"))
	}
	spark := sparkline.New(sparklineWidth, sparklineHeight)
	for _, v := range data {
		spark.Push(v)
	}
	return sparklineStyle.Render(spark.View())
}

func (m Model) render() string {
	r := m.report
	var content string

	content += headerStyle.Render(" habitd ") + "\n"
	content += labelStyle.Render("Tracker: ") + valueStyle.Render(r.TrackerID) +
		"   " + dimStyle.Render(FormatDateRange(r.From, r.To)) + "\n"

	// Completion history
	content += "\n" + sectionStyle.Render("┃ Completion") + "\n"

	rates := make([]float64, len(r.DailyRates))
	for i, d := range r.DailyRates {
		rates[i] = d.Rate
	}
	content += labelStyle.Render("  Rate: ") +
		valueStyle.Render(FormatRate(r.Metrics["completion_rate"].Float())) +
		"   " + renderSparkline(rates) + "\n"

	// Streaks
	if summary, ok := r.Metrics["streaks"].Value.(metrics.StreakSummary); ok {
		ratio := 0.0
		if summary.Longest > 0 {
			ratio = float64(summary.Current) / float64(summary.Longest)
		}
		content += labelStyle.Render("  Streak: ") +
			m.streakBar.ViewAs(ratio) +
			" " + dimStyle.Render(fmt.Sprintf("%s of %s best",
			FormatStreak(summary.Current), FormatStreak(summary.Longest))) + "\n"
	}

	// Insights
	content += "\n" + sectionStyle.Render("┃ Insights") + "\n"
	if len(r.Insights) == 0 {
		content += dimStyle.Render("  nothing flagged") + "\n"
	}
	for i, in := range r.Insights {
		if i >= maxInsightsShown {
			content += dimStyle.Render(fmt.Sprintf("  … %d more", len(r.Insights)-maxInsightsShown)) + "\n"
			break
		}
		content += "  " + severityBadge(in.Severity) + " " +
			valueStyle.Render(in.Title) +
			" " + dimStyle.Render(FormatConfidence(in.Confidence)) + "\n"
		if m.showEvidence {
			content += dimStyle.Render("        "+in.Description) + "\n"
			if in.SuggestedAction != "" {
				content += dimStyle.Render("        → "+in.SuggestedAction) + "\n"
			}
		}
	}

	// Forecast
	content += "\n" + sectionStyle.Render("┃ Forecast") + "\n"
	if r.Forecast.Success {
		content += labelStyle.Render("  Trend: ") + trendBadge(r.Forecast.Trend) +
			" " + dimStyle.Render(FormatSlope(r.Forecast.Slope)) + "\n"
		content += labelStyle.Render("  Next: ") +
			renderSparkline(r.Forecast.Predictions) + "\n"
		content += labelStyle.Render("  Confidence: ") +
			valueStyle.Render(FormatConfidence(r.Forecast.Confidence)) + "\n"
	} else {
		content += errorStyle.Render("  "+r.Forecast.Error) + "\n"
	}

	footer := footerKeyStyle.Render("[q]") + footerStyle.Render(" quit  ") +
		footerKeyStyle.Render("[i]") + footerStyle.Render(" evidence")
	content += "\n" + footer

	return containerStyle.Render(content)
}
