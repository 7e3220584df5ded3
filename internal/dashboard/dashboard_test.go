package dashboard

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/fyrsmithlabs/habitd/internal/analyzer"
	"github.com/fyrsmithlabs/habitd/internal/forecast"
	"github.com/fyrsmithlabs/habitd/internal/habit"
	"github.com/fyrsmithlabs/habitd/internal/insights"
	"github.com/fyrsmithlabs/habitd/internal/metrics"
)

func sampleReport() *analyzer.Report {
	days := []habit.DailyRate{
		{Date: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), Rate: 80},
		{Date: time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC), Rate: 90},
		{Date: time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC), Rate: 100},
	}
	return &analyzer.Report{
		TrackerID:  "tracker-1",
		From:       days[0].Date,
		To:         days[2].Date,
		DailyRates: days,
		Metrics: map[string]metrics.Envelope{
			"completion_rate": {Metric: "completion_rate", Value: 90.0},
			"streaks": {Metric: "streaks", Value: metrics.StreakSummary{
				Current: 3, Longest: 5, Runs: 2,
			}},
		},
		Insights: []insights.Insight{
			{
				Type:       insights.TypeLowConsistency,
				Severity:   insights.SeverityHigh,
				Title:      "Consistency needs attention",
				Confidence: 0.8,
			},
			{
				Type:       insights.TypeStreakMilestone,
				Severity:   insights.SeverityLow,
				Title:      "New personal best",
				Confidence: 0.9,
			},
		},
		Forecast: forecast.Result{
			Success:     true,
			Predictions: []float64{91, 92, 93},
			Trend:       forecast.TrendIncreasing,
			Slope:       1.2,
			Confidence:  0.7,
		},
		GeneratedAt: time.Now(),
	}
}

func TestModelQuitKey(t *testing.T) {
	model := NewModel(sampleReport())

	keyMsg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	updated, cmd := model.Update(keyMsg)

	m := updated.(Model)
	assert.True(t, m.quitting)
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestModelEvidenceToggle(t *testing.T) {
	model := NewModel(sampleReport())
	assert.NotContains(t, model.View(), "→")

	keyMsg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'i'}}
	updated, cmd := model.Update(keyMsg)
	assert.Nil(t, cmd)

	m := updated.(Model)
	assert.True(t, m.showEvidence)
}

func TestModelInitIsStatic(t *testing.T) {
	model := NewModel(sampleReport())
	assert.Nil(t, model.Init())
}

func TestViewRendersSections(t *testing.T) {
	view := NewModel(sampleReport()).View()

	assert.Contains(t, view, "habitd")
	assert.Contains(t, view, "tracker-1")
	assert.Contains(t, view, "Completion")
	assert.Contains(t, view, "90.0%")
	assert.Contains(t, view, "3 days of 5 days best")
	assert.Contains(t, view, "Insights")
	assert.Contains(t, view, "Consistency needs attention")
	assert.Contains(t, view, "[HIGH]")
	assert.Contains(t, view, "Forecast")
	assert.Contains(t, view, "increasing")
	assert.Contains(t, view, "+1.20/day")
	assert.Contains(t, view, "[q]")
}

func TestViewFailedForecast(t *testing.T) {
	report := sampleReport()
	report.Forecast = forecast.Result{
		Success: false,
		Error:   "insufficient data: need at least 7 days",
	}

	view := NewModel(report).View()
	assert.Contains(t, view, "insufficient data")
}

func TestViewNilReport(t *testing.T) {
	view := NewModel(nil).View()
	assert.Contains(t, view, "no report loaded")
}

func TestViewNoInsights(t *testing.T) {
	report := sampleReport()
	report.Insights = nil

	view := NewModel(report).View()
	assert.Contains(t, view, "nothing flagged")
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "87.5%", FormatRate(87.5))
	assert.Equal(t, "1 day", FormatStreak(1))
	assert.Equal(t, "4 days", FormatStreak(4))
	assert.Equal(t, "+0.50/day", FormatSlope(0.5))
	assert.Equal(t, "-1.25/day", FormatSlope(-1.25))
	assert.Equal(t, "70%", FormatConfidence(0.7))
	assert.Equal(t, "all history", FormatDateRange(time.Time{}, time.Time{}))
	assert.Equal(t, "Jun 1 - Jun 3",
		FormatDateRange(
			time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC),
		))
}
