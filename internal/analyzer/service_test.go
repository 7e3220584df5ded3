package analyzer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/habitd/internal/habit"
	"github.com/fyrsmithlabs/habitd/internal/insights"
	"github.com/fyrsmithlabs/habitd/internal/telemetry"
	"github.com/fyrsmithlabs/habitd/internal/textsignal"
)

// day returns midnight UTC of June n, 2026. June 1, 2026 is a Monday.
func day(n int) time.Time {
	return time.Date(2026, 6, n, 0, 0, 0, 0, time.UTC)
}

// trackerRecords builds two weeks of alternating Health and Work tasks,
// all completed except one missed Work task per week.
func trackerRecords() []habit.TaskCompletionRecord {
	var out []habit.TaskCompletionRecord
	for i := 0; i < 14; i++ {
		status := habit.StatusDone
		if i%7 == 3 {
			status = habit.StatusMissed
		}
		out = append(out,
			habit.TaskCompletionRecord{
				Date: day(1 + i), TrackerID: "tracker-1", TemplateID: "run",
				Status: habit.StatusDone, Category: "Health", Difficulty: "medium",
			},
			habit.TaskCompletionRecord{
				Date: day(1 + i), TrackerID: "tracker-1", TemplateID: "inbox",
				Status: status, Category: "Work", Difficulty: "low",
			},
		)
	}
	return out
}

func newTestService(t *testing.T, source habit.TimeSeriesSource) *Service {
	t.Helper()
	svc, err := NewService(source, textsignal.NewLexiconExtractor(), Options{
		Engine: insights.DefaultConfig(),
	})
	require.NoError(t, err)
	return svc
}

func TestAnalyzeFullPass(t *testing.T) {
	notes := []habit.Note{
		{Date: day(3), TrackerID: "tracker-1", Content: "great run, slept 8 hours"},
		{Date: day(4), TrackerID: "tracker-1", Content: "awful day, didn't sleep well"},
	}
	source := habit.NewSliceSource(trackerRecords(), notes)
	svc := newTestService(t, source)

	report, err := svc.Analyze(context.Background(), "tracker-1", time.Time{}, time.Time{}, 7)
	require.NoError(t, err)

	assert.Equal(t, "tracker-1", report.TrackerID)
	assert.Len(t, report.DailyRates, 14)
	assert.False(t, report.GeneratedAt.IsZero())

	for _, name := range []string{
		"completion_rate", "streaks", "interval_consistency",
		"rolling_consistency", "balance", "effort", "smoothed_rates",
		"trend", "change_points", "seasonality", "correlations",
	} {
		assert.Contains(t, report.Metrics, name)
	}

	require.True(t, report.Forecast.Success)
	assert.Len(t, report.Forecast.Predictions, 7)
	assert.Equal(t, 14, report.Forecast.DaysAnalyzed)

	for _, in := range report.Insights {
		assert.NotEmpty(t, in.ID)
		assert.NotEmpty(t, in.Type)
		assert.NotEmpty(t, in.Title)
	}
}

// Missed days count as observations but not completions, so only the
// completed dates feed the interval score. Two completions nine days apart
// leave a single gap, which is perfectly regular by definition.
func TestAnalyzeIntervalConsistencySkipsMissedDays(t *testing.T) {
	records := []habit.TaskCompletionRecord{
		{Date: day(1), TrackerID: "tracker-1", TemplateID: "run", Status: habit.StatusDone, Category: "Health"},
		{Date: day(2), TrackerID: "tracker-1", TemplateID: "run", Status: habit.StatusMissed, Category: "Health"},
		{Date: day(3), TrackerID: "tracker-1", TemplateID: "run", Status: habit.StatusMissed, Category: "Health"},
		{Date: day(10), TrackerID: "tracker-1", TemplateID: "run", Status: habit.StatusDone, Category: "Health"},
	}
	source := habit.NewSliceSource(records, nil)
	svc := newTestService(t, source)

	report, err := svc.Analyze(context.Background(), "tracker-1", time.Time{}, time.Time{}, 7)
	require.NoError(t, err)

	env, ok := report.Metrics["interval_consistency"]
	require.True(t, ok)
	assert.InDelta(t, 100.0, env.Float(), 1e-9)
	assert.Equal(t, 2, env.RawInputs["events"])
}

func TestAnalyzeEmptyRange(t *testing.T) {
	source := habit.NewSliceSource(nil, nil)
	svc := newTestService(t, source)

	report, err := svc.Analyze(context.Background(), "tracker-1", time.Time{}, time.Time{}, 7)
	require.NoError(t, err)

	assert.Empty(t, report.DailyRates)
	assert.Empty(t, report.Insights)
	assert.False(t, report.Forecast.Success)
	assert.Contains(t, report.Forecast.Error, "insufficient data")
}

func TestAnalyzeDateFiltering(t *testing.T) {
	source := habit.NewSliceSource(trackerRecords(), nil)
	svc := newTestService(t, source)

	report, err := svc.Analyze(context.Background(), "tracker-1", day(1), day(7), 7)
	require.NoError(t, err)
	assert.Len(t, report.DailyRates, 7)
}

func TestAnalyzeDefaultHorizon(t *testing.T) {
	source := habit.NewSliceSource(trackerRecords(), nil)
	svc, err := NewService(source, nil, Options{
		Engine:  insights.DefaultConfig(),
		Horizon: 3,
	})
	require.NoError(t, err)

	report, err := svc.Analyze(context.Background(), "tracker-1", time.Time{}, time.Time{}, 0)
	require.NoError(t, err)
	assert.Len(t, report.Forecast.Predictions, 3)
}

type failingSource struct{ err error }

func (f failingSource) Records(context.Context, string, time.Time, time.Time) ([]habit.TaskCompletionRecord, error) {
	return nil, f.err
}

func (f failingSource) Notes(context.Context, string, time.Time, time.Time) ([]habit.Note, error) {
	return nil, f.err
}

func TestAnalyzeSourceError(t *testing.T) {
	svc := newTestService(t, failingSource{err: errors.New("db down")})

	_, err := svc.Analyze(context.Background(), "tracker-1", time.Time{}, time.Time{}, 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch records")
}

func TestNewServiceValidation(t *testing.T) {
	_, err := NewService(nil, nil, Options{Engine: insights.DefaultConfig()})
	require.ErrorIs(t, err, ErrNoSource)

	bad := insights.DefaultConfig()
	bad.ConsistencyCutoff = -1
	_, err = NewService(habit.NewSliceSource(nil, nil), nil, Options{Engine: bad})
	require.Error(t, err)
}

func TestAnalyzeTracing(t *testing.T) {
	tt := telemetry.NewTestTelemetry()
	source := habit.NewSliceSource(trackerRecords(), nil)

	svc, err := NewService(source, nil, Options{
		Engine: insights.DefaultConfig(),
		Tracer: tt.Tracer("habitd/analyzer"),
	})
	require.NoError(t, err)

	_, err = svc.Analyze(context.Background(), "tracker-1", time.Time{}, time.Time{}, 7)
	require.NoError(t, err)

	tt.AssertSpanExists(t, "analyzer.Analyze")
}
