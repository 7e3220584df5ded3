package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/habitd/internal/habit"
	"github.com/fyrsmithlabs/habitd/internal/textsignal"
)

// day returns midnight UTC of 2026-06-n. June 1st 2026 is a Monday, which
// makes weekday arithmetic in these tests easy to follow.
func day(n int) time.Time {
	return time.Date(2026, 6, n, 0, 0, 0, 0, time.UTC)
}

func record(n int, status habit.Status, category string) habit.TaskCompletionRecord {
	return habit.TaskCompletionRecord{
		Date:       day(n),
		TrackerID:  "t1",
		TemplateID: "habit-a",
		Status:     status,
		Category:   category,
		Weight:     1,
	}
}

func TestBuildSnapshotBasics(t *testing.T) {
	records := []habit.TaskCompletionRecord{
		record(1, habit.StatusDone, "Health"),
		record(1, habit.StatusMissed, "Work"),
		record(2, habit.StatusDone, "Health"),
		record(3, habit.StatusDone, "Health"),
		record(4, habit.StatusDone, "Work"),
	}

	snap := BuildSnapshot(records, nil, nil, DefaultConfig())

	assert.Equal(t, 4, snap.DaysObserved)
	assert.InDelta(t, 80.0, snap.CompletionRate, 1e-9) // 4 of 5 instances
	assert.Equal(t, 4, snap.Streaks.Current)
	assert.Equal(t, 4, snap.Streaks.Longest)
	assert.Equal(t, map[string]int{"Health": 3, "Work": 2}, snap.CategoryCounts)
	assert.Equal(t, "Health", snap.DominantCategory)
	assert.InDelta(t, 0.6, snap.DominantShare, 1e-9)
	assert.Len(t, snap.SmoothedRates, 4)
	assert.Len(t, snap.EffortByDay, 4)
	assert.InDelta(t, snap.Streaks.Current, float64(snap.Streaks.Longest), 0)
}

func TestBuildSnapshotWeekdaySplit(t *testing.T) {
	// June 2026: the 6th and 7th are the first weekend.
	var records []habit.TaskCompletionRecord
	for n := 1; n <= 7; n++ {
		status := habit.StatusDone
		if n >= 6 {
			status = habit.StatusMissed
		}
		records = append(records, record(n, status, "Health"))
	}

	snap := BuildSnapshot(records, nil, nil, DefaultConfig())

	assert.Equal(t, 5, snap.WeekdayDays)
	assert.Equal(t, 2, snap.WeekendDays)
	assert.InDelta(t, 100.0, snap.WeekdayAvg, 1e-9)
	assert.InDelta(t, 0.0, snap.WeekendAvg, 1e-9)
}

func TestBuildSnapshotTextSignals(t *testing.T) {
	records := []habit.TaskCompletionRecord{
		record(1, habit.StatusDone, "Health"),
		record(2, habit.StatusMissed, "Health"),
	}
	notes := []habit.Note{
		{Date: day(1), TrackerID: "t1", Content: "great day, slept 8 hours"},
		{Date: day(2), TrackerID: "t1", Content: "exhausted, slept only 4 hours"},
	}

	snap := BuildSnapshot(records, notes, textsignal.NewLexiconExtractor(), DefaultConfig())

	assert.Equal(t, 2, snap.MoodDays)
	require.Len(t, snap.SleepNights, 2)
	assert.InDelta(t, 8.0, snap.SleepNights[0].Hours, 1e-9)
	assert.InDelta(t, 4.0, snap.SleepNights[1].Hours, 1e-9)
}

func TestBuildSnapshotPrecomputedSentiment(t *testing.T) {
	// Notes with a stored sentiment need no extractor.
	records := []habit.TaskCompletionRecord{
		record(1, habit.StatusDone, "Health"),
	}
	notes := []habit.Note{
		{Date: day(1), TrackerID: "t1", Content: "whatever",
			Sentiment: &habit.SentimentScore{Compound: 0.7, Pos: 0.3, Neu: 0.7}},
	}

	snap := BuildSnapshot(records, notes, nil, DefaultConfig())
	assert.Equal(t, 1, snap.MoodDays)
	assert.Empty(t, snap.SleepNights)
}

func TestBuildSnapshotEmpty(t *testing.T) {
	snap := BuildSnapshot(nil, nil, nil, DefaultConfig())
	assert.Equal(t, 0, snap.DaysObserved)
	assert.Equal(t, 0.0, snap.CompletionRate)
	assert.Equal(t, 0, snap.Streaks.Longest)
	assert.Equal(t, 0.0, snap.ConsistencyScore)
	assert.Empty(t, snap.CategoryCounts)
}
