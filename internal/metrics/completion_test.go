package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/habitd/internal/habit"
)

func day(n int) time.Time {
	return time.Date(2026, 4, n, 0, 0, 0, 0, time.UTC)
}

func TestCompletionRate_Empty(t *testing.T) {
	env := CompletionRate(nil, time.Time{}, time.Time{})
	assert.Equal(t, 0.0, env.Value)
	assert.Equal(t, 0, env.RawInputs["total_instances"])
}

func TestCompletionRate_AggregateCount(t *testing.T) {
	// Aggregate count, not average of daily rates: day 1 has 1/2, day 2 has
	// 3/3 → 4/5 = 80%, not (50+100)/2 = 75%.
	records := []habit.TaskCompletionRecord{
		{Date: day(1), Status: habit.StatusDone},
		{Date: day(1), Status: habit.StatusMissed},
		{Date: day(2), Status: habit.StatusDone},
		{Date: day(2), Status: habit.StatusDone},
		{Date: day(2), Status: habit.StatusDone},
	}
	env := CompletionRate(records, time.Time{}, time.Time{})
	assert.InDelta(t, 80.0, env.Value, 1e-9)
	assert.Equal(t, 5, env.RawInputs["total_instances"])
	assert.Equal(t, 4, env.RawInputs["completed_instances"])
}

func TestCompletionRate_RangeFiltering(t *testing.T) {
	records := []habit.TaskCompletionRecord{
		{Date: day(1), Status: habit.StatusDone},
		{Date: day(5), Status: habit.StatusMissed},
		{Date: day(9), Status: habit.StatusDone},
	}
	env := CompletionRate(records, day(2), day(8))
	assert.Equal(t, 0.0, env.Value)
	assert.Equal(t, 1, env.RawInputs["total_instances"])
}

func TestCompletionRate_OnlyDoneCounts(t *testing.T) {
	records := []habit.TaskCompletionRecord{
		{Date: day(1), Status: habit.StatusDone},
		{Date: day(1), Status: habit.StatusInProgress},
		{Date: day(1), Status: habit.StatusSkipped},
		{Date: day(1), Status: habit.StatusTodo},
	}
	env := CompletionRate(records, time.Time{}, time.Time{})
	assert.InDelta(t, 25.0, env.Value, 1e-9)
}

func TestDailyRates(t *testing.T) {
	records := []habit.TaskCompletionRecord{
		{Date: day(2), Status: habit.StatusDone},
		{Date: day(1), Status: habit.StatusDone},
		{Date: day(1), Status: habit.StatusMissed},
		{Date: day(2), Status: habit.StatusDone},
	}

	rates := DailyRates(records)
	require.Len(t, rates, 2)

	assert.Equal(t, day(1), rates[0].Date)
	assert.Equal(t, 2, rates[0].TotalTasks)
	assert.Equal(t, 1, rates[0].CompletedTasks)
	assert.InDelta(t, 50.0, rates[0].Rate, 1e-9)

	assert.Equal(t, day(2), rates[1].Date)
	assert.InDelta(t, 100.0, rates[1].Rate, 1e-9)

	for _, r := range rates {
		assert.GreaterOrEqual(t, r.Rate, 0.0)
		assert.LessOrEqual(t, r.Rate, 100.0)
		assert.LessOrEqual(t, r.CompletedTasks, r.TotalTasks)
	}
}
