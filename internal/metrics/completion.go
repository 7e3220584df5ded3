package metrics

import (
	"time"

	"github.com/fyrsmithlabs/habitd/internal/habit"
)

// CompletionRate computes the aggregate completion rate over records whose
// date falls within [from, to]: total completed instances divided by total
// instances, as a percentage. This is the count-based definition, not an
// average of daily rates. Zero bounds leave that side of the range open.
//
// An empty range yields 0.0 with raw_inputs.total_instances = 0.
func CompletionRate(records []habit.TaskCompletionRecord, from, to time.Time) Envelope {
	var total, completed int
	for _, r := range records {
		if !from.IsZero() && r.Date.Before(from) {
			continue
		}
		if !to.IsZero() && r.Date.After(to) {
			continue
		}
		total++
		if r.Status.Completed() {
			completed++
		}
	}

	rate := 0.0
	if total > 0 {
		rate = float64(completed) / float64(total) * 100
	}

	return Envelope{
		Metric: "completion_rate",
		Value:  rate,
		RawInputs: map[string]any{
			"total_instances":     total,
			"completed_instances": completed,
		},
	}
}

// DailyRates groups records by calendar day and computes the per-day
// completion rate, ordered chronologically. Records with equal dates are
// aggregated regardless of input order.
func DailyRates(records []habit.TaskCompletionRecord) []habit.DailyRate {
	type bucket struct {
		total     int
		completed int
	}
	byDay := make(map[time.Time]*bucket)
	var days []time.Time
	for _, r := range records {
		day := r.Date.Truncate(24 * time.Hour)
		b, ok := byDay[day]
		if !ok {
			b = &bucket{}
			byDay[day] = b
			days = append(days, day)
		}
		b.total++
		if r.Status.Completed() {
			b.completed++
		}
	}

	sortTimes(days)

	out := make([]habit.DailyRate, 0, len(days))
	for _, day := range days {
		b := byDay[day]
		rate := 0.0
		if b.total > 0 {
			rate = float64(b.completed) / float64(b.total) * 100
		}
		out = append(out, habit.DailyRate{
			Date:           day,
			TotalTasks:     b.total,
			CompletedTasks: b.completed,
			Rate:           rate,
		})
	}
	return out
}

func sortTimes(ts []time.Time) {
	for i := 1; i < len(ts); i++ {
		for j := i; j > 0 && ts[j].Before(ts[j-1]); j-- {
			ts[j], ts[j-1] = ts[j-1], ts[j]
		}
	}
}
