package metrics

import (
	"time"

	"github.com/fyrsmithlabs/habitd/internal/habit"
)

// StreakSummary reports the streak structure of a daily success series.
// Current never exceeds Longest.
type StreakSummary struct {
	Current int `json:"current_streak"`
	Longest int `json:"longest_streak"`
	Runs    int `json:"runs"`
}

// DetectStreaks run-length encodes a chronologically ordered boolean series
// of per-day success. A run is a maximal block of consecutive true values.
// Longest is the maximum run length (0 when there are no runs); Current is
// the length of the trailing run, counted only when the series ends in true.
func DetectStreaks(series []bool) Envelope {
	var longest, current, runs int
	run := 0
	for _, ok := range series {
		if ok {
			run++
			if run == 1 {
				runs++
			}
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	// The trailing run counts only if the series actually ends in success.
	if len(series) > 0 && series[len(series)-1] {
		current = run
	}

	return Envelope{
		Metric: "streaks",
		Value: StreakSummary{
			Current: current,
			Longest: longest,
			Runs:    runs,
		},
		RawInputs: map[string]any{
			"days": len(series),
		},
	}
}

// SuccessSeries reduces records to a chronologically ordered per-day success
// series: a day succeeds when at least one record completed that day. When
// templateID is non-empty, only records of that template define success,
// which narrows the streak to a single habit.
func SuccessSeries(records []habit.TaskCompletionRecord, templateID string) ([]time.Time, []bool) {
	byDay := make(map[time.Time]bool)
	var days []time.Time
	for _, r := range records {
		if templateID != "" && r.TemplateID != templateID {
			continue
		}
		day := r.Date.Truncate(24 * time.Hour)
		if _, seen := byDay[day]; !seen {
			days = append(days, day)
		}
		byDay[day] = byDay[day] || r.Status.Completed()
	}

	sortTimes(days)

	series := make([]bool, len(days))
	for i, day := range days {
		series[i] = byDay[day]
	}
	return days, series
}
