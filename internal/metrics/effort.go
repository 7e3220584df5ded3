package metrics

import (
	"math"
	"strings"

	"github.com/fyrsmithlabs/habitd/internal/habit"
)

// EffortTask is the input shape for the effort index: a task duration in
// hours and a difficulty label.
type EffortTask struct {
	Duration   float64 `json:"duration"`
	Difficulty string  `json:"difficulty"`
}

// difficultyWeight maps a difficulty label to its effort weight. Unknown or
// empty labels default to medium.
func difficultyWeight(difficulty string) float64 {
	switch strings.ToLower(strings.TrimSpace(difficulty)) {
	case "low":
		return 1
	case "medium":
		return 2
	case "high":
		return 3
	default:
		return 2
	}
}

// EffortIndex sums task durations and difficulty weights into a single
// effort figure: sum(duration) + sum(difficulty_weight). A duration that is
// not a usable number (NaN, Inf, negative) contributes 0 to the duration
// term; its difficulty weight still counts.
func EffortIndex(tasks []EffortTask) Envelope {
	var durationSum, weightSum float64
	for _, t := range tasks {
		if !math.IsNaN(t.Duration) && !math.IsInf(t.Duration, 0) && t.Duration > 0 {
			durationSum += t.Duration
		}
		weightSum += difficultyWeight(t.Difficulty)
	}

	return Envelope{
		Metric: "effort_index",
		Value:  durationSum + weightSum,
		RawInputs: map[string]any{
			"tasks":        len(tasks),
			"duration_sum": durationSum,
			"weight_sum":   weightSum,
		},
	}
}

// EffortTasks converts completion records into effort-index inputs.
func EffortTasks(records []habit.TaskCompletionRecord) []EffortTask {
	out := make([]EffortTask, 0, len(records))
	for _, r := range records {
		out = append(out, EffortTask{
			Duration:   r.DurationHours,
			Difficulty: r.Difficulty,
		})
	}
	return out
}
