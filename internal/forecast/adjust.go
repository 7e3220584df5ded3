package forecast

import (
	"fmt"

	"github.com/fyrsmithlabs/habitd/internal/insights"
)

// Adjustment constants. streakBoost captures the motivation-to-protect-streak
// effect; recoveryDip models the short hangover after a sustained push.
const (
	streakBoost      = 0.10
	recoveryDip      = 0.15
	recoveryDipDays  = 2
	consistencyFloor = 60.0
)

// ApplyBehavioralAdjustment corrects the baseline forecast using factors
// derived purely from which insight types are present and their evidence.
// It never re-derives raw statistics. Corrections are additive deltas on the
// already-clipped baseline, re-clipped to [0,100]; each applied factor
// appends a reason string. Any failure while computing adjustments is
// swallowed into a reason string and the baseline is returned intact.
func ApplyBehavioralAdjustment(baseline Result, list []insights.Insight) (out Result) {
	if !baseline.Success {
		return baseline
	}

	out = cloneResult(baseline)
	out.BehavioralFactors = make(map[string]float64)

	defer func() {
		if r := recover(); r != nil {
			out = cloneResult(baseline)
			out.AdjustmentReasons = append(out.AdjustmentReasons,
				fmt.Sprintf("behavioral adjustment failed: %v", r))
			NewMetrics().AdjustmentsTotal.WithLabelValues("failed").Inc()
		}
	}()

	byType := make(map[insights.Type]*insights.Insight, len(list))
	for i := range list {
		if _, seen := byType[list[i].Type]; !seen {
			byType[list[i].Type] = &list[i]
		}
	}

	m := NewMetrics()

	if in, ok := byType[insights.TypeWeekendDip]; ok {
		if factor, applied := applyWeekendDip(&out, in); applied {
			out.BehavioralFactors["weekend_factor"] = factor
			out.AdjustmentReasons = append(out.AdjustmentReasons,
				fmt.Sprintf("weekend days adjusted by %.0f%% based on your weekend completion pattern", factor*100))
			m.AdjustmentsTotal.WithLabelValues("weekend_dip").Inc()
		}
	}

	if _, ok := byType[insights.TypeStreakRisk]; ok {
		for i := range out.Predictions {
			out.Predictions[i] = clip(out.Predictions[i] + baseline.Predictions[i]*streakBoost)
		}
		out.BehavioralFactors["streak_boost"] = streakBoost
		out.AdjustmentReasons = append(out.AdjustmentReasons,
			"predictions raised 10% for streak-protection motivation")
		m.AdjustmentsTotal.WithLabelValues("streak_risk").Inc()
	}

	if _, ok := byType[insights.TypeHighEffortRecovery]; ok {
		days := recoveryDipDays
		if days > len(out.Predictions) {
			days = len(out.Predictions)
		}
		for i := 0; i < days; i++ {
			dip := baseline.Predictions[i] * recoveryDip
			out.Predictions[i] = clip(out.Predictions[i] - dip)
			// Narrow the band from below by half the dip.
			out.LowerBound[i] = clip(out.LowerBound[i] + dip/2)
		}
		out.BehavioralFactors["recovery_dip"] = recoveryDip
		out.AdjustmentReasons = append(out.AdjustmentReasons,
			"first two days lowered 15% to absorb recovery after sustained effort")
		m.AdjustmentsTotal.WithLabelValues("high_effort_recovery").Inc()
	}

	if in, ok := byType[insights.TypeLowConsistency]; ok {
		if score, ok := evidenceFloat(in.Evidence, "consistency_score"); ok && score < consistencyFloor {
			penalty := (consistencyFloor - score) / 100
			out.Confidence = clampUnit(out.Confidence * (1 - penalty))
			out.BehavioralFactors["consistency_penalty"] = penalty
			out.AdjustmentReasons = append(out.AdjustmentReasons,
				fmt.Sprintf("confidence reduced %.0f%% for inconsistent history", penalty*100))
			m.AdjustmentsTotal.WithLabelValues("low_consistency").Inc()
		}
	}

	for i := range out.Predictions {
		if out.UpperBound[i] < out.Predictions[i] {
			out.UpperBound[i] = out.Predictions[i]
		}
		if out.LowerBound[i] > out.Predictions[i] {
			out.LowerBound[i] = out.Predictions[i]
		}
	}

	return out
}

// applyWeekendDip shifts weekend forecast days by the relative gap between
// weekend and weekday averages taken from the insight evidence.
func applyWeekendDip(out *Result, in *insights.Insight) (float64, bool) {
	weekendAvg, ok1 := evidenceFloat(in.Evidence, "weekend_avg")
	weekdayAvg, ok2 := evidenceFloat(in.Evidence, "weekday_avg")
	if !ok1 || !ok2 || weekdayAvg <= 0 {
		return 0, false
	}

	factor := (weekendAvg - weekdayAvg) / weekdayAvg
	applied := false
	for i := range out.Predictions {
		date := out.StartDate.AddDate(0, 0, i)
		// Monday-first weekday index; 5 and 6 are the weekend.
		if (int(date.Weekday())+6)%7 < 5 {
			continue
		}
		out.Predictions[i] = clip(out.Predictions[i] + out.Predictions[i]*factor)
		applied = true
	}
	return factor, applied
}

// evidenceFloat reads a numeric evidence value, tolerating the int and
// float64 shapes a JSON round-trip can produce.
func evidenceFloat(evidence map[string]any, key string) (float64, bool) {
	switch v := evidence[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

// cloneResult deep-copies the slices so adjustment never mutates the
// caller's baseline.
func cloneResult(r Result) Result {
	out := r
	out.Predictions = append([]float64(nil), r.Predictions...)
	out.UpperBound = append([]float64(nil), r.UpperBound...)
	out.LowerBound = append([]float64(nil), r.LowerBound...)
	out.AdjustmentReasons = append([]string(nil), r.AdjustmentReasons...)
	return out
}
