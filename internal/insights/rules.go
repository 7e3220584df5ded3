package insights

import (
	"fmt"

	"github.com/google/uuid"
)

// Rule is one independent check over a snapshot. Evaluate returns nil when
// the rule does not trigger or lacks the data to decide; it never reports an
// error, and a panic inside Evaluate is contained by the engine.
type Rule struct {
	Name     string
	Evaluate func(*Snapshot) *Insight
}

// defaultRules returns the fixed ordered rule battery. Rules never read each
// other's output; ordering only affects tie-breaks in the final sorted list.
func defaultRules(cfg Config) []Rule {
	return []Rule{
		{Name: "low_consistency", Evaluate: lowConsistency(cfg)},
		{Name: "weekend_dip", Evaluate: weekendDip(cfg)},
		{Name: "streak_risk", Evaluate: streakRisk(cfg)},
		{Name: "mood_correlation", Evaluate: moodCorrelation(cfg)},
		{Name: "sleep_impact", Evaluate: sleepImpact(cfg)},
		{Name: "category_imbalance", Evaluate: categoryImbalance(cfg)},
		{Name: "high_effort_recovery", Evaluate: highEffortRecovery(cfg)},
		{Name: "improvement_trend", Evaluate: improvementTrend(cfg)},
		{Name: "declining_trend", Evaluate: decliningTrend(cfg)},
		{Name: "streak_milestone", Evaluate: streakMilestone(cfg)},
	}
}

func newInsight(t Type, sev Severity, confidence float64) Insight {
	return Insight{
		ID:         uuid.NewString(),
		Type:       t,
		Severity:   sev,
		Confidence: clampConfidence(confidence),
	}
}

func clampConfidence(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func lowConsistency(cfg Config) func(*Snapshot) *Insight {
	return func(s *Snapshot) *Insight {
		if s.DaysObserved < cfg.MinHistoryDays {
			return nil
		}
		if s.ConsistencyScore >= cfg.ConsistencyCutoff {
			return nil
		}
		in := newInsight(TypeLowConsistency, SeverityHigh, 0.8)
		in.Title = "Inconsistent completion pattern"
		in.Description = fmt.Sprintf(
			"Your completions are irregularly spaced (consistency score %.0f of 100). Irregular timing makes habits harder to sustain.",
			s.ConsistencyScore)
		in.Evidence = map[string]any{
			"consistency_score": s.ConsistencyScore,
			"days_observed":     s.DaysObserved,
		}
		in.SuggestedAction = "Anchor the habit to a fixed daily cue, such as right after breakfast."
		in.ResearchNote = "Habit formation research links stable contextual cues to faster automaticity."
		return &in
	}
}

func weekendDip(cfg Config) func(*Snapshot) *Insight {
	return func(s *Snapshot) *Insight {
		if s.DaysObserved < cfg.WeekendMinDays || s.WeekdayDays == 0 || s.WeekendDays == 0 {
			return nil
		}
		if s.WeekdayAvg <= 0 {
			return nil
		}
		dip := (s.WeekdayAvg - s.WeekendAvg) / s.WeekdayAvg
		if dip < cfg.WeekendDipRatio {
			return nil
		}
		in := newInsight(TypeWeekendDip, SeverityMedium, 0.5+dip/2)
		in.Title = "Completion drops on weekends"
		in.Description = fmt.Sprintf(
			"Weekend completion averages %.0f%% against %.0f%% on weekdays, a %.0f%% relative drop.",
			s.WeekendAvg, s.WeekdayAvg, dip*100)
		in.Evidence = map[string]any{
			"weekend_avg":   s.WeekendAvg,
			"weekday_avg":   s.WeekdayAvg,
			"dip_ratio":     dip,
			"days_observed": s.DaysObserved,
		}
		in.SuggestedAction = "Plan a lighter weekend version of the routine instead of skipping it."
		return &in
	}
}

func streakRisk(cfg Config) func(*Snapshot) *Insight {
	return func(s *Snapshot) *Insight {
		if s.Streaks.Current < cfg.MinHistoryDays || s.Streaks.Longest == 0 {
			return nil
		}
		// At or near the personal record.
		if float64(s.Streaks.Current) < 0.8*float64(s.Streaks.Longest) {
			return nil
		}
		if len(s.DailyRates) < 2 {
			return nil
		}
		last := s.DailyRates[len(s.DailyRates)-1].Rate
		prior := s.DailyRates[len(s.DailyRates)-2].Rate
		if last >= prior {
			return nil
		}
		drop := prior - last
		in := newInsight(TypeStreakRisk, SeverityHigh, 0.5+drop/200)
		in.Title = "Your streak is at risk"
		in.Description = fmt.Sprintf(
			"You are %d days into a streak (personal best %d) but yesterday's rate fell from %.0f%% to %.0f%%.",
			s.Streaks.Current, s.Streaks.Longest, prior, last)
		in.Evidence = map[string]any{
			"current_streak": s.Streaks.Current,
			"longest_streak": s.Streaks.Longest,
			"last_rate":      last,
			"prior_rate":     prior,
			"rate_drop":      drop,
		}
		in.SuggestedAction = "Do the smallest possible version of the habit today to keep the streak alive."
		in.ResearchNote = "Loss aversion makes an active streak a strong motivator right before it breaks."
		return &in
	}
}

func moodCorrelation(cfg Config) func(*Snapshot) *Insight {
	return func(s *Snapshot) *Insight {
		c := s.MoodCompletion
		if !c.Significant {
			return nil
		}
		direction := "higher"
		if c.Coefficient < 0 {
			direction = "lower"
		}
		in := newInsight(TypeMoodCorrelation, SeverityMedium, absFloat(c.Coefficient))
		in.Title = "Mood tracks your completion rate"
		in.Description = fmt.Sprintf(
			"Across %d days, better mood coincides with %s completion (r=%.2f, p=%.3f).",
			c.N, direction, c.Coefficient, c.PValue)
		in.Evidence = map[string]any{
			"coefficient": c.Coefficient,
			"p_value":     c.PValue,
			"days":        c.N,
		}
		in.SuggestedAction = "On low-mood days, lower the bar rather than skipping entirely."
		return &in
	}
}

func sleepImpact(cfg Config) func(*Snapshot) *Insight {
	return func(s *Snapshot) *Insight {
		var short int
		var total, sum float64
		for _, n := range s.SleepNights {
			sum += n.Hours
			total++
			if n.Hours < cfg.SleepCutoffHours {
				short++
			}
		}
		if short < cfg.SleepMinNights {
			return nil
		}
		in := newInsight(TypeSleepImpact, SeverityMedium, 0.4+0.1*float64(short))
		in.Title = "Short sleep keeps showing up in your notes"
		in.Description = fmt.Sprintf(
			"%d nights under %.0f hours of sleep were mentioned (average %.1fh across %d nights with data).",
			short, cfg.SleepCutoffHours, sum/total, int(total))
		in.Evidence = map[string]any{
			"short_nights":    short,
			"nights_observed": int(total),
			"avg_sleep_hours": sum / total,
			"cutoff_hours":    cfg.SleepCutoffHours,
		}
		in.SuggestedAction = "Treat sleep as the upstream habit; schedule a fixed wind-down time."
		in.ResearchNote = "Sleep restriction measurably reduces self-regulation the following day."
		return &in
	}
}

func categoryImbalance(cfg Config) func(*Snapshot) *Insight {
	return func(s *Snapshot) *Insight {
		if len(s.CategoryCounts) < 2 {
			return nil
		}
		if s.BalanceScore >= cfg.BalanceCutoff || s.DominantShare <= cfg.DominantShareCutoff {
			return nil
		}
		in := newInsight(TypeCategoryImbalance, SeverityMedium, 0.5+(cfg.BalanceCutoff-s.BalanceScore)/100)
		in.Title = "One category dominates your tasks"
		in.Description = fmt.Sprintf(
			"%q accounts for %.0f%% of your tasks (balance score %.0f of 100).",
			s.DominantCategory, s.DominantShare*100, s.BalanceScore)
		in.Evidence = map[string]any{
			"balance_score":     s.BalanceScore,
			"dominant_category": s.DominantCategory,
			"dominant_share":    s.DominantShare,
			"categories":        len(s.CategoryCounts),
		}
		in.SuggestedAction = "Add one small task from a neglected category to each week."
		return &in
	}
}

func highEffortRecovery(cfg Config) func(*Snapshot) *Insight {
	return func(s *Snapshot) *Insight {
		if len(s.DailyRates) < cfg.HighEffortDays || len(s.EffortByDay) != len(s.DailyRates) {
			return nil
		}
		// Trailing run of days at or above the high-effort completion bar.
		run := 0
		for i := len(s.DailyRates) - 1; i >= 0; i-- {
			if s.DailyRates[i].Rate < cfg.HighEffortRate {
				break
			}
			run++
		}
		if run < cfg.HighEffortDays {
			return nil
		}
		// Sustained effort: the run's mean effort is at or above the
		// overall mean.
		var runEffort, allEffort float64
		for i, e := range s.EffortByDay {
			allEffort += e
			if i >= len(s.EffortByDay)-run {
				runEffort += e
			}
		}
		if runEffort/float64(run) < allEffort/float64(len(s.EffortByDay)) {
			return nil
		}
		sev := SeverityLow
		if run >= cfg.HighEffortDays+2 {
			sev = SeverityMedium
		}
		in := newInsight(TypeHighEffortRecovery, sev, float64(run)/10)
		in.Title = "Sustained high effort, recovery recommended"
		in.Description = fmt.Sprintf(
			"You have completed at least %.0f%% of tasks for %d straight days at above-average effort. A planned lighter day protects the pattern.",
			cfg.HighEffortRate, run)
		in.Evidence = map[string]any{
			"run_days":        run,
			"rate_threshold":  cfg.HighEffortRate,
			"run_mean_effort": runEffort / float64(run),
			"avg_effort":      allEffort / float64(len(s.EffortByDay)),
		}
		in.SuggestedAction = "Schedule a deliberate recovery day before fatigue forces one."
		in.ResearchNote = "Periodized effort with planned deloads outperforms constant maximum output."
		return &in
	}
}

func improvementTrend(cfg Config) func(*Snapshot) *Insight {
	return func(s *Snapshot) *Insight {
		if s.TrendSlope <= cfg.TrendSlopeCutoff || s.ImprovingDays <= s.DecliningDays {
			return nil
		}
		in := newInsight(TypeImprovementTrend, SeverityLow, 0.4+s.TrendR2/2)
		in.Title = "Completion is trending upward"
		in.Description = fmt.Sprintf(
			"Your smoothed completion rate is rising about %.1f points per day (%d improving days against %d declining).",
			s.TrendSlope, s.ImprovingDays, s.DecliningDays)
		in.Evidence = map[string]any{
			"slope":          s.TrendSlope,
			"r_squared":      s.TrendR2,
			"improving_days": s.ImprovingDays,
			"declining_days": s.DecliningDays,
		}
		in.SuggestedAction = "Keep the current routine unchanged; momentum is working."
		return &in
	}
}

func decliningTrend(cfg Config) func(*Snapshot) *Insight {
	return func(s *Snapshot) *Insight {
		if s.TrendSlope >= -cfg.TrendSlopeCutoff || s.DecliningDays <= s.ImprovingDays {
			return nil
		}
		in := newInsight(TypeDecliningTrend, SeverityLow, 0.4+s.TrendR2/2)
		in.Title = "Completion is trending downward"
		in.Description = fmt.Sprintf(
			"Your smoothed completion rate is falling about %.1f points per day (%d declining days against %d improving).",
			-s.TrendSlope, s.DecliningDays, s.ImprovingDays)
		in.Evidence = map[string]any{
			"slope":          s.TrendSlope,
			"r_squared":      s.TrendR2,
			"improving_days": s.ImprovingDays,
			"declining_days": s.DecliningDays,
		}
		in.SuggestedAction = "Cut the routine back to its core until the trend stabilizes."
		return &in
	}
}

func streakMilestone(cfg Config) func(*Snapshot) *Insight {
	return func(s *Snapshot) *Insight {
		if s.Streaks.Current < cfg.MilestoneDays || s.Streaks.Current != s.Streaks.Longest {
			return nil
		}
		in := newInsight(TypeStreakMilestone, SeverityLow, 0.9)
		in.Title = "New personal best streak"
		in.Description = fmt.Sprintf(
			"Your current %d-day streak is your longest yet.", s.Streaks.Current)
		in.Evidence = map[string]any{
			"current_streak": s.Streaks.Current,
			"longest_streak": s.Streaks.Longest,
		}
		in.SuggestedAction = "Mark the milestone; celebrating progress reinforces the habit loop."
		return &in
	}
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
