package insights

import "fmt"

// Config holds the rule thresholds. The defaults are heuristic constants;
// revise them only on an explicit product decision.
type Config struct {
	// ConsistencyCutoff triggers LOW_CONSISTENCY below this score.
	ConsistencyCutoff float64 `koanf:"consistency_cutoff"`
	// MinHistoryDays gates history-sensitive rules (consistency, streaks).
	MinHistoryDays int `koanf:"min_history_days"`
	// WeekendMinDays is the minimum observed days for weekend analysis.
	WeekendMinDays int `koanf:"weekend_min_days"`
	// WeekendDipRatio is the relative weekday-to-weekend drop that counts
	// as significant.
	WeekendDipRatio float64 `koanf:"weekend_dip_ratio"`
	// SleepCutoffHours is the short-night threshold.
	SleepCutoffHours float64 `koanf:"sleep_cutoff_hours"`
	// SleepMinNights is the number of short nights needed to trigger.
	SleepMinNights int `koanf:"sleep_min_nights"`
	// HighEffortDays and HighEffortRate define sustained high effort:
	// a trailing run of at least HighEffortDays days at or above
	// HighEffortRate percent completion.
	HighEffortDays int     `koanf:"high_effort_days"`
	HighEffortRate float64 `koanf:"high_effort_rate"`
	// BalanceCutoff and DominantShareCutoff define category imbalance.
	BalanceCutoff       float64 `koanf:"balance_cutoff"`
	DominantShareCutoff float64 `koanf:"dominant_share_cutoff"`
	// TrendSlopeCutoff is the absolute smoothed-trend slope that counts as
	// a direction, in rate points per day.
	TrendSlopeCutoff float64 `koanf:"trend_slope_cutoff"`
	// MilestoneDays is the minimum streak length for a milestone.
	MilestoneDays int `koanf:"milestone_days"`
	// SmoothingWindow is the window used when smoothing daily rates for
	// trend analysis.
	SmoothingWindow int `koanf:"smoothing_window"`
}

// DefaultConfig returns the reference thresholds.
func DefaultConfig() Config {
	return Config{
		ConsistencyCutoff:   60,
		MinHistoryDays:      7,
		WeekendMinDays:      14,
		WeekendDipRatio:     0.20,
		SleepCutoffHours:    6,
		SleepMinNights:      2,
		HighEffortDays:      5,
		HighEffortRate:      85,
		BalanceCutoff:       50,
		DominantShareCutoff: 0.5,
		TrendSlopeCutoff:    0.5,
		MilestoneDays:       7,
		SmoothingWindow:     7,
	}
}

// Validate checks config for errors.
func (c Config) Validate() error {
	if c.ConsistencyCutoff < 0 || c.ConsistencyCutoff > 100 {
		return fmt.Errorf("consistency_cutoff must be in [0,100], got %v", c.ConsistencyCutoff)
	}
	if c.WeekendMinDays < 0 {
		return fmt.Errorf("weekend_min_days must be >= 0, got %d", c.WeekendMinDays)
	}
	if c.SleepCutoffHours <= 0 || c.SleepCutoffHours > 24 {
		return fmt.Errorf("sleep_cutoff_hours must be in (0,24], got %v", c.SleepCutoffHours)
	}
	if c.SleepMinNights < 1 {
		return fmt.Errorf("sleep_min_nights must be >= 1, got %d", c.SleepMinNights)
	}
	if c.HighEffortDays < 1 {
		return fmt.Errorf("high_effort_days must be >= 1, got %d", c.HighEffortDays)
	}
	if c.HighEffortRate < 0 || c.HighEffortRate > 100 {
		return fmt.Errorf("high_effort_rate must be in [0,100], got %v", c.HighEffortRate)
	}
	if c.SmoothingWindow < 1 {
		return fmt.Errorf("smoothing_window must be >= 1, got %d", c.SmoothingWindow)
	}
	return nil
}
