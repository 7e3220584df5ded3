package insights

import (
	"time"

	"github.com/fyrsmithlabs/habitd/internal/habit"
	"github.com/fyrsmithlabs/habitd/internal/metrics"
)

// SleepNight is one dated sleep-duration observation extracted from notes.
type SleepNight struct {
	Date  time.Time `json:"date"`
	Hours float64   `json:"hours"`
}

// Snapshot is the immutable view of one tracker's metrics that the rule
// battery evaluates. It is built once per analysis and never mutated;
// rules only read from it, so a single snapshot can be evaluated by every
// rule without ordering concerns.
type Snapshot struct {
	DailyRates     []habit.DailyRate
	CompletionRate float64

	Streaks          metrics.StreakSummary
	ConsistencyScore float64

	BalanceScore     float64
	CategoryCounts   map[string]int
	DominantCategory string
	DominantShare    float64

	EffortIndex float64
	// EffortByDay is aligned with DailyRates.
	EffortByDay []float64

	// MoodCompletion correlates per-day mean mood against per-day
	// completion rate over days that have both.
	MoodCompletion metrics.Correlation
	MoodDays       int

	SleepNights []SleepNight

	// Trend over the smoothed daily rates.
	SmoothedRates []float64
	TrendSlope    float64
	TrendR2       float64
	ImprovingDays int
	DecliningDays int

	WeekdayAvg  float64
	WeekendAvg  float64
	WeekdayDays int
	WeekendDays int

	DaysObserved int
}

// BuildSnapshot computes every snapshot field from pre-fetched records and
// notes. extractor may be nil; notes then contribute sentiment only when
// they carry a pre-computed score, and no sleep observations. A failing
// extractor call skips that note rather than failing the snapshot.
func BuildSnapshot(records []habit.TaskCompletionRecord, notes []habit.Note, extractor habit.TextSignalExtractor, cfg Config) Snapshot {
	snap := Snapshot{
		DailyRates:     metrics.DailyRates(records),
		CompletionRate: metrics.CompletionRate(records, time.Time{}, time.Time{}).Float(),
	}
	snap.DaysObserved = len(snap.DailyRates)

	dates, successes := metrics.SuccessSeries(records, "")
	if v, ok := metrics.DetectStreaks(successes).Value.(metrics.StreakSummary); ok {
		snap.Streaks = v
	}

	var completionDates []time.Time
	for i, ok := range successes {
		if ok {
			completionDates = append(completionDates, dates[i])
		}
	}
	snap.ConsistencyScore = metrics.IntervalConsistency(completionDates).Float()

	snap.CategoryCounts = categoryCounts(records)
	balance := metrics.BalanceScore(snap.CategoryCounts)
	snap.BalanceScore = balance.Float()
	if v, ok := balance.RawInputs["dominant_category"].(string); ok {
		snap.DominantCategory = v
	}
	if v, ok := balance.RawInputs["dominant_share"].(float64); ok {
		snap.DominantShare = v
	}

	snap.EffortIndex = metrics.EffortIndex(metrics.EffortTasks(records)).Float()
	snap.EffortByDay = effortByDay(records, snap.DailyRates)

	snap.MoodCompletion, snap.MoodDays = moodCompletion(notes, snap.DailyRates, extractor)
	snap.SleepNights = sleepNights(notes, extractor)

	rates := make([]float64, len(snap.DailyRates))
	for i, dr := range snap.DailyRates {
		rates[i] = dr.Rate
	}
	if smoothed, ok := metrics.SmoothSeries(rates, metrics.SmoothMovingAvg, cfg.SmoothingWindow).Value.([]float64); ok {
		snap.SmoothedRates = smoothed
	}
	fit := metrics.FitOLS(metrics.TimeIndex(len(snap.SmoothedRates)), snap.SmoothedRates)
	snap.TrendSlope = fit.Slope
	snap.TrendR2 = fit.RSquared
	for i := 1; i < len(snap.SmoothedRates); i++ {
		switch {
		case snap.SmoothedRates[i] > snap.SmoothedRates[i-1]:
			snap.ImprovingDays++
		case snap.SmoothedRates[i] < snap.SmoothedRates[i-1]:
			snap.DecliningDays++
		}
	}

	snap.WeekdayAvg, snap.WeekendAvg, snap.WeekdayDays, snap.WeekendDays = weekdaySplit(snap.DailyRates)

	return snap
}

// categoryCounts tallies task instances per category, skipping records with
// no category.
func categoryCounts(records []habit.TaskCompletionRecord) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		if r.Category == "" {
			continue
		}
		counts[r.Category]++
	}
	return counts
}

// effortByDay sums duration plus difficulty weight per calendar day, aligned
// with the given daily rates.
func effortByDay(records []habit.TaskCompletionRecord, days []habit.DailyRate) []float64 {
	byDay := make(map[time.Time]float64, len(days))
	for _, r := range records {
		day := r.Date.Truncate(24 * time.Hour)
		byDay[day] += metrics.EffortIndex([]metrics.EffortTask{{
			Duration:   r.DurationHours,
			Difficulty: r.Difficulty,
		}}).Float()
	}
	out := make([]float64, len(days))
	for i, dr := range days {
		out[i] = byDay[dr.Date]
	}
	return out
}

// moodCompletion correlates the per-day mean sentiment compound against the
// per-day completion rate, over days that have both a note and records.
func moodCompletion(notes []habit.Note, days []habit.DailyRate, extractor habit.TextSignalExtractor) (metrics.Correlation, int) {
	type moodAgg struct {
		sum   float64
		count int
	}
	byDay := make(map[time.Time]*moodAgg)
	for _, n := range notes {
		compound, ok := noteCompound(n, extractor)
		if !ok {
			continue
		}
		day := n.Date.Truncate(24 * time.Hour)
		agg, exists := byDay[day]
		if !exists {
			agg = &moodAgg{}
			byDay[day] = agg
		}
		agg.sum += compound
		agg.count++
	}

	var mood, rate []float64
	for _, dr := range days {
		agg, ok := byDay[dr.Date]
		if !ok {
			continue
		}
		mood = append(mood, agg.sum/float64(agg.count))
		rate = append(rate, dr.Rate)
	}

	return metrics.Correlate(mood, rate, metrics.Pearson), len(mood)
}

// noteCompound returns the sentiment compound for a note, preferring a
// pre-computed score and falling back to the extractor.
func noteCompound(n habit.Note, extractor habit.TextSignalExtractor) (float64, bool) {
	if n.Sentiment != nil {
		return n.Sentiment.Compound, true
	}
	if extractor == nil || n.Content == "" {
		return 0, false
	}
	sig, err := extractor.Analyze(n.Content)
	if err != nil {
		return 0, false
	}
	return sig.Sentiment.Compound, true
}

// sleepNights extracts dated sleep observations from notes.
func sleepNights(notes []habit.Note, extractor habit.TextSignalExtractor) []SleepNight {
	if extractor == nil {
		return nil
	}
	var out []SleepNight
	for _, n := range notes {
		if n.Content == "" {
			continue
		}
		sig, err := extractor.Analyze(n.Content)
		if err != nil || sig.SleepHours == nil {
			continue
		}
		out = append(out, SleepNight{Date: n.Date, Hours: *sig.SleepHours})
	}
	return out
}

// weekdaySplit averages daily rates by weekday versus weekend. Saturday and
// Sunday count as the weekend.
func weekdaySplit(days []habit.DailyRate) (weekdayAvg, weekendAvg float64, weekdayDays, weekendDays int) {
	var weekdaySum, weekendSum float64
	for _, dr := range days {
		if isWeekend(dr.Date) {
			weekendSum += dr.Rate
			weekendDays++
		} else {
			weekdaySum += dr.Rate
			weekdayDays++
		}
	}
	if weekdayDays > 0 {
		weekdayAvg = weekdaySum / float64(weekdayDays)
	}
	if weekendDays > 0 {
		weekendAvg = weekendSum / float64(weekendDays)
	}
	return weekdayAvg, weekendAvg, weekdayDays, weekendDays
}

// isWeekend reports whether the date falls on Saturday or Sunday, using a
// Monday-first weekday index so index 5 and 6 are the weekend.
func isWeekend(t time.Time) bool {
	return (int(t.Weekday())+6)%7 >= 5
}
