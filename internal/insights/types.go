package insights

import "sort"

// Type identifies the kind of behavioral insight a rule produced.
type Type string

const (
	TypeLowConsistency     Type = "LOW_CONSISTENCY"
	TypeWeekendDip         Type = "WEEKEND_DIP"
	TypeStreakRisk         Type = "STREAK_RISK"
	TypeMoodCorrelation    Type = "MOOD_CORRELATION"
	TypeSleepImpact        Type = "SLEEP_IMPACT"
	TypeCategoryImbalance  Type = "CATEGORY_IMBALANCE"
	TypeHighEffortRecovery Type = "HIGH_EFFORT_RECOVERY"
	TypeImprovementTrend   Type = "IMPROVEMENT_TREND"
	TypeDecliningTrend     Type = "DECLINING_TREND"
	TypeStreakMilestone    Type = "STREAK_MILESTONE"
)

// Severity orders insights for presentation. High sorts first.
type Severity string

const (
	SeverityHigh   Severity = "HIGH"
	SeverityMedium Severity = "MEDIUM"
	SeverityLow    Severity = "LOW"
)

// rank maps severity to sort order; unknown severities sort last.
func (s Severity) rank() int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	case SeverityLow:
		return 2
	default:
		return 3
	}
}

// Insight is one finding produced by a rule over a metric snapshot.
// Evidence holds the numbers the rule derived its conclusion from; downstream
// consumers (the forecast adjustment in particular) read factors from
// Evidence rather than re-deriving them.
type Insight struct {
	ID              string         `json:"id"`
	Type            Type           `json:"insight_type"`
	Severity        Severity       `json:"severity"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Evidence        map[string]any `json:"evidence"`
	SuggestedAction string         `json:"suggested_action"`
	ResearchNote    string         `json:"research_note,omitempty"`
	Confidence      float64        `json:"confidence"`
}

// SortInsights orders the list severity HIGH→MEDIUM→LOW, then confidence
// descending within a severity. The sort is stable so rule order breaks
// remaining ties.
func SortInsights(list []Insight) {
	sort.SliceStable(list, func(i, j int) bool {
		ri, rj := list[i].Severity.rank(), list[j].Severity.rank()
		if ri != rj {
			return ri < rj
		}
		return list[i].Confidence > list[j].Confidence
	})
}

// TopInsight returns the highest-ranked insight, or nil for an empty list.
// The list must already be sorted.
func TopInsight(list []Insight) *Insight {
	if len(list) == 0 {
		return nil
	}
	return &list[0]
}
