package dashboard

import (
	"fmt"
	"time"
)

// FormatRate formats a completion rate as "X.X%".
func FormatRate(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate)
}

// FormatStreak formats a streak as "X day(s)".
func FormatStreak(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

// FormatSlope formats a trend slope as "+X.XX/day" or "-X.XX/day".
func FormatSlope(slope float64) string {
	return fmt.Sprintf("%+.2f/day", slope)
}

// FormatConfidence formats a confidence score in [0,1] as "XX%".
func FormatConfidence(conf float64) string {
	return fmt.Sprintf("%.0f%%", conf*100)
}

// FormatDateRange formats an analysis window as "Jan 2 - Jan 15".
func FormatDateRange(from, to time.Time) string {
	if from.IsZero() || to.IsZero() {
		return "all history"
	}
	return from.Format("Jan 2") + " - " + to.Format("Jan 2")
}
