// Package habit defines the domain types exchanged between the habit
// analytics engines and their external collaborators.
//
// Everything here is a transient snapshot: values are created fresh per
// analysis call from data the caller already fetched, never mutated in
// place, and discarded when the call returns.
package habit

import "time"

// Status is the completion state of a single task instance.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusDone       Status = "done"
	StatusSkipped    Status = "skipped"
	StatusMissed     Status = "missed"
	StatusInProgress Status = "in_progress"
)

// Completed reports whether the status counts as a successful completion.
func (s Status) Completed() bool {
	return s == StatusDone
}

// TaskCompletionRecord is one task instance on one day, as supplied by the
// time-series source. Records are pre-filtered to a single tracker and date
// range before they reach the engines.
type TaskCompletionRecord struct {
	Date       time.Time `json:"date"`
	TrackerID  string    `json:"tracker_id"`
	TemplateID string    `json:"template_id"`
	Status     Status    `json:"status"`
	Category   string    `json:"category"`
	Weight     float64   `json:"weight"`

	// DurationHours and Difficulty feed the effort index. Difficulty is
	// one of "low", "medium", "high"; anything else is treated as medium.
	DurationHours float64 `json:"duration_hours"`
	Difficulty    string  `json:"difficulty"`
}

// DailyRate is the per-day completion summary derived from records.
// Rate is a percentage in [0,100] and CompletedTasks never exceeds TotalTasks.
type DailyRate struct {
	Date           time.Time `json:"date"`
	TotalTasks     int       `json:"total_tasks"`
	CompletedTasks int       `json:"completed_tasks"`
	Rate           float64   `json:"rate"`
}

// Note is a free-text daily journal entry for a tracker. Sentiment and
// Keywords are optional: they are present when a TextSignalExtractor has
// already analyzed the content, nil otherwise.
type Note struct {
	Date      time.Time       `json:"date"`
	TrackerID string          `json:"tracker_id"`
	Content   string          `json:"content"`
	Sentiment *SentimentScore `json:"sentiment,omitempty"`
	Keywords  []KeywordCount  `json:"keywords,omitempty"`
}

// SentimentScore is a normalized sentiment breakdown for a piece of text.
// Compound is in [-1,1]; Pos, Neu and Neg are proportions in [0,1].
type SentimentScore struct {
	Compound float64 `json:"compound"`
	Pos      float64 `json:"pos"`
	Neu      float64 `json:"neu"`
	Neg      float64 `json:"neg"`
}

// KeywordCount is a single extracted keyword and its occurrence count.
type KeywordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// TextSignals is everything a TextSignalExtractor can derive from one note.
// SleepHours is nil when the text does not mention sleep duration.
type TextSignals struct {
	Sentiment  SentimentScore `json:"sentiment"`
	SleepHours *float64       `json:"sleep_hours,omitempty"`
	Keywords   []KeywordCount `json:"keywords,omitempty"`
}
