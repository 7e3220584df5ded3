package habit

import (
	"context"
	"errors"
	"sort"
	"time"
)

// ErrNilContext is returned when a nil context is passed to a source method.
var ErrNilContext = errors.New("context cannot be nil")

// TimeSeriesSource supplies ordered per-day task-completion records and
// notes for a tracker and date range. Implementations live outside the
// engines (database adapters, API clients); the engines only ever see the
// returned slices.
type TimeSeriesSource interface {
	// Records returns completion records for the tracker within [from, to],
	// ordered by date ascending.
	Records(ctx context.Context, trackerID string, from, to time.Time) ([]TaskCompletionRecord, error)

	// Notes returns daily notes for the tracker within [from, to], ordered
	// by date ascending.
	Notes(ctx context.Context, trackerID string, from, to time.Time) ([]Note, error)
}

// TextSignalExtractor turns free-form note text into structured signals.
// Implementations must be safe to call repeatedly; any lazy one-time
// initialization is the implementation's own concern. The extractor is
// constructed once by the caller and injected, never a hidden global.
type TextSignalExtractor interface {
	Analyze(text string) (TextSignals, error)
}

// SliceSource is an in-memory TimeSeriesSource over pre-fetched slices.
// It backs the CLI (which loads a JSON export) and tests. Slices are sorted
// by date at construction and never mutated afterwards, so a SliceSource is
// safe for concurrent use.
type SliceSource struct {
	records []TaskCompletionRecord
	notes   []Note
}

// NewSliceSource creates a SliceSource from record and note slices.
// The inputs are copied and sorted chronologically.
func NewSliceSource(records []TaskCompletionRecord, notes []Note) *SliceSource {
	rs := make([]TaskCompletionRecord, len(records))
	copy(rs, records)
	sort.SliceStable(rs, func(i, j int) bool { return rs[i].Date.Before(rs[j].Date) })

	ns := make([]Note, len(notes))
	copy(ns, notes)
	sort.SliceStable(ns, func(i, j int) bool { return ns[i].Date.Before(ns[j].Date) })

	return &SliceSource{records: rs, notes: ns}
}

// Records implements TimeSeriesSource.
func (s *SliceSource) Records(ctx context.Context, trackerID string, from, to time.Time) ([]TaskCompletionRecord, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	out := make([]TaskCompletionRecord, 0, len(s.records))
	for _, r := range s.records {
		if trackerID != "" && r.TrackerID != trackerID {
			continue
		}
		if inRange(r.Date, from, to) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Notes implements TimeSeriesSource.
func (s *SliceSource) Notes(ctx context.Context, trackerID string, from, to time.Time) ([]Note, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	out := make([]Note, 0, len(s.notes))
	for _, n := range s.notes {
		if trackerID != "" && n.TrackerID != trackerID {
			continue
		}
		if inRange(n.Date, from, to) {
			out = append(out, n)
		}
	}
	return out, nil
}

// inRange reports whether d falls within [from, to]. Zero bounds are open.
func inRange(d, from, to time.Time) bool {
	if !from.IsZero() && d.Before(from) {
		return false
	}
	if !to.IsZero() && d.After(to) {
		return false
	}
	return true
}

// Export is the JSON shape of a tracker data export consumed by habitctl.
type Export struct {
	TrackerID string                 `json:"tracker_id"`
	Records   []TaskCompletionRecord `json:"records"`
	Notes     []Note                 `json:"notes"`
}
