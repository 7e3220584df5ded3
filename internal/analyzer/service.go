package analyzer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/habitd/internal/forecast"
	"github.com/fyrsmithlabs/habitd/internal/habit"
	"github.com/fyrsmithlabs/habitd/internal/insights"
	"github.com/fyrsmithlabs/habitd/internal/logging"
	"github.com/fyrsmithlabs/habitd/internal/metrics"
)

// ErrNoSource is returned when a Service is built without a data source.
var ErrNoSource = errors.New("analyzer: source is required")

// Report is the JSON-serializable result of one analysis pass.
type Report struct {
	TrackerID   string                      `json:"tracker_id"`
	From        time.Time                   `json:"from"`
	To          time.Time                   `json:"to"`
	DailyRates  []habit.DailyRate           `json:"daily_rates"`
	Metrics     map[string]metrics.Envelope `json:"metrics"`
	Insights    []insights.Insight          `json:"insights"`
	Forecast    forecast.Result             `json:"forecast"`
	GeneratedAt time.Time                   `json:"generated_at"`
}

// Options configures a Service. Zero values fall back to defaults.
type Options struct {
	// Engine holds the insight rule thresholds.
	Engine insights.Config
	// Horizon is the default forecast length in days when Analyze is
	// called with horizon <= 0.
	Horizon int
	// Logger may be nil.
	Logger *logging.Logger
	// Tracer may be nil; spans are then no-ops.
	Tracer oteltrace.Tracer
}

// Service runs analysis passes over a TimeSeriesSource.
type Service struct {
	source    habit.TimeSeriesSource
	extractor habit.TextSignalExtractor
	engine    *insights.Engine
	engineCfg insights.Config
	horizon   int
	logger    *logging.Logger
	tracer    oteltrace.Tracer
	metrics   *Metrics
}

// NewService wires a source and extractor to the metric, insight, and
// forecast engines. extractor may be nil when notes carry pre-computed
// sentiment or notes are absent.
func NewService(source habit.TimeSeriesSource, extractor habit.TextSignalExtractor, opts Options) (*Service, error) {
	if source == nil {
		return nil, ErrNoSource
	}
	if err := opts.Engine.Validate(); err != nil {
		return nil, fmt.Errorf("analyzer: engine config: %w", err)
	}
	if opts.Horizon <= 0 {
		opts.Horizon = 7
	}
	if opts.Tracer == nil {
		opts.Tracer = tracenoop.NewTracerProvider().Tracer("habitd/analyzer")
	}

	return &Service{
		source:    source,
		extractor: extractor,
		engine:    insights.NewEngine(opts.Engine, opts.Logger),
		engineCfg: opts.Engine,
		horizon:   opts.Horizon,
		logger:    opts.Logger,
		tracer:    opts.Tracer,
		metrics:   NewMetrics(),
	}, nil
}

// Analyze runs a full pass for trackerID over [from, to] and forecasts
// horizon days ahead. Zero time bounds are open; horizon <= 0 uses the
// configured default. An empty range is not an error: the report then
// carries empty metrics, no insights, and an unsuccessful forecast.
func (s *Service) Analyze(ctx context.Context, trackerID string, from, to time.Time, horizon int) (*Report, error) {
	start := time.Now()
	if horizon <= 0 {
		horizon = s.horizon
	}

	ctx, span := s.tracer.Start(ctx, "analyzer.Analyze",
		oteltrace.WithAttributes(
			attribute.String("tracker.id", trackerID),
			attribute.Int("forecast.horizon_days", horizon),
		))
	defer span.End()

	records, err := s.source.Records(ctx, trackerID, from, to)
	if err != nil {
		s.metrics.RequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("fetch records: %w", err)
	}
	notes, err := s.source.Notes(ctx, trackerID, from, to)
	if err != nil {
		s.metrics.RequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("fetch notes: %w", err)
	}
	span.SetAttributes(
		attribute.Int("records.count", len(records)),
		attribute.Int("notes.count", len(notes)),
	)

	days := metrics.DailyRates(records)
	envelopes := s.computeEnvelopes(records, days)

	snap := insights.BuildSnapshot(records, notes, s.extractor, s.engineCfg)
	found := s.engine.Evaluate(ctx, snap)

	baseline := forecast.StatisticalForecast(days, horizon)
	adjusted := forecast.ApplyBehavioralAdjustment(baseline, found)

	report := &Report{
		TrackerID:   trackerID,
		From:        from,
		To:          to,
		DailyRates:  days,
		Metrics:     envelopes,
		Insights:    found,
		Forecast:    adjusted,
		GeneratedAt: time.Now().UTC(),
	}

	if s.logger != nil {
		s.logger.Info(ctx, "analysis complete",
			zap.String("tracker_id", trackerID),
			zap.Int("records", len(records)),
			zap.Int("insights", len(found)),
			zap.Bool("forecast_success", adjusted.Success),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
	s.metrics.RequestsTotal.WithLabelValues("ok").Inc()
	s.metrics.Duration.Observe(time.Since(start).Seconds())

	return report, nil
}

// computeEnvelopes runs every metric over the fetched records.
func (s *Service) computeEnvelopes(records []habit.TaskCompletionRecord, days []habit.DailyRate) map[string]metrics.Envelope {
	rates := make([]float64, len(days))
	for i, d := range days {
		rates[i] = d.Rate
	}

	dates, successes := metrics.SuccessSeries(records, "")

	// Interval consistency is defined over gaps between completion
	// dates, so days that were observed but not completed are excluded.
	completionDates := make([]time.Time, 0, len(dates))
	for i, ok := range successes {
		if ok {
			completionDates = append(completionDates, dates[i])
		}
	}

	counts := make(map[string]int)
	volume := make([]float64, len(days))
	for i, d := range days {
		volume[i] = float64(d.TotalTasks)
	}
	for _, r := range records {
		if r.Category != "" {
			counts[r.Category]++
		}
	}

	out := map[string]metrics.Envelope{
		"completion_rate":      metrics.CompletionRate(records, time.Time{}, time.Time{}),
		"streaks":              metrics.DetectStreaks(successes),
		"interval_consistency": metrics.IntervalConsistency(completionDates),
		"rolling_consistency":  metrics.RollingConsistency(successes, s.engineCfg.SmoothingWindow),
		"balance":              metrics.BalanceScore(counts),
		"effort":               metrics.EffortIndex(metrics.EffortTasks(records)),
		"smoothed_rates":       metrics.SmoothSeries(rates, metrics.SmoothMovingAvg, s.engineCfg.SmoothingWindow),
		"trend":                metrics.TrendLine(metrics.TimeIndex(len(rates)), rates),
		"change_points":        metrics.DetectChangePoints(rates, 0),
		"seasonality":          metrics.AnalyzeSeasonality(rates, 7),
		"correlations": metrics.CorrelationMatrix(map[string][]float64{
			"rate":        rates,
			"task_volume": volume,
		}, metrics.Pearson),
	}
	return out
}
