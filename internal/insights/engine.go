// Package insights evaluates a fixed battery of independent behavioral rules
// against one immutable metric snapshot, producing a ranked insight list.
//
// The design is snapshot-then-batch-evaluate: BuildSnapshot computes every
// input once, then Engine.Evaluate runs each rule against that snapshot.
// Rules never see each other's output, so their order only affects stable
// tie-breaks in the sorted result. A rule that panics is logged, counted and
// skipped; it never aborts the batch.
package insights

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/habitd/internal/logging"
)

// Engine runs the rule battery.
type Engine struct {
	cfg     Config
	rules   []Rule
	logger  *logging.Logger
	metrics *Metrics
}

// NewEngine creates an engine with the default rule registry. logger may be
// nil; rule failures are then still counted but not logged.
func NewEngine(cfg Config, logger *logging.Logger) *Engine {
	return &Engine{
		cfg:     cfg,
		rules:   defaultRules(cfg),
		logger:  logger,
		metrics: NewMetrics(),
	}
}

// Evaluate runs every rule against the snapshot and returns the triggered
// insights sorted by severity then confidence.
func (e *Engine) Evaluate(ctx context.Context, snap Snapshot) []Insight {
	start := time.Now()

	out := make([]Insight, 0, len(e.rules))
	for _, rule := range e.rules {
		if in := e.runRule(ctx, rule, &snap); in != nil {
			out = append(out, *in)
			e.metrics.InsightsTotal.WithLabelValues(string(in.Type)).Inc()
		}
		e.metrics.RulesEvaluatedTotal.Inc()
	}

	SortInsights(out)

	e.metrics.EvaluationDuration.Observe(time.Since(start).Seconds())
	if e.logger != nil {
		e.logger.Debug(ctx, "insight evaluation complete",
			zap.Int("rules", len(e.rules)),
			zap.Int("insights", len(out)),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
	return out
}

// runRule evaluates one rule with panic containment. A panicking rule is
// logged and skipped; the rest of the batch proceeds.
func (e *Engine) runRule(ctx context.Context, rule Rule, snap *Snapshot) (in *Insight) {
	defer func() {
		if r := recover(); r != nil {
			in = nil
			e.metrics.RuleFailuresTotal.WithLabelValues(rule.Name).Inc()
			if e.logger != nil {
				e.logger.Error(ctx, "insight rule panicked, skipping",
					zap.String("rule", rule.Name),
					zap.Any("panic", r),
				)
			}
		}
	}()
	return rule.Evaluate(snap)
}
