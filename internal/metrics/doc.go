// Package metrics implements the quantitative behavior metrics of the habit
// analytics core: completion rate, streak detection, consistency and balance
// scoring, effort indexing, trend fitting, correlation, smoothing,
// change-point detection and seasonality analysis.
//
// Every function in this package is pure and total over its input domain:
// empty, singleton, zero-variance and mismatched-length inputs all produce a
// defined result through explicit branches rather than NaN or Inf leakage.
// Each metric returns an Envelope so consumers can treat all metrics
// uniformly and serialize them without knowing their concrete value shape.
package metrics
