// Package analyzer orchestrates a full behavioral analysis pass for one
// tracker: fetch records and notes from a TimeSeriesSource, compute the
// metric envelopes, evaluate the insight rules, and produce a behaviorally
// adjusted forecast.
//
// A Service holds no per-call mutable state, so one instance serves
// concurrent Analyze calls across trackers.
package analyzer
