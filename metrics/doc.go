// Package metrics instruments editor.Editor with Prometheus counters,
// histograms, and gauges, per spec.md §9's Design Notes on instrumentation.
// Recorder is purely observational: a nil Recorder or a failed Observe
// call never changes a command's control flow or return value.
package metrics
