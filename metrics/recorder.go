// File: recorder.go
// Role: Prometheus instrumentation for editor command outcomes, per
// spec.md §9 and SPEC_FULL.md §11.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder wraps a private *prometheus.Registry with the three series
// SPEC_FULL.md §11 names: a per-command counter, an OptimizeAllBadEdges
// duration histogram, and a live bad-edge-count gauge. The zero value is
// not usable; construct with NewRecorder.
type Recorder struct {
	registry *prometheus.Registry

	CommandsTotal       *prometheus.CounterVec
	OptimizeAllDuration prometheus.Histogram
	BadEdges            prometheus.Gauge
}

// NewRecorder builds a Recorder with its own registry, so multiple
// Editors in the same process (e.g. under test) never collide on metric
// names in the global default registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		registry: reg,
		CommandsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pidgraph",
			Name:      "commands_total",
			Help:      "Total editor commands applied, by command name and outcome.",
		}, []string{"command", "outcome"}),
		OptimizeAllDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pidgraph",
			Name:      "optimize_all_duration_seconds",
			Help:      "Duration of OptimizeAllBadEdges calls.",
			Buckets:   prometheus.DefBuckets,
		}),
		BadEdges: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "pidgraph",
			Name:      "bad_edges",
			Help:      "Current count of edges classified bad by the perpendicularity threshold.",
		}),
	}
	reg.MustRegister(r.CommandsTotal, r.OptimizeAllDuration, r.BadEdges)
	return r
}

// ObserveCommand records one command application. err is only consulted
// to pick the "ok"/"error" outcome label; it is never returned or logged
// here — instrumentation must not influence the caller's error handling.
func (r *Recorder) ObserveCommand(command string, err error) {
	if r == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.CommandsTotal.WithLabelValues(command, outcome).Inc()
}

// ObserveOptimizeAllDuration records how long one OptimizeAllBadEdges call
// took to run.
func (r *Recorder) ObserveOptimizeAllDuration(d time.Duration) {
	if r == nil {
		return
	}
	r.OptimizeAllDuration.Observe(d.Seconds())
}

// SetBadEdges sets the live bad-edge gauge to n.
func (r *Recorder) SetBadEdges(n int) {
	if r == nil {
		return
	}
	r.BadEdges.Set(float64(n))
}

// Handler returns an http.Handler serving this Recorder's registry in the
// Prometheus text exposition format, for mounting at /metrics.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
