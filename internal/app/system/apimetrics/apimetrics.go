// Package apimetrics exposes Prometheus collectors for Garden API traffic
// and dashboard refresh activity.
//
// A nil *Recorder is valid and records nothing, so tests and tools can
// skip metrics entirely.
package apimetrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for garden_api_requests_total.
const (
	OutcomeOK          = "ok"
	OutcomeHTTPError   = "http_error"
	OutcomeNetworkFail = "network_error"
)

// Recorder owns the collectors and the registry they are registered on.
type Recorder struct {
	reg *prometheus.Registry

	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	refreshTicks prometheus.Counter
	panelFails   *prometheus.CounterVec
}

// New builds a Recorder with its own registry. Go runtime and process
// collectors are included so /metrics is useful on its own.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		reg: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "garden_api_requests_total",
			Help: "Garden API requests by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "garden_api_request_duration_seconds",
			Help:    "Garden API request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		refreshTicks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dashboard_refresh_ticks_total",
			Help: "Auto-refresh ticks executed.",
		}),
		panelFails: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_panel_failures_total",
			Help: "Panel loads that fell back to their placeholder.",
		}, []string{"panel"}),
	}
	reg.MustRegister(
		r.requests,
		r.duration,
		r.refreshTicks,
		r.panelFails,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveRequest records one Garden API call.
func (r *Recorder) ObserveRequest(endpoint, outcome string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.requests.WithLabelValues(endpoint, outcome).Inc()
	r.duration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// RefreshTick counts one auto-refresh tick.
func (r *Recorder) RefreshTick() {
	if r == nil {
		return
	}
	r.refreshTicks.Inc()
}

// PanelFailure counts a panel that could not be loaded.
func (r *Recorder) PanelFailure(panel string) {
	if r == nil {
		return
	}
	r.panelFails.WithLabelValues(panel).Inc()
}

// Registry returns the underlying registry (useful for tests).
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.reg
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
