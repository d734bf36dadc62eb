package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// RenderMetrics records metadata for ball preview composites.
type RenderMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
	dropped  *prometheus.CounterVec
}

// NewRenderMetrics registers the preview render metrics on the provided registerer.
func NewRenderMetrics(reg prometheus.Registerer) *RenderMetrics {
	if reg == nil {
		return &RenderMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "render_duration_seconds",
		Help:    "Duration of preview composite renders in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"view"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "render_success",
		Help: "Successful preview renders.",
	}, []string{"view"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "render_failure",
		Help: "Failed preview renders.",
	}, []string{"view"})
	dropped := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "render_dropped",
		Help: "Preview renders dropped because another render was in flight.",
	}, []string{"view"})
	reg.MustRegister(duration, success, failure, dropped)
	return &RenderMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
		dropped:  dropped,
	}
}

// ObserveDuration records the duration for the named view angle.
func (r *RenderMetrics) ObserveDuration(view string, elapsed time.Duration) {
	if r == nil || r.duration == nil {
		return
	}
	r.duration.WithLabelValues(normalizeLabel(view)).Observe(elapsed.Seconds())
}

// IncSuccess increments the success counter for the named view angle.
func (r *RenderMetrics) IncSuccess(view string) {
	if r == nil || r.success == nil {
		return
	}
	r.success.WithLabelValues(normalizeLabel(view)).Inc()
}

// IncFailure increments the failure counter for the named view angle.
func (r *RenderMetrics) IncFailure(view string) {
	if r == nil || r.failure == nil {
		return
	}
	r.failure.WithLabelValues(normalizeLabel(view)).Inc()
}

// IncDropped increments the dropped counter for the named view angle.
func (r *RenderMetrics) IncDropped(view string) {
	if r == nil || r.dropped == nil {
		return
	}
	r.dropped.WithLabelValues(normalizeLabel(view)).Inc()
}
