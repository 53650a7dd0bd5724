// Package metrics exposes the Prometheus collectors recorded by the service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder owns a private registry so tests and multiple app instances never collide.
type Recorder struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	predictions     *prometheus.CounterVec
	lookupMisses    *prometheus.CounterVec
}

// NewRecorder registers every collector under namespace.
func NewRecorder(namespace string) *Recorder {
	if namespace == "" {
		namespace = "billboard"
	}
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Recorder{
		registry: reg,
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		predictions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "predictions_total",
				Help:      "Predictions generated, by synthetic traffic tier",
			},
			[]string{"tier"},
		),
		lookupMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "lookup_misses_total",
				Help:      "Billboard lookups that matched no catalog entry",
			},
			[]string{"reason"},
		),
	}
}

// ObserveRequest records one served HTTP request.
func (r *Recorder) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if r == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	r.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordPrediction counts a successful prediction for the given tier.
func (r *Recorder) RecordPrediction(tier int) {
	if r == nil {
		return
	}
	r.predictions.WithLabelValues(strconv.Itoa(tier)).Inc()
}

// RecordLookupMiss counts a failed identifier resolution.
func (r *Recorder) RecordLookupMiss(reason string) {
	if r == nil {
		return
	}
	r.lookupMisses.WithLabelValues(reason).Inc()
}

// Handler serves the exposition format for the private registry.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for tests and extra collectors.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
