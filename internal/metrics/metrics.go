// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exports Prometheus measurements of the lifecycle
// operations, the record cache and the HTTP facade.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/go-loyalty-keeper/models"
)

const namespace = "loyalty"

// Recorder owns a private registry. It implements service.Observer.
type Recorder struct {
	registry *prometheus.Registry

	operations        *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	coalescedReveals  prometheus.Counter

	refreshes       *prometheus.CounterVec
	refreshDuration prometheus.Histogram
	recordsLoaded   prometheus.Gauge
	recordsSkipped  prometheus.Counter

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "lifecycle",
			Name:      "operations_total",
			Help:      "Lifecycle operations by class and outcome.",
		}, []string{"class", "outcome"}),
		operationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "lifecycle",
			Name:      "operation_duration_seconds",
			Help:      "Duration of lifecycle operations in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}, []string{"class"}),
		coalescedReveals: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "lifecycle",
			Name:      "coalesced_reveals_total",
			Help:      "Reveal calls that shared an in-flight reveal of the same record.",
		}),
		refreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "refreshes_total",
			Help:      "Record cache refreshes by result.",
		}, []string{"result"}),
		refreshDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "refresh_duration_seconds",
			Help:      "Duration of record cache refreshes in seconds.",
			Buckets:   prometheus.DefBuckets,
		}),
		recordsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "records",
			Help:      "Records held by the last successful refresh.",
		}),
		recordsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "records_skipped_total",
			Help:      "Records left out of a refresh because their detail could not be read.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests processed by the facade.",
		}, []string{"route", "method", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.operations,
		r.operationDuration,
		r.coalescedReveals,
		r.refreshes,
		r.refreshDuration,
		r.recordsLoaded,
		r.recordsSkipped,
		r.requests,
		r.requestDuration,
	)
	return r
}

// ObserveOperation implements service.OperationObserver.
func (r *Recorder) ObserveOperation(class models.OperationClass, outcome models.Outcome, elapsed time.Duration) {
	r.operations.WithLabelValues(string(class), string(outcome)).Inc()
	r.operationDuration.WithLabelValues(string(class)).Observe(elapsed.Seconds())
}

// ObserveCoalescedReveal implements service.OperationObserver.
func (r *Recorder) ObserveCoalescedReveal() {
	r.coalescedReveals.Inc()
}

// ObserveRefresh implements service.RefreshObserver. The records gauge only
// follows successful refreshes, matching the snapshot the cache serves.
func (r *Recorder) ObserveRefresh(loaded, skipped int, elapsed time.Duration, err error) {
	r.refreshDuration.Observe(elapsed.Seconds())
	if err != nil {
		r.refreshes.WithLabelValues("error").Inc()
		return
	}

	result := "complete"
	if skipped > 0 {
		result = "partial"
	}
	r.refreshes.WithLabelValues(result).Inc()
	r.recordsLoaded.Set(float64(loaded))
	r.recordsSkipped.Add(float64(skipped))
}

// Middleware counts and times requests by chi route pattern.
func (r *Recorder) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)

		next.ServeHTTP(ww, req)

		route := "unmatched"
		if rctx := chi.RouteContext(req.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		r.requests.WithLabelValues(route, req.Method, strconv.Itoa(status)).Inc()
		r.requestDuration.WithLabelValues(route, req.Method).Observe(time.Since(start).Seconds())
	})
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
