// Package metrics exposes review and HTTP metrics through Prometheus.
//
// Metrics are registered on an injected registerer so that each server (and
// each test) owns its own registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/openkraft/kraftreview/internal/domain"
)

const namespace = "kraftreview"

// Recorder implements domain.ReviewRecorder and records HTTP traffic.
type Recorder struct {
	reviews        prometheus.Counter
	findings       *prometheus.CounterVec
	scores         *prometheus.HistogramVec
	reviewDuration prometheus.Histogram
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
}

// New creates and registers all metrics on reg.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		reviews: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reviews_total",
			Help:      "Total number of completed reviews",
		}),
		findings: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "findings_total",
			Help:      "Findings emitted by rule and kind",
		}, []string{"rule", "kind"}),
		scores: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "review_score",
			Help:      "Distribution of final scores by dimension",
			Buckets:   prometheus.LinearBuckets(0, 1, domain.MaxScore+1),
		}, []string{"dimension"}),
		reviewDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "review_duration_seconds",
			Help:      "Time spent running the rule pipeline",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

func (r *Recorder) RecordReview(report domain.Report, elapsed time.Duration) {
	r.reviews.Inc()
	r.reviewDuration.Observe(elapsed.Seconds())
	for _, f := range report.Findings() {
		r.findings.WithLabelValues(f.Rule, string(f.Kind)).Inc()
	}
	r.scores.WithLabelValues("overall").Observe(float64(report.Scores.Overall))
	r.scores.WithLabelValues("security").Observe(float64(report.Scores.Security))
	r.scores.WithLabelValues("performance").Observe(float64(report.Scores.Performance))
	r.scores.WithLabelValues("maintainability").Observe(float64(report.Scores.Maintainability))
}

// ObserveHTTP records one served request. route is the matched pattern,
// not the raw path, to keep label cardinality bounded.
func (r *Recorder) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler serves the metrics gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
