// Package metrics exposes Prometheus collectors for the rhyme service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "rhymer"

// Metrics holds the collectors of one service instance, registered on a
// private registry.
type Metrics struct {
	registry *prom.Registry

	httpRequests     *prom.CounterVec
	httpDuration     *prom.HistogramVec
	schemeAttempts   prom.Histogram
	schemeFailures   prom.Counter
	trainings        *prom.CounterVec
	trainingDuration prom.Histogram
	indexWords       prom.Gauge
}

// New creates and registers every collector, including the Go runtime and
// process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prom.NewRegistry(),
		httpRequests: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prom.DefBuckets,
		}, []string{"method", "route"}),
		schemeAttempts: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "scheme_attempts",
			Help:      "Attempts spent by successful rhyme scheme assignments.",
			Buckets:   []float64{1, 2, 3, 5, 8, 13, 20, 50},
		}),
		schemeFailures: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "scheme_failures_total",
			Help:      "Rhyme scheme assignments that ran out of attempts.",
		}),
		trainings: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "trainings_total",
			Help:      "Training passes by result.",
		}, []string{"result"}),
		trainingDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "training_duration_seconds",
			Help:      "Duration of successful training passes.",
			Buckets:   prom.ExponentialBuckets(0.1, 2, 12),
		}),
		indexWords: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "index_words",
			Help:      "Words in the live rhyme index.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.schemeAttempts,
		m.schemeFailures,
		m.trainings,
		m.trainingDuration,
		m.indexWords,
	)
	return m
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prom.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RegisterActiveJobs exposes the number of pending and running jobs.
func (m *Metrics) RegisterActiveJobs(workload func() int64) {
	m.registry.MustRegister(prom.NewGaugeFunc(prom.GaugeOpts{
		Namespace: namespace,
		Name:      "jobs_active",
		Help:      "Background jobs that are pending or running.",
	}, func() float64 { return float64(workload()) }))
}

// ObserveScheme records the outcome of a scheme assignment.
func (m *Metrics) ObserveScheme(attempts int, ok bool) {
	if ok {
		m.schemeAttempts.Observe(float64(attempts))
		return
	}
	m.schemeFailures.Inc()
}

// ObserveTraining records a training pass and, when it succeeded, the size of
// the resulting index.
func (m *Metrics) ObserveTraining(d time.Duration, words int, err error) {
	if err != nil {
		m.trainings.WithLabelValues("failure").Inc()
		return
	}
	m.trainings.WithLabelValues("success").Inc()
	m.trainingDuration.Observe(d.Seconds())
	m.indexWords.Set(float64(words))
}

// SetIndexWords sets the size of the live index.
func (m *Metrics) SetIndexWords(words int) {
	m.indexWords.Set(float64(words))
}

// GinMiddleware records request counts and latencies by matched route.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		m.httpRequests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
