// Package metrics collects and exposes Prometheus metrics for the HTTP
// servers and the batch runner.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns every metric the servers emit.
type Collector struct {
	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec
	batchRuns    prometheus.Counter
	batchFails   prometheus.Counter
}

// NewCollector registers all metrics on the given registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "joonbee_http_requests_total",
			Help: "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "joonbee_http_latency_seconds",
			Help:    "HTTP handler latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		batchRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "joonbee_batch_runs_total",
			Help: "Completed batch job runs",
		}),
		batchFails: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "joonbee_batch_failures_total",
			Help: "Failed batch job runs",
		}),
	}

	reg.MustRegister(c.httpRequests, c.httpLatency, c.batchRuns, c.batchFails)
	return c
}

// RecordHTTPRequest counts one finished request. The route is the registered
// pattern, not the raw path, to keep cardinality down.
func (c *Collector) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (c *Collector) RecordBatchRun() {
	c.batchRuns.Inc()
}

func (c *Collector) RecordBatchFailure() {
	c.batchFails.Inc()
}

// Handler serves the scrape endpoint for the given gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
