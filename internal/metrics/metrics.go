// Package metrics exposes Prometheus collectors for connection queries, dataset
// loads and HTTP traffic.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vanshika/costars/internal/domain"
)

// Metrics holds every collector the service exports. It satisfies service.Observer.
type Metrics struct {
	Queries         *prometheus.CounterVec
	QueryDuration   prometheus.Histogram
	PathDegrees     prometheus.Histogram
	Loads           *prometheus.CounterVec
	LoadDuration    prometheus.Histogram
	GraphSize       *prometheus.GaugeVec
	HTTPRequests    *prometheus.CounterVec
	HTTPDuration    *prometheus.HistogramVec
	LastLoadSuccess prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Queries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "costars_queries_total",
				Help: "Count of connection queries by outcome",
			},
			[]string{"status"},
		),
		QueryDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "costars_query_duration_seconds",
				Help:    "Time taken to search for a connection",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
		),
		PathDegrees: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "costars_path_degrees",
				Help:    "Hop count of connections found",
				Buckets: []float64{0, 1, 2, 3, 4, 5, 6, 8, 10},
			},
		),
		Loads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "costars_dataset_loads_total",
				Help: "Count of dataset loads by result",
			},
			[]string{"result"},
		),
		LoadDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "costars_dataset_load_duration_seconds",
				Help:    "Time taken to parse, index and build the graph",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
			},
		),
		GraphSize: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "costars_graph_size",
				Help: "Size of the current snapshot",
			},
			[]string{"kind"}, // actors, movies, edges
		),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "costars_http_requests_total",
				Help: "Count of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "costars_http_request_duration_seconds",
				Help:    "Time taken to serve HTTP requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		LastLoadSuccess: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "costars_dataset_last_load_success_timestamp_seconds",
				Help: "Unix time of the last successful dataset load",
			},
		),
	}
	reg.MustRegister(
		m.Queries,
		m.QueryDuration,
		m.PathDegrees,
		m.Loads,
		m.LoadDuration,
		m.GraphSize,
		m.HTTPRequests,
		m.HTTPDuration,
		m.LastLoadSuccess,
	)
	return m
}

// ObserveQuery records the outcome of one connection query.
func (m *Metrics) ObserveQuery(status domain.PathStatus, hops int, elapsed time.Duration) {
	m.Queries.WithLabelValues(status.String()).Inc()
	m.QueryDuration.Observe(elapsed.Seconds())
	if status == domain.PathFound {
		m.PathDegrees.Observe(float64(hops))
	}
}

// ObserveLoad records a dataset load attempt.
func (m *Metrics) ObserveLoad(stats domain.GraphStats, elapsed time.Duration, err error) {
	m.LoadDuration.Observe(elapsed.Seconds())
	if err != nil {
		m.Loads.WithLabelValues("error").Inc()
		return
	}
	m.Loads.WithLabelValues("ok").Inc()
	m.GraphSize.WithLabelValues("actors").Set(float64(stats.Actors))
	m.GraphSize.WithLabelValues("movies").Set(float64(stats.Movies))
	m.GraphSize.WithLabelValues("edges").Set(float64(stats.Edges))
	m.LastLoadSuccess.Set(float64(stats.LoadedAt.Unix()))
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, path string, status int, elapsed time.Duration) {
	m.HTTPRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}
