// Package telemetry exposes request and loader metrics in the Prometheus
// text format.
package telemetry

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mentions"

// buckets for seconds resolutions of histograms
var buckets = []float64{.005, .025, .1, .25, .5, 1, 2.5, 5}

type Metrics struct {
	registry *prometheus.Registry

	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	DatasetLoad     *prometheus.HistogramVec
	RowsSkipped     *prometheus.CounterVec
	MentionsStored  *prometheus.CounterVec
}

// New registers every collector on a fresh registry, so tests can build as
// many instances as they need.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Time taken to serve an HTTP request.",
			Buckets:   buckets,
		}, []string{"method", "route"}),
		DatasetLoad: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "dataset_load_duration_seconds",
			Help:      "Time taken to load and filter a dataset.",
			Buckets:   buckets,
		}, []string{"dataset"}),
		RowsSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dataset_rows_skipped_total",
			Help:      "Source rows dropped because of an unparseable timestamp or measure.",
		}, []string{"dataset"}),
		MentionsStored: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_stored_total",
			Help:      "Ingested mention events by outcome.",
		}, []string{"outcome"}),
	}

	m.registry.MustRegister(
		m.Requests,
		m.RequestDuration,
		m.DatasetLoad,
		m.RowsSkipped,
		m.MentionsStored,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveLoad records one dataset load.
func (m *Metrics) ObserveLoad(dataset string, took time.Duration, skipped int) {
	m.DatasetLoad.WithLabelValues(dataset).Observe(took.Seconds())
	if skipped > 0 {
		m.RowsSkipped.WithLabelValues(dataset).Add(float64(skipped))
	}
}

// ObserveIngest records how many events were created and how many were
// duplicates.
func (m *Metrics) ObserveIngest(created, duplicates int) {
	m.MentionsStored.WithLabelValues("created").Add(float64(created))
	m.MentionsStored.WithLabelValues("duplicate").Add(float64(duplicates))
}

// Middleware counts requests by their route pattern, not the raw path, to
// keep label cardinality bounded.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		m.Requests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		m.RequestDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler serves the registry for scraping.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
