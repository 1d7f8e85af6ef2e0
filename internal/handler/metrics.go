package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

// Metrics holds all Prometheus collectors for the radar service.
var Metrics = struct {
	RunsTotal        *prometheus.CounterVec
	RunDuration      prometheus.Histogram
	ChannelsScored   prometheus.Histogram
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge
	CacheHits        prometheus.Counter
	CacheMisses      prometheus.Counter
}{}

// RegisterMetrics initializes and registers all collectors. Call once at startup.
func RegisterMetrics() {
	Metrics.RunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "radar_runs_total",
			Help: "Total TOP100 pipeline runs by outcome.",
		},
		[]string{"status"},
	)

	Metrics.RunDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "radar_run_duration_seconds",
			Help:    "Duration of full TOP100 pipeline runs.",
			Buckets: []float64{1, 2.5, 5, 10, 20, 40, 80, 160},
		},
	)

	Metrics.ChannelsScored = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "radar_channels_scored",
			Help:    "Channels that survived the full funnel per run.",
			Buckets: []float64{0, 10, 25, 50, 75, 100, 150, 220},
		},
	)

	Metrics.RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "radar_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	Metrics.RequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "radar_requests_in_flight",
			Help: "Number of HTTP requests currently being served.",
		},
	)

	Metrics.CacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "radar_report_cache_hits_total",
			Help: "Total report cache hits.",
		},
	)

	Metrics.CacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "radar_report_cache_misses_total",
			Help: "Total report cache misses.",
		},
	)

	prometheus.MustRegister(
		Metrics.RunsTotal,
		Metrics.RunDuration,
		Metrics.ChannelsScored,
		Metrics.RequestDuration,
		Metrics.RequestsInFlight,
		Metrics.CacheHits,
		Metrics.CacheMisses,
	)
}

// MetricsMiddleware records request duration and in-flight count for Prometheus.
func MetricsMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		// Don't instrument the /metrics endpoint itself
		if c.Path() == "/metrics" {
			return c.Next()
		}

		// Copy path and method into owned strings BEFORE c.Next(): Fiber
		// returns slices backed by the fasthttp buffer which can be reused
		// or overwritten by handlers (especially fasthttpadaptor).
		endpoint := string([]byte(c.Path()))
		method := string([]byte(c.Method()))

		Metrics.RequestsInFlight.Inc()
		start := time.Now()

		err := c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Response().StatusCode())

		Metrics.RequestDuration.WithLabelValues(endpoint, method, status).Observe(duration)
		Metrics.RequestsInFlight.Dec()

		return err
	}
}

// MetricsHandler serves the Prometheus /metrics endpoint via Fiber.
func MetricsHandler() fiber.Handler {
	httpHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	return func(c fiber.Ctx) error {
		httpHandler(c.RequestCtx())
		return nil
	}
}
