package services

import (
	"fmt"
	"os"
	"strconv"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const (
	MONITORING_SVC          = "monitoring_svc"
	SERVICE_NAME            = "qazkids_api"
	DEFAULT_PROMETHEUS_PORT = 2112
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"endpoint", "method", "status"},
	)

	httpRequestsFailedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_failed_total",
			Help: "Total failed HTTP requests (4xx, 5xx status codes)",
		},
		[]string{"endpoint", "method"},
	)

	httpRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"endpoint", "method", "status"},
	)

	progressSubmissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "progress_submissions_total",
			Help: "Progress submissions by outcome (attempted, completed)",
		},
		[]string{"outcome"},
	)

	filmViewsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "film_views_total",
			Help: "Film detail reads (each one counts a view)",
		},
	)
)

// MonitoringService exposes prometheus metrics on a dedicated port.
type MonitoringService struct {
	appContext.DefaultService

	port     int
	register *prometheus.Registry
	server   *fiber.App
}

func (svc *MonitoringService) Id() string {
	return MONITORING_SVC
}

func (svc *MonitoringService) Configure(ctx *appContext.Context) error {
	portStr := os.Getenv("PROMETHEUS_PORT")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		port = DEFAULT_PROMETHEUS_PORT
	}
	svc.port = port
	return svc.DefaultService.Configure(ctx)
}

func (svc *MonitoringService) Start() error {
	reg := prometheus.NewRegistry()

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	reg.MustRegister(
		httpRequestsTotal,
		httpRequestsFailedTotal,
		httpRequestDurationSeconds,
		progressSubmissionsTotal,
		filmViewsTotal,
	)

	svc.register = reg

	svc.server = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
		},
	})
	svc.server.Use(recover.New())

	svc.server.Get("/metrics", svc.metricsHandler)
	svc.server.Get("/health", svc.healthHandler)

	// The metrics listener runs in the background; the public HTTP service
	// stays the single blocking tail of the service chain.
	go func() {
		log.Info().Int("port", svc.port).Msg("Prometheus metrics server started")
		if err := svc.server.Listen(fmt.Sprintf(":%v", svc.port)); err != nil {
			log.Error().Err(err).Msg("Prometheus metrics server stopped")
		}
	}()

	return nil
}

func (svc *MonitoringService) Shutdown() {
	if svc.server != nil {
		_ = svc.server.Shutdown()
	}
}

func (svc *MonitoringService) metricsHandler(c *fiber.Ctx) error {
	handler := promhttp.HandlerFor(svc.register, promhttp.HandlerOpts{})
	return adaptor.HTTPHandler(handler)(c)
}

func (svc *MonitoringService) healthHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":    "healthy",
		"service":   SERVICE_NAME,
		"timestamp": time.Now().Unix(),
	})
}

// RecordRequest records HTTP request metrics
func (svc *MonitoringService) RecordRequest(method, endpoint, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(endpoint, method, status).Inc()
	httpRequestDurationSeconds.WithLabelValues(endpoint, method, status).Observe(duration.Seconds())

	statusCode, _ := strconv.Atoi(status)
	if statusCode >= 400 {
		httpRequestsFailedTotal.WithLabelValues(endpoint, method).Inc()
	}
}

// RecordFilmView counts one film detail read.
func (svc *MonitoringService) RecordFilmView() {
	filmViewsTotal.Inc()
}

// RecordProgressSubmission counts one progress upsert by outcome.
func (svc *MonitoringService) RecordProgressSubmission(outcome string) {
	progressSubmissionsTotal.WithLabelValues(outcome).Inc()
}

// MonitoringMiddleware creates a Fiber middleware for monitoring HTTP requests
func MonitoringMiddleware(monitoringSvc *MonitoringService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == "/metrics" {
			return c.Next()
		}

		start := time.Now()
		method := c.Method()

		err := c.Next()

		// Route pattern, not the raw path, to keep label cardinality low
		endpoint := c.Route().Path
		duration := time.Since(start)
		status := strconv.Itoa(c.Response().StatusCode())

		monitoringSvc.RecordRequest(method, endpoint, status, duration)

		return err
	}
}
