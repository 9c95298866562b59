package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "career_ai",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "career_ai",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
		},
		[]string{"method", "path"},
	)

	chatRelays = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "career_ai",
			Subsystem: "chat",
			Name:      "relays_total",
			Help:      "Chat relays by normalized outcome.",
		},
		[]string{"outcome"},
	)

	chatBackendDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "career_ai",
			Subsystem: "chat",
			Name:      "backend_duration_seconds",
			Help:      "Latency of model backend calls.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12), // 50ms to ~100s
		},
	)

	provisioningSteps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "career_ai",
			Subsystem: "provisioning",
			Name:      "steps_total",
			Help:      "Provisioning saga steps by result.",
		},
		[]string{"step", "result"},
	)

	degradedReads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "career_ai",
			Subsystem: "dashboard",
			Name:      "degraded_reads_total",
			Help:      "Dashboard reads that fell back to defaults.",
		},
		[]string{"source", "reason"},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		chatRelays,
		chatBackendDuration,
		provisioningSteps,
		degradedReads,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Middleware records request count and latency per matched route.
func Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if ctx.Path() == "/metrics" {
			return ctx.Next()
		}

		start := time.Now()
		err := ctx.Next()

		status := ctx.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		path := ctx.Route().Path
		method := ctx.Method()
		httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		return err
	}
}

func RecordRelay(outcome string) {
	chatRelays.WithLabelValues(outcome).Inc()
}

func ObserveBackendCall(d time.Duration) {
	chatBackendDuration.Observe(d.Seconds())
}

func RecordProvisioningStep(step, result string) {
	provisioningSteps.WithLabelValues(step, result).Inc()
}

func RecordDegradedRead(source, reason string) {
	degradedReads.WithLabelValues(source, reason).Inc()
}
