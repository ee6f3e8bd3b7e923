package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "murmur_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"operation"})

	// IntegrityCascades counts multi-entity cleanup operations by kind, so
	// cascade volume (user deletions, friend unlinks) is visible on dashboards.
	IntegrityCascades = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "murmur_integrity_cascades_total",
		Help: "Total number of cascade cleanups by kind",
	}, []string{"kind"})
)

// InitMetrics creates the Prometheus middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware wraps the fiberprometheus handler as a Fiber middleware.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
