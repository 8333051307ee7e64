package monitoring

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	procedureCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "procedure_calls_total",
			Help: "Total procedure calls by route and status code",
		},
		[]string{"method", "route", "status"},
	)

	procedureDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "procedure_duration_seconds",
			Help:    "Procedure call duration including simulated latency",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
		},
		[]string{"method", "route"},
	)
)

// Middleware records a counter and a duration sample per procedure call.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" {
				route = c.Request().URL.Path
			}
			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			method := c.Request().Method
			procedureCalls.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			procedureDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
