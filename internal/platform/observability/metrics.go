package observability

import (
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const metricNamespace = "github.com/sia816/my-3d-portfolio/internal/platform/observability"

// MetricsMiddleware records request latency and counts per route and status.
// A nil meter uses the global provider, which is a no-op until one is installed.
func MetricsMiddleware(meter metric.Meter, logger *zap.Logger) func(http.Handler) http.Handler {
	if meter == nil {
		meter = otel.GetMeterProvider().Meter(metricNamespace)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	latency, latencyErr := meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithUnit("ms"),
		metric.WithDescription("Latency in milliseconds of served requests"),
	)
	if latencyErr != nil {
		logger.Warn("observability: unable to register latency metric", zap.Error(latencyErr))
	}
	requests, requestsErr := meter.Int64Counter(
		"http.server.requests",
		metric.WithDescription("Count of served requests"),
	)
	if requestsErr != nil {
		logger.Warn("observability: unable to register request counter", zap.Error(requestsErr))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recorder := newResponseRecorder(w)
			start := time.Now()
			next.ServeHTTP(recorder, r)

			attrs := metric.WithAttributes(
				attribute.String("http.route", routePattern(r)),
				attribute.String("http.response.status_code", strconv.Itoa(recorder.Status())),
			)
			if latencyErr == nil {
				latency.Record(r.Context(), float64(time.Since(start))/float64(time.Millisecond), attrs)
			}
			if requestsErr == nil {
				requests.Add(r.Context(), 1, attrs)
			}
		})
	}
}
