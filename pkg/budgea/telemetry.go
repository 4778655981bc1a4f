package budgea

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	clientTracer             = otel.Tracer("budgea/client")
	clientMeter              = otel.Meter("budgea/client")
	clientRequestDuration, _ = clientMeter.Float64Histogram("budgea.client.request.duration",
		metric.WithDescription("Budgea API call duration in seconds"),
		metric.WithUnit("s"),
	)
	clientRequestTotal, _ = clientMeter.Int64Counter("budgea.client.request.total",
		metric.WithDescription("Total Budgea API calls by operation and status"),
	)
)

// recordCall records one finished call. status is 0 when no response arrived.
func recordCall(ctx context.Context, op *Operation, status int, start time.Time) {
	attrs := metric.WithAttributes(
		attribute.String("budgea.operation", op.Name),
		attribute.String("http.method", op.Method),
		attribute.Int("http.status_code", status),
	)
	clientRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	clientRequestTotal.Add(ctx, 1, attrs)
}
