package tracing

import (
	"context"
	"fmt"

	"github.com/honeycombio/otel-config-go/otelconfig"
	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var GlobalTracer = otel.Tracer("workout-backend")

// EndSpanWithErrCheck marks the span failed if err is set, then ends it.
func EndSpanWithErrCheck(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	}
	span.End()
}

// HoneycombSetup configures the OpenTelemetry pipeline. The exporter
// endpoint and API key come from the OTEL_* / HONEYCOMB_* env vars.
// The returned function shuts the pipeline down.
func HoneycombSetup(tracingEnabled bool, serviceName string) (func(), error) {
	if !tracingEnabled {
		log.Debugln("tracing disabled, skipping otel setup")
		return func() {}, nil
	}

	otelShutdown, err := otelconfig.ConfigureOpenTelemetry(
		otelconfig.WithServiceName(serviceName),
	)
	if err != nil {
		return nil, fmt.Errorf("configure opentelemetry: %w", err)
	}

	log.Debugln("otel tracing set up")
	return otelShutdown, nil
}

type PgxOtelTracer struct {
	tracer         trace.Tracer
	tracingEnabled bool
}

func NewPgxOtelTracer(tracingEnabled bool, tracer trace.Tracer) *PgxOtelTracer {
	return &PgxOtelTracer{
		tracingEnabled: tracingEnabled,
		tracer:         tracer,
	}
}

func (t *PgxOtelTracer) TraceConnectStart(ctx context.Context, data pgx.TraceConnectStartData) context.Context {
	if !t.tracingEnabled {
		return ctx
	}
	ctx, span := t.tracer.Start(ctx, "db.connectStart")
	defer span.End()
	return ctx
}

func (t *PgxOtelTracer) TraceConnectEnd(ctx context.Context, data pgx.TraceConnectEndData) {
	if !t.tracingEnabled {
		return
	}

	ctx, span := t.tracer.Start(ctx, "db.connectEnd")
	defer span.End()

	if data.Err != nil {
		span.SetStatus(codes.Error, data.Err.Error())
		span.RecordError(data.Err)
	}
}

func (t *PgxOtelTracer) TraceQueryStart(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	if !t.tracingEnabled {
		return ctx
	}

	ctx, span := t.tracer.Start(ctx, "db.queryStart")
	defer span.End()

	span.SetAttributes(attribute.String("sql", data.SQL))

	return ctx
}

func (t *PgxOtelTracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	if !t.tracingEnabled {
		return
	}

	ctx, span := t.tracer.Start(ctx, "db.queryEnd")
	defer span.End()

	span.SetAttributes(attribute.String("commandTag", data.CommandTag.String()))
	if data.Err != nil {
		span.SetStatus(codes.Error, data.Err.Error())
		span.RecordError(data.Err)
	}
}
