package observability

import (
	"context"
	"time"

	"github.com/autou/email-classifier/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const serviceName = "email-classifier"

// Tracer controla o ciclo de vida do provider OpenTelemetry
type Tracer struct {
	provider *sdktrace.TracerProvider
	logger   *zap.Logger
}

// InitTracer initializes the OpenTelemetry tracer with gRPC OTLP exporter.
// Com tracing desabilitado o provider global continua no-op.
func InitTracer(cfg *config.Config, logger *zap.Logger) *Tracer {
	t := &Tracer{logger: logger}
	if !cfg.TracingEnabled {
		logger.Info("tracing desabilitado")
		return t
	}

	ctx := context.Background()

	client := otlptracegrpc.NewClient(
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(cfg.TracingEndpoint),
		otlptracegrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
	)
	exporter, err := otlptrace.New(ctx, client)
	if err != nil {
		logger.Error("falha ao criar exporter OTLP", zap.Error(err))
		return t
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
			semconv.ServiceVersionKey.String("v1.0.0"),
		),
	)
	if err != nil {
		logger.Error("falha ao criar resource", zap.Error(err))
		return t
	}

	t.provider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter,
			sdktrace.WithMaxExportBatchSize(512),
			sdktrace.WithBatchTimeout(time.Second*10),
			sdktrace.WithMaxQueueSize(2048),
		),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(t.provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logger.Info("tracer inicializado", zap.String("endpoint", cfg.TracingEndpoint))
	return t
}

// Enabled indica se há um provider exportando spans
func (t *Tracer) Enabled() bool {
	return t.provider != nil
}

// Shutdown envia os spans pendentes e encerra o provider
func (t *Tracer) Shutdown() {
	if t.provider == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := t.provider.Shutdown(ctx); err != nil {
		t.logger.Error("falha ao encerrar tracer provider", zap.Error(err))
	}
}
