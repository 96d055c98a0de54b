package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/autou/email-classifier/internal/config"
)

func TestInitTracerDisabled(t *testing.T) {
	tracer := InitTracer(&config.Config{TracingEnabled: false}, zap.NewNop())

	assert.False(t, tracer.Enabled())
	assert.NotPanics(t, tracer.Shutdown)
}

func TestInitTracerEnabled(t *testing.T) {
	// o exporter gRPC conecta de forma preguiçosa, então não precisa de coletor rodando
	tracer := InitTracer(&config.Config{
		TracingEnabled:  true,
		TracingEndpoint: "localhost:4317",
	}, zap.NewNop())

	assert.True(t, tracer.Enabled())
	tracer.Shutdown()
}
