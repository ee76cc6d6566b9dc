package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

func TestNewResource(t *testing.T) {
	t.Run("valid service name", func(t *testing.T) {
		serviceName := "infura-cli"
		res, err := newResource(serviceName)
		require.NoError(t, err)
		require.NotNil(t, res)

		attrs := res.Attributes()
		found := false
		for _, attr := range attrs {
			if attr.Key == semconv.ServiceNameKey {
				assert.Equal(t, serviceName, attr.Value.AsString())
				found = true
				break
			}
		}
		assert.True(t, found, "Service name attribute not found in resource")
	})

	t.Run("empty service name", func(t *testing.T) {
		res, err := newResource("")
		require.NoError(t, err)
		assert.NotNil(t, res)
	})
}

func TestLoggerProvider(t *testing.T) {
	t.Run("nil before initialization", func(t *testing.T) {
		loggerProvider.Store(nil)
		assert.Nil(t, LoggerProvider())
	})
}

func TestInit(t *testing.T) {
	t.Run("registers providers and clears them on shutdown", func(t *testing.T) {
		t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://127.0.0.1:1")

		shutdown, err := Init(t.Context(), "infura-test")
		require.NoError(t, err, "exporters connect lazily, so Init should succeed without a collector")
		require.NotNil(t, shutdown)
		assert.NotNil(t, LoggerProvider())

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		if err := shutdown(ctx); err != nil {
			t.Logf("shutdown returned error (expected without a collector): %v", err)
		}
		assert.Nil(t, LoggerProvider())
	})
}
