package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

func TestNewResource(t *testing.T) {
	t.Setenv("OTEL_SERVICE_NAME", "")
	t.Setenv("OTEL_RESOURCE_ATTRIBUTES", "")
	ctx := context.Background()

	t.Run("defaults service name", func(t *testing.T) {
		res, err := newResource(ctx, Config{Version: "1.2.3"})
		require.NoError(t, err)

		name, ok := res.Set().Value(semconv.ServiceNameKey)
		require.True(t, ok)
		require.Equal(t, DefaultServiceName, name.AsString())

		version, ok := res.Set().Value(semconv.ServiceVersionKey)
		require.True(t, ok)
		require.Equal(t, "1.2.3", version.AsString())

		_, ok = res.Set().Value(semconv.DeploymentEnvironmentKey)
		require.False(t, ok)
	})

	t.Run("carries deployment environment", func(t *testing.T) {
		res, err := newResource(ctx, Config{ServiceName: "naz-portal-worker", Environment: "staging"})
		require.NoError(t, err)

		name, _ := res.Set().Value(semconv.ServiceNameKey)
		require.Equal(t, "naz-portal-worker", name.AsString())

		env, ok := res.Set().Value(semconv.DeploymentEnvironmentKey)
		require.True(t, ok)
		require.Equal(t, "staging", env.AsString())
	})
}
