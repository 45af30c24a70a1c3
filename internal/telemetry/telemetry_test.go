package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitTelemetry_disabled(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_METRICS_ENDPOINT", "")

	require.False(t, Enabled())

	shutdown, err := InitTelemetry(context.Background(), "orgctl", "test")
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestGetMetrics(t *testing.T) {
	m := GetMetrics()
	require.NotNil(t, m.RequestsTotal)
	require.NotNil(t, m.RequestDuration)
	require.Same(t, m, GetMetrics())
}
