package telemetry

import (
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const (
	meterName = "github.com/wolfeidau/orgctl"
)

// Metrics holds all the OpenTelemetry metric instruments
type Metrics struct {
	// Request metrics, attributed by operation
	RequestsTotal         metric.Int64Counter
	RequestErrorsTotal    metric.Int64Counter
	RequestsCanceledTotal metric.Int64Counter
	RequestDuration       metric.Float64Histogram

	// Decode metrics
	DecodeErrorsTotal metric.Int64Counter
	ValidationErrors  metric.Int64Counter
}

var (
	once    sync.Once
	metrics *Metrics
)

// GetMetrics returns the singleton Metrics instance, initializing it if necessary
func GetMetrics() *Metrics {
	once.Do(func() {
		metrics = initMetrics()
	})
	return metrics
}

// initMetrics creates and registers all metric instruments
func initMetrics() *Metrics {
	meter := otel.GetMeterProvider().Meter(meterName)

	m := &Metrics{}

	m.RequestsTotal, _ = meter.Int64Counter(
		"orgctl.requests.total",
		metric.WithDescription("Total number of requests issued to the organization services"),
		metric.WithUnit("{request}"),
	)

	m.RequestErrorsTotal, _ = meter.Int64Counter(
		"orgctl.requests.errors.total",
		metric.WithDescription("Total number of requests that failed with a transport or status error"),
		metric.WithUnit("{error}"),
	)

	m.RequestsCanceledTotal, _ = meter.Int64Counter(
		"orgctl.requests.canceled.total",
		metric.WithDescription("Total number of requests canceled before completion"),
		metric.WithUnit("{request}"),
	)

	m.RequestDuration, _ = meter.Float64Histogram(
		"orgctl.requests.duration",
		metric.WithDescription("Duration of requests to the organization services"),
		metric.WithUnit("ms"),
	)

	m.DecodeErrorsTotal, _ = meter.Int64Counter(
		"orgctl.decode.errors.total",
		metric.WithDescription("Total number of responses missing their expected root element"),
		metric.WithUnit("{error}"),
	)

	m.ValidationErrors, _ = meter.Int64Counter(
		"orgctl.validation.errors.total",
		metric.WithDescription("Total number of payloads rejected before sending"),
		metric.WithUnit("{error}"),
	)

	return m
}
