// Package observability provides OpenTelemetry metric initialization and
// the instrument bundle recorded by the fusion engine.
package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"

	"github.com/kbukum/fusionkit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// newResource creates an OpenTelemetry resource with service metadata.
func newResource(serviceName, serviceVersion, environment string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
			attribute.String("environment", environment),
		),
	)
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the instruments recorded per fused recording.
type Metrics struct {
	recordingsTotal      metric.Int64Counter
	segmentsFused        metric.Int64Counter
	segmentsUnattributed metric.Int64Counter
	fuseDuration         metric.Float64Histogram
}

// NewMetrics creates fusion metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	recordingsTotal, err := meter.Int64Counter("fusion.recordings.total",
		metric.WithDescription("Recordings fused, by degraded flag"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating fusion.recordings.total counter: %w", err)
	}

	segmentsFused, err := meter.Int64Counter("fusion.segments.total",
		metric.WithDescription("Transcript segments fused"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating fusion.segments.total counter: %w", err)
	}

	segmentsUnattributed, err := meter.Int64Counter("fusion.segments.unattributed",
		metric.WithDescription("Fused segments with no overlapping speaker turn"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating fusion.segments.unattributed counter: %w", err)
	}

	fuseDuration, err := meter.Float64Histogram("fusion.duration",
		metric.WithDescription("Duration of the fuse step in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating fusion.duration histogram: %w", err)
	}

	return &Metrics{
		recordingsTotal:      recordingsTotal,
		segmentsFused:        segmentsFused,
		segmentsUnattributed: segmentsUnattributed,
		fuseDuration:         fuseDuration,
	}, nil
}

// RecordRecording records the instruments for one fused recording.
// A nil receiver is a no-op so metrics stay optional.
func (m *Metrics) RecordRecording(ctx context.Context, degraded bool, segments, unattributed int, elapsed time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.Bool("degraded", degraded))
	m.recordingsTotal.Add(ctx, 1, attrs)
	m.segmentsFused.Add(ctx, int64(segments))
	m.segmentsUnattributed.Add(ctx, int64(unattributed))
	m.fuseDuration.Record(ctx, elapsed.Seconds(), attrs)
}
