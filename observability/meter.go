package observability

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/validation"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	ServiceName    string `mapstructure:"service_name" yaml:"service_name" validate:"required"`
	ServiceVersion string `mapstructure:"service_version" yaml:"service_version"`
	Environment    string `mapstructure:"environment" yaml:"environment"`
	Endpoint       string `mapstructure:"endpoint" yaml:"endpoint" validate:"required"`
	Insecure       bool   `mapstructure:"insecure" yaml:"insecure"`
	// Interval is the metric export interval. Zero uses the SDK default.
	Interval time.Duration `mapstructure:"interval" yaml:"interval" validate:"gte=0"`
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) *MeterConfig {
	return &MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// Validate checks the meter configuration.
func (c *MeterConfig) Validate() error {
	return validation.Struct(c)
}

// InitMeter installs a global meter provider exporting over OTLP/HTTP on a
// periodic reader. The caller owns the returned provider and must shut it down.
func InitMeter(ctx context.Context, cfg *MeterConfig) (*sdkmetric.MeterProvider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, errors.InvalidConfig("metric exporter").WithCause(err)
	}

	res, err := serviceResource(cfg.ServiceName, cfg.ServiceVersion, cfg.Environment)
	if err != nil {
		return nil, err
	}

	var readerOpts []sdkmetric.PeriodicReaderOption
	if cfg.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(cfg.Interval))
	}
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)

	logger.Get("observability").Info("meter ready", logger.Fields(
		"service", cfg.ServiceName,
		"endpoint", cfg.Endpoint,
		"interval", cfg.Interval.String(),
	))
	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Pull outcomes recorded by PullMetrics.
const (
	StatusOK    = "ok"
	StatusDone  = "done"
	StatusError = "error"
)

// PullMetrics holds the instruments recorded for each pull through an
// instrumented sequence.
type PullMetrics struct {
	pullTotal    metric.Int64Counter
	pullDuration metric.Float64Histogram
	inFlight     metric.Int64UpDownCounter
	errorTotal   metric.Int64Counter
}

// NewPullMetrics creates pull instruments on the given meter.
func NewPullMetrics(meter metric.Meter) (*PullMetrics, error) {
	pullTotal, err := meter.Int64Counter("seqkit.pull.total",
		metric.WithDescription("Total number of pulls by stage and outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating seqkit.pull.total counter: %w", err)
	}

	pullDuration, err := meter.Float64Histogram("seqkit.pull.duration",
		metric.WithDescription("Duration of pulls in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating seqkit.pull.duration histogram: %w", err)
	}

	inFlight, err := meter.Int64UpDownCounter("seqkit.pull.active",
		metric.WithDescription("Number of pulls currently waiting on upstream"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating seqkit.pull.active gauge: %w", err)
	}

	errorTotal, err := meter.Int64Counter("seqkit.error.total",
		metric.WithDescription("Total pull errors by stage"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating seqkit.error.total counter: %w", err)
	}

	return &PullMetrics{
		pullTotal:    pullTotal,
		pullDuration: pullDuration,
		inFlight:     inFlight,
		errorTotal:   errorTotal,
	}, nil
}

// RecordPullStart increments the in-flight pull count.
func (m *PullMetrics) RecordPullStart(ctx context.Context, stage string) {
	m.inFlight.Add(ctx, 1, metric.WithAttributes(attribute.String("stage", stage)))
}

// RecordPull decrements the in-flight count and records a completed pull.
func (m *PullMetrics) RecordPull(ctx context.Context, stage, status string, duration time.Duration) {
	stageAttr := attribute.String("stage", stage)
	m.inFlight.Add(ctx, -1, metric.WithAttributes(stageAttr))
	m.pullTotal.Add(ctx, 1, metric.WithAttributes(stageAttr, attribute.String("status", status)))
	m.pullDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(stageAttr))
}

// RecordError counts a failed pull.
func (m *PullMetrics) RecordError(ctx context.Context, stage string, err error) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("stage", stage),
		attribute.String("type", errorType(err)),
	))
}

func errorType(err error) string {
	if code := errors.Code(err); code != "" {
		return string(code)
	}
	switch {
	case stderrors.Is(err, context.Canceled):
		return "canceled"
	case stderrors.Is(err, context.DeadlineExceeded):
		return "deadline"
	default:
		return "other"
	}
}
