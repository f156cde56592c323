package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics backed by a Prometheus registry
// and, when an endpoint is configured, an OTLP push exporter. The
// returned Gatherer lets the caller dump counters at the end of the run;
// the shutdown function flushes the OTLP reader. With telemetry disabled
// the Recorder still counts in memory.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, prometheus.Gatherer, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = "nfl-scoreboard-explorer"
	}

	promReader, gatherer, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		return provider.Shutdown(c)
	}

	return rec, gatherer, shutdown, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

func prometheusComponents() (sdkmetric.Reader, prometheus.Gatherer, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, reg, nil
}

type otelInstruments struct {
	ctx            context.Context
	meter          metric.Meter
	fetchAttempts  metric.Int64Counter
	fetchErrors    metric.Int64Counter
	fetchLatencyMs metric.Float64Histogram
	eventsFetched  metric.Int64Counter
	snapshotWrites metric.Int64Counter
	snapshotErrors metric.Int64Counter
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter("nfl-scoreboard-explorer")
	ctx := context.Background()

	fetchAttempts, err := meter.Int64Counter("fetch_attempts_total")
	if err != nil {
		return nil, err
	}
	fetchErrors, err := meter.Int64Counter("fetch_errors_total")
	if err != nil {
		return nil, err
	}
	fetchLatency, err := meter.Float64Histogram("fetch_duration_ms")
	if err != nil {
		return nil, err
	}
	eventsFetched, err := meter.Int64Counter("scoreboard_events_total")
	if err != nil {
		return nil, err
	}
	snapshotWrites, err := meter.Int64Counter("snapshot_writes_total")
	if err != nil {
		return nil, err
	}
	snapshotErrors, err := meter.Int64Counter("snapshot_write_errors_total")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:            ctx,
		meter:          meter,
		fetchAttempts:  fetchAttempts,
		fetchErrors:    fetchErrors,
		fetchLatencyMs: fetchLatency,
		eventsFetched:  eventsFetched,
		snapshotWrites: snapshotWrites,
		snapshotErrors: snapshotErrors,
	}, nil
}

func (o *otelInstruments) recordFetchAttempt(provider string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrProvider, provider)}
	o.recordCounter(o.fetchAttempts, 1, attrs...)
	o.recordHistogram(o.fetchLatencyMs, float64(duration.Milliseconds()), attrs...)
	if err != nil {
		o.recordCounter(o.fetchErrors, 1, attrs...)
	}
}

func (o *otelInstruments) recordEvents(provider string, count int) {
	if o == nil {
		return
	}
	o.recordCounter(o.eventsFetched, int64(count), attribute.String(AttrProvider, provider))
}

func (o *otelInstruments) recordSnapshotWrite(err error) {
	if o == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
		o.recordCounter(o.snapshotErrors, 1)
	}
	o.recordCounter(o.snapshotWrites, 1, attribute.String(AttrOutcome, outcome))
}

func (o *otelInstruments) recordCounter(counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	counter.Add(o.ctx, value, metric.WithAttributes(attrs...))
}

func (o *otelInstruments) recordHistogram(hist metric.Float64Histogram, value float64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	hist.Record(o.ctx, value, metric.WithAttributes(attrs...))
}
