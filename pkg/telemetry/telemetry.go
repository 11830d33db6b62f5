package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/goto/salt/log"
	"go.opentelemetry.io/contrib/instrumentation/host"
	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/contrib/samplers/probability/consistent"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/grpc/encoding/gzip"
)

const gracePeriod = 5 * time.Second

type Config struct {
	AppVersion  string `yaml:"-" mapstructure:"-"`
	StoreDriver string `yaml:"-" mapstructure:"-"`

	AppName       string              `yaml:"app_name" mapstructure:"app_name" default:"assetkeeper"`
	OpenTelemetry OpenTelemetryConfig `yaml:"open_telemetry" mapstructure:"open_telemetry"`
}

type OpenTelemetryConfig struct {
	Enabled                bool          `yaml:"enabled" mapstructure:"enabled" default:"false"`
	CollectorAddr          string        `yaml:"collector_addr" mapstructure:"collector_addr" default:"localhost:4317"`
	PeriodicReadInterval   time.Duration `yaml:"periodic_read_interval" mapstructure:"periodic_read_interval" default:"1s"`
	TraceSampleProbability float64       `yaml:"trace_sample_probability" mapstructure:"trace_sample_probability" default:"1"`
}

// Init exports the inventory's operation spans and counters to an OTLP
// collector. The returned func flushes and shuts the exporters down.
func Init(ctx context.Context, cfg Config, logger log.Logger) (cleanUp func(), err error) {
	if !cfg.OpenTelemetry.Enabled {
		logger.Debug("opentelemetry disabled")
		return noOp, nil
	}

	res, err := NewResource(ctx, cfg)
	if err != nil {
		return noOp, err
	}

	metricExporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithEndpoint(cfg.OpenTelemetry.CollectorAddr),
		otlpmetricgrpc.WithCompressor(gzip.Name),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return noOp, fmt.Errorf("create metric exporter: %w", err)
	}

	spanExporter, err := otlptrace.New(ctx, otlptracegrpc.NewClient(
		otlptracegrpc.WithEndpoint(cfg.OpenTelemetry.CollectorAddr),
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithCompressor(gzip.Name),
	))
	if err != nil {
		shutdownExporter(logger, "metric", metricExporter.Shutdown)
		return noOp, fmt.Errorf("create trace exporter: %w", err)
	}

	p := Install(res,
		sdkmetric.NewPeriodicReader(metricExporter, sdkmetric.WithInterval(cfg.OpenTelemetry.PeriodicReadInterval)),
		sdktrace.NewBatchSpanProcessor(spanExporter),
		consistent.ParentProbabilityBased(consistent.ProbabilityBased(cfg.OpenTelemetry.TraceSampleProbability)),
	)
	cleanUp = func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), gracePeriod)
		defer cancel()
		if err := p.Shutdown(shutdownCtx); err != nil {
			logger.Error("opentelemetry shutdown", "err", err)
		}
	}

	if err := host.Start(); err != nil {
		cleanUp()
		return noOp, err
	}
	if err := runtime.Start(); err != nil {
		cleanUp()
		return noOp, err
	}

	logger.Debug("opentelemetry enabled", "collector", cfg.OpenTelemetry.CollectorAddr, "store_driver", cfg.StoreDriver)
	return cleanUp, nil
}

func shutdownExporter(logger log.Logger, kind string, shutdown func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), gracePeriod)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		logger.Error("opentelemetry exporter shutdown", "exporter", kind, "err", err)
	}
}

func noOp() {}
