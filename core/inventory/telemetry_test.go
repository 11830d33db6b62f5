package inventory_test

import (
	"context"
	"testing"

	"github.com/goto/assetkeeper/core/asset"
	"github.com/goto/assetkeeper/core/inventory"
	"github.com/goto/assetkeeper/pkg/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func installTelemetry(t *testing.T) (*sdkmetric.ManualReader, *tracetest.InMemoryExporter) {
	t.Helper()
	prevMeter, prevTracer := otel.GetMeterProvider(), otel.GetTracerProvider()

	res, err := telemetry.NewResource(context.Background(), telemetry.Config{AppName: "assetkeeper", StoreDriver: "memory"})
	require.NoError(t, err)
	reader := sdkmetric.NewManualReader()
	spans := tracetest.NewInMemoryExporter()
	p := telemetry.Install(res, reader, sdktrace.NewSimpleSpanProcessor(spans), sdktrace.AlwaysSample())

	t.Cleanup(func() {
		_ = p.Shutdown(context.Background())
		otel.SetMeterProvider(prevMeter)
		otel.SetTracerProvider(prevTracer)
	})
	return reader, spans
}

func spanAttr(s tracetest.SpanStub, key string) (string, bool) {
	for _, kv := range s.Attributes {
		if string(kv.Key) == key {
			return kv.Value.AsString(), true
		}
	}
	return "", false
}

func TestSessionTelemetry(t *testing.T) {
	ctx := context.Background()
	reader, spans := installTelemetry(t)

	s := newSession(t, seed(t, []asset.Stored{stored("1", "Camera")}))
	_, err := s.Add(ctx, inventory.AddRequest{IDs: "2", Name: "Tripod", StorageLocation: "Closet"})
	require.NoError(t, err)
	err = s.Approve(ctx, lookup(t, s, "1"))
	require.Error(t, err)

	got := spans.GetSpans()
	require.Len(t, got, 3)
	assert.Equal(t, "inventory.load", got[0].Name)
	assert.Equal(t, "inventory.add", got[1].Name)
	assert.Equal(t, "inventory.approve", got[2].Name)

	id, ok := spanAttr(got[1], "asset.identifier")
	assert.True(t, ok)
	assert.Equal(t, "2", id)
	session, _ := spanAttr(got[1], "assetkeeper.session")
	assert.Equal(t, s.ID(), session)
	assert.Equal(t, codes.Unset, got[1].Status.Code)
	assert.Equal(t, codes.Error, got[2].Status.Code)

	driver, _ := got[0].Resource.Set().Value(telemetry.StoreDriverKey)
	assert.Equal(t, "memory", driver.AsString())

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	counts := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "assetkeeper.inventory.operation" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				op, _ := dp.Attributes.Value(attribute.Key("assetkeeper.operation"))
				success, _ := dp.Attributes.Value(attribute.Key("operation.success"))
				if success.AsBool() {
					counts[op.AsString()] += dp.Value
				} else {
					counts[op.AsString()+":failed"] += dp.Value
				}
			}
		}
	}
	assert.Equal(t, map[string]int64{"load": 1, "add": 1, "approve:failed": 1}, counts)
}
