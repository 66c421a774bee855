// Copyright 2025 Lincoln Institute of Land Policy
// SPDX-License-Identifier: Apache-2.0

package opentelemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestShutdownWithoutProviders(t *testing.T) {
	require.NoError(t, Shutdown(context.Background()))
	require.Nil(t, TracerProvider)
	require.Nil(t, MeterProvider)
}

func TestShutdownFlushesCountersAndDisablesTelemetry(t *testing.T) {
	reader := metric.NewManualReader()
	MeterProvider = metric.NewMeterProvider(metric.WithReader(reader))
	var err error
	RecordCounter, err = MeterProvider.Meter(meterName).Int64Counter("records_converted")
	require.NoError(t, err)
	TripleCounter, err = MeterProvider.Meter(meterName).Int64Counter("triples_added")
	require.NoError(t, err)
	TracerProvider = sdktrace.NewTracerProvider()
	Tracer = TracerProvider.Tracer("healthdcat")

	ctx := context.Background()
	RecordConversion(ctx, "datasets.csv", 3, 30)
	var collected metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &collected))
	require.Len(t, collected.ScopeMetrics, 1)
	require.Len(t, collected.ScopeMetrics[0].Metrics, 2)

	require.NoError(t, Shutdown(ctx))
	require.Nil(t, TracerProvider)
	require.Nil(t, Tracer)
	require.Nil(t, MeterProvider)
	require.Nil(t, RecordCounter)
	require.Nil(t, TripleCounter)

	// both entry points fall back to no-ops
	RecordConversion(ctx, "datasets.csv", 1, 1)
	span, newCtx := SubSpanFromCtxWithName(ctx, "convert")
	defer span.End()
	require.Equal(t, ctx, newCtx)

	// a second shutdown has nothing left to release
	require.NoError(t, Shutdown(ctx))
}

func TestShutdownIgnoresCancelledContext(t *testing.T) {
	MeterProvider = metric.NewMeterProvider(metric.WithReader(metric.NewManualReader()))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, Shutdown(ctx))
	require.Nil(t, MeterProvider)
}
