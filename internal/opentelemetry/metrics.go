// Copyright 2025 Lincoln Institute of Land Policy
// SPDX-License-Identifier: Apache-2.0

package opentelemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	metricInterfaces "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

var MeterProvider *metric.MeterProvider
var RecordCounter metricInterfaces.Int64Counter
var TripleCounter metricInterfaces.Int64Counter

const meterName = "healthdcat"

const DefaultMetricCollectorEndpoint = "127.0.0.1:4317"

// InitMetrics exports conversion counters over otlp grpc to endpoint
func InitMetrics(endpoint string) error {
	metricExporter, err := otlpmetricgrpc.New(
		context.Background(),
		otlpmetricgrpc.WithEndpoint(endpoint),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return err
	}
	MeterProvider = metric.NewMeterProvider(
		metric.WithReader(metric.NewPeriodicReader(metricExporter,
			metric.WithInterval(10*time.Second))),
	)

	otel.SetMeterProvider(MeterProvider)

	RecordCounter, err = MeterProvider.Meter(meterName).Int64Counter("records_converted",
		metricInterfaces.WithDescription("Number of tabular records mapped to rdf"),
	)
	if err != nil {
		return err
	}

	TripleCounter, err = MeterProvider.Meter(meterName).Int64Counter("triples_added",
		metricInterfaces.WithDescription("Number of new triples added to the graph"),
	)
	return err
}

// RecordConversion counts the records and triples from one source
func RecordConversion(ctx context.Context, source string, records int, triples int) {
	if MeterProvider == nil {
		return
	}
	attrs := metricInterfaces.WithAttributes(attribute.String("source", source))
	RecordCounter.Add(ctx, int64(records), attrs)
	TripleCounter.Add(ctx, int64(triples), attrs)
}
