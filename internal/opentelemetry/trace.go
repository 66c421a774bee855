// Copyright 2025 Lincoln Institute of Land Policy
// SPDX-License-Identifier: Apache-2.0

package opentelemetry

import (
	"context"

	log "github.com/sirupsen/logrus"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace" // name this differently so it doesn't conflict with the tracer interface
	"go.opentelemetry.io/otel/trace"
)

const DefaultTracingEndpoint = "127.0.0.1:4317"

// the global tracer instance that keeps track of client spans
var Tracer trace.Tracer
var TracerProvider *sdktrace.TracerProvider

// Start a span as a child of whatever span is in ctx. If tracing was never
// initialized the span is a no-op so callers never need to check
func SubSpanFromCtxWithName(ctx context.Context, name string) (trace.Span, context.Context) {
	if Tracer == nil {
		return trace.SpanFromContext(context.Background()), ctx
	}
	ctx, span := Tracer.Start(ctx, name)
	return span, ctx
}

// InitTracer exports spans over otlp grpc to endpoint
func InitTracer(serviceName string, endpoint string) error {
	ctx := context.Background()

	resource, err := resource.New(ctx,
		resource.WithAttributes(attribute.String("service.name", serviceName)),
	)
	if err != nil {
		return err
	}

	client := otlptracegrpc.NewClient(
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(),
	)

	otlpTraceExporter, err := otlptrace.New(ctx, client)
	if err != nil {
		return err
	}

	TracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(otlpTraceExporter),
		sdktrace.WithResource(resource),
	)

	otel.SetTracerProvider(TracerProvider)

	Tracer = TracerProvider.Tracer(serviceName)

	log.Infof("OpenTelemetry Tracer initialized, sending traces to %s", endpoint)
	return nil
}
