// Copyright 2025 Lincoln Institute of Land Policy
// SPDX-License-Identifier: Apache-2.0

package opentelemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordConversionWithoutProvider(t *testing.T) {
	require.Nil(t, MeterProvider)
	// must be a no-op when metrics are disabled
	RecordConversion(context.Background(), "datasets.csv", 3, 30)
}

func TestSpanWithoutTracer(t *testing.T) {
	require.Nil(t, Tracer)
	ctx := context.Background()
	span, newCtx := SubSpanFromCtxWithName(ctx, "convert")
	defer span.End()
	require.Equal(t, ctx, newCtx)
	require.False(t, span.SpanContext().IsValid())
}
