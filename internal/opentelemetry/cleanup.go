// Copyright 2025 Lincoln Institute of Land Policy
// SPDX-License-Identifier: Apache-2.0

package opentelemetry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// flushTimeout bounds how long a conversion waits on an unreachable collector at exit
const flushTimeout = 5 * time.Second

// Shutdown flushes the pending spans and conversion counters and
// releases both providers. Afterwards SubSpanFromCtxWithName and
// RecordConversion are no-ops again. Safe to call when nothing was initialised
func Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), flushTimeout)
	defer cancel()

	var errs []error
	if TracerProvider != nil {
		if err := TracerProvider.ForceFlush(ctx); err != nil {
			errs = append(errs, fmt.Errorf("flushing spans: %w", err))
		}
		if err := TracerProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("stopping tracer provider: %w", err))
		}
	}
	TracerProvider = nil
	Tracer = nil

	if MeterProvider != nil {
		if err := MeterProvider.ForceFlush(ctx); err != nil {
			errs = append(errs, fmt.Errorf("flushing conversion counters: %w", err))
		}
		if err := MeterProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("stopping meter provider: %w", err))
		}
	}
	MeterProvider = nil
	RecordCounter = nil
	TripleCounter = nil

	return errors.Join(errs...)
}
