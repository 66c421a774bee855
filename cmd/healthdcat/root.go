// Copyright 2025 Lincoln Institute of Land Policy
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/internetofwater/healthdcat/internal/config"
	"github.com/internetofwater/healthdcat/internal/converter"
	"github.com/internetofwater/healthdcat/internal/opentelemetry"
	"github.com/internetofwater/healthdcat/internal/sink"
	"github.com/internetofwater/healthdcat/internal/table"

	"github.com/alexflint/go-arg"
	log "github.com/sirupsen/logrus"
	otelTrace "go.opentelemetry.io/otel/trace"
)

const version = "0.1.0"

type HealthDCATArgs struct {
	// Flags that can be set for config particular services / operations
	config.ConverterConfig
	config.MinioConfig
	config.OtelConfig

	// Flags that can be set which affect all operations
	Verbose  bool   `arg:"-v,--verbose" help:"Enable verbose logging"`
	LogLevel string `arg:"--log-level" default:"INFO"`
}

func (HealthDCATArgs) Description() string {
	return "Convert CSV files to RDF Turtle format according to HealthDCAT specification"
}

func (HealthDCATArgs) Version() string {
	return "healthdcat " + version
}

// ToStructuredConfig converts the args to a structured config
// that can be used for more config isolation
func (h HealthDCATArgs) ToStructuredConfig() config.HealthDCATConfig {
	return config.HealthDCATConfig{
		Converter: h.ConverterConfig,
		Minio:     h.MinioConfig,
		Otel:      h.OtelConfig,
	}
}

type HealthDCATRunner struct {
	args HealthDCATArgs
}

// NewHealthDCATRunner parses cli args without the binary name.
// Help and version requests are returned as arg.ErrHelp and arg.ErrVersion
func NewHealthDCATRunner(cliArgs []string) (HealthDCATRunner, *arg.Parser, error) {
	args := HealthDCATArgs{}
	parser, err := arg.NewParser(arg.Config{Program: "healthdcat"}, &args)
	if err != nil {
		return HealthDCATRunner{}, nil, err
	}
	err = parser.Parse(cliArgs)
	return HealthDCATRunner{args: args}, parser, err
}

func (h HealthDCATRunner) Run(ctx context.Context) error {
	level, err := log.ParseLevel(h.args.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %s: %w", h.args.LogLevel, err)
	}
	if h.args.Verbose {
		level = log.DebugLevel
	}
	log.SetLevel(level)

	cfg := h.args.ToStructuredConfig()
	if err := cfg.Converter.Validate(); err != nil {
		return err
	}

	if cfg.Otel.UseOtel || cfg.Otel.OtelEndpoint != "" {
		if cfg.Otel.OtelEndpoint == "" {
			cfg.Otel.OtelEndpoint = opentelemetry.DefaultTracingEndpoint
		}
		log.Infof("Starting opentelemetry traces and exporting to: %s", cfg.Otel.OtelEndpoint)
		defer func() {
			if err := opentelemetry.Shutdown(ctx); err != nil {
				log.Errorf("flushing telemetry; is the collector running at %s? %v", cfg.Otel.OtelEndpoint, err)
			}
		}()
		if err := opentelemetry.InitTracer("healthdcat", cfg.Otel.OtelEndpoint); err != nil {
			return err
		}
		if err := opentelemetry.InitMetrics(cfg.Otel.OtelEndpoint); err != nil {
			return err
		}
		var span otelTrace.Span
		span, ctx = opentelemetry.SubSpanFromCtxWithName(ctx, "healthdcat")
		defer span.End()
	}

	return convert(ctx, cfg)
}

func convert(ctx context.Context, cfg config.HealthDCATConfig) error {
	input := cfg.Converter.Input
	if _, err := os.Stat(input); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("input file not found: %s: %w", input, converter.ErrNotFound)
	}

	var reader table.Reader = table.CSVReader{}
	if strings.EqualFold(cfg.Converter.Reader, "duckdb") {
		duckdbReader, err := table.NewDuckDBReader()
		if err != nil {
			return err
		}
		defer func() { _ = duckdbReader.Close() }()
		reader = duckdbReader
	}

	log.Infof("Reading CSV from: %s", input)
	conv := converter.NewWithReader(cfg.Converter.BaseURI, reader)
	store, err := conv.Convert(ctx, input)
	if err != nil {
		return err
	}

	format, err := cfg.Converter.OutputFormat()
	if err != nil {
		return err
	}
	destination, err := sink.Open(cfg.Converter.Output, cfg.Minio)
	if err != nil {
		return err
	}

	log.Infof("Writing %s output to: %s", format, destination)
	if err := sink.WriteGraph(ctx, store, format, destination); err != nil {
		return err
	}
	log.Info("Conversion completed successfully!")
	return nil
}
