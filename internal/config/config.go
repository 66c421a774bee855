// Copyright 2025 Lincoln Institute of Land Policy
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"strings"

	"github.com/internetofwater/healthdcat/internal/graph"
)

// The top level config for a conversion
type HealthDCATConfig struct {
	Converter ConverterConfig
	Minio     MinioConfig
	Otel      OtelConfig
}

// The config for reading tables and building the graph
type ConverterConfig struct {
	Input   string `arg:"-i,--input,required" help:"Path to input CSV file"`
	Output  string `arg:"-o,--output,required" help:"Path to output file; use s3://bucket/key to upload to object storage"`
	BaseURI string `arg:"-b,--base-uri,env:HEALTHDCAT_BASE_URI" help:"Base URI for RDF resources" default:"http://example.org/"`
	// empty means the format is inferred from the output extension
	Format string `arg:"--format" help:"output format: turtle, ntriples or jsonld (default: inferred from output)"`
	Reader string `arg:"--reader" help:"table reader to use: csv or duckdb" default:"csv"`
}

// OutputFormat resolves the configured or inferred serialization format
func (c ConverterConfig) OutputFormat() (graph.Format, error) {
	if c.Format == "" {
		return graph.FormatForPath(c.Output), nil
	}
	return graph.ParseFormat(c.Format)
}

// Validate checks the values go-arg cannot check on its own
func (c ConverterConfig) Validate() error {
	if _, err := c.OutputFormat(); err != nil {
		return err
	}
	switch strings.ToLower(c.Reader) {
	case "", "csv", "duckdb":
	default:
		return fmt.Errorf("unknown table reader %q; expected csv or duckdb", c.Reader)
	}
	return nil
}

// The config for minio/s3 operations; only used with s3:// outputs
type MinioConfig struct {
	Address   string `arg:"--address" help:"The address of the s3 server" default:"127.0.0.1"` // The address of the minio server
	Port      int    `arg:"--port" default:"9000"`
	Accesskey string `arg:"--s3-access-key,env:S3_ACCESS_KEY" help:"Access Key (i.e. username)" default:"minioadmin"` // Access Key (i.e. username)
	Secretkey string `arg:"--s3-secret-key,env:S3_SECRET_KEY" help:"Secret Key (i.e. password)" default:"minioadmin"` // Secret Key (i.e. password)
	Region    string `arg:"--region" help:"region for the s3 server"`                                                 // region for the minio server
	SSL       bool   `arg:"--ssl" help:"Use SSL when connecting to s3"`
}

// The config for exporting traces and metrics
type OtelConfig struct {
	UseOtel      bool   `arg:"--use-otel" help:"export traces and metrics with opentelemetry"`
	OtelEndpoint string `arg:"--otel-endpoint" help:"OpenTelemetry endpoint"`
}
