// Copyright 2025 Lincoln Institute of Land Policy
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"

	"github.com/internetofwater/healthdcat/internal/graph"
	"github.com/stretchr/testify/require"
)

func TestOutputFormat(t *testing.T) {
	format, err := ConverterConfig{Output: "catalog.nt"}.OutputFormat()
	require.NoError(t, err)
	require.Equal(t, graph.FormatNTriples, format)

	format, err = ConverterConfig{Output: "catalog.nt", Format: "jsonld"}.OutputFormat()
	require.NoError(t, err)
	require.Equal(t, graph.FormatJSONLD, format)

	_, err = ConverterConfig{Output: "catalog.ttl", Format: "xml"}.OutputFormat()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	require.NoError(t, ConverterConfig{Output: "out.ttl", Reader: "csv"}.Validate())
	require.NoError(t, ConverterConfig{Output: "out.ttl", Reader: "DuckDB"}.Validate())
	require.ErrorContains(t, ConverterConfig{Output: "out.ttl", Reader: "excel"}.Validate(), "excel")
	require.Error(t, ConverterConfig{Output: "out.ttl", Format: "rdfxml"}.Validate())
}
