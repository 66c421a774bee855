// Copyright 2025 Lincoln Institute of Land Policy
// SPDX-License-Identifier: Apache-2.0

// Package converter turns tabular dataset metadata into a HealthDCAT graph
package converter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/internetofwater/healthdcat/internal/graph"
	"github.com/internetofwater/healthdcat/internal/mapper"
	"github.com/internetofwater/healthdcat/internal/opentelemetry"
	"github.com/internetofwater/healthdcat/internal/table"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// DefaultBaseURI is used when no base uri is configured
const DefaultBaseURI = "http://example.org/"

// columns every input table must have
var RequiredColumns = []string{mapper.ColumnTitle, mapper.ColumnDescription}

// Converter maps tables into a graph that it owns. The graph is never
// reset, so converting several inputs with the same converter
// accumulates all of their triples
type Converter struct {
	baseURI string
	reader  table.Reader
	store   *graph.Store
}

// New creates a converter that reads csv files
func New(baseURI string) *Converter {
	return NewWithReader(baseURI, table.CSVReader{})
}

// NewWithReader creates a converter that uses a specific table reader
func NewWithReader(baseURI string, reader table.Reader) *Converter {
	if baseURI == "" {
		baseURI = DefaultBaseURI
	}
	return &Converter{
		baseURI: baseURI,
		reader:  reader,
		store:   graph.NewStore(),
	}
}

func (c *Converter) BaseURI() string {
	return c.baseURI
}

// Graph returns the store that conversions write into
func (c *Converter) Graph() *graph.Store {
	return c.store
}

// Convert reads the table at path and adds its records to the graph
func (c *Converter) Convert(ctx context.Context, path string) (*graph.Store, error) {
	span, ctx := opentelemetry.SubSpanFromCtxWithName(ctx, "convert")
	defer span.End()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: CSV file not found: %s", ErrNotFound, path)
	} else if err != nil {
		return nil, err
	}

	tbl, err := c.reader.Read(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read CSV file: %w", ErrInvalidInput, err)
	}

	if tbl.Len() == 0 {
		log.Warn("CSV file is empty")
		return c.store, nil
	}

	if missing := missingColumns(tbl); len(missing) > 0 {
		return nil, MissingColumnsError{Missing: missing}
	}

	log.Infof("Processing %d dataset(s) from CSV", tbl.Len())
	before := c.store.Len()
	for i, record := range tbl.Records {
		mapper.MapRecord(c.store, record, i, c.baseURI)
		log.Debugf("Added dataset to graph: %s", mapper.DatasetURI(c.baseURI, mapper.DatasetID(record, i)))
	}
	added := c.store.Len() - before

	span.SetAttributes(
		attribute.Int("records", tbl.Len()),
		attribute.Int("triples_added", added),
	)
	opentelemetry.RecordConversion(ctx, path, tbl.Len(), added)
	return c.store, nil
}

func missingColumns(tbl *table.Table) []string {
	var missing []string
	for _, column := range RequiredColumns {
		if !tbl.HasColumn(column) {
			missing = append(missing, column)
		}
	}
	sort.Strings(missing)
	return missing
}
