// Copyright 2025 Lincoln Institute of Land Policy
// SPDX-License-Identifier: Apache-2.0

package table

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// cell contents that are treated as missing values; these match the
// markers common dataframe libraries use when reading csv
var missingMarkers = map[string]struct{}{
	"": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {},
	"NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {}, "nan": {}, "null": {},
}

// IsMissing reports whether raw cell text is a missing value marker
func IsMissing(cell string) bool {
	_, ok := missingMarkers[cell]
	return ok
}

// CSVReader reads comma separated files with a header row
type CSVReader struct {
	// Comma is the field delimiter; defaults to ','
	Comma rune
}

var _ Reader = CSVReader{}

func (c CSVReader) Read(ctx context.Context, path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return c.Decode(ctx, f)
}

// Decode reads a table from an arbitrary reader
func (c CSVReader) Decode(ctx context.Context, r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	if c.Comma != 0 {
		reader.Comma = c.Comma
	}
	// short rows are padded with absent values below
	reader.FieldsPerRecord = -1
	// quotes inside unquoted fields are literal, e.g. 15" display
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: no columns to parse from file", ErrMalformed)
	} else if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	table := NewTable(header)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if len(row) > len(header) {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("%w: expected %d fields in line %d, saw %d", ErrMalformed, len(header), line, len(row))
		}
		values := make([]Value, len(header))
		for i, cell := range row {
			if IsMissing(cell) {
				values[i] = Absent
			} else {
				values[i] = Text(cell)
			}
		}
		table.Append(values)
	}
	log.Debugf("read %d rows with columns %v", table.Len(), table.Columns)
	return table, nil
}
