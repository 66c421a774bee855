// Copyright 2025 Lincoln Institute of Land Policy
// SPDX-License-Identifier: Apache-2.0

package table

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/duckdb/duckdb-go/v2"
	log "github.com/sirupsen/logrus"
)

// DuckDBReader reads tables through duckdb's csv sniffer. Every column
// is read as text and empty cells come back as NULL, which become
// absent values
type DuckDBReader struct {
	duckdb *sql.DB
}

var _ Reader = (*DuckDBReader)(nil)

// NewDuckDBReader opens an in memory duckdb database
func NewDuckDBReader() (*DuckDBReader, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, err
	}
	return &DuckDBReader{duckdb: db}, nil
}

func (d *DuckDBReader) Close() error {
	return d.duckdb.Close()
}

func (d *DuckDBReader) Read(ctx context.Context, path string) (*Table, error) {
	const query = `SELECT * FROM read_csv(CAST(? AS VARCHAR), header = true, all_varchar = true)`
	rows, err := d.duckdb.QueryContext(ctx, query, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	defer func() { _ = rows.Close() }()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	table := NewTable(columns)

	for rows.Next() {
		cells := make([]sql.NullString, len(columns))
		dest := make([]any, len(columns))
		for i := range cells {
			dest[i] = &cells[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		values := make([]Value, len(columns))
		for i, cell := range cells {
			if cell.Valid && !IsMissing(cell.String) {
				values[i] = Text(cell.String)
			}
		}
		table.Append(values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	log.Debugf("duckdb read %d rows with columns %v", table.Len(), table.Columns)
	return table, nil
}
