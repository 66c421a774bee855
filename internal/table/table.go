// Copyright 2025 Lincoln Institute of Land Policy
// SPDX-License-Identifier: Apache-2.0

// Package table reads tabular metadata files into ordered records
// of optional text values
package table

import (
	"context"
	"errors"
)

// ErrMalformed is returned when a source cannot be parsed as a table
var ErrMalformed = errors.New("malformed tabular data")

// Value is a cell that is either present with some text
// (which may be empty) or absent
type Value struct {
	Text    string
	Present bool
}

// Text creates a present value
func Text(text string) Value {
	return Value{Text: text, Present: true}
}

// Absent is the value of a missing cell or column
var Absent = Value{}

// A single row of the table. Fields holds one value per column
// in header order
type Record struct {
	columns map[string]int
	values  []Value
}

// Get returns the value of the named column; unknown
// columns and short rows are absent
func (r Record) Get(column string) Value {
	i, ok := r.columns[column]
	if !ok || i >= len(r.values) {
		return Absent
	}
	return r.values[i]
}

// Has reports whether the record has a present value for the column
func (r Record) Has(column string) bool {
	return r.Get(column).Present
}

// A fully materialized table. Records are in source order
type Table struct {
	Columns []string
	Records []Record
	index   map[string]int
}

// NewTable builds a table from a header; if a column name repeats
// the first occurrence wins
func NewTable(columns []string) *Table {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, ok := index[c]; !ok {
			index[c] = i
		}
	}
	return &Table{Columns: columns, index: index}
}

// Append adds a row of values in header order
func (t *Table) Append(values []Value) {
	t.Records = append(t.Records, Record{columns: t.index, values: values})
}

// HasColumn reports whether the header contains the column
func (t *Table) HasColumn(column string) bool {
	_, ok := t.index[column]
	return ok
}

// Len returns the number of records
func (t *Table) Len() int {
	return len(t.Records)
}

// A source of tables
type Reader interface {
	// Read loads the entire table at path
	Read(ctx context.Context, path string) (*Table, error)
}
