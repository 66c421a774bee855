// Copyright 2025 Lincoln Institute of Land Policy
// SPDX-License-Identifier: Apache-2.0

package converter

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when the input path does not exist
	ErrNotFound = errors.New("input not found")
	// ErrInvalidInput is returned when the input is not a usable table
	ErrInvalidInput = errors.New("invalid input")
)

// MissingColumnsError names the required columns absent from a table
type MissingColumnsError struct {
	Missing []string
}

func (e MissingColumnsError) Error() string {
	return fmt.Sprintf("CSV is missing required columns: {%s}", strings.Join(e.Missing, ", "))
}

func (e MissingColumnsError) Unwrap() error {
	return ErrInvalidInput
}
