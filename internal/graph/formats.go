// Copyright 2025 Lincoln Institute of Land Policy
// SPDX-License-Identifier: Apache-2.0

package graph

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// An rdf serialization format
type Format string

const (
	FormatTurtle   Format = "turtle"
	FormatNTriples Format = "ntriples"
	FormatJSONLD   Format = "jsonld"
)

// Metadata about a serialization format
type FormatInfo struct {
	Name      Format
	MIMEType  string
	Extension string
}

var formatRegistry = map[Format]FormatInfo{
	FormatTurtle:   {Name: FormatTurtle, MIMEType: "text/turtle", Extension: ".ttl"},
	FormatNTriples: {Name: FormatNTriples, MIMEType: "application/n-triples", Extension: ".nt"},
	FormatJSONLD:   {Name: FormatJSONLD, MIMEType: "application/ld+json", Extension: ".jsonld"},
}

// Info returns the metadata for a format
func (f Format) Info() (FormatInfo, bool) {
	info, ok := formatRegistry[f]
	return info, ok
}

// ParseFormat resolves a format name, accepting the
// common aliases ttl, nt and json-ld
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "turtle", "ttl":
		return FormatTurtle, nil
	case "ntriples", "n-triples", "nt":
		return FormatNTriples, nil
	case "jsonld", "json-ld":
		return FormatJSONLD, nil
	}
	return "", fmt.Errorf("unknown rdf format %q; supported formats are %s", name, strings.Join(supportedFormats(), ", "))
}

// FormatForPath picks a format from a file extension,
// falling back to turtle
func FormatForPath(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	for _, info := range formatRegistry {
		if info.Extension == ext {
			return info.Name
		}
	}
	if ext == ".json" {
		return FormatJSONLD
	}
	return FormatTurtle
}

func supportedFormats() []string {
	names := make([]string, 0, len(formatRegistry))
	for name := range formatRegistry {
		names = append(names, string(name))
	}
	sort.Strings(names)
	return names
}
