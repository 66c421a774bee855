// Copyright 2025 Lincoln Institute of Land Policy
// SPDX-License-Identifier: Apache-2.0

// Package mapper turns a single metadata record into HealthDCAT triples
package mapper

import (
	"strings"

	"github.com/internetofwater/healthdcat/internal/graph"
	"github.com/internetofwater/healthdcat/internal/table"
	"github.com/internetofwater/healthdcat/internal/theme"
	v "github.com/internetofwater/healthdcat/internal/vocabulary"
)

// UnknownTitle is used when a record has no usable title
const UnknownTitle = "Unknown"

// Column names recognized in a record
const (
	ColumnID          = "id"
	ColumnTitle       = "title"
	ColumnDescription = "description"
	ColumnPublisher   = "publisher"
	ColumnIssued      = "issued"
	ColumnModified    = "modified"
	ColumnLicense     = "license"
	ColumnTheme       = "theme"
	ColumnKeyword     = "keyword"
	ColumnLandingPage = "landing_page"
)

// Record is anything that can look up a named field
type Record interface {
	Get(column string) table.Value
}

// DatasetID returns the record id or the synthetic id for its row
func DatasetID(record Record, rowIndex int) string {
	if id := record.Get(ColumnID); id.Present {
		return id.Text
	}
	return SyntheticID(rowIndex)
}

// MapRecord adds the triples describing one record to the store.
// rowIndex is the zero based position of the record in its source.
// No value is validated; IRIs are taken verbatim from the record
func MapRecord(store *graph.Store, record Record, rowIndex int, baseURI string) {
	dataset := DatasetURI(baseURI, DatasetID(record, rowIndex))

	store.Add(dataset, v.RdfType, graph.IRI(v.DcatDataset))

	title := record.Get(ColumnTitle)
	if !title.Present || strings.TrimSpace(title.Text) == "" {
		title = table.Text(UnknownTitle)
	}
	store.Add(dataset, v.DctTitle, graph.Literal(title.Text))

	if description := record.Get(ColumnDescription); description.Present && description.Text != "" {
		store.Add(dataset, v.DctDescription, graph.Literal(description.Text))
	}

	if publisher := record.Get(ColumnPublisher); publisher.Present {
		organization := PublisherURI(baseURI, publisher.Text)
		store.Add(dataset, v.DctPublisher, graph.IRI(organization))
		store.Add(organization, v.RdfType, graph.IRI(v.FoafOrganization))
		store.Add(organization, v.FoafName, graph.Literal(publisher.Text))
	}

	if issued := record.Get(ColumnIssued); issued.Present {
		store.Add(dataset, v.DctIssued, graph.Literal(issued.Text))
	}
	if modified := record.Get(ColumnModified); modified.Present {
		store.Add(dataset, v.DctModified, graph.Literal(modified.Text))
	}

	if license := record.Get(ColumnLicense); license.Present {
		store.Add(dataset, v.DctLicense, graph.IRI(license.Text))
	}

	if label := record.Get(ColumnTheme); label.Present {
		store.Add(dataset, v.DcatTheme, graph.IRI(theme.Classify(strings.ToUpper(label.Text))))
	}

	if keywords := record.Get(ColumnKeyword); keywords.Present {
		// empty pieces such as the one after a trailing ';' are kept
		for _, keyword := range strings.Split(keywords.Text, ";") {
			store.Add(dataset, v.DcatKeyword, graph.Literal(strings.TrimSpace(keyword)))
		}
	}

	if landingPage := record.Get(ColumnLandingPage); landingPage.Present {
		store.Add(dataset, v.DcatLandingPage, graph.IRI(landingPage.Text))
	}
}
