// Copyright 2025 Lincoln Institute of Land Policy
// SPDX-License-Identifier: Apache-2.0

package mapper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	require.Equal(t, "health-authority", Slugify("Health Authority"))
	require.Equal(t, "health-authority", Slugify("health-authority"))
	require.Equal(t, "public--health", Slugify("Public  Health"))
}

func TestDatasetURI(t *testing.T) {
	require.Equal(t, "http://example.org/dataset/dataset-1", DatasetURI("http://example.org/", SyntheticID(0)))
	require.Equal(t, "http://example.org/dataset/bp-001", DatasetURI("http://example.org/", "bp-001"))
	// a base without a trailing slash loses its last segment
	require.Equal(t, "http://example.org/dataset/bp-001", DatasetURI("http://example.org/catalog", "bp-001"))
	require.Equal(t, "http://example.org/catalog/dataset/bp-001", DatasetURI("http://example.org/catalog/", "bp-001"))
}

func TestPublisherURI(t *testing.T) {
	require.Equal(t, "http://example.org/organization/public-health-agency", PublisherURI("http://example.org/", "Public Health Agency"))
}

func TestDatasetID(t *testing.T) {
	require.Equal(t, "dataset-3", DatasetID(record{}, 2))
	require.Equal(t, "covid-001", DatasetID(record{"id": "covid-001"}, 2))
}

func TestJoinURIFallsBackToConcatenation(t *testing.T) {
	require.Equal(t, "http://example.org/dataset/50%", JoinURI("http://example.org/", "dataset/50%"))
}

func TestJoinURIKeepsNonASCII(t *testing.T) {
	require.Equal(t, "http://example.org/organization/santé-publique-france", PublisherURI("http://example.org/", "Santé Publique France"))
	require.Equal(t, "http://example.org/dataset/données-001", DatasetURI("http://example.org/", "données-001"))
	// spaces are not escaped either
	require.Equal(t, "http://example.org/dataset/bp 001", DatasetURI("http://example.org/", "bp 001"))
}

func TestJoinURIBaseForms(t *testing.T) {
	require.Equal(t, "http://example.org/dataset/x", JoinURI("http://example.org", "dataset/x"))
	require.Equal(t, "http://example.org/dataset/x", JoinURI("http://example.org/catalog?page=2#top", "dataset/x"))
	require.Equal(t, "http://example.org/a/b/dataset/x", JoinURI("http://example.org/a/b/", "dataset/x"))
	require.Equal(t, "http://example.org/dataset/x?v=1#frag", JoinURI("http://example.org/", "dataset/x?v=1#frag"))
	// dot segments are resolved
	require.Equal(t, "http://example.org/x", JoinURI("http://example.org/", "dataset/../x"))
	// a relative base has nothing to resolve against
	require.Equal(t, "catalog/dataset/x", JoinURI("catalog/", "dataset/x"))
}
