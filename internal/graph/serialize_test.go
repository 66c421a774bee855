// Copyright 2025 Lincoln Institute of Land Policy
// SPDX-License-Identifier: Apache-2.0

package graph

import (
	"bytes"
	"strings"
	"testing"

	"github.com/internetofwater/healthdcat/internal/vocabulary"
	"github.com/knakk/rdf"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func sampleStore() *Store {
	store := NewStore()
	ds := "http://example.org/dataset/bp-001"
	store.Add(ds, vocabulary.RdfType, IRI(vocabulary.DcatDataset))
	store.Add(ds, vocabulary.DctTitle, Literal("Blood Pressure Dataset"))
	store.Add(ds, vocabulary.DcatKeyword, Literal("blood"))
	store.Add(ds, vocabulary.DcatKeyword, Literal(""))
	store.Add(ds, vocabulary.DcatTheme, IRI(vocabulary.DataThemeAuthority+"/HEAL"))
	return store
}

func TestSerializeNTriples(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleStore().Serialize(&buf, FormatNTriples))

	out := buf.String()
	require.Equal(t, 5, strings.Count(out, "\n"))
	require.Contains(t, out, "<http://example.org/dataset/bp-001> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/ns/dcat#Dataset>")

	decoded, err := rdf.NewTripleDecoder(strings.NewReader(out), rdf.NTriples).DecodeAll()
	require.NoError(t, err)
	require.Len(t, decoded, 5)
	require.Equal(t, "Blood Pressure Dataset", decoded[1].Obj.String())
}

func TestSerializeTurtleUsesPrefixes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleStore().Serialize(&buf, FormatTurtle))

	out := buf.String()
	require.Contains(t, out, "dcat:")
	require.Contains(t, out, "<"+vocabulary.DCAT+">")
	require.Contains(t, out, "<"+vocabulary.DCT+">")

	decoded, err := rdf.NewTripleDecoder(strings.NewReader(out), rdf.Turtle).DecodeAll()
	require.NoError(t, err)
	require.Len(t, decoded, 5)
}

func TestSerializeJsonld(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleStore().Serialize(&buf, FormatJSONLD))

	out := buf.String()
	require.True(t, gjson.Valid(out))
	require.Equal(t, vocabulary.DCAT, gjson.Get(out, `\@context.dcat`).String())
	require.Contains(t, out, "Blood Pressure Dataset")
}

func TestSerializeRejectsMalformedIRI(t *testing.T) {
	store := NewStore()
	store.Add("http://example.org/dataset/1", vocabulary.DctLicense, IRI("not a uri"))

	var buf bytes.Buffer
	err := store.Serialize(&buf, FormatNTriples)
	require.ErrorContains(t, err, "not a uri")
}

func TestSerializeEmptyStore(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewStore().Serialize(&buf, FormatNTriples))
	require.Empty(t, buf.String())
}

func TestFormats(t *testing.T) {
	f, err := ParseFormat("TTL")
	require.NoError(t, err)
	require.Equal(t, FormatTurtle, f)

	f, err = ParseFormat("n-triples")
	require.NoError(t, err)
	require.Equal(t, FormatNTriples, f)

	_, err = ParseFormat("rdfxml")
	require.ErrorContains(t, err, "jsonld, ntriples, turtle")

	require.Equal(t, FormatNTriples, FormatForPath("out/catalog.NT"))
	require.Equal(t, FormatJSONLD, FormatForPath("catalog.jsonld"))
	require.Equal(t, FormatTurtle, FormatForPath("catalog.ttl"))
	require.Equal(t, FormatTurtle, FormatForPath("catalog"))

	info, ok := FormatTurtle.Info()
	require.True(t, ok)
	require.Equal(t, "text/turtle", info.MIMEType)
}

func TestTurtleWithUnprefixableIRIsDecodes(t *testing.T) {
	store := NewStore()
	ds := "http://example.org/dataset/v1."
	store.Add(ds, vocabulary.RdfType, IRI(vocabulary.DcatDataset))
	store.Add(ds, vocabulary.DcatLandingPage, IRI("http://example.org/catalog?id=5&lang=en"))
	store.Add(ds, vocabulary.DctLicense, IRI("https://opendatacommons.org/licenses/odbl(1.0)"))
	// falls under a bound namespace but is not a valid local name
	store.Add(ds, vocabulary.DcatTheme, IRI(vocabulary.DCAT+"odd?x=1"))

	var buf bytes.Buffer
	require.NoError(t, store.Serialize(&buf, FormatTurtle))
	out := buf.String()
	require.NotContains(t, out, "ns0:")
	require.Contains(t, out, "<http://example.org/catalog?id=5&lang=en>")

	decoded, err := rdf.NewTripleDecoder(strings.NewReader(out), rdf.Turtle).DecodeAll()
	require.NoError(t, err)
	require.Len(t, decoded, 4)

	objects := map[string]bool{}
	for _, triple := range decoded {
		require.Equal(t, ds, triple.Subj.String())
		objects[triple.Obj.String()] = true
	}
	require.True(t, objects["http://example.org/catalog?id=5&lang=en"])
	require.True(t, objects["https://opendatacommons.org/licenses/odbl(1.0)"])
	require.True(t, objects[vocabulary.DCAT+"odd?x=1"])
}

func TestUsablePrefixesDropsUnsafeNamespaces(t *testing.T) {
	store := sampleStore()
	require.Equal(t, vocabulary.PrefixMap(), store.usablePrefixes())

	store.Add("http://example.org/dataset/bp-001", vocabulary.DctLicense, IRI(vocabulary.DCT+"by(4.0)"))
	prefixes := store.usablePrefixes()
	require.NotContains(t, prefixes, vocabulary.DCT)
	require.Equal(t, "dcat", prefixes[vocabulary.DCAT])
}
