// Copyright 2025 Lincoln Institute of Land Policy
// SPDX-License-Identifier: Apache-2.0

// Package vocabulary holds the IRIs of the HealthDCAT profile that
// the converter emits. HealthDCAT builds on DCAT and DCAT-AP, so most
// terms come from W3C or Dublin Core namespaces.
package vocabulary

// Namespace IRIs
const (
	DCAT   = "http://www.w3.org/ns/dcat#"
	DCT    = "http://purl.org/dc/terms/"
	DCATAP = "http://data.europa.eu/r5r/"
	VCARD  = "http://www.w3.org/2006/vcard/ns#"
	FOAF   = "http://xmlns.com/foaf/0.1/"
	ADMS   = "http://www.w3.org/ns/adms#"
	RDF    = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
)

// Namespace is a prefix bound to a namespace IRI
type Namespace struct {
	Prefix string
	IRI    string
}

// Namespaces lists the prefixes bound on every serialized graph,
// in the order they are declared
var Namespaces = []Namespace{
	{Prefix: "dcat", IRI: DCAT},
	{Prefix: "dct", IRI: DCT},
	{Prefix: "dcatap", IRI: DCATAP},
	{Prefix: "vcard", IRI: VCARD},
	{Prefix: "foaf", IRI: FOAF},
	{Prefix: "adms", IRI: ADMS},
	{Prefix: "rdf", IRI: RDF},
}

// Classes
const (
	DcatDataset      = DCAT + "Dataset"
	FoafOrganization = FOAF + "Organization"
)

// Predicates
const (
	RdfType = RDF + "type"

	// Dublin Core terms used on datasets
	DctTitle       = DCT + "title"
	DctDescription = DCT + "description"
	DctPublisher   = DCT + "publisher"
	DctIssued      = DCT + "issued"
	DctModified    = DCT + "modified"
	DctLicense     = DCT + "license"

	DcatTheme       = DCAT + "theme"
	DcatKeyword     = DCAT + "keyword"
	DcatLandingPage = DCAT + "landingPage"

	// FoafName is the human readable name of a publisher organization
	FoafName = FOAF + "name"
)

// DataThemeAuthority is the base of the EU data theme controlled vocabulary
// https://publications.europa.eu/resource/authority/data-theme/
const DataThemeAuthority = "http://publications.europa.eu/resource/authority/data-theme"

// PrefixMap returns a fresh map of namespace IRI to prefix
func PrefixMap() map[string]string {
	m := make(map[string]string, len(Namespaces))
	for _, ns := range Namespaces {
		m[ns.IRI] = ns.Prefix
	}
	return m
}
