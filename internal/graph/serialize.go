// Copyright 2025 Lincoln Institute of Land Policy
// SPDX-License-Identifier: Apache-2.0

package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/internetofwater/healthdcat/internal/vocabulary"
	"github.com/knakk/rdf"
	"github.com/piprate/json-gold/ld"
	log "github.com/sirupsen/logrus"
)

// a conservative subset of the turtle PN_LOCAL production
var safeLocalName = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_-]*)?$`)

// convert a stored triple into the rdf library representation.
// This is where raw IRI text is finally validated
func toRDF(t Triple) (rdf.Triple, error) {
	subj, err := rdf.NewIRI(t.Subject)
	if err != nil {
		return rdf.Triple{}, fmt.Errorf("invalid subject IRI %q: %w", t.Subject, err)
	}
	pred, err := rdf.NewIRI(t.Predicate)
	if err != nil {
		return rdf.Triple{}, fmt.Errorf("invalid predicate IRI %q: %w", t.Predicate, err)
	}

	var obj rdf.Object
	switch t.Object.Kind {
	case IRIKind:
		iri, err := rdf.NewIRI(t.Object.Value)
		if err != nil {
			return rdf.Triple{}, fmt.Errorf("invalid object IRI %q for <%s>: %w", t.Object.Value, t.Predicate, err)
		}
		obj = iri
	default:
		lit, err := rdf.NewLiteral(t.Object.Value)
		if err != nil {
			return rdf.Triple{}, err
		}
		obj = lit
	}
	return rdf.Triple{Subj: subj, Pred: pred, Obj: obj}, nil
}

// RDFTriples converts every triple in the store to the rdf library representation
func (s *Store) RDFTriples() ([]rdf.Triple, error) {
	out := make([]rdf.Triple, 0, len(s.triples))
	for _, t := range s.triples {
		converted, err := toRDF(t)
		if err != nil {
			return nil, err
		}
		out = append(out, converted)
	}
	return out, nil
}

// Serialize writes the store to w in the given format
func (s *Store) Serialize(w io.Writer, format Format) error {
	log.Debugf("serializing %d triples as %s", s.Len(), format)
	switch format {
	case FormatTurtle:
		return s.encode(w, rdf.Turtle)
	case FormatNTriples:
		return s.encode(w, rdf.NTriples)
	case FormatJSONLD:
		return s.encodeJsonld(w)
	default:
		return fmt.Errorf("unsupported rdf format %q", format)
	}
}

func (s *Store) encode(w io.Writer, format rdf.Format) error {
	triples, err := s.RDFTriples()
	if err != nil {
		return err
	}
	encoder := rdf.NewTripleEncoder(w, format)
	// IRIs outside the bound namespaces are written in full
	encoder.GenerateNamespaces = false
	encoder.Namespaces = s.usablePrefixes()
	if err := encoder.EncodeAll(triples); err != nil {
		return fmt.Errorf("error encoding triples: %w", err)
	}
	return encoder.Close()
}

// the encoder shortens an IRI by splitting at its last '/' or '#' and
// writes the remainder without escaping. A bound namespace is only used
// if every IRI that would be shortened with it leaves a safe local name
func (s *Store) usablePrefixes() map[string]string {
	prefixes := vocabulary.PrefixMap()
	check := func(iri string) {
		i := strings.LastIndexAny(iri, "/#")
		if i < 0 {
			return
		}
		namespace := iri[:i+1]
		if _, ok := prefixes[namespace]; ok && !safeLocalName.MatchString(iri[i+1:]) {
			log.Debugf("writing %s in full; %q is not a prefixable local name", namespace, iri[i+1:])
			delete(prefixes, namespace)
		}
	}
	for _, t := range s.triples {
		check(t.Subject)
		check(t.Predicate)
		if t.Object.IsIRI() {
			check(t.Object.Value)
		}
	}
	return prefixes
}

// jsonld is produced by round tripping the ntriples serialization
// through the jsonld processor and compacting with the bound prefixes
func (s *Store) encodeJsonld(w io.Writer) error {
	var nt bytes.Buffer
	if err := s.encode(&nt, rdf.NTriples); err != nil {
		return err
	}

	processor := ld.NewJsonLdProcessor()
	options := ld.NewJsonLdOptions("")
	options.Format = "application/nquads"

	expanded, err := processor.FromRDF(nt.String(), options)
	if err != nil {
		return fmt.Errorf("error converting triples to jsonld: %w", err)
	}

	context := make(map[string]any, len(vocabulary.Namespaces))
	for _, ns := range vocabulary.Namespaces {
		context[ns.Prefix] = ns.IRI
	}
	compacted, err := processor.Compact(expanded, map[string]any{"@context": context}, options)
	if err != nil {
		return fmt.Errorf("error compacting jsonld: %w", err)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(compacted)
}
