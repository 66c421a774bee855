// Copyright 2025 Lincoln Institute of Land Policy
// SPDX-License-Identifier: Apache-2.0

package graph

// The kind of an rdf term
type TermKind int

const (
	IRIKind TermKind = iota
	LiteralKind
)

// A term in object position. IRIs are kept as raw text
// and are only validated once the graph is serialized
type Term struct {
	Kind  TermKind
	Value string
}

// IRI creates an IRI reference term from its raw text
func IRI(value string) Term {
	return Term{Kind: IRIKind, Value: value}
}

// Literal creates a plain string literal term
func Literal(value string) Term {
	return Term{Kind: LiteralKind, Value: value}
}

func (t Term) IsIRI() bool {
	return t.Kind == IRIKind
}

// A single subject, predicate, object statement. Subjects and
// predicates are always IRIs
type Triple struct {
	Subject   string
	Predicate string
	Object    Term
}

// Store is an in memory set of triples which remembers
// insertion order so serialization is deterministic.
// A Store is not safe for concurrent use
type Store struct {
	seen    map[Triple]struct{}
	triples []Triple
}

func NewStore() *Store {
	return &Store{seen: make(map[Triple]struct{})}
}

// Add inserts a triple and returns false if it was already present
func (s *Store) Add(subject, predicate string, object Term) bool {
	t := Triple{Subject: subject, Predicate: predicate, Object: object}
	if _, ok := s.seen[t]; ok {
		return false
	}
	s.seen[t] = struct{}{}
	s.triples = append(s.triples, t)
	return true
}

// Len returns the number of distinct triples
func (s *Store) Len() int {
	return len(s.triples)
}

// Contains reports whether the exact triple is present
func (s *Store) Contains(subject, predicate string, object Term) bool {
	_, ok := s.seen[Triple{Subject: subject, Predicate: predicate, Object: object}]
	return ok
}

// Triples returns a copy of all triples in insertion order
func (s *Store) Triples() []Triple {
	out := make([]Triple, len(s.triples))
	copy(out, s.triples)
	return out
}

// Match returns the triples with the given subject and predicate;
// an empty string matches anything
func (s *Store) Match(subject, predicate string) []Triple {
	var out []Triple
	for _, t := range s.triples {
		if subject != "" && t.Subject != subject {
			continue
		}
		if predicate != "" && t.Predicate != predicate {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Objects returns the objects of every triple using the predicate
func (s *Store) Objects(predicate string) []Term {
	var out []Term
	for _, t := range s.Match("", predicate) {
		out = append(out, t.Object)
	}
	return out
}

// Subjects returns the distinct subjects that have the given predicate and object
func (s *Store) Subjects(predicate string, object Term) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, t := range s.Match("", predicate) {
		if t.Object != object {
			continue
		}
		if _, ok := seen[t.Subject]; ok {
			continue
		}
		seen[t.Subject] = struct{}{}
		out = append(out, t.Subject)
	}
	return out
}
