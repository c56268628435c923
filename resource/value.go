// Package resource defines the identity-bearing values that flow through
// the ontology model: IRIs, blank nodes and literals, each carrying a
// deterministic 64-bit fingerprint used as a hash key and equality witness.
package resource

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Value is implemented by every resource that can appear as the subject,
// predicate or object of a taxonomy entry: IRI, BNode and Literal.
type Value interface {
	// String returns the canonical N-Quads-style rendering of the value.
	String() string
	// Fingerprint returns the value's deterministic 64-bit identity,
	// derived from its canonical string form.
	Fingerprint() uint64
}

// Node is a Value that can stand as the subject of a triple: an IRI or a
// blank node. Literals are never subjects.
type Node interface {
	Value
	isNode()
}

// IRI is a named resource identified by an internationalized resource
// identifier.
type IRI string

func (v IRI) String() string        { return "<" + string(v) + ">" }
func (v IRI) Fingerprint() uint64   { return fingerprintString(v.String()) }
func (IRI) isNode()                 {}

// BNode is an RDF blank node, scoped to the document it was parsed from.
type BNode string

func (v BNode) String() string      { return "_:" + string(v) }
func (v BNode) Fingerprint() uint64 { return fingerprintString(v.String()) }
func (BNode) isNode()               {}

// Literal is an RDF literal: a lexical form plus an optional datatype IRI
// and an optional language tag. At most one of Datatype/Lang is set; a
// plain literal has neither.
type Literal struct {
	Lexical  string
	Datatype IRI
	Lang     string
}

// String renders the literal in N-Quads notation: "lexical", "lexical"@lang
// or "lexical"^^<datatype>.
func (v Literal) String() string {
	s := strconv.Quote(v.Lexical)
	if v.Lang != "" {
		return s + "@" + v.Lang
	}
	if v.Datatype != "" {
		return s + "^^" + v.Datatype.String()
	}
	return s
}

func (v Literal) Fingerprint() uint64 { return fingerprintString(v.String()) }

func fingerprintString(s string) uint64 {
	return xxhash.Sum64String(s)
}

// StringOf safely renders a possibly-nil Value.
func StringOf(v Value) string {
	if v == nil {
		return ""
	}
	return v.String()
}

// Equal reports whether two values denote the same resource. Nil values are
// never equal to anything, including each other.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Fingerprint() == b.Fingerprint() && a.String() == b.String()
}
