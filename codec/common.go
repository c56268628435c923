// Package codec implements the boundary between the wire triple format and
// the Ontology aggregate: Decode (graph to ontology, the 15-pass pipeline)
// and Encode (ontology to graph, with an inferred-triple filter).
package codec

import (
	"github.com/cayleygraph/ontoreason/resource"
	"github.com/cayleygraph/ontoreason/triple"
	"github.com/cayleygraph/ontoreason/voc"
)

// tripleKey identifies a triple for the consumed-tracking set, ignoring
// flavor and context: once a (subject, predicate, object) has been folded
// into a structural pass, it is never also captured as a custom relation.
type tripleKey struct {
	s, p, o uint64
}

func keyOf(t triple.Triple) tripleKey {
	return tripleKey{s: fpOrZero(t.Subject), p: fpOrZero(t.Predicate), o: fpOrZero(t.Object)}
}

func fpOrZero(v resource.Value) uint64 {
	if v == nil {
		return 0
	}
	return v.Fingerprint()
}

// consumed tracks which triples earlier passes have already folded into
// the class/property/data model, so the final custom-relations pass only
// sees what's left over.
type consumed map[tripleKey]bool

func newConsumed() consumed { return make(consumed) }

func (c consumed) mark(t triple.Triple)      { c[keyOf(t)] = true }
func (c consumed) has(t triple.Triple) bool  { return c[keyOf(t)] }

func asIRI(v resource.Value) (resource.IRI, bool) {
	iri, ok := v.(resource.IRI)
	return iri, ok
}

// shortString renders v for a warning message, abbreviating a known
// vocabulary IRI to its registered prefix form (e.g. "rdf:type" instead of
// "<http://www.w3.org/1999/02/22-rdf-syntax-ns#type>") so decode warnings
// stay readable.
func shortString(v resource.Value) string {
	if iri, ok := v.(resource.IRI); ok {
		return voc.ShortIRI(string(iri))
	}
	return resource.StringOf(v)
}

func filterByPredicate(ts []triple.Triple, pred string) []triple.Triple {
	var out []triple.Triple
	pfp := resource.IRI(pred).Fingerprint()
	for _, t := range ts {
		if fpOrZero(t.Predicate) == pfp {
			out = append(out, t)
		}
	}
	return out
}
