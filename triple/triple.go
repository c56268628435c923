// Package triple defines the wire representation the decoder and encoder
// exchange with callers: RDF triples tagged with a flavor (resource object
// vs literal object) and grouped under a graph context, plus minimal
// reader/writer interfaces in the style of a quad store's ingestion API.
package triple

import (
	"io"

	"github.com/cayleygraph/ontoreason/resource"
)

// Flavor discriminates whether a Triple's object is a resource or a literal.
type Flavor int

const (
	// SPO: subject-predicate-object, object is a resource (IRI or blank node).
	SPO Flavor = iota
	// SPL: subject-predicate-literal, object is a literal.
	SPL
)

// Triple is a single (subject, predicate, object) statement, flavored and
// carrying the context it was read from.
type Triple struct {
	Subject   resource.Value
	Predicate resource.Value
	Object    resource.Value
	Flavor    Flavor
	Context   resource.Value
}

// Graph is an in-memory collection of triples sharing one context IRI. It is
// the unit fromGraph/toGraph exchange with callers.
type Graph struct {
	Context resource.Value
	Triples []Triple
}

// NewGraph returns an empty graph for the given context.
func NewGraph(context resource.Value) *Graph {
	return &Graph{Context: context}
}

// Add appends t to the graph.
func (g *Graph) Add(t Triple) { g.Triples = append(g.Triples, t) }

// Reader is a minimal interface for triple sources; ReadTriple returns
// io.EOF once exhausted.
type Reader interface {
	ReadTriple() (Triple, error)
}

// Writer is a minimal interface for triple sinks.
type Writer interface {
	WriteTriple(Triple) error
}

// Triples is a slice-backed Reader/Writer, used to stream a Graph's
// contents or to accumulate one.
type Triples struct {
	s []Triple
}

// NewReader creates a Reader over a fixed slice of triples.
func NewReader(ts []Triple) *Triples {
	return &Triples{s: ts}
}

func (r *Triples) ReadTriple() (Triple, error) {
	if r == nil || len(r.s) == 0 {
		return Triple{}, io.EOF
	}
	t := r.s[0]
	r.s = r.s[1:]
	if len(r.s) == 0 {
		r.s = nil
	}
	return t, nil
}

func (r *Triples) WriteTriple(t Triple) error {
	r.s = append(r.s, t)
	return nil
}

// Copy drains src into dst, returning the number of triples copied.
func Copy(dst Writer, src Reader) (n int, err error) {
	for {
		var t Triple
		t, err = src.ReadTriple()
		if err == io.EOF {
			return n, nil
		} else if err != nil {
			return n, err
		}
		if err = dst.WriteTriple(t); err != nil {
			return n, err
		}
		n++
	}
}

// FromSlice builds a Graph directly from a slice of triples under context.
func FromSlice(context resource.Value, ts []Triple) *Graph {
	return &Graph{Context: context, Triples: append([]Triple(nil), ts...)}
}
