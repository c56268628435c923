// Package data implements the A-Box container: facts
// plus the ClassType, SameAs, DifferentFrom and Assertions taxonomies.
package data

import (
	"github.com/cayleygraph/ontoreason/resource"
	"github.com/cayleygraph/ontoreason/taxonomy"
)

// Fact identifies an A-Box individual.
type Fact struct {
	Resource resource.Value
}

// Data is the A-Box container.
type Data struct {
	facts map[uint64]*Fact

	// ClassType holds (fact, owl:ClassType-marker, class) entries: the
	// predicate slot of each entry is unused (always the same sentinel),
	// object is the asserted class.
	ClassType *taxonomy.Taxonomy
	// SameAs and DifferentFrom hold (fact, sentinel, fact) entries.
	SameAs        *taxonomy.Taxonomy
	DifferentFrom *taxonomy.Taxonomy
	// Assertions holds (subject fact, property, object) entries where
	// object may be a fact or a literal.
	Assertions *taxonomy.Taxonomy
}

// New returns an empty Data container.
func New() *Data {
	return &Data{
		facts:         make(map[uint64]*Fact),
		ClassType:     taxonomy.New(),
		SameAs:        taxonomy.New(),
		DifferentFrom: taxonomy.New(),
		Assertions:    taxonomy.New(),
	}
}

// GetOrCreate returns the fact for v, auto-creating it if needed.
func (d *Data) GetOrCreate(v resource.Value) *Fact {
	fp := v.Fingerprint()
	if f, ok := d.facts[fp]; ok {
		return f
	}
	f := &Fact{Resource: v}
	d.facts[fp] = f
	return f
}

// Get returns the fact for v, if registered.
func (d *Data) Get(v resource.Value) (*Fact, bool) {
	f, ok := d.facts[v.Fingerprint()]
	return f, ok
}

// Has reports whether v is a registered fact.
func (d *Data) Has(v resource.Value) bool {
	_, ok := d.facts[v.Fingerprint()]
	return ok
}

// Facts returns every registered fact.
func (d *Data) Facts() []*Fact {
	out := make([]*Fact, 0, len(d.facts))
	for _, f := range d.facts {
		out = append(out, f)
	}
	return out
}
