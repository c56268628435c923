// Package classmodel implements the T-Box class container: the typed class
// records plus their taxonomies (SubClassOf, EquivalentClass, DisjointWith,
// UnionOf, IntersectionOf, OneOf), generalized from RDFS-only subsumption to
// the full OWL vocabulary.
package classmodel

import (
	"github.com/cayleygraph/ontoreason/resource"
	"github.com/cayleygraph/ontoreason/taxonomy"
)

// Kind discriminates the tagged variants a Class can take: a plain class,
// a restriction, an enumeration, a datarange, or one of the composite forms.
type Kind int

const (
	PlainOWL Kind = iota
	PlainRDFS
	Restriction
	Enumerate
	DataRange
	Union
	Intersection
	Complement
)

// RestrictionVariant discriminates the four restriction shapes: cardinality,
// allValuesFrom, someValuesFrom and hasValue. A restriction class starts
// with VariantNone until the decoder probes and refines it.
type RestrictionVariant int

const (
	VariantNone RestrictionVariant = iota
	VariantCardinality
	VariantAllValuesFrom
	VariantSomeValuesFrom
	VariantHasValue
)

// Class is a T-Box class record. Kind starts as PlainOWL (or the built-in's
// kind) and is reassigned in place by the decoder when it reclassifies a
// class as a restriction, composite, enumeration or datarange; a
// restriction's Variant may be refined exactly once.
type Class struct {
	Resource   resource.Value
	Kind       Kind
	Deprecated bool

	// Restriction fields, valid when Kind == Restriction.
	OnProperty resource.Value
	Variant    RestrictionVariant
	Min        int
	Max        int
	MinActive  bool
	MaxActive  bool

	AllValuesFrom  resource.Value
	SomeValuesFrom resource.Value
	HasValue       resource.Value

	// ComplementOf target, valid when Kind == Complement.
	ComplementOf resource.Value

	builtin bool
}

// RefineVariant sets the restriction variant if it hasn't been set yet.
// Returns false if a different variant was already assigned, signalling the
// decoder to warn and keep the first-declared variant.
func (c *Class) RefineVariant(v RestrictionVariant) bool {
	if c.Variant != VariantNone && c.Variant != v {
		return false
	}
	c.Variant = v
	return true
}

// ClassModel is the T-Box class container.
type ClassModel struct {
	classes     map[uint64]*Class
	builtinRefs map[uint64]int

	SubClassOf      *taxonomy.Taxonomy
	EquivalentClass *taxonomy.Taxonomy
	DisjointWith    *taxonomy.Taxonomy
	UnionOf         *taxonomy.Taxonomy
	IntersectionOf  *taxonomy.Taxonomy
	OneOf           *taxonomy.Taxonomy
}

// New returns an empty ClassModel.
func New() *ClassModel {
	return &ClassModel{
		classes:         make(map[uint64]*Class),
		builtinRefs:     make(map[uint64]int),
		SubClassOf:      taxonomy.New(),
		EquivalentClass: taxonomy.New(),
		DisjointWith:    taxonomy.New(),
		UnionOf:         taxonomy.New(),
		IntersectionOf:  taxonomy.New(),
		OneOf:           taxonomy.New(),
	}
}

// GetOrCreate returns the class for v, creating a plain-OWL class record if
// it wasn't registered yet.
func (m *ClassModel) GetOrCreate(v resource.Value) *Class {
	fp := v.Fingerprint()
	if c, ok := m.classes[fp]; ok {
		return c
	}
	c := &Class{Resource: v, Kind: PlainOWL}
	m.classes[fp] = c
	return c
}

// Get returns the class for v, if registered.
func (m *ClassModel) Get(v resource.Value) (*Class, bool) {
	c, ok := m.classes[v.Fingerprint()]
	return c, ok
}

// Has reports whether v is a registered class.
func (m *ClassModel) Has(v resource.Value) bool {
	_, ok := m.classes[v.Fingerprint()]
	return ok
}

// Classes returns every registered class, excluding BASE/DC built-ins.
func (m *ClassModel) Classes() []*Class {
	out := make([]*Class, 0, len(m.classes))
	for _, c := range m.classes {
		if !c.builtin {
			out = append(out, c)
		}
	}
	return out
}

// AllClasses returns every registered class, including built-ins.
func (m *ClassModel) AllClasses() []*Class {
	out := make([]*Class, 0, len(m.classes))
	for _, c := range m.classes {
		out = append(out, c)
	}
	return out
}

// ExpandBuiltin registers c as a BASE/DC class, reference-counted so that
// expanding the same model twice only requires a matching number of
// Unexpand calls to fully remove it, grounded on inference.Class's
// references/removeReference pattern.
func (m *ClassModel) ExpandBuiltin(c *Class) {
	fp := c.Resource.Fingerprint()
	if _, ok := m.classes[fp]; !ok {
		cc := *c
		cc.builtin = true
		m.classes[fp] = &cc
	}
	m.builtinRefs[fp]++
}

// UnexpandBuiltins removes every built-in class whose reference count has
// dropped to zero.
func (m *ClassModel) UnexpandBuiltins() {
	for fp, n := range m.builtinRefs {
		n--
		if n <= 0 {
			delete(m.builtinRefs, fp)
			if c, ok := m.classes[fp]; ok && c.builtin {
				delete(m.classes, fp)
			}
			continue
		}
		m.builtinRefs[fp] = n
	}
}
