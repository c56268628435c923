// Package propertymodel implements the property-model container plus its
// taxonomies (SubPropertyOf, EquivalentProperty, InverseOf), grounded like
// classmodel on inference.Store's map-of-pointers design.
package propertymodel

import (
	"github.com/cayleygraph/ontoreason/resource"
	"github.com/cayleygraph/ontoreason/taxonomy"
)

// Kind discriminates the three property kinds a property may take: at most
// one of annotation, datatype or object.
type Kind int

const (
	Annotation Kind = iota
	Datatype
	Object
)

// Property is a property-model record. Symmetric/Transitive/
// InverseFunctional are only legal when Kind == Object.
type Property struct {
	Resource resource.Value
	Kind     Kind

	Deprecated        bool
	Functional        bool
	Symmetric         bool
	Transitive        bool
	InverseFunctional bool

	Domain resource.Value
	Range  resource.Value

	builtin bool
}

// PropertyModel is the property-model container.
type PropertyModel struct {
	properties  map[uint64]*Property
	builtinRefs map[uint64]int

	SubPropertyOf      *taxonomy.Taxonomy
	EquivalentProperty *taxonomy.Taxonomy
	InverseOf          *taxonomy.Taxonomy
}

// New returns an empty PropertyModel.
func New() *PropertyModel {
	return &PropertyModel{
		properties:         make(map[uint64]*Property),
		builtinRefs:        make(map[uint64]int),
		SubPropertyOf:      taxonomy.New(),
		EquivalentProperty: taxonomy.New(),
		InverseOf:          taxonomy.New(),
	}
}

// GetOrCreate returns the property for v, creating an annotation-kind
// record if it wasn't registered yet (the weakest kind; callers promote it
// in place once the real kind is known).
func (m *PropertyModel) GetOrCreate(v resource.Value) *Property {
	fp := v.Fingerprint()
	if p, ok := m.properties[fp]; ok {
		return p
	}
	p := &Property{Resource: v, Kind: Annotation}
	m.properties[fp] = p
	return p
}

// Get returns the property for v, if registered.
func (m *PropertyModel) Get(v resource.Value) (*Property, bool) {
	p, ok := m.properties[v.Fingerprint()]
	return p, ok
}

// Has reports whether v is a registered property.
func (m *PropertyModel) Has(v resource.Value) bool {
	_, ok := m.properties[v.Fingerprint()]
	return ok
}

// Properties returns every registered property, excluding BASE/DC
// built-ins.
func (m *PropertyModel) Properties() []*Property {
	out := make([]*Property, 0, len(m.properties))
	for _, p := range m.properties {
		if !p.builtin {
			out = append(out, p)
		}
	}
	return out
}

// AllProperties returns every registered property, including built-ins.
func (m *PropertyModel) AllProperties() []*Property {
	out := make([]*Property, 0, len(m.properties))
	for _, p := range m.properties {
		out = append(out, p)
	}
	return out
}

// ExpandBuiltin registers p as a BASE/DC property, reference-counted like
// classmodel.ClassModel.ExpandBuiltin.
func (m *PropertyModel) ExpandBuiltin(p *Property) {
	fp := p.Resource.Fingerprint()
	if _, ok := m.properties[fp]; !ok {
		pp := *p
		pp.builtin = true
		m.properties[fp] = &pp
	}
	m.builtinRefs[fp]++
}

// UnexpandBuiltins removes every built-in property whose reference count
// has dropped to zero.
func (m *PropertyModel) UnexpandBuiltins() {
	for fp, n := range m.builtinRefs {
		n--
		if n <= 0 {
			delete(m.builtinRefs, fp)
			if p, ok := m.properties[fp]; ok && p.builtin {
				delete(m.properties, fp)
			}
			continue
		}
		m.builtinRefs[fp] = n
	}
}
