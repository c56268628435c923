// Package ontology implements the Ontology aggregate: a class
// model, a property model, a data graph and ontology-level annotations,
// plus the BASE/DC expansion singleton (base.go) and the set-algebra
// operations over ontologies (union/intersect/difference).
package ontology

import (
	"errors"
	"fmt"

	"github.com/cayleygraph/ontoreason/classmodel"
	"github.com/cayleygraph/ontoreason/data"
	"github.com/cayleygraph/ontoreason/propertymodel"
	"github.com/cayleygraph/ontoreason/resource"
	"github.com/cayleygraph/ontoreason/taxonomy"
)

// ErrNilName is returned by New when constructed with a nil ontology name.
var ErrNilName = errors.New("ontology: name must not be nil")

// Ontology is the aggregate of a class model, a property model, a data
// graph and ontology-level annotations.
type Ontology struct {
	Name          resource.Value
	ClassModel    *classmodel.ClassModel
	PropertyModel *propertymodel.PropertyModel
	Data          *data.Data
	// Annotations holds (subject, annotation-property, value) entries at
	// any level -- ontology, class, property or fact -- whose predicate is
	// a user-declared annotation property. The decoder does not store
	// reserved BASE/DC annotation predicates such as owl:versionInfo or
	// rdfs:comment here.
	Annotations *taxonomy.Taxonomy
	// CustomRelations holds (subject, predicate, object) entries for
	// non-reserved predicates the decoder doesn't recognize as structural
	// and that aren't declared annotation properties either. Leftover
	// triples with a reserved BASE/DC predicate, rdf:first or rdf:rest are
	// kept in neither taxonomy.
	CustomRelations *taxonomy.Taxonomy

	expanded bool
}

// New constructs an empty ontology named name. Returns ErrNilName if name
// is nil.
func New(name resource.Value) (*Ontology, error) {
	if name == nil {
		return nil, ErrNilName
	}
	return &Ontology{
		Name:            name,
		ClassModel:      classmodel.New(),
		PropertyModel:   propertymodel.New(),
		Data:            data.New(),
		Annotations:     taxonomy.New(),
		CustomRelations: taxonomy.New(),
	}, nil
}

// MustNew is like New but panics on error; useful for package-level fixture
// construction where name is a compile-time constant.
func MustNew(name resource.Value) *Ontology {
	o, err := New(name)
	if err != nil {
		panic(fmt.Sprintf("ontology.MustNew: %v", err))
	}
	return o
}

// Expand injects the BASE (rdf/rdfs/owl/xsd) and DC vocabularies into o's
// class and property models, reference-counted so matching Unexpand calls
// are required to remove them.
// Safe to call more than once; each call must be balanced by an Unexpand
// before the built-ins are removed.
func (o *Ontology) Expand() {
	base := getBase()
	for _, c := range base.classes {
		o.ClassModel.ExpandBuiltin(c)
	}
	for _, p := range base.properties {
		o.PropertyModel.ExpandBuiltin(p)
	}
	o.expanded = true
}

// Unexpand removes one reference to the BASE/DC injection performed by
// Expand.
func (o *Ontology) Unexpand() {
	o.ClassModel.UnexpandBuiltins()
	o.PropertyModel.UnexpandBuiltins()
}

// IsExpanded reports whether Expand has been called at least once on o.
func (o *Ontology) IsExpanded() bool { return o.expanded }

// Union returns a new ontology combining o and other's class model,
// property model, data and annotations. The result is named after o.
// Taxonomy entries of both are combined; class and property records are
// recreated by resource only (Kind, restriction fields, flags and
// domain/range are not copied), and fact records are not copied.
func (o *Ontology) Union(other *Ontology) *Ontology {
	result := MustNew(o.Name)
	result.ClassModel.SubClassOf = o.ClassModel.SubClassOf.Union(other.ClassModel.SubClassOf)
	result.ClassModel.EquivalentClass = o.ClassModel.EquivalentClass.Union(other.ClassModel.EquivalentClass)
	result.ClassModel.DisjointWith = o.ClassModel.DisjointWith.Union(other.ClassModel.DisjointWith)
	result.ClassModel.UnionOf = o.ClassModel.UnionOf.Union(other.ClassModel.UnionOf)
	result.ClassModel.IntersectionOf = o.ClassModel.IntersectionOf.Union(other.ClassModel.IntersectionOf)
	result.ClassModel.OneOf = o.ClassModel.OneOf.Union(other.ClassModel.OneOf)
	for _, c := range o.ClassModel.AllClasses() {
		result.ClassModel.GetOrCreate(c.Resource)
	}
	for _, c := range other.ClassModel.AllClasses() {
		result.ClassModel.GetOrCreate(c.Resource)
	}

	result.PropertyModel.SubPropertyOf = o.PropertyModel.SubPropertyOf.Union(other.PropertyModel.SubPropertyOf)
	result.PropertyModel.EquivalentProperty = o.PropertyModel.EquivalentProperty.Union(other.PropertyModel.EquivalentProperty)
	result.PropertyModel.InverseOf = o.PropertyModel.InverseOf.Union(other.PropertyModel.InverseOf)
	for _, p := range o.PropertyModel.AllProperties() {
		result.PropertyModel.GetOrCreate(p.Resource)
	}
	for _, p := range other.PropertyModel.AllProperties() {
		result.PropertyModel.GetOrCreate(p.Resource)
	}

	result.Data.ClassType = o.Data.ClassType.Union(other.Data.ClassType)
	result.Data.SameAs = o.Data.SameAs.Union(other.Data.SameAs)
	result.Data.DifferentFrom = o.Data.DifferentFrom.Union(other.Data.DifferentFrom)
	result.Data.Assertions = o.Data.Assertions.Union(other.Data.Assertions)

	result.Annotations = o.Annotations.Union(other.Annotations)
	result.CustomRelations = o.CustomRelations.Union(other.CustomRelations)
	return result
}

// Intersect returns a new ontology keeping only the entries present in both
// o and other.
func (o *Ontology) Intersect(other *Ontology) *Ontology {
	result := MustNew(o.Name)
	result.ClassModel.SubClassOf = o.ClassModel.SubClassOf.Intersect(other.ClassModel.SubClassOf)
	result.ClassModel.EquivalentClass = o.ClassModel.EquivalentClass.Intersect(other.ClassModel.EquivalentClass)
	result.ClassModel.DisjointWith = o.ClassModel.DisjointWith.Intersect(other.ClassModel.DisjointWith)
	result.ClassModel.UnionOf = o.ClassModel.UnionOf.Intersect(other.ClassModel.UnionOf)
	result.ClassModel.IntersectionOf = o.ClassModel.IntersectionOf.Intersect(other.ClassModel.IntersectionOf)
	result.ClassModel.OneOf = o.ClassModel.OneOf.Intersect(other.ClassModel.OneOf)

	result.PropertyModel.SubPropertyOf = o.PropertyModel.SubPropertyOf.Intersect(other.PropertyModel.SubPropertyOf)
	result.PropertyModel.EquivalentProperty = o.PropertyModel.EquivalentProperty.Intersect(other.PropertyModel.EquivalentProperty)
	result.PropertyModel.InverseOf = o.PropertyModel.InverseOf.Intersect(other.PropertyModel.InverseOf)

	result.Data.ClassType = o.Data.ClassType.Intersect(other.Data.ClassType)
	result.Data.SameAs = o.Data.SameAs.Intersect(other.Data.SameAs)
	result.Data.DifferentFrom = o.Data.DifferentFrom.Intersect(other.Data.DifferentFrom)
	result.Data.Assertions = o.Data.Assertions.Intersect(other.Data.Assertions)

	result.Annotations = o.Annotations.Intersect(other.Annotations)
	result.CustomRelations = o.CustomRelations.Intersect(other.CustomRelations)
	return result
}

// Difference returns a new ontology holding the entries of o that do not
// appear in other. The result is built by first unioning o into a fresh,
// empty ontology and then subtracting other from that union, rather than
// subtracting directly from o. A taxonomy already holds at most one entry
// per (subject, predicate, object), so the union step does not change which
// entries remain.
func (o *Ontology) Difference(other *Ontology) *Ontology {
	union := o.Union(MustNew(o.Name))

	result := MustNew(o.Name)
	result.ClassModel.SubClassOf = union.ClassModel.SubClassOf.Difference(other.ClassModel.SubClassOf)
	result.ClassModel.EquivalentClass = union.ClassModel.EquivalentClass.Difference(other.ClassModel.EquivalentClass)
	result.ClassModel.DisjointWith = union.ClassModel.DisjointWith.Difference(other.ClassModel.DisjointWith)
	result.ClassModel.UnionOf = union.ClassModel.UnionOf.Difference(other.ClassModel.UnionOf)
	result.ClassModel.IntersectionOf = union.ClassModel.IntersectionOf.Difference(other.ClassModel.IntersectionOf)
	result.ClassModel.OneOf = union.ClassModel.OneOf.Difference(other.ClassModel.OneOf)

	result.PropertyModel.SubPropertyOf = union.PropertyModel.SubPropertyOf.Difference(other.PropertyModel.SubPropertyOf)
	result.PropertyModel.EquivalentProperty = union.PropertyModel.EquivalentProperty.Difference(other.PropertyModel.EquivalentProperty)
	result.PropertyModel.InverseOf = union.PropertyModel.InverseOf.Difference(other.PropertyModel.InverseOf)

	result.Data.ClassType = union.Data.ClassType.Difference(other.Data.ClassType)
	result.Data.SameAs = union.Data.SameAs.Difference(other.Data.SameAs)
	result.Data.DifferentFrom = union.Data.DifferentFrom.Difference(other.Data.DifferentFrom)
	result.Data.Assertions = union.Data.Assertions.Difference(other.Data.Assertions)

	result.Annotations = union.Annotations.Difference(other.Annotations)
	result.CustomRelations = union.CustomRelations.Difference(other.CustomRelations)
	return result
}
