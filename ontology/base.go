package ontology

import (
	"sync"

	"github.com/cayleygraph/ontoreason/classmodel"
	"github.com/cayleygraph/ontoreason/propertymodel"
	"github.com/cayleygraph/ontoreason/resource"
	"github.com/cayleygraph/ontoreason/voc/dc"
	"github.com/cayleygraph/ontoreason/voc/owl"
	"github.com/cayleygraph/ontoreason/voc/rdf"
	"github.com/cayleygraph/ontoreason/voc/rdfs"
	"github.com/cayleygraph/ontoreason/voc/xsd"
)

// baseOntology holds the BASE (rdf/rdfs/owl/xsd) and DC reference
// resources, process-wide singletons initialized once on first use and
// read-only thereafter.
type baseOntology struct {
	classes    map[uint64]*classmodel.Class
	properties map[uint64]*propertymodel.Property
}

var (
	baseOnce  sync.Once
	baseInst  *baseOntology
)

func getBase() *baseOntology {
	baseOnce.Do(func() {
		baseInst = buildBase()
	})
	return baseInst
}

func buildBase() *baseOntology {
	b := &baseOntology{
		classes:    make(map[uint64]*classmodel.Class),
		properties: make(map[uint64]*propertymodel.Property),
	}

	addClass := func(iri string, kind classmodel.Kind) {
		c := &classmodel.Class{Resource: resource.IRI(iri), Kind: kind}
		b.classes[c.Resource.Fingerprint()] = c
	}
	addProp := func(iri string, kind propertymodel.Kind) {
		p := &propertymodel.Property{Resource: resource.IRI(iri), Kind: kind}
		b.properties[p.Resource.Fingerprint()] = p
	}

	// RDF/RDFS classes.
	addClass(rdfs.Resource, classmodel.PlainRDFS)
	addClass(rdfs.Class, classmodel.PlainRDFS)
	addClass(rdfs.Literal, classmodel.PlainRDFS)
	addClass(rdfs.Datatype, classmodel.PlainRDFS)
	addClass(rdf.Property, classmodel.PlainRDFS)
	addClass(rdf.List, classmodel.PlainRDFS)

	// OWL classes.
	addClass(owl.Ontology, classmodel.PlainOWL)
	addClass(owl.Class, classmodel.PlainOWL)
	addClass(owl.DeprecatedClass, classmodel.PlainOWL)
	addClass(owl.Restriction, classmodel.PlainOWL)
	addClass(owl.DataRange, classmodel.PlainOWL)

	// XSD datatype classes, registered so literal-compatible membership
	// can resolve them via the class model.
	for _, iri := range []string{xsd.String, xsd.Boolean, xsd.Integer, xsd.Int, xsd.Long,
		xsd.Decimal, xsd.Float, xsd.Double, xsd.DateTime, xsd.Date, xsd.AnyURI} {
		addClass(iri, classmodel.PlainRDFS)
	}

	// RDF/RDFS structural properties.
	addProp(rdf.Type, propertymodel.Object)
	addProp(rdf.First, propertymodel.Object)
	addProp(rdf.Rest, propertymodel.Object)
	addProp(rdfs.SubClassOf, propertymodel.Object)
	addProp(rdfs.SubPropertyOf, propertymodel.Object)
	addProp(rdfs.Domain, propertymodel.Object)
	addProp(rdfs.Range, propertymodel.Object)
	addProp(rdfs.Comment, propertymodel.Annotation)
	addProp(rdfs.Label, propertymodel.Annotation)
	addProp(rdfs.SeeAlso, propertymodel.Annotation)
	addProp(rdfs.IsDefinedBy, propertymodel.Annotation)

	// OWL structural properties.
	addProp(owl.OnProperty, propertymodel.Object)
	addProp(owl.OneOf, propertymodel.Object)
	addProp(owl.UnionOf, propertymodel.Object)
	addProp(owl.IntersectionOf, propertymodel.Object)
	addProp(owl.ComplementOf, propertymodel.Object)
	addProp(owl.AllValuesFrom, propertymodel.Object)
	addProp(owl.SomeValuesFrom, propertymodel.Object)
	addProp(owl.HasValue, propertymodel.Object)
	addProp(owl.Cardinality, propertymodel.Datatype)
	addProp(owl.MinCardinality, propertymodel.Datatype)
	addProp(owl.MaxCardinality, propertymodel.Datatype)
	addProp(owl.SameAs, propertymodel.Object)
	addProp(owl.DifferentFrom, propertymodel.Object)
	addProp(owl.EquivalentClass, propertymodel.Object)
	addProp(owl.DisjointWith, propertymodel.Object)
	addProp(owl.EquivalentProperty, propertymodel.Object)
	addProp(owl.InverseOf, propertymodel.Object)
	addProp(owl.VersionInfo, propertymodel.Annotation)
	addProp(owl.VersionIRI, propertymodel.Annotation)
	addProp(owl.PriorVersion, propertymodel.Annotation)
	addProp(owl.BackwardCompatibleWith, propertymodel.Annotation)
	addProp(owl.IncompatibleWith, propertymodel.Annotation)
	addProp(owl.Imports, propertymodel.Annotation)

	// Dublin Core annotation properties.
	for _, iri := range []string{dc.Title, dc.Creator, dc.Subject, dc.Description, dc.Date, dc.Source, dc.Language} {
		addProp(iri, propertymodel.Annotation)
	}

	return b
}

// IsReserved reports whether iri names a BASE or DC vocabulary resource.
func IsReserved(iri string) bool {
	b := getBase()
	fp := resource.IRI(iri).Fingerprint()
	if _, ok := b.classes[fp]; ok {
		return true
	}
	if _, ok := b.properties[fp]; ok {
		return true
	}
	return false
}
