package codec

import (
	"strconv"

	"github.com/cayleygraph/ontoreason/classmodel"
	"github.com/cayleygraph/ontoreason/ontology"
	"github.com/cayleygraph/ontoreason/propertymodel"
	"github.com/cayleygraph/ontoreason/resource"
	"github.com/cayleygraph/ontoreason/taxonomy"
	"github.com/cayleygraph/ontoreason/triple"
	"github.com/cayleygraph/ontoreason/voc/owl"
	"github.com/cayleygraph/ontoreason/voc/rdf"
	"github.com/cayleygraph/ontoreason/voc/rdfs"
	"github.com/cayleygraph/ontoreason/voc/xsd"
)

// ToGraph encodes onto back into a triple Graph under onto's own IRI as
// context: the ontology header triple, the class and property model's
// declarations, and the projection of every taxonomy. includeInferences
// controls whether entries flagged Inferred are emitted.
func ToGraph(onto *ontology.Ontology, includeInferences bool) *triple.Graph {
	g := triple.NewGraph(onto.Name)
	emit(g, onto.Name, rdf.Type, resource.IRI(owl.Ontology))

	encodeClasses(g, onto)
	encodeProperties(g, onto)

	addProjection(g, onto.ClassModel.SubClassOf, "", includeInferences)
	addProjection(g, onto.ClassModel.EquivalentClass, "", includeInferences)
	addProjection(g, onto.ClassModel.DisjointWith, "", includeInferences)
	addProjection(g, onto.PropertyModel.SubPropertyOf, "", includeInferences)
	addProjection(g, onto.PropertyModel.EquivalentProperty, "", includeInferences)
	addProjection(g, onto.PropertyModel.InverseOf, "", includeInferences)
	addProjection(g, onto.Data.ClassType, rdf.Type, includeInferences)
	addProjection(g, onto.Data.SameAs, owl.SameAs, includeInferences)
	addProjection(g, onto.Data.DifferentFrom, owl.DifferentFrom, includeInferences)
	addProjection(g, onto.Data.Assertions, "", includeInferences)
	addProjection(g, onto.Annotations, "", includeInferences)
	addProjection(g, onto.CustomRelations, "", includeInferences)

	return g
}

// addProjection appends every non-filtered entry of tax to g. When
// fixedPred is non-empty it overrides the entry's own Predicate field --
// used for taxonomies (ClassType, SameAs, DifferentFrom) whose entries
// don't carry a meaningful predicate of their own.
func addProjection(g *triple.Graph, tax *taxonomy.Taxonomy, fixedPred string, includeInferences bool) {
	for _, e := range tax.Entries() {
		if !includeInferences && e.Inferred {
			continue
		}
		pred := e.Predicate
		if fixedPred != "" {
			pred = resource.IRI(fixedPred)
		}
		if pred == nil {
			continue
		}
		g.Add(triple.Triple{
			Subject:   e.Subject,
			Predicate: pred,
			Object:    e.Object,
			Flavor:    flavorOf(e.Object),
			Context:   g.Context,
		})
	}
}

func flavorOf(v resource.Value) triple.Flavor {
	if _, ok := v.(resource.Literal); ok {
		return triple.SPL
	}
	return triple.SPO
}

// emit appends a single triple to g, inferring its flavor from o.
func emit(g *triple.Graph, s resource.Value, pred string, o resource.Value) {
	g.Add(triple.Triple{Subject: s, Predicate: resource.IRI(pred), Object: o, Flavor: flavorOf(o), Context: g.Context})
}

func emitLiteral(g *triple.Graph, s resource.Value, pred string, lexical string, datatype string) {
	emit(g, s, pred, resource.Literal{Lexical: lexical, Datatype: resource.IRI(datatype)})
}

// encodeClasses emits declarations and shape-specific structural triples
// for every non-built-in class, dispatching on Kind the way reason.MembersOf
// does.
func encodeClasses(g *triple.Graph, onto *ontology.Ontology) {
	for _, c := range onto.ClassModel.Classes() {
		switch c.Kind {
		case classmodel.Restriction:
			emit(g, c.Resource, rdf.Type, resource.IRI(owl.Restriction))
			if c.OnProperty != nil {
				emit(g, c.Resource, owl.OnProperty, c.OnProperty)
			}
			encodeRestrictionVariant(g, c)
		case classmodel.Union:
			emit(g, c.Resource, rdf.Type, resource.IRI(owl.Class))
			emit(g, c.Resource, owl.UnionOf, emitList(g, memberList(onto.ClassModel.UnionOf, c.Resource)))
		case classmodel.Intersection:
			emit(g, c.Resource, rdf.Type, resource.IRI(owl.Class))
			emit(g, c.Resource, owl.IntersectionOf, emitList(g, memberList(onto.ClassModel.IntersectionOf, c.Resource)))
		case classmodel.Complement:
			emit(g, c.Resource, rdf.Type, resource.IRI(owl.Class))
			if c.ComplementOf != nil {
				emit(g, c.Resource, owl.ComplementOf, c.ComplementOf)
			}
		case classmodel.Enumerate:
			emit(g, c.Resource, rdf.Type, resource.IRI(owl.Class))
			emit(g, c.Resource, owl.OneOf, emitList(g, memberList(onto.ClassModel.OneOf, c.Resource)))
		case classmodel.DataRange:
			emit(g, c.Resource, rdf.Type, resource.IRI(owl.DataRange))
			emit(g, c.Resource, owl.OneOf, emitList(g, memberList(onto.ClassModel.OneOf, c.Resource)))
		default:
			emit(g, c.Resource, rdf.Type, resource.IRI(owl.Class))
		}
		if c.Deprecated {
			emit(g, c.Resource, rdf.Type, resource.IRI(owl.DeprecatedClass))
		}
	}
}

func encodeRestrictionVariant(g *triple.Graph, c *classmodel.Class) {
	switch c.Variant {
	case classmodel.VariantCardinality:
		if c.MinActive && c.MaxActive && c.Min == c.Max {
			emitLiteral(g, c.Resource, owl.Cardinality, strconv.Itoa(c.Min), xsd.Integer)
			return
		}
		if c.MinActive {
			emitLiteral(g, c.Resource, owl.MinCardinality, strconv.Itoa(c.Min), xsd.Integer)
		}
		if c.MaxActive {
			emitLiteral(g, c.Resource, owl.MaxCardinality, strconv.Itoa(c.Max), xsd.Integer)
		}
	case classmodel.VariantAllValuesFrom:
		if c.AllValuesFrom != nil {
			emit(g, c.Resource, owl.AllValuesFrom, c.AllValuesFrom)
		}
	case classmodel.VariantSomeValuesFrom:
		if c.SomeValuesFrom != nil {
			emit(g, c.Resource, owl.SomeValuesFrom, c.SomeValuesFrom)
		}
	case classmodel.VariantHasValue:
		if c.HasValue != nil {
			emit(g, c.Resource, owl.HasValue, c.HasValue)
		}
	}
}

// memberList returns the ordered-by-iteration set of objects tax relates
// subject to; list order is otherwise unspecified (taxonomic membership is
// set-valued, per spec.md's ordering guarantees).
func memberList(tax *taxonomy.Taxonomy, subject resource.Value) []resource.Value {
	entries := tax.BySubject(subject)
	out := make([]resource.Value, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Object)
	}
	return out
}

// emitList materializes members as an rdf:first/rdf:rest chain of fresh
// blank nodes terminated by rdf:nil, and returns the head node (rdf:nil
// itself for an empty list).
func emitList(g *triple.Graph, members []resource.Value) resource.Value {
	if len(members) == 0 {
		return resource.IRI(rdf.Nil)
	}
	head := resource.Value(resource.RandomBlankNode())
	cur := head
	for i, m := range members {
		emit(g, cur, rdf.First, m)
		if i == len(members)-1 {
			emit(g, cur, rdf.Rest, resource.IRI(rdf.Nil))
			break
		}
		next := resource.Value(resource.RandomBlankNode())
		emit(g, cur, rdf.Rest, next)
		cur = next
	}
	return head
}

// encodeProperties emits the kind/characteristic declarations and
// domain/range triples for every non-built-in property.
func encodeProperties(g *triple.Graph, onto *ontology.Ontology) {
	for _, p := range onto.PropertyModel.Properties() {
		switch p.Kind {
		case propertymodel.Annotation:
			emit(g, p.Resource, rdf.Type, resource.IRI(owl.AnnotationProperty))
		case propertymodel.Datatype:
			emit(g, p.Resource, rdf.Type, resource.IRI(owl.DatatypeProperty))
		case propertymodel.Object:
			emit(g, p.Resource, rdf.Type, resource.IRI(owl.ObjectProperty))
		}
		if p.Symmetric {
			emit(g, p.Resource, rdf.Type, resource.IRI(owl.SymmetricProperty))
		}
		if p.Transitive {
			emit(g, p.Resource, rdf.Type, resource.IRI(owl.TransitiveProperty))
		}
		if p.InverseFunctional {
			emit(g, p.Resource, rdf.Type, resource.IRI(owl.InverseFunctionalProperty))
		}
		if p.Functional {
			emit(g, p.Resource, rdf.Type, resource.IRI(owl.FunctionalProperty))
		}
		if p.Deprecated {
			emit(g, p.Resource, rdf.Type, resource.IRI(owl.DeprecatedProperty))
		}
		if p.Domain != nil {
			emit(g, p.Resource, rdfs.Domain, p.Domain)
		}
		if p.Range != nil {
			emit(g, p.Resource, rdfs.Range, p.Range)
		}
	}
}
