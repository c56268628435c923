// Package owl holds the Web Ontology Language vocabulary IRIs.
package owl

import "github.com/cayleygraph/ontoreason/voc"

func init() {
	voc.RegisterPrefix(Prefix, NS)
}

const (
	NS     = `http://www.w3.org/2002/07/owl#`
	Prefix = `owl:`
)

const (
	// Classes.
	Ontology        = NS + "Ontology"
	Class           = NS + "Class"
	DeprecatedClass = NS + "DeprecatedClass"
	Restriction     = NS + "Restriction"
	DataRange       = NS + "DataRange"

	// Property declarations.
	AnnotationProperty       = NS + "AnnotationProperty"
	DatatypeProperty         = NS + "DatatypeProperty"
	ObjectProperty           = NS + "ObjectProperty"
	SymmetricProperty        = NS + "SymmetricProperty"
	TransitiveProperty       = NS + "TransitiveProperty"
	FunctionalProperty       = NS + "FunctionalProperty"
	InverseFunctionalProperty = NS + "InverseFunctionalProperty"
	DeprecatedProperty       = NS + "DeprecatedProperty"

	// Restriction vocabulary.
	OnProperty     = NS + "onProperty"
	OneOf          = NS + "oneOf"
	UnionOf        = NS + "unionOf"
	IntersectionOf = NS + "intersectionOf"
	ComplementOf   = NS + "complementOf"
	AllValuesFrom  = NS + "allValuesFrom"
	SomeValuesFrom = NS + "someValuesFrom"
	HasValue       = NS + "hasValue"
	Cardinality    = NS + "cardinality"
	MinCardinality = NS + "minCardinality"
	MaxCardinality = NS + "maxCardinality"

	// Taxonomy predicates.
	SameAs              = NS + "sameAs"
	DifferentFrom       = NS + "differentFrom"
	EquivalentClass     = NS + "equivalentClass"
	DisjointWith        = NS + "disjointWith"
	EquivalentProperty  = NS + "equivalentProperty"
	InverseOf           = NS + "inverseOf"

	// Ontology-level annotation properties.
	VersionInfo            = NS + "versionInfo"
	VersionIRI             = NS + "versionIRI"
	PriorVersion           = NS + "priorVersion"
	BackwardCompatibleWith = NS + "backwardCompatibleWith"
	IncompatibleWith       = NS + "incompatibleWith"
	Imports                = NS + "imports"
)
