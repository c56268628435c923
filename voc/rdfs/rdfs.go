// Package rdfs holds the RDF Schema vocabulary IRIs.
package rdfs

import "github.com/cayleygraph/ontoreason/voc"

func init() {
	voc.RegisterPrefix(Prefix, NS)
}

const (
	NS     = `http://www.w3.org/2000/01/rdf-schema#`
	Prefix = `rdfs:`
)

const (
	// Resource: the class of everything; the implicit root of the class
	// hierarchy.
	Resource = NS + "Resource"
	// Class: the class of classes.
	Class = NS + "Class"
	// Literal: the class of literal values.
	Literal = NS + "Literal"
	// Datatype: the class of RDF datatypes.
	Datatype = NS + "Datatype"

	// SubClassOf: the subject is a subclass of a class.
	SubClassOf = NS + "subClassOf"
	// SubPropertyOf: the subject is a subproperty of a property.
	SubPropertyOf = NS + "subPropertyOf"
	// Domain: a domain of the subject property.
	Domain = NS + "domain"
	// Range: a range of the subject property.
	Range = NS + "range"
	// Comment: a human-readable description of the subject.
	Comment = NS + "comment"
	// Label: a human-readable name for the subject.
	Label = NS + "label"
	// SeeAlso: further information about the subject.
	SeeAlso = NS + "seeAlso"
	// IsDefinedBy: the definition of the subject resource.
	IsDefinedBy = NS + "isDefinedBy"
)
