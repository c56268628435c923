// Package rdf holds the RDF core vocabulary IRIs.
package rdf

import "github.com/cayleygraph/ontoreason/voc"

func init() {
	voc.RegisterPrefix(Prefix, NS)
}

const (
	NS     = `http://www.w3.org/1999/02/22-rdf-syntax-ns#`
	Prefix = `rdf:`
)

const (
	// Type: the subject is an instance of a class.
	Type = NS + "type"
	// First: the first item in an RDF list.
	First = NS + "first"
	// Rest: the remainder of an RDF list after the first item.
	Rest = NS + "rest"
	// Nil: the empty RDF list.
	Nil = NS + "nil"
	// List: the class of RDF lists.
	List = NS + "List"
	// Property: the class of RDF properties.
	Property = NS + "Property"
	// PlainLiteral: the class of untyped literal values.
	PlainLiteral = NS + "PlainLiteral"
	// LangString: the datatype of language-tagged string values.
	LangString = NS + "langString"
)
