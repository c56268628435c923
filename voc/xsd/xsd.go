// Package xsd holds the XML Schema datatype vocabulary IRIs used to
// classify typed literals.
package xsd

import "github.com/cayleygraph/ontoreason/voc"

func init() {
	voc.RegisterPrefix(Prefix, NS)
}

const (
	NS     = `http://www.w3.org/2001/XMLSchema#`
	Prefix = `xsd:`
)

const (
	String   = NS + "string"
	Boolean  = NS + "boolean"
	Integer  = NS + "integer"
	Int      = NS + "int"
	Long     = NS + "long"
	Decimal  = NS + "decimal"
	Float    = NS + "float"
	Double   = NS + "double"
	DateTime = NS + "dateTime"
	Date     = NS + "date"
	AnyURI   = NS + "anyURI"
)

// NumericCategory reports whether the given XSD datatype IRI denotes a
// number, as opposed to a string or other category. Used by
// cardinality-literal parsing to accept numeric-typed
// cardinality literals.
func NumericCategory(iri string) bool {
	switch iri {
	case Integer, Int, Long, Decimal, Float, Double:
		return true
	default:
		return false
	}
}

// StringCategory reports whether the given XSD datatype IRI denotes a
// string-like value.
func StringCategory(iri string) bool {
	return iri == String || iri == AnyURI
}
