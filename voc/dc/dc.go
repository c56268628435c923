// Package dc holds the Dublin Core vocabulary IRIs injected alongside BASE
// on ontology expansion.
package dc

import "github.com/cayleygraph/ontoreason/voc"

func init() {
	voc.RegisterPrefix(Prefix, NS)
}

const (
	NS     = `http://purl.org/dc/elements/1.1/`
	Prefix = `dc:`
)

const (
	Title       = NS + "title"
	Creator     = NS + "creator"
	Subject     = NS + "subject"
	Description = NS + "description"
	Date        = NS + "date"
	Source      = NS + "source"
	Language    = NS + "language"
)
