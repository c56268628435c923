package codec

import (
	"github.com/cayleygraph/ontoreason/inference"
	"github.com/cayleygraph/ontoreason/resource"
	"github.com/cayleygraph/ontoreason/rlog"
	"github.com/cayleygraph/ontoreason/voc/rdf"
)

// walkList collects the members of the RDF list headed at head, following
// rdf:first/rdf:rest off idx until rdf:nil. A node revisited mid-walk (a
// malformed, cycling list) stops the walk where it started cycling rather
// than looping forever.
func walkList(head resource.Value, idx *inference.Index) []resource.Value {
	var out []resource.Value
	seen := make(map[uint64]bool)
	nilFP := resource.IRI(rdf.Nil).Fingerprint()
	cur := head
	for cur != nil {
		fp := cur.Fingerprint()
		if fp == nilFP {
			break
		}
		if seen[fp] {
			rlog.Warningf("codec: cyclic rdf list at %s, stopping walk", shortString(cur))
			break
		}
		seen[fp] = true

		var first, rest resource.Value
		for _, t := range idx.BySubject(cur) {
			switch {
			case t.Predicate.Fingerprint() == resource.IRI(rdf.First).Fingerprint():
				first = t.Object
			case t.Predicate.Fingerprint() == resource.IRI(rdf.Rest).Fingerprint():
				rest = t.Object
			}
		}
		if first == nil {
			rlog.Warningf("codec: rdf list node %s missing rdf:first, stopping walk", shortString(cur))
			break
		}
		out = append(out, first)
		cur = rest
	}
	return out
}
