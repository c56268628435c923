// Package inference adapts the teacher's RDFS-only Store into a
// per-predicate prefetch index: a single left-to-right scan over a graph's
// triples that buckets them by predicate, the shape the decoder's fixed
// pipeline consumes at every later pass instead of re-scanning the full
// triple set each time.
package inference

import (
	"github.com/cayleygraph/ontoreason/resource"
	"github.com/cayleygraph/ontoreason/triple"
)

// Index is a read-only, predicate-bucketed view over a fixed triple slice.
type Index struct {
	byPredicate map[uint64][]triple.Triple
	bySubject   map[uint64][]triple.Triple
}

// NewIndex scans ts once, grouping by predicate and by subject fingerprint.
func NewIndex(ts []triple.Triple) *Index {
	idx := &Index{
		byPredicate: make(map[uint64][]triple.Triple),
		bySubject:   make(map[uint64][]triple.Triple),
	}
	for _, t := range ts {
		idx.process(t)
	}
	return idx
}

// process buckets a single triple; kept as its own method (mirroring the
// teacher's ProcessQuad) so a caller streaming triples incrementally can
// call it directly instead of rebuilding the whole index.
func (idx *Index) process(t triple.Triple) {
	if t.Predicate == nil {
		return
	}
	pfp := t.Predicate.Fingerprint()
	idx.byPredicate[pfp] = append(idx.byPredicate[pfp], t)
	if t.Subject != nil {
		sfp := t.Subject.Fingerprint()
		idx.bySubject[sfp] = append(idx.bySubject[sfp], t)
	}
}

// ByPredicate returns every triple whose predicate matches p.
func (idx *Index) ByPredicate(p resource.Value) []triple.Triple {
	if idx == nil || p == nil {
		return nil
	}
	return idx.byPredicate[p.Fingerprint()]
}

// BySubject returns every triple whose subject matches s.
func (idx *Index) BySubject(s resource.Value) []triple.Triple {
	if idx == nil || s == nil {
		return nil
	}
	return idx.bySubject[s.Fingerprint()]
}
