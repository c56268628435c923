// Package reason implements the entailment engine: taxonomic closures over
// the class and property models, A-Box sameAs/differentFrom/transitive
// closures, and class-membership computation (plain, composite, enumerated,
// restriction and literal-compatible classes).
package reason

import "github.com/cayleygraph/ontoreason/resource"

// set is a fingerprint-keyed collection of resources, used throughout this
// package instead of a slice so membership tests and de-duplication during
// closure computation stay O(1).
type set map[uint64]resource.Value

func newSet() set { return make(set) }

func (s set) add(v resource.Value) bool {
	if v == nil {
		return false
	}
	fp := v.Fingerprint()
	if _, ok := s[fp]; ok {
		return false
	}
	s[fp] = v
	return true
}

func (s set) has(v resource.Value) bool {
	if v == nil {
		return false
	}
	_, ok := s[v.Fingerprint()]
	return ok
}

func (s set) addAll(vs []resource.Value) {
	for _, v := range vs {
		s.add(v)
	}
}

func (s set) values() []resource.Value {
	out := make([]resource.Value, 0, len(s))
	for _, v := range s {
		out = append(out, v)
	}
	return out
}

// visited is a visit-context: the set of resource fingerprints already
// processed during a recursive closure walk, used to terminate cycles.
type visited map[uint64]bool

func newVisited() visited { return make(visited) }

func (v visited) seen(r resource.Value) bool {
	_, ok := v[r.Fingerprint()]
	return ok
}

func (v visited) mark(r resource.Value) { v[r.Fingerprint()] = true }

func fingerprintOf(v resource.Value) uint64 {
	if v == nil {
		return 0
	}
	return v.Fingerprint()
}
