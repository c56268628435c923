// Package taxonomy implements labeled binary relations over resources,
// indexed by subject and by object, with set algebra. The dual-index
// layout mirrors cayley/graph/memstore/quadstore.go's QuadDirectionIndex.
package taxonomy

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/cayleygraph/ontoreason/resource"
)

// Entry is a single (subject, predicate, object) relation, optionally
// flagged as derived by reasoning rather than asserted. Equality of two
// entries ignores Inferred.
type Entry struct {
	Subject   resource.Value
	Predicate resource.Value
	Object    resource.Value
	Inferred  bool
}

// key identifies an entry for deduplication purposes, ignoring Inferred.
type key struct {
	s, p, o uint64
}

func keyOf(e Entry) key {
	return key{
		s: fingerprintOrZero(e.Subject),
		p: fingerprintOrZero(e.Predicate),
		o: fingerprintOrZero(e.Object),
	}
}

func fingerprintOrZero(v resource.Value) uint64 {
	if v == nil {
		return 0
	}
	return v.Fingerprint()
}

// Taxonomy is a set of Entry, indexed by subject fingerprint and by object
// fingerprint for fast lookup in either direction. Insertion is idempotent:
// adding an entry that already exists (ignoring Inferred) is a no-op unless
// it upgrades an inferred entry to asserted.
type Taxonomy struct {
	keys      mapset.Set[key]
	entries   map[key]Entry
	bySubject map[uint64][]key
	byObject  map[uint64][]key
}

// New returns an empty Taxonomy.
func New() *Taxonomy {
	return &Taxonomy{
		keys:      mapset.NewThreadUnsafeSet[key](),
		entries:   make(map[key]Entry),
		bySubject: make(map[uint64][]key),
		byObject:  make(map[uint64][]key),
	}
}

// Add inserts e, returning true if it was a new entry. If e duplicates an
// existing entry that differs only in Inferred, the non-inferred version
// dominates: adding a non-inferred copy of an inferred entry
// upgrades it in place.
func (t *Taxonomy) Add(e Entry) bool {
	k := keyOf(e)
	if existing, ok := t.entries[k]; ok {
		if existing.Inferred && !e.Inferred {
			existing.Inferred = false
			t.entries[k] = existing
		}
		return false
	}
	t.keys.Add(k)
	t.entries[k] = e
	t.bySubject[k.s] = append(t.bySubject[k.s], k)
	t.byObject[k.o] = append(t.byObject[k.o], k)
	return true
}

// Len returns the number of entries.
func (t *Taxonomy) Len() int { return len(t.entries) }

// Entries returns every entry in the taxonomy. The returned slice is a
// fresh copy; callers may mutate it freely.
func (t *Taxonomy) Entries() []Entry {
	out := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, e)
	}
	return out
}

// BySubject returns every entry whose subject fingerprint matches s.
func (t *Taxonomy) BySubject(s resource.Value) []Entry {
	return t.lookup(t.bySubject[fingerprintOrZero(s)])
}

// ByObject returns every entry whose object fingerprint matches o.
func (t *Taxonomy) ByObject(o resource.Value) []Entry {
	return t.lookup(t.byObject[fingerprintOrZero(o)])
}

func (t *Taxonomy) lookup(ks []key) []Entry {
	if len(ks) == 0 {
		return nil
	}
	out := make([]Entry, 0, len(ks))
	for _, k := range ks {
		out = append(out, t.entries[k])
	}
	return out
}

// SelectByPredicate returns a fresh Taxonomy containing only entries whose
// predicate matches p.
func (t *Taxonomy) SelectByPredicate(p resource.Value) *Taxonomy {
	out := New()
	pfp := fingerprintOrZero(p)
	for _, e := range t.entries {
		if fingerprintOrZero(e.Predicate) == pfp {
			out.Add(e)
		}
	}
	return out
}

// SelectBySubject returns a fresh Taxonomy of every entry whose subject
// matches s.
func (t *Taxonomy) SelectBySubject(s resource.Value) *Taxonomy {
	out := New()
	for _, e := range t.BySubject(s) {
		out.Add(e)
	}
	return out
}

// SelectByObject returns a fresh Taxonomy of every entry whose object
// matches o.
func (t *Taxonomy) SelectByObject(o resource.Value) *Taxonomy {
	out := New()
	for _, e := range t.ByObject(o) {
		out.Add(e)
	}
	return out
}

// Union returns a fresh Taxonomy containing every entry from t and other.
// When an entry appears in both, non-inferred dominates.
func (t *Taxonomy) Union(other *Taxonomy) *Taxonomy {
	out := New()
	for _, e := range t.entries {
		out.Add(e)
	}
	for _, e := range other.entries {
		out.Add(e)
	}
	return out
}

// Intersect returns a fresh Taxonomy of entries present in both t and other.
func (t *Taxonomy) Intersect(other *Taxonomy) *Taxonomy {
	out := New()
	shared := t.keys.Intersect(other.keys)
	shared.Each(func(k key) bool {
		out.Add(t.entries[k])
		return false
	})
	return out
}

// Difference returns a fresh Taxonomy of entries present in t but not in
// other.
func (t *Taxonomy) Difference(other *Taxonomy) *Taxonomy {
	out := New()
	remaining := t.keys.Difference(other.keys)
	remaining.Each(func(k key) bool {
		out.Add(t.entries[k])
		return false
	})
	return out
}
