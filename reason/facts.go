package reason

import (
	"github.com/cayleygraph/ontoreason/data"
	"github.com/cayleygraph/ontoreason/propertymodel"
	"github.com/cayleygraph/ontoreason/resource"
)

// EnlistSameFacts returns the transitive closure of owl:sameAs over f,
// excluding f itself.
func EnlistSameFacts(f resource.Value, d *data.Data) []resource.Value {
	return symmetricClosure(f, d.SameAs)
}

// EnlistDifferentFrom returns every fact provably different from f: direct
// owl:differentFrom entries together with the sameAs-closure of each such
// entry, plus the differentFrom closure of every fact in f's own
// sameAs-closure. All passes share one visit context so cycles through
// sameAs or differentFrom terminate.
func EnlistDifferentFrom(f resource.Value, d *data.Data) []resource.Value {
	result := newSet()
	ctx := newVisited()
	enlistDifferentFromCore(f, d, ctx, result)
	return result.values()
}

func enlistDifferentFromCore(f resource.Value, d *data.Data, ctx visited, result set) {
	if ctx.seen(f) {
		return
	}
	ctx.mark(f)

	direct := newSet()
	for _, e := range d.DifferentFrom.BySubject(f) {
		direct.add(e.Object)
	}
	for _, e := range d.DifferentFrom.ByObject(f) {
		direct.add(e.Subject)
	}
	for _, d2 := range direct.values() {
		result.add(d2)
		for _, same := range EnlistSameFacts(d2, d) {
			result.add(same)
		}
	}

	for _, same := range EnlistSameFacts(f, d) {
		enlistDifferentFromCore(same, d, ctx, result)
	}
}

// EnlistTransitiveAssertions computes the reachability set of f through
// p-typed assertions, for a property p marked transitive. Returned values
// are the objects of derived (f, p, ·) entries; callers that want these
// materialized must add them to the Data taxonomy themselves.
func EnlistTransitiveAssertions(f resource.Value, p resource.Value, d *data.Data, pm *propertymodel.PropertyModel) []resource.Value {
	result := newSet()
	ctx := newVisited()
	predicates := newSet()
	predicates.addAll(compatiblePredicates(p, pm))

	var walk func(cur resource.Value)
	walk = func(cur resource.Value) {
		if ctx.seen(cur) {
			return
		}
		ctx.mark(cur)
		for _, e := range d.Assertions.BySubject(cur) {
			if !predicates.has(e.Predicate) {
				continue
			}
			result.add(e.Object)
			walk(e.Object)
		}
	}
	walk(f)
	return result.values()
}
