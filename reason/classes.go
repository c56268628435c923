package reason

import (
	"github.com/cayleygraph/ontoreason/classmodel"
	"github.com/cayleygraph/ontoreason/resource"
	"github.com/cayleygraph/ontoreason/taxonomy"
	"github.com/cayleygraph/ontoreason/voc/rdfs"
)

// symmetricClosure computes the transitive, symmetric closure of start over
// rel, walking both the subject→object and object→subject directions from
// every newly discovered node. A single shared visit context terminates
// cycles; start's own fingerprint is excluded from the result even if a
// cycle loops back to it.
func symmetricClosure(start resource.Value, rel *taxonomy.Taxonomy) []resource.Value {
	startFP := fingerprintOf(start)
	ctx := newVisited()
	ctx.mark(start)
	result := newSet()

	var walk func(cur resource.Value)
	walk = func(cur resource.Value) {
		for _, e := range rel.BySubject(cur) {
			next := e.Object
			if fingerprintOf(next) != startFP {
				result.add(next)
			}
			if !ctx.seen(next) {
				ctx.mark(next)
				walk(next)
			}
		}
		for _, e := range rel.ByObject(cur) {
			next := e.Subject
			if fingerprintOf(next) != startFP {
				result.add(next)
			}
			if !ctx.seen(next) {
				ctx.mark(next)
				walk(next)
			}
		}
	}
	walk(start)
	return result.values()
}

// EnlistEquivalentClasses returns every class provably equivalent to c under
// owl:equivalentClass, excluding c itself.
func EnlistEquivalentClasses(c resource.Value, model *classmodel.ClassModel) []resource.Value {
	return symmetricClosure(c, model.EquivalentClass)
}

// EnlistSubClasses returns every class that is a provable specialization of
// c: the transitive closure of SubClassOf entries whose object is c, with
// each discovered class's equivalent classes folded in and expanded in
// turn. Uses monotone worklist accumulation so cycles terminate as soon as
// no new class is discovered.
func EnlistSubClasses(c resource.Value, model *classmodel.ClassModel) []resource.Value {
	result := newSet()
	processed := newVisited()
	worklist := []resource.Value{c}
	processed.mark(c)

	enqueue := func(v resource.Value) {
		if !processed.seen(v) {
			processed.mark(v)
			worklist = append(worklist, v)
		}
	}

	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]
		for _, e := range model.SubClassOf.ByObject(cur) {
			x := e.Subject
			if result.add(x) {
				enqueue(x)
			}
			for _, eq := range EnlistEquivalentClasses(x, model) {
				if result.add(eq) {
					enqueue(eq)
				}
			}
		}
	}
	return result.values()
}

// EnlistSuperClasses is the dual of EnlistSubClasses, walking SubClassOf
// from subject to object. Every class is implicitly a subclass of
// rdfs:Resource, mirroring the teacher's IsSubClassOf special case
// (superClass.name == rdfs.Resource returns true unconditionally): unless c
// itself denotes rdfs:Resource, it's added to the result even when no
// SubClassOf edge names it explicitly, so callers walking "up" an ontology
// that never declares an explicit root still terminate at a common class.
func EnlistSuperClasses(c resource.Value, model *classmodel.ClassModel) []resource.Value {
	result := newSet()
	processed := newVisited()
	worklist := []resource.Value{c}
	processed.mark(c)

	enqueue := func(v resource.Value) {
		if !processed.seen(v) {
			processed.mark(v)
			worklist = append(worklist, v)
		}
	}

	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]
		for _, e := range model.SubClassOf.BySubject(cur) {
			x := e.Object
			if result.add(x) {
				enqueue(x)
			}
			for _, eq := range EnlistEquivalentClasses(x, model) {
				if result.add(eq) {
					enqueue(eq)
				}
			}
		}
	}

	if fingerprintOf(c) != fingerprintOf(resource.IRI(rdfs.Resource)) {
		result.add(resource.IRI(rdfs.Resource))
	}
	return result.values()
}

// EnlistDisjointClasses returns every class provably disjoint from c:
// direct disjoints and their equivalents, the transitive subclasses of each
// disjoint found, and (recursively, sharing one visit context) the
// disjoints of c's superclasses and equivalents.
func EnlistDisjointClasses(c resource.Value, model *classmodel.ClassModel) []resource.Value {
	result := newSet()
	ctx := newVisited()
	enlistDisjointCore(c, model, ctx, result)
	return result.values()
}

func enlistDisjointCore(c resource.Value, model *classmodel.ClassModel, ctx visited, result set) {
	if ctx.seen(c) {
		return
	}
	ctx.mark(c)

	direct := newSet()
	for _, e := range model.DisjointWith.BySubject(c) {
		direct.add(e.Object)
	}
	for _, e := range model.DisjointWith.ByObject(c) {
		direct.add(e.Subject)
	}
	for _, d := range direct.values() {
		result.add(d)
		for _, eq := range EnlistEquivalentClasses(d, model) {
			result.add(eq)
		}
	}

	for _, d := range result.values() {
		for _, sub := range EnlistSubClasses(d, model) {
			result.add(sub)
		}
	}

	for _, sup := range EnlistSuperClasses(c, model) {
		enlistDisjointCore(sup, model, ctx, result)
	}
	for _, eq := range EnlistEquivalentClasses(c, model) {
		enlistDisjointCore(eq, model, ctx, result)
	}
}
