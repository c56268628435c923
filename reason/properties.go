package reason

import (
	"github.com/cayleygraph/ontoreason/propertymodel"
	"github.com/cayleygraph/ontoreason/resource"
)

// EnlistEquivalentProperties returns every property provably equivalent to
// p under owl:equivalentProperty, excluding p itself.
func EnlistEquivalentProperties(p resource.Value, model *propertymodel.PropertyModel) []resource.Value {
	return symmetricClosure(p, model.EquivalentProperty)
}

// EnlistSubProperties returns every property that is a provable
// specialization of p, analogous to EnlistSubClasses over SubPropertyOf.
func EnlistSubProperties(p resource.Value, model *propertymodel.PropertyModel) []resource.Value {
	result := newSet()
	processed := newVisited()
	worklist := []resource.Value{p}
	processed.mark(p)

	enqueue := func(v resource.Value) {
		if !processed.seen(v) {
			processed.mark(v)
			worklist = append(worklist, v)
		}
	}

	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]
		for _, e := range model.SubPropertyOf.ByObject(cur) {
			x := e.Subject
			if result.add(x) {
				enqueue(x)
			}
			for _, eq := range EnlistEquivalentProperties(x, model) {
				if result.add(eq) {
					enqueue(eq)
				}
			}
		}
	}
	return result.values()
}

// EnlistSuperProperties is the dual of EnlistSubProperties.
func EnlistSuperProperties(p resource.Value, model *propertymodel.PropertyModel) []resource.Value {
	result := newSet()
	processed := newVisited()
	worklist := []resource.Value{p}
	processed.mark(p)

	enqueue := func(v resource.Value) {
		if !processed.seen(v) {
			processed.mark(v)
			worklist = append(worklist, v)
		}
	}

	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]
		for _, e := range model.SubPropertyOf.BySubject(cur) {
			x := e.Object
			if result.add(x) {
				enqueue(x)
			}
			for _, eq := range EnlistEquivalentProperties(x, model) {
				if result.add(eq) {
					enqueue(eq)
				}
			}
		}
	}
	return result.values()
}

// EnlistInverseProperties returns every property declared (directly, in
// either direction) as the inverse of p, closed under equivalent-property
// substitution. Inverse is a single-hop relation, not a transitive one: a
// double inverse is not folded back to p.
func EnlistInverseProperties(p resource.Value, model *propertymodel.PropertyModel) []resource.Value {
	direct := newSet()
	for _, e := range model.InverseOf.BySubject(p) {
		direct.add(e.Object)
	}
	for _, e := range model.InverseOf.ByObject(p) {
		direct.add(e.Subject)
	}

	result := newSet()
	for _, d := range direct.values() {
		result.add(d)
		for _, eq := range EnlistEquivalentProperties(d, model) {
			result.add(eq)
		}
	}
	return result.values()
}

// compatiblePredicates returns sub-properties ∪ equivalent-properties of p,
// plus p itself: the set of predicates a restriction on p must also
// consider compatible when scanning assertions.
func compatiblePredicates(p resource.Value, model *propertymodel.PropertyModel) []resource.Value {
	out := newSet()
	out.add(p)
	out.addAll(EnlistSubProperties(p, model))
	out.addAll(EnlistEquivalentProperties(p, model))
	return out.values()
}
