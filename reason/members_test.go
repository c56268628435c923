package reason

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/ontoreason/classmodel"
	"github.com/cayleygraph/ontoreason/ontology"
	"github.com/cayleygraph/ontoreason/resource"
	"github.com/cayleygraph/ontoreason/taxonomy"
)

func assertFact(t *testing.T, onto *ontology.Ontology, subj, pred, obj resource.Value) {
	t.Helper()
	onto.Data.GetOrCreate(subj)
	if n, ok := obj.(resource.Node); ok {
		onto.Data.GetOrCreate(n)
	}
	onto.Data.Assertions.Add(taxonomy.Entry{Subject: subj, Predicate: pred, Object: obj})
}

func classType(onto *ontology.Ontology, fact, cls resource.Value) {
	onto.Data.GetOrCreate(fact)
	onto.Data.ClassType.Add(taxonomy.Entry{Subject: fact, Object: cls})
}

func TestMembersOfRestrictionCardinality(t *testing.T) {
	onto := ontology.MustNew(resource.IRI("ex:onto"))
	p := resource.IRI("ex:p")
	onto.PropertyModel.GetOrCreate(p)

	r := onto.ClassModel.GetOrCreate(resource.IRI("ex:R"))
	r.Kind = classmodel.Restriction
	r.OnProperty = p
	r.RefineVariant(classmodel.VariantCardinality)
	r.Min = 2
	r.MinActive = true

	f1, f2 := resource.IRI("ex:f1"), resource.IRI("ex:f2")
	v1, v2 := resource.IRI("ex:v1"), resource.IRI("ex:v2")
	assertFact(t, onto, f1, p, v1)
	assertFact(t, onto, f1, p, v2)
	assertFact(t, onto, f2, p, v1)

	members := valuesToStrings(MembersOfRestriction(r, onto))
	require.ElementsMatch(t, []string{"<ex:f1>"}, members)
}

func TestMembersOfRestrictionAllValuesFrom(t *testing.T) {
	onto := ontology.MustNew(resource.IRI("ex:onto"))
	hasPet := resource.IRI("ex:hasPet")
	onto.PropertyModel.GetOrCreate(hasPet)

	animal := resource.IRI("ex:Animal")
	dog := resource.IRI("ex:Dog")
	rock := resource.IRI("ex:Rock")
	onto.ClassModel.GetOrCreate(animal)
	onto.ClassModel.GetOrCreate(dog)
	onto.ClassModel.GetOrCreate(rock)
	onto.ClassModel.SubClassOf.Add(taxonomy.Entry{Subject: dog, Object: animal})

	r := onto.ClassModel.GetOrCreate(resource.IRI("ex:R"))
	r.Kind = classmodel.Restriction
	r.OnProperty = hasPet
	r.RefineVariant(classmodel.VariantAllValuesFrom)
	r.AllValuesFrom = animal

	a, b := resource.IRI("ex:a"), resource.IRI("ex:b")
	d1, d2, x := resource.IRI("ex:d1"), resource.IRI("ex:d2"), resource.IRI("ex:x")
	classType(onto, d1, dog)
	classType(onto, d2, dog)
	classType(onto, x, rock)

	assertFact(t, onto, a, hasPet, d1)
	assertFact(t, onto, a, hasPet, d2)
	assertFact(t, onto, b, hasPet, d1)
	assertFact(t, onto, b, hasPet, x)

	members := valuesToStrings(MembersOfRestriction(r, onto))
	require.ElementsMatch(t, []string{"<ex:a>"}, members)
}

func TestMembersOfUnionClass(t *testing.T) {
	onto := ontology.MustNew(resource.IRI("ex:onto"))
	c1, c2 := resource.IRI("ex:C1"), resource.IRI("ex:C2")
	u := onto.ClassModel.GetOrCreate(resource.IRI("ex:U"))
	u.Kind = classmodel.Union
	onto.ClassModel.UnionOf.Add(taxonomy.Entry{Subject: u.Resource, Object: c1})
	onto.ClassModel.UnionOf.Add(taxonomy.Entry{Subject: u.Resource, Object: c2})

	i1, i2 := resource.IRI("ex:i1"), resource.IRI("ex:i2")
	classType(onto, i1, c1)
	classType(onto, i2, c2)

	members := valuesToStrings(MembersOf(u.Resource, onto))
	require.ElementsMatch(t, []string{"<ex:i1>", "<ex:i2>"}, members)
}

func TestMembersOfPlainClassIncludesSameAs(t *testing.T) {
	onto := ontology.MustNew(resource.IRI("ex:onto"))
	c := resource.IRI("ex:C")
	onto.ClassModel.GetOrCreate(c)

	f1, f2 := resource.IRI("ex:f1"), resource.IRI("ex:f2")
	classType(onto, f1, c)
	onto.Data.SameAs.Add(taxonomy.Entry{Subject: f1, Object: f2})

	members := valuesToStrings(MembersOf(c, onto))
	require.ElementsMatch(t, []string{"<ex:f1>", "<ex:f2>"}, members)
}
