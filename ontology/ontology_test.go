package ontology

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/ontoreason/resource"
	"github.com/cayleygraph/ontoreason/taxonomy"
)

func TestNewRejectsNilName(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, ErrNilName)
}

func TestMustNewPanicsOnNilName(t *testing.T) {
	require.Panics(t, func() { MustNew(nil) })
}

func TestExpandInjectsBuiltinsAndUnexpandRemovesThem(t *testing.T) {
	o := MustNew(resource.IRI("ex:onto"))
	require.False(t, o.IsExpanded())

	o.Expand()
	require.True(t, o.IsExpanded())
	require.True(t, o.ClassModel.Has(resource.IRI("http://www.w3.org/2000/01/rdf-schema#Class")))
	require.True(t, o.PropertyModel.Has(resource.IRI("http://www.w3.org/2000/01/rdf-schema#subClassOf")))

	o.Unexpand()
	require.False(t, o.ClassModel.Has(resource.IRI("http://www.w3.org/2000/01/rdf-schema#Class")))
}

func TestExpandIsReferenceCounted(t *testing.T) {
	o := MustNew(resource.IRI("ex:onto"))
	o.Expand()
	o.Expand()
	o.Unexpand()
	require.True(t, o.ClassModel.Has(resource.IRI("http://www.w3.org/2000/01/rdf-schema#Class")))
	o.Unexpand()
	require.False(t, o.ClassModel.Has(resource.IRI("http://www.w3.org/2000/01/rdf-schema#Class")))
}

func buildOntoWithEdge(name, a, b resource.Value) *Ontology {
	o := MustNew(name)
	o.ClassModel.SubClassOf.Add(taxonomy.Entry{Subject: a, Predicate: resource.IRI("rdfs:subClassOf"), Object: b})
	return o
}

func TestUnionCombinesEntries(t *testing.T) {
	name := resource.IRI("ex:onto")
	a := buildOntoWithEdge(name, resource.IRI("ex:Dog"), resource.IRI("ex:Animal"))
	b := buildOntoWithEdge(name, resource.IRI("ex:Cat"), resource.IRI("ex:Animal"))

	u := a.Union(b)
	require.Len(t, u.ClassModel.SubClassOf.Entries(), 2)
}

func TestIntersectKeepsSharedEntries(t *testing.T) {
	name := resource.IRI("ex:onto")
	shared := taxonomy.Entry{Subject: resource.IRI("ex:Dog"), Predicate: resource.IRI("rdfs:subClassOf"), Object: resource.IRI("ex:Animal")}

	a := MustNew(name)
	a.ClassModel.SubClassOf.Add(shared)
	a.ClassModel.SubClassOf.Add(taxonomy.Entry{Subject: resource.IRI("ex:Cat"), Predicate: resource.IRI("rdfs:subClassOf"), Object: resource.IRI("ex:Animal")})

	b := MustNew(name)
	b.ClassModel.SubClassOf.Add(shared)

	i := a.Intersect(b)
	require.Len(t, i.ClassModel.SubClassOf.Entries(), 1)
}

func TestDifferenceSubtractsOther(t *testing.T) {
	name := resource.IRI("ex:onto")
	shared := taxonomy.Entry{Subject: resource.IRI("ex:Dog"), Predicate: resource.IRI("rdfs:subClassOf"), Object: resource.IRI("ex:Animal")}
	unique := taxonomy.Entry{Subject: resource.IRI("ex:Cat"), Predicate: resource.IRI("rdfs:subClassOf"), Object: resource.IRI("ex:Animal")}

	a := MustNew(name)
	a.ClassModel.SubClassOf.Add(shared)
	a.ClassModel.SubClassOf.Add(unique)

	b := MustNew(name)
	b.ClassModel.SubClassOf.Add(shared)

	d := a.Difference(b)
	require.Len(t, d.ClassModel.SubClassOf.Entries(), 1)
	require.Equal(t, unique.Subject, d.ClassModel.SubClassOf.Entries()[0].Subject)
}
