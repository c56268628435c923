package reason

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/ontoreason/classmodel"
	"github.com/cayleygraph/ontoreason/resource"
	"github.com/cayleygraph/ontoreason/taxonomy"
	"github.com/cayleygraph/ontoreason/voc/rdfs"
)

func addSubClassOf(m *classmodel.ClassModel, sub, super resource.Value) {
	m.GetOrCreate(sub)
	m.GetOrCreate(super)
	m.SubClassOf.Add(taxonomy.Entry{Subject: sub, Predicate: resource.IRI("rdfs:subClassOf"), Object: super})
}

func TestEnlistSubClassesTransitive(t *testing.T) {
	m := classmodel.New()
	a, b, c := resource.IRI("ex:A"), resource.IRI("ex:B"), resource.IRI("ex:C")
	addSubClassOf(m, a, b)
	addSubClassOf(m, b, c)

	subs := valuesToStrings(EnlistSubClasses(c, m))
	require.ElementsMatch(t, []string{"<ex:A>", "<ex:B>"}, subs)
}

func TestEnlistSuperClassesTransitive(t *testing.T) {
	m := classmodel.New()
	a, b, c := resource.IRI("ex:A"), resource.IRI("ex:B"), resource.IRI("ex:C")
	addSubClassOf(m, a, b)
	addSubClassOf(m, b, c)

	supers := valuesToStrings(EnlistSuperClasses(a, m))
	require.ElementsMatch(t, []string{"<ex:B>", "<ex:C>", resource.IRI(rdfs.Resource).String()}, supers)
}

func TestEnlistSuperClassesOfResourceExcludesItself(t *testing.T) {
	m := classmodel.New()
	m.GetOrCreate(resource.IRI(rdfs.Resource))

	supers := EnlistSuperClasses(resource.IRI(rdfs.Resource), m)
	require.Empty(t, supers)
}

func TestEnlistEquivalentClassesCycleTerminates(t *testing.T) {
	m := classmodel.New()
	a, b := resource.IRI("ex:A"), resource.IRI("ex:B")
	m.EquivalentClass.Add(taxonomy.Entry{Subject: a, Predicate: resource.IRI("owl:equivalentClass"), Object: b})
	m.EquivalentClass.Add(taxonomy.Entry{Subject: b, Predicate: resource.IRI("owl:equivalentClass"), Object: a})

	eq := EnlistEquivalentClasses(a, m)
	require.ElementsMatch(t, []string{"<ex:B>"}, valuesToStrings(eq))
}

func TestEnlistDisjointClassesPropagates(t *testing.T) {
	m := classmodel.New()
	c, dd, e := resource.IRI("ex:C"), resource.IRI("ex:D"), resource.IRI("ex:E")
	m.DisjointWith.Add(taxonomy.Entry{Subject: c, Predicate: resource.IRI("owl:disjointWith"), Object: dd})
	addSubClassOf(m, e, dd)

	disjoint := valuesToStrings(EnlistDisjointClasses(c, m))
	require.Contains(t, disjoint, "<ex:D>")
	require.Contains(t, disjoint, "<ex:E>")
}

func valuesToStrings(vs []resource.Value) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.String())
	}
	return out
}
