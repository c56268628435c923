package reason

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/ontoreason/data"
	"github.com/cayleygraph/ontoreason/propertymodel"
	"github.com/cayleygraph/ontoreason/resource"
	"github.com/cayleygraph/ontoreason/taxonomy"
)

func TestEnlistSameFacts(t *testing.T) {
	d := data.New()
	f1, f2, f3 := resource.IRI("ex:f1"), resource.IRI("ex:f2"), resource.IRI("ex:f3")
	d.SameAs.Add(taxonomy.Entry{Subject: f1, Predicate: resource.IRI("owl:sameAs"), Object: f2})
	d.SameAs.Add(taxonomy.Entry{Subject: f2, Predicate: resource.IRI("owl:sameAs"), Object: f3})

	require.ElementsMatch(t, []string{"<ex:f2>", "<ex:f3>"}, valuesToStrings(EnlistSameFacts(f1, d)))
}

func TestEnlistDifferentFromViaSameAs(t *testing.T) {
	d := data.New()
	f1, f2, f3 := resource.IRI("ex:f1"), resource.IRI("ex:f2"), resource.IRI("ex:f3")
	d.SameAs.Add(taxonomy.Entry{Subject: f1, Predicate: resource.IRI("owl:sameAs"), Object: f2})
	d.DifferentFrom.Add(taxonomy.Entry{Subject: f2, Predicate: resource.IRI("owl:differentFrom"), Object: f3})

	require.Contains(t, valuesToStrings(EnlistDifferentFrom(f1, d)), "<ex:f3>")
}

func TestEnlistDifferentFromDirectTargetSameAsClosure(t *testing.T) {
	d := data.New()
	f, dd, e := resource.IRI("ex:f"), resource.IRI("ex:d"), resource.IRI("ex:e")
	d.DifferentFrom.Add(taxonomy.Entry{Subject: f, Predicate: resource.IRI("owl:differentFrom"), Object: dd})
	d.SameAs.Add(taxonomy.Entry{Subject: dd, Predicate: resource.IRI("owl:sameAs"), Object: e})

	got := valuesToStrings(EnlistDifferentFrom(f, d))
	require.Contains(t, got, "<ex:d>")
	require.Contains(t, got, "<ex:e>")
}

func TestEnlistTransitiveAssertions(t *testing.T) {
	d := data.New()
	pm := propertymodel.New()
	p := resource.IRI("ex:ancestorOf")
	a, b, c := resource.IRI("ex:a"), resource.IRI("ex:b"), resource.IRI("ex:c")
	d.Assertions.Add(taxonomy.Entry{Subject: a, Predicate: p, Object: b})
	d.Assertions.Add(taxonomy.Entry{Subject: b, Predicate: p, Object: c})

	reach := valuesToStrings(EnlistTransitiveAssertions(a, p, d, pm))
	require.ElementsMatch(t, []string{"<ex:b>", "<ex:c>"}, reach)
}
