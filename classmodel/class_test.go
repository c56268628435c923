package classmodel

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/ontoreason/resource"
)

func TestGetOrCreateIdempotent(t *testing.T) {
	m := New()
	a := m.GetOrCreate(resource.IRI("ex:Foo"))
	b := m.GetOrCreate(resource.IRI("ex:Foo"))
	require.Same(t, a, b)
}

func TestRefineVariantOnce(t *testing.T) {
	c := &Class{Kind: Restriction}
	require.True(t, c.RefineVariant(VariantCardinality))
	require.True(t, c.RefineVariant(VariantCardinality))
	require.False(t, c.RefineVariant(VariantHasValue))
	require.Equal(t, VariantCardinality, c.Variant)
}

func TestClassesExcludeBuiltins(t *testing.T) {
	m := New()
	m.GetOrCreate(resource.IRI("ex:Foo"))
	m.ExpandBuiltin(&Class{Resource: resource.IRI("rdfs:Resource"), Kind: PlainRDFS})

	require.Len(t, m.Classes(), 1)
	require.Len(t, m.AllClasses(), 2)
}

func TestUnexpandBuiltinsRefCounted(t *testing.T) {
	m := New()
	builtin := &Class{Resource: resource.IRI("rdfs:Resource"), Kind: PlainRDFS}
	m.ExpandBuiltin(builtin)
	m.ExpandBuiltin(builtin)
	m.UnexpandBuiltins()
	require.True(t, m.Has(resource.IRI("rdfs:Resource")))
	m.UnexpandBuiltins()
	require.False(t, m.Has(resource.IRI("rdfs:Resource")))
}
