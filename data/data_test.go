package data

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/ontoreason/resource"
)

func TestGetOrCreateIdempotent(t *testing.T) {
	d := New()
	a := d.GetOrCreate(resource.IRI("ex:alice"))
	b := d.GetOrCreate(resource.IRI("ex:alice"))
	require.Same(t, a, b)
	require.Len(t, d.Facts(), 1)
}

func TestHas(t *testing.T) {
	d := New()
	require.False(t, d.Has(resource.IRI("ex:alice")))
	d.GetOrCreate(resource.IRI("ex:alice"))
	require.True(t, d.Has(resource.IRI("ex:alice")))
}
