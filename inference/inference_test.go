package inference

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/ontoreason/resource"
	"github.com/cayleygraph/ontoreason/triple"
)

func TestIndexBucketsByPredicateAndSubject(t *testing.T) {
	a, p, q, b, c := resource.IRI("ex:a"), resource.IRI("ex:p"), resource.IRI("ex:q"), resource.IRI("ex:b"), resource.IRI("ex:c")
	ts := []triple.Triple{
		{Subject: a, Predicate: p, Object: b, Flavor: triple.SPO},
		{Subject: a, Predicate: q, Object: c, Flavor: triple.SPO},
		{Subject: b, Predicate: p, Object: c, Flavor: triple.SPO},
	}
	idx := NewIndex(ts)

	require.Len(t, idx.ByPredicate(p), 2)
	require.Len(t, idx.ByPredicate(q), 1)
	require.Len(t, idx.BySubject(a), 2)
	require.Len(t, idx.BySubject(b), 1)
	require.Empty(t, idx.ByPredicate(resource.IRI("ex:unused")))
}
