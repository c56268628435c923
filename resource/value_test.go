package resource

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFingerprintDeterministic(t *testing.T) {
	a := IRI("http://example.org/Foo")
	b := IRI("http://example.org/Foo")
	c := IRI("http://example.org/Bar")
	require.Equal(t, a.Fingerprint(), b.Fingerprint())
	require.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestLiteralString(t *testing.T) {
	plain := Literal{Lexical: "hi"}
	require.Equal(t, `"hi"`, plain.String())

	typed := Literal{Lexical: "1", Datatype: IRI("http://www.w3.org/2001/XMLSchema#integer")}
	require.Equal(t, `"1"^^<http://www.w3.org/2001/XMLSchema#integer>`, typed.String())

	lang := Literal{Lexical: "bonjour", Lang: "fr"}
	require.Equal(t, `"bonjour"@fr`, lang.String())
}

func TestEqual(t *testing.T) {
	require.True(t, Equal(IRI("a"), IRI("a")))
	require.False(t, Equal(IRI("a"), IRI("b")))
	require.False(t, Equal(nil, IRI("a")))
	require.False(t, Equal(IRI("a"), BNode("a")))
}

func TestRandomBlankNodeUnique(t *testing.T) {
	a := RandomBlankNode()
	b := RandomBlankNode()
	require.NotEqual(t, a, b)
}
