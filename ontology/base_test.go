package ontology

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsReservedRecognizesBuiltins(t *testing.T) {
	require.True(t, IsReserved("http://www.w3.org/2000/01/rdf-schema#Class"))
	require.True(t, IsReserved("http://www.w3.org/2002/07/owl#Restriction"))
	require.True(t, IsReserved("http://purl.org/dc/elements/1.1/title"))
	require.False(t, IsReserved("ex:Dog"))
}

func TestGetBaseIsStableAcrossCalls(t *testing.T) {
	a := getBase()
	b := getBase()
	require.Same(t, a, b)
	require.NotEmpty(t, a.classes)
	require.NotEmpty(t, a.properties)
}
