package resource

import "github.com/google/uuid"

// RandomBlankNode returns a fresh blank node with a random, collision-free
// local name, for any anonymous node whose identity doesn't matter: the
// decoder's fallback ontology name, the encoder's rdf:list nodes, and test
// fixtures.
func RandomBlankNode() BNode {
	return BNode(uuid.New().String())
}
