// Package voc implements an RDF namespace (vocabulary) registry.
package voc

import (
	"strings"
	"sync"
)

var (
	mu       sync.RWMutex
	prefixes map[string]string
)

// RegisterPrefix associates a given prefix with a base vocabulary IRI.
func RegisterPrefix(pref string, ns string) {
	mu.Lock()
	if prefixes == nil {
		prefixes = make(map[string]string)
	}
	prefixes[pref] = ns
	mu.Unlock()
}

// ShortIRI replaces a base IRI of a known vocabulary with it's prefix.
//
//	ShortIRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#type") // returns "rdf:type"
func ShortIRI(iri string) string {
	for pref, ns := range prefixes {
		if strings.HasPrefix(iri, ns) {
			return pref + iri[len(ns):]
		}
	}
	return iri
}
