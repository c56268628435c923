package voc

import "testing"

func TestShortIRI(t *testing.T) {
	RegisterPrefix("ex:", "http://example.com/")

	if s := ShortIRI("http://example.com/name"); s != "ex:name" {
		t.Fatal("unexpected short iri:", s)
	}
}

func TestShortIRIUnknownNamespacePassesThrough(t *testing.T) {
	if s := ShortIRI("http://unregistered.example/thing"); s != "http://unregistered.example/thing" {
		t.Fatal("unexpected short iri:", s)
	}
}
