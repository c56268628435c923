package codec

import (
	"strconv"

	"github.com/cayleygraph/ontoreason/classmodel"
	"github.com/cayleygraph/ontoreason/inference"
	"github.com/cayleygraph/ontoreason/ontology"
	"github.com/cayleygraph/ontoreason/propertymodel"
	"github.com/cayleygraph/ontoreason/reason"
	"github.com/cayleygraph/ontoreason/resource"
	"github.com/cayleygraph/ontoreason/rlog"
	"github.com/cayleygraph/ontoreason/taxonomy"
	"github.com/cayleygraph/ontoreason/triple"
	"github.com/cayleygraph/ontoreason/voc/owl"
	"github.com/cayleygraph/ontoreason/voc/rdf"
	"github.com/cayleygraph/ontoreason/voc/rdfs"
	"github.com/cayleygraph/ontoreason/voc/xsd"
)

// FromGraph decodes g into a populated Ontology, running the fixed
// fifteen-pass pipeline: expand with BASE/DC, prefetch per-predicate
// indexes, locate the ontology header, populate the property and class
// models, resolve composites and restrictions, materialize facts and
// assertions, capture whatever's left as custom relations/annotations, and
// finally unexpand. Decoding never aborts: malformed axioms are skipped
// with a warning via rlog.
func FromGraph(g *triple.Graph) (*ontology.Ontology, error) {
	name := resource.Value(resource.RandomBlankNode())
	if g != nil && g.Context != nil {
		name = g.Context
	}
	onto, err := ontology.New(name)
	if err != nil {
		return nil, err
	}
	onto.Expand()
	defer onto.Unexpand()

	var triples []triple.Triple
	if g != nil {
		triples = g.Triples
	}
	idx := inference.NewIndex(triples)
	used := newConsumed()

	decodeOntologyHeader(onto, idx, used)
	decodePropertyModel(onto, idx, used)
	decodeClassModel(onto, idx, used)
	decodeComposites(onto, idx, used)
	decodeFacts(onto, idx, used)
	decodeRestrictionRefinement(onto, idx, used)
	decodeDomainRange(onto, idx, used)
	decodePropertyTaxonomies(onto, idx, used)
	decodeClassTaxonomies(onto, idx, used)
	decodeSameDifferent(onto, idx, used)
	decodeAssertions(onto, idx, used)
	decodeCustomRelations(onto, triples, used)

	return onto, nil
}

// decodeOntologyHeader implements pipeline step 3: find the rdf:type
// owl:Ontology triple and adopt its subject as the ontology's name.
func decodeOntologyHeader(onto *ontology.Ontology, idx *inference.Index, used consumed) {
	for _, t := range idx.ByPredicate(resource.IRI(rdf.Type)) {
		if resource.Equal(t.Object, resource.IRI(owl.Ontology)) {
			onto.Name = t.Subject
			used.mark(t)
			return
		}
	}
}

// decodePropertyModel implements pipeline step 4: classify properties by
// their rdf:type declarations, opportunistically promoting a property to
// ObjectProperty when it's declared Symmetric/Transitive/InverseFunctional
// but wasn't separately declared ObjectProperty.
func decodePropertyModel(onto *ontology.Ontology, idx *inference.Index, used consumed) {
	for _, t := range idx.ByPredicate(resource.IRI(rdf.Type)) {
		oiri, ok := asIRI(t.Object)
		if !ok {
			continue
		}
		switch string(oiri) {
		case owl.AnnotationProperty:
			p := onto.PropertyModel.GetOrCreate(t.Subject)
			p.Kind = propertymodel.Annotation
			used.mark(t)
		case owl.DatatypeProperty:
			p := onto.PropertyModel.GetOrCreate(t.Subject)
			p.Kind = propertymodel.Datatype
			used.mark(t)
		case owl.ObjectProperty:
			p := onto.PropertyModel.GetOrCreate(t.Subject)
			p.Kind = propertymodel.Object
			used.mark(t)
		case owl.SymmetricProperty:
			p := onto.PropertyModel.GetOrCreate(t.Subject)
			p.Symmetric = true
			p.Kind = propertymodel.Object
			used.mark(t)
		case owl.TransitiveProperty:
			p := onto.PropertyModel.GetOrCreate(t.Subject)
			p.Transitive = true
			p.Kind = propertymodel.Object
			used.mark(t)
		case owl.InverseFunctionalProperty:
			p := onto.PropertyModel.GetOrCreate(t.Subject)
			p.InverseFunctional = true
			p.Kind = propertymodel.Object
			used.mark(t)
		case owl.FunctionalProperty:
			p := onto.PropertyModel.GetOrCreate(t.Subject)
			p.Functional = true
			used.mark(t)
		case owl.DeprecatedProperty:
			p := onto.PropertyModel.GetOrCreate(t.Subject)
			p.Deprecated = true
			used.mark(t)
		}
	}
}

// decodeClassModel implements pipeline step 5: OWL Class, DeprecatedClass,
// Restriction (with the on-property check) and DataRange declarations. A
// restriction is only promoted to Kind Restriction once its on-property
// resolves to a registered, non-annotation, non-reserved property; otherwise
// it stays a plain class and the axiom is warned about and effectively
// skipped.
func decodeClassModel(onto *ontology.Ontology, idx *inference.Index, used consumed) {
	restrictionSubjects := make(map[uint64]bool)
	for _, t := range idx.ByPredicate(resource.IRI(rdf.Type)) {
		if used.has(t) {
			continue
		}
		oiri, ok := asIRI(t.Object)
		if !ok {
			continue
		}
		switch string(oiri) {
		case owl.Class:
			onto.ClassModel.GetOrCreate(t.Subject)
			used.mark(t)
		case owl.DeprecatedClass:
			c := onto.ClassModel.GetOrCreate(t.Subject)
			c.Deprecated = true
			used.mark(t)
		case owl.DataRange:
			c := onto.ClassModel.GetOrCreate(t.Subject)
			c.Kind = classmodel.DataRange
			used.mark(t)
		case owl.Restriction:
			c := onto.ClassModel.GetOrCreate(t.Subject)
			restrictionSubjects[fpOrZero(c.Resource)] = true
			used.mark(t)
		}
	}

	for _, t := range idx.ByPredicate(resource.IRI(owl.OnProperty)) {
		if !restrictionSubjects[fpOrZero(t.Subject)] {
			continue
		}
		c, ok := onto.ClassModel.Get(t.Subject)
		if !ok {
			continue
		}
		piri, isIRI := asIRI(t.Object)
		if isIRI && ontology.IsReserved(string(piri)) {
			rlog.Warningf("codec: restriction %s on reserved property %s skipped", shortString(c.Resource), shortString(t.Object))
			continue
		}
		prop, exists := onto.PropertyModel.Get(t.Object)
		if !exists {
			rlog.Warningf("codec: restriction %s on undefined property %s skipped", shortString(c.Resource), shortString(t.Object))
			continue
		}
		if prop.Kind == propertymodel.Annotation {
			rlog.Warningf("codec: restriction %s on annotation property %s skipped", shortString(c.Resource), shortString(t.Object))
			continue
		}
		c.Kind = classmodel.Restriction
		c.OnProperty = t.Object
		used.mark(t)
	}
}

// decodeComposites implements pipeline step 6: unionOf/intersectionOf
// reclassify the subject and walk the rdf:list of member classes;
// complementOf reclassifies and records the single target; oneOf
// reclassifies to Enumerate or DataRange depending on whether its first
// member is a fact or a literal (Open Question (a): first-declared variant
// wins, conflicting redeclaration warns).
func decodeComposites(onto *ontology.Ontology, idx *inference.Index, used consumed) {
	decodeListComposite(onto, idx, used, owl.UnionOf, classmodel.Union, onto.ClassModel.UnionOf)
	decodeListComposite(onto, idx, used, owl.IntersectionOf, classmodel.Intersection, onto.ClassModel.IntersectionOf)
	decodeOneOf(onto, idx, used)
	decodeComplementOf(onto, idx, used)
}

func decodeListComposite(onto *ontology.Ontology, idx *inference.Index, used consumed, pred string, kind classmodel.Kind, tax *taxonomy.Taxonomy) {
	for _, t := range idx.ByPredicate(resource.IRI(pred)) {
		c := onto.ClassModel.GetOrCreate(t.Subject)
		if !reclassifiable(c.Kind, kind) {
			rlog.Warningf("codec: class %s already has a conflicting kind, %s declaration ignored", shortString(c.Resource), pred)
			continue
		}
		c.Kind = kind
		for _, m := range walkList(t.Object, idx) {
			if !onto.ClassModel.Has(m) {
				rlog.Warningf("codec: composite class %s member %s undefined, skipped", shortString(c.Resource), shortString(m))
				continue
			}
			tax.Add(taxonomy.Entry{Subject: t.Subject, Object: m})
		}
		used.mark(t)
	}
}

func decodeOneOf(onto *ontology.Ontology, idx *inference.Index, used consumed) {
	for _, t := range idx.ByPredicate(resource.IRI(owl.OneOf)) {
		c := onto.ClassModel.GetOrCreate(t.Subject)
		members := walkList(t.Object, idx)
		if len(members) == 0 {
			used.mark(t)
			continue
		}
		_, firstIsLiteral := members[0].(resource.Literal)
		wantKind := classmodel.Enumerate
		if firstIsLiteral {
			wantKind = classmodel.DataRange
		}
		switch c.Kind {
		case classmodel.Enumerate, classmodel.DataRange:
			if c.Kind != wantKind {
				rlog.Warningf("codec: class %s already declared as the other oneOf variant, keeping first-declared kind", shortString(c.Resource))
				wantKind = c.Kind
			}
		case classmodel.PlainOWL, classmodel.PlainRDFS:
			// no prior declaration; adopt the inferred kind below.
		default:
			rlog.Warningf("codec: class %s already has a conflicting kind, oneOf declaration ignored", shortString(c.Resource))
			continue
		}
		c.Kind = wantKind
		for _, m := range members {
			if _, isLit := m.(resource.Literal); !isLit {
				onto.Data.GetOrCreate(m)
			}
			onto.ClassModel.OneOf.Add(taxonomy.Entry{Subject: t.Subject, Object: m})
		}
		used.mark(t)
	}
}

func decodeComplementOf(onto *ontology.Ontology, idx *inference.Index, used consumed) {
	for _, t := range idx.ByPredicate(resource.IRI(owl.ComplementOf)) {
		c := onto.ClassModel.GetOrCreate(t.Subject)
		if !reclassifiable(c.Kind, classmodel.Complement) {
			rlog.Warningf("codec: class %s already has a conflicting kind, complementOf declaration ignored", shortString(c.Resource))
			continue
		}
		if !onto.ClassModel.Has(t.Object) {
			rlog.Warningf("codec: complement target %s undefined for class %s", shortString(t.Object), shortString(c.Resource))
			continue
		}
		c.Kind = classmodel.Complement
		c.ComplementOf = t.Object
		used.mark(t)
	}
}

// reclassifiable reports whether a class currently holding `from` may be
// reclassified to `to`: always true from an as-yet-undetermined plain kind,
// a no-op if it already holds `to`, and a conflict otherwise.
func reclassifiable(from, to classmodel.Kind) bool {
	if from == to {
		return true
	}
	return from == classmodel.PlainOWL || from == classmodel.PlainRDFS
}

// decodeFacts implements pipeline step 7: every rdf:type triple not already
// consumed by the class/property model passes designates its subject as a
// fact, provided the object isn't a built-in or literal-compatible class.
// The target class is auto-created if it wasn't declared elsewhere --
// individuals are routinely typed against classes that are never otherwise
// mentioned.
func decodeFacts(onto *ontology.Ontology, idx *inference.Index, used consumed) {
	for _, t := range idx.ByPredicate(resource.IRI(rdf.Type)) {
		if used.has(t) {
			continue
		}
		ciri, isIRI := asIRI(t.Object)
		if isIRI && ontology.IsReserved(string(ciri)) {
			continue
		}
		cls := onto.ClassModel.GetOrCreate(t.Object)
		if reason.IsLiteralCompatible(cls.Resource, onto.ClassModel) {
			continue
		}
		onto.Data.GetOrCreate(t.Subject)
		onto.Data.ClassType.Add(taxonomy.Entry{Subject: t.Subject, Object: t.Object})
		used.mark(t)
	}
}

// decodeRestrictionRefinement implements pipeline step 8: probe
// cardinality/hasValue/allValuesFrom/someValuesFrom triples in that order;
// the first match refines the restriction's variant via
// Class.RefineVariant, which itself rejects a conflicting second variant.
func decodeRestrictionRefinement(onto *ontology.Ontology, idx *inference.Index, used consumed) {
	for _, c := range onto.ClassModel.AllClasses() {
		if c.Kind != classmodel.Restriction {
			continue
		}
		triples := idx.BySubject(c.Resource)
		var cardT, minT, maxT, hasValT, allT, someT *triple.Triple
		for i := range triples {
			t := &triples[i]
			switch {
			case resource.Equal(t.Predicate, resource.IRI(owl.Cardinality)):
				cardT = t
			case resource.Equal(t.Predicate, resource.IRI(owl.MinCardinality)):
				minT = t
			case resource.Equal(t.Predicate, resource.IRI(owl.MaxCardinality)):
				maxT = t
			case resource.Equal(t.Predicate, resource.IRI(owl.HasValue)):
				hasValT = t
			case resource.Equal(t.Predicate, resource.IRI(owl.AllValuesFrom)):
				allT = t
			case resource.Equal(t.Predicate, resource.IRI(owl.SomeValuesFrom)):
				someT = t
			}
		}
		switch {
		case cardT != nil || minT != nil || maxT != nil:
			refineCardinality(c, cardT, minT, maxT, used)
		case hasValT != nil:
			refineHasValue(c, hasValT, used)
		case allT != nil:
			refineAllValuesFrom(onto, c, allT, used)
		case someT != nil:
			refineSomeValuesFrom(onto, c, someT, used)
		}
	}
}

func refineCardinality(c *classmodel.Class, cardT, minT, maxT *triple.Triple, used consumed) {
	if !c.RefineVariant(classmodel.VariantCardinality) {
		rlog.Warningf("codec: restriction %s already refined to a different variant, cardinality declaration ignored", shortString(c.Resource))
		return
	}
	if cardT != nil {
		if n, ok := parseCardinalityInt(cardT.Object); ok {
			c.Min, c.Max = n, n
			c.MinActive, c.MaxActive = true, true
			used.mark(*cardT)
		} else {
			rlog.Warningf("codec: non-integer cardinality literal on restriction %s", shortString(c.Resource))
		}
	}
	if minT != nil {
		if n, ok := parseCardinalityInt(minT.Object); ok {
			c.Min = n
			c.MinActive = true
			used.mark(*minT)
		} else {
			rlog.Warningf("codec: non-integer minCardinality literal on restriction %s", shortString(c.Resource))
		}
	}
	if maxT != nil {
		if n, ok := parseCardinalityInt(maxT.Object); ok {
			c.Max = n
			c.MaxActive = true
			used.mark(*maxT)
		} else {
			rlog.Warningf("codec: non-integer maxCardinality literal on restriction %s", shortString(c.Resource))
		}
	}
}

func refineHasValue(c *classmodel.Class, t *triple.Triple, used consumed) {
	if !c.RefineVariant(classmodel.VariantHasValue) {
		rlog.Warningf("codec: restriction %s already refined to a different variant, hasValue declaration ignored", shortString(c.Resource))
		return
	}
	c.HasValue = t.Object
	used.mark(*t)
}

func refineAllValuesFrom(onto *ontology.Ontology, c *classmodel.Class, t *triple.Triple, used consumed) {
	if !c.RefineVariant(classmodel.VariantAllValuesFrom) {
		rlog.Warningf("codec: restriction %s already refined to a different variant, allValuesFrom declaration ignored", shortString(c.Resource))
		return
	}
	c.AllValuesFrom = onto.ClassModel.GetOrCreate(t.Object).Resource
	used.mark(*t)
}

func refineSomeValuesFrom(onto *ontology.Ontology, c *classmodel.Class, t *triple.Triple, used consumed) {
	if !c.RefineVariant(classmodel.VariantSomeValuesFrom) {
		rlog.Warningf("codec: restriction %s already refined to a different variant, someValuesFrom declaration ignored", shortString(c.Resource))
		return
	}
	c.SomeValuesFrom = onto.ClassModel.GetOrCreate(t.Object).Resource
	used.mark(*t)
}

// parseCardinalityInt parses a cardinality literal, which must be a plain
// literal or one typed with a numeric XSD category, into a non-negative int.
func parseCardinalityInt(v resource.Value) (int, bool) {
	lit, ok := v.(resource.Literal)
	if !ok {
		return 0, false
	}
	if lit.Datatype != "" && !xsd.NumericCategory(string(lit.Datatype)) {
		return 0, false
	}
	n, err := strconv.Atoi(lit.Lexical)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// decodeDomainRange implements pipeline step 9: attach the referenced class
// to each user property's Domain/Range.
func decodeDomainRange(onto *ontology.Ontology, idx *inference.Index, used consumed) {
	for _, t := range idx.ByPredicate(resource.IRI(rdfs.Domain)) {
		p := onto.PropertyModel.GetOrCreate(t.Subject)
		p.Domain = onto.ClassModel.GetOrCreate(t.Object).Resource
		used.mark(t)
	}
	for _, t := range idx.ByPredicate(resource.IRI(rdfs.Range)) {
		p := onto.PropertyModel.GetOrCreate(t.Subject)
		p.Range = onto.ClassModel.GetOrCreate(t.Object).Resource
		used.mark(t)
	}
}

// decodePropertyTaxonomies implements pipeline step 10: subPropertyOf and
// equivalentProperty require both ends to share a kind; inverseOf requires
// both ends to be object properties.
func decodePropertyTaxonomies(onto *ontology.Ontology, idx *inference.Index, used consumed) {
	addPropertyRelation(onto, idx, used, rdfs.SubPropertyOf, onto.PropertyModel.SubPropertyOf, false)
	addPropertyRelation(onto, idx, used, owl.EquivalentProperty, onto.PropertyModel.EquivalentProperty, false)
	addPropertyRelation(onto, idx, used, owl.InverseOf, onto.PropertyModel.InverseOf, true)
}

func addPropertyRelation(onto *ontology.Ontology, idx *inference.Index, used consumed, pred string, tax *taxonomy.Taxonomy, objectOnly bool) {
	for _, t := range idx.ByPredicate(resource.IRI(pred)) {
		p1 := onto.PropertyModel.GetOrCreate(t.Subject)
		p2 := onto.PropertyModel.GetOrCreate(t.Object)
		if objectOnly {
			if p1.Kind != propertymodel.Object || p2.Kind != propertymodel.Object {
				rlog.Warningf("codec: %s between non-object properties %s, %s skipped", pred, shortString(t.Subject), shortString(t.Object))
				continue
			}
		} else if p1.Kind != p2.Kind {
			rlog.Warningf("codec: %s between incompatible property kinds %s, %s skipped", pred, shortString(t.Subject), shortString(t.Object))
			continue
		}
		tax.Add(taxonomy.Entry{Subject: t.Subject, Predicate: t.Predicate, Object: t.Object})
		used.mark(t)
	}
}

// decodeClassTaxonomies implements pipeline step 11: subClassOf,
// equivalentClass and disjointWith, unconditionally -- the reasoner
// tolerates cycles and malformed subsumption, it does not validate them at
// decode time.
func decodeClassTaxonomies(onto *ontology.Ontology, idx *inference.Index, used consumed) {
	addClassRelation(onto, idx, used, rdfs.SubClassOf, onto.ClassModel.SubClassOf)
	addClassRelation(onto, idx, used, owl.EquivalentClass, onto.ClassModel.EquivalentClass)
	addClassRelation(onto, idx, used, owl.DisjointWith, onto.ClassModel.DisjointWith)
}

func addClassRelation(onto *ontology.Ontology, idx *inference.Index, used consumed, pred string, tax *taxonomy.Taxonomy) {
	for _, t := range idx.ByPredicate(resource.IRI(pred)) {
		onto.ClassModel.GetOrCreate(t.Subject)
		onto.ClassModel.GetOrCreate(t.Object)
		tax.Add(taxonomy.Entry{Subject: t.Subject, Predicate: t.Predicate, Object: t.Object})
		used.mark(t)
	}
}

// decodeSameDifferent implements pipeline step 12: sameAs and
// differentFrom, auto-creating facts on both ends.
func decodeSameDifferent(onto *ontology.Ontology, idx *inference.Index, used consumed) {
	addFactRelation(onto, idx, used, owl.SameAs, onto.Data.SameAs)
	addFactRelation(onto, idx, used, owl.DifferentFrom, onto.Data.DifferentFrom)
}

func addFactRelation(onto *ontology.Ontology, idx *inference.Index, used consumed, pred string, tax *taxonomy.Taxonomy) {
	for _, t := range idx.ByPredicate(resource.IRI(pred)) {
		onto.Data.GetOrCreate(t.Subject)
		onto.Data.GetOrCreate(t.Object)
		tax.Add(taxonomy.Entry{Subject: t.Subject, Predicate: t.Predicate, Object: t.Object})
		used.mark(t)
	}
}

// decodeAssertions implements pipeline step 13: every non-annotation,
// non-reserved property's triples become Assertions entries, rejecting
// objects of the wrong shape for the property's kind.
func decodeAssertions(onto *ontology.Ontology, idx *inference.Index, used consumed) {
	for _, p := range onto.PropertyModel.AllProperties() {
		if p.Kind == propertymodel.Annotation {
			continue
		}
		if piri, ok := asIRI(p.Resource); ok && ontology.IsReserved(string(piri)) {
			continue
		}
		for _, t := range idx.ByPredicate(p.Resource) {
			if used.has(t) {
				continue
			}
			_, isLiteral := t.Object.(resource.Literal)
			if p.Kind == propertymodel.Object && isLiteral {
				rlog.Warningf("codec: object property %s rejects literal object %s", shortString(p.Resource), shortString(t.Object))
				continue
			}
			if p.Kind == propertymodel.Datatype && !isLiteral {
				rlog.Warningf("codec: datatype property %s rejects resource object %s", shortString(p.Resource), shortString(t.Object))
				continue
			}
			onto.Data.GetOrCreate(t.Subject)
			if !isLiteral {
				onto.Data.GetOrCreate(t.Object)
			}
			onto.Data.Assertions.Add(taxonomy.Entry{Subject: t.Subject, Predicate: t.Predicate, Object: t.Object})
			used.mark(t)
		}
	}
}

// decodeCustomRelations implements pipeline step 14: whatever's left once
// every structural pass has run gets a durable home, either as an
// ontology/class/property/fact-level annotation (when the predicate is a
// declared annotation property) or as a custom relation.
func decodeCustomRelations(onto *ontology.Ontology, all []triple.Triple, used consumed) {
	listPreds := map[uint64]bool{
		resource.IRI(rdf.First).Fingerprint(): true,
		resource.IRI(rdf.Rest).Fingerprint():  true,
	}
	for _, t := range all {
		if used.has(t) {
			continue
		}
		if t.Predicate == nil || listPreds[t.Predicate.Fingerprint()] {
			continue
		}
		if piri, ok := asIRI(t.Predicate); ok && ontology.IsReserved(string(piri)) {
			continue
		}
		if prop, ok := onto.PropertyModel.Get(t.Predicate); ok && prop.Kind == propertymodel.Annotation {
			onto.Annotations.Add(taxonomy.Entry{Subject: t.Subject, Predicate: t.Predicate, Object: t.Object})
		} else {
			onto.CustomRelations.Add(taxonomy.Entry{Subject: t.Subject, Predicate: t.Predicate, Object: t.Object})
		}
		used.mark(t)
	}
}
