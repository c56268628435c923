package reason

import (
	"strconv"

	"github.com/cayleygraph/ontoreason/classmodel"
	"github.com/cayleygraph/ontoreason/ontology"
	"github.com/cayleygraph/ontoreason/resource"
	"github.com/cayleygraph/ontoreason/taxonomy"
	"github.com/cayleygraph/ontoreason/voc/rdfs"
	"github.com/cayleygraph/ontoreason/voc/xsd"
)

// datatypeCandidates lists the XSD datatypes BASE registers as classes, used
// to decide whether a class argument should be treated as literal-compatible.
var datatypeCandidates = []string{
	xsd.String, xsd.Boolean, xsd.Integer, xsd.Int, xsd.Long,
	xsd.Decimal, xsd.Float, xsd.Double, xsd.DateTime, xsd.Date, xsd.AnyURI,
}

// MembersOf dispatches across every class shape: restriction, composite
// (union/intersection/complement), enumerated, datarange, literal-compatible
// and plain.
func MembersOf(c resource.Value, onto *ontology.Ontology) []resource.Value {
	if class, ok := onto.ClassModel.Get(c); ok {
		switch class.Kind {
		case classmodel.Restriction:
			return MembersOfRestriction(class, onto)
		case classmodel.Enumerate:
			return enumerateClassMembers(class, onto)
		case classmodel.Intersection:
			return intersectionClassMembers(class, onto)
		case classmodel.Union:
			return unionClassMembers(class, onto)
		case classmodel.Complement:
			return complementClassMembers(class, onto)
		case classmodel.DataRange:
			return dataRangeMembers(class, onto)
		}
	}
	if isLiteralClass(c, onto.ClassModel) || isStringClass(c, onto.ClassModel) || isDatatypeClass(c, onto.ClassModel) {
		return literalCompatibleMembers(c, onto)
	}
	return plainClassMembers(c, onto)
}

func enumerateClassMembers(class *classmodel.Class, onto *ontology.Ontology) []resource.Value {
	out := newSet()
	for _, e := range onto.ClassModel.OneOf.BySubject(class.Resource) {
		out.add(e.Object)
		out.addAll(EnlistSameFacts(e.Object, onto.Data))
	}
	return out.values()
}

func dataRangeMembers(class *classmodel.Class, onto *ontology.Ontology) []resource.Value {
	out := newSet()
	for _, e := range onto.ClassModel.OneOf.BySubject(class.Resource) {
		out.add(e.Object)
	}
	return out.values()
}

func intersectionClassMembers(class *classmodel.Class, onto *ontology.Ontology) []resource.Value {
	children := onto.ClassModel.IntersectionOf.BySubject(class.Resource)
	if len(children) == 0 {
		return nil
	}
	result := newSet()
	result.addAll(MembersOf(children[0].Object, onto))
	for _, child := range children[1:] {
		members := newSet()
		members.addAll(MembersOf(child.Object, onto))
		for fp, v := range result {
			if !members.has(v) {
				delete(result, fp)
			}
		}
	}
	return result.values()
}

func unionClassMembers(class *classmodel.Class, onto *ontology.Ontology) []resource.Value {
	out := newSet()
	for _, e := range onto.ClassModel.UnionOf.BySubject(class.Resource) {
		out.addAll(MembersOf(e.Object, onto))
	}
	return out.values()
}

func complementClassMembers(class *classmodel.Class, onto *ontology.Ontology) []resource.Value {
	excluded := newSet()
	excluded.addAll(MembersOf(class.ComplementOf, onto))
	out := newSet()
	for _, fact := range onto.Data.Facts() {
		if !excluded.has(fact.Resource) {
			out.add(fact.Resource)
		}
	}
	return out.values()
}

func plainClassMembers(c resource.Value, onto *ontology.Ontology) []resource.Value {
	compatible := newSet()
	compatible.add(c)
	compatible.addAll(EnlistSubClasses(c, onto.ClassModel))
	compatible.addAll(EnlistEquivalentClasses(c, onto.ClassModel))

	out := newSet()
	for _, e := range onto.Data.ClassType.Entries() {
		if !compatible.has(e.Object) {
			continue
		}
		out.add(e.Subject)
		out.addAll(EnlistSameFacts(e.Subject, onto.Data))
	}
	return out.values()
}

// IsLiteralCompatible reports whether c denotes rdfs:Literal, an XSD
// datatype, or something equivalent to one of those -- i.e. whether its
// membership is computed over literals rather than facts.
func IsLiteralCompatible(c resource.Value, model *classmodel.ClassModel) bool {
	return isLiteralClass(c, model) || isStringClass(c, model) || isDatatypeClass(c, model)
}

func isLiteralClass(c resource.Value, model *classmodel.ClassModel) bool {
	return classOrEquivalentIs(c, resource.IRI(rdfs.Literal), model)
}

func isStringClass(c resource.Value, model *classmodel.ClassModel) bool {
	return classOrEquivalentIs(c, resource.IRI(xsd.String), model)
}

func isDatatypeClass(c resource.Value, model *classmodel.ClassModel) bool {
	check := newSet()
	check.add(c)
	check.addAll(EnlistEquivalentClasses(c, model))
	for _, cand := range datatypeCandidates {
		if check.has(resource.IRI(cand)) {
			return true
		}
	}
	return false
}

func classOrEquivalentIs(c, target resource.Value, model *classmodel.ClassModel) bool {
	if fingerprintOf(c) == fingerprintOf(target) {
		return true
	}
	for _, eq := range EnlistEquivalentClasses(c, model) {
		if fingerprintOf(eq) == fingerprintOf(target) {
			return true
		}
	}
	return false
}

func literalCompatibleMembers(c resource.Value, onto *ontology.Ontology) []resource.Value {
	literals := allLiterals(onto)

	if isLiteralClass(c, onto.ClassModel) {
		return literals
	}
	if isStringClass(c, onto.ClassModel) {
		out := newSet()
		for _, v := range literals {
			lit := v.(resource.Literal)
			if lit.Datatype == "" || xsd.StringCategory(string(lit.Datatype)) {
				out.add(lit)
			}
		}
		return out.values()
	}

	compatible := newSet()
	compatible.add(c)
	compatible.addAll(EnlistSubClasses(c, onto.ClassModel))
	compatible.addAll(EnlistEquivalentClasses(c, onto.ClassModel))

	out := newSet()
	for _, v := range literals {
		lit := v.(resource.Literal)
		if lit.Datatype == "" {
			continue
		}
		if compatible.has(resource.IRI(lit.Datatype)) {
			out.add(lit)
		}
	}
	return out.values()
}

func allLiterals(onto *ontology.Ontology) []resource.Value {
	out := newSet()
	for _, e := range onto.Data.Assertions.Entries() {
		if _, ok := e.Object.(resource.Literal); ok {
			out.add(e.Object)
		}
	}
	return out.values()
}

// MembersOfRestriction returns the set of facts satisfying restriction r.
func MembersOfRestriction(r *classmodel.Class, onto *ontology.Ontology) []resource.Value {
	predicates := compatiblePredicates(r.OnProperty, onto.PropertyModel)

	fTaxonomy := taxonomy.New()
	for _, pred := range predicates {
		for _, e := range onto.Data.Assertions.SelectByPredicate(pred).Entries() {
			fTaxonomy.Add(e)
		}
	}

	switch r.Variant {
	case classmodel.VariantCardinality:
		return membersCardinality(r, fTaxonomy)
	case classmodel.VariantAllValuesFrom:
		return membersAllOrSome(r.AllValuesFrom, fTaxonomy, onto, true)
	case classmodel.VariantSomeValuesFrom:
		return membersAllOrSome(r.SomeValuesFrom, fTaxonomy, onto, false)
	case classmodel.VariantHasValue:
		return membersHasValue(r, fTaxonomy, onto)
	default:
		return nil
	}
}

func membersCardinality(r *classmodel.Class, f *taxonomy.Taxonomy) []resource.Value {
	counts := map[uint64]int{}
	reps := map[uint64]resource.Value{}
	for _, e := range f.Entries() {
		fp := fingerprintOf(e.Subject)
		counts[fp]++
		reps[fp] = e.Subject
	}

	var out []resource.Value
	for fp, n := range counts {
		if r.MinActive && n < r.Min {
			continue
		}
		if r.MaxActive && n > r.Max {
			continue
		}
		out = append(out, reps[fp])
	}
	return out
}

// membersAllOrSome implements both allValuesFrom (requireNoNeq=true) and
// someValuesFrom (requireNoNeq=false): for each subject, (eq) counts
// assertions whose object qualifies as cls-compatible, (neq) counts those
// that don't.
func membersAllOrSome(cls resource.Value, f *taxonomy.Taxonomy, onto *ontology.Ontology, requireNoNeq bool) []resource.Value {
	compatible := newSet()
	compatible.add(cls)
	compatible.addAll(EnlistSubClasses(cls, onto.ClassModel))
	compatible.addAll(EnlistEquivalentClasses(cls, onto.ClassModel))

	eq := map[uint64]int{}
	neq := map[uint64]int{}
	reps := map[uint64]resource.Value{}

	for _, e := range f.Entries() {
		sfp := fingerprintOf(e.Subject)
		reps[sfp] = e.Subject
		if objectQualifies(e.Object, compatible, onto) {
			eq[sfp]++
		} else {
			neq[sfp]++
		}
	}

	var out []resource.Value
	for sfp, rep := range reps {
		if eq[sfp] < 1 {
			continue
		}
		if requireNoNeq && neq[sfp] > 0 {
			continue
		}
		out = append(out, rep)
	}
	return out
}

func objectQualifies(obj resource.Value, compatible set, onto *ontology.Ontology) bool {
	for _, e := range onto.Data.ClassType.BySubject(obj) {
		cls := e.Object
		if compatible.has(cls) {
			return true
		}
		for _, sub := range EnlistSubClasses(cls, onto.ClassModel) {
			if compatible.has(sub) {
				return true
			}
		}
		for _, eq := range EnlistEquivalentClasses(cls, onto.ClassModel) {
			if compatible.has(eq) {
				return true
			}
		}
	}
	return false
}

func membersHasValue(r *classmodel.Class, f *taxonomy.Taxonomy, onto *ontology.Ontology) []resource.Value {
	out := newSet()
	if lit, ok := r.HasValue.(resource.Literal); ok {
		for _, e := range f.Entries() {
			olit, ok := e.Object.(resource.Literal)
			if !ok {
				continue
			}
			if literalsEqual(olit, lit) {
				out.add(e.Subject)
			}
		}
		return out.values()
	}

	compatible := newSet()
	compatible.add(r.HasValue)
	compatible.addAll(EnlistSameFacts(r.HasValue, onto.Data))

	for _, e := range f.Entries() {
		if compatible.has(e.Object) {
			out.add(e.Subject)
		}
	}
	return out.values()
}

// literalsEqual compares two literals under RDF-term ordering: numeric
// datatypes compare as numbers, everything else compares lexically. Parse
// failures are treated as a non-match rather than propagated.
func literalsEqual(a, b resource.Literal) bool {
	if xsd.NumericCategory(string(a.Datatype)) && xsd.NumericCategory(string(b.Datatype)) {
		af, aerr := strconv.ParseFloat(a.Lexical, 64)
		bf, berr := strconv.ParseFloat(b.Lexical, 64)
		if aerr != nil || berr != nil {
			return false
		}
		return af == bf
	}
	return a.Lexical == b.Lexical
}
