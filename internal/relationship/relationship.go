// Package relationship extracts typed relationships from XLink arcs and
// resolves XBRL prohibition/overriding networks over them.
package relationship

import (
	"github.com/jacoelho/xbrl/internal/ename"
	"github.com/jacoelho/xbrl/internal/taxoelem"
	"github.com/jacoelho/xbrl/internal/xmldom"
)

// Kind tags the relationship variants. The hierarchy is closed: standard
// relationships have a concept source, inter-concept relationships a concept
// target as well, concept-resource relationships a resource target, and
// non-standard relationships are identified by fragment keys only.
type Kind int

const (
	// KindNonStandard is any arc in a non-standard extended link.
	KindNonStandard Kind = iota
	// KindParentChild is presentationArc + parent-child.
	KindParentChild
	// KindCalculation is calculationArc + summation-item.
	KindCalculation
	// KindHasHypercube is definitionArc + all or notAll.
	KindHasHypercube
	// KindHypercubeDimension is definitionArc + hypercube-dimension.
	KindHypercubeDimension
	// KindDimensionDomain is definitionArc + dimension-domain.
	KindDimensionDomain
	// KindDomainMember is definitionArc + domain-member.
	KindDomainMember
	// KindDimensionDefault is definitionArc + dimension-default.
	KindDimensionDefault
	// KindOtherInterConcept is a concept-to-concept arc outside the
	// dispatch table, admitted in lenient mode.
	KindOtherInterConcept
	// KindConceptLabel is labelArc + concept-label.
	KindConceptLabel
	// KindConceptReference is referenceArc + concept-reference.
	KindConceptReference
	// KindOtherConceptResource is a concept-to-resource arc outside the
	// dispatch table, admitted in lenient mode.
	KindOtherConceptResource
)

var kindNames = map[Kind]string{
	KindNonStandard:          "NonStandard",
	KindParentChild:          "ParentChild",
	KindCalculation:          "Calculation",
	KindHasHypercube:         "HasHypercube",
	KindHypercubeDimension:   "HypercubeDimension",
	KindDimensionDomain:      "DimensionDomain",
	KindDomainMember:         "DomainMember",
	KindDimensionDefault:     "DimensionDefault",
	KindOtherInterConcept:    "OtherInterConcept",
	KindConceptLabel:         "ConceptLabel",
	KindConceptReference:     "ConceptReference",
	KindOtherConceptResource: "OtherConceptResource",
}

func (k Kind) String() string {
	return kindNames[k]
}

// IsStandard reports whether the source end is a concept.
func (k Kind) IsStandard() bool {
	return k != KindNonStandard
}

// IsInterConcept reports whether both ends are concepts.
func (k Kind) IsInterConcept() bool {
	switch k {
	case KindParentChild, KindCalculation, KindHasHypercube, KindHypercubeDimension,
		KindDimensionDomain, KindDomainMember, KindDimensionDefault, KindOtherInterConcept:
		return true
	}
	return false
}

// IsConceptResource reports whether the target end is a resource.
func (k Kind) IsConceptResource() bool {
	switch k {
	case KindConceptLabel, KindConceptReference, KindOtherConceptResource:
		return true
	}
	return false
}

// IsDimensional reports whether the kind belongs to the dimensional
// sub-hierarchy of definition arcs.
func (k Kind) IsDimensional() bool {
	switch k {
	case KindHasHypercube, KindHypercubeDimension, KindDimensionDomain,
		KindDomainMember, KindDimensionDefault:
		return true
	}
	return false
}

// Relationship is one typed relationship: exactly one XLink arc together
// with one resolved (from, to) endpoint pair. Values are immutable.
type Relationship struct {
	// Arc is the backing XLink arc.
	Arc taxoelem.Arc
	// Source and Target are the resolved endpoint elements.
	Source taxoelem.Elem
	Target taxoelem.Elem
	// SourceConcept and TargetConcept carry the concept ENames when the
	// matching endpoint is a global element declaration, zero otherwise.
	SourceConcept ename.EName
	TargetConcept ename.EName
	// ELR is the extended link role of the containing link.
	ELR string
	// Arcrole is the arc's xlink:arcrole.
	Arcrole string
	// Kind is the classification of this (arc, from, to) triple.
	Kind Kind
	// EffectiveTargetRole is the resolved target role used for DRS chaining:
	// the arc's xbrldt:targetRole when present, the ELR otherwise.
	EffectiveTargetRole string
}

// SourceKey returns the fragment-key identity of the source end.
func (r Relationship) SourceKey() xmldom.FragmentKey {
	return r.Source.Key()
}

// TargetKey returns the fragment-key identity of the target end.
func (r Relationship) TargetKey() xmldom.FragmentKey {
	return r.Target.Key()
}

// DocURI returns the URI of the document holding the backing arc.
func (r Relationship) DocURI() string {
	return r.Arc.DocURI()
}

// Order returns the arc's order attribute.
func (r Relationship) Order() float64 {
	return r.Arc.Order()
}

// Usable returns the arc's xbrldt:usable attribute, defaulting to true.
func (r Relationship) Usable() bool {
	return r.Arc.Usable()
}

// IsAllRelationship reports whether a has-hypercube uses the all arcrole
// rather than notAll.
func (r Relationship) IsAllRelationship() bool {
	return r.Kind == KindHasHypercube && r.Arcrole == taxoelem.ArcroleAll
}

// IsFollowedBy reports whether next is consecutive with r in DRS traversal:
// r's target end is next's source end and r's effective target role equals
// next's ELR. This is the only admissible definition of consecutiveness.
func (r Relationship) IsFollowedBy(next Relationship) bool {
	if r.EffectiveTargetRole != next.ELR {
		return false
	}
	if !r.TargetConcept.IsZero() && !next.SourceConcept.IsZero() {
		return r.TargetConcept == next.SourceConcept
	}
	return r.TargetKey() == next.SourceKey()
}

// BaseSetKey identifies the base set a relationship belongs to for network
// resolution: linkbase role, arcrole, arc element name, link element name.
type BaseSetKey struct {
	ELR      string
	Arcrole  string
	ArcName  ename.EName
	LinkName ename.EName
}

// BaseSet returns the relationship's base-set key.
func (r Relationship) BaseSet() BaseSetKey {
	return BaseSetKey{
		ELR:      r.ELR,
		Arcrole:  r.Arcrole,
		ArcName:  r.Arc.Name(),
		LinkName: r.Arc.Parent().Name(),
	}
}
