package relationship

import (
	xbrlerrors "github.com/jacoelho/xbrl/errors"
	"github.com/jacoelho/xbrl/internal/ename"
	"github.com/jacoelho/xbrl/internal/taxoelem"
)

// endpointKind is the coarse kind of an arc end used by the dispatch table.
type endpointKind int

const (
	endpointConcept endpointKind = iota
	endpointResource
	endpointFragment
)

func classifyEndpoint(e taxoelem.Elem) (endpointKind, ename.EName) {
	switch e.Kind() {
	case taxoelem.KindGlobalElementDeclaration:
		if target, ok := taxoelem.TargetEName(e); ok {
			return endpointConcept, target
		}
		return endpointFragment, ename.EName{}
	case taxoelem.KindResource:
		return endpointResource, ename.EName{}
	default:
		return endpointFragment, ename.EName{}
	}
}

type dispatchEntry struct {
	arcName ename.EName
	arcrole string
	kind    Kind
}

// dispatch maps (arc element name, arcrole) pairs inside standard extended
// links to their relationship kinds. Arcrole URIs come from the XBRL 2.1 and
// Dimensions specifications. Endpoints are checked for being concepts or
// resources only; whether a dimensional endpoint is declared as a hypercube
// or dimension item is a property of the concept declaration, validated by
// the concept builder, not of the arc.
var dispatch = []dispatchEntry{
	{taxoelem.LinkDefinitionArc, taxoelem.ArcroleAll, KindHasHypercube},
	{taxoelem.LinkDefinitionArc, taxoelem.ArcroleNotAll, KindHasHypercube},
	{taxoelem.LinkDefinitionArc, taxoelem.ArcroleHypercubeDimension, KindHypercubeDimension},
	{taxoelem.LinkDefinitionArc, taxoelem.ArcroleDimensionDomain, KindDimensionDomain},
	{taxoelem.LinkDefinitionArc, taxoelem.ArcroleDomainMember, KindDomainMember},
	{taxoelem.LinkDefinitionArc, taxoelem.ArcroleDimensionDefault, KindDimensionDefault},
	{taxoelem.LinkPresentationArc, taxoelem.ArcroleParentChild, KindParentChild},
	{taxoelem.LinkCalculationArc, taxoelem.ArcroleSummationItem, KindCalculation},
	{taxoelem.LinkLabelArc, taxoelem.ArcroleConceptLabel, KindConceptLabel},
	{taxoelem.LinkReferenceArc, taxoelem.ArcroleConceptReference, KindConceptReference},
}

// classify determines the relationship kind of one (arc, from, to) triple.
// Inside non-standard links every triple is non-standard. Inside standard
// links a triple outside the dispatch table is an error in strict mode; in
// lenient mode it degrades to the closest super-kind, or is dropped when the
// source end is not a concept.
func classify(link taxoelem.ExtendedLink, arc taxoelem.Arc, from, to taxoelem.Elem, lenient bool) (Kind, ename.EName, ename.EName, bool, error) {
	if !link.IsStandard() {
		return KindNonStandard, ename.EName{}, ename.EName{}, true, nil
	}

	fromKind, fromConcept := classifyEndpoint(from)
	toKind, toConcept := classifyEndpoint(to)

	if fromKind == endpointConcept {
		for _, entry := range dispatch {
			if entry.arcName != arc.Name() || entry.arcrole != arc.Arcrole() {
				continue
			}
			if entry.kind.IsInterConcept() && toKind == endpointConcept {
				return entry.kind, fromConcept, toConcept, true, nil
			}
			if entry.kind.IsConceptResource() && toKind == endpointResource {
				return entry.kind, fromConcept, ename.EName{}, true, nil
			}
		}
	}

	if !lenient {
		return 0, ename.EName{}, ename.EName{}, false, &xbrlerrors.ClassificationError{
			DocURI:  arc.DocURI(),
			Arcrole: arc.Arcrole(),
			Detail:  "no dispatch entry for arc " + arc.Name().String(),
		}
	}
	if fromKind == endpointConcept && toKind == endpointConcept {
		return KindOtherInterConcept, fromConcept, toConcept, true, nil
	}
	if fromKind == endpointConcept && toKind == endpointResource {
		return KindOtherConceptResource, fromConcept, ename.EName{}, true, nil
	}
	return 0, ename.EName{}, ename.EName{}, false, nil
}
