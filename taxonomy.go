package xbrl

import (
	"log/slog"

	"github.com/jacoelho/xbrl/internal/concept"
	"github.com/jacoelho/xbrl/internal/ename"
	"github.com/jacoelho/xbrl/internal/relationship"
	"github.com/jacoelho/xbrl/internal/taxobase"
)

// Taxonomy is the query facade over a loaded DTS. It is deeply immutable
// after construction and freely shareable across goroutines; all "mutators"
// (filtering, prohibition resolution) return a new Taxonomy. Every derived
// index is a pure function of (taxonomy base, extra substitution-group map,
// relationship list), built once and eagerly.
type Taxonomy struct {
	base          *taxobase.TaxonomyBase
	extraSubGroup map[ename.EName]ename.EName
	concepts      *concept.Builder
	relationships []relationship.Relationship
	lenient       bool
	logger        *slog.Logger

	conceptDecls        []concept.Declaration
	conceptDeclByEName  map[ename.EName]concept.Declaration
	standardBySource    map[ename.EName][]relationship.Relationship
	interConceptBySrc   map[ename.EName][]relationship.Relationship
	interConceptByTgt   map[ename.EName][]relationship.Relationship
	nonStandardBySource map[FragmentKey][]relationship.Relationship
	nonStandardByTarget map[FragmentKey][]relationship.Relationship
}

func newTaxonomy(base *taxobase.TaxonomyBase, extraSubGroup map[ename.EName]ename.EName, relationships []relationship.Relationship, lenient bool, logger *slog.Logger) (*Taxonomy, error) {
	if logger == nil {
		logger = slog.Default()
	}
	t := &Taxonomy{
		base:                base,
		extraSubGroup:       extraSubGroup,
		concepts:            concept.NewBuilder(base.DerivedSubstitutionGroupMap(), extraSubGroup),
		relationships:       relationships,
		lenient:             lenient,
		logger:              logger,
		conceptDeclByEName:  make(map[ename.EName]concept.Declaration),
		standardBySource:    make(map[ename.EName][]relationship.Relationship),
		interConceptBySrc:   make(map[ename.EName][]relationship.Relationship),
		interConceptByTgt:   make(map[ename.EName][]relationship.Relationship),
		nonStandardBySource: make(map[FragmentKey][]relationship.Relationship),
		nonStandardByTarget: make(map[FragmentKey][]relationship.Relationship),
	}

	for _, decl := range base.GlobalElementDeclarations() {
		classified, ok, err := t.concepts.Classify(decl)
		if err != nil {
			if !lenient {
				return nil, err
			}
			logger.Warn("skipping invalid concept declaration", slog.Any("error", err))
			continue
		}
		if !ok {
			continue
		}
		t.conceptDecls = append(t.conceptDecls, classified)
		if _, seen := t.conceptDeclByEName[classified.Target]; !seen {
			t.conceptDeclByEName[classified.Target] = classified
		}
	}

	for _, rel := range relationships {
		switch {
		case rel.Kind.IsInterConcept():
			t.standardBySource[rel.SourceConcept] = append(t.standardBySource[rel.SourceConcept], rel)
			t.interConceptBySrc[rel.SourceConcept] = append(t.interConceptBySrc[rel.SourceConcept], rel)
			t.interConceptByTgt[rel.TargetConcept] = append(t.interConceptByTgt[rel.TargetConcept], rel)
		case rel.Kind.IsConceptResource():
			t.standardBySource[rel.SourceConcept] = append(t.standardBySource[rel.SourceConcept], rel)
		default:
			t.nonStandardBySource[rel.SourceKey()] = append(t.nonStandardBySource[rel.SourceKey()], rel)
			t.nonStandardByTarget[rel.TargetKey()] = append(t.nonStandardByTarget[rel.TargetKey()], rel)
		}
	}
	return t, nil
}

// DocURIs returns the URIs of the documents in the DTS, in discovery order.
func (t *Taxonomy) DocURIs() []string {
	return t.base.DocURIs()
}

// RootElem returns the root taxonomy element of the document at uri.
func (t *Taxonomy) RootElem(uri string) (TaxonomyElem, bool) {
	return t.base.RootElem(uri)
}

// GuessedScope is the union of root-element scopes with the default
// namespace discarded; earliest document wins a prefix conflict.
func (t *Taxonomy) GuessedScope() Scope {
	return t.base.GuessedScope()
}

// NetSubstitutionGroupMap returns the substitution-group map in effect:
// edges derived from the documents merged with the caller-supplied extras.
func (t *Taxonomy) NetSubstitutionGroupMap() map[EName]EName {
	return t.concepts.SubstitutionGroups()
}

// SubstitutionGroupChain returns the substitution-group ancestors of
// concept, nearest first.
func (t *Taxonomy) SubstitutionGroupChain(concept EName) []EName {
	return t.concepts.Chain(concept)
}

// ConceptDeclarations returns every concept declaration in discovery order.
func (t *Taxonomy) ConceptDeclarations() []ConceptDeclaration {
	return t.conceptDecls
}

// ConceptDeclaration returns the concept declaration for target, if any.
// On duplicate targets the first discovered declaration is returned.
func (t *Taxonomy) ConceptDeclaration(target EName) (ConceptDeclaration, bool) {
	decl, ok := t.conceptDeclByEName[target]
	return decl, ok
}

// Relationships returns the master relationship list in extraction order.
func (t *Taxonomy) Relationships() []Relationship {
	return t.relationships
}
