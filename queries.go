package xbrl

import (
	xbrlerrors "github.com/jacoelho/xbrl/errors"
)

// GetConceptDeclaration returns the concept declaration for target and fails
// with a MissingElementError when it is absent.
func (t *Taxonomy) GetConceptDeclaration(target EName) (ConceptDeclaration, error) {
	decl, ok := t.ConceptDeclaration(target)
	if !ok {
		return ConceptDeclaration{}, &xbrlerrors.MissingElementError{What: "concept declaration " + target.String()}
	}
	return decl, nil
}

// FindAllRelationshipsOfKind scans the master list for relationships of the
// given kind, preserving extraction order.
func (t *Taxonomy) FindAllRelationshipsOfKind(kind RelationshipKind) []Relationship {
	var out []Relationship
	for _, rel := range t.relationships {
		if rel.Kind == kind {
			out = append(out, rel)
		}
	}
	return out
}

// FindAllInterConceptRelationships scans the master list for relationships
// with concepts at both ends, preserving extraction order.
func (t *Taxonomy) FindAllInterConceptRelationships() []Relationship {
	var out []Relationship
	for _, rel := range t.relationships {
		if rel.Kind.IsInterConcept() {
			out = append(out, rel)
		}
	}
	return out
}

// FindStandardOutgoing returns the standard relationships whose source
// concept is source, in extraction order.
func (t *Taxonomy) FindStandardOutgoing(source EName) []Relationship {
	return t.standardBySource[source]
}

// FindOutgoing returns the inter-concept relationships of the given kind
// whose source concept is source.
func (t *Taxonomy) FindOutgoing(source EName, kind RelationshipKind) []Relationship {
	return filterKind(t.interConceptBySrc[source], kind)
}

// FindIncoming returns the inter-concept relationships of the given kind
// whose target concept is target.
func (t *Taxonomy) FindIncoming(target EName, kind RelationshipKind) []Relationship {
	return filterKind(t.interConceptByTgt[target], kind)
}

// FindInterConceptOutgoing returns every inter-concept relationship whose
// source concept is source.
func (t *Taxonomy) FindInterConceptOutgoing(source EName) []Relationship {
	return t.interConceptBySrc[source]
}

// FindInterConceptIncoming returns every inter-concept relationship whose
// target concept is target.
func (t *Taxonomy) FindInterConceptIncoming(target EName) []Relationship {
	return t.interConceptByTgt[target]
}

// FindNonStandardOutgoing returns the non-standard relationships whose
// source fragment key is source.
func (t *Taxonomy) FindNonStandardOutgoing(source FragmentKey) []Relationship {
	return t.nonStandardBySource[source]
}

// FindNonStandardIncoming returns the non-standard relationships whose
// target fragment key is target.
func (t *Taxonomy) FindNonStandardIncoming(target FragmentKey) []Relationship {
	return t.nonStandardByTarget[target]
}

func filterKind(relationships []Relationship, kind RelationshipKind) []Relationship {
	var out []Relationship
	for _, rel := range relationships {
		if rel.Kind == kind {
			out = append(out, rel)
		}
	}
	return out
}
