package xbrl

import (
	"fmt"

	"github.com/jacoelho/xbrl/internal/relationship"
)

// FilteringDocumentURIs returns a new taxonomy containing only the selected
// documents and the relationships whose backing arcs live in them. The
// current net substitution-group map is forwarded as the extra map of the
// result, so concept classification stays faithful for concepts whose
// substitution-group parents lived in excluded documents.
func (t *Taxonomy) FilteringDocumentURIs(keep ...string) (*Taxonomy, error) {
	keepSet := make(map[string]bool, len(keep))
	for _, uri := range keep {
		keepSet[uri] = true
	}

	filteredBase := t.base.FilteringDocumentURIs(keepSet)
	var surviving []Relationship
	for _, rel := range t.relationships {
		if keepSet[rel.DocURI()] {
			surviving = append(surviving, rel)
		}
	}
	return newTaxonomy(filteredBase, t.NetSubstitutionGroupMap(), surviving, t.lenient, t.logger)
}

// FilteringRelationships returns a new taxonomy retaining the full document
// content but only the relationships satisfying p. Derived indices are
// rebuilt from the surviving relationships.
func (t *Taxonomy) FilteringRelationships(p func(Relationship) bool) (*Taxonomy, error) {
	var surviving []Relationship
	for _, rel := range t.relationships {
		if p(rel) {
			surviving = append(surviving, rel)
		}
	}
	return newTaxonomy(t.base, t.extraSubGroup, surviving, t.lenient, t.logger)
}

// ResolveProhibitionAndOverriding computes XBRL 2.1 network resolution per
// base set with the given factory and returns a new taxonomy with the
// prohibited and overridden relationships excised. A nil factory selects
// StandardNetworkFactory. The operation is idempotent.
func (t *Taxonomy) ResolveProhibitionAndOverriding(factory NetworkFactory) (*Taxonomy, error) {
	if factory == nil {
		factory = relationship.StandardNetworkFactory{}
	}
	removed, err := factory.ComputeNetworks(t.relationships)
	if err != nil {
		return nil, fmt.Errorf("resolve networks: %w", err)
	}
	return t.FilteringRelationships(func(rel Relationship) bool {
		return !removed[rel]
	})
}
