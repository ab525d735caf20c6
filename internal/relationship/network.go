package relationship

import (
	"sort"
	"strings"

	"github.com/jacoelho/xbrl/internal/taxoelem"
	"github.com/jacoelho/xbrl/internal/xmldom"
)

// NetworkFactory computes, per base set, which relationships XBRL 2.1
// network resolution removes: overridden lower-priority arcs and equivalence
// classes prohibited at their winning priority.
type NetworkFactory interface {
	ComputeNetworks(relationships []Relationship) (map[Relationship]bool, error)
}

// StandardNetworkFactory implements XBRL 2.1 prohibition and overriding.
type StandardNetworkFactory struct{}

// equivalenceKey groups relationships of one base set into equivalent-arc
// classes: same endpoints and same non-exempt arc attributes. Exempt
// attributes are use, priority, and the XLink attributes.
type equivalenceKey struct {
	source xmldom.FragmentKey
	target xmldom.FragmentKey
	attrs  string
}

// ComputeNetworks returns the set of relationships removed by network
// resolution. Within each equivalence class the winning priority is the
// highest priority present; a prohibiting arc at the winning priority
// removes the whole class, and arcs below the winning priority are
// overridden. Prohibiting arcs themselves never survive into a network.
func (StandardNetworkFactory) ComputeNetworks(relationships []Relationship) (map[Relationship]bool, error) {
	classes := make(map[BaseSetKey]map[equivalenceKey][]Relationship)
	for _, rel := range relationships {
		base := rel.BaseSet()
		if classes[base] == nil {
			classes[base] = make(map[equivalenceKey][]Relationship)
		}
		key := equivalenceKey{
			source: rel.SourceKey(),
			target: rel.TargetKey(),
			attrs:  nonExemptAttrs(rel.Arc),
		}
		classes[base][key] = append(classes[base][key], rel)
	}

	removed := make(map[Relationship]bool)
	for _, byKey := range classes {
		for _, class := range byKey {
			resolveClass(class, removed)
		}
	}
	return removed, nil
}

func resolveClass(class []Relationship, removed map[Relationship]bool) {
	winning := class[0].Arc.Priority()
	for _, rel := range class[1:] {
		if p := rel.Arc.Priority(); p > winning {
			winning = p
		}
	}
	prohibited := false
	for _, rel := range class {
		if rel.Arc.Priority() == winning && rel.Arc.IsProhibited() {
			prohibited = true
			break
		}
	}
	for _, rel := range class {
		if prohibited || rel.Arc.Priority() < winning || rel.Arc.IsProhibited() {
			removed[rel] = true
		}
	}
}

// nonExemptAttrs renders the arc's attributes minus use, priority, and the
// XLink attributes, in a canonical order.
func nonExemptAttrs(arc taxoelem.Arc) string {
	var parts []string
	for _, attr := range arc.Doc.Attributes(arc.ID) {
		if attr.Name.Namespace.String() == taxoelem.NsXLink {
			continue
		}
		if attr.Name.Namespace.IsEmpty() && (attr.Name.Local == "use" || attr.Name.Local == "priority") {
			continue
		}
		parts = append(parts, attr.Name.String()+"="+attr.Value)
	}
	sort.Strings(parts)
	return strings.Join(parts, "\x00")
}
