// Package concept classifies global element declarations into the XBRL
// concept kinds via substitution-group closure.
package concept

import (
	xbrlerrors "github.com/jacoelho/xbrl/errors"
	"github.com/jacoelho/xbrl/internal/ename"
	"github.com/jacoelho/xbrl/internal/taxoelem"
)

// Kind tags the concept-declaration variants.
type Kind int

const (
	// KindPrimaryItem is an item that is neither hypercube nor dimension.
	KindPrimaryItem Kind = iota
	// KindTuple is a concept in substitution group xbrli:tuple.
	KindTuple
	// KindHypercube is an item in substitution group xbrldt:hypercubeItem.
	KindHypercube
	// KindExplicitDimension is a dimension without xbrldt:typedDomainRef.
	KindExplicitDimension
	// KindTypedDimension is a dimension with xbrldt:typedDomainRef.
	KindTypedDimension
)

var kindNames = map[Kind]string{
	KindPrimaryItem:       "PrimaryItem",
	KindTuple:             "Tuple",
	KindHypercube:         "Hypercube",
	KindExplicitDimension: "ExplicitDimension",
	KindTypedDimension:    "TypedDimension",
}

func (k Kind) String() string {
	return kindNames[k]
}

// IsDimension reports whether k is a dimension kind.
func (k Kind) IsDimension() bool {
	return k == KindExplicitDimension || k == KindTypedDimension
}

// Declaration is a classified concept declaration.
type Declaration struct {
	// Target is the expanded name the declaration introduces.
	Target ename.EName
	// Kind is the concept classification.
	Kind Kind
	// Elem is the backing global element declaration.
	Elem taxoelem.Elem
}

// IsAbstract reports whether the backing declaration is abstract.
func (d Declaration) IsAbstract() bool {
	return taxoelem.IsAbstract(d.Elem)
}

// TypedDomainRef returns the xbrldt:typedDomainRef of a typed dimension.
func (d Declaration) TypedDomainRef() (string, bool) {
	return taxoelem.TypedDomainRef(d.Elem)
}

// Builder classifies declarations against a net substitution-group map.
type Builder struct {
	subGroups map[ename.EName]ename.EName
}

// NewBuilder returns a builder over the net substitution-group map: the map
// derived from the documents merged with caller-supplied extras, extras
// winning on conflict.
func NewBuilder(derived, extra map[ename.EName]ename.EName) *Builder {
	net := make(map[ename.EName]ename.EName, len(derived)+len(extra))
	for child, parent := range derived {
		net[child] = parent
	}
	for child, parent := range extra {
		net[child] = parent
	}
	return &Builder{subGroups: net}
}

// SubstitutionGroups returns the net substitution-group map.
func (b *Builder) SubstitutionGroups() map[ename.EName]ename.EName {
	return b.subGroups
}

// Chain returns the substitution-group ancestors of target, nearest first,
// excluding target itself. Cycles terminate the chain.
func (b *Builder) Chain(target ename.EName) []ename.EName {
	var chain []ename.EName
	seen := map[ename.EName]bool{target: true}
	current := target
	for {
		parent, ok := b.subGroups[current]
		if !ok || seen[parent] {
			return chain
		}
		seen[parent] = true
		chain = append(chain, parent)
		current = parent
	}
}

// Reaches reports whether target's substitution-group chain, excluding
// target itself, reaches root. Cycles are non-reaching.
func (b *Builder) Reaches(target, root ename.EName) bool {
	for _, ancestor := range b.Chain(target) {
		if ancestor == root {
			return true
		}
	}
	return false
}

// Classify classifies a global element declaration. It returns ok=false for
// declarations that are not concepts, and an error for declarations whose
// substitution groups are mutually exclusive.
func (b *Builder) Classify(decl taxoelem.Elem) (Declaration, bool, error) {
	target, ok := taxoelem.TargetEName(decl)
	if !ok {
		return Declaration{}, false, nil
	}

	isItem := b.Reaches(target, taxoelem.XbrliItem)
	isTuple := b.Reaches(target, taxoelem.XbrliTuple)
	isHypercube := b.Reaches(target, taxoelem.XbrldtHypercubeItem)
	isDimension := b.Reaches(target, taxoelem.XbrldtDimensionItem)

	switch {
	case isItem && isTuple:
		return Declaration{}, false, &xbrlerrors.ConceptError{Name: target.String(), Detail: "both item and tuple"}
	case isHypercube && isDimension:
		return Declaration{}, false, &xbrlerrors.ConceptError{Name: target.String(), Detail: "both hypercube and dimension"}
	case (isHypercube || isDimension) && !isItem:
		return Declaration{}, false, &xbrlerrors.ConceptError{Name: target.String(), Detail: "hypercube or dimension that is not an item"}
	case isTuple:
		return Declaration{Target: target, Kind: KindTuple, Elem: decl}, true, nil
	case isHypercube:
		return Declaration{Target: target, Kind: KindHypercube, Elem: decl}, true, nil
	case isDimension:
		kind := KindExplicitDimension
		if _, typed := taxoelem.TypedDomainRef(decl); typed {
			kind = KindTypedDimension
		}
		return Declaration{Target: target, Kind: kind, Elem: decl}, true, nil
	case isItem:
		return Declaration{Target: target, Kind: KindPrimaryItem, Elem: decl}, true, nil
	default:
		return Declaration{}, false, nil
	}
}
