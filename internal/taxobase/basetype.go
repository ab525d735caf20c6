package taxobase

import (
	"github.com/jacoelho/xbrl/internal/ename"
	"github.com/jacoelho/xbrl/internal/taxoelem"
)

// BaseType returns one step up the base-type chain of the named simple type,
// if the type is known and carries a restriction or extension base.
func (b *TaxonomyBase) BaseType(typeName ename.EName) (ename.EName, bool) {
	def, ok := b.namedTypeBy[typeName]
	if !ok || def.Name() != taxoelem.XsSimpleType {
		return ename.EName{}, false
	}
	return taxoelem.BaseTypeRef(def)
}

// FindBaseTypeOrSelfUntil walks the base-type chain from typeName, inclusive,
// and returns the first ancestor satisfying p. The walk is cycle-safe; a
// chain that ends or cycles without a match reports false.
func (b *TaxonomyBase) FindBaseTypeOrSelfUntil(typeName ename.EName, p func(ename.EName) bool) (ename.EName, bool) {
	seen := make(map[ename.EName]bool)
	current := typeName
	for {
		if seen[current] {
			return ename.EName{}, false
		}
		seen[current] = true
		if p(current) {
			return current, true
		}
		next, ok := b.BaseType(current)
		if !ok {
			return ename.EName{}, false
		}
		current = next
	}
}
