// Package taxobase aggregates parsed taxonomy documents into the indexed
// view the relationship factory and query facade are built on.
package taxobase

import (
	"github.com/jacoelho/xbrl/internal/ename"
	"github.com/jacoelho/xbrl/internal/taxoelem"
	"github.com/jacoelho/xbrl/internal/xmldom"
)

// TaxonomyBase is the aggregated, indexed view of an ordered list of parsed
// taxonomy documents. All indices are built eagerly at construction and the
// value is immutable afterwards.
type TaxonomyBase struct {
	docs         []*xmldom.Document
	rootsByURI   map[string]taxoelem.Elem
	elemDecls    []taxoelem.Elem
	elemDeclBy   map[ename.EName]taxoelem.Elem
	attrDeclBy   map[ename.EName]taxoelem.Elem
	namedTypeBy  map[ename.EName]taxoelem.Elem
	subGroupMap  map[ename.EName]ename.EName
	guessedScope ename.Scope
}

// New builds a taxonomy base over the given documents. Document order is
// significant: on duplicate global ENames the first occurrence wins.
func New(docs []*xmldom.Document) *TaxonomyBase {
	base := &TaxonomyBase{
		docs:        docs,
		rootsByURI:  make(map[string]taxoelem.Elem, len(docs)),
		elemDeclBy:  make(map[ename.EName]taxoelem.Elem),
		attrDeclBy:  make(map[ename.EName]taxoelem.Elem),
		namedTypeBy: make(map[ename.EName]taxoelem.Elem),
		subGroupMap: make(map[ename.EName]ename.EName),
	}
	for _, doc := range docs {
		root := taxoelem.Elem{Doc: doc, ID: doc.Root()}
		if _, seen := base.rootsByURI[doc.URI()]; !seen {
			base.rootsByURI[doc.URI()] = root
		}
		// Right-biased append with the accumulated scope on the right, so
		// the earliest document's binding wins a prefix conflict.
		base.guessedScope = root.Scope().WithoutDefaultNamespace().Append(base.guessedScope)
		if root.Kind() != taxoelem.KindXsdSchema {
			continue
		}
		base.indexSchema(root)
	}
	return base
}

func (b *TaxonomyBase) indexSchema(root taxoelem.Elem) {
	for _, child := range root.Children() {
		switch child.Kind() {
		case taxoelem.KindGlobalElementDeclaration:
			target, ok := taxoelem.TargetEName(child)
			if !ok {
				continue
			}
			b.elemDecls = append(b.elemDecls, child)
			if _, seen := b.elemDeclBy[target]; !seen {
				b.elemDeclBy[target] = child
			}
			if parent, ok := taxoelem.SubstitutionGroup(child); ok {
				if _, seen := b.subGroupMap[target]; !seen {
					b.subGroupMap[target] = parent
				}
			}
		case taxoelem.KindGlobalAttributeDeclaration:
			if target, ok := taxoelem.TargetEName(child); ok {
				if _, seen := b.attrDeclBy[target]; !seen {
					b.attrDeclBy[target] = child
				}
			}
		case taxoelem.KindNamedTypeDefinition:
			if target, ok := taxoelem.TargetEName(child); ok {
				if _, seen := b.namedTypeBy[target]; !seen {
					b.namedTypeBy[target] = child
				}
			}
		}
	}
}

// Documents returns the backing documents in discovery order.
func (b *TaxonomyBase) Documents() []*xmldom.Document {
	return b.docs
}

// DocURIs returns the document URIs in discovery order.
func (b *TaxonomyBase) DocURIs() []string {
	uris := make([]string, len(b.docs))
	for i, doc := range b.docs {
		uris[i] = doc.URI()
	}
	return uris
}

// RootElem returns the root element of the document at uri.
func (b *TaxonomyBase) RootElem(uri string) (taxoelem.Elem, bool) {
	root, ok := b.rootsByURI[uri]
	return root, ok
}

// GlobalElementDeclarations returns every global element declaration in
// discovery order, then document order.
func (b *TaxonomyBase) GlobalElementDeclarations() []taxoelem.Elem {
	return b.elemDecls
}

// GlobalElementDeclaration returns the first-seen declaration for target.
func (b *TaxonomyBase) GlobalElementDeclaration(target ename.EName) (taxoelem.Elem, bool) {
	decl, ok := b.elemDeclBy[target]
	return decl, ok
}

// GlobalAttributeDeclaration returns the first-seen attribute declaration.
func (b *TaxonomyBase) GlobalAttributeDeclaration(target ename.EName) (taxoelem.Elem, bool) {
	decl, ok := b.attrDeclBy[target]
	return decl, ok
}

// NamedTypeDefinition returns the first-seen named type definition.
func (b *TaxonomyBase) NamedTypeDefinition(target ename.EName) (taxoelem.Elem, bool) {
	def, ok := b.namedTypeBy[target]
	return def, ok
}

// ElementByURIWithFragment resolves docURI#fragment to the element bearing a
// matching id, or through the XPointer element scheme.
func (b *TaxonomyBase) ElementByURIWithFragment(docURI, fragment string) (taxoelem.Elem, bool) {
	root, ok := b.rootsByURI[docURI]
	if !ok {
		return taxoelem.Elem{}, false
	}
	id, ok := root.Doc.ResolveFragment(fragment)
	if !ok {
		return taxoelem.Elem{}, false
	}
	return taxoelem.Elem{Doc: root.Doc, ID: id}, true
}

// DerivedSubstitutionGroupMap returns the child-to-parent substitution-group
// edges derived from global element declarations.
func (b *TaxonomyBase) DerivedSubstitutionGroupMap() map[ename.EName]ename.EName {
	return b.subGroupMap
}

// GuessedScope is the union of the root-element scopes with the default
// namespace discarded; on prefix conflicts the earliest document wins.
func (b *TaxonomyBase) GuessedScope() ename.Scope {
	return b.guessedScope
}

// FilteringDocumentURIs returns a new taxonomy base over only the documents
// whose URI is in keep. Indices are rebuilt from scratch; the caller is
// responsible for carrying an extra substitution-group map for globals that
// lived in excluded documents.
func (b *TaxonomyBase) FilteringDocumentURIs(keep map[string]bool) *TaxonomyBase {
	var kept []*xmldom.Document
	for _, doc := range b.docs {
		if keep[doc.URI()] {
			kept = append(kept, doc)
		}
	}
	return New(kept)
}
