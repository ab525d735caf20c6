package taxoelem

import (
	"strings"

	"github.com/jacoelho/xbrl/internal/ename"
)

var (
	attrName              = ename.NoNamespace("name")
	attrID                = ename.NoNamespace("id")
	attrAbstract          = ename.NoNamespace("abstract")
	attrSubstitutionGroup = ename.NoNamespace("substitutionGroup")
	attrTargetNamespace   = ename.NoNamespace("targetNamespace")
	attrType              = ename.NoNamespace("type")
	attrBase              = ename.NoNamespace("base")
	attrSchemaLocation    = ename.NoNamespace("schemaLocation")
)

// SchemaTargetNamespace returns the targetNamespace of the schema root
// containing e, or empty for chameleon schemas.
func SchemaTargetNamespace(e Elem) ename.NamespaceURI {
	root := Elem{Doc: e.Doc, ID: e.Doc.Root()}
	return ename.NamespaceURI(root.AttrOr(attrTargetNamespace, ""))
}

// TargetEName returns the expanded name a global declaration or named type
// definition introduces: targetNamespace plus the name attribute.
func TargetEName(e Elem) (ename.EName, bool) {
	name, ok := e.Attr(attrName)
	if !ok {
		return ename.EName{}, false
	}
	return ename.EName{Namespace: SchemaTargetNamespace(e), Local: name}, true
}

// SubstitutionGroup resolves a global element declaration's
// substitutionGroup attribute against the declaration's scope.
func SubstitutionGroup(e Elem) (ename.EName, bool) {
	lexical, ok := e.Attr(attrSubstitutionGroup)
	if !ok {
		return ename.EName{}, false
	}
	resolved, err := e.Scope().ResolveString(lexical)
	if err != nil {
		return ename.EName{}, false
	}
	return resolved, true
}

// TypeRef resolves a declaration's type attribute against its scope.
func TypeRef(e Elem) (ename.EName, bool) {
	lexical, ok := e.Attr(attrType)
	if !ok {
		return ename.EName{}, false
	}
	resolved, err := e.Scope().ResolveString(lexical)
	if err != nil {
		return ename.EName{}, false
	}
	return resolved, true
}

// BaseTypeRef resolves the base attribute of the restriction or extension
// directly under a named simple type definition.
func BaseTypeRef(e Elem) (ename.EName, bool) {
	for _, child := range e.Children() {
		if child.Name() != XsRestriction && child.Name() != XsExtension {
			continue
		}
		lexical, ok := child.Attr(attrBase)
		if !ok {
			continue
		}
		resolved, err := child.Scope().ResolveString(lexical)
		if err != nil {
			return ename.EName{}, false
		}
		return resolved, true
	}
	return ename.EName{}, false
}

// IsAbstract reports whether a declaration carries abstract="true".
func IsAbstract(e Elem) bool {
	v := e.AttrOr(attrAbstract, "false")
	return v == "true" || v == "1"
}

// TypedDomainRef returns the xbrldt:typedDomainRef attribute value.
func TypedDomainRef(e Elem) (string, bool) {
	return e.Attr(XbrldtTypedDomainRef)
}

// ID returns the declaration's id attribute.
func ID(e Elem) (string, bool) {
	return e.Attr(attrID)
}

// SchemaLocation returns the schemaLocation attribute of an import or
// include directive.
func SchemaLocation(e Elem) (string, bool) {
	v, ok := e.Attr(attrSchemaLocation)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}
