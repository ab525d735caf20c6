package taxoelem

import (
	"github.com/jacoelho/xbrl/internal/ename"
	"github.com/jacoelho/xbrl/internal/xmldom"
)

// Kind tags the taxonomy-element variants.
type Kind int

const (
	KindOther Kind = iota
	KindXsdSchema
	KindLinkbase
	KindGlobalElementDeclaration
	KindGlobalAttributeDeclaration
	KindNamedTypeDefinition
	KindExtendedLink
	KindArc
	KindLocator
	KindResource
	KindNonStandardResource
	KindRoleRef
	KindArcroleRef
	KindRoleType
	KindArcroleType
)

var kindNames = map[Kind]string{
	KindOther:                      "Other",
	KindXsdSchema:                  "XsdSchema",
	KindLinkbase:                   "Linkbase",
	KindGlobalElementDeclaration:   "GlobalElementDeclaration",
	KindGlobalAttributeDeclaration: "GlobalAttributeDeclaration",
	KindNamedTypeDefinition:        "NamedTypeDefinition",
	KindExtendedLink:               "ExtendedLink",
	KindArc:                        "XLinkArc",
	KindLocator:                    "XLinkLocator",
	KindResource:                   "XLinkResource",
	KindNonStandardResource:        "NonStandardResource",
	KindRoleRef:                    "RoleRef",
	KindArcroleRef:                 "ArcroleRef",
	KindRoleType:                   "RoleType",
	KindArcroleType:                "ArcroleType",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Other"
}

// Elem is a taxonomy element: a handle into a parsed document together with
// the capability set shared by every element kind.
type Elem struct {
	Doc *xmldom.Document
	ID  xmldom.NodeID
}

// IsZero reports whether e is the zero handle.
func (e Elem) IsZero() bool {
	return e.Doc == nil
}

// Name returns the element's expanded name.
func (e Elem) Name() ename.EName {
	return e.Doc.Name(e.ID)
}

// Attr returns the attribute value for name.
func (e Elem) Attr(name ename.EName) (string, bool) {
	return e.Doc.Attr(e.ID, name)
}

// AttrOr returns the attribute value for name, or fallback when absent.
func (e Elem) AttrOr(name ename.EName, fallback string) string {
	if v, ok := e.Attr(name); ok {
		return v
	}
	return fallback
}

// Children returns the element children in document order.
func (e Elem) Children() []Elem {
	ids := e.Doc.Children(e.ID)
	children := make([]Elem, len(ids))
	for i, id := range ids {
		children[i] = Elem{Doc: e.Doc, ID: id}
	}
	return children
}

// Parent returns the parent element, or a zero Elem at the root.
func (e Elem) Parent() Elem {
	parent := e.Doc.Parent(e.ID)
	if parent == xmldom.InvalidNode {
		return Elem{}
	}
	return Elem{Doc: e.Doc, ID: parent}
}

// Text returns the element's directly contained character data.
func (e Elem) Text() string {
	return e.Doc.Text(e.ID)
}

// DocURI returns the URI of the containing document.
func (e Elem) DocURI() string {
	return e.Doc.URI()
}

// BaseURI returns the element's base URI after xml:base resolution.
func (e Elem) BaseURI() string {
	return e.Doc.BaseURI(e.ID)
}

// Scope returns the prefix scope in effect at the element.
func (e Elem) Scope() ename.Scope {
	return e.Doc.Scope(e.ID)
}

// Key returns the element's fragment key, its only admissible identity.
func (e Elem) Key() xmldom.FragmentKey {
	return e.Doc.Key(e.ID)
}

// Kind classifies the element per the taxonomy-element taxonomy. The
// classification is a pure function of element name, xlink:type, and
// position, so it is recomputed on demand rather than stored.
func (e Elem) Kind() Kind {
	if e.IsZero() {
		return KindOther
	}
	name := e.Name()

	switch name {
	case XsSchema:
		return KindXsdSchema
	case LinkLinkbase:
		return KindLinkbase
	case LinkRoleRef:
		return KindRoleRef
	case LinkArcroleRef:
		return KindArcroleRef
	case LinkRoleType:
		return KindRoleType
	case LinkArcroleType:
		return KindArcroleType
	case XsElement:
		if e.Parent().Name() == XsSchema {
			return KindGlobalElementDeclaration
		}
		return KindOther
	case XsAttribute:
		if e.Parent().Name() == XsSchema {
			return KindGlobalAttributeDeclaration
		}
		return KindOther
	case XsComplexType, XsSimpleType:
		if e.Parent().Name() == XsSchema {
			if _, named := e.Attr(ename.NoNamespace("name")); named {
				return KindNamedTypeDefinition
			}
		}
		return KindOther
	}

	switch e.AttrOr(XLinkType, "") {
	case "extended":
		return KindExtendedLink
	case "arc":
		return KindArc
	case "locator":
		return KindLocator
	case "resource":
		if name.Namespace.String() == NsLink {
			return KindResource
		}
		return KindNonStandardResource
	}
	return KindOther
}

// FindAll returns, in document order, every descendant-or-self element
// satisfying the predicate.
func (e Elem) FindAll(p func(Elem) bool) []Elem {
	var out []Elem
	e.Doc.Descendants(e.ID, func(id xmldom.NodeID) bool {
		candidate := Elem{Doc: e.Doc, ID: id}
		if p(candidate) {
			out = append(out, candidate)
		}
		return true
	})
	return out
}

// FindAllOfKind returns every descendant-or-self element of the given kind.
func (e Elem) FindAllOfKind(kind Kind) []Elem {
	return e.FindAll(func(candidate Elem) bool {
		return candidate.Kind() == kind
	})
}
