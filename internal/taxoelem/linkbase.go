package taxoelem

import (
	"strconv"
	"strings"

	"github.com/jacoelho/xbrl/internal/ename"
	"github.com/jacoelho/xbrl/internal/uris"
)

// ExtendedLink wraps an element with xlink:type="extended".
type ExtendedLink struct {
	Elem
}

// Role returns the xlink:role of the link, the ELR of every arc inside it.
func (l ExtendedLink) Role() string {
	return l.AttrOr(XLinkRole, StandardELR)
}

// IsStandard reports whether the link element is one of the five standard
// link elements of the linkbase namespace.
func (l ExtendedLink) IsStandard() bool {
	switch l.Name() {
	case LinkDefinitionLink, LinkPresentationLink, LinkCalculationLink, LinkLabelLink, LinkReferenceLink:
		return true
	}
	return false
}

// Arcs returns the child arcs in document order.
func (l ExtendedLink) Arcs() []Arc {
	var arcs []Arc
	for _, child := range l.Children() {
		if child.AttrOr(XLinkType, "") == "arc" {
			arcs = append(arcs, Arc{Elem: child})
		}
	}
	return arcs
}

// Locators returns the child locators in document order.
func (l ExtendedLink) Locators() []Locator {
	var locs []Locator
	for _, child := range l.Children() {
		if child.AttrOr(XLinkType, "") == "locator" {
			locs = append(locs, Locator{Elem: child})
		}
	}
	return locs
}

// Resources returns the child resources in document order.
func (l ExtendedLink) Resources() []Elem {
	var resources []Elem
	for _, child := range l.Children() {
		if child.AttrOr(XLinkType, "") == "resource" {
			resources = append(resources, child)
		}
	}
	return resources
}

// Arc wraps an element with xlink:type="arc".
type Arc struct {
	Elem
}

// From returns the xlink:from label.
func (a Arc) From() string {
	return a.AttrOr(XLinkFrom, "")
}

// To returns the xlink:to label.
func (a Arc) To() string {
	return a.AttrOr(XLinkTo, "")
}

// Arcrole returns the xlink:arcrole URI.
func (a Arc) Arcrole() string {
	return a.AttrOr(XLinkArcrole, "")
}

// ELR returns the xlink:role of the containing extended link.
func (a Arc) ELR() string {
	return ExtendedLink{Elem: a.Parent()}.Role()
}

// Order returns the order attribute, defaulting to 1.
func (a Arc) Order() float64 {
	v, ok := a.Attr(ename.NoNamespace("order"))
	if !ok {
		return 1
	}
	order, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 1
	}
	return order
}

// Priority returns the priority attribute, defaulting to 0.
func (a Arc) Priority() int {
	v, ok := a.Attr(ename.NoNamespace("priority"))
	if !ok {
		return 0
	}
	priority, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0
	}
	return priority
}

// Use returns the use attribute: "optional" (default) or "prohibited".
func (a Arc) Use() string {
	return a.AttrOr(ename.NoNamespace("use"), "optional")
}

// IsProhibited reports use="prohibited".
func (a Arc) IsProhibited() bool {
	return a.Use() == "prohibited"
}

// TargetRole returns the xbrldt:targetRole attribute, if present.
func (a Arc) TargetRole() (string, bool) {
	return a.Attr(XbrldtTargetRole)
}

// Usable returns the xbrldt:usable attribute, defaulting to true.
func (a Arc) Usable() bool {
	v := a.AttrOr(XbrldtUsable, "true")
	return v == "true" || v == "1"
}

// Locator wraps an element with xlink:type="locator".
type Locator struct {
	Elem
}

// Label returns the xlink:label of the locator.
func (l Locator) Label() string {
	return l.AttrOr(XLinkLabel, "")
}

// Href splits the locator's xlink:href, resolved against the locator's base
// URI, into a fragment-free document URI and the fragment.
func (l Locator) Href() (docURI, fragment string, ok bool) {
	href, ok := l.Attr(XLinkHref)
	if !ok {
		return "", "", false
	}
	return ResolveHref(l.BaseURI(), href)
}

// ResourceLabel returns the xlink:label of a resource element.
func ResourceLabel(e Elem) string {
	return e.AttrOr(XLinkLabel, "")
}

// ResourceRole returns the xlink:role of a resource element.
func ResourceRole(e Elem) string {
	return e.AttrOr(XLinkRole, "")
}

// ResolveHref resolves href against base and splits off the fragment. An
// href with an empty document part refers to the base document itself.
func ResolveHref(base, href string) (docURI, fragment string, ok bool) {
	raw := href
	if idx := strings.IndexByte(raw, '#'); idx >= 0 {
		raw, fragment = raw[:idx], raw[idx+1:]
	}
	if raw == "" {
		return uris.StripFragment(base), fragment, true
	}
	return uris.Resolve(base, raw), fragment, true
}
