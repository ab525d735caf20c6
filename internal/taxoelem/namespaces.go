// Package taxoelem provides the typed taxonomy-element model over parsed
// documents: schemas, linkbases, declarations, extended links, arcs,
// locators, and resources.
package taxoelem

import "github.com/jacoelho/xbrl/internal/ename"

// Namespace URIs of the vocabularies the element model recognizes.
const (
	NsXS     = "http://www.w3.org/2001/XMLSchema"
	NsXbrli  = "http://www.xbrl.org/2003/instance"
	NsLink   = "http://www.xbrl.org/2003/linkbase"
	NsXLink  = "http://www.w3.org/1999/xlink"
	NsXbrldt = "http://xbrl.org/2005/xbrldt"
)

// XML Schema element names.
var (
	XsSchema      = ename.New(NsXS, "schema")
	XsElement     = ename.New(NsXS, "element")
	XsAttribute   = ename.New(NsXS, "attribute")
	XsComplexType = ename.New(NsXS, "complexType")
	XsSimpleType  = ename.New(NsXS, "simpleType")
	XsImport      = ename.New(NsXS, "import")
	XsInclude     = ename.New(NsXS, "include")
	XsAnnotation  = ename.New(NsXS, "annotation")
	XsAppinfo     = ename.New(NsXS, "appinfo")
	XsRestriction = ename.New(NsXS, "restriction")
	XsExtension   = ename.New(NsXS, "extension")
)

// Linkbase element names.
var (
	LinkLinkbase    = ename.New(NsLink, "linkbase")
	LinkLinkbaseRef = ename.New(NsLink, "linkbaseRef")
	LinkLoc         = ename.New(NsLink, "loc")
	LinkRoleRef     = ename.New(NsLink, "roleRef")
	LinkArcroleRef  = ename.New(NsLink, "arcroleRef")
	LinkRoleType    = ename.New(NsLink, "roleType")
	LinkArcroleType = ename.New(NsLink, "arcroleType")

	LinkDefinitionLink   = ename.New(NsLink, "definitionLink")
	LinkPresentationLink = ename.New(NsLink, "presentationLink")
	LinkCalculationLink  = ename.New(NsLink, "calculationLink")
	LinkLabelLink        = ename.New(NsLink, "labelLink")
	LinkReferenceLink    = ename.New(NsLink, "referenceLink")

	LinkDefinitionArc   = ename.New(NsLink, "definitionArc")
	LinkPresentationArc = ename.New(NsLink, "presentationArc")
	LinkCalculationArc  = ename.New(NsLink, "calculationArc")
	LinkLabelArc        = ename.New(NsLink, "labelArc")
	LinkReferenceArc    = ename.New(NsLink, "referenceArc")

	LinkLabel     = ename.New(NsLink, "label")
	LinkReference = ename.New(NsLink, "reference")
	LinkFootnote  = ename.New(NsLink, "footnote")
)

// XLink attribute names.
var (
	XLinkType    = ename.New(NsXLink, "type")
	XLinkHref    = ename.New(NsXLink, "href")
	XLinkLabel   = ename.New(NsXLink, "label")
	XLinkFrom    = ename.New(NsXLink, "from")
	XLinkTo      = ename.New(NsXLink, "to")
	XLinkRole    = ename.New(NsXLink, "role")
	XLinkArcrole = ename.New(NsXLink, "arcrole")
)

// XBRL Dimensions attribute and substitution-group names.
var (
	XbrldtTargetRole     = ename.New(NsXbrldt, "targetRole")
	XbrldtTypedDomainRef = ename.New(NsXbrldt, "typedDomainRef")
	XbrldtUsable         = ename.New(NsXbrldt, "usable")
	XbrldtContextElement = ename.New(NsXbrldt, "contextElement")
	XbrldtClosed         = ename.New(NsXbrldt, "closed")
	XbrldtHypercubeItem  = ename.New(NsXbrldt, "hypercubeItem")
	XbrldtDimensionItem  = ename.New(NsXbrldt, "dimensionItem")

	XbrliItem  = ename.New(NsXbrli, "item")
	XbrliTuple = ename.New(NsXbrli, "tuple")
)

// Standard arcrole URIs.
const (
	ArcroleParentChild      = "http://www.xbrl.org/2003/arcrole/parent-child"
	ArcroleSummationItem    = "http://www.xbrl.org/2003/arcrole/summation-item"
	ArcroleConceptLabel     = "http://www.xbrl.org/2003/arcrole/concept-label"
	ArcroleConceptReference = "http://www.xbrl.org/2003/arcrole/concept-reference"
	ArcroleFactFootnote     = "http://www.xbrl.org/2003/arcrole/fact-footnote"

	ArcroleAll                = "http://xbrl.org/int/dim/arcrole/all"
	ArcroleNotAll             = "http://xbrl.org/int/dim/arcrole/notAll"
	ArcroleHypercubeDimension = "http://xbrl.org/int/dim/arcrole/hypercube-dimension"
	ArcroleDimensionDomain    = "http://xbrl.org/int/dim/arcrole/dimension-domain"
	ArcroleDomainMember       = "http://xbrl.org/int/dim/arcrole/domain-member"
	ArcroleDimensionDefault   = "http://xbrl.org/int/dim/arcrole/dimension-default"
)

// StandardELR is the default extended link role.
const StandardELR = "http://www.xbrl.org/2003/role/link"
