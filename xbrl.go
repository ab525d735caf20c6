// Package xbrl provides a read-only, in-memory query engine for XBRL
// taxonomies: DTS discovery, a typed taxonomy model over parsed XML, and a
// graph of typed relationships supporting structural and dimensional
// queries.
package xbrl

import (
	"github.com/jacoelho/xbrl/internal/concept"
	"github.com/jacoelho/xbrl/internal/ename"
	"github.com/jacoelho/xbrl/internal/relationship"
	"github.com/jacoelho/xbrl/internal/taxoelem"
	"github.com/jacoelho/xbrl/internal/uriresolve"
	"github.com/jacoelho/xbrl/internal/xmldom"
)

// EName is an expanded name: (namespace URI, local name) with value equality.
type EName = ename.EName

// QName is a lexical qualified name, resolvable against a Scope.
type QName = ename.QName

// Scope maps namespace prefixes to namespace URIs.
type Scope = ename.Scope

// ParseEName parses the {namespace-URI}local-name wire form.
var ParseEName = ename.Parse

// MustParseEName parses the wire form and panics on malformed input.
var MustParseEName = ename.MustParse

// FragmentKey is the stable identity of an element in its document.
type FragmentKey = xmldom.FragmentKey

// TaxonomyElem is a typed taxonomy element handle.
type TaxonomyElem = taxoelem.Elem

// ElemKind tags the taxonomy-element variants.
type ElemKind = taxoelem.Kind

// Relationship is one typed relationship backed by exactly one XLink arc.
type Relationship = relationship.Relationship

// RelationshipKind tags the relationship variants.
type RelationshipKind = relationship.Kind

// Relationship kinds.
const (
	NonStandard          = relationship.KindNonStandard
	ParentChild          = relationship.KindParentChild
	Calculation          = relationship.KindCalculation
	HasHypercube         = relationship.KindHasHypercube
	HypercubeDimension   = relationship.KindHypercubeDimension
	DimensionDomain      = relationship.KindDimensionDomain
	DomainMember         = relationship.KindDomainMember
	DimensionDefault     = relationship.KindDimensionDefault
	OtherInterConcept    = relationship.KindOtherInterConcept
	ConceptLabel         = relationship.KindConceptLabel
	ConceptReference     = relationship.KindConceptReference
	OtherConceptResource = relationship.KindOtherConceptResource
)

// ArcFilter restricts which arcs yield relationships.
type ArcFilter = relationship.ArcFilter

// NetworkFactory computes prohibition/overriding removals per base set.
type NetworkFactory = relationship.NetworkFactory

// StandardNetworkFactory implements XBRL 2.1 network resolution.
type StandardNetworkFactory = relationship.StandardNetworkFactory

// ConceptDeclaration is a classified concept declaration.
type ConceptDeclaration = concept.Declaration

// ConceptKind tags the concept-declaration variants.
type ConceptKind = concept.Kind

// Concept kinds.
const (
	PrimaryItem       = concept.KindPrimaryItem
	Tuple             = concept.KindTuple
	Hypercube         = concept.KindHypercube
	ExplicitDimension = concept.KindExplicitDimension
	TypedDimension    = concept.KindTypedDimension
)

// Resolver maps a logical document URI to a fetchable URI.
type Resolver = uriresolve.Resolver

// IdentityResolver returns a resolver that leaves every URI unchanged.
var IdentityResolver = uriresolve.Identity

// LocalMirrorResolver returns a resolver mapping scheme://authority/path
// under a local root.
var LocalMirrorResolver = uriresolve.LocalMirror
