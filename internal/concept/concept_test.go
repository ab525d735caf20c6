package concept

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xbrlerrors "github.com/jacoelho/xbrl/errors"
	"github.com/jacoelho/xbrl/internal/ename"
	"github.com/jacoelho/xbrl/internal/taxoelem"
	"github.com/jacoelho/xbrl/internal/xmldom"
)

const conceptSchema = `<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
           xmlns:xbrli="http://www.xbrl.org/2003/instance"
           xmlns:xbrldt="http://xbrl.org/2005/xbrldt"
           xmlns:t="urn:test"
           targetNamespace="urn:test">
  <xs:element name="Sales" substitutionGroup="xbrli:item"/>
  <xs:element name="Segment" substitutionGroup="xbrli:tuple"/>
  <xs:element name="SalesCube" substitutionGroup="xbrldt:hypercubeItem" abstract="true"/>
  <xs:element name="ProductDim" substitutionGroup="xbrldt:dimensionItem" abstract="true"/>
  <xs:element name="AgeDim" substitutionGroup="xbrldt:dimensionItem" abstract="true"
              xbrldt:typedDomainRef="types.xsd#age"/>
  <xs:element name="DerivedSales" substitutionGroup="t:Sales"/>
  <xs:element name="Plain"/>
</xs:schema>`

func testDecls(t *testing.T) map[ename.EName]taxoelem.Elem {
	t.Helper()
	doc, err := xmldom.Parse(strings.NewReader(conceptSchema), "test.xsd")
	require.NoError(t, err)

	decls := make(map[ename.EName]taxoelem.Elem)
	root := taxoelem.Elem{Doc: doc, ID: doc.Root()}
	for _, child := range root.Children() {
		if child.Kind() != taxoelem.KindGlobalElementDeclaration {
			continue
		}
		target, ok := taxoelem.TargetEName(child)
		require.True(t, ok)
		decls[target] = child
	}
	return decls
}

func testSubGroups(decls map[ename.EName]taxoelem.Elem) map[ename.EName]ename.EName {
	subGroups := make(map[ename.EName]ename.EName)
	for target, decl := range decls {
		if parent, ok := taxoelem.SubstitutionGroup(decl); ok {
			subGroups[target] = parent
		}
	}
	return subGroups
}

// dimensionalHeads supplies the edges the xbrldt schema would contribute.
func dimensionalHeads() map[ename.EName]ename.EName {
	return map[ename.EName]ename.EName{
		taxoelem.XbrldtHypercubeItem: taxoelem.XbrliItem,
		taxoelem.XbrldtDimensionItem: taxoelem.XbrliItem,
	}
}

func TestClassify(t *testing.T) {
	decls := testDecls(t)
	builder := NewBuilder(testSubGroups(decls), dimensionalHeads())

	tests := []struct {
		local    string
		kind     Kind
		abstract bool
	}{
		{"Sales", KindPrimaryItem, false},
		{"DerivedSales", KindPrimaryItem, false},
		{"Segment", KindTuple, false},
		{"SalesCube", KindHypercube, true},
		{"ProductDim", KindExplicitDimension, true},
		{"AgeDim", KindTypedDimension, true},
	}
	for _, tt := range tests {
		t.Run(tt.local, func(t *testing.T) {
			target := ename.New("urn:test", tt.local)
			decl, ok, err := builder.Classify(decls[target])
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.kind, decl.Kind)
			assert.Equal(t, target, decl.Target)
			assert.Equal(t, tt.abstract, decl.IsAbstract())
		})
	}
}

func TestClassifyNonConcept(t *testing.T) {
	decls := testDecls(t)
	builder := NewBuilder(testSubGroups(decls), dimensionalHeads())

	_, ok, err := builder.Classify(decls[ename.New("urn:test", "Plain")])
	require.NoError(t, err)
	assert.False(t, ok, "declaration outside the item and tuple hierarchies is not a concept")
}

func TestClassifyTypedDomainRef(t *testing.T) {
	decls := testDecls(t)
	builder := NewBuilder(testSubGroups(decls), dimensionalHeads())

	decl, ok, err := builder.Classify(decls[ename.New("urn:test", "AgeDim")])
	require.NoError(t, err)
	require.True(t, ok)
	ref, hasRef := decl.TypedDomainRef()
	require.True(t, hasRef)
	assert.Equal(t, "types.xsd#age", ref)
}

func TestClassifyExclusivity(t *testing.T) {
	decls := testDecls(t)

	t.Run("item and tuple", func(t *testing.T) {
		// An extra edge from xbrli:tuple into the item chain makes every
		// tuple reach both hierarchies.
		extra := dimensionalHeads()
		extra[taxoelem.XbrliTuple] = taxoelem.XbrliItem
		builder := NewBuilder(testSubGroups(decls), extra)

		_, _, err := builder.Classify(decls[ename.New("urn:test", "Segment")])
		var conceptErr *xbrlerrors.ConceptError
		require.ErrorAs(t, err, &conceptErr)
		assert.Contains(t, conceptErr.Detail, "item and tuple")
	})

	t.Run("hypercube outside the item chain", func(t *testing.T) {
		// Without the xbrldt head edges a hypercube never reaches xbrli:item.
		builder := NewBuilder(testSubGroups(decls), nil)

		_, _, err := builder.Classify(decls[ename.New("urn:test", "SalesCube")])
		var conceptErr *xbrlerrors.ConceptError
		require.ErrorAs(t, err, &conceptErr)
		assert.Contains(t, conceptErr.Detail, "not an item")
	})
}

func TestChainAndReaches(t *testing.T) {
	decls := testDecls(t)
	builder := NewBuilder(testSubGroups(decls), dimensionalHeads())

	derived := ename.New("urn:test", "DerivedSales")
	sales := ename.New("urn:test", "Sales")

	assert.Equal(t, []ename.EName{sales, taxoelem.XbrliItem}, builder.Chain(derived))
	assert.True(t, builder.Reaches(derived, taxoelem.XbrliItem))
	assert.False(t, builder.Reaches(derived, taxoelem.XbrldtHypercubeItem))
	assert.False(t, builder.Reaches(sales, sales), "a concept does not reach itself")
}

func TestChainCycleTerminates(t *testing.T) {
	a := ename.New("urn:test", "a")
	c := ename.New("urn:test", "b")
	builder := NewBuilder(map[ename.EName]ename.EName{a: c, c: a}, nil)

	assert.Equal(t, []ename.EName{c}, builder.Chain(a))
	assert.False(t, builder.Reaches(a, taxoelem.XbrliItem))
}
