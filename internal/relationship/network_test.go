package relationship

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const prohibitionLinkbase = `<?xml version="1.0"?>
<link:linkbase xmlns:link="http://www.xbrl.org/2003/linkbase"
               xmlns:xlink="http://www.w3.org/1999/xlink">
  <link:presentationLink xlink:type="extended" xlink:role="http://www.xbrl.org/2003/role/link">
    <link:loc xlink:type="locator" xlink:label="parent" xlink:href="schema.xsd#sales"/>
    <link:loc xlink:type="locator" xlink:label="child" xlink:href="schema.xsd#revenue"/>
    <link:presentationArc xlink:type="arc" xlink:from="parent" xlink:to="child"
        xlink:arcrole="http://www.xbrl.org/2003/arcrole/parent-child" order="1"/>
    <link:presentationArc xlink:type="arc" xlink:from="parent" xlink:to="child"
        xlink:arcrole="http://www.xbrl.org/2003/arcrole/parent-child" order="1"
        use="prohibited" priority="1"/>
  </link:presentationLink>
</link:linkbase>`

const overrideLinkbase = `<?xml version="1.0"?>
<link:linkbase xmlns:link="http://www.xbrl.org/2003/linkbase"
               xmlns:xlink="http://www.w3.org/1999/xlink">
  <link:presentationLink xlink:type="extended" xlink:role="http://www.xbrl.org/2003/role/link">
    <link:loc xlink:type="locator" xlink:label="parent" xlink:href="schema.xsd#sales"/>
    <link:loc xlink:type="locator" xlink:label="child" xlink:href="schema.xsd#revenue"/>
    <link:presentationArc xlink:type="arc" xlink:from="parent" xlink:to="child"
        xlink:arcrole="http://www.xbrl.org/2003/arcrole/parent-child" order="1"/>
    <link:presentationArc xlink:type="arc" xlink:from="parent" xlink:to="child"
        xlink:arcrole="http://www.xbrl.org/2003/arcrole/parent-child" order="1"
        priority="2"/>
  </link:presentationLink>
</link:linkbase>`

const lowPriorityProhibitionLinkbase = `<?xml version="1.0"?>
<link:linkbase xmlns:link="http://www.xbrl.org/2003/linkbase"
               xmlns:xlink="http://www.w3.org/1999/xlink">
  <link:presentationLink xlink:type="extended" xlink:role="http://www.xbrl.org/2003/role/link">
    <link:loc xlink:type="locator" xlink:label="parent" xlink:href="schema.xsd#sales"/>
    <link:loc xlink:type="locator" xlink:label="child" xlink:href="schema.xsd#revenue"/>
    <link:presentationArc xlink:type="arc" xlink:from="parent" xlink:to="child"
        xlink:arcrole="http://www.xbrl.org/2003/arcrole/parent-child" order="1"
        priority="2"/>
    <link:presentationArc xlink:type="arc" xlink:from="parent" xlink:to="child"
        xlink:arcrole="http://www.xbrl.org/2003/arcrole/parent-child" order="1"
        use="prohibited"/>
  </link:presentationLink>
</link:linkbase>`

const distinctOrdersLinkbase = `<?xml version="1.0"?>
<link:linkbase xmlns:link="http://www.xbrl.org/2003/linkbase"
               xmlns:xlink="http://www.w3.org/1999/xlink">
  <link:presentationLink xlink:type="extended" xlink:role="http://www.xbrl.org/2003/role/link">
    <link:loc xlink:type="locator" xlink:label="parent" xlink:href="schema.xsd#sales"/>
    <link:loc xlink:type="locator" xlink:label="child" xlink:href="schema.xsd#revenue"/>
    <link:presentationArc xlink:type="arc" xlink:from="parent" xlink:to="child"
        xlink:arcrole="http://www.xbrl.org/2003/arcrole/parent-child" order="1"/>
    <link:presentationArc xlink:type="arc" xlink:from="parent" xlink:to="child"
        xlink:arcrole="http://www.xbrl.org/2003/arcrole/parent-child" order="2"
        use="prohibited" priority="1"/>
  </link:presentationLink>
</link:linkbase>`

func extractRelationships(t *testing.T, linkbase string) []Relationship {
	t.Helper()
	base := fixtureBase(t, map[string]string{"net.xml": linkbase})
	rels, err := NewFactory(base, FactoryConfig{}).Relationships(context.Background())
	require.NoError(t, err)
	return rels
}

func TestComputeNetworksProhibition(t *testing.T) {
	rels := extractRelationships(t, prohibitionLinkbase)
	require.Len(t, rels, 2)

	removed, err := StandardNetworkFactory{}.ComputeNetworks(rels)
	require.NoError(t, err)
	assert.Len(t, removed, 2, "a prohibiting arc at the winning priority removes the class")
	for _, rel := range rels {
		assert.True(t, removed[rel])
	}
}

func TestComputeNetworksOverride(t *testing.T) {
	rels := extractRelationships(t, overrideLinkbase)
	require.Len(t, rels, 2)

	removed, err := StandardNetworkFactory{}.ComputeNetworks(rels)
	require.NoError(t, err)
	require.Len(t, removed, 1)
	for _, rel := range rels {
		if rel.Arc.Priority() == 0 {
			assert.True(t, removed[rel], "lower priority is overridden")
		} else {
			assert.False(t, removed[rel], "highest priority survives")
		}
	}
}

func TestComputeNetworksLowPriorityProhibition(t *testing.T) {
	rels := extractRelationships(t, lowPriorityProhibitionLinkbase)
	require.Len(t, rels, 2)

	removed, err := StandardNetworkFactory{}.ComputeNetworks(rels)
	require.NoError(t, err)
	for _, rel := range rels {
		if rel.Arc.IsProhibited() {
			assert.True(t, removed[rel], "prohibiting arcs never survive")
		} else {
			assert.False(t, removed[rel], "prohibition below the winning priority has no effect")
		}
	}
}

func TestComputeNetworksDistinctClasses(t *testing.T) {
	rels := extractRelationships(t, distinctOrdersLinkbase)
	require.Len(t, rels, 2)

	removed, err := StandardNetworkFactory{}.ComputeNetworks(rels)
	require.NoError(t, err)
	for _, rel := range rels {
		if rel.Arc.IsProhibited() {
			assert.True(t, removed[rel])
		} else {
			assert.False(t, removed[rel], "arcs with distinct order are not equivalent")
		}
	}
}

func TestBaseSetKey(t *testing.T) {
	rels := extractRelationships(t, prohibitionLinkbase)
	require.Len(t, rels, 2)
	assert.Equal(t, rels[0].BaseSet(), rels[1].BaseSet())
}
