package dts

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"strings"
	"testing"
	"testing/fstest"

	xbrlerrors "github.com/jacoelho/xbrl/errors"
	"github.com/jacoelho/xbrl/internal/docbuilder"
)

const (
	entrySchema = `<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
           xmlns:link="http://www.xbrl.org/2003/linkbase"
           xmlns:xlink="http://www.w3.org/1999/xlink"
           targetNamespace="urn:entry">
  <xs:import namespace="urn:imported" schemaLocation="imported.xsd"/>
  <xs:include schemaLocation="included.xsd"/>
  <xs:annotation>
    <xs:appinfo>
      <link:linkbaseRef xlink:type="simple" xlink:href="definitions.xml"/>
    </xs:appinfo>
  </xs:annotation>
</xs:schema>`
	importedSchema = `<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:imported"/>`
	includedSchema = `<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:entry"/>`
	definitionLinkbase = `<?xml version="1.0"?>
<link:linkbase xmlns:link="http://www.xbrl.org/2003/linkbase"
               xmlns:xlink="http://www.w3.org/1999/xlink">
  <link:definitionLink xlink:type="extended" xlink:role="http://www.xbrl.org/2003/role/link">
    <link:loc xlink:type="locator" xlink:href="remote.xsd#elem" xlink:label="a"/>
  </link:definitionLink>
</link:linkbase>`
	remoteSchema = `<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:remote"/>`
)

func testCollector(fsys fstest.MapFS, discover, lenient bool) *Collector {
	return New(Config{
		Builder:  docbuilder.New(nil, docbuilder.FSOpener{FS: fsys}),
		Discover: discover,
		Lenient:  lenient,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func fullFS() fstest.MapFS {
	return fstest.MapFS{
		"entry.xsd":       &fstest.MapFile{Data: []byte(entrySchema)},
		"imported.xsd":    &fstest.MapFile{Data: []byte(importedSchema)},
		"included.xsd":    &fstest.MapFile{Data: []byte(includedSchema)},
		"definitions.xml": &fstest.MapFile{Data: []byte(definitionLinkbase)},
		"remote.xsd":      &fstest.MapFile{Data: []byte(remoteSchema)},
	}
}

func docURIs(t *testing.T, c *Collector, entryPoints ...string) []string {
	t.Helper()
	docs, err := c.Collect(context.Background(), entryPoints)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	uris := make([]string, len(docs))
	for i, doc := range docs {
		uris[i] = doc.URI()
	}
	return uris
}

func TestCollectClosure(t *testing.T) {
	collector := testCollector(fullFS(), true, false)
	uris := docURIs(t, collector, "entry.xsd")

	want := []string{"entry.xsd", "imported.xsd", "included.xsd", "definitions.xml", "remote.xsd"}
	if !slices.Equal(uris, want) {
		t.Fatalf("Collect() = %v, want %v", uris, want)
	}
}

func TestCollectVisitsEachDocumentOnce(t *testing.T) {
	collector := testCollector(fullFS(), true, false)
	uris := docURIs(t, collector, "entry.xsd", "entry.xsd", "imported.xsd")

	counts := make(map[string]int)
	for _, uri := range uris {
		counts[uri]++
	}
	for uri, n := range counts {
		if n != 1 {
			t.Fatalf("document %s collected %d times", uri, n)
		}
	}
}

func TestTrivialStrategyCollectsVerbatim(t *testing.T) {
	collector := testCollector(fullFS(), false, false)
	uris := docURIs(t, collector, "entry.xsd")
	if !slices.Equal(uris, []string{"entry.xsd"}) {
		t.Fatalf("Collect() = %v, want entry only", uris)
	}
}

func TestStrictFailsOnMissingDocument(t *testing.T) {
	fsys := fullFS()
	delete(fsys, "imported.xsd")
	collector := testCollector(fsys, true, false)

	_, err := collector.Collect(context.Background(), []string{"entry.xsd"})
	var buildErr *xbrlerrors.BuildError
	if !errors.As(err, &buildErr) {
		t.Fatalf("Collect() error = %v, want BuildError", err)
	}
	if !strings.Contains(buildErr.Error(), string(xbrlerrors.ErrDTSDiscovery)) {
		t.Fatalf("BuildError = %q, want the %s code", buildErr.Error(), xbrlerrors.ErrDTSDiscovery)
	}
}

func TestLenientSkipsMissingDocument(t *testing.T) {
	fsys := fullFS()
	delete(fsys, "imported.xsd")
	collector := testCollector(fsys, true, true)

	uris := docURIs(t, collector, "entry.xsd")
	if slices.Contains(uris, "imported.xsd") {
		t.Fatal("missing document reported as collected")
	}
	if !slices.Contains(uris, "remote.xsd") {
		t.Fatal("discovery stopped after skippable failure")
	}
}

func TestCollectHonorsCancellation(t *testing.T) {
	collector := testCollector(fullFS(), true, false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := collector.Collect(ctx, []string{"entry.xsd"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Collect() error = %v, want context.Canceled", err)
	}
}

func TestEntryPointFragmentsAreStripped(t *testing.T) {
	collector := testCollector(fullFS(), false, false)
	uris := docURIs(t, collector, "entry.xsd#someElement")
	if !slices.Equal(uris, []string{"entry.xsd"}) {
		t.Fatalf("Collect() = %v", uris)
	}
}
