package xmldom

import (
	"strings"
	"testing"

	"github.com/jacoelho/xbrl/internal/ename"
)

const sampleXML = `<?xml version="1.0"?>
<root xmlns="urn:def" xmlns:p="urn:p" xml:base="http://example.com/base/root.xml">
  <p:child id="c1" attr="v1">text one</p:child>
  <child xmlns:q="urn:q" xml:base="sub/doc.xml">
    <q:leaf id="c2"/>
  </child>
</root>`

func parseSample(t *testing.T) *Document {
	t.Helper()
	doc, err := Parse(strings.NewReader(sampleXML), "http://example.com/doc.xml")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return doc
}

func TestParseStructure(t *testing.T) {
	doc := parseSample(t)
	root := doc.Root()
	if got := doc.Name(root); got != ename.New("urn:def", "root") {
		t.Fatalf("root Name() = %v", got)
	}
	children := doc.Children(root)
	if len(children) != 2 {
		t.Fatalf("Children() = %d, want 2", len(children))
	}
	if got := doc.Name(children[0]); got != ename.New("urn:p", "child") {
		t.Fatalf("child[0] Name() = %v", got)
	}
	if doc.Parent(children[0]) != root {
		t.Fatal("Parent() mismatch")
	}
	if got := doc.Text(children[0]); got != "text one" {
		t.Fatalf("Text() = %q", got)
	}
	if got, _ := doc.Attr(children[0], ename.NoNamespace("attr")); got != "v1" {
		t.Fatalf("Attr() = %q", got)
	}
	if doc.ElemIndex(children[1]) != 1 {
		t.Fatalf("ElemIndex() = %d, want 1", doc.ElemIndex(children[1]))
	}
}

func TestScopes(t *testing.T) {
	doc := parseSample(t)
	root := doc.Root()
	leaf := doc.Children(doc.Children(root)[1])[0]

	scope := doc.Scope(leaf)
	if ns, _ := scope.Lookup("q"); ns != "urn:q" {
		t.Fatalf("Lookup(q) = %s", ns)
	}
	if ns, _ := scope.Lookup("p"); ns != "urn:p" {
		t.Fatalf("Lookup(p) = %s", ns)
	}
	if ns, _ := scope.DefaultNamespace(); ns != "urn:def" {
		t.Fatalf("DefaultNamespace() = %s", ns)
	}
	if _, ok := doc.LookupPrefix(root, "q"); ok {
		t.Fatal("LookupPrefix(root, q) should be unbound")
	}
}

func TestBaseURIInheritance(t *testing.T) {
	doc := parseSample(t)
	root := doc.Root()
	if got := doc.BaseURI(root); got != "http://example.com/base/root.xml" {
		t.Fatalf("root BaseURI() = %s", got)
	}
	second := doc.Children(root)[1]
	if got := doc.BaseURI(second); got != "http://example.com/base/sub/doc.xml" {
		t.Fatalf("nested BaseURI() = %s", got)
	}
	leaf := doc.Children(second)[0]
	if got := doc.BaseURI(leaf); got != "http://example.com/base/sub/doc.xml" {
		t.Fatalf("leaf BaseURI() = %s", got)
	}
}

func TestElementByID(t *testing.T) {
	doc := parseSample(t)
	id, ok := doc.ElementByID("c2")
	if !ok {
		t.Fatal("ElementByID(c2) not found")
	}
	if got := doc.Name(id); got != ename.New("urn:q", "leaf") {
		t.Fatalf("Name() = %v", got)
	}
	if _, ok := doc.ElementByID("missing"); ok {
		t.Fatal("ElementByID(missing) found")
	}
}

func TestFragmentKeyStableAcrossRebuilds(t *testing.T) {
	first := parseSample(t)
	second, err := Parse(strings.NewReader(sampleXML), "http://example.com/doc.xml")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	leaf1, _ := first.ElementByID("c2")
	leaf2, _ := second.ElementByID("c2")
	if first.Key(leaf1) != second.Key(leaf2) {
		t.Fatalf("Key() differs across rebuilds: %v vs %v", first.Key(leaf1), second.Key(leaf2))
	}

	child1, _ := first.ElementByID("c1")
	if first.Key(leaf1) == first.Key(child1) {
		t.Fatal("distinct elements share a fragment key")
	}
}

func TestResolveFragmentElementScheme(t *testing.T) {
	doc := parseSample(t)

	tests := []struct {
		fragment string
		wantName ename.EName
		wantOK   bool
	}{
		{fragment: "c1", wantName: ename.New("urn:p", "child"), wantOK: true},
		{fragment: "element(c1)", wantName: ename.New("urn:p", "child"), wantOK: true},
		{fragment: "element(/1/2/1)", wantName: ename.New("urn:q", "leaf"), wantOK: true},
		{fragment: "element(/1)", wantName: ename.New("urn:def", "root"), wantOK: true},
		{fragment: "element(c2/1)", wantOK: false},
		{fragment: "element(/2)", wantOK: false},
		{fragment: "element(/1/x)", wantOK: false},
		{fragment: "missing", wantOK: false},
	}
	for _, tt := range tests {
		id, ok := doc.ResolveFragment(tt.fragment)
		if ok != tt.wantOK {
			t.Errorf("ResolveFragment(%q) ok = %v, want %v", tt.fragment, ok, tt.wantOK)
			continue
		}
		if ok && doc.Name(id) != tt.wantName {
			t.Errorf("ResolveFragment(%q) = %v, want %v", tt.fragment, doc.Name(id), tt.wantName)
		}
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse(strings.NewReader("<a><b></a>"), "bad.xml"); err == nil {
		t.Fatal("Parse() error = nil for mismatched tags")
	}
	if _, err := Parse(strings.NewReader(""), "empty.xml"); err == nil {
		t.Fatal("Parse() error = nil for empty input")
	}
}
