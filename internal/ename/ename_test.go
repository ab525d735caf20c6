package ename

import (
	"slices"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    EName
		wantErr bool
	}{
		{input: "{urn:example}Sales", want: EName{Namespace: "urn:example", Local: "Sales"}},
		{input: "Sales", want: EName{Local: "Sales"}},
		{input: "{}Sales", want: EName{Local: "Sales"}},
		{input: "", wantErr: true},
		{input: "{urn:example}", wantErr: true},
		{input: "{urn:example", wantErr: true},
		{input: "Sal}es", wantErr: true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) error = nil, want error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	original := New("urn:example", "Sales")
	parsed, err := Parse(original.String())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if parsed != original {
		t.Fatalf("round trip = %v, want %v", parsed, original)
	}
}

func TestCompare(t *testing.T) {
	left := New("urn:a", "b")
	right := New("urn:b", "a")
	if got := Compare(left, right); got >= 0 {
		t.Fatalf("Compare() = %d, want < 0", got)
	}
	if got := Compare(New("urn:a", "b"), New("urn:a", "c")); got >= 0 {
		t.Fatalf("Compare() = %d, want < 0", got)
	}
}

func TestParseQName(t *testing.T) {
	q, err := ParseQName("xbrli:item")
	if err != nil {
		t.Fatalf("ParseQName() error = %v", err)
	}
	if q.Prefix != "xbrli" || q.Local != "item" {
		t.Fatalf("ParseQName() = %v", q)
	}

	q, err = ParseQName("item")
	if err != nil {
		t.Fatalf("ParseQName() error = %v", err)
	}
	if q.HasPrefix() {
		t.Fatalf("ParseQName() unexpected prefix %q", q.Prefix)
	}

	for _, bad := range []string{"", ":item", "xbrli:", "a:b:c"} {
		if _, err := ParseQName(bad); err == nil {
			t.Errorf("ParseQName(%q) error = nil, want error", bad)
		}
	}
}

func TestScopeResolve(t *testing.T) {
	scope := NewScope(map[string]NamespaceURI{
		"xbrli": "http://www.xbrl.org/2003/instance",
		"":      "urn:default",
	})

	got, err := scope.ResolveString("xbrli:item")
	if err != nil {
		t.Fatalf("ResolveString() error = %v", err)
	}
	if want := New("http://www.xbrl.org/2003/instance", "item"); got != want {
		t.Fatalf("ResolveString() = %v, want %v", got, want)
	}

	got, err = scope.ResolveString("item")
	if err != nil {
		t.Fatalf("ResolveString() error = %v", err)
	}
	if want := New("urn:default", "item"); got != want {
		t.Fatalf("ResolveString() = %v, want %v", got, want)
	}

	if _, err := scope.ResolveString("missing:item"); err == nil {
		t.Fatal("ResolveString() error = nil, want unknown prefix error")
	}
}

func TestScopeAppendIsRightBiased(t *testing.T) {
	left := NewScope(map[string]NamespaceURI{"p": "urn:left", "q": "urn:q"})
	right := NewScope(map[string]NamespaceURI{"p": "urn:right"})

	merged := left.Append(right)
	if ns, _ := merged.Lookup("p"); ns != "urn:right" {
		t.Fatalf("Lookup(p) = %s, want urn:right", ns)
	}
	if ns, _ := merged.Lookup("q"); ns != "urn:q" {
		t.Fatalf("Lookup(q) = %s, want urn:q", ns)
	}
}

func TestScopeWithoutDefaultNamespace(t *testing.T) {
	scope := NewScope(map[string]NamespaceURI{"": "urn:default", "p": "urn:p"})
	trimmed := scope.WithoutDefaultNamespace()
	if _, ok := trimmed.DefaultNamespace(); ok {
		t.Fatal("DefaultNamespace() present after removal")
	}
	if !slices.Equal(trimmed.Prefixes(), []string{"p"}) {
		t.Fatalf("Prefixes() = %v", trimmed.Prefixes())
	}
}
