package uris

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		base, ref, want string
	}{
		{"entry.xsd", "imported.xsd", "imported.xsd"},
		{"dir/entry.xsd", "imported.xsd", "dir/imported.xsd"},
		{"dir/entry.xsd", "../other.xsd", "other.xsd"},
		{"http://example.com/a/entry.xsd", "imported.xsd", "http://example.com/a/imported.xsd"},
		{"http://example.com/a/entry.xsd", "http://other.org/x.xsd", "http://other.org/x.xsd"},
		{"entry.xsd", "/abs/x.xsd", "/abs/x.xsd"},
		{"/abs/entry.xsd", "x.xsd", "/abs/x.xsd"},
	}
	for _, tt := range tests {
		if got := Resolve(tt.base, tt.ref); got != tt.want {
			t.Errorf("Resolve(%q, %q) = %q, want %q", tt.base, tt.ref, got, tt.want)
		}
	}
}

func TestStripFragment(t *testing.T) {
	if got := StripFragment("a.xsd#frag"); got != "a.xsd" {
		t.Fatalf("StripFragment() = %q", got)
	}
	if got := StripFragment("a.xsd"); got != "a.xsd" {
		t.Fatalf("StripFragment() = %q", got)
	}
}
