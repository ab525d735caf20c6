package ename

import (
	"fmt"
	"maps"
	"slices"
)

// Scope maps namespace prefixes to namespace URIs. The empty prefix key holds
// the default namespace. The zero value is an empty scope.
type Scope struct {
	bindings map[string]NamespaceURI
}

// NewScope returns a scope holding the given prefix bindings.
func NewScope(bindings map[string]NamespaceURI) Scope {
	if len(bindings) == 0 {
		return Scope{}
	}
	return Scope{bindings: maps.Clone(bindings)}
}

// Lookup returns the namespace bound to prefix, if any. The empty prefix
// queries the default namespace.
func (s Scope) Lookup(prefix string) (NamespaceURI, bool) {
	ns, ok := s.bindings[prefix]
	return ns, ok
}

// DefaultNamespace returns the default namespace, if bound.
func (s Scope) DefaultNamespace() (NamespaceURI, bool) {
	return s.Lookup("")
}

// Append returns the right-biased composition of s and other: bindings in
// other win on conflicting prefixes.
func (s Scope) Append(other Scope) Scope {
	if len(other.bindings) == 0 {
		return s
	}
	if len(s.bindings) == 0 {
		return other
	}
	merged := make(map[string]NamespaceURI, len(s.bindings)+len(other.bindings))
	maps.Copy(merged, s.bindings)
	maps.Copy(merged, other.bindings)
	return Scope{bindings: merged}
}

// WithoutDefaultNamespace returns the scope with the default-namespace
// binding removed.
func (s Scope) WithoutDefaultNamespace() Scope {
	if _, ok := s.bindings[""]; !ok {
		return s
	}
	trimmed := maps.Clone(s.bindings)
	delete(trimmed, "")
	return Scope{bindings: trimmed}
}

// Resolve resolves a qualified name to an expanded name. Unprefixed names
// take the default namespace when one is bound, or no namespace otherwise.
func (s Scope) Resolve(q QName) (EName, error) {
	if !q.HasPrefix() {
		if ns, ok := s.DefaultNamespace(); ok {
			return EName{Namespace: ns, Local: q.Local}, nil
		}
		return EName{Local: q.Local}, nil
	}
	ns, ok := s.Lookup(q.Prefix)
	if !ok {
		return EName{}, fmt.Errorf("prefix %s not found in scope", q.Prefix)
	}
	return EName{Namespace: ns, Local: q.Local}, nil
}

// ResolveString parses and resolves a prefix:local-name string in one step.
func (s Scope) ResolveString(lexical string) (EName, error) {
	q, err := ParseQName(lexical)
	if err != nil {
		return EName{}, err
	}
	return s.Resolve(q)
}

// Prefixes returns the bound prefixes in sorted order.
func (s Scope) Prefixes() []string {
	prefixes := make([]string, 0, len(s.bindings))
	for prefix := range s.bindings {
		prefixes = append(prefixes, prefix)
	}
	slices.Sort(prefixes)
	return prefixes
}

// Len returns the number of bindings.
func (s Scope) Len() int {
	return len(s.bindings)
}
