// Package ename provides expanded names, qualified names, and prefix scopes.
package ename

import (
	"fmt"
	"strings"
)

// NamespaceURI represents a namespace URI.
// This is a newtype over string to provide type safety for namespace URIs.
type NamespaceURI string

// NamespaceEmpty represents an empty namespace URI (no namespace).
const NamespaceEmpty NamespaceURI = ""

// String returns the namespace URI as a string.
func (ns NamespaceURI) String() string {
	return string(ns)
}

// IsEmpty returns true if the namespace URI is empty.
func (ns NamespaceURI) IsEmpty() bool {
	return ns == NamespaceEmpty
}

// EName is an expanded name: an optional namespace URI paired with a local
// name. ENames have value equality and are usable as map keys.
type EName struct {
	Namespace NamespaceURI
	Local     string
}

// New returns the expanded name for the given namespace and local name.
func New(namespace, local string) EName {
	return EName{Namespace: NamespaceURI(namespace), Local: local}
}

// NoNamespace returns an expanded name without a namespace.
func NoNamespace(local string) EName {
	return EName{Local: local}
}

// String renders the James Clark form: {namespace}local, or the bare local
// name when the namespace is empty.
func (e EName) String() string {
	if e.Namespace.IsEmpty() {
		return e.Local
	}
	return "{" + e.Namespace.String() + "}" + e.Local
}

// IsZero reports whether the expanded name is the zero value.
func (e EName) IsZero() bool {
	return e.Namespace.IsEmpty() && e.Local == ""
}

// Parse parses the {namespace-URI}local-name wire form. A string without a
// leading brace is taken as a local name in no namespace.
func Parse(s string) (EName, error) {
	if s == "" {
		return EName{}, fmt.Errorf("invalid expanded name: empty string")
	}
	if !strings.HasPrefix(s, "{") {
		if strings.ContainsAny(s, "{}") {
			return EName{}, fmt.Errorf("invalid expanded name %q: stray brace", s)
		}
		return EName{Local: s}, nil
	}
	end := strings.IndexByte(s, '}')
	if end < 0 {
		return EName{}, fmt.Errorf("invalid expanded name %q: missing closing brace", s)
	}
	local := s[end+1:]
	if local == "" {
		return EName{}, fmt.Errorf("invalid expanded name %q: empty local name", s)
	}
	return EName{Namespace: NamespaceURI(s[1:end]), Local: local}, nil
}

// MustParse parses the wire form and panics on malformed input. Intended for
// package-level constants and tests.
func MustParse(s string) EName {
	e, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return e
}

// Compare orders expanded names by namespace first, then local name.
func Compare(left, right EName) int {
	if c := strings.Compare(left.Namespace.String(), right.Namespace.String()); c != 0 {
		return c
	}
	return strings.Compare(left.Local, right.Local)
}
