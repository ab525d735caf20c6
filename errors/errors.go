// Package errors defines the error codes and structured error kinds reported
// by the taxonomy engine.
package errors

import (
	"fmt"
)

// ErrorCode identifies a class of taxonomy-engine failure.
type ErrorCode string

const (
	// ErrURIResolve indicates the resolver produced a URI that cannot be opened.
	ErrURIResolve ErrorCode = "xbrl-uri-resolve"
	// ErrDocumentFetch indicates a document could not be fetched.
	ErrDocumentFetch ErrorCode = "xbrl-doc-fetch"
	// ErrDocumentParse indicates an XML parse failure.
	ErrDocumentParse ErrorCode = "xbrl-doc-parse"
	// ErrDTSDiscovery indicates a strict-mode failure during DTS closure.
	ErrDTSDiscovery ErrorCode = "xbrl-dts-discovery"
	// ErrDanglingLocator indicates an XLink locator references a fragment that
	// does not exist in any discovered document.
	ErrDanglingLocator ErrorCode = "xbrl-dangling-locator"
	// ErrArcClassification indicates a strict-mode arc matched no dispatch entry.
	ErrArcClassification ErrorCode = "xbrl-arc-classification"
	// ErrInvalidConceptDeclaration indicates mutually exclusive substitution groups.
	ErrInvalidConceptDeclaration ErrorCode = "xbrl-invalid-concept-decl"
	// ErrNetworkComputation indicates inconsistent priority/use combinations.
	ErrNetworkComputation ErrorCode = "xbrl-network-computation"
	// ErrMissingElement indicates a getX-style lookup found no element.
	ErrMissingElement ErrorCode = "xbrl-missing-element"
)

// DocumentError is a failure tied to one document URI.
type DocumentError struct {
	URI   string
	Code  ErrorCode
	Cause error
}

// NewDocument returns a DocumentError for the given URI and code.
func NewDocument(uri string, code ErrorCode, cause error) *DocumentError {
	return &DocumentError{URI: uri, Code: code, Cause: cause}
}

func (e *DocumentError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("[%s] %s", e.Code, e.URI)
	}
	return fmt.Sprintf("[%s] %s: %v", e.Code, e.URI, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// BuildError aborts a strict-mode DTS build; it wraps the first failure and
// reports under the ErrDTSDiscovery code.
type BuildError struct {
	First error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("[%s] dts build failed: %v", ErrDTSDiscovery, e.First)
}

// Unwrap returns the first failure.
func (e *BuildError) Unwrap() error {
	return e.First
}

// ClassificationError reports an arc that matched no dispatch entry.
type ClassificationError struct {
	DocURI  string
	Arcrole string
	Detail  string
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("[%s] arc with arcrole %s in %s: %s", ErrArcClassification, e.Arcrole, e.DocURI, e.Detail)
}

// ConceptError reports an invalid concept declaration.
type ConceptError struct {
	Name   string
	Detail string
}

func (e *ConceptError) Error() string {
	return fmt.Sprintf("[%s] concept %s: %s", ErrInvalidConceptDeclaration, e.Name, e.Detail)
}

// MissingElementError reports a getX-style lookup whose target is absent.
type MissingElementError struct {
	What string
}

func (e *MissingElementError) Error() string {
	return fmt.Sprintf("[%s] %s", ErrMissingElement, e.What)
}

// NetworkError reports an inconsistent prohibition/overriding network.
type NetworkError struct {
	BaseSet string
	Detail  string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("[%s] base set %s: %s", ErrNetworkComputation, e.BaseSet, e.Detail)
}
