// Package uris resolves URI references against base URIs, including the
// scheme-less relative bases common when taxonomies are loaded from local
// file trees.
package uris

import (
	"net/url"
	"path"
	"strings"
)

// Resolve resolves ref against base per RFC 3986, except that a relative
// base keeps the result relative instead of gaining a spurious root slash.
// Unparseable input is returned verbatim; resolution is total.
func Resolve(base, ref string) string {
	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	if refURL.IsAbs() {
		return ref
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}
	if baseURL.IsAbs() || strings.HasPrefix(base, "/") {
		return baseURL.ResolveReference(refURL).String()
	}
	if strings.HasPrefix(ref, "/") {
		return ref
	}
	i := strings.LastIndex(base, "/")
	if i < 0 {
		return path.Clean(ref)
	}
	return path.Clean(base[:i+1] + ref)
}

// StripFragment removes the #fragment part of a URI, if any.
func StripFragment(uri string) string {
	if idx := strings.IndexByte(uri, '#'); idx >= 0 {
		return uri[:idx]
	}
	return uri
}
