// Package uriresolve maps logical document URIs to fetchable URIs.
package uriresolve

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// Resolver maps a logical URI to a fetchable URI. An empty result marks the
// URI unmappable; any other mapping that points nowhere surfaces later as a
// fetch error in the document builder.
type Resolver func(uri string) string

// Identity returns every URI unchanged.
func Identity() Resolver {
	return func(uri string) string { return uri }
}

// LocalMirror maps scheme://authority/path to root/authority/path, so a
// taxonomy mirrored on disk can be loaded without touching the network.
// URIs without an authority (already-local paths) pass through unchanged.
func LocalMirror(root string) Resolver {
	return func(uri string) string {
		parsed, err := url.Parse(uri)
		if err != nil || parsed.Host == "" {
			return uri
		}
		local := filepath.Join(root, parsed.Host, filepath.FromSlash(strings.TrimPrefix(path.Clean(parsed.Path), "/")))
		return local
	}
}

// Chain applies resolvers left to right.
func Chain(resolvers ...Resolver) Resolver {
	return func(uri string) string {
		for _, resolve := range resolvers {
			uri = resolve(uri)
		}
		return uri
	}
}
