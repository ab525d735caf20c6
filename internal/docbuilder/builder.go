// Package docbuilder fetches and parses taxonomy documents, optionally
// through a bounded coalescing cache.
package docbuilder

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"strings"

	xbrlerrors "github.com/jacoelho/xbrl/errors"
	"github.com/jacoelho/xbrl/internal/uriresolve"
	"github.com/jacoelho/xbrl/internal/xmldom"
)

// Builder turns a document URI into a parsed document.
type Builder interface {
	Build(ctx context.Context, uri string) (*xmldom.Document, error)
}

// Opener opens the byte stream behind a fetchable URI.
type Opener interface {
	Open(ctx context.Context, uri string) (io.ReadCloser, error)
}

// FSOpener serves documents from a filesystem, keyed by URI path.
type FSOpener struct {
	FS fs.FS
}

// Open opens the file named by uri, tolerating a leading slash and a file://
// scheme so resolver output can be used verbatim.
func (o FSOpener) Open(_ context.Context, uri string) (io.ReadCloser, error) {
	name := strings.TrimPrefix(uri, "file://")
	name = strings.TrimPrefix(name, "/")
	if name == "" {
		name = "."
	}
	f, err := o.FS.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", uri, err)
	}
	return f, nil
}

// NetOpener fetches http and https URIs over the network and treats every
// other URI as a local file path.
type NetOpener struct {
	Client *http.Client
}

// Open fetches uri.
func (o NetOpener) Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	parsed, err := url.Parse(uri)
	if err == nil && (parsed.Scheme == "http" || parsed.Scheme == "https") {
		client := o.Client
		if client == nil {
			client = http.DefaultClient
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", uri, err)
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", uri, err)
		}
		if resp.StatusCode != http.StatusOK {
			if closeErr := resp.Body.Close(); closeErr != nil {
				return nil, fmt.Errorf("fetch %s: status %s (close: %w)", uri, resp.Status, closeErr)
			}
			return nil, fmt.Errorf("fetch %s: status %s", uri, resp.Status)
		}
		return resp.Body, nil
	}

	path := strings.TrimPrefix(uri, "file://")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", uri, err)
	}
	return f, nil
}

// DocumentBuilder resolves a logical URI with the configured resolver, opens
// the resolved URI, and parses the stream. The parsed document keeps the
// logical URI, so fragment keys and base-URI resolution stay resolver-free.
type DocumentBuilder struct {
	resolver uriresolve.Resolver
	opener   Opener
}

// New returns a builder using the given resolver and opener. A nil resolver
// defaults to identity.
func New(resolver uriresolve.Resolver, opener Opener) *DocumentBuilder {
	if resolver == nil {
		resolver = uriresolve.Identity()
	}
	return &DocumentBuilder{resolver: resolver, opener: opener}
}

// Build fetches and parses the document at uri.
func (b *DocumentBuilder) Build(ctx context.Context, uri string) (doc *xmldom.Document, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fetchableURI := b.resolver(uri)
	if fetchableURI == "" {
		return nil, xbrlerrors.NewDocument(uri, xbrlerrors.ErrURIResolve, nil)
	}
	r, err := b.opener.Open(ctx, fetchableURI)
	if err != nil {
		return nil, xbrlerrors.NewDocument(uri, xbrlerrors.ErrDocumentFetch, err)
	}
	defer func() {
		if closeErr := r.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", uri, closeErr)
		}
	}()

	doc, err = xmldom.Parse(r, uri)
	if err != nil {
		return nil, xbrlerrors.NewDocument(uri, xbrlerrors.ErrDocumentParse, err)
	}
	return doc, nil
}
