// Package dts discovers the transitive closure of documents belonging to a
// Discoverable Taxonomy Set.
package dts

import (
	"context"
	"log/slog"

	xbrlerrors "github.com/jacoelho/xbrl/errors"
	"github.com/jacoelho/xbrl/internal/docbuilder"
	"github.com/jacoelho/xbrl/internal/taxoelem"
	"github.com/jacoelho/xbrl/internal/uris"
	"github.com/jacoelho/xbrl/internal/xmldom"
)

// Collector finds the documents of a DTS starting from entry-point URIs.
type Collector struct {
	builder  docbuilder.Builder
	discover bool
	lenient  bool
	logger   *slog.Logger
}

// Config configures a collector.
type Config struct {
	// Builder fetches and parses documents; required.
	Builder docbuilder.Builder
	// Discover selects closure-by-discovery; false collects the entry URIs
	// verbatim and nothing else.
	Discover bool
	// Lenient skips documents that fail to fetch or parse, with a warning.
	Lenient bool
	// Logger receives lenient-mode warnings; nil uses slog.Default.
	Logger *slog.Logger
}

// New returns a collector for the given configuration.
func New(cfg Config) *Collector {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{
		builder:  cfg.Builder,
		discover: cfg.Discover,
		lenient:  cfg.Lenient,
		logger:   logger,
	}
}

// Collect returns the parsed documents of the DTS in discovery order:
// entry points first, then referenced documents as they are found. The
// context is checked between documents.
func (c *Collector) Collect(ctx context.Context, entryPointURIs []string) ([]*xmldom.Document, error) {
	var docs []*xmldom.Document
	visited := make(map[string]bool)
	pending := make([]string, 0, len(entryPointURIs))

	for _, uri := range entryPointURIs {
		uri = uris.StripFragment(uri)
		if !visited[uri] {
			visited[uri] = true
			pending = append(pending, uri)
		}
	}

	for len(pending) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		uri := pending[0]
		pending = pending[1:]

		doc, err := c.builder.Build(ctx, uri)
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			if !c.lenient {
				return nil, &xbrlerrors.BuildError{First: err}
			}
			c.logger.Warn("skipping document", slog.String("uri", uri), slog.Any("error", err))
			continue
		}
		docs = append(docs, doc)

		if !c.discover {
			continue
		}
		for _, ref := range referencedDocumentURIs(doc) {
			if !visited[ref] {
				visited[ref] = true
				pending = append(pending, ref)
			}
		}
	}
	return docs, nil
}

// referencedDocumentURIs enumerates the reference targets of one document
// per the XBRL discovery rules: schema import and include, linkbaseRef,
// locator, roleRef and arcroleRef hrefs, and xbrldt:typedDomainRef. Linkbases
// embedded in schema appinfo are covered by the whole-document walk. Each
// target is resolved against the referencing element's base URI with the
// fragment stripped.
func referencedDocumentURIs(doc *xmldom.Document) []string {
	var refs []string
	root := taxoelem.Elem{Doc: doc, ID: doc.Root()}
	root.Doc.Descendants(root.ID, func(id xmldom.NodeID) bool {
		e := taxoelem.Elem{Doc: doc, ID: id}
		switch e.Name() {
		case taxoelem.XsImport, taxoelem.XsInclude:
			if location, ok := taxoelem.SchemaLocation(e); ok {
				if target, _, ok := taxoelem.ResolveHref(e.BaseURI(), location); ok {
					refs = append(refs, target)
				}
			}
			return true
		case taxoelem.LinkLinkbaseRef, taxoelem.LinkRoleRef, taxoelem.LinkArcroleRef:
			refs = appendHrefTarget(refs, e)
			return true
		}
		if e.AttrOr(taxoelem.XLinkType, "") == "locator" {
			refs = appendHrefTarget(refs, e)
		}
		if ref, ok := taxoelem.TypedDomainRef(e); ok {
			if target, _, ok := taxoelem.ResolveHref(e.BaseURI(), ref); ok && target != "" {
				refs = append(refs, target)
			}
		}
		return true
	})
	return refs
}

func appendHrefTarget(refs []string, e taxoelem.Elem) []string {
	href, ok := e.Attr(taxoelem.XLinkHref)
	if !ok {
		return refs
	}
	target, _, ok := taxoelem.ResolveHref(e.BaseURI(), href)
	if !ok || target == "" {
		return refs
	}
	return append(refs, target)
}
