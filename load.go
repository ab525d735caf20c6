package xbrl

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"github.com/jacoelho/xbrl/internal/docbuilder"
	"github.com/jacoelho/xbrl/internal/dts"
	"github.com/jacoelho/xbrl/internal/relationship"
	"github.com/jacoelho/xbrl/internal/taxobase"
)

// Load discovers and loads the DTS reachable from the entry-point URIs,
// reading documents from the given filesystem, and returns the query facade.
func Load(ctx context.Context, fsys fs.FS, entryPointURIs ...string) (*Taxonomy, error) {
	return LoadWithOptions(ctx, fsys, entryPointURIs, NewLoadOptions())
}

// LoadWithOptions loads a DTS from a filesystem with explicit configuration.
func LoadWithOptions(ctx context.Context, fsys fs.FS, entryPointURIs []string, opts LoadOptions) (*Taxonomy, error) {
	if fsys == nil {
		return nil, fmt.Errorf("load taxonomy: nil fs")
	}
	return load(ctx, docbuilder.FSOpener{FS: fsys}, entryPointURIs, opts)
}

// LoadNet loads a DTS fetching http and https URIs over the network and
// everything else from the local filesystem. A local-mirror resolver set via
// WithResolver keeps network taxonomies loadable from disk.
func LoadNet(ctx context.Context, client *http.Client, entryPointURIs []string, opts LoadOptions) (*Taxonomy, error) {
	return load(ctx, docbuilder.NetOpener{Client: client}, entryPointURIs, opts)
}

// LoadFiles loads exactly the given files without discovery, rooted at the
// common working directory.
func LoadFiles(ctx context.Context, paths ...string) (*Taxonomy, error) {
	uris := make([]string, len(paths))
	for i, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("load taxonomy %s: %w", path, err)
		}
		uris[i] = filepath.ToSlash(abs)
	}
	opts := NewLoadOptions().WithDiscovery(false)
	return load(ctx, docbuilder.FSOpener{FS: os.DirFS("/")}, uris, opts)
}

func load(ctx context.Context, opener docbuilder.Opener, entryPointURIs []string, opts LoadOptions) (*Taxonomy, error) {
	builder := docbuilder.NewCaching(
		docbuilder.New(opts.resolver, opener),
		opts.cacheSize,
	)
	collector := dts.New(dts.Config{
		Builder:  builder,
		Discover: opts.discover,
		Lenient:  opts.lenient,
		Logger:   opts.logger,
	})
	docs, err := collector.Collect(ctx, entryPointURIs)
	if err != nil {
		return nil, fmt.Errorf("load taxonomy: %w", err)
	}

	base := taxobase.New(docs)
	factory := relationship.NewFactory(base, relationship.FactoryConfig{
		ArcFilter: opts.arcFilter,
		Lenient:   opts.lenient,
		Logger:    opts.logger,
	})
	relationships, err := factory.Relationships(ctx)
	if err != nil {
		return nil, fmt.Errorf("load taxonomy: %w", err)
	}

	return newTaxonomy(base, opts.extraSubstitutionGroup, relationships, opts.lenient, opts.logger)
}
