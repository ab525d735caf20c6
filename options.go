package xbrl

import (
	"log/slog"

	"github.com/jacoelho/xbrl/internal/docbuilder"
	"github.com/jacoelho/xbrl/internal/ename"
)

// LoadOptions configures DTS discovery and taxonomy construction.
type LoadOptions struct {
	cacheSize              int
	lenient                bool
	discover               bool
	resolver               Resolver
	arcFilter              ArcFilter
	extraSubstitutionGroup map[EName]EName
	logger                 *slog.Logger
}

// NewLoadOptions returns default options: discovery on, strict mode, and a
// document cache of DefaultCacheSize.
func NewLoadOptions() LoadOptions {
	return LoadOptions{
		cacheSize: docbuilder.DefaultCacheSize,
		discover:  true,
	}
}

// WithCacheSize sets the document-cache capacity. Non-positive values select
// the default.
func (o LoadOptions) WithCacheSize(size int) LoadOptions {
	o.cacheSize = size
	return o
}

// WithLenient controls discovery tolerance and classification strictness: in
// lenient mode per-item failures become warnings and the item is elided.
func (o LoadOptions) WithLenient(lenient bool) LoadOptions {
	o.lenient = lenient
	return o
}

// WithDiscovery selects closure-by-discovery (default) or, when false,
// loading exactly the supplied entry-point documents.
func (o LoadOptions) WithDiscovery(discover bool) LoadOptions {
	o.discover = discover
	return o
}

// WithResolver sets the URI resolver; nil means identity.
func (o LoadOptions) WithResolver(resolver Resolver) LoadOptions {
	o.resolver = resolver
	return o
}

// WithArcFilter restricts which arcs yield relationships; nil accepts all.
func (o LoadOptions) WithArcFilter(filter ArcFilter) LoadOptions {
	o.arcFilter = filter
	return o
}

// WithExtraSubstitutionGroups supplies substitution-group edges for globals
// that live outside the loaded documents; extras win on conflict.
func (o LoadOptions) WithExtraSubstitutionGroups(extra map[EName]EName) LoadOptions {
	merged := make(map[ename.EName]ename.EName, len(extra))
	for child, parent := range extra {
		merged[child] = parent
	}
	o.extraSubstitutionGroup = merged
	return o
}

// WithLogger sets the diagnostics sink for lenient-mode warnings; nil uses
// slog.Default.
func (o LoadOptions) WithLogger(logger *slog.Logger) LoadOptions {
	o.logger = logger
	return o
}
