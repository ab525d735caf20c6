package relationship

import (
	"context"
	"log/slog"

	xbrlerrors "github.com/jacoelho/xbrl/errors"
	"github.com/jacoelho/xbrl/internal/taxobase"
	"github.com/jacoelho/xbrl/internal/taxoelem"
)

// ArcFilter restricts which arcs yield relationships.
type ArcFilter func(taxoelem.Arc) bool

// AcceptAll admits every arc.
func AcceptAll(taxoelem.Arc) bool { return true }

// Factory resolves XLink arcs into typed relationships.
type Factory struct {
	base      *taxobase.TaxonomyBase
	arcFilter ArcFilter
	lenient   bool
	logger    *slog.Logger
}

// FactoryConfig configures a relationship factory.
type FactoryConfig struct {
	// ArcFilter restricts which arcs yield relationships; nil accepts all.
	ArcFilter ArcFilter
	// Lenient degrades classification failures and dangling locators to
	// warnings instead of aborting.
	Lenient bool
	// Logger receives lenient-mode warnings; nil uses slog.Default.
	Logger *slog.Logger
}

// NewFactory returns a factory over the given taxonomy base.
func NewFactory(base *taxobase.TaxonomyBase, cfg FactoryConfig) *Factory {
	arcFilter := cfg.ArcFilter
	if arcFilter == nil {
		arcFilter = AcceptAll
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{
		base:      base,
		arcFilter: arcFilter,
		lenient:   cfg.Lenient,
		logger:    logger,
	}
}

// Relationships extracts every relationship from every extended link of
// every document, in discovery order then document order. One relationship
// is produced per (arc, from-end, to-end) triple of the cartesian product of
// the labels the arc names. The context is checked between extended links
// and between arcs.
func (f *Factory) Relationships(ctx context.Context) ([]Relationship, error) {
	var relationships []Relationship
	for _, doc := range f.base.Documents() {
		root := taxoelem.Elem{Doc: doc, ID: doc.Root()}
		for _, linkElem := range root.FindAllOfKind(taxoelem.KindExtendedLink) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			link := taxoelem.ExtendedLink{Elem: linkElem}
			extracted, err := f.extractLink(ctx, link)
			if err != nil {
				return nil, err
			}
			relationships = append(relationships, extracted...)
		}
	}
	return relationships, nil
}

func (f *Factory) extractLink(ctx context.Context, link taxoelem.ExtendedLink) ([]Relationship, error) {
	endpoints, err := f.endpointsByLabel(link)
	if err != nil {
		return nil, err
	}

	var relationships []Relationship
	for _, arc := range link.Arcs() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !f.arcFilter(arc) {
			continue
		}
		for _, from := range endpoints[arc.From()] {
			for _, to := range endpoints[arc.To()] {
				kind, fromConcept, toConcept, ok, err := classify(link, arc, from, to, f.lenient)
				if err != nil {
					if !f.lenient {
						return nil, err
					}
					f.logger.Warn("dropping unclassifiable arc", slog.Any("error", err))
					continue
				}
				if !ok {
					f.logger.Warn("dropping arc with non-concept source",
						slog.String("arcrole", arc.Arcrole()),
						slog.String("doc", arc.DocURI()))
					continue
				}

				elr := link.Role()
				effectiveTargetRole := elr
				if targetRole, has := arc.TargetRole(); has {
					effectiveTargetRole = targetRole
				}
				relationships = append(relationships, Relationship{
					Arc:                 arc,
					Source:              from,
					Target:              to,
					SourceConcept:       fromConcept,
					TargetConcept:       toConcept,
					ELR:                 elr,
					Arcrole:             arc.Arcrole(),
					Kind:                kind,
					EffectiveTargetRole: effectiveTargetRole,
				})
			}
		}
	}
	return relationships, nil
}

// endpointsByLabel maps each xlink:label of the link to its endpoints, in
// document order. Labels may be shared by several locators and resources.
func (f *Factory) endpointsByLabel(link taxoelem.ExtendedLink) (map[string][]taxoelem.Elem, error) {
	endpoints := make(map[string][]taxoelem.Elem)

	for _, loc := range link.Locators() {
		docURI, fragment, ok := loc.Href()
		if !ok {
			continue
		}
		target, found := f.base.ElementByURIWithFragment(docURI, fragment)
		if !found {
			err := xbrlerrors.NewDocument(docURI+"#"+fragment, xbrlerrors.ErrDanglingLocator, nil)
			if !f.lenient {
				return nil, err
			}
			f.logger.Warn("dangling locator", slog.Any("error", err))
			continue
		}
		if label := loc.Label(); label != "" {
			endpoints[label] = append(endpoints[label], target)
		}
	}

	for _, resource := range link.Resources() {
		if label := taxoelem.ResourceLabel(resource); label != "" {
			endpoints[label] = append(endpoints[label], resource)
		}
	}
	return endpoints, nil
}
