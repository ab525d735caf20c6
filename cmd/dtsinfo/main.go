// Command dtsinfo loads a Discoverable Taxonomy Set and prints concepts,
// relationships, and dimensional structures. It is a consumer of the query
// engine, not part of it.
package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jacoelho/xbrl"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type loadFlags struct {
	configPath string
	mirrorRoot string
	cacheSize  int
	lenient    bool
	noDiscover bool
}

func newRootCmd() *cobra.Command {
	flags := &loadFlags{}
	root := &cobra.Command{
		Use:           "dtsinfo",
		Short:         "Inspect XBRL taxonomies",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "yaml configuration file")
	root.PersistentFlags().StringVar(&flags.mirrorRoot, "mirror-root", "", "local mirror root for remote URIs")
	root.PersistentFlags().IntVar(&flags.cacheSize, "cache-size", 0, "document cache capacity (0 = default)")
	root.PersistentFlags().BoolVar(&flags.lenient, "lenient", false, "tolerate discovery and classification failures")
	root.PersistentFlags().BoolVar(&flags.noDiscover, "no-discover", false, "load only the given documents")

	root.AddCommand(newConceptsCmd(flags))
	root.AddCommand(newRelationshipsCmd(flags))
	root.AddCommand(newDimensionsCmd(flags))
	return root
}

func loadTaxonomy(ctx context.Context, flags *loadFlags, entryPoints []string) (*xbrl.Taxonomy, error) {
	opts := xbrl.NewLoadOptions()
	mirrorRoot := flags.mirrorRoot
	if flags.configPath != "" {
		cfg, err := readConfig(flags.configPath)
		if err != nil {
			return nil, err
		}
		if mirrorRoot == "" {
			mirrorRoot = cfg.MirrorRoot
		}
		if cfg.CacheSize > 0 {
			opts = opts.WithCacheSize(cfg.CacheSize)
		}
		if cfg.Lenient {
			opts = opts.WithLenient(true)
		}
		if cfg.Discover != nil {
			opts = opts.WithDiscovery(*cfg.Discover)
		}
	}
	if flags.cacheSize > 0 {
		opts = opts.WithCacheSize(flags.cacheSize)
	}
	if flags.lenient {
		opts = opts.WithLenient(true)
	}
	if flags.noDiscover {
		opts = opts.WithDiscovery(false)
	}
	if mirrorRoot != "" {
		opts = opts.WithResolver(xbrl.LocalMirrorResolver(mirrorRoot))
	}
	return xbrl.LoadNet(ctx, nil, entryPoints, opts)
}

func newConceptsCmd(flags *loadFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "concepts <entry-point>...",
		Short: "List concept declarations",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taxonomy, err := loadTaxonomy(cmd.Context(), flags, args)
			if err != nil {
				return err
			}
			for _, decl := range taxonomy.ConceptDeclarations() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-18s %s\n", decl.Kind, decl.Target)
			}
			return nil
		},
	}
}

func newRelationshipsCmd(flags *loadFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "relationships <entry-point>...",
		Short: "Summarize relationships by kind",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taxonomy, err := loadTaxonomy(cmd.Context(), flags, args)
			if err != nil {
				return err
			}
			counts := make(map[string]int)
			for _, rel := range taxonomy.Relationships() {
				counts[rel.Kind.String()]++
			}
			kinds := make([]string, 0, len(counts))
			for kind := range counts {
				kinds = append(kinds, kind)
			}
			sort.Strings(kinds)
			for _, kind := range kinds {
				fmt.Fprintf(cmd.OutOrStdout(), "%-22s %d\n", kind, counts[kind])
			}
			return nil
		},
	}
}

func newDimensionsCmd(flags *loadFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "dimensions <concept-ename> <entry-point>...",
		Short: "Print the usable dimension members for a primary item",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			concept, err := xbrl.ParseEName(args[0])
			if err != nil {
				return err
			}
			taxonomy, err := loadTaxonomy(cmd.Context(), flags, args[1:])
			if err != nil {
				return err
			}
			for _, hh := range taxonomy.FindAllOwnOrInheritedHasHypercubes(concept) {
				fmt.Fprintf(cmd.OutOrStdout(), "hypercube %s (elr %s)\n", hh.TargetConcept, hh.ELR)
				for dimension, members := range taxonomy.FindAllUsableDimensionMembers(hh) {
					fmt.Fprintf(cmd.OutOrStdout(), "  dimension %s\n", dimension)
					for member := range members {
						fmt.Fprintf(cmd.OutOrStdout(), "    member %s\n", member)
					}
				}
			}
			return nil
		},
	}
}
