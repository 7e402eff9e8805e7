// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/socnet/builder"
	"github.com/katalvlaran/socnet/core"
	"github.com/katalvlaran/socnet/loader"
)

// generateFlags parameterizes the synthetic topologies.
type generateFlags struct {
	n, k, bridge, left, right int
	p                         float64
	seed                      int64
	ids                       string
	output                    string
}

func newGenerateCmd(a *app) *cobra.Command {
	f := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate TOPOLOGY",
		Short: "Write a synthetic social graph document",
		Long: `Write a synthetic graph as a JSON or YAML document that the other commands
can load with --graph.

Topologies:
  path, cycle, star, complete   n members
  bipartite                     --left × --right members
  random                        n members, edge probability --p, --seed
  barbell                       two K_k communities joined by --bridge members`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"path", "cycle", "star", "complete", "bipartite", "random", "barbell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctor, err := f.constructor(args[0])
			if err != nil {
				return err
			}
			bopts, err := f.builderOptions()
			if err != nil {
				return err
			}
			directed, _ := cmd.Flags().GetBool("directed")
			g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(directed)}, bopts, ctor)
			if err != nil {
				return err
			}

			doc := loader.FromGraph(g)
			if strings.EqualFold(f.output, "yaml") {
				enc := yaml.NewEncoder(a.out)
				defer enc.Close()

				return enc.Encode(doc)
			}

			return a.print(doc)
		},
	}

	fl := cmd.Flags()
	fl.IntVar(&f.n, "n", 10, "number of members")
	fl.IntVar(&f.k, "k", 4, "community size for barbell")
	fl.IntVar(&f.bridge, "bridge", 1, "members on the barbell bridge")
	fl.IntVar(&f.left, "left", 3, "left partition size for bipartite")
	fl.IntVar(&f.right, "right", 3, "right partition size for bipartite")
	fl.Float64Var(&f.p, "p", 0.1, "edge probability for random")
	fl.Int64Var(&f.seed, "seed", 1, "random seed")
	fl.StringVar(&f.ids, "ids", "default", "vertex ID scheme: "+strings.Join(builder.IDSchemeNames(), ", "))
	fl.StringVarP(&f.output, "output", "o", "json", "document encoding: json or yaml")

	return cmd
}

func (f *generateFlags) constructor(name string) (builder.Constructor, error) {
	switch strings.ToLower(name) {
	case "path":
		return builder.Path(f.n), nil
	case "cycle":
		return builder.Cycle(f.n), nil
	case "star":
		return builder.Star(f.n), nil
	case "complete":
		return builder.Complete(f.n), nil
	case "bipartite":
		return builder.CompleteBipartite(f.left, f.right), nil
	case "random":
		return builder.RandomSparse(f.n, f.p), nil
	case "barbell":
		return builder.Barbell(f.k, f.bridge), nil
	default:
		return nil, fmt.Errorf("unknown topology %q", name)
	}
}

func (f *generateFlags) builderOptions() ([]builder.BuilderOption, error) {
	idFn, err := builder.ParseIDScheme(f.ids)
	if err != nil {
		return nil, err
	}

	return []builder.BuilderOption{builder.WithSeed(f.seed), builder.WithIDScheme(idFn)}, nil
}
