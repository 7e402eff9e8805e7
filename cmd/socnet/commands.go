// SPDX-License-Identifier: MIT
package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/socnet/community"
	"github.com/katalvlaran/socnet/core"
	"github.com/katalvlaran/socnet/loader"
)

// run wraps a command body with engine loading and the analysis deadline.
func (a *app) run(body func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if _, err := a.analysisEngine(); err != nil {
			return err
		}
		parent := cmd.Context()
		ctx, cancel := a.deadline(parent)
		defer cancel()
		cmd.SetContext(ctx)
		defer cmd.SetContext(parent)

		return body(cmd, args)
	}
}

// statsResult is the output of the stats command.
type statsResult struct {
	*core.GraphStats
	Circles       int `json:"friend_circles"`
	LargestCircle int `json:"largest_circle"`
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print node, edge and friend-circle counts of the analyzed graph",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			circles, err := a.engine.FriendCircles(cmd.Context())
			if err != nil {
				return err
			}
			res := statsResult{GraphStats: a.graph.Stats(), Circles: len(circles)}
			if len(circles) > 0 {
				res.LargestCircle = len(circles[0])
			}

			return a.print(res)
		}),
	}
}

// pathResult is the output of the path command.
type pathResult struct {
	From     string   `json:"from"`
	To       string   `json:"to"`
	Exists   bool     `json:"exists"`
	Distance int      `json:"distance"`
	Path     []string `json:"path,omitempty"`
}

func newPathCmd(a *app) *cobra.Command {
	var useDFS bool
	cmd := &cobra.Command{
		Use:   "path FROM TO",
		Short: "Check reachability and hop distance between two members",
		Args:  cobra.ExactArgs(2),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			res := pathResult{From: args[0], To: args[1]}
			var err error
			if useDFS {
				res.Exists, err = a.engine.PathExistsDFS(ctx, res.From, res.To)
			} else {
				res.Exists, err = a.engine.PathExists(ctx, res.From, res.To)
			}
			if err != nil {
				return err
			}
			res.Path, res.Distance = a.engine.ShortestPath(ctx, res.From, res.To)

			return a.print(res)
		}),
	}
	cmd.Flags().BoolVar(&useDFS, "dfs", false, "use the depth-first walker")

	return cmd
}

func newImportantCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "important",
		Short: "List members tied at the highest degree centrality",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			top, err := a.engine.FindImportantNodes(cmd.Context())
			if err != nil {
				return err
			}

			return a.print(top)
		}),
	}
}

func newCentralityCmd(a *app) *cobra.Command {
	var (
		betweenness bool
		members     []string
	)
	cmd := &cobra.Command{
		Use:   "centrality",
		Short: "Score every member by degree or betweenness centrality",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			var (
				scores map[string]float64
				err    error
			)
			if betweenness {
				scores, err = a.engine.BetweennessCentrality(cmd.Context(), members...)
			} else {
				scores, err = a.engine.DegreeCentrality(cmd.Context())
			}
			if err != nil {
				return err
			}

			return a.print(rankedScores(scores))
		}),
	}
	cmd.Flags().BoolVar(&betweenness, "betweenness", false, "compute betweenness instead of degree centrality")
	cmd.Flags().StringSliceVar(&members, "members", nil, "restrict betweenness to the subgraph induced by these members")

	return cmd
}

func newCliquesCmd(a *app) *cobra.Command {
	var largest bool
	cmd := &cobra.Command{
		Use:   "cliques",
		Short: "Enumerate maximal cliques, smallest first",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			if largest {
				members, ok, err := a.engine.LargestClique(cmd.Context())
				if err != nil {
					return err
				}
				if !ok {
					members = []string{}
				}

				return a.print(members)
			}
			cs, err := a.engine.FindAllMaximalCliques(cmd.Context())
			if err != nil {
				return err
			}

			return a.print(cs)
		}),
	}
	cmd.Flags().BoolVar(&largest, "largest", false, "print only the largest clique")

	return cmd
}

func newCommunityCmd(a *app) *cobra.Command {
	var members []string
	cmd := &cobra.Command{
		Use:   "community",
		Short: "Print the one-hop ego network of the largest clique (or of --members)",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			var (
				ego *core.Graph
				ok  = true
				err error
			)
			if len(members) > 0 {
				ego, err = a.engine.ExpandByOneHop(cmd.Context(), members)
			} else {
				ego, ok, err = a.engine.FindLargestCommunity(cmd.Context())
			}
			if err != nil {
				return err
			}
			if !ok {
				return a.print(loader.Document{Edges: []loader.Link{}})
			}

			return a.print(loader.FromGraph(ego))
		}),
	}
	cmd.Flags().StringSliceVar(&members, "members", nil, "expand these members instead of the largest clique")

	return cmd
}

func newBridgeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bridge",
		Short: "Describe how the two largest communities connect",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			b, err := a.engine.Bridge(cmd.Context())
			if err != nil && !errors.Is(err, community.ErrInsufficientCliques) {
				return err
			}

			return a.print(b)
		}),
	}
}

func newRecommendCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend introductions between unconnected co-neighbors",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			pairs, err := a.recommend(cmd.Context())
			if err != nil {
				return err
			}

			return a.print(pairs)
		}),
	}
	addRecommendFlags(cmd)

	return cmd
}

func addRecommendFlags(cmd *cobra.Command) {
	cmd.Flags().Int("limit", 0, "k of the top-k cutoff")
	cmd.Flags().String("cutoff", "", "strict (ties above the k-th count) or topk (exactly k)")
	cmd.Flags().Bool("reachability", false, "treat any existing path, not just an edge, as connected")
}
