// SPDX-License-Identifier: MIT
package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/socnet/config"
)

// newRootCmd assembles the socnet command tree writing results to out and
// logs to errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "socnet",
		Short: "Analyze a social graph",
		Long: `socnet answers four questions about a social graph: who is connected to
whom, how far apart two members are, which tightly-knit groups exist and
which unconnected members should be introduced.

Input formats:
  .json / .yaml   {directed, nodes: [{id, attributes}], edges: [{from, to}]}
  .txt / .edges   one "from to" pair per line (SNAP layout)

Examples:
  socnet report --graph data/facebook_combined.txt --top-n 200
  socnet path 0 348 --graph data/facebook_combined.txt
  socnet generate barbell --k 5 --bridge 2 > barbell.json`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.teardown(cmd.Context())
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to a YAML or JSON config file")
	pf.String("graph", "", "graph file to analyze")
	pf.String("format", "", "input format: json, yaml or edgelist (default: from extension)")
	pf.Bool("directed", false, "treat edge-list input as a follower graph")
	pf.Int("top-n", 0, "keep only the N highest-degree members (0 = all)")
	pf.Duration("timeout", 0, "bound each analysis (0 = config value)")
	pf.String("log-level", "", "debug, info, warn or error")
	pf.String("log-format", "", "text or json")
	pf.Bool("trace", false, "log a timing line for every analysis span")

	root.AddCommand(
		newStatsCmd(a),
		newPathCmd(a),
		newImportantCmd(a),
		newCentralityCmd(a),
		newCliquesCmd(a),
		newCommunityCmd(a),
		newBridgeCmd(a),
		newRecommendCmd(a),
		newReportCmd(a),
		newGenerateCmd(a),
	)

	return root
}

// applyFlags overlays explicitly set persistent flags onto cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	fs := cmd.Flags()
	var err error
	set := func(name string, apply func() error) {
		if err == nil && fs.Changed(name) {
			err = apply()
		}
	}

	set("graph", func() (e error) { cfg.Graph.Path, e = fs.GetString("graph"); return })
	set("format", func() (e error) { cfg.Graph.Format, e = fs.GetString("format"); return })
	set("directed", func() (e error) { cfg.Graph.Directed, e = fs.GetBool("directed"); return })
	set("top-n", func() (e error) { cfg.Graph.TopN, e = fs.GetInt("top-n"); return })
	set("log-level", func() (e error) { cfg.Logging.Level, e = fs.GetString("log-level"); return })
	set("log-format", func() (e error) { cfg.Logging.Format, e = fs.GetString("log-format"); return })
	set("trace", func() (e error) { cfg.Tracing.Enabled, e = fs.GetBool("trace"); return })
	set("timeout", func() error {
		d, e := fs.GetDuration("timeout")
		if e == nil && d > 0 {
			cfg.Analysis.Timeout = d
		}

		return e
	})

	// Subcommand-local recommendation flags share the config section.
	set("limit", func() (e error) { cfg.Recommend.Limit, e = fs.GetInt("limit"); return })
	set("cutoff", func() (e error) { cfg.Recommend.Cutoff, e = fs.GetString("cutoff"); return })
	set("reachability", func() (e error) { cfg.Recommend.Reachability, e = fs.GetBool("reachability"); return })

	return err
}
