package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sweepcut/csr"
	"github.com/katalvlaran/sweepcut/smat"
	"github.com/katalvlaran/sweepcut/sweep"
)

type sweepFlags struct {
	graph    string
	ids      []string
	scores   []string
	degrees  string
	pagerank bool
	offset   int
	rankMap  string
	workers  int
	profile  bool
	check    bool
}

func newSweepCmd(root *rootOptions) *cobra.Command {
	f := &sweepFlags{}

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Find the minimum-conductance prefix of each candidate list",
		Long: `Loads a .smat graph and one or more candidate id files, optionally orders each
list by scores (--scores, one file per --ids, or --pagerank), and prints the
prefix of every list with the smallest conductance.`,
		Example: `  sweepcut sweep --graph minnesota.smat --ids seeds.txt
  sweepcut sweep --graph g.smat.zst --ids a.txt --ids b.txt --pagerank
  sweepcut sweep --graph g.smat --ids a.txt --scores a.scores --profile`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.resolve(cmd, root.config)
			if err != nil {
				return err
			}

			return runSweep(cmd, f, cfg)
		},
	}

	cmd.Flags().StringVarP(&f.graph, "graph", "g", "", "graph file (.smat, .smat.gz, .smat.zst)")
	cmd.Flags().StringSliceVarP(&f.ids, "ids", "i", nil, "candidate id file (repeatable)")
	cmd.Flags().StringSliceVarP(&f.scores, "scores", "s", nil, "score file aligned with each --ids file")
	cmd.Flags().StringVar(&f.degrees, "degrees", "", "precomputed degree vector, zero-based")
	cmd.Flags().BoolVar(&f.pagerank, "pagerank", false, "order candidates by global PageRank")
	cmd.Flags().IntVar(&f.offset, "offset", 0, "id base of candidate files and output (0 or 1)")
	cmd.Flags().StringVar(&f.rankMap, "rank", "", "rank map: dense or hash")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "concurrent sweeps")
	cmd.Flags().BoolVar(&f.profile, "profile", false, "print every prefix")
	cmd.Flags().BoolVar(&f.check, "check", false, "reject duplicate or out-of-range candidates")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("ids")
	cmd.MarkFlagsMutuallyExclusive("scores", "pagerank")

	return cmd
}

// resolve overlays explicitly set flags on the file configuration.
func (f *sweepFlags) resolve(cmd *cobra.Command, cfg Config) (Config, error) {
	flags := cmd.Flags()
	if flags.Changed("offset") {
		cfg.Offset = f.offset
	}
	if flags.Changed("rank") {
		cfg.RankMap = f.rankMap
	}
	if flags.Changed("workers") {
		cfg.Workers = f.workers
	}
	if len(f.scores) > 0 && len(f.scores) != len(f.ids) {
		return cfg, fmt.Errorf("%w: %d --scores for %d --ids", ErrInvalidConfig, len(f.scores), len(f.ids))
	}

	return cfg, cfg.Validate()
}

func runSweep(cmd *cobra.Command, f *sweepFlags, cfg Config) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	p := newProgress(logger)
	g, err := smat.ReadFile(f.graph)
	if err != nil {
		return err
	}
	if cfg.Offset == 1 {
		if g, err = g.WithBase(1); err != nil {
			return err
		}
	}
	p.done("loaded graph", "path", f.graph, "vertices", g.N, "entries", g.NumEdges())

	rankMap, err := sweep.ParseRankMap(cfg.RankMap)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	opts := []sweep.Option{sweep.WithRankMap(rankMap), sweep.WithWorkers(cfg.Workers)}
	if f.degrees != "" {
		degrees, err := smat.ReadFloatsFile(f.degrees)
		if err != nil {
			return err
		}
		opts = append(opts, sweep.WithDegrees(degrees))
		logger.Debug("using precomputed degrees", "path", f.degrees)
	}

	jobs := make([]sweep.Job[int64], len(f.ids))
	for i, path := range f.ids {
		ids, err := smat.ReadIDsFile(path)
		if err != nil {
			return err
		}
		if f.check {
			if err := csr.CheckCandidates(g, ids); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		}
		jobs[i].IDs = ids
		if len(f.scores) > 0 {
			if jobs[i].Scores, err = smat.ReadFloatsFile(f.scores[i]); err != nil {
				return err
			}
		}
		logger.Debug("loaded candidates", "path", path, "count", len(ids))
	}

	if f.pagerank {
		p = newProgress(logger)
		ranks := pageRank(g, cfg.PageRank)
		for i := range jobs {
			jobs[i].Scores = scoresFor(g, ranks, jobs[i].IDs)
		}
		p.done("computed pagerank", "damping", cfg.PageRank.Damping)
	}

	p = newProgress(logger)
	results, err := sweep.Batch(ctx, g, jobs, opts...)
	if err != nil {
		return err
	}
	p.done("swept", "lists", len(jobs), "rank_map", rankMap)

	out := cmd.OutOrStdout()
	for i, res := range results {
		printResult(out, f.ids[i], res)
		if f.profile {
			if err := printProfile(out, g, jobs[i], opts); err != nil {
				return err
			}
		}
	}

	return nil
}

func printResult(w io.Writer, name string, res sweep.Result[int64]) {
	fmt.Fprintf(w, "# %s\n", name)
	fmt.Fprintf(w, "length: %d\n", res.Length)
	fmt.Fprintf(w, "conductance: %.6f\n", res.Conductance)
	fmt.Fprintf(w, "vertices: %s\n", joinIDs(res.Vertices))
}

func printProfile(w io.Writer, g *csr.Graph[int64, int64], job sweep.Job[int64], opts []sweep.Option) error {
	ordered := job.IDs
	if job.Scores != nil {
		var err error
		if ordered, err = sweep.Order(job.IDs, job.Scores); err != nil {
			return err
		}
	}
	steps, err := sweep.Profile(g, ordered, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "prefix\tvertex\tcut\tvolume\tconductance")
	for i, s := range steps {
		fmt.Fprintf(w, "%d\t%d\t%g\t%g\t%.6f\n", i+1, ordered[i], s.Cut, s.Volume, s.Conductance)
	}

	return nil
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}

	return strings.Join(parts, " ")
}
