package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sweepcut/csr"
	"github.com/katalvlaran/sweepcut/smat"
)

func newValidateCmd(root *rootOptions) *cobra.Command {
	var (
		graphPath string
		idPaths   []string
		offset    int
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a graph file and optional candidate files",
		Long: `Parses the graph, which verifies its CSR invariants (monotone rows,
in-range columns, finite non-negative weights), and checks for every --ids file
that each id names a vertex and none repeats.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := loggerFromContext(cmd.Context())
			if !cmd.Flags().Changed("offset") {
				offset = root.config.Offset
			}
			if offset != 0 && offset != 1 {
				return fmt.Errorf("%w: offset must be 0 or 1, got %d", ErrInvalidConfig, offset)
			}

			p := newProgress(logger)
			g, err := smat.ReadFile(graphPath)
			if err != nil {
				return err
			}
			if offset == 1 {
				if g, err = g.WithBase(1); err != nil {
					return err
				}
			}
			p.done("graph ok", "path", graphPath, "vertices", g.N, "entries", g.NumEdges(),
				"volume", g.TotalVolume())

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: ok (%d vertices, %d entries)\n", graphPath, g.N, g.NumEdges())
			for _, path := range idPaths {
				ids, err := smat.ReadIDsFile(path)
				if err != nil {
					return err
				}
				if err := csr.CheckCandidates(g, ids); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				fmt.Fprintf(out, "%s: ok (%d ids)\n", path, len(ids))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&graphPath, "graph", "g", "", "graph file (.smat, .smat.gz, .smat.zst)")
	cmd.Flags().StringSliceVarP(&idPaths, "ids", "i", nil, "candidate id file (repeatable)")
	cmd.Flags().IntVar(&offset, "offset", 0, "id base of candidate files (0 or 1)")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}
