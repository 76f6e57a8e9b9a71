// Package cli implements the sweepcut command-line interface.
//
// The CLI loads a graph in .smat form (optionally gzip/zstd compressed),
// one or more candidate id files, and either a score file or a PageRank
// computed on the fly, then prints the minimum-conductance prefix.
//
// # Commands
//
//   - sweep:    run the sweep cut and print the best prefix
//   - validate: check a graph file and, optionally, candidate files
//
// # Logging
//
// Progress goes to stderr through charmbracelet/log; --verbose switches to
// debug level. The logger travels in the command context.
//
// # Configuration
//
// --config points at a TOML file (see Config); explicit flags win.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "sweepcut"

// Version is reported by --version; set with -ldflags at build time.
var Version = "dev"

// options shared by every subcommand.
type rootOptions struct {
	verbose    bool
	configPath string
	config     Config
}

// NewRootCommand builds the command tree. Results go to stdout, logs to
// stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           appName,
		Short:         "sweepcut extracts minimum-conductance clusters from ranked vertices",
		Long:          `sweepcut sweeps an ordered candidate list over a CSR graph and reports the prefix with the smallest conductance.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := log.InfoLevel
			if opts.verbose {
				level = log.DebugLevel
			}
			logger := newLogger(stderr, level)
			cmd.SetContext(withLogger(cmd.Context(), logger))

			cfg, err := LoadConfig(opts.configPath)
			if err != nil {
				return err
			}
			opts.config = cfg
			logger.Debug("configuration", "path", opts.configPath, "offset", cfg.Offset,
				"rank_map", cfg.RankMap, "workers", cfg.Workers)

			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "TOML configuration file")

	root.AddCommand(newSweepCmd(opts))
	root.AddCommand(newValidateCmd(opts))

	return root
}

// Execute runs the CLI with the given arguments.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := NewRootCommand(stdout, stderr)
	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}
