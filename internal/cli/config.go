package cli

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/sweepcut/sweep"
)

// ErrInvalidConfig is returned for out-of-domain configuration values.
var ErrInvalidConfig = errors.New("cli: invalid configuration")

// Config is the TOML configuration file. Command-line flags override it.
//
//	offset   = 0        # id base of candidate files and printed results
//	rank_map = "dense"  # or "hash"
//	workers  = 4        # concurrent sweeps when several --ids files are given
//
//	[pagerank]
//	damping   = 0.85
//	tolerance = 1e-6
type Config struct {
	Offset   int            `toml:"offset"`
	RankMap  string         `toml:"rank_map"`
	Workers  int            `toml:"workers"`
	PageRank PageRankConfig `toml:"pagerank"`
}

// PageRankConfig tunes the gonum PageRank used by --pagerank.
type PageRankConfig struct {
	Damping   float64 `toml:"damping"`
	Tolerance float64 `toml:"tolerance"`
}

// DefaultConfig returns the values used when no file is given.
func DefaultConfig() Config {
	return Config{
		Offset:  0,
		RankMap: sweep.RankDense.String(),
		Workers: runtime.GOMAXPROCS(0),
		PageRank: PageRankConfig{
			Damping:   0.85,
			Tolerance: 1e-6,
		},
	}
}

// LoadConfig overlays the TOML file at path onto DefaultConfig. An empty
// path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("cli: config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q in %s", ErrInvalidConfig, undecoded[0].String(), path)
	}

	return cfg, cfg.Validate()
}

// Validate checks every field's domain.
func (c Config) Validate() error {
	if c.Offset != 0 && c.Offset != 1 {
		return fmt.Errorf("%w: offset must be 0 or 1, got %d", ErrInvalidConfig, c.Offset)
	}
	if _, err := sweep.ParseRankMap(c.RankMap); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.PageRank.Damping <= 0 || c.PageRank.Damping >= 1 {
		return fmt.Errorf("%w: pagerank.damping must be in (0,1), got %g", ErrInvalidConfig, c.PageRank.Damping)
	}
	if c.PageRank.Tolerance <= 0 {
		return fmt.Errorf("%w: pagerank.tolerance must be positive, got %g", ErrInvalidConfig, c.PageRank.Tolerance)
	}

	return nil
}
