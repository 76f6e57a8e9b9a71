// Package sweep defines results, options and error definitions for the
// sweep engine.
package sweep

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/katalvlaran/sweepcut/csr"
)

// Sentinel errors for sweep execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("sweep: graph is nil")

	// ErrNoCandidates is returned when the candidate sequence is empty.
	ErrNoCandidates = errors.New("sweep: candidate set is empty")

	// ErrLengthMismatch is returned when scores and ids differ in length.
	ErrLengthMismatch = errors.New("sweep: scores and ids differ in length")

	// ErrVertexOutOfRange is returned when a candidate id is not a vertex.
	ErrVertexOutOfRange = errors.New("sweep: candidate id out of range")

	// ErrDegreesLength is returned when a degree vector is not of length N.
	ErrDegreesLength = errors.New("sweep: degree vector length must equal vertex count")

	// ErrShortBuffer is returned when the output buffer is shorter than the
	// candidate sequence.
	ErrShortBuffer = errors.New("sweep: output buffer shorter than candidate count")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("sweep: invalid option supplied")
)

// Result is the outcome of one sweep.
type Result[V csr.Integer] struct {
	// Length is the number of vertices in the winning prefix, 1 <= Length <= k.
	Length int

	// Conductance is the conductance of the winning prefix, the minimum over
	// all prefixes.
	Conductance float64

	// Vertices is the winning prefix, in the graph's Base convention. It
	// aliases the output buffer.
	Vertices []V
}

// Step describes one prefix of the sweep.
type Step struct {
	// Cut is the edge weight leaving the prefix.
	Cut float64

	// Volume is the sum of degrees inside the prefix.
	Volume float64

	// Conductance is Cut/min(Volume, total-Volume), or 1 when either side
	// has zero volume.
	Conductance float64
}

// RankMap selects how the engine remembers candidate positions.
type RankMap int

const (
	// RankDense keeps a flat slice of length N indexed by vertex id.
	// Guaranteed O(1) lookups at O(N) memory per call.
	RankDense RankMap = iota

	// RankHash keeps a map sized to the candidate count. Preferable when the
	// candidate set is tiny compared to the graph.
	RankHash
)

// String implements fmt.Stringer.
func (r RankMap) String() string {
	switch r {
	case RankDense:
		return "dense"
	case RankHash:
		return "hash"
	default:
		return fmt.Sprintf("RankMap(%d)", int(r))
	}
}

// ParseRankMap converts "dense" or "hash" into a RankMap.
func ParseRankMap(s string) (RankMap, error) {
	switch s {
	case "dense", "":
		return RankDense, nil
	case "hash":
		return RankHash, nil
	default:
		return 0, fmt.Errorf("%w: unknown rank map %q", ErrOptionViolation, s)
	}
}

// Option configures a sweep via functional arguments. Invalid values are
// recorded and surface as ErrOptionViolation when the sweep runs.
type Option func(*Options)

// Options holds the resolved sweep configuration.
type Options struct {
	// Degrees, if non-nil, overrides row-sum degrees. Indexed by zero-based
	// vertex id; length must be N. Trusted as given.
	Degrees []float64

	// RankMap chooses the rank bookkeeping strategy.
	RankMap RankMap

	// Workers bounds concurrent sweeps in Batch.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - no degree override (degrees come from row sums)
//   - RankDense
//   - Workers = GOMAXPROCS
func DefaultOptions() Options {
	return Options{
		Degrees: nil,
		RankMap: RankDense,
		Workers: runtime.GOMAXPROCS(0),
	}
}

// WithDegrees supplies a precomputed degree vector.
func WithDegrees(degrees []float64) Option {
	return func(o *Options) {
		o.Degrees = degrees
	}
}

// WithRankMap selects the rank bookkeeping strategy.
func WithRankMap(r RankMap) Option {
	return func(o *Options) {
		switch r {
		case RankDense, RankHash:
			o.RankMap = r
		default:
			o.err = fmt.Errorf("%w: unknown rank map %d", ErrOptionViolation, int(r))
		}
	}
}

// WithWorkers bounds the number of concurrent sweeps in Batch.
//
//	n > 0: at most n sweeps in flight
//	n <= 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.Workers = n
	}
}

// resolve applies opts over DefaultOptions.
func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
