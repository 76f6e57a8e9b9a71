package sweep

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sweepcut/csr"
)

const (
	methodSweep       = "Sweep"
	methodSweepSorted = "SweepSorted"
	methodProfile     = "Profile"
)

// Sweep evaluates every prefix of ids and returns the one with minimum
// conductance. The result buffer is allocated with len(ids) capacity.
//
// Algorithm Outline:
//  1. rank[v] = i+1 for the candidate at position i (0 means "not a candidate").
//  2. total = sum of all edge weights.
//  3. For i = 0..k-1 with v = ids[i]:
//     deg   = Degrees[v] if supplied, else the row sum of v
//     delta = deg − 2·Σ w(v,u) over neighbours u with 0 < rank[u] < rank[v]
//     cut  += delta; vol += deg
//     φ_i   = 1 if vol == 0 or total−vol == 0, else cut / min(vol, total−vol)
//  4. Keep the first i with the smallest φ_i; return ids[0..i].
//
// Self-loops add to deg but are never subtracted, since rank[v] < rank[v]
// cannot hold.
//
// Errors:
//   - ErrNilGraph, ErrNoCandidates, ErrVertexOutOfRange, ErrDegreesLength,
//     ErrOptionViolation.
func Sweep[V, I csr.Integer](g *csr.Graph[V, I], ids []V, opts ...Option) (Result[V], error) {
	return SweepInto(make([]V, 0, len(ids)), g, ids, opts...)
}

// SweepInto is Sweep writing the winning prefix into dst, which must have
// capacity of at least len(ids). Only dst[:Length] is written; the rest of
// the backing array is left untouched. Result.Vertices aliases dst.
func SweepInto[V, I csr.Integer](dst []V, g *csr.Graph[V, I], ids []V, opts ...Option) (Result[V], error) {
	o := resolve(opts)
	if err := check(methodSweep, g, ids, o); err != nil {
		return Result[V]{}, err
	}
	if cap(dst) < len(ids) {
		return Result[V]{}, fmt.Errorf("%s: cap(dst)=%d < %d: %w", methodSweep, cap(dst), len(ids), ErrShortBuffer)
	}

	best, at := run(g, ids, o, nil)
	n := at + 1
	out := dst[:n]
	copy(out, ids[:n])

	return Result[V]{Length: n, Conductance: best, Vertices: out}, nil
}

// SweepSorted orders ids by scores, descending, and sweeps the result.
// Neither ids nor scores is modified. Ties in score are ordered arbitrarily.
func SweepSorted[V, I csr.Integer](g *csr.Graph[V, I], scores []float64, ids []V, opts ...Option) (Result[V], error) {
	return SweepSortedInto(make([]V, 0, len(ids)), g, scores, ids, opts...)
}

// SweepSortedInto is SweepSorted writing into dst, as SweepInto.
func SweepSortedInto[V, I csr.Integer](dst []V, g *csr.Graph[V, I], scores []float64, ids []V, opts ...Option) (Result[V], error) {
	ordered, err := Order(ids, scores)
	if err != nil {
		return Result[V]{}, fmt.Errorf("%s: %w", methodSweepSorted, err)
	}

	return SweepInto(dst, g, ordered, opts...)
}

// Profile runs the same pass as Sweep and returns the cut, volume and
// conductance of every prefix; steps[i] describes ids[0..i].
func Profile[V, I csr.Integer](g *csr.Graph[V, I], ids []V, opts ...Option) ([]Step, error) {
	o := resolve(opts)
	if err := check(methodProfile, g, ids, o); err != nil {
		return nil, err
	}

	steps := make([]Step, len(ids))
	run(g, ids, o, func(i int, s Step) { steps[i] = s })

	return steps, nil
}

// check validates the cheap preconditions shared by every entry point. The
// CSR arrays themselves are trusted.
func check[V, I csr.Integer](method string, g *csr.Graph[V, I], ids []V, o Options) error {
	if g == nil {
		return ErrNilGraph
	}
	if o.err != nil {
		return o.err
	}
	if len(ids) == 0 {
		return fmt.Errorf("%s: %w", method, ErrNoCandidates)
	}
	if o.Degrees != nil && len(o.Degrees) != int(g.N) {
		return fmt.Errorf("%s: len(Degrees)=%d, N=%d: %w", method, len(o.Degrees), g.N, ErrDegreesLength)
	}
	for i, id := range ids {
		if !g.Contains(id) {
			return fmt.Errorf("%s: ids[%d]=%d: %w", method, i, id, ErrVertexOutOfRange)
		}
	}

	return nil
}

// run is the single linear pass. It returns the minimum conductance and the
// index of the first prefix achieving it; visit, if non-nil, sees every step.
func run[V, I csr.Integer](g *csr.Graph[V, I], ids []V, o Options, visit func(int, Step)) (best float64, at int) {
	rk := newRanker[V](o.RankMap, int(g.N), len(ids))
	for i, id := range ids {
		rk.set(id-g.Base, i+1)
	}

	total := g.TotalVolume()
	var cut, vol float64
	for i, id := range ids {
		v := id - g.Base

		var deg float64
		if o.Degrees != nil {
			deg = o.Degrees[v]
		} else {
			deg = g.Degree(v)
		}

		delta := deg
		rv := rk.rank(v)
		lo, hi := g.Row(v)
		for j := lo; j < hi; j++ {
			if ru := rk.rank(g.Neighbor(j)); ru > 0 && ru < rv {
				delta -= 2 * g.Weight[j]
			}
		}
		cut += delta
		vol += deg

		phi := conductance(cut, vol, total)
		if visit != nil {
			visit(i, Step{Cut: cut, Volume: vol, Conductance: phi})
		}
		// strict < keeps the shortest prefix on ties
		if i == 0 || phi < best {
			best, at = phi, i
		}
	}

	return best, at
}

// conductance applies the degenerate-side convention.
func conductance(cut, vol, total float64) float64 {
	if vol == 0 || total-vol == 0 {
		return 1
	}

	return cut / math.Min(vol, total-vol)
}
