package sweep

import (
	"fmt"

	"github.com/katalvlaran/sweepcut/csr"
)

const methodConductance = "Conductance"

// Conductance evaluates cut(S)/min(vol(S), vol(V)−vol(S)) for the set S
// directly, independent of any ordering. Ids use the graph's Base; the only
// honoured option is WithDegrees.
//
// vol(S) sums the degrees of S and cut(S) = vol(S) minus the weight of
// stored entries joining two distinct members of S, so a self-loop counts as
// boundary exactly as it does in Sweep. vol(V) is the sum of all edge
// weights. An empty or full-volume S has conductance 1.
func Conductance[V, I csr.Integer](g *csr.Graph[V, I], set []V, opts ...Option) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	o := resolve(opts)
	if o.err != nil {
		return 0, o.err
	}
	if o.Degrees != nil && len(o.Degrees) != int(g.N) {
		return 0, fmt.Errorf("%s: len(Degrees)=%d, N=%d: %w", methodConductance, len(o.Degrees), g.N, ErrDegreesLength)
	}

	member := make(map[V]struct{}, len(set))
	for i, id := range set {
		if !g.Contains(id) {
			return 0, fmt.Errorf("%s: set[%d]=%d: %w", methodConductance, i, id, ErrVertexOutOfRange)
		}
		member[id-g.Base] = struct{}{}
	}

	var vol, internal float64
	for v := range member {
		if o.Degrees != nil {
			vol += o.Degrees[v]
		} else {
			vol += g.Degree(v)
		}
		lo, hi := g.Row(v)
		for j := lo; j < hi; j++ {
			u := g.Neighbor(j)
			if _, ok := member[u]; ok && u != v {
				internal += g.Weight[j]
			}
		}
	}

	return conductance(vol-internal, vol, g.TotalVolume()), nil
}
