package sweep

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/sweepcut/csr"
)

const methodOrder = "Order"

// Order returns a new slice holding ids permuted so that their aligned
// scores are non-increasing. scores[i] belongs to ids[i]. Neither input is
// modified. Equal scores come out in unspecified order; NaN scores sort last.
//
// Empty input yields an empty, non-nil slice.
func Order[V csr.Integer](ids []V, scores []float64) ([]V, error) {
	if len(ids) != len(scores) {
		return nil, fmt.Errorf("%s: len(ids)=%d, len(scores)=%d: %w",
			methodOrder, len(ids), len(scores), ErrLengthMismatch)
	}

	type scored struct {
		id    V
		score float64
	}
	pairs := make([]scored, len(ids))
	for i := range ids {
		pairs[i] = scored{id: ids[i], score: scores[i]}
	}
	slices.SortFunc(pairs, func(a, b scored) int { return cmp.Compare(b.score, a.score) })

	out := make([]V, len(pairs))
	for i, p := range pairs {
		out[i] = p.id
	}

	return out, nil
}
